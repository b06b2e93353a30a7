package render

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/spicery/clist/pkg/pipeline"
)

func PrintYAML(report *pipeline.Report, output io.Writer, options *PrintOptions) error {
	encoder := yaml.NewEncoder(output)
	if options != nil && options.Indent > 0 {
		encoder.SetIndent(options.Indent)
	}
	if err := encoder.Encode(visible(report, options)); err != nil {
		return err
	}
	return encoder.Close()
}
