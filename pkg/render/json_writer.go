package render

import (
	"encoding/json"
	"io"

	"github.com/spicery/clist/pkg/pipeline"
)

func PrintJSON(report *pipeline.Report, output io.Writer, options *PrintOptions) error {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", options.indentString())
	return encoder.Encode(visible(report, options))
}

func ReadReportJSON(input io.Reader) (*pipeline.Report, error) {
	var report pipeline.Report
	decoder := json.NewDecoder(input)
	if err := decoder.Decode(&report); err != nil {
		return nil, err
	}
	return &report, nil
}
