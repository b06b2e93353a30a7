// Package render prints pipeline reports in the supported output formats.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/spicery/clist/pkg/pipeline"
)

type PrintOptions struct {
	Format       string `yaml:"option-format,omitempty"`
	Indent       int    `yaml:"option-indent,omitempty"`
	IncludeRunID bool   `yaml:"option-include-run-id,omitempty"`
}

func (o *PrintOptions) indentString() string {
	if o == nil || o.Indent <= 0 {
		return ""
	}
	return strings.Repeat(" ", o.Indent)
}

type PrintFunc func(report *pipeline.Report, output io.Writer, options *PrintOptions) error

var Formats = []string{"TEXT", "JSON", "YAML", "ASCIITREE", "DOT"}

func PickPrintFunc(format string) (PrintFunc, error) {
	switch strings.ToUpper(format) {
	case "TEXT":
		return PrintText, nil
	case "JSON":
		return PrintJSON, nil
	case "YAML":
		return PrintYAML, nil
	case "ASCIITREE":
		return PrintAsciiTree, nil
	case "DOT":
		return PrintDOT, nil
	default:
		return nil, fmt.Errorf("unknown format: %s (expected one of %s)", format, strings.Join(Formats, ", "))
	}
}

// visible returns the report as it should be printed under options.
func visible(report *pipeline.Report, options *PrintOptions) *pipeline.Report {
	if options != nil && options.IncludeRunID {
		return report
	}
	copied := *report
	copied.RunID = ""
	return &copied
}

func PrintText(report *pipeline.Report, output io.Writer, options *PrintOptions) error {
	report = visible(report, options)
	indent := options.indentString()
	if indent == "" {
		indent = "  "
	}
	if report.RunID != "" {
		if _, err := fmt.Fprintf(output, "%s (%s)\n", report.Name, report.RunID); err != nil {
			return err
		}
	} else if _, err := fmt.Fprintln(output, report.Name); err != nil {
		return err
	}
	fmt.Fprintf(output, "%sinput: %v\n", indent, report.Input)
	for _, step := range report.Steps {
		fmt.Fprintf(output, "%s%d %s: %s\n", indent, step.Position, step.Name, describeStep(step))
		fmt.Fprintf(output, "%s%s-> %v\n", indent, indent, step.Items)
	}
	_, err := fmt.Fprintf(output, "%soutput: %v\n", indent, report.Output)
	return err
}

func describeStep(step pipeline.StepResult) string {
	label := step.Op
	if step.Argument != "" {
		label += " " + step.Argument
	}
	if step.Visited > 0 {
		label += fmt.Sprintf(" (visited %d)", step.Visited)
	}
	return label
}
