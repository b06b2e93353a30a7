package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/spicery/clist/pkg/pipeline"
)

// PrintDOT draws the steps as a chain from the input list to the output list.
func PrintDOT(report *pipeline.Report, output io.Writer, options *PrintOptions) error {
	report = visible(report, options)
	indent := options.indentString()
	if indent == "" {
		indent = "  "
	}

	fmt.Fprintln(output, `digraph G {`)
	fmt.Fprintf(output, "%sbgcolor=\"transparent\";\n", indent)
	fmt.Fprintf(output, "%snode [shape=\"box\", style=\"filled\", fontname=\"Ubuntu Mono\"];\n", indent)

	printNodeDOT(output, indent, "input", fmt.Sprintf("input: %v", report.Input), "input")
	previous := "input"
	for _, step := range report.Steps {
		id := fmt.Sprintf("step_%d", step.Position)
		label := fmt.Sprintf("%s: %s\\n%v", step.Name, describeStep(step), step.Items)
		printNodeDOT(output, indent, id, label, step.Op)
		fmt.Fprintf(output, "%s\"%s\" -> \"%s\";\n", indent, previous, id)
		previous = id
	}
	printNodeDOT(output, indent, "output", fmt.Sprintf("output: %v", report.Output), "output")
	fmt.Fprintf(output, "%s\"%s\" -> \"%s\";\n", indent, previous, "output")

	_, err := fmt.Fprintln(output, `}`)
	return err
}

func printNodeDOT(output io.Writer, indent string, id string, label string, kind string) {
	fillColor := opColors[kind]
	if fillColor == "" {
		fillColor = "lightgray"
	}
	fmt.Fprintf(output, "%s\"%s\" [label=\"%s\", fillcolor=\"%s\"];\n", indent, id, escapeDOTValue(label), fillColor)
}

func escapeDOTValue(value string) string {
	return strings.ReplaceAll(value, `"`, `\"`)
}

var opColors = map[string]string{
	"input":     "PaleTurquoise",
	"output":    "PaleTurquoise",
	"filter":    "lightgreen",
	"filterOut": "lightpink",
	"map":       "lightgoldenrodyellow",
	"forEach":   "Honeydew",
}
