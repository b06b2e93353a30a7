package render

import (
	"fmt"
	"io"

	asciitree "github.com/thediveo/go-asciitree"

	"github.com/spicery/clist/pkg/pipeline"
)

type AsciiNode struct {
	Label    string      `asciitree:"label"`
	Props    []string    `asciitree:"properties"`
	Children []AsciiNode `asciitree:"children"`
}

// convertToTree lays the report out as a root with one child per step.
func convertToTree(report *pipeline.Report) AsciiNode {
	var props []string
	if report.RunID != "" {
		props = append(props, fmt.Sprintf("run: %s", report.RunID))
	}
	props = append(props, fmt.Sprintf("input: %v", report.Input))

	var children []AsciiNode
	for _, step := range report.Steps {
		stepProps := []string{fmt.Sprintf("op: %s", step.Op)}
		if step.Argument != "" {
			stepProps = append(stepProps, fmt.Sprintf("argument: %s", step.Argument))
		}
		if step.Visited > 0 {
			stepProps = append(stepProps, fmt.Sprintf("visited: %d", step.Visited))
		}
		stepProps = append(stepProps, fmt.Sprintf("items: %v", step.Items))
		children = append(children, AsciiNode{
			Label: fmt.Sprintf("%d %s", step.Position, step.Name),
			Props: stepProps,
		})
	}
	children = append(children, AsciiNode{
		Label: "output",
		Props: []string{fmt.Sprintf("items: %v", report.Output)},
	})
	return AsciiNode{
		Label:    report.Name,
		Props:    props,
		Children: children,
	}
}

func PrintAsciiTree(report *pipeline.Report, output io.Writer, options *PrintOptions) error {
	_, err := fmt.Fprintln(output, asciitree.RenderFancy(convertToTree(visible(report, options))))
	return err
}
