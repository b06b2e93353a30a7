package main

import (
	"fmt"
	"os"
	"strings"

	pflag "github.com/spf13/pflag"

	"github.com/spicery/clist/pkg/render"
)

// Version is injected at build time via ldflags.
var Version = "dev"

const DEFAULT_FORMAT = "ASCIITREE"

func main() {
	// Define command line flags.
	var format = pflag.StringP("format", "f", DEFAULT_FORMAT, "Output format ("+strings.Join(render.Formats, ", ")+")")
	var indent = pflag.Int("indent", 2, "Indentation level for display purposes")
	var noRunID = pflag.Bool("no-run-id", false, "Suppress the run id in output")
	var version = pflag.Bool("version", false, "Print version and exit")
	var help = pflag.BoolP("help", "h", false, "Print help message and exit")

	// Custom usage message.
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nConverts a clist-run report from JSON format to various output formats.\n")
		fmt.Fprintf(os.Stderr, "Reads JSON from stdin and writes the converted report to stdout.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
	}

	pflag.Parse()

	if *version {
		fmt.Printf("clist-convert version %s\n", Version)
		os.Exit(0)
	}

	if *help {
		pflag.Usage()
		os.Exit(0)
	}

	printFunc, err := render.PickPrintFunc(*format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	report, err := render.ReadReportJSON(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading JSON input: %v\n", err)
		os.Exit(1)
	}

	err = printFunc(report, os.Stdout, &render.PrintOptions{
		Format:       *format,
		Indent:       *indent,
		IncludeRunID: !*noRunID,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		os.Exit(1)
	}
}
