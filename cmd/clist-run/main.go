package main

import (
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	pflag "github.com/spf13/pflag"

	"github.com/spicery/clist/pkg/cli"
	"github.com/spicery/clist/pkg/pipeline"
	"github.com/spicery/clist/pkg/render"
)

// Version is injected at build time via ldflags.
var Version = "dev"

const DEFAULT_FORMAT = "TEXT"

func main() {
	var logFlags cli.SliceValue

	var inputFile = pflag.StringP("input", "i", "", "Pipeline YAML file (defaults to the built-in scenario)")
	var format = pflag.StringP("format", "f", DEFAULT_FORMAT, "Output format ("+strings.Join(render.Formats, ", ")+")")
	var values = pflag.String("values", "", "Comma separated values replacing the pipeline's input")
	var capacity = pflag.Int("capacity", -1, "Capacity hint replacing the pipeline's own")
	var indent = pflag.Int("indent", 2, "Indentation level for display purposes")
	var noRunID = pflag.Bool("no-run-id", false, "Suppress the run id in output")
	var version = pflag.Bool("version", false, "Print version and exit")
	var help = pflag.BoolP("help", "h", false, "Print help message and exit")
	pflag.Var(&logFlags, "log", "Comma separated log settings: a level, colors/nocolors, json")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nRuns a pipeline of list operations (map, forEach, filter, filterOut)\n")
		fmt.Fprintf(os.Stderr, "and prints what every step produced.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
	}

	pflag.Parse()

	if *version {
		fmt.Printf("clist-run version %s\n", Version)
		os.Exit(0)
	}

	if *help {
		pflag.Usage()
		os.Exit(0)
	}

	if len(pflag.Args()) > 0 {
		fmt.Fprintf(os.Stderr, "Error: Unexpected positional arguments. Use --input instead.\n\n")
		pflag.Usage()
		os.Exit(1)
	}

	if err := cli.ApplyLogFlags(log.StandardLogger(), logFlags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	printFunc, err := render.PickPrintFunc(*format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var config *pipeline.Config
	if *inputFile != "" {
		config, err = pipeline.Load(*inputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading pipeline file '%s': %v\n", *inputFile, err)
			os.Exit(1)
		}
	} else {
		config, err = pipeline.LoadFromString(pipeline.DefaultPipeline)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading default pipeline: %v\n", err)
			os.Exit(1)
		}
	}

	if pflag.CommandLine.Changed("values") {
		var override cli.SliceValue
		_ = override.Set(*values)
		config.Values = override
	}
	if *capacity >= 0 {
		config.Capacity = *capacity
	}

	p, err := config.Compile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error compiling pipeline: %v\n", err)
		os.Exit(1)
	}
	log.Debugf("running pipeline %q with %d steps", p.Name, len(p.Steps))

	report, err := p.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Pipeline failed: %v\n", err)
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
