package runner

import (
	"os"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/formatter"
	"github.com/projectdiscovery/gologger/levels"
)

// Options of the runner
type Options struct {
	Source          string              // Specification source (URL or file path)
	CheckPath       string              // Candidate path for a single check
	CheckMethod     string              // Candidate method for a single check
	Symmetric       bool                // Treat path parameters on both sides as wildcards
	MethodAware     bool                // Only report scan pairs with intersecting method sets
	FilterDSL       goflags.StringSlice // Finding filter DSL
	OutputDirectory string              // Output directory for findings and artifacts
	OutputFormat    string              // Index snapshot format (jsonl/yaml)
	DumpSpec        bool                // Dump the raw fetched specification
	DumpIndex       bool                // Dump the built route index
	ExportConfig    string              // Export configuration file (elastic/kafka)
	Verbose         bool
	Silent          bool
	NoColor         bool // No Color
	Version         bool
}

func ParseOptions() *Options {
	options := &Options{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Detect overlapping routes in OpenAPI specifications. Checks whether a candidate path/method clashes with declared routes, or scans a whole specification for route templates that could match the same request`)

	createGroup(flagSet, "input", "Input",
		flagSet.StringVarP(&options.Source, "spec", "s", "", "OpenAPI specification to load (URL or file path)"),
	)

	createGroup(flagSet, "check", "Check",
		flagSet.StringVarP(&options.CheckPath, "path", "p", "", "Candidate path to check against the specification (omit to scan all declared routes)"),
		flagSet.StringVarP(&options.CheckMethod, "method", "m", "", "Candidate HTTP method for the single check"),
		flagSet.BoolVar(&options.Symmetric, "symmetric", false, "Treat path parameters on either side as wildcards"),
		flagSet.BoolVarP(&options.MethodAware, "method-aware", "ma", false, "Only report scan pairs whose method sets intersect"),
	)

	createGroup(flagSet, "filter", "Filter",
		flagSet.StringSliceVarP(&options.FilterDSL, "filter-dsl", "fd", nil, "Finding filter DSL (eg: contains(path1,'/admin'))", goflags.StringSliceOptions),
	)

	createGroup(flagSet, "output", "Output",
		flagSet.StringVarP(&options.OutputDirectory, "output", "o", "", "Output directory to store findings and artifacts"),
		flagSet.StringVarP(&options.OutputFormat, "output-format", "of", "jsonl", "Index snapshot format (jsonl/yaml)"),
		flagSet.BoolVarP(&options.DumpSpec, "dump-spec", "ds", false, "Dump the raw fetched specification to the output directory"),
		flagSet.BoolVarP(&options.DumpIndex, "dump-index", "di", false, "Dump the built route index to the output directory"),
	)

	createGroup(flagSet, "export", "Export",
		flagSet.StringVarP(&options.ExportConfig, "export-config", "ec", "", "Export configuration file (elastic/kafka)"),
	)

	createGroup(flagSet, "miscellaneous", "Miscellaneous",
		flagSet.BoolVar(&options.Silent, "silent", false, "Silent"),
		flagSet.BoolVarP(&options.NoColor, "no-color", "nc", false, "No Color"),
		flagSet.BoolVar(&options.Version, "version", false, "Version"),
		flagSet.BoolVarP(&options.Verbose, "verbose", "v", false, "Verbose"),
	)

	_ = flagSet.Parse()

	// Read the inputs and configure the logging
	options.configureOutput()

	if options.Version {
		gologger.Info().Msgf("Current Version: %s\n", Version)
		os.Exit(0)
	}

	// Show the user the banner
	showBanner()

	if options.Source == "" {
		gologger.Fatal().Msgf("No specification source provided, use -spec\n")
	}

	return options
}

func (options *Options) configureOutput() {
	if options.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}
	if options.NoColor {
		gologger.DefaultLogger.SetFormatter(formatter.NewCLI(true))
	}
	if options.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	}
}

func createGroup(flagSet *goflags.FlagSet, groupName, description string, flags ...*goflags.FlagData) {
	flagSet.SetGroup(groupName, description)
	for _, currentFlag := range flags {
		currentFlag.Group(groupName)
	}
}
