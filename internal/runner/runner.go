package runner

import (
	"context"
	"os"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/routeclash"
	"github.com/projectdiscovery/routeclash/pkg/export"
	"github.com/projectdiscovery/routeclash/pkg/reporter"
	"github.com/projectdiscovery/routeclash/pkg/types"
	"gopkg.in/yaml.v3"
)

// Runner contains the internal logic of the program
type Runner struct {
	options  *Options
	checker  *routeclash.Checker
	reporter *reporter.Reporter
}

// NewRunner instance
func NewRunner(options *Options) (*Runner, error) {
	exportConfig := &export.Config{}
	if options.ExportConfig != "" {
		data, err := os.ReadFile(options.ExportConfig)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, exportConfig); err != nil {
			return nil, err
		}
	}

	verbosity := types.VerbosityDefault
	if options.Silent {
		verbosity = types.VerbositySilent
	} else if options.Verbose {
		verbosity = types.VerbosityVerbose
	}

	checker, err := routeclash.NewChecker(&routeclash.Options{
		Source:          options.Source,
		Verbosity:       verbosity,
		Symmetric:       options.Symmetric,
		MethodAware:     options.MethodAware,
		FilterDSL:       []string(options.FilterDSL),
		OutputDirectory: options.OutputDirectory,
		OutputFormat:    options.OutputFormat,
		DumpSpec:        options.DumpSpec,
		DumpIndex:       options.DumpIndex,
		Elastic:         exportConfig.Elastic,
		Kafka:           exportConfig.Kafka,
	})
	if err != nil {
		return nil, err
	}
	return &Runner{
		options:  options,
		checker:  checker,
		reporter: reporter.NewReporter(options.NoColor),
	}, nil
}

// Run loads the specification and executes the requested query
func (r *Runner) Run() error {
	// configuration summary
	gologger.Info().Msgf("Loading specification from %s\n", r.options.Source)
	if r.options.OutputDirectory != "" {
		gologger.Info().Msgf("Saving findings to %s\n", r.options.OutputDirectory)
	}

	if err := r.checker.Load(context.Background()); err != nil {
		return err
	}

	if r.options.CheckPath != "" {
		matched, ok := r.checker.Check(r.options.CheckPath, r.options.CheckMethod)
		r.reporter.Match(r.options.CheckPath, r.options.CheckMethod, matched, ok)
		return nil
	}

	r.reporter.Conflicts(r.checker.Scan())
	return nil
}

// Close the runner instance
func (r *Runner) Close() {
	r.checker.Close()
}
