package routeclash

import (
	"context"
	"os"
	"path/filepath"

	"github.com/projectdiscovery/dsl"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/routeclash/pkg/export"
	"github.com/projectdiscovery/routeclash/pkg/export/elastic"
	"github.com/projectdiscovery/routeclash/pkg/export/file"
	"github.com/projectdiscovery/routeclash/pkg/export/kafka"
	"github.com/projectdiscovery/routeclash/pkg/openapi"
	"github.com/projectdiscovery/routeclash/pkg/overlap"
	"github.com/projectdiscovery/routeclash/pkg/types"
	"github.com/projectdiscovery/routeclash/pkg/util"
)

// Options configures a Checker.
type Options struct {
	// Source is the specification reference, a URL or a file path.
	Source string
	// Verbosity of console output.
	Verbosity types.Verbosity
	// Symmetric makes path parameters on both sides act as wildcards.
	Symmetric bool
	// MethodAware restricts full scans to pairs with intersecting
	// method sets.
	MethodAware bool
	// FilterDSL keeps only scan findings for which every expression
	// evaluates to true.
	FilterDSL []string
	// OutputDirectory receives findings and dumped artifacts.
	OutputDirectory string
	// OutputFormat of the index snapshot (jsonl or yaml).
	OutputFormat string
	// DumpSpec writes the raw fetched specification to the output
	// directory.
	DumpSpec bool
	// DumpIndex writes the built index as path -> method-array to the
	// output directory.
	DumpIndex bool
	// Elastic export options.
	Elastic *elastic.Options
	// Kafka export options.
	Kafka *kafka.Options
	// Provider overrides document acquisition, for library use. When
	// nil one is picked from the shape of Source.
	Provider openapi.Provider
}

// Checker loads one specification and answers overlap queries against
// it. The index is built once by Load and is read-only afterwards; a
// changed specification needs a new Load.
type Checker struct {
	options  *Options
	provider openapi.Provider
	exporter *export.Exporter
	document *openapi.Document
	index    *overlap.Index
	detector *overlap.Detector
}

// NewChecker instance
func NewChecker(options *Options) (*Checker, error) {
	provider := options.Provider
	if provider == nil {
		provider = openapi.NewProvider(options.Source)
	}
	exporter := export.NewExporter(&export.Options{
		OutputFolder: options.OutputDirectory,
		Elastic:      options.Elastic,
		Kafka:        options.Kafka,
	})
	return &Checker{
		options:  options,
		provider: provider,
		exporter: exporter,
		detector: &overlap.Detector{
			Symmetric:   options.Symmetric,
			MethodAware: options.MethodAware,
		},
	}, nil
}

// Load fetches and parses the specification, builds the route index
// and writes the configured artifacts. It has to complete before any
// query runs; acquisition or parse failures abort the run here.
func (c *Checker) Load(ctx context.Context) error {
	data, err := c.provider.Fetch(ctx, c.options.Source)
	if err != nil {
		return err
	}
	document, err := openapi.Parse(data)
	if err != nil {
		return err
	}
	c.document = document
	c.index = overlap.BuildIndex(document)
	if c.options.Verbosity >= types.VerbosityVerbose {
		gologger.Verbose().Msgf("Indexed %d route(s) from %s", c.index.Len(), c.options.Source)
	}

	return c.dumpArtifacts()
}

// Index returns the built route index, nil before Load.
func (c *Checker) Index() *overlap.Index {
	return c.index
}

// Check reports the first declared route the candidate clashes with.
func (c *Checker) Check(candidatePath, candidateMethod string) (string, bool) {
	matched, ok := c.detector.CheckSingle(candidatePath, candidateMethod, c.index)
	if ok {
		c.exporter.Export(types.Finding{
			Type:    types.FindingMatch,
			Source:  c.options.Source,
			Path:    candidatePath,
			Method:  candidateMethod,
			Matched: matched,
		})
	}
	return matched, ok
}

// Scan reports every overlapping pair of declared routes, filtered by
// the configured dsl expressions.
func (c *Checker) Scan() []overlap.Record {
	records := c.detector.CheckAll(c.index)
	records = c.filterRecords(records)
	for _, record := range records {
		c.exporter.Export(types.Finding{
			Type:   types.FindingConflict,
			Source: c.options.Source,
			Path1:  record.Path1,
			Path2:  record.Path2,
		})
	}
	return records
}

func (c *Checker) filterRecords(records []overlap.Record) []overlap.Record {
	if len(c.options.FilterDSL) == 0 {
		return records
	}
	filtered := records[:0]
	for _, record := range records {
		boolSlice := []bool{}
		for _, expr := range c.options.FilterDSL {
			v, err := dsl.EvalExpr(expr, util.ConflictToMap(record))
			if err != nil {
				gologger.Warning().Msgf("Could not evaluate filter dsl: %s\n", err)
			}
			value, ok := v.(bool)
			boolSlice = append(boolSlice, err == nil && ok && value)
		}
		if util.EvalBoolSlice(boolSlice) {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

func (c *Checker) dumpArtifacts() error {
	if !c.options.DumpSpec && !c.options.DumpIndex {
		return nil
	}
	if err := file.CreateOutputFolder(c.options.OutputDirectory); err != nil {
		return err
	}
	if c.options.DumpSpec {
		specFile := filepath.Join(c.options.OutputDirectory, "spec.raw")
		if err := os.WriteFile(specFile, c.document.Raw, 0644); err != nil {
			return err
		}
	}
	if c.options.DumpIndex {
		indexFile := filepath.Join(c.options.OutputDirectory, "index."+c.options.OutputFormat)
		writer, err := export.NewOutputFileWriter(c.options.OutputFormat, indexFile)
		if err != nil {
			return err
		}
		for _, entry := range c.index.Entries() {
			if err := writer.Write(types.RouteRecord{Path: entry.Path, Methods: entry.Methods}); err != nil {
				writer.Close()
				return err
			}
		}
		if err := writer.Close(); err != nil {
			return err
		}
	}
	return nil
}

// Close shuts the exporter down, draining queued findings.
func (c *Checker) Close() {
	c.exporter.Close()
}
