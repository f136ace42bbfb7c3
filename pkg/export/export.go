// Package export fans scan findings out to configured sinks: a
// findings file, elasticsearch and kafka. The overlap engine itself
// performs no I/O; everything side-effecting funnels through here.
package export

import (
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/routeclash/pkg/export/elastic"
	"github.com/projectdiscovery/routeclash/pkg/export/file"
	"github.com/projectdiscovery/routeclash/pkg/export/kafka"
	"github.com/projectdiscovery/routeclash/pkg/types"
)

// Store is a sink accepting one finding at a time.
type Store interface {
	Save(finding types.Finding) error
	Close() error
}

// Options configures which sinks an Exporter writes to. Empty
// addresses and folders disable the corresponding sink.
type Options struct {
	OutputFolder string
	Elastic      *elastic.Options
	Kafka        *kafka.Options
}

// Exporter queues findings and writes them to every configured store
// asynchronously, so slow sinks never stall the scan.
type Exporter struct {
	options    *Options
	asyncqueue chan types.Finding
	done       chan struct{}
	Store      []Store
}

// NewExporter instance
func NewExporter(options *Options) *Exporter {
	exporter := &Exporter{
		options:    options,
		asyncqueue: make(chan types.Finding, 1000),
		done:       make(chan struct{}),
	}
	if options.Elastic != nil && options.Elastic.Addr != "" {
		store, err := elastic.New(options.Elastic)
		if err != nil {
			gologger.Warning().Msgf("Error while creating elastic exporter: %s", err)
		} else {
			exporter.Store = append(exporter.Store, store)
		}
	}
	if options.Kafka != nil && options.Kafka.Addr != "" {
		store, err := kafka.New(options.Kafka)
		if err != nil {
			gologger.Warning().Msgf("Error while creating kafka exporter: %s", err)
		} else {
			exporter.Store = append(exporter.Store, store)
		}
	}
	if options.OutputFolder != "" {
		store, err := file.New(&file.Options{
			OutputFolder: options.OutputFolder,
		})
		if err != nil {
			gologger.Warning().Msgf("Error while creating file exporter: %s", err)
		} else {
			exporter.Store = append(exporter.Store, store)
		}
	}

	go exporter.asyncWrite()

	return exporter
}

func (e *Exporter) asyncWrite() {
	defer close(e.done)
	for finding := range e.asyncqueue {
		for _, store := range e.Store {
			if err := store.Save(finding); err != nil {
				gologger.Warning().Msgf("Error while exporting finding: %s", err)
			}
		}
	}
}

// Export queues a finding for delivery to every configured store.
func (e *Exporter) Export(finding types.Finding) {
	if len(e.Store) == 0 {
		return
	}
	e.asyncqueue <- finding
}

// Close drains the queue and shuts every store down.
func (e *Exporter) Close() {
	close(e.asyncqueue)
	<-e.done
	for _, store := range e.Store {
		if err := store.Close(); err != nil {
			gologger.Warning().Msgf("Error while closing exporter: %s", err)
		}
	}
}
