package export

import (
	"errors"

	"github.com/projectdiscovery/routeclash/pkg/export/jsonl"
	"github.com/projectdiscovery/routeclash/pkg/export/yamlw"
	"github.com/projectdiscovery/routeclash/pkg/types"
)

var (
	_ OutputFileWriter = &jsonl.JsonLinesWriter{}
	// multi doc yaml writer with --- separator
	_ OutputFileWriter = &yamlw.YamlMultiDocWriter{}

	ErrorInvalidFormat = errors.New("invalid format: expected jsonl or yaml")
)

// OutputFileWriter is an interface for writing the built route index
// to a file, one record per route in insertion order.
type OutputFileWriter interface {
	// Write writes one indexed route to the file.
	Write(record types.RouteRecord) error
	// Close closes the file writer.
	Close() error
}

// NewOutputFileWriter creates a new output file writer
func NewOutputFileWriter(format, filePath string) (OutputFileWriter, error) {
	switch format {
	case "jsonl":
		return jsonl.NewJsonLinesWriter(filePath)
	case "yaml":
		return yamlw.NewYamlMultiDocWriter(filePath)
	default:
		return nil, ErrorInvalidFormat
	}
}
