package jsonl

import (
	"encoding/json"
	"os"

	"github.com/projectdiscovery/routeclash/pkg/types"
)

// JsonLinesWriter is a writer for json lines
type JsonLinesWriter struct {
	f *os.File
}

// NewJsonLinesWriter creates a new json lines writer
func NewJsonLinesWriter(filePath string) (*JsonLinesWriter, error) {
	file, err := os.Create(filePath)
	if err != nil {
		return nil, err
	}
	return &JsonLinesWriter{f: file}, nil
}

// Write writes one indexed route to the file.
func (j *JsonLinesWriter) Write(record types.RouteRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}
	if _, err := j.f.Write(append(data, '\n')); err != nil {
		return err
	}
	return nil
}

// Close closes the file writer.
func (j *JsonLinesWriter) Close() error {
	return j.f.Close()
}
