package yamlw

import (
	"os"

	"github.com/projectdiscovery/routeclash/pkg/types"
	"gopkg.in/yaml.v3"
)

// YamlMultiDocWriter is a writer for multi doc yaml
type YamlMultiDocWriter struct {
	f       *os.File
	encoder *yaml.Encoder
}

// NewYamlMultiDocWriter creates a new yaml multi doc writer
func NewYamlMultiDocWriter(filePath string) (*YamlMultiDocWriter, error) {
	file, err := os.Create(filePath)
	if err != nil {
		return nil, err
	}
	return &YamlMultiDocWriter{f: file, encoder: yaml.NewEncoder(file)}, nil
}

// Write writes one indexed route as a yaml document.
func (y *YamlMultiDocWriter) Write(record types.RouteRecord) error {
	return y.encoder.Encode(record)
}

// Close closes the file writer.
func (y *YamlMultiDocWriter) Close() error {
	if err := y.encoder.Close(); err != nil {
		y.f.Close()
		return err
	}
	return y.f.Close()
}
