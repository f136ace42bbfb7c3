package file

import (
	"encoding/json"
	"os"
	"path"

	"github.com/projectdiscovery/routeclash/pkg/types"
)

// Options required for file export
type Options struct {
	// OutputFolder is the folder where findings will be stored
	OutputFolder string `yaml:"output-folder"`
}

// Client type for file based export
type Client struct {
	options *Options
}

// New creates and returns a new client for file based export
func New(option *Options) (*Client, error) {
	return &Client{
		options: &Options{
			OutputFolder: option.OutputFolder,
		},
	}, CreateOutputFolder(option.OutputFolder)
}

// Save appends the finding as a json line to the findings file
func (c *Client) Save(finding types.Finding) error {
	destFile := path.Join(c.options.OutputFolder, "findings.jsonl")
	f, err := os.OpenFile(destFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	data, err := json.Marshal(finding)
	if err != nil {
		f.Close()
		return err
	}
	if _, err := f.Write(append(data, '\n')); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Close is a no-op for file based export
func (c *Client) Close() error {
	return nil
}

// CreateOutputFolder creates the output folder if it doesn't exist
func CreateOutputFolder(outputFolder string) error {
	return os.MkdirAll(outputFolder, 0755)
}
