package export

import (
	"github.com/projectdiscovery/routeclash/pkg/export/elastic"
	"github.com/projectdiscovery/routeclash/pkg/export/kafka"
)

// Config is the yaml configuration file shape for the export module
type Config struct {
	Elastic *elastic.Options `yaml:"elastic,omitempty"`
	Kafka   *kafka.Options   `yaml:"kafka,omitempty"`
}
