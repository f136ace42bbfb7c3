package kafka

import (
	"encoding/json"

	"github.com/Shopify/sarama"
	"github.com/projectdiscovery/routeclash/pkg/types"
)

// Options required for kafka
type Options struct {
	// Address for kafka instance
	Addr string `yaml:"addr"`
	// Topic to produce messages to
	Topic string `yaml:"topic"`
}

// Client for Kafka
type Client struct {
	producer sarama.SyncProducer
	topic    string
}

// New creates and returns a new client for kafka
func New(option *Options) (*Client, error) {
	config := sarama.NewConfig()
	// Wait for all in-sync replicas to ack the message
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 10
	config.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer([]string{option.Addr}, config)
	if err != nil {
		return nil, err
	}
	return &Client{
		producer: producer,
		topic:    option.Topic,
	}, nil
}

// Save produces a finding message on the configured topic
func (c *Client) Save(finding types.Finding) error {
	data, err := json.Marshal(finding)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{
		Topic: c.topic,
		Value: sarama.ByteEncoder(data),
	}
	_, _, err = c.producer.SendMessage(msg)
	return err
}

// Close shuts the producer down
func (c *Client) Close() error {
	return c.producer.Close()
}
