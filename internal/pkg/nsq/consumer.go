package nsq

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/nsqio/go-nsq"
	"github.com/piresc/routecalc/internal/pkg/logger"
)

// MessageHandler processes an NSQ message body. Returning an error requeues the message.
type MessageHandler func(message []byte) error

// TerminateHandler is called once a message has failed its final attempt
type TerminateHandler func(message []byte, err error)

// ConsumerOptions configures concurrency and redelivery
type ConsumerOptions struct {
	Workers      int
	MaxAttempts  int
	RequeueDelay time.Duration
	OnTerminate  TerminateHandler
}

// Consumer handles consuming messages from NSQ topics
type Consumer struct {
	consumer *nsq.Consumer
}

// NewConsumer creates a new NSQ consumer for a topic/channel
func NewConsumer(topic, channel string, options ConsumerOptions, handler MessageHandler) (*Consumer, error) {
	if options.Workers < 1 {
		options.Workers = 1
	}
	if options.MaxAttempts < 1 {
		options.MaxAttempts = 1
	}

	config := nsq.NewConfig()
	config.MaxInFlight = options.Workers
	config.MaxAttempts = uint16(options.MaxAttempts)

	consumer, err := nsq.NewConsumer(topic, channel, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create NSQ consumer: %w", err)
	}
	consumer.SetLoggerLevel(nsq.LogLevelWarning)

	consumer.AddConcurrentHandlers(nsq.HandlerFunc(func(message *nsq.Message) error {
		message.DisableAutoResponse()
		handleMessage(message, options, handler)
		return nil
	}), options.Workers)

	return &Consumer{consumer: consumer}, nil
}

func handleMessage(message *nsq.Message, options ConsumerOptions, handler MessageHandler) {
	err := handler(message.Body)
	if err == nil {
		message.Finish()
		return
	}

	if int(message.Attempts) >= options.MaxAttempts {
		logger.Error("NSQ message failed final attempt",
			logger.Int("attempts", int(message.Attempts)),
			logger.Err(err))
		if options.OnTerminate != nil {
			options.OnTerminate(message.Body, err)
		}
		message.Finish()
		return
	}

	logger.Warn("NSQ message processing failed, requeueing",
		logger.Int("attempts", int(message.Attempts)),
		logger.Duration("delay", options.RequeueDelay),
		logger.Err(err))
	message.RequeueWithoutBackoff(options.RequeueDelay)
}

// ConnectToNSQD connects the consumer directly to an nsqd instance
func (c *Consumer) ConnectToNSQD(address string) error {
	if err := c.consumer.ConnectToNSQD(address); err != nil {
		return fmt.Errorf("failed to connect to NSQ daemon: %w", err)
	}
	return nil
}

// ConnectToLookupd connects the consumer to NSQ lookupd instances
func (c *Consumer) ConnectToLookupd(addresses []string) error {
	for _, addr := range addresses {
		err := c.consumer.ConnectToNSQLookupd(addr)
		if err != nil {
			return fmt.Errorf("failed to connect to NSQ lookupd at %s: %w", addr, err)
		}
	}
	return nil
}

// UnmarshalMessage deserializes a JSON message into the provided struct
func UnmarshalMessage(messageBody []byte, v interface{}) error {
	err := json.Unmarshal(messageBody, v)
	if err != nil {
		return fmt.Errorf("failed to unmarshal message: %w", err)
	}
	return nil
}

// Stop gracefully stops the consumer
func (c *Consumer) Stop() {
	c.consumer.Stop()
	<-c.consumer.StopChan
}
