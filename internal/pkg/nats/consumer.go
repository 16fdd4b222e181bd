package nats

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/piresc/routecalc/internal/pkg/logger"
)

// JetStreamMessageHandler processes a JetStream message. Returning an error requests redelivery.
type JetStreamMessageHandler func(ctx context.Context, msg jetstream.Msg) error

// TerminateHandler is called once a message has failed its final delivery
type TerminateHandler func(ctx context.Context, msg jetstream.Msg, err error)

// ConsumeOptions configures how delivered messages are processed
type ConsumeOptions struct {
	Workers     int
	MaxDeliver  int
	NakDelay    time.Duration
	OnTerminate TerminateHandler
}

// Consumer fans JetStream deliveries out to a fixed pool of workers
type Consumer struct {
	consumer   jetstream.Consumer
	consumeCtx jetstream.ConsumeContext
	handler    JetStreamMessageHandler
	options    ConsumeOptions
	msgs       chan jetstream.Msg
	ctx        context.Context
	cancelFunc context.CancelFunc
	wg         sync.WaitGroup
	mu         sync.Mutex
}

// NewJetStreamConsumer creates the durable consumer and starts the worker pool
func NewJetStreamConsumer(client *Client, config ConsumerConfig, options ConsumeOptions, handler JetStreamMessageHandler) (*Consumer, error) {
	if client == nil {
		return nil, fmt.Errorf("client cannot be nil")
	}
	if handler == nil {
		return nil, fmt.Errorf("handler cannot be nil")
	}

	if err := client.CreateConsumer(config); err != nil {
		return nil, fmt.Errorf("failed to create consumer: %w", err)
	}

	consumer, exists := client.consumer(config.StreamName, config.ConsumerName)
	if !exists {
		return nil, fmt.Errorf("consumer %s not found after creation", consumerKey(config.StreamName, config.ConsumerName))
	}

	if options.Workers < 1 {
		options.Workers = 1
	}
	if options.MaxDeliver < 1 {
		options.MaxDeliver = config.MaxDeliver
	}

	ctx, cancel := context.WithCancel(context.Background())
	c := &Consumer{
		consumer:   consumer,
		handler:    handler,
		options:    options,
		msgs:       make(chan jetstream.Msg, options.Workers),
		ctx:        ctx,
		cancelFunc: cancel,
	}

	for i := 0; i < options.Workers; i++ {
		c.wg.Add(1)
		go c.work(i)
	}

	if err := c.startConsuming(); err != nil {
		c.Stop()
		return nil, fmt.Errorf("failed to start consuming: %w", err)
	}

	return c, nil
}

func (c *Consumer) startConsuming() error {
	consumeCtx, err := c.consumer.Consume(func(msg jetstream.Msg) {
		select {
		case c.msgs <- msg:
		case <-c.ctx.Done():
			_ = msg.Nak()
		}
	}, jetstream.PullMaxMessages(c.options.Workers))
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.consumeCtx = consumeCtx
	c.mu.Unlock()
	return nil
}

func (c *Consumer) work(id int) {
	defer c.wg.Done()
	for {
		select {
		case <-c.ctx.Done():
			return
		case msg := <-c.msgs:
			c.process(id, msg)
		}
	}
}

func (c *Consumer) process(worker int, msg jetstream.Msg) {
	err := c.handler(c.ctx, msg)
	if err == nil {
		if ackErr := msg.Ack(); ackErr != nil {
			logger.Error("Failed to ACK message", logger.Err(ackErr))
		}
		return
	}

	var delivered uint64 = 1
	if meta, metaErr := msg.Metadata(); metaErr == nil {
		delivered = meta.NumDelivered
	}

	if c.options.MaxDeliver > 0 && delivered >= uint64(c.options.MaxDeliver) {
		logger.Error("Message failed final delivery",
			logger.String("subject", msg.Subject()),
			logger.Int("worker", worker),
			logger.Uint64("delivered", delivered),
			logger.Err(err))
		if c.options.OnTerminate != nil {
			c.options.OnTerminate(c.ctx, msg, err)
		}
		if termErr := msg.Term(); termErr != nil {
			logger.Error("Failed to TERM message", logger.Err(termErr))
		}
		return
	}

	logger.Warn("Message processing failed, scheduling redelivery",
		logger.String("subject", msg.Subject()),
		logger.Int("worker", worker),
		logger.Uint64("delivered", delivered),
		logger.Duration("delay", c.options.NakDelay),
		logger.Err(err))
	if nakErr := msg.NakWithDelay(c.options.NakDelay); nakErr != nil {
		logger.Error("Failed to NAK message", logger.Err(nakErr))
	}
}

// IsActive returns true while the consumer is pulling messages
func (c *Consumer) IsActive() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.consumeCtx != nil
}

// Stop stops pulling new messages and waits for in-flight work to finish
func (c *Consumer) Stop() {
	logger.Info("Stopping consumer")

	c.mu.Lock()
	if c.consumeCtx != nil {
		c.consumeCtx.Stop()
		c.consumeCtx = nil
	}
	c.mu.Unlock()

	c.cancelFunc()
	c.wg.Wait()
}
