package nats

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/piresc/routecalc/internal/pkg/logger"
)

// StreamConfig describes a JetStream stream
type StreamConfig struct {
	Name      string
	Subjects  []string
	Retention jetstream.RetentionPolicy
	Storage   jetstream.StorageType
	Replicas  int
	MaxAge    time.Duration
	MaxBytes  int64
	MaxMsgs   int64
	Discard   jetstream.DiscardPolicy
}

// ConsumerConfig describes a durable JetStream consumer
type ConsumerConfig struct {
	StreamName    string
	ConsumerName  string
	FilterSubject string
	DeliverPolicy jetstream.DeliverPolicy
	AckPolicy     jetstream.AckPolicy
	AckWait       time.Duration
	MaxDeliver    int
	ReplayPolicy  jetstream.ReplayPolicy
	RateLimitBps  uint64
	MaxAckPending int
}

// PublishOptions controls a single JetStream publish
type PublishOptions struct {
	Subject string
	Data    []byte
	MsgID   string
	Timeout time.Duration
}

// Client wraps a NATS connection and its JetStream context
type Client struct {
	conn      *nats.Conn
	js        jetstream.JetStream
	consumers map[string]jetstream.Consumer
	mu        sync.RWMutex
}

// NewClient connects to NATS and initialises JetStream
func NewClient(url string, opts ...nats.Option) (*Client, error) {
	opts = append([]nats.Option{
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2 * time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("NATS disconnected", logger.Err(err))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("NATS reconnected", logger.String("url", nc.ConnectedUrl()))
		}),
	}, opts...)

	conn, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS server: %w", err)
	}

	js, err := jetstream.New(conn)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	return &Client{
		conn:      conn,
		js:        js,
		consumers: make(map[string]jetstream.Consumer),
	}, nil
}

// GetConn returns the underlying NATS connection
func (c *Client) GetConn() *nats.Conn {
	return c.conn
}

// GetJetStream returns the JetStream context
func (c *Client) GetJetStream() jetstream.JetStream {
	return c.js
}

// CreateOrUpdateStream ensures a stream exists with the given configuration
func (c *Client) CreateOrUpdateStream(ctx context.Context, config StreamConfig) error {
	_, err := c.js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:      config.Name,
		Subjects:  config.Subjects,
		Retention: config.Retention,
		Storage:   config.Storage,
		Replicas:  config.Replicas,
		MaxAge:    config.MaxAge,
		MaxBytes:  config.MaxBytes,
		MaxMsgs:   config.MaxMsgs,
		Discard:   config.Discard,
	})
	if err != nil {
		return fmt.Errorf("failed to create stream %s: %w", config.Name, err)
	}

	logger.Info("JetStream stream ready",
		logger.String("stream", config.Name),
		logger.Strings("subjects", config.Subjects))
	return nil
}

// CreateConsumer creates or updates a durable consumer and remembers it
func (c *Client) CreateConsumer(config ConsumerConfig) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	consumer, err := c.js.CreateOrUpdateConsumer(ctx, config.StreamName, jetstream.ConsumerConfig{
		Durable:       config.ConsumerName,
		FilterSubject: config.FilterSubject,
		DeliverPolicy: config.DeliverPolicy,
		AckPolicy:     config.AckPolicy,
		AckWait:       config.AckWait,
		MaxDeliver:    config.MaxDeliver,
		ReplayPolicy:  config.ReplayPolicy,
		RateLimit:     config.RateLimitBps,
		MaxAckPending: config.MaxAckPending,
	})
	if err != nil {
		return fmt.Errorf("failed to create consumer %s: %w", config.ConsumerName, err)
	}

	c.mu.Lock()
	c.consumers[consumerKey(config.StreamName, config.ConsumerName)] = consumer
	c.mu.Unlock()
	return nil
}

func (c *Client) consumer(stream, name string) (jetstream.Consumer, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	consumer, ok := c.consumers[consumerKey(stream, name)]
	return consumer, ok
}

func consumerKey(stream, name string) string {
	return fmt.Sprintf("%s:%s", stream, name)
}

// PublishWithOptions publishes to JetStream and waits for the stream ack
func (c *Client) PublishWithOptions(ctx context.Context, options PublishOptions) (*jetstream.PubAck, error) {
	if options.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, options.Timeout)
		defer cancel()
	}

	var opts []jetstream.PublishOpt
	if options.MsgID != "" {
		opts = append(opts, jetstream.WithMsgID(options.MsgID))
	}

	ack, err := c.js.Publish(ctx, options.Subject, options.Data, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to publish to %s: %w", options.Subject, err)
	}
	return ack, nil
}

// ListStreams returns the names of every stream on the server
func (c *Client) ListStreams(ctx context.Context) ([]string, error) {
	lister := c.js.StreamNames(ctx)
	var names []string
	for name := range lister.Name() {
		names = append(names, name)
	}
	if err := lister.Err(); err != nil && !errors.Is(err, jetstream.ErrEndOfData) {
		return nil, fmt.Errorf("failed to list streams: %w", err)
	}
	return names, nil
}

// Close drains the connection
func (c *Client) Close() {
	if c.conn == nil {
		return
	}
	if err := c.conn.Drain(); err != nil {
		c.conn.Close()
	}
}
