package nats

import (
	"context"
	"time"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/piresc/routecalc/internal/pkg/constants"
)

// StreamConfigBuilder helps build stream configurations
type StreamConfigBuilder struct {
	config StreamConfig
}

// NewStreamConfigBuilder creates a new stream configuration builder
func NewStreamConfigBuilder(name string) *StreamConfigBuilder {
	return &StreamConfigBuilder{
		config: StreamConfig{
			Name:      name,
			Retention: jetstream.LimitsPolicy,
			Storage:   jetstream.FileStorage,
			Replicas:  1,
			MaxAge:    24 * time.Hour,
			MaxBytes:  100 * 1024 * 1024, // 100MB
			MaxMsgs:   1000000,
			Discard:   jetstream.DiscardOld,
		},
	}
}

// WithSubjects sets the subjects for the stream
func (b *StreamConfigBuilder) WithSubjects(subjects ...string) *StreamConfigBuilder {
	b.config.Subjects = subjects
	return b
}

// WithRetention sets the retention policy
func (b *StreamConfigBuilder) WithRetention(retention jetstream.RetentionPolicy) *StreamConfigBuilder {
	b.config.Retention = retention
	return b
}

// WithStorage sets the storage type
func (b *StreamConfigBuilder) WithStorage(storage jetstream.StorageType) *StreamConfigBuilder {
	b.config.Storage = storage
	return b
}

// WithReplicas sets the number of replicas
func (b *StreamConfigBuilder) WithReplicas(replicas int) *StreamConfigBuilder {
	b.config.Replicas = replicas
	return b
}

// WithMaxAge sets the maximum age for messages
func (b *StreamConfigBuilder) WithMaxAge(maxAge time.Duration) *StreamConfigBuilder {
	b.config.MaxAge = maxAge
	return b
}

// WithMaxBytes sets the maximum bytes for the stream
func (b *StreamConfigBuilder) WithMaxBytes(maxBytes int64) *StreamConfigBuilder {
	b.config.MaxBytes = maxBytes
	return b
}

// WithMaxMsgs sets the maximum number of messages
func (b *StreamConfigBuilder) WithMaxMsgs(maxMsgs int64) *StreamConfigBuilder {
	b.config.MaxMsgs = maxMsgs
	return b
}

// WithDiscard sets the discard policy
func (b *StreamConfigBuilder) WithDiscard(discard jetstream.DiscardPolicy) *StreamConfigBuilder {
	b.config.Discard = discard
	return b
}

// Build returns the stream configuration
func (b *StreamConfigBuilder) Build() StreamConfig {
	return b.config
}

// ConsumerConfigBuilder helps build consumer configurations
type ConsumerConfigBuilder struct {
	config ConsumerConfig
}

// NewConsumerConfigBuilder creates a new consumer configuration builder
func NewConsumerConfigBuilder(streamName, consumerName string) *ConsumerConfigBuilder {
	return &ConsumerConfigBuilder{
		config: ConsumerConfig{
			StreamName:    streamName,
			ConsumerName:  consumerName,
			DeliverPolicy: jetstream.DeliverAllPolicy,
			AckPolicy:     jetstream.AckExplicitPolicy,
			AckWait:       30 * time.Second,
			MaxDeliver:    3,
			ReplayPolicy:  jetstream.ReplayInstantPolicy,
			MaxAckPending: 1000,
		},
	}
}

// WithSubject sets the filter subject
func (b *ConsumerConfigBuilder) WithSubject(subject string) *ConsumerConfigBuilder {
	b.config.FilterSubject = subject
	return b
}

// WithDeliverPolicy sets the deliver policy
func (b *ConsumerConfigBuilder) WithDeliverPolicy(policy jetstream.DeliverPolicy) *ConsumerConfigBuilder {
	b.config.DeliverPolicy = policy
	return b
}

// WithAckPolicy sets the acknowledgment policy
func (b *ConsumerConfigBuilder) WithAckPolicy(policy jetstream.AckPolicy) *ConsumerConfigBuilder {
	b.config.AckPolicy = policy
	return b
}

// WithAckWait sets the acknowledgment wait time
func (b *ConsumerConfigBuilder) WithAckWait(ackWait time.Duration) *ConsumerConfigBuilder {
	b.config.AckWait = ackWait
	return b
}

// WithMaxDeliver sets the maximum delivery attempts
func (b *ConsumerConfigBuilder) WithMaxDeliver(maxDeliver int) *ConsumerConfigBuilder {
	b.config.MaxDeliver = maxDeliver
	return b
}

// WithReplayPolicy sets the replay policy
func (b *ConsumerConfigBuilder) WithReplayPolicy(policy jetstream.ReplayPolicy) *ConsumerConfigBuilder {
	b.config.ReplayPolicy = policy
	return b
}

// WithRateLimit sets the rate limit in bytes per second
func (b *ConsumerConfigBuilder) WithRateLimit(rateLimitBps uint64) *ConsumerConfigBuilder {
	b.config.RateLimitBps = rateLimitBps
	return b
}

// WithMaxAckPending sets the maximum pending acknowledgments
func (b *ConsumerConfigBuilder) WithMaxAckPending(maxAckPending int) *ConsumerConfigBuilder {
	b.config.MaxAckPending = maxAckPending
	return b
}

// Build returns the consumer configuration
func (b *ConsumerConfigBuilder) Build() ConsumerConfig {
	return b.config
}

// DefaultStreamConfigs returns the streams used by the route calculation service
func DefaultStreamConfigs() []StreamConfig {
	return []StreamConfig{
		NewStreamConfigBuilder(constants.StreamRoute).
			WithSubjects(constants.SubjectRouteCalculate).
			WithRetention(jetstream.WorkQueuePolicy).
			WithStorage(jetstream.FileStorage).
			WithMaxAge(24 * time.Hour).
			WithMaxBytes(100 * 1024 * 1024).
			WithMaxMsgs(1000000).
			Build(),
	}
}

// RouteCalculateConsumerConfig returns the worker consumer for calculation jobs
func RouteCalculateConsumerConfig(maxDeliver int, ackWait time.Duration) ConsumerConfig {
	return NewConsumerConfigBuilder(constants.StreamRoute, constants.ConsumerRouteCalculate).
		WithSubject(constants.SubjectRouteCalculate).
		WithDeliverPolicy(jetstream.DeliverAllPolicy).
		WithAckPolicy(jetstream.AckExplicitPolicy).
		WithAckWait(ackWait).
		WithMaxDeliver(maxDeliver).
		Build()
}

// GetStreamForSubject returns the appropriate stream name for a given subject
func GetStreamForSubject(subject string) string {
	switch subject {
	case constants.SubjectRouteCalculate:
		return constants.StreamRoute
	default:
		return ""
	}
}

// EnsureDefaultStreams creates every default stream
func EnsureDefaultStreams(ctx context.Context, client *Client) error {
	for _, config := range DefaultStreamConfigs() {
		if err := client.CreateOrUpdateStream(ctx, config); err != nil {
			return err
		}
	}
	return nil
}
