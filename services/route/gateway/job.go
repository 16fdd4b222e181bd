package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/piresc/routecalc/internal/pkg/constants"
	"github.com/piresc/routecalc/internal/pkg/logger"
	"github.com/piresc/routecalc/internal/pkg/models"
	natspkg "github.com/piresc/routecalc/internal/pkg/nats"
	"github.com/piresc/routecalc/internal/pkg/retry"
	"github.com/piresc/routecalc/services/route"
)

const publishTimeout = 5 * time.Second

// NATSJobGW publishes calculation jobs to JetStream
type NATSJobGW struct {
	natsClient *natspkg.Client
	retrier    *retry.Retrier
}

// NewNATSJobGW creates a JetStream job gateway. A nil retrier publishes once.
func NewNATSJobGW(client *natspkg.Client, retrier *retry.Retrier) route.JobGW {
	return &NATSJobGW{
		natsClient: client,
		retrier:    retrier,
	}
}

// PublishCalculationJob publishes the job, de-duplicated by its message id
func (g *NATSJobGW) PublishCalculationJob(ctx context.Context, job models.CalculationJob) error {
	data, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal calculation job: %w", err)
	}

	publish := func(ctx context.Context) error {
		_, err := g.natsClient.PublishWithOptions(ctx, natspkg.PublishOptions{
			Subject: constants.SubjectRouteCalculate,
			Data:    data,
			MsgID:   job.MessageID(),
			Timeout: publishTimeout,
		})
		return err
	}

	if g.retrier != nil {
		err = g.retrier.Execute(ctx, publish)
	} else {
		err = publish(ctx)
	}
	if err != nil {
		return fmt.Errorf("failed to publish calculation job: %w", err)
	}

	logger.InfoCtx(ctx, "Published calculation job",
		logger.RouteID(job.RouteID),
		logger.String("reason", string(job.Reason)),
		logger.Bool("force", job.Force))
	return nil
}

// topicPublisher is the part of the NSQ producer the gateway needs
type topicPublisher interface {
	Publish(topic string, message interface{}) error
}

// NSQJobGW publishes calculation jobs to an NSQ topic
type NSQJobGW struct {
	producer topicPublisher
	retrier  *retry.Retrier
}

// NewNSQJobGW creates an NSQ job gateway. A nil retrier publishes once.
func NewNSQJobGW(producer topicPublisher, retrier *retry.Retrier) route.JobGW {
	return &NSQJobGW{
		producer: producer,
		retrier:  retrier,
	}
}

// PublishCalculationJob publishes the job to the calculation topic
func (g *NSQJobGW) PublishCalculationJob(ctx context.Context, job models.CalculationJob) error {
	publish := func(context.Context) error {
		return g.producer.Publish(constants.TopicRouteCalculate, job)
	}

	var err error
	if g.retrier != nil {
		err = g.retrier.Execute(ctx, publish)
	} else {
		err = publish(ctx)
	}
	if err != nil {
		return fmt.Errorf("failed to publish calculation job: %w", err)
	}

	logger.InfoCtx(ctx, "Published calculation job",
		logger.RouteID(job.RouteID),
		logger.String("transport", "nsq"),
		logger.String("reason", string(job.Reason)))
	return nil
}

// PublishRetryConfig retries every publish failure except cancellation
func PublishRetryConfig() retry.Config {
	cfg := retry.DefaultConfig("publish calculation job")
	cfg.MaxRetries = 3
	cfg.RetryableFunc = func(err error) bool {
		return !errors.Is(err, context.Canceled)
	}
	return cfg
}
