package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/routecalc/internal/pkg/logger"
	"github.com/piresc/routecalc/internal/pkg/models"
	natspkg "github.com/piresc/routecalc/internal/pkg/nats"
	nrpkg "github.com/piresc/routecalc/internal/pkg/newrelic"
	"github.com/piresc/routecalc/internal/pkg/requestcontext"
	"github.com/piresc/routecalc/services/route"
)

// RouteHandler consumes calculation jobs from JetStream
type RouteHandler struct {
	routeUC    route.RouteUC
	natsClient *natspkg.Client
	cfg        *models.Config
	nrApp      *newrelic.Application
	consumer   *natspkg.Consumer
}

// NewRouteHandler creates a new route NATS handler
func NewRouteHandler(
	routeUC route.RouteUC,
	client *natspkg.Client,
	cfg *models.Config,
	nrApp *newrelic.Application,
) *RouteHandler {
	return &RouteHandler{
		routeUC:    routeUC,
		natsClient: client,
		cfg:        cfg,
		nrApp:      nrApp,
	}
}

// InitNATSConsumers starts the calculation worker pool
func (h *RouteHandler) InitNATSConsumers() error {
	jobs := h.cfg.Jobs
	consumerConfig := natspkg.RouteCalculateConsumerConfig(jobs.MaxAttempts, time.Duration(jobs.LockTTL)*time.Second)

	logger.Info("Starting route calculation workers",
		logger.String("stream", consumerConfig.StreamName),
		logger.String("consumer", consumerConfig.ConsumerName),
		logger.Int("workers", jobs.Workers),
		logger.Int("max_deliver", jobs.MaxAttempts))

	consumer, err := natspkg.NewJetStreamConsumer(h.natsClient, consumerConfig, natspkg.ConsumeOptions{
		Workers:     jobs.Workers,
		MaxDeliver:  jobs.MaxAttempts,
		NakDelay:    time.Duration(jobs.RetryDelay) * time.Second,
		OnTerminate: h.handleCalculationTerminated,
	}, h.handleCalculationJob)
	if err != nil {
		return fmt.Errorf("failed to start route calculation consumer: %w", err)
	}

	h.consumer = consumer
	return nil
}

// Stop stops consuming and waits for in-flight jobs
func (h *RouteHandler) Stop() {
	if h.consumer != nil {
		h.consumer.Stop()
	}
}

func (h *RouteHandler) handleCalculationJob(ctx context.Context, msg jetstream.Msg) error {
	ctx, txn := nrpkg.NewBackgroundTransaction(ctx, h.nrApp, "NATS.Route.CalculateJob")
	if txn != nil {
		defer txn.End()
	}
	nrpkg.AddTransactionAttribute(txn, "message.subject", msg.Subject())
	nrpkg.AddTransactionAttribute(txn, "message.size", len(msg.Data()))

	var job models.CalculationJob
	if err := json.Unmarshal(msg.Data(), &job); err != nil {
		// redelivery cannot fix a malformed payload
		logger.ErrorCtx(ctx, "Dropping malformed calculation job",
			logger.String("subject", msg.Subject()),
			logger.Err(err))
		return nil
	}
	ctx = requestcontext.WithRequestID(ctx, job.MessageID())

	if err := h.routeUC.ProcessCalculationJob(ctx, job); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		logger.ErrorCtx(ctx, "Calculation job failed", logger.RouteID(job.RouteID), logger.Err(err))
		return err
	}
	return nil
}

func (h *RouteHandler) handleCalculationTerminated(ctx context.Context, msg jetstream.Msg, cause error) {
	var job models.CalculationJob
	if err := json.Unmarshal(msg.Data(), &job); err != nil {
		return
	}
	if err := h.routeUC.MarkCalculationFailed(ctx, job, cause); err != nil {
		logger.ErrorCtx(ctx, "Failed to mark calculation as failed",
			logger.RouteID(job.RouteID),
			logger.Err(err))
	}
}
