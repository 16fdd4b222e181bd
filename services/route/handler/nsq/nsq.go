package handler

import (
	"context"
	"fmt"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/routecalc/internal/pkg/constants"
	"github.com/piresc/routecalc/internal/pkg/logger"
	"github.com/piresc/routecalc/internal/pkg/models"
	nrpkg "github.com/piresc/routecalc/internal/pkg/newrelic"
	nsqpkg "github.com/piresc/routecalc/internal/pkg/nsq"
	"github.com/piresc/routecalc/internal/pkg/requestcontext"
	"github.com/piresc/routecalc/services/route"
)

// RouteHandler consumes calculation jobs from NSQ
type RouteHandler struct {
	routeUC  route.RouteUC
	cfg      *models.Config
	nrApp    *newrelic.Application
	consumer *nsqpkg.Consumer
}

// NewRouteHandler creates a new route NSQ handler
func NewRouteHandler(routeUC route.RouteUC, cfg *models.Config, nrApp *newrelic.Application) *RouteHandler {
	return &RouteHandler{
		routeUC: routeUC,
		cfg:     cfg,
		nrApp:   nrApp,
	}
}

// InitNSQConsumers starts the calculation consumer on the configured channel
func (h *RouteHandler) InitNSQConsumers() error {
	jobs := h.cfg.Jobs
	consumer, err := nsqpkg.NewConsumer(constants.TopicRouteCalculate, h.cfg.NSQ.Channel, nsqpkg.ConsumerOptions{
		Workers:      jobs.Workers,
		MaxAttempts:  jobs.MaxAttempts,
		RequeueDelay: time.Duration(jobs.RetryDelay) * time.Second,
		OnTerminate:  h.handleCalculationTerminated,
	}, h.handleCalculationJob)
	if err != nil {
		return err
	}

	if len(h.cfg.NSQ.LookupdAddresses) > 0 {
		err = consumer.ConnectToLookupd(h.cfg.NSQ.LookupdAddresses)
	} else {
		err = consumer.ConnectToNSQD(h.cfg.NSQ.NSQDAddress)
	}
	if err != nil {
		consumer.Stop()
		return fmt.Errorf("failed to start route calculation consumer: %w", err)
	}

	logger.Info("Started route calculation workers",
		logger.String("topic", constants.TopicRouteCalculate),
		logger.String("channel", h.cfg.NSQ.Channel),
		logger.Int("workers", jobs.Workers))
	h.consumer = consumer
	return nil
}

// Stop stops consuming and waits for in-flight jobs
func (h *RouteHandler) Stop() {
	if h.consumer != nil {
		h.consumer.Stop()
	}
}

func (h *RouteHandler) handleCalculationJob(body []byte) error {
	ctx, txn := nrpkg.NewBackgroundTransaction(context.Background(), h.nrApp, "NSQ.Route.CalculateJob")
	if txn != nil {
		defer txn.End()
	}

	var job models.CalculationJob
	if err := nsqpkg.UnmarshalMessage(body, &job); err != nil {
		logger.ErrorCtx(ctx, "Dropping malformed calculation job", logger.Err(err))
		return nil
	}
	ctx = requestcontext.WithRequestID(ctx, job.MessageID())

	if err := h.routeUC.ProcessCalculationJob(ctx, job); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return err
	}
	return nil
}

func (h *RouteHandler) handleCalculationTerminated(body []byte, cause error) {
	var job models.CalculationJob
	if err := nsqpkg.UnmarshalMessage(body, &job); err != nil {
		return
	}
	if err := h.routeUC.MarkCalculationFailed(context.Background(), job, cause); err != nil {
		logger.Error("Failed to mark calculation as failed",
			logger.RouteID(job.RouteID),
			logger.Err(err))
	}
}
