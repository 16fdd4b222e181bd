package handler

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/nats-io/nats-server/v2/server"
	natsserver "github.com/nats-io/nats-server/v2/test"
	"github.com/piresc/routecalc/internal/pkg/constants"
	"github.com/piresc/routecalc/internal/pkg/models"
	natspkg "github.com/piresc/routecalc/internal/pkg/nats"
	"github.com/piresc/routecalc/services/route/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNatsServer *server.Server

func TestMain(m *testing.M) {
	storeDir, err := os.MkdirTemp("", "routecalc-worker-js")
	if err != nil {
		panic(err)
	}

	opts := natsserver.DefaultTestOptions
	opts.Port = -1
	opts.JetStream = true
	opts.StoreDir = storeDir
	testNatsServer = natsserver.RunServer(&opts)

	code := m.Run()

	testNatsServer.Shutdown()
	os.RemoveAll(storeDir)
	os.Exit(code)
}

func setupWorker(t *testing.T, maxAttempts int) (*RouteHandler, *mocks.MockRouteUC, *natspkg.Client) {
	ctrl := gomock.NewController(t)
	mockRouteUC := mocks.NewMockRouteUC(ctrl)

	client, err := natspkg.NewClient(testNatsServer.ClientURL())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = client.GetJetStream().DeleteStream(ctx, constants.StreamRoute)
	require.NoError(t, natspkg.EnsureDefaultStreams(ctx, client))

	cfg := &models.Config{Jobs: models.JobsConfig{Workers: 2, MaxAttempts: maxAttempts, LockTTL: 30}}
	handler := NewRouteHandler(mockRouteUC, client, cfg, nil)
	require.NoError(t, handler.InitNATSConsumers())

	// stop consuming before the mock controller verifies expectations
	t.Cleanup(func() {
		handler.Stop()
		client.Close()
		ctrl.Finish()
	})
	return handler, mockRouteUC, client
}

func publish(t *testing.T, client *natspkg.Client, data []byte) {
	_, err := client.PublishWithOptions(context.Background(), natspkg.PublishOptions{
		Subject: constants.SubjectRouteCalculate,
		Data:    data,
		MsgID:   uuid.NewString(),
		Timeout: 5 * time.Second,
	})
	require.NoError(t, err)
}

func waitFor(t *testing.T, done <-chan struct{}) {
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for the worker")
	}
}

func TestRouteHandler_ProcessesJob(t *testing.T) {
	// Arrange
	_, mockRouteUC, client := setupWorker(t, 3)
	job := models.CalculationJob{RouteID: uuid.New(), Reason: models.ReasonFull, RequestedAt: time.Now().UTC()}
	body, err := json.Marshal(job)
	require.NoError(t, err)

	done := make(chan struct{})
	var received models.CalculationJob
	mockRouteUC.EXPECT().ProcessCalculationJob(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, got models.CalculationJob) error {
			received = got
			close(done)
			return nil
		})

	// Act
	publish(t, client, body)

	// Assert
	waitFor(t, done)
	assert.Equal(t, job.RouteID, received.RouteID)
	assert.Equal(t, models.ReasonFull, received.Reason)
}

func TestRouteHandler_MarksFailedAfterLastAttempt(t *testing.T) {
	// Arrange
	_, mockRouteUC, client := setupWorker(t, 1)
	job := models.CalculationJob{RouteID: uuid.New(), Reason: models.ReasonFull, RequestedAt: time.Now().UTC()}
	body, err := json.Marshal(job)
	require.NoError(t, err)
	failure := errors.New("routing backend unreachable")

	done := make(chan struct{})
	mockRouteUC.EXPECT().ProcessCalculationJob(gomock.Any(), gomock.Any()).Return(failure)
	mockRouteUC.EXPECT().MarkCalculationFailed(gomock.Any(), gomock.Any(), failure).
		DoAndReturn(func(_ context.Context, got models.CalculationJob, _ error) error {
			assert.Equal(t, job.RouteID, got.RouteID)
			close(done)
			return nil
		})

	// Act
	publish(t, client, body)

	// Assert
	waitFor(t, done)
}

func TestRouteHandler_DropsMalformedJob(t *testing.T) {
	// Arrange
	_, mockRouteUC, client := setupWorker(t, 3)
	job := models.CalculationJob{RouteID: uuid.New(), RequestedAt: time.Now().UTC()}
	body, err := json.Marshal(job)
	require.NoError(t, err)

	done := make(chan struct{})
	mockRouteUC.EXPECT().ProcessCalculationJob(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, got models.CalculationJob) error {
			assert.Equal(t, job.RouteID, got.RouteID)
			close(done)
			return nil
		}).Times(1)

	// Act
	publish(t, client, []byte("{not json"))
	publish(t, client, body)

	// Assert
	waitFor(t, done)
}
