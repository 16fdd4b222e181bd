package nsq

import (
	"errors"
	"testing"
	"time"

	"github.com/nsqio/go-nsq"
	"github.com/stretchr/testify/assert"
)

type recordingDelegate struct {
	finished     int
	requeued     int
	requeueDelay time.Duration
}

func (d *recordingDelegate) OnFinish(*nsq.Message) { d.finished++ }

func (d *recordingDelegate) OnRequeue(_ *nsq.Message, delay time.Duration, _ bool) {
	d.requeued++
	d.requeueDelay = delay
}

func (d *recordingDelegate) OnTouch(*nsq.Message) {}

func newTestMessage(attempts uint16) (*nsq.Message, *recordingDelegate) {
	var id nsq.MessageID
	copy(id[:], "0123456789abcdef")
	msg := nsq.NewMessage(id, []byte(`{"route_id":"r1"}`))
	msg.Attempts = attempts
	delegate := &recordingDelegate{}
	msg.Delegate = delegate
	msg.DisableAutoResponse()
	return msg, delegate
}

func TestHandleMessage(t *testing.T) {
	failure := errors.New("backend unreachable")

	tests := []struct {
		name           string
		attempts       uint16
		handlerErr     error
		wantFinished   int
		wantRequeued   int
		wantTerminated bool
	}{
		{name: "success finishes", attempts: 1, wantFinished: 1},
		{name: "failure before last attempt requeues", attempts: 1, handlerErr: failure, wantRequeued: 1},
		{name: "failure on last attempt terminates", attempts: 3, handlerErr: failure, wantFinished: 1, wantTerminated: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, delegate := newTestMessage(tt.attempts)
			terminated := false
			options := ConsumerOptions{
				MaxAttempts:  3,
				RequeueDelay: 5 * time.Second,
				OnTerminate: func(body []byte, err error) {
					terminated = true
					assert.Equal(t, `{"route_id":"r1"}`, string(body))
					assert.Equal(t, failure, err)
				},
			}

			handleMessage(msg, options, func([]byte) error { return tt.handlerErr })

			assert.Equal(t, tt.wantFinished, delegate.finished)
			assert.Equal(t, tt.wantRequeued, delegate.requeued)
			assert.Equal(t, tt.wantTerminated, terminated)
			if tt.wantRequeued > 0 {
				assert.Equal(t, 5*time.Second, delegate.requeueDelay)
			}
		})
	}
}

func TestUnmarshalMessage(t *testing.T) {
	var out struct {
		RouteID string `json:"route_id"`
	}
	assert.NoError(t, UnmarshalMessage([]byte(`{"route_id":"r1"}`), &out))
	assert.Equal(t, "r1", out.RouteID)

	err := UnmarshalMessage([]byte(`not json`), &out)
	assert.ErrorContains(t, err, "failed to unmarshal message")
}

func TestNewProducer_Unreachable(t *testing.T) {
	producer, err := NewProducer("127.0.0.1:1")
	assert.Error(t, err)
	assert.Nil(t, producer)
}
