package mq

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	myconfig "meiduo_user_server/internal/config"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestKafkaPublisherWritesEvent(t *testing.T) {
	w := &fakeWriter{}
	p := &KafkaPublisher{writer: w}
	at := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

	err := p.PublishUserRegistered(context.Background(), UserRegisteredEvent{
		ID: 42, Username: "alice123", Mobile: "13912345678", RegisteredAt: at,
	})
	require.NoError(t, err)
	require.Len(t, w.msgs, 1)

	msg := w.msgs[0]
	assert.Equal(t, "42", string(msg.Key))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, "alice123", decoded["username"])
	assert.Equal(t, "13912345678", decoded["mobile"])
	assert.Equal(t, "2024-05-01T08:00:00Z", decoded["registered_at"])
	assert.NotContains(t, string(msg.Value), "password")

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestKafkaPublisherWrapsWriteError(t *testing.T) {
	p := &KafkaPublisher{writer: &fakeWriter{err: errors.New("broker down")}}

	err := p.PublishUserRegistered(context.Background(), UserRegisteredEvent{ID: 1})
	assert.ErrorContains(t, err, "broker down")
}

func TestNewPublisherSelectsByMode(t *testing.T) {
	assert.IsType(t, NoopPublisher{}, NewPublisher(myconfig.KafkaConfig{MessageMode: "none"}))

	p := NewPublisher(myconfig.KafkaConfig{MessageMode: "kafka", HostPort: "127.0.0.1:9092", UserTopic: "user_registered", Timeout: 1})
	kp, ok := p.(*KafkaPublisher)
	require.True(t, ok)
	writer, ok := kp.writer.(*kafka.Writer)
	require.True(t, ok)
	assert.Equal(t, "user_registered", writer.Topic)
	assert.Equal(t, time.Second, writer.WriteTimeout)
	// 单条事件不等待攒批
	assert.Equal(t, 10*time.Millisecond, writer.BatchTimeout)
}
