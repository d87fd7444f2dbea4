package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
)

func TestKafkaPublisherWritesKeyedMessage(t *testing.T) {
	writer := &stubWriter{}
	publisher := newKafkaPublisher(writer, "enrollment_events")

	occurred := time.Date(2025, time.September, 5, 15, 30, 0, 0, time.UTC)
	evt := NewEnrollmentChanged(TypeSignUp, "Chess Club", "newstudent@mergington.edu", 3, 12, occurred)

	before := testutil.ToFloat64(publishedCounter.WithLabelValues(TypeSignUp))
	require.NoError(t, publisher.Publish(context.Background(), evt))
	after := testutil.ToFloat64(publishedCounter.WithLabelValues(TypeSignUp))
	require.Equal(t, before+1, after)

	require.Len(t, writer.messages, 1)
	msg := writer.messages[0]
	require.Equal(t, "Chess Club", string(msg.Key))
	require.Equal(t, occurred, msg.Time)
	require.Equal(t, TypeSignUp, headerValue(msg, "event_type"))
	require.Equal(t, evt.EventID, headerValue(msg, "event_id"))

	var decoded EnrollmentChanged
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	require.Equal(t, evt, decoded)
}

func TestKafkaPublisherReportsWriteFailure(t *testing.T) {
	writer := &stubWriter{err: errors.New("leader not available")}
	publisher := newKafkaPublisher(writer, "enrollment_events")

	evt := NewEnrollmentChanged(TypeUnregister, "Chess Club", "daniel@mergington.edu", 1, 12, time.Now())

	before := testutil.ToFloat64(failedCounter.WithLabelValues(TypeUnregister))
	err := publisher.Publish(context.Background(), evt)
	require.ErrorIs(t, err, writer.err)
	require.Contains(t, err.Error(), "enrollment_events")
	require.Equal(t, before+1, testutil.ToFloat64(failedCounter.WithLabelValues(TypeUnregister)))
}

func TestKafkaPublisherClose(t *testing.T) {
	writer := &stubWriter{}
	publisher := newKafkaPublisher(writer, "enrollment_events")

	require.NoError(t, publisher.Close())
	require.True(t, writer.closed)
}

func TestNewEnrollmentChangedAssignsUniqueIDs(t *testing.T) {
	local := time.Date(2025, time.September, 5, 10, 0, 0, 0, time.FixedZone("EST", -5*3600))

	first := NewEnrollmentChanged(TypeSignUp, "Art Club", "a@mergington.edu", 3, 18, local)
	second := NewEnrollmentChanged(TypeSignUp, "Art Club", "a@mergington.edu", 3, 18, local)

	require.NotEqual(t, first.EventID, second.EventID)
	require.Equal(t, time.UTC, first.OccurredAt.Location())
	require.True(t, first.OccurredAt.Equal(local))
}

func TestNoopPublisher(t *testing.T) {
	var publisher Publisher = NoopPublisher{}
	require.NoError(t, publisher.Publish(context.Background(), EnrollmentChanged{}))
}

type stubWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (s *stubWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if s.err != nil {
		return s.err
	}
	s.messages = append(s.messages, msgs...)
	return nil
}

func (s *stubWriter) Close() error {
	s.closed = true
	return nil
}

func headerValue(msg kafka.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}
