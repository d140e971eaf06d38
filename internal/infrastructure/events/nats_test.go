package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-insights/internal/domain/services"
)

type capturedMsg struct {
	subject string
	data    []byte
}

type fakeConn struct{ msgs []capturedMsg }

func (c *fakeConn) Publish(subject string, data []byte) error {
	c.msgs = append(c.msgs, capturedMsg{subject, data})
	return nil
}

func TestPublish_SubjectAndPayload(t *testing.T) {
	conn := &fakeConn{}
	p := NewPublisher(conn, "")
	at := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	err := p.Publish(context.Background(), services.EventMeetingCreated, services.MeetingEvent{
		MeetingID:  "m-1",
		OwnerEmail: "a@x.com",
		OccurredAt: at,
	})
	require.NoError(t, err)
	require.Len(t, conn.msgs, 1)
	assert.Equal(t, "meetings.created", conn.msgs[0].subject)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(conn.msgs[0].data, &payload))
	assert.Equal(t, "m-1", payload["meetingId"])
	assert.Equal(t, "a@x.com", payload["userEmail"])
	assert.Equal(t, "2024-03-01T09:00:00Z", payload["occurredAt"])
}

func TestPublish_CancelledContext(t *testing.T) {
	conn := &fakeConn{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewPublisher(conn, "audit").Publish(ctx, services.EventMeetingDeleted, services.MeetingEvent{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, conn.msgs)
}
