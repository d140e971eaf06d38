package services

import (
	"context"
	"io"
	"time"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
)

// TranscriptCache stores normalised transcripts keyed by audio digest
type TranscriptCache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, transcript string, ttl time.Duration) error
}

// AudioArchive keeps a copy of the processed recording
type AudioArchive interface {
	ArchiveAudio(ctx context.Context, meetingID string, audio Audio) error
	RemoveAudio(ctx context.Context, meetingID string) error
}

// MeetingEvent is published after a meeting was created or deleted
type MeetingEvent struct {
	MeetingID  string    `json:"meetingId"`
	OwnerEmail string    `json:"userEmail"`
	OccurredAt time.Time `json:"occurredAt"`
}

// Event names
const (
	EventMeetingCreated = "created"
	EventMeetingDeleted = "deleted"
)

// EventPublisher delivers meeting lifecycle events
type EventPublisher interface {
	Publish(ctx context.Context, name string, event MeetingEvent) error
}

// MeetingExporter renders meetings into a downloadable document
type MeetingExporter interface {
	Export(w io.Writer, meetings []*entities.Meeting) error
	ContentType() string
	FileExtension() string
}
