package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
)

// MeetingRepository defines the interface for meeting data access.
// Every lookup is scoped by owner email; a record owned by someone else
// is reported as entities.ErrMeetingNotFound.
type MeetingRepository interface {
	// Create assigns id and timestamps and stores the meeting
	Create(ctx context.Context, meeting *entities.Meeting) error

	// ListByOwner returns the owner's meetings, newest first
	ListByOwner(ctx context.Context, ownerEmail string) ([]*entities.Meeting, error)

	// FindOne finds a meeting by id within the owner's records
	FindOne(ctx context.Context, id uuid.UUID, ownerEmail string) (*entities.Meeting, error)

	// Delete removes a meeting by id within the owner's records
	Delete(ctx context.Context, id uuid.UUID, ownerEmail string) error
}
