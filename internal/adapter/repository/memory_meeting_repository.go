package repository

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
	"github.com/johnquangdev/meeting-insights/internal/domain/repositories"
)

// MemoryMeetingRepository keeps meetings in process memory.
// Used with DB_DRIVER=memory and in tests.
type MemoryMeetingRepository struct {
	mu       sync.RWMutex
	meetings map[uuid.UUID]*entities.Meeting
	now      func() time.Time
}

var _ repositories.MeetingRepository = (*MemoryMeetingRepository)(nil)

// NewMemoryMeetingRepository creates an empty in-memory repository
func NewMemoryMeetingRepository() *MemoryMeetingRepository {
	return &MemoryMeetingRepository{
		meetings: make(map[uuid.UUID]*entities.Meeting),
		now:      time.Now,
	}
}

// Create stores a copy of the meeting, applying the same defaults and
// validation as the GORM hook.
func (r *MemoryMeetingRepository) Create(_ context.Context, meeting *entities.Meeting) error {
	if meeting == nil {
		return errors.New("meeting cannot be nil")
	}
	meeting.ApplyDefaults()
	if err := meeting.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.meetings[meeting.ID]; exists {
		return errors.New("meeting already exists")
	}
	now := r.now().UTC()
	if meeting.CreatedAt.IsZero() {
		meeting.CreatedAt = now
	}
	meeting.UpdatedAt = now
	r.meetings[meeting.ID] = clone(meeting)
	return nil
}

// ListByOwner returns the owner's meetings, newest first
func (r *MemoryMeetingRepository) ListByOwner(_ context.Context, ownerEmail string) ([]*entities.Meeting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*entities.Meeting, 0)
	for _, m := range r.meetings {
		if m.OwnerEmail == ownerEmail {
			result = append(result, clone(m))
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID.String() > result[j].ID.String()
	})
	return result, nil
}

// FindOne finds a meeting by id within the owner's records
func (r *MemoryMeetingRepository) FindOne(_ context.Context, id uuid.UUID, ownerEmail string) (*entities.Meeting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.meetings[id]
	if !ok || m.OwnerEmail != ownerEmail {
		return nil, entities.ErrMeetingNotFound
	}
	return clone(m), nil
}

// Delete removes a meeting by id within the owner's records
func (r *MemoryMeetingRepository) Delete(_ context.Context, id uuid.UUID, ownerEmail string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.meetings[id]
	if !ok || m.OwnerEmail != ownerEmail {
		return entities.ErrMeetingNotFound
	}
	delete(r.meetings, id)
	return nil
}

// Count returns the number of stored meetings
func (r *MemoryMeetingRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.meetings)
}

func clone(m *entities.Meeting) *entities.Meeting {
	c := *m
	c.ActionItems = append(datatypes.JSONSlice[string]{}, m.ActionItems...)
	return &c
}
