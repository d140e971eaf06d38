package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
	"github.com/johnquangdev/meeting-insights/internal/domain/repositories"
)

type meetingRepository struct {
	db *gorm.DB
}

// NewMeetingRepository creates a new meeting repository backed by Postgres
func NewMeetingRepository(db *gorm.DB) repositories.MeetingRepository {
	return &meetingRepository{db: db}
}

// Create inserts a meeting
func (r *meetingRepository) Create(ctx context.Context, meeting *entities.Meeting) error {
	if meeting == nil {
		return errors.New("meeting cannot be nil")
	}
	return r.db.WithContext(ctx).Create(meeting).Error
}

// ListByOwner retrieves all meetings of an owner, newest first
func (r *meetingRepository) ListByOwner(ctx context.Context, ownerEmail string) ([]*entities.Meeting, error) {
	meetings := make([]*entities.Meeting, 0)
	if err := r.db.WithContext(ctx).
		Where("owner_email = ?", ownerEmail).
		Order("created_at DESC, id DESC").
		Find(&meetings).Error; err != nil {
		return nil, err
	}
	return meetings, nil
}

// FindOne retrieves a meeting by ID within the owner's records
func (r *meetingRepository) FindOne(ctx context.Context, id uuid.UUID, ownerEmail string) (*entities.Meeting, error) {
	var meeting entities.Meeting
	if err := r.db.WithContext(ctx).
		Where("id = ? AND owner_email = ?", id, ownerEmail).
		Take(&meeting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrMeetingNotFound
		}
		return nil, err
	}
	return &meeting, nil
}

// Delete removes a meeting by ID within the owner's records
func (r *meetingRepository) Delete(ctx context.Context, id uuid.UUID, ownerEmail string) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND owner_email = ?", id, ownerEmail).
		Delete(&entities.Meeting{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return entities.ErrMeetingNotFound
	}
	return nil
}
