package meeting

import (
	"context"
	stderrors "errors"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-insights/errors"
	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
	"github.com/johnquangdev/meeting-insights/internal/domain/repositories"
	"github.com/johnquangdev/meeting-insights/internal/domain/services"
)

// Service defines the interface for the meeting use case
type Service interface {
	// List returns the owner's meetings, newest first
	List(ctx context.Context, ownerEmail string) ([]*entities.Meeting, error)

	// Get returns one meeting of the owner
	Get(ctx context.Context, meetingID, ownerEmail string) (*entities.Meeting, error)

	// Delete removes one meeting of the owner
	Delete(ctx context.Context, meetingID, ownerEmail string) error

	// Export writes the owner's meetings as a spreadsheet
	Export(ctx context.Context, ownerEmail string, w io.Writer) error

	// ExportFormat returns the content type and file extension of exports
	ExportFormat() (contentType, extension string)
}

// Ensure MeetingService implements Service interface
var _ Service = (*MeetingService)(nil)

// MeetingService handles meeting business logic
type MeetingService struct {
	meetings  repositories.MeetingRepository
	exporter  services.MeetingExporter
	archive   services.AudioArchive
	publisher services.EventPublisher
	logger    *zap.Logger
}

// NewMeetingService creates a new meeting service. archive and publisher
// may be nil.
func NewMeetingService(
	meetings repositories.MeetingRepository,
	exporter services.MeetingExporter,
	archive services.AudioArchive,
	publisher services.EventPublisher,
	logger *zap.Logger,
) *MeetingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MeetingService{
		meetings:  meetings,
		exporter:  exporter,
		archive:   archive,
		publisher: publisher,
		logger:    logger,
	}
}

// List returns the owner's meetings
func (s *MeetingService) List(ctx context.Context, ownerEmail string) ([]*entities.Meeting, error) {
	if strings.TrimSpace(ownerEmail) == "" {
		return nil, errors.ErrInvalidInput()
	}

	meetings, err := s.meetings.ListByOwner(ctx, ownerEmail)
	if err != nil {
		s.logger.Error("Failed to list meetings", zap.String("owner_email", ownerEmail), zap.Error(err))
		return nil, errors.ErrDBQueryFailed("list meetings", err)
	}
	return meetings, nil
}

// Get returns one meeting of the owner
func (s *MeetingService) Get(ctx context.Context, meetingID, ownerEmail string) (*entities.Meeting, error) {
	id, err := parseRequest(meetingID, ownerEmail)
	if err != nil {
		return nil, err
	}

	meeting, err := s.meetings.FindOne(ctx, id, ownerEmail)
	if err != nil {
		return nil, s.lookupError(err, "find meeting")
	}
	return meeting, nil
}

// Delete removes one meeting of the owner
func (s *MeetingService) Delete(ctx context.Context, meetingID, ownerEmail string) error {
	id, err := parseRequest(meetingID, ownerEmail)
	if err != nil {
		return err
	}

	if _, err := s.meetings.FindOne(ctx, id, ownerEmail); err != nil {
		return s.lookupError(err, "find meeting")
	}
	if err := s.meetings.Delete(ctx, id, ownerEmail); err != nil {
		return s.lookupError(err, "delete meeting")
	}

	s.logger.Info("🗑️ Meeting deleted", zap.String("meeting_id", id.String()), zap.String("owner_email", ownerEmail))

	if s.archive != nil {
		if err := s.archive.RemoveAudio(ctx, id.String()); err != nil {
			s.logger.Warn("⚠️ Failed to remove archived audio", zap.String("meeting_id", id.String()), zap.Error(err))
		}
	}
	if s.publisher != nil {
		event := services.MeetingEvent{MeetingID: id.String(), OwnerEmail: ownerEmail, OccurredAt: time.Now().UTC()}
		if err := s.publisher.Publish(ctx, services.EventMeetingDeleted, event); err != nil {
			s.logger.Warn("⚠️ Failed to publish meeting event", zap.String("meeting_id", id.String()), zap.Error(err))
		}
	}
	return nil
}

// Export writes the owner's meetings through the configured exporter
func (s *MeetingService) Export(ctx context.Context, ownerEmail string, w io.Writer) error {
	meetings, err := s.List(ctx, ownerEmail)
	if err != nil {
		return err
	}
	if err := s.exporter.Export(w, meetings); err != nil {
		s.logger.Error("Failed to export meetings", zap.String("owner_email", ownerEmail), zap.Error(err))
		return errors.ErrMeetingExportFailed(err)
	}
	return nil
}

// ExportFormat returns the content type and file extension of exports
func (s *MeetingService) ExportFormat() (string, string) {
	return s.exporter.ContentType(), s.exporter.FileExtension()
}

// parseRequest validates the owner-scoped identifiers. An id that is
// not a UUID cannot exist and is reported as not found.
func parseRequest(meetingID, ownerEmail string) (uuid.UUID, error) {
	if strings.TrimSpace(meetingID) == "" || strings.TrimSpace(ownerEmail) == "" {
		return uuid.Nil, errors.ErrInvalidInput()
	}
	id, err := uuid.Parse(strings.TrimSpace(meetingID))
	if err != nil {
		return uuid.Nil, errors.ErrMeetingNotFound()
	}
	return id, nil
}

func (s *MeetingService) lookupError(err error, query string) error {
	if stderrors.Is(err, entities.ErrMeetingNotFound) {
		return errors.ErrMeetingNotFound()
	}
	s.logger.Error("Meeting query failed", zap.String("query", query), zap.Error(err))
	return errors.ErrDBQueryFailed(query, err)
}
