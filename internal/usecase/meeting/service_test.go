package meeting

import (
	"bytes"
	"context"
	stderrors "errors"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-insights/errors"
	"github.com/johnquangdev/meeting-insights/internal/adapter/repository"
	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
	"github.com/johnquangdev/meeting-insights/internal/domain/services"
)

type recordingExporter struct {
	got []*entities.Meeting
	err error
}

func (e *recordingExporter) Export(w io.Writer, meetings []*entities.Meeting) error {
	e.got = meetings
	if e.err != nil {
		return e.err
	}
	_, err := w.Write([]byte("xlsx"))
	return err
}

func (e *recordingExporter) ContentType() string { return "application/octet-stream" }
func (e *recordingExporter) FileExtension() string { return ".bin" }

type recordingArchive struct{ removed []string }

func (a *recordingArchive) ArchiveAudio(context.Context, string, services.Audio) error { return nil }
func (a *recordingArchive) RemoveAudio(_ context.Context, id string) error {
	a.removed = append(a.removed, id)
	return nil
}

type recordingPublisher struct{ names []string }

func (p *recordingPublisher) Publish(_ context.Context, name string, _ services.MeetingEvent) error {
	p.names = append(p.names, name)
	return nil
}

func newService(t *testing.T) (*MeetingService, *repository.MemoryMeetingRepository, *entities.Meeting) {
	t.Helper()
	repo := repository.NewMemoryMeetingRepository()
	m := entities.NewMeeting("a@x.com", "hello", "greeting", []string{"Send notes"})
	require.NoError(t, repo.Create(context.Background(), m))
	return NewMeetingService(repo, &recordingExporter{}, nil, nil, nil), repo, m
}

func appCode(t *testing.T, err error) errors.ErrorCode {
	t.Helper()
	var appErr errors.AppError
	require.ErrorAs(t, err, &appErr)
	return appErr.Code
}

func TestList(t *testing.T) {
	svc, _, m := newService(t)

	list, err := svc.List(context.Background(), "a@x.com")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, m.ID, list[0].ID)

	list, err = svc.List(context.Background(), "b@x.com")
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = svc.List(context.Background(), " ")
	assert.Equal(t, errors.ErrorCode_INVALID_ARGUMENT, appCode(t, err))
}

func TestGet(t *testing.T) {
	svc, _, m := newService(t)
	ctx := context.Background()

	got, err := svc.Get(ctx, m.ID.String(), "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "hello", got.Transcript)

	_, err = svc.Get(ctx, m.ID.String(), "b@x.com")
	assert.Equal(t, errors.ErrorCode_MEETING_NOT_FOUND, appCode(t, err))

	_, err = svc.Get(ctx, "not-a-uuid", "a@x.com")
	assert.Equal(t, errors.ErrorCode_MEETING_NOT_FOUND, appCode(t, err))

	_, err = svc.Get(ctx, "", "a@x.com")
	assert.Equal(t, errors.ErrorCode_INVALID_ARGUMENT, appCode(t, err))
}

func TestDelete(t *testing.T) {
	repo := repository.NewMemoryMeetingRepository()
	m := entities.NewMeeting("a@x.com", "hello", "", nil)
	require.NoError(t, repo.Create(context.Background(), m))
	archive := &recordingArchive{}
	publisher := &recordingPublisher{}
	svc := NewMeetingService(repo, &recordingExporter{}, archive, publisher, nil)
	ctx := context.Background()

	err := svc.Delete(ctx, m.ID.String(), "b@x.com")
	assert.Equal(t, errors.ErrorCode_MEETING_NOT_FOUND, appCode(t, err))
	assert.Equal(t, 1, repo.Count())
	assert.Empty(t, publisher.names)

	require.NoError(t, svc.Delete(ctx, m.ID.String(), "a@x.com"))
	assert.Zero(t, repo.Count())
	assert.Equal(t, []string{m.ID.String()}, archive.removed)
	assert.Equal(t, []string{services.EventMeetingDeleted}, publisher.names)

	err = svc.Delete(ctx, m.ID.String(), "a@x.com")
	assert.Equal(t, errors.ErrorCode_MEETING_NOT_FOUND, appCode(t, err))

	err = svc.Delete(ctx, uuid.NewString(), "")
	assert.Equal(t, errors.ErrorCode_INVALID_ARGUMENT, appCode(t, err))
}

func TestExport(t *testing.T) {
	repo := repository.NewMemoryMeetingRepository()
	require.NoError(t, repo.Create(context.Background(), entities.NewMeeting("a@x.com", "one", "s", nil)))
	require.NoError(t, repo.Create(context.Background(), entities.NewMeeting("b@x.com", "two", "s", nil)))
	exporter := &recordingExporter{}
	svc := NewMeetingService(repo, exporter, nil, nil, nil)

	var buf bytes.Buffer
	require.NoError(t, svc.Export(context.Background(), "a@x.com", &buf))
	assert.Equal(t, "xlsx", buf.String())
	require.Len(t, exporter.got, 1)
	assert.Equal(t, "one", exporter.got[0].Transcript)

	exporter.err = stderrors.New("disk full")
	err := svc.Export(context.Background(), "a@x.com", &buf)
	assert.Equal(t, errors.ErrorCode_MEETING_EXPORT_FAILED, appCode(t, err))
}
