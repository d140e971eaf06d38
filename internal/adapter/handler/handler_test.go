package handler

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/johnquangdev/meeting-insights/errors"
	"github.com/johnquangdev/meeting-insights/internal/adapter/repository"
	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
	"github.com/johnquangdev/meeting-insights/internal/infrastructure/export"
	meetingUsecase "github.com/johnquangdev/meeting-insights/internal/usecase/meeting"
	"github.com/johnquangdev/meeting-insights/internal/usecase/pipeline"
	"github.com/johnquangdev/meeting-insights/pkg/config"
	pkgvalidator "github.com/johnquangdev/meeting-insights/pkg/validator"
)

const extensionOrigin = "chrome-extension://abcdef"

type fakeRunner struct {
	got    pipeline.Input
	result *pipeline.Result
	err    error
}

func (f *fakeRunner) Run(_ context.Context, in pipeline.Input) (*pipeline.Result, error) {
	f.got = in
	return f.result, f.err
}

type testServer struct {
	e      *echo.Echo
	runner *fakeRunner
	repo   *repository.MemoryMeetingRepository
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	cfg := &config.Config{Server: config.ServerConfig{
		Environment:    "test",
		AllowedOrigins: []string{extensionOrigin},
		MaxAudioSize:   "1K",
	}}

	runner := &fakeRunner{}
	repo := repository.NewMemoryMeetingRepository()
	svc := meetingUsecase.NewMeetingService(repo, export.XLSXExporter{}, nil, nil, nil)

	e := echo.New()
	e.Validator = pkgvalidator.New()
	NewRouter(cfg, nil, NewSummarizeHandler(runner, nil), NewMeetingHandler(svc, nil)).Setup(e)

	return &testServer{e: e, runner: runner, repo: repo}
}

func (s *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) postJSON(path string, body interface{}) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return s.do(req)
}

func multipartRequest(t *testing.T, audio []byte, userEmail string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	if audio != nil {
		part, err := w.CreateFormFile("audio", "hello.mp3")
		require.NoError(t, err)
		_, err = part.Write(audio)
		require.NoError(t, err)
	}
	if userEmail != "" {
		require.NoError(t, w.WriteField("userEmail", userEmail))
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/summarize", &body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	return req
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func assertFailure(t *testing.T, rec *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	assert.Equal(t, status, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, float64(status), body["status"])
	assert.Equal(t, message, body["message"])
	assert.NotEmpty(t, body["code"])
}

func TestSummarize_Success(t *testing.T) {
	s := newTestServer(t)
	id := uuid.New()
	s.runner.result = &pipeline.Result{
		MeetingID:   id,
		Transcript:  "hello team",
		Summary:     "Greeting",
		ActionItems: []string{"Send notes"},
	}

	rec := s.do(multipartRequest(t, []byte("ID3"), "a@x.com"))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, float64(200), body["status"])
	assert.Equal(t, "hello team", body["transcript"])
	assert.Equal(t, "Greeting", body["summary"])
	assert.Equal(t, []interface{}{"Send notes"}, body["actionItems"])
	assert.Equal(t, id.String(), body["meetingId"])

	assert.Equal(t, []byte("ID3"), s.runner.got.Audio)
	assert.Equal(t, "hello.mp3", s.runner.got.Filename)
	assert.Equal(t, "a@x.com", s.runner.got.OwnerEmail)
}

func TestSummarize_MissingAudio(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(multipartRequest(t, nil, "a@x.com"))

	assertFailure(t, rec, http.StatusBadRequest, "Invalid input data")
}

func TestSummarize_StageFailure(t *testing.T) {
	s := newTestServer(t)
	s.runner.err = errors.ErrAITranslationFailed(stderrors.New("upstream"))

	rec := s.do(multipartRequest(t, []byte("ID3"), "a@x.com"))

	assertFailure(t, rec, http.StatusInternalServerError, "Failed to translate text to English")
}

func TestSummarize_BodyTooLarge(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(multipartRequest(t, bytes.Repeat([]byte{0xff}, 4096), "a@x.com"))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, float64(http.StatusRequestEntityTooLarge), decode(t, rec)["status"])
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodOptions, "/api/summarize", nil)
	req.Header.Set(echo.HeaderOrigin, extensionOrigin)
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)

	rec := s.do(req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, extensionOrigin, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Equal(t, "true", rec.Header().Get(echo.HeaderAccessControlAllowCredentials))
	assert.Contains(t, rec.Header().Get(echo.HeaderAccessControlAllowMethods), http.MethodPost)
}

func seedMeeting(t *testing.T, s *testServer, owner string) *entities.Meeting {
	t.Helper()
	m := entities.NewMeeting(owner, "transcript of "+owner, "summary", []string{"item"})
	require.NoError(t, s.repo.Create(context.Background(), m))
	return m
}

func TestListMeetings(t *testing.T) {
	s := newTestServer(t)
	mine := seedMeeting(t, s, "a@x.com")
	seedMeeting(t, s, "b@x.com")

	rec := s.postJSON("/api/meetings", map[string]string{"userEmail": "a@x.com"})

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	meetings := body["meetings"].([]interface{})
	require.Len(t, meetings, 1)
	first := meetings[0].(map[string]interface{})
	assert.Equal(t, mine.ID.String(), first["_id"])
	assert.Equal(t, "a@x.com", first["userEmail"])
	assert.Equal(t, []interface{}{"item"}, first["actionItems"])
}

func TestListMeetings_EmptyIsList(t *testing.T) {
	s := newTestServer(t)

	rec := s.postJSON("/api/meetings", map[string]string{"userEmail": "nobody@x.com"})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":200,"meetings":[]}`, rec.Body.String())
}

func TestListMeetings_MissingOwner(t *testing.T) {
	s := newTestServer(t)

	assertFailure(t, s.postJSON("/api/meetings", map[string]string{}), http.StatusBadRequest, "Invalid input data")
	assertFailure(t, s.postJSON("/api/meetings", map[string]string{"userEmail": "  "}), http.StatusBadRequest, "Invalid input data")

	req := httptest.NewRequest(http.MethodPost, "/api/meetings", strings.NewReader("{not json"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	assertFailure(t, s.do(req), http.StatusBadRequest, "Invalid input data")
}

func TestGetMeeting(t *testing.T) {
	s := newTestServer(t)
	m := seedMeeting(t, s, "a@x.com")

	rec := s.postJSON("/api/meetings/getMeeting", map[string]string{"userEmail": "a@x.com", "meetingID": m.ID.String()})
	require.Equal(t, http.StatusOK, rec.Code)
	meeting := decode(t, rec)["meeting"].(map[string]interface{})
	assert.Equal(t, m.Transcript, meeting["transcript"])

	rec = s.postJSON("/api/meetings/getMeeting", map[string]string{"userEmail": "b@x.com", "meetingID": m.ID.String()})
	assertFailure(t, rec, http.StatusNotFound, "Meeting not found")
}

func TestDeleteMeeting(t *testing.T) {
	s := newTestServer(t)
	m := seedMeeting(t, s, "a@x.com")
	req := map[string]string{"userEmail": "a@x.com", "meetingID": m.ID.String()}

	assertFailure(t, s.postJSON("/api/meetings/deleteMeeting", map[string]string{"userEmail": "b@x.com", "meetingID": m.ID.String()}),
		http.StatusNotFound, "Meeting not found")
	assert.Equal(t, 1, s.repo.Count())

	rec := s.postJSON("/api/meetings/deleteMeeting", req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":200,"message":"Meeting deleted successfully"}`, rec.Body.String())
	assert.Zero(t, s.repo.Count())

	assertFailure(t, s.postJSON("/api/meetings/deleteMeeting", req), http.StatusNotFound, "Meeting not found")
	assertFailure(t, s.postJSON("/api/meetings/deleteMeeting", map[string]string{"userEmail": "a@x.com"}),
		http.StatusBadRequest, "Invalid input data")
}

func TestExportMeetings(t *testing.T) {
	s := newTestServer(t)
	m := seedMeeting(t, s, "a@x.com")

	rec := s.postJSON("/api/meetings/export", map[string]string{"userEmail": "a@x.com"})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), `filename="meetings.xlsx"`)
	assert.Equal(t, export.XLSXExporter{}.ContentType(), rec.Header().Get(echo.HeaderContentType))

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Meetings")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, m.ID.String(), rows[1][0])
}

func TestUnknownRoute(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(httptest.NewRequest(http.MethodGet, "/api/nothing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, float64(http.StatusNotFound), decode(t, rec)["status"])
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decode(t, rec)["status"])
}
