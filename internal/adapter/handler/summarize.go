package handler

import (
	stdErrors "errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-insights/errors"
	"github.com/johnquangdev/meeting-insights/internal/adapter/presenter"
	"github.com/johnquangdev/meeting-insights/internal/usecase/pipeline"
)

// Summarize handles recording submissions
type Summarize struct {
	runner pipeline.Runner
	logger *zap.Logger
}

// NewSummarizeHandler creates a new summarize handler
func NewSummarizeHandler(runner pipeline.Runner, logger *zap.Logger) *Summarize {
	return &Summarize{runner: runner, logger: logger}
}

// Summarize handles POST /api/summarize
// @Summary      Process a meeting recording
// @Description  Transcribes the recording, translates it to English, summarizes it, extracts action items and stores the meeting
// @Tags         Meetings
// @Accept       multipart/form-data
// @Produce      json
// @Param        audio      formData  file    true  "Meeting recording"
// @Param        userEmail  formData  string  true  "Owner email"
// @Success      200  {object}  meeting.SummarizeResponse  "Meeting processed"
// @Failure      400  {object}  meeting.ErrorResponse      "Invalid input data"
// @Failure      413  {object}  meeting.ErrorResponse      "Audio file is too large"
// @Failure      500  {object}  meeting.ErrorResponse      "A pipeline stage failed"
// @Router       /summarize [post]
func (h *Summarize) Summarize(c echo.Context) error {
	fileHeader, err := c.FormFile("audio")
	if err != nil {
		if isTooLarge(err) {
			return HandleError(h.logger, c, errors.ErrPayloadTooLarge(""))
		}
		return HandleError(h.logger, c, errors.ErrInvalidInput())
	}

	audio, err := readUpload(fileHeader)
	if err != nil {
		if isTooLarge(err) {
			return HandleError(h.logger, c, errors.ErrPayloadTooLarge(""))
		}
		return HandleError(h.logger, c, errors.ErrInvalidInput())
	}

	result, err := h.runner.Run(c.Request().Context(), pipeline.Input{
		Audio:       audio,
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
		OwnerEmail:  strings.TrimSpace(c.FormValue("userEmail")),
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToSummarizeResponse(result))
}

func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

func isTooLarge(err error) bool {
	var httpErr *echo.HTTPError
	return stdErrors.As(err, &httpErr) && httpErr.Code == http.StatusRequestEntityTooLarge
}
