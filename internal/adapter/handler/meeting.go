package handler

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-insights/errors"
	"github.com/johnquangdev/meeting-insights/internal/adapter/dto/meeting"
	"github.com/johnquangdev/meeting-insights/internal/adapter/presenter"
	meetingUsecase "github.com/johnquangdev/meeting-insights/internal/usecase/meeting"
)

// Meeting handles meeting-related HTTP requests
type Meeting struct {
	svc    meetingUsecase.Service
	logger *zap.Logger
}

// NewMeetingHandler creates a new meeting handler
func NewMeetingHandler(svc meetingUsecase.Service, logger *zap.Logger) *Meeting {
	return &Meeting{svc: svc, logger: logger}
}

// bindAndValidate decodes the JSON body into req. Both a malformed body
// and a missing field are reported as invalid input.
func (h *Meeting) bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return errors.ErrInvalidPayload()
	}
	if err := c.Validate(req); err != nil {
		return errors.ErrInvalidInput()
	}
	return nil
}

// ListMeetings handles POST /api/meetings
// @Summary      List meetings
// @Description  Lists all meetings of the owner, newest first
// @Tags         Meetings
// @Accept       json
// @Produce      json
// @Param        request  body      meeting.ListMeetingsRequest   true  "Owner"
// @Success      200      {object}  meeting.ListMeetingsResponse  "Meetings"
// @Failure      400      {object}  meeting.ErrorResponse         "Invalid input data"
// @Failure      500      {object}  meeting.ErrorResponse         "Internal server error"
// @Router       /meetings [post]
func (h *Meeting) ListMeetings(c echo.Context) error {
	var req meeting.ListMeetingsRequest
	if err := h.bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	meetings, err := h.svc.List(c.Request().Context(), req.UserEmail)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToListMeetingsResponse(meetings))
}

// GetMeeting handles POST /api/meetings/getMeeting
// @Summary      Get a meeting
// @Tags         Meetings
// @Accept       json
// @Produce      json
// @Param        request  body      meeting.MeetingRequest      true  "Owner and meeting id"
// @Success      200      {object}  meeting.GetMeetingResponse  "Meeting"
// @Failure      400      {object}  meeting.ErrorResponse       "Invalid input data"
// @Failure      404      {object}  meeting.ErrorResponse       "Meeting not found"
// @Router       /meetings/getMeeting [post]
func (h *Meeting) GetMeeting(c echo.Context) error {
	var req meeting.MeetingRequest
	if err := h.bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	m, err := h.svc.Get(c.Request().Context(), req.MeetingID, req.UserEmail)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, meeting.GetMeetingResponse{
		Status:  http.StatusOK,
		Meeting: presenter.ToMeetingResponse(m),
	})
}

// DeleteMeeting handles POST /api/meetings/deleteMeeting
// @Summary      Delete a meeting
// @Tags         Meetings
// @Accept       json
// @Produce      json
// @Param        request  body      meeting.MeetingRequest   true  "Owner and meeting id"
// @Success      200      {object}  meeting.MessageResponse  "Meeting deleted successfully"
// @Failure      400      {object}  meeting.ErrorResponse    "Invalid input data"
// @Failure      404      {object}  meeting.ErrorResponse    "Meeting not found"
// @Router       /meetings/deleteMeeting [post]
func (h *Meeting) DeleteMeeting(c echo.Context) error {
	var req meeting.MeetingRequest
	if err := h.bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.svc.Delete(c.Request().Context(), req.MeetingID, req.UserEmail); err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, meeting.MessageResponse{
		Status:  http.StatusOK,
		Message: "Meeting deleted successfully",
	})
}

// ExportMeetings handles POST /api/meetings/export
// @Summary      Export meetings
// @Description  Downloads all meetings of the owner as an Excel workbook
// @Tags         Meetings
// @Accept       json
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        request  body      meeting.ExportMeetingsRequest  true  "Owner"
// @Success      200      {file}    file                           "Workbook"
// @Failure      400      {object}  meeting.ErrorResponse          "Invalid input data"
// @Router       /meetings/export [post]
func (h *Meeting) ExportMeetings(c echo.Context) error {
	var req meeting.ExportMeetingsRequest
	if err := h.bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	var buf bytes.Buffer
	if err := h.svc.Export(c.Request().Context(), req.UserEmail, &buf); err != nil {
		return HandleError(h.logger, c, err)
	}

	contentType, ext := h.svc.ExportFormat()
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="meetings%s"`, ext))
	return c.Blob(http.StatusOK, contentType, buf.Bytes())
}
