package presenter

import (
	"net/http"

	"github.com/johnquangdev/meeting-insights/internal/adapter/dto/meeting"
	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
	"github.com/johnquangdev/meeting-insights/internal/usecase/pipeline"
)

// ToMeetingResponse converts a Meeting entity to MeetingResponse DTO
func ToMeetingResponse(m *entities.Meeting) meeting.MeetingResponse {
	items := m.Items()
	if items == nil {
		items = []string{}
	}
	return meeting.MeetingResponse{
		ID:          m.ID.String(),
		UserEmail:   m.OwnerEmail,
		Transcript:  m.Transcript,
		Summary:     m.Summary,
		ActionItems: items,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ToListMeetingsResponse converts meetings keeping their order
func ToListMeetingsResponse(meetings []*entities.Meeting) meeting.ListMeetingsResponse {
	out := make([]meeting.MeetingResponse, 0, len(meetings))
	for _, m := range meetings {
		out = append(out, ToMeetingResponse(m))
	}
	return meeting.ListMeetingsResponse{Status: http.StatusOK, Meetings: out}
}

// ToSummarizeResponse converts a pipeline result
func ToSummarizeResponse(r *pipeline.Result) meeting.SummarizeResponse {
	return meeting.SummarizeResponse{
		Status:      http.StatusOK,
		Transcript:  r.Transcript,
		Summary:     r.Summary,
		ActionItems: r.ActionItems,
		MeetingID:   r.MeetingID.String(),
	}
}
