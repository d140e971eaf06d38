package meeting

import "time"

// MeetingResponse represents a stored meeting
type MeetingResponse struct {
	ID          string    `json:"_id"`
	UserEmail   string    `json:"userEmail"`
	Transcript  string    `json:"transcript"`
	Summary     string    `json:"summary"`
	ActionItems []string  `json:"actionItems"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// SummarizeResponse is returned after a recording was processed
type SummarizeResponse struct {
	Status      int      `json:"status"`
	Transcript  string   `json:"transcript"`
	Summary     string   `json:"summary"`
	ActionItems []string `json:"actionItems"`
	MeetingID   string   `json:"meetingId"`
}

// ListMeetingsResponse lists an owner's meetings, newest first
type ListMeetingsResponse struct {
	Status   int               `json:"status"`
	Meetings []MeetingResponse `json:"meetings"`
}

// GetMeetingResponse wraps a single meeting
type GetMeetingResponse struct {
	Status  int             `json:"status"`
	Meeting MeetingResponse `json:"meeting"`
}

// MessageResponse carries a status and a human readable message
type MessageResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}
