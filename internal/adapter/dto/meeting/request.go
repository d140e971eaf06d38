package meeting

// ListMeetingsRequest represents the request to list an owner's meetings
type ListMeetingsRequest struct {
	UserEmail string `json:"userEmail" validate:"required,notblank"`
}

// MeetingRequest addresses a single meeting of an owner
type MeetingRequest struct {
	UserEmail string `json:"userEmail" validate:"required,notblank"`
	MeetingID string `json:"meetingID" validate:"required,notblank"`
}

// ExportMeetingsRequest represents the request to export an owner's meetings
type ExportMeetingsRequest struct {
	UserEmail string `json:"userEmail" validate:"required,notblank"`
}
