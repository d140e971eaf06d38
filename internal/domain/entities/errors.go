package entities

import "errors"

// Domain errors
var (
	// Meeting errors
	ErrMeetingNotFound           = errors.New("meeting not found")
	ErrMeetingOwnerRequired      = errors.New("meeting owner email is required")
	ErrMeetingTranscriptRequired = errors.New("meeting transcript is required")
)
