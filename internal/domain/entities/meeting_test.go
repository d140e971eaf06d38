package entities

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewMeeting_AppliesSentinels(t *testing.T) {
	m := NewMeeting("a@x.com", "hello world", "  ", nil)

	assert.NotEqual(t, uuid.Nil, m.ID)
	assert.Equal(t, NoSummary, m.Summary)
	assert.NotNil(t, m.ActionItems)
	assert.Empty(t, m.Items())
}

func TestMeeting_Validate(t *testing.T) {
	assert.NoError(t, NewMeeting("a@x.com", "text", "sum", []string{"x"}).Validate())
	assert.ErrorIs(t, NewMeeting("", "text", "", nil).Validate(), ErrMeetingOwnerRequired)
	assert.ErrorIs(t, NewMeeting("a@x.com", " ", "", nil).Validate(), ErrMeetingTranscriptRequired)
}

func TestMeeting_BeforeCreateKeepsExistingID(t *testing.T) {
	id := uuid.New()
	m := &Meeting{ID: id, OwnerEmail: "a@x.com", Transcript: "t"}

	assert.NoError(t, m.BeforeCreate(nil))
	assert.Equal(t, id, m.ID)
	assert.Equal(t, NoSummary, m.Summary)
}
