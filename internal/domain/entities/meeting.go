package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Sentinel values stored in place of absent pipeline artefacts
const (
	NoSummary     = "No summary available"
	NoActionItems = "No action items required"
)

// Meeting is a processed recording owned by a single user
type Meeting struct {
	ID          uuid.UUID                  `json:"_id" gorm:"type:uuid;primaryKey"`
	OwnerEmail  string                     `json:"userEmail" gorm:"type:varchar(320);not null;index:idx_meetings_owner_created,priority:1"`
	Transcript  string                     `json:"transcript" gorm:"type:text;not null"`
	Summary     string                     `json:"summary" gorm:"type:text;not null"`
	ActionItems datatypes.JSONSlice[string] `json:"actionItems" gorm:"type:jsonb;not null"`
	CreatedAt   time.Time                  `json:"createdAt" gorm:"autoCreateTime;index:idx_meetings_owner_created,priority:2,sort:desc"`
	UpdatedAt   time.Time                  `json:"updatedAt" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Meeting) TableName() string {
	return "meetings"
}

// NewMeeting creates a meeting with a fresh id
func NewMeeting(ownerEmail, transcript, summary string, actionItems []string) *Meeting {
	m := &Meeting{
		ID:          uuid.New(),
		OwnerEmail:  ownerEmail,
		Transcript:  transcript,
		Summary:     summary,
		ActionItems: datatypes.JSONSlice[string](actionItems),
	}
	m.ApplyDefaults()
	return m
}

// ApplyDefaults fills the id and substitutes sentinels for absent fields
func (m *Meeting) ApplyDefaults() {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if strings.TrimSpace(m.Summary) == "" {
		m.Summary = NoSummary
	}
	if m.ActionItems == nil {
		m.ActionItems = datatypes.JSONSlice[string]{}
	}
}

// Validate checks the required-field constraints of the entity
func (m *Meeting) Validate() error {
	if strings.TrimSpace(m.OwnerEmail) == "" {
		return ErrMeetingOwnerRequired
	}
	if strings.TrimSpace(m.Transcript) == "" {
		return ErrMeetingTranscriptRequired
	}
	return nil
}

// BeforeCreate is a GORM hook
func (m *Meeting) BeforeCreate(tx *gorm.DB) error {
	m.ApplyDefaults()
	return m.Validate()
}

// Items returns the action items as a plain slice
func (m *Meeting) Items() []string {
	return []string(m.ActionItems)
}
