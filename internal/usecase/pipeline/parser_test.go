package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
	usecaseErrors "github.com/johnquangdev/meeting-insights/internal/usecase/errors"
)

func TestParseActionItems(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    []string
	}{
		{"plain array", `["Send notes","Book room"]`, []string{"Send notes", "Book room"}},
		{"fenced", "```json\n[\"Send notes\"]\n```", []string{"Send notes"}},
		{"bare fence", "```\n[\"a\"]\n```", []string{"a"}},
		{"empty array", `[]`, []string{entities.NoActionItems}},
		{"blank entries dropped", `["  ", "Call Bob ", ""]`, []string{"Call Bob"}},
		{"only blanks", `[" "]`, []string{entities.NoActionItems}},
		{"sentinel passes through", `["No action items required"]`, []string{entities.NoActionItems}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseActionItems(tt.payload)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseActionItems_Malformed(t *testing.T) {
	for _, payload := range []string{"", "   ", "not json", `{"items":["a"]}`, `[1,2]`, `null`, `"just a string"`} {
		_, err := ParseActionItems(payload)
		assert.ErrorIs(t, err, usecaseErrors.ErrMalformedActionItems, "payload %q", payload)
	}
}
