package pipeline

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
	usecaseErrors "github.com/johnquangdev/meeting-insights/internal/usecase/errors"
)

// ParseActionItems decodes the extractor payload into an ordered list.
// The payload must be a JSON array of strings, optionally wrapped in a
// markdown code block. Blank entries are dropped; an empty array becomes
// the single "no action items" sentinel.
func ParseActionItems(payload string) ([]string, error) {
	raw := extractJSON(payload)
	if raw == "" {
		return nil, fmt.Errorf("%w: empty payload", usecaseErrors.ErrMalformedActionItems)
	}

	var decoded []string
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil, fmt.Errorf("%w: %v", usecaseErrors.ErrMalformedActionItems, err)
	}
	if decoded == nil {
		return nil, fmt.Errorf("%w: null payload", usecaseErrors.ErrMalformedActionItems)
	}

	items := make([]string, 0, len(decoded))
	for _, item := range decoded {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		items = append(items, entities.NoActionItems)
	}
	return items, nil
}

// extractJSON extracts JSON content from markdown code blocks or plain text
func extractJSON(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	}

	return strings.TrimSpace(content)
}
