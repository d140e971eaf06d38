package genai

import (
	"context"
	"fmt"
	"strings"

	usecaseErrors "github.com/johnquangdev/meeting-insights/internal/usecase/errors"
)

// Completer runs a single instruction over a piece of text
type Completer interface {
	Complete(ctx context.Context, instruction, content string) (string, error)
}

// invoke is the shared request/response unit behind every text stage
func invoke(ctx context.Context, c Completer, stage, instruction, content string) (string, error) {
	out, err := c.Complete(ctx, instruction, content)
	if err != nil {
		return "", fmt.Errorf("%s: %w: %v", stage, usecaseErrors.ErrServiceUnavailable, err)
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return "", fmt.Errorf("%s: %w", stage, usecaseErrors.ErrEmptyResult)
	}
	return out, nil
}

// Translator normalises text to English
type Translator struct {
	llm Completer
}

// NewTranslator creates a translator backed by llm
func NewTranslator(llm Completer) *Translator {
	return &Translator{llm: llm}
}

// Translate returns text in English
func (t *Translator) Translate(ctx context.Context, text string) (string, error) {
	return invoke(ctx, t.llm, "translate", translateInstruction, text)
}

// Summarizer produces a meeting summary
type Summarizer struct {
	llm Completer
}

// NewSummarizer creates a summarizer backed by llm
func NewSummarizer(llm Completer) *Summarizer {
	return &Summarizer{llm: llm}
}

// Summarize returns a short summary of transcript
func (s *Summarizer) Summarize(ctx context.Context, transcript string) (string, error) {
	return invoke(ctx, s.llm, "summarize", summarizeInstruction, transcript)
}

// ActionItemExtractor asks the model for a JSON list of action items
type ActionItemExtractor struct {
	llm Completer
}

// NewActionItemExtractor creates an extractor backed by llm
func NewActionItemExtractor(llm Completer) *ActionItemExtractor {
	return &ActionItemExtractor{llm: llm}
}

// ExtractActionItems returns the raw payload; it is not parsed here
func (e *ActionItemExtractor) ExtractActionItems(ctx context.Context, transcript string) (string, error) {
	return invoke(ctx, e.llm, "extract action items", extractActionItemsInstruction, transcript)
}
