package services

import "context"

// Audio is a recorded meeting submitted for processing
type Audio struct {
	Data        []byte
	Filename    string
	ContentType string
}

// Transcriber converts speech to text. The text may be in any language.
type Transcriber interface {
	Transcribe(ctx context.Context, audio Audio) (string, error)
}

// Translator normalises text to English and returns English input unchanged
type Translator interface {
	Translate(ctx context.Context, text string) (string, error)
}

// Summarizer reduces a transcript to a short summary
type Summarizer interface {
	Summarize(ctx context.Context, transcript string) (string, error)
}

// ActionItemExtractor returns the raw, list-shaped action item payload
// for a transcript. Callers are responsible for parsing it.
type ActionItemExtractor interface {
	ExtractActionItems(ctx context.Context, transcript string) (string, error)
}
