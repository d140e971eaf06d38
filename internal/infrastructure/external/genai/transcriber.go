package genai

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/johnquangdev/meeting-insights/internal/domain/services"
	usecaseErrors "github.com/johnquangdev/meeting-insights/internal/usecase/errors"
)

// AssemblyAIAPI is the part of pkg/ai.AssemblyAIClient used here
type AssemblyAIAPI interface {
	TranscribeAudio(ctx context.Context, audio io.Reader) (string, error)
}

// WhisperAPI is the part of pkg/ai.GroqClient used here
type WhisperAPI interface {
	TranscribeAudio(ctx context.Context, filename string, audio io.Reader) (string, error)
}

// AssemblyAITranscriber transcribes audio with AssemblyAI
type AssemblyAITranscriber struct {
	client AssemblyAIAPI
}

// NewAssemblyAITranscriber creates a transcriber backed by AssemblyAI
func NewAssemblyAITranscriber(client AssemblyAIAPI) *AssemblyAITranscriber {
	return &AssemblyAITranscriber{client: client}
}

// Transcribe implements services.Transcriber
func (t *AssemblyAITranscriber) Transcribe(ctx context.Context, audio services.Audio) (string, error) {
	text, err := t.client.TranscribeAudio(ctx, bytes.NewReader(audio.Data))
	return transcriptOrError(text, err)
}

// GroqTranscriber transcribes audio with Groq's whisper endpoint
type GroqTranscriber struct {
	client WhisperAPI
}

// NewGroqTranscriber creates a transcriber backed by Groq whisper
func NewGroqTranscriber(client WhisperAPI) *GroqTranscriber {
	return &GroqTranscriber{client: client}
}

// Transcribe implements services.Transcriber
func (t *GroqTranscriber) Transcribe(ctx context.Context, audio services.Audio) (string, error) {
	filename := audio.Filename
	if filename == "" {
		filename = "audio.mp3"
	}
	text, err := t.client.TranscribeAudio(ctx, filename, bytes.NewReader(audio.Data))
	return transcriptOrError(text, err)
}

func transcriptOrError(text string, err error) (string, error) {
	if err != nil {
		return "", fmt.Errorf("transcribe: %w: %v", usecaseErrors.ErrServiceUnavailable, err)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("transcribe: %w", usecaseErrors.ErrEmptyResult)
	}
	return text, nil
}
