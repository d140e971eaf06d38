package ai

import (
	"context"
	"fmt"
	"io"
	"os"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"

	"github.com/johnquangdev/meeting-insights/pkg/config"
)

// AssemblyAIClient wraps the official AssemblyAI SDK
type AssemblyAIClient struct {
	sdk *aai.Client
}

// NewAssemblyAIClient creates an AssemblyAI client using the provided config.
// If cfg is nil, falls back to environment variables.
func NewAssemblyAIClient(cfg *config.AssemblyAIConfig) *AssemblyAIClient {
	var apiKey, baseURL string
	if cfg != nil {
		apiKey = cfg.APIKey
		baseURL = cfg.BaseURL
	}
	if apiKey == "" {
		apiKey = os.Getenv("ASSEMBLYAI_API_KEY")
	}

	opts := []aai.ClientOption{aai.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, aai.WithBaseURL(baseURL))
	}
	return &AssemblyAIClient{sdk: aai.NewClientWithOptions(opts...)}
}

// TranscribeAudio uploads the audio and blocks until AssemblyAI finished
// transcribing it. The spoken language is detected automatically.
func (c *AssemblyAIClient) TranscribeAudio(ctx context.Context, audio io.Reader) (string, error) {
	uploadURL, err := c.sdk.Upload(ctx, audio)
	if err != nil {
		return "", fmt.Errorf("failed to upload to AssemblyAI: %w", err)
	}

	params := &aai.TranscriptOptionalParams{
		LanguageDetection: aai.Bool(true),
		Punctuate:         aai.Bool(true),
		FormatText:        aai.Bool(true),
	}

	transcript, err := c.sdk.Transcripts.TranscribeFromURL(ctx, uploadURL, params)
	if err != nil {
		return "", fmt.Errorf("assemblyai transcription failed: %w", err)
	}
	if transcript.Status == aai.TranscriptStatusError {
		return "", fmt.Errorf("assemblyai reported error: %s", aai.ToString(transcript.Error))
	}
	return aai.ToString(transcript.Text), nil
}
