package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/johnquangdev/meeting-insights/pkg/config"
)

const (
	defaultGroqBaseURL      = "https://api.groq.com"
	defaultGroqChatModel    = "llama-3.3-70b-versatile"
	defaultGroqWhisperModel = "whisper-large-v3"
)

// GroqClient is a minimal client for the Groq OpenAI-compatible API
type GroqClient struct {
	apiKey       string
	baseURL      string
	chatModel    string
	whisperModel string
	client       *http.Client
}

// NewGroqClient creates a Groq client using values from the provided config.
// Pass a nil config to fall back to environment variables.
func NewGroqClient(cfg *config.GroqConfig) *GroqClient {
	g := &GroqClient{
		baseURL:      defaultGroqBaseURL,
		chatModel:    defaultGroqChatModel,
		whisperModel: defaultGroqWhisperModel,
		client:       &http.Client{Timeout: 2 * time.Minute},
	}
	if cfg != nil {
		g.apiKey = cfg.APIKey
		if cfg.BaseURL != "" {
			g.baseURL = cfg.BaseURL
		}
		if cfg.ChatModel != "" {
			g.chatModel = cfg.ChatModel
		}
		if cfg.WhisperModel != "" {
			g.whisperModel = cfg.WhisperModel
		}
	}
	if g.apiKey == "" {
		g.apiKey = os.Getenv("GROQ_API_KEY")
	}
	g.baseURL = strings.TrimRight(g.baseURL, "/")
	return g
}

// ChatMessage is a single chat completion message
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the shape for chat completion requests
type ChatRequest struct {
	Model       string        `json:"model,omitempty"`
	Messages    []ChatMessage `json:"messages,omitempty"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

// ChatResponse is a minimal response shape
type ChatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// transcriptionResponse is the json body of audio/transcriptions
type transcriptionResponse struct {
	Text string `json:"text"`
}

// StatusError is returned when Groq answers with a non-success status
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("groq returned status %d: %s", e.StatusCode, e.Body)
}

// Complete sends content with a directive as the system message and
// returns the assistant content.
func (g *GroqClient) Complete(ctx context.Context, instruction, content string) (string, error) {
	reqBody := ChatRequest{
		Model: g.chatModel,
		Messages: []ChatMessage{
			{Role: "system", Content: instruction},
			{Role: "user", Content: content},
		},
		Temperature: 0.2,
		MaxTokens:   8000,
	}

	b, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	endpoint := g.baseURL + "/openai/v1/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return "", err
	}

	var cr ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return "", fmt.Errorf("failed to decode groq response: %w", err)
	}
	if len(cr.Choices) == 0 {
		return "", nil
	}
	return cr.Choices[0].Message.Content, nil
}

// TranscribeAudio uploads audio to the whisper endpoint and returns the text
func (g *GroqClient) TranscribeAudio(ctx context.Context, filename string, audio io.Reader) (string, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	if err := mw.WriteField("model", g.whisperModel); err != nil {
		return "", err
	}
	if err := mw.WriteField("response_format", "json"); err != nil {
		return "", err
	}
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(fw, audio); err != nil {
		return "", err
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	endpoint := g.baseURL + "/openai/v1/audio/transcriptions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return "", err
	}

	var tr transcriptionResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return "", fmt.Errorf("failed to decode groq transcription: %w", err)
	}
	return tr.Text, nil
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode < 400 {
		return nil
	}
	b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(b))}
}
