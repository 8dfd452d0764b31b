package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/linguaclass/b1dialog-backend/internal/logger"
)

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	return log
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	_, err := NewClient(newTestLogger(t))
	if err == nil {
		t.Fatalf("NewClient: expected error, got nil")
	}
}

func TestGenerateTextRequestShape(t *testing.T) {
	var captured chatRequest
	var capturedAuth string
	var capturedPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedAuth = r.Header.Get("Authorization")
		capturedPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": "  A fine summary.\n"}},
			},
		})
	}))
	defer server.Close()

	t.Setenv("OPENAI_API_KEY", "test-key")
	t.Setenv("OPENAI_BASE_URL", server.URL)
	t.Setenv("OPENAI_MODEL", "test-model")

	c, err := NewClient(newTestLogger(t))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	text, err := c.GenerateText(context.Background(), "persona", "prompt", 0.4)
	if err != nil {
		t.Fatalf("GenerateText: %v", err)
	}
	if text != "A fine summary." {
		t.Fatalf("text: want=%q got=%q", "A fine summary.", text)
	}
	if capturedPath != "/v1/chat/completions" {
		t.Fatalf("path: want=%q got=%q", "/v1/chat/completions", capturedPath)
	}
	if capturedAuth != "Bearer test-key" {
		t.Fatalf("authorization: want=%q got=%q", "Bearer test-key", capturedAuth)
	}
	if captured.Model != "test-model" {
		t.Fatalf("model: want=%q got=%q", "test-model", captured.Model)
	}
	if captured.Temperature != 0.4 {
		t.Fatalf("temperature: want=0.4 got=%v", captured.Temperature)
	}
	if len(captured.Messages) != 2 {
		t.Fatalf("messages: want=2 got=%d", len(captured.Messages))
	}
	if captured.Messages[0].Role != "system" || captured.Messages[0].Content != "persona" {
		t.Fatalf("system message: %+v", captured.Messages[0])
	}
	if captured.Messages[1].Role != "user" || captured.Messages[1].Content != "prompt" {
		t.Fatalf("user message: %+v", captured.Messages[1])
	}
}

func TestGenerateTextAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "rate limited"},
		})
	}))
	defer server.Close()

	t.Setenv("OPENAI_API_KEY", "test-key")
	t.Setenv("OPENAI_BASE_URL", server.URL)

	c, err := NewClient(newTestLogger(t))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	_, err = c.GenerateText(context.Background(), "persona", "prompt", 0.4)
	if err == nil {
		t.Fatalf("GenerateText: expected error, got nil")
	}
}

func TestGenerateTextNoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer server.Close()

	t.Setenv("OPENAI_API_KEY", "test-key")
	t.Setenv("OPENAI_BASE_URL", server.URL)

	c, err := NewClient(newTestLogger(t))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	_, err = c.GenerateText(context.Background(), "persona", "prompt", 0.4)
	if err == nil {
		t.Fatalf("GenerateText: expected error, got nil")
	}
}
