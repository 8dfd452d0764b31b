package services

import (
	"strings"
	"testing"
)

func TestBuildInitialProgressPrompt(t *testing.T) {
	prompt := buildInitialProgressPrompt("work", "B1", 8, 10, []byte(`{"grammar":"solid"}`))

	for _, want := range []string{"work", "B1", "8", "10", "strengths", "weaknesses", "recommendations", "200 words"} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("initial prompt missing %q: %q", want, prompt)
		}
	}
	if strings.Contains(prompt, "development") {
		t.Fatalf("initial prompt must not mention development: %q", prompt)
	}
	// Analysis payload is pretty-printed into the prompt.
	if !strings.Contains(prompt, "\"grammar\": \"solid\"") {
		t.Fatalf("initial prompt missing indented analysis: %q", prompt)
	}
}

func TestBuildUpdateProgressPrompt(t *testing.T) {
	prior := "Handles everyday topics but hesitates with conditionals."
	prompt := buildUpdateProgressPrompt("work", "B1", 9, 10, []byte(`{"fluency":"improving"}`), prior)

	if !strings.Contains(prompt, prior) {
		t.Fatalf("update prompt must embed the prior narrative verbatim: %q", prompt)
	}
	for _, want := range []string{"development", "strengths", "weaknesses", "recommendations"} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("update prompt missing %q: %q", want, prompt)
		}
	}
}

func TestPrettyJSONInvalidPayloadPassesThrough(t *testing.T) {
	if got := prettyJSON([]byte("not json")); got != "not json" {
		t.Fatalf("prettyJSON invalid: want passthrough, got %q", got)
	}
	if got := prettyJSON(nil); got != "{}" {
		t.Fatalf("prettyJSON empty: want={} got=%q", got)
	}
}
