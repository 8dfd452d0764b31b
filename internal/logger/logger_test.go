package logger

import "testing"

func TestRedactKVsMasksCredentials(t *testing.T) {
	out := redactKVs([]interface{}{"api_key", "sk-123", "class_code", "C1"})
	if len(out) != 4 {
		t.Fatalf("len: want=4 got=%d", len(out))
	}
	if out[1] != "[REDACTED]" {
		t.Fatalf("api_key value: want=[REDACTED] got=%v", out[1])
	}
	if out[3] != "C1" {
		t.Fatalf("class_code value: want=C1 got=%v", out[3])
	}
}

func TestRedactKVsOddTrailingKey(t *testing.T) {
	out := redactKVs([]interface{}{"class_code", "C1", "dangling"})
	if len(out) != 3 {
		t.Fatalf("len: want=3 got=%d", len(out))
	}
	if out[2] != "dangling" {
		t.Fatalf("trailing element: want=dangling got=%v", out[2])
	}
}
