package utils

import "testing"

func TestGetEnv(t *testing.T) {
	t.Setenv("B1_TEST_VAR", "value")
	if got := GetEnv("B1_TEST_VAR", "fallback", nil); got != "value" {
		t.Fatalf("GetEnv set: want=%q got=%q", "value", got)
	}
	t.Setenv("B1_TEST_VAR", "")
	if got := GetEnv("B1_TEST_VAR", "fallback", nil); got != "fallback" {
		t.Fatalf("GetEnv empty: want=%q got=%q", "fallback", got)
	}
}

func TestGetEnvAsInt(t *testing.T) {
	t.Setenv("B1_TEST_INT", "8080")
	if got := GetEnvAsInt("B1_TEST_INT", 8000, nil); got != 8080 {
		t.Fatalf("GetEnvAsInt set: want=8080 got=%d", got)
	}
	t.Setenv("B1_TEST_INT", "not-a-number")
	if got := GetEnvAsInt("B1_TEST_INT", 8000, nil); got != 8000 {
		t.Fatalf("GetEnvAsInt invalid: want=8000 got=%d", got)
	}
}
