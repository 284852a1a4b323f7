package logger

import "testing"

func TestNew(t *testing.T) {
	l, err := New(false, "debug")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !l.Core().Enabled(-1) {
		t.Fatal("expected debug level to be enabled")
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, err := New(true, "loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}
