package authsvc

import (
	"io"
	"log/slog"
	"testing"

	"github.com/polkiloo/wsgateway/internal/config"
)

func TestNewClientUsesConfig(t *testing.T) {
	cfg := &config.Config{AuthEndpoint: "http://example.com"}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	client, err := newClient(clientParams{Config: cfg, Logger: logger})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client == nil {
		t.Fatal("expected client instance")
	}
}

func TestNewClientRejectsRelativeEndpoint(t *testing.T) {
	cfg := &config.Config{AuthEndpoint: "auth.local"}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	if _, err := newClient(clientParams{Config: cfg, Logger: logger}); err == nil {
		t.Fatal("expected error for relative endpoint")
	}
}
