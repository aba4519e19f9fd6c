package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BACKEND_URL", "")
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "")
	t.Setenv("UPLOAD_TIMEOUT_SECONDS", "")
	t.Setenv("STATUS_POLL_SECONDS", "")
	t.Setenv("DOWNLOAD_DIR", "")

	cfg := Load()
	if cfg.BackendURL != "http://localhost:8000" {
		t.Fatalf("expected default backend url, got %q", cfg.BackendURL)
	}
	if cfg.RequestTimeout != 15*time.Second {
		t.Fatalf("expected default request timeout, got %s", cfg.RequestTimeout)
	}
	if cfg.UploadTimeout != 300*time.Second {
		t.Fatalf("expected default upload timeout, got %s", cfg.UploadTimeout)
	}
	if cfg.PollInterval != 5*time.Second {
		t.Fatalf("expected default poll interval, got %s", cfg.PollInterval)
	}
	if cfg.DownloadDir != "./downloads" {
		t.Fatalf("expected default download dir, got %q", cfg.DownloadDir)
	}
	if !cfg.BreakerEnabled {
		t.Fatalf("expected breaker enabled by default")
	}
}

func TestLoadParsesOverrides(t *testing.T) {
	t.Setenv("BACKEND_URL", "http://minutes.internal:9000")
	t.Setenv("STATUS_POLL_SECONDS", "2")
	t.Setenv("BREAKER_ENABLED", "false")

	cfg := Load()
	if cfg.BackendURL != "http://minutes.internal:9000" {
		t.Fatalf("expected backend url override, got %q", cfg.BackendURL)
	}
	if cfg.PollInterval != 2*time.Second {
		t.Fatalf("expected poll interval override, got %s", cfg.PollInterval)
	}
	if cfg.BreakerEnabled {
		t.Fatalf("expected breaker disabled")
	}
}

func TestLoadIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("STATUS_POLL_SECONDS", "often")

	cfg := Load()
	if cfg.PollInterval != 5*time.Second {
		t.Fatalf("malformed value should fall back to default, got %s", cfg.PollInterval)
	}
}
