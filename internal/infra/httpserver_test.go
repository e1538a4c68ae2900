package infra

import (
	"testing"
	"time"
)

func TestNewHTTPServerUsesConfiguredTimeouts(t *testing.T) {
	cfg := &Config{
		Port:                  "9090",
		HTTPReadTimeout:       11 * time.Second,
		HTTPReadHeaderTimeout: 3 * time.Second,
		HTTPWriteTimeout:      22 * time.Second,
		HTTPIdleTimeout:       44 * time.Second,
	}

	s := NewHTTPServer(cfg, nil)
	if s.server.Addr != ":9090" {
		t.Fatalf("Addr = %q, want :9090", s.server.Addr)
	}
	if s.server.ReadTimeout != cfg.HTTPReadTimeout {
		t.Fatalf("ReadTimeout = %v", s.server.ReadTimeout)
	}
	if s.server.ReadHeaderTimeout != cfg.HTTPReadHeaderTimeout {
		t.Fatalf("ReadHeaderTimeout = %v, want %v", s.server.ReadHeaderTimeout, cfg.HTTPReadHeaderTimeout)
	}
	if s.server.WriteTimeout != cfg.HTTPWriteTimeout {
		t.Fatalf("WriteTimeout = %v", s.server.WriteTimeout)
	}
	if s.server.IdleTimeout != cfg.HTTPIdleTimeout {
		t.Fatalf("IdleTimeout = %v", s.server.IdleTimeout)
	}
}
