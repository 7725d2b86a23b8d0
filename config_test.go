package ka3005p

import (
	"errors"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.ReadTimeout != 50*time.Millisecond {
		t.Errorf("ReadTimeout = %v, expected 50ms", cfg.ReadTimeout)
	}
	if cfg.BufferSize != 512 {
		t.Errorf("BufferSize = %d, expected 512", cfg.BufferSize)
	}
	if !cfg.SetPoints {
		t.Error("SetPoints should default to true")
	}
	if cfg.Logger != nil {
		t.Error("Logger should default to nil")
	}
}

func TestOptions(t *testing.T) {
	logger := &recordingLogger{}
	cfg, err := buildConfig([]Option{
		WithReadTimeout(100 * time.Millisecond),
		WithBufferSize(2048),
		WithSetPoints(false),
		WithLogger(logger),
	})
	if err != nil {
		t.Fatalf("buildConfig failed: %v", err)
	}

	if cfg.ReadTimeout != 100*time.Millisecond {
		t.Errorf("ReadTimeout = %v", cfg.ReadTimeout)
	}
	if cfg.BufferSize != 2048 {
		t.Errorf("BufferSize = %d", cfg.BufferSize)
	}
	if cfg.SetPoints {
		t.Error("SetPoints should be false")
	}
	if cfg.Logger != logger {
		t.Error("Logger not applied")
	}
}

func TestInvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{"zero timeout", WithReadTimeout(0)},
		{"negative timeout", WithReadTimeout(-time.Second)},
		{"small buffer", WithBufferSize(64)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := buildConfig([]Option{tt.opt}); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}
