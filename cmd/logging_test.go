package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestFormatEntry(t *testing.T) {
	tests := []struct {
		msg      string
		kv       []interface{}
		expected string
	}{
		{"opened", nil, "INFO opened"},
		{"exchange complete", []interface{}{"request", "STATUS?", "bytes", 1}, "INFO exchange complete request=STATUS? bytes=1"},
		{"odd", []interface{}{"key"}, "INFO odd key=?"},
	}

	for _, tt := range tests {
		if got := formatEntry("INFO", tt.msg, tt.kv); got != tt.expected {
			t.Errorf("formatEntry(%q, %v) = %q, expected %q", tt.msg, tt.kv, got, tt.expected)
		}
	}
}

func TestLoggerLevels(t *testing.T) {
	tests := []struct {
		level    string
		expected []string
		hidden   []string
	}{
		{"error", []string{"ERROR e"}, []string{"INFO i", "DEBUG d"}},
		{"info", []string{"ERROR e", "INFO i"}, []string{"DEBUG d"}},
		{"DEBUG", []string{"ERROR e", "INFO i", "DEBUG d"}, nil},
		{"bogus", []string{"ERROR e"}, []string{"INFO i", "DEBUG d"}},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			log := newLoggerTo(&buf, parseLevel(tt.level))
			log.Error("e")
			log.Info("i")
			log.Debug("d")

			for _, want := range tt.expected {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("missing %q in %q", want, buf.String())
				}
			}
			for _, unwanted := range tt.hidden {
				if strings.Contains(buf.String(), unwanted) {
					t.Errorf("unexpected %q in %q", unwanted, buf.String())
				}
			}
		})
	}
}
