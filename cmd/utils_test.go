package cmd

import (
	"strings"
	"testing"
)

func TestProgressLine(t *testing.T) {
	got := progressLine(50, "1.2MB/s")
	if !strings.Contains(got, " 50%") {
		t.Errorf("expected percent in output, got %q", got)
	}
	if !strings.Contains(got, "1.2MB/s") {
		t.Errorf("expected speed in output, got %q", got)
	}

	// Extraction has no speed, the line is just the percent
	if got := progressLine(100, ""); got != "  100%\n" {
		t.Errorf("unexpected line without speed: %q", got)
	}
	if got := progressLine(7, ""); got != "    7%\n" {
		t.Errorf("percent should be right-aligned: %q", got)
	}
}
