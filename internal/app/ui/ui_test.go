package ui

import (
	"os"
	"testing"
)

func TestPaletteDisabledLeavesTextAlone(t *testing.T) {
	p := Palette{}
	if got := p.Paint(ColorRed, "x"); got != "x" {
		t.Fatalf("Paint() = %q, want plain text", got)
	}
}

func TestPaletteEnabled(t *testing.T) {
	p := Palette{Enabled: true}
	if got := p.Paint(p.Severity("critical"), "x"); got != ColorCritical+"x"+ColorReset {
		t.Fatalf("unexpected painted text %q", got)
	}
	if p.Score(90) != ColorGreen || p.Score(60) != ColorYellow || p.Score(10) != ColorRed {
		t.Fatalf("unexpected score colours")
	}
}

func TestColorEnabledNotTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatalf("CreateTemp() error: %v", err)
	}
	defer f.Close()
	if ColorEnabled(f) {
		t.Fatalf("a regular file is not a terminal")
	}
	if ColorEnabled(nil) {
		t.Fatalf("nil file has no colour")
	}
}
