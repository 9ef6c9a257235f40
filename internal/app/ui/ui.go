package ui

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"
)

const (
	ColorReset  = "\033[0m"
	ColorGray   = "\033[90m" // Light gray
	ColorWhite  = "\033[97m" // White
	ColorRed    = "\033[91m" // Bright Red
	ColorGreen  = "\033[92m" // Bright Green
	ColorYellow = "\033[93m" // Bright Yellow

	ColorInformational = "\033[37m" // White/Light Gray
	ColorMinor         = "\033[34m" // Blue
	ColorModerate      = "\033[33m" // Yellow/Orange
	ColorSerious       = "\033[31m" // Red
	ColorCritical      = "\033[35m" // Magenta
)

// WaitForCancel returns a context that is canceled on Ctrl+C or SIGTERM.
func WaitForCancel(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

// ColorEnabled reports whether f is a terminal and NO_COLOR is unset.
func ColorEnabled(f *os.File) bool {
	if f == nil || os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Palette hands out colour codes, or empty strings when colour is off.
type Palette struct {
	Enabled bool
}

func (p Palette) Paint(color, s string) string {
	if !p.Enabled || color == "" {
		return s
	}
	return color + s + ColorReset
}

// Severity returns the colour for a severity label.
func (p Palette) Severity(s string) string {
	switch s {
	case "critical":
		return ColorCritical
	case "serious":
		return ColorSerious
	case "moderate":
		return ColorModerate
	case "minor":
		return ColorMinor
	case "informational":
		return ColorInformational
	default:
		return ColorWhite
	}
}

// Score colours a 0-100 score where higher is better.
func (p Palette) Score(v int) string {
	switch {
	case v >= 80:
		return ColorGreen
	case v >= 50:
		return ColorYellow
	default:
		return ColorRed
	}
}
