package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Resolution represents a window size option
type Resolution struct {
	Width  int
	Height int
	Label  string
}

// Resolutions lists the window sizes offered in -help. Any WxH string is accepted.
var Resolutions []Resolution

func init() {
	Resolutions = []Resolution{
		{Width: 1280, Height: 720, Label: "1280x720"},
		{Width: 1366, Height: 768, Label: "1366x768"},
		{Width: 1600, Height: 900, Label: "1600x900"},
		{Width: 1920, Height: 1080, Label: "1920x1080"},
	}
}

// ResolutionLabels returns the preset labels joined for flag help.
func ResolutionLabels() string {
	labels := make([]string, 0, len(Resolutions))
	for _, r := range Resolutions {
		labels = append(labels, r.Label)
	}
	return strings.Join(labels, ", ")
}

// ParseResolution parses a "WIDTHxHEIGHT" string.
func ParseResolution(s string) (Resolution, error) {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return Resolution{}, fmt.Errorf("resolution %q: want WIDTHxHEIGHT", s)
	}
	width, err := strconv.Atoi(w)
	if err != nil {
		return Resolution{}, fmt.Errorf("resolution %q: width: %w", s, err)
	}
	height, err := strconv.Atoi(h)
	if err != nil {
		return Resolution{}, fmt.Errorf("resolution %q: height: %w", s, err)
	}
	if width <= 0 || height <= 0 {
		return Resolution{}, fmt.Errorf("resolution %q: must be positive", s)
	}
	return Resolution{Width: width, Height: height, Label: fmt.Sprintf("%dx%d", width, height)}, nil
}
