package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestCardColumns(t *testing.T) {
	t.Parallel()
	tests := []struct {
		width int
		want  int
	}{
		{40, 1},
		{79, 1},
		{80, 2},
		{119, 2},
		{120, 3},
		{200, 3},
	}
	for _, tt := range tests {
		if got := cardColumns(tt.width); got != tt.want {
			t.Errorf("cardColumns(%d) = %d, want %d", tt.width, got, tt.want)
		}
	}
}

func TestCardWidth(t *testing.T) {
	t.Parallel()
	tests := []struct {
		width, cols, want int
	}{
		{100, 2, 49},
		{120, 3, 39},
		{50, 1, 50},
		{12, 3, 10},
		{50, 0, 50},
	}
	for _, tt := range tests {
		if got := cardWidth(tt.width, tt.cols); got != tt.want {
			t.Errorf("cardWidth(%d, %d) = %d, want %d", tt.width, tt.cols, got, tt.want)
		}
	}
}

func TestTruncateToWidth(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"fits", "Tatooine", 10, "Tatooine"},
		{"cut", "Luke Skywalker", 6, "Luke …"},
		{"zero width", "anything", 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := truncateToWidth(tt.in, tt.width); got != tt.want {
				t.Errorf("truncateToWidth(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
			}
		})
	}
}

func TestCenterOverlay(t *testing.T) {
	t.Parallel()
	box := "ab\ncd"
	out := centerOverlay(box, 10, 6)

	lines := strings.Split(out, "\n")
	if lipgloss.Height(out) < 4 {
		t.Fatalf("expected top padding, got %d lines", len(lines))
	}
	first := -1
	for i, l := range lines {
		if strings.Contains(l, "ab") {
			first = i
			break
		}
	}
	if first != 2 {
		t.Errorf("content starts at line %d, want 2", first)
	}
	if !strings.HasPrefix(lines[first], "    ab") {
		t.Errorf("content not centered horizontally: %q", lines[first])
	}
}

func TestClipLines(t *testing.T) {
	t.Parallel()
	in := "1\n2\n3\n4\n5"

	if got := clipLines(in, 1, 2); got != "2\n3" {
		t.Errorf("clipLines window = %q", got)
	}
	if got := clipLines(in, 4, 3); got != "5\n\n" {
		t.Errorf("clipLines padding = %q", got)
	}
	if got := clipLines(in, 99, 1); got != "" {
		t.Errorf("clipLines past end = %q", got)
	}
}
