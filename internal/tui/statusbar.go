package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/papapumpkin/holonet/internal/store"
	"github.com/papapumpkin/holonet/internal/view"
)

// StatusBar renders the persistent top bar: app name, category, fetch
// state and the latest log notice.
type StatusBar struct {
	Width    int
	Category string
	Term     string
	Loading  bool
	Failed   bool
	Results  int
	HasData  bool
	Spinner  string

	// Notice is the latest warning or error forwarded from the logger.
	Notice      string
	NoticeLevel slog.Level
	noticeSeq   int
}

// Sync copies the fields the bar shows from st.
func (s *StatusBar) Sync(st store.State) {
	s.Category = string(st.Category)
	s.Term = st.SearchTerm
	s.Loading = st.Loading
	s.Failed = st.HasError()
	s.HasData = st.HasData()
	s.Results = 0
	if s.HasData {
		s.Results = len(view.Normalize(st.Data))
	}
}

// View renders the status bar as a single line. The notice is dropped
// first, then truncated, when space runs out.
func (s StatusBar) View() string {
	const barPadding = 2
	innerWidth := max(0, s.Width-barPadding)
	barBg := lipgloss.NewStyle().Background(colorSurface)

	left := styleStatusLabel.Render("◆ holonet") + barBg.Render("  ") +
		styleStatusValue.Render(s.Category)
	if s.Term != "" && s.Width >= CompactWidth {
		left += barBg.Render(" ") + styleStatusValue.Render(fmt.Sprintf("%q", s.Term))
	}

	right := s.stateSegment()
	if s.Notice != "" {
		avail := innerWidth - lipgloss.Width(left) - lipgloss.Width(right) - 4
		if avail > 8 {
			style := styleStatusWarn
			if s.NoticeLevel >= slog.LevelError {
				style = styleStatusError
			}
			right = style.Render(truncateToWidth(s.Notice, avail)) + barBg.Render("  ") + right
		}
	}

	gap := max(1, innerWidth-lipgloss.Width(left)-lipgloss.Width(right))
	line := left + barBg.Render(strings.Repeat(" ", gap)) + right
	if lipgloss.Width(line) > innerWidth {
		line = truncateToWidth(line, innerWidth)
	}
	return styleStatusBar.Width(s.Width).Render(line)
}

func (s StatusBar) stateSegment() string {
	switch {
	case s.Loading:
		return styleStatusValue.Render(strings.TrimSpace(s.Spinner + " loading"))
	case s.Failed:
		return styleStatusError.Render("✗ error")
	case s.HasData:
		noun := "results"
		if s.Results == 1 {
			noun = "result"
		}
		return styleStatusValue.Render(fmt.Sprintf("%d %s", s.Results, noun))
	}
	return styleStatusValue.Render("ready")
}
