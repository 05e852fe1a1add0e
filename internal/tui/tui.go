// Package tui is the terminal adapter for the explorer: it paints the view
// tree with lipgloss, turns keys into intents and runs fetches as BubbleTea
// commands.
package tui

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/papapumpkin/holonet/internal/app"
)

// Program is an alias for tea.Program, exposed so callers don't need
// to import bubbletea directly.
type Program = tea.Program

// NewProgram creates a BubbleTea program driving ctrl against gw.
// The program uses the alternate screen buffer for a clean TUI experience.
func NewProgram(ctx context.Context, ctrl *app.Controller, gw app.Gateway, opts ...tea.ProgramOption) *Program {
	model := NewAppModel(ctx, ctrl, gw)

	allOpts := []tea.ProgramOption{
		tea.WithAltScreen(),
	}
	if ctx != nil {
		allOpts = append(allOpts, tea.WithContext(ctx))
	}
	allOpts = append(allOpts, opts...)

	return tea.NewProgram(model, allOpts...)
}

// Run creates and runs a TUI program, blocking until it exits.
func Run(ctx context.Context, ctrl *app.Controller, gw app.Gateway) error {
	if _, err := NewProgram(ctx, ctrl, gw).Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// WithOutput returns a program option that directs TUI output to the given writer.
// Useful for testing or redirecting output.
func WithOutput(w io.Writer) tea.ProgramOption {
	return tea.WithOutput(w)
}
