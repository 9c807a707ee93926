// Package tui is the interactive lookup view: a search input above a tabbed,
// scrollable element panel.
package tui

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// Program is an alias for tea.Program, exposed so callers don't need
// to import bubbletea directly.
type Program = tea.Program

// NewProgram creates a BubbleTea program for interactive lookup.
// The program uses the alternate screen buffer for a clean TUI experience.
func NewProgram(opts Options, progOpts ...tea.ProgramOption) *Program {
	allOpts := []tea.ProgramOption{
		tea.WithAltScreen(),
	}
	allOpts = append(allOpts, progOpts...)
	return tea.NewProgram(NewAppModel(opts), allOpts...)
}

// Run creates and runs a TUI program, blocking until it exits.
func Run(opts Options, progOpts ...tea.ProgramOption) error {
	if _, err := NewProgram(opts, progOpts...).Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// WithOutput returns a program option that directs TUI output to the given writer.
func WithOutput(w io.Writer) tea.ProgramOption {
	return tea.WithOutput(w)
}

// WithInput returns a program option that reads key input from r.
func WithInput(r io.Reader) tea.ProgramOption {
	return tea.WithInput(r)
}
