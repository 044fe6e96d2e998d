package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"doclint/internal/driver"
	"doclint/internal/ui"
)

type checkOutcome struct {
	result *driver.DirResult
	err    error
}

// runCheckWithUI checks the files in a background goroutine while a
// Bubble Tea program renders per-file progress on stdout.
func runCheckWithUI(ctx context.Context, title string, files []string, opts driver.Options) (*driver.DirResult, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan checkOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = events
		res, err := driver.CheckFiles(ctx, files, optsCopy)
		outcomeCh <- checkOutcome{result: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.result, uiErr
	}
	return outcome.result, outcome.err
}
