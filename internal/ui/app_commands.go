package ui

import (
	"photopick/internal/library"
	"photopick/internal/progress"

	tea "github.com/charmbracelet/bubbletea"
)

// scanLibraryCmd lists the library off the update loop.
func scanLibraryCmd(lib *library.Library) tea.Cmd {
	return func() tea.Msg {
		if lib == nil {
			return LibraryScannedMsg{}
		}
		items, err := lib.Scan()
		return LibraryScannedMsg{Items: items, Err: err}
	}
}

// waitForLoaderEvent blocks for the next worker event. The handler re-issues
// it after each event so the channel keeps draining. A closed or nil channel
// ends the loop.
func waitForLoaderEvent(ch <-chan progress.Event) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return loaderEventMsg{Event: ev}
	}
}
