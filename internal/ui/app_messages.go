package ui

import (
	"photopick/internal/library"
	"photopick/internal/picker"
	"photopick/internal/progress"
)

// SelectionChangedMsg is sent by the selection control when the pick changes.
// A nil Selection clears it.
type SelectionChangedMsg struct {
	Selection *picker.Selection
}

// ShowPickerMsg opens the selection control (p or SPC p p).
type ShowPickerMsg struct{}

// ClearSelectionMsg clears the current pick (x or SPC p x).
type ClearSelectionMsg struct{}

// RescanMsg rescans the library directory (r or SPC r).
type RescanMsg struct{}

// LibraryScannedMsg carries the result of a library scan.
type LibraryScannedMsg struct {
	Items []library.Item
	Err   error
}

// DismissModalMsg is sent when user cancels a modal (Esc).
type DismissModalMsg struct{}

// loaderEventMsg wraps a lifecycle event from a decode worker.
type loaderEventMsg struct {
	Event progress.Event
}
