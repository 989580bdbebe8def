package ui

import (
	"context"
	"image"
	"image/color"
	"testing"

	"photopick/internal/picker"
	"photopick/internal/progress"

	tea "github.com/charmbracelet/bubbletea"
)

// keyMsg creates a tea.KeyMsg for testing. Bubble Tea uses KeyType and Runes.
// KeySpace.String() returns " ", KeyEsc returns "esc", etc.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "space", " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// stubLoader holds every load until the test completes it.
type stubLoader struct {
	calls []*stubCall
}

type stubCall struct {
	sel      picker.Selection
	done     func(picker.Result)
	progress *progress.Progress
}

func (s *stubLoader) Load(ctx context.Context, sel picker.Selection, done func(picker.Result)) *progress.Progress {
	_, cancel := context.WithCancel(ctx)
	c := &stubCall{sel: sel, done: done, progress: progress.New(cancel)}
	s.calls = append(s.calls, c)
	return c.progress
}

func (c *stubCall) finish(r picker.Result) {
	c.progress.Finish()
	c.done(r)
}

// runCmd executes cmd and flattens batches into the produced messages.
// Only call it once every load the cmd may wait on has been finished.
func runCmd(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(t, c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// findMsg returns the first message of type T.
func findMsg[T any](msgs []tea.Msg) (T, bool) {
	for _, m := range msgs {
		if v, ok := m.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func solidImage(w, h int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}
