package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeybindRegistry_BindLookup(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	reg.Bind("SPC q", tea.Quit)
	reg.Bind("j", nil)

	assert.NotNil(t, reg.Lookup("q"))
	assert.NotNil(t, reg.Lookup("space q"), "space normalizes to SPC")
	assert.Nil(t, reg.Lookup("unknown"))
}

func TestKeyHandler_LeaderSequence(t *testing.T) {
	reg := NewKeybindRegistry()
	var executed bool
	reg.Bind("SPC p p", func() tea.Msg {
		executed = true
		return nil
	})
	h := NewKeyHandler(reg)

	consumed, cmd := h.Handle(keyMsg(" "))
	assert.True(t, consumed)
	assert.Nil(t, cmd)
	assert.True(t, h.LeaderWaiting)

	// "SPC p" is a prefix: stay in leader mode.
	consumed, cmd = h.Handle(keyMsg("p"))
	assert.True(t, consumed)
	assert.Nil(t, cmd)
	assert.True(t, h.LeaderWaiting)
	assert.Equal(t, "SPC p", h.CurrentSeq())

	consumed, cmd = h.Handle(keyMsg("p"))
	assert.True(t, consumed)
	assert.False(t, h.LeaderWaiting)
	require.NotNil(t, cmd)
	cmd()
	assert.True(t, executed)
}

func TestKeyHandler_EscCancelsLeader(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("SPC x", tea.Quit)
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "))
	require.True(t, h.LeaderWaiting)

	consumed, cmd := h.Handle(keyMsg("esc"))
	assert.True(t, consumed)
	assert.Nil(t, cmd)
	assert.False(t, h.LeaderWaiting)
}

func TestKeyHandler_DeadEndLeavesLeaderMode(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("SPC x", tea.Quit)
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "))
	consumed, cmd := h.Handle(keyMsg("z"))
	assert.True(t, consumed)
	assert.Nil(t, cmd)
	assert.False(t, h.LeaderWaiting)
	assert.Empty(t, h.Buffer)
}

func TestKeyHandler_SingleKey(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	h := NewKeyHandler(reg)

	consumed, cmd := h.Handle(keyMsg("q"))
	assert.True(t, consumed)
	assert.NotNil(t, cmd)
}

func TestKeyHandler_UnboundFallsThrough(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	h := NewKeyHandler(reg)

	consumed, _ := h.Handle(keyMsg("j"))
	assert.False(t, consumed)
}

func TestLeaderHints_TopLevelAndSubmenu(t *testing.T) {
	reg := DefaultKeybinds()

	top := reg.LeaderHints("", ModeViewer)
	assert.Equal(t, "Photo", top["p"])
	assert.Equal(t, "Quit", top["q"])
	assert.Equal(t, "Rescan library", top["r"])

	sub := reg.LeaderHints("SPC p", ModeViewer)
	assert.Equal(t, map[string]string{"p": "Pick a photo", "x": "Clear selection"}, sub)
}

func TestLeaderHints_ModeFilter(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDescForMode("SPC v", tea.Quit, "Viewer only", []AppMode{ModeViewer})

	assert.Contains(t, reg.LeaderHints("", ModeViewer), "v")
	assert.NotContains(t, reg.LeaderHints("", ModePicking), "v")
}

func TestRenderKeybindHelp(t *testing.T) {
	h := NewKeyHandler(DefaultKeybinds())
	h.Handle(keyMsg(" "))
	out := RenderKeybindHelp(h, ModeViewer)
	assert.Contains(t, out, "SPC")
	assert.Contains(t, out, "Photo")
	assert.Contains(t, out, "cancel")

	h.Handle(keyMsg("p"))
	out = RenderKeybindHelp(h, ModeViewer)
	assert.Contains(t, out, "SPC p")
	assert.Contains(t, out, "Pick a photo")

	assert.Empty(t, RenderKeybindHelp(nil, ModeViewer))
}

func TestAppMode_String(t *testing.T) {
	assert.Equal(t, "Viewer", ModeViewer.String())
	assert.Equal(t, "Picking", ModePicking.String())
	assert.Equal(t, "Unknown", AppMode(9).String())
}
