package ui

import (
	"strings"

	"photopick/internal/library"
	"photopick/internal/picker"
	"photopick/internal/progress"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// chromeHeight is the rows taken by the header, status line and panel frame.
const chromeHeight = 6

// AppModel is the root model: the picker view plus the selection control overlay.
type AppModel struct {
	Mode       AppMode
	Picker     *picker.Picker
	Library    *library.Library
	Items      []library.Item
	ScanErr    error
	Panel      *ImagePanel
	KeyHandler *KeyHandler
	Overlays   OverlayStack

	// Events carries lifecycle events from decode workers; LastEvent is the newest.
	Events    <-chan progress.Event
	LastEvent *progress.Event

	Log *zap.Logger

	width  int
	height int
}

// Deps are the collaborators NewAppModel wires together.
type Deps struct {
	Picker  *picker.Picker
	Library *library.Library
	Events  <-chan progress.Event
	Log     *zap.Logger
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root application model with the default keybinds.
func NewAppModel(d Deps) *AppModel {
	log := d.Log
	if log == nil {
		log = zap.NewNop()
	}
	return &AppModel{
		Mode:       ModeViewer,
		Picker:     d.Picker,
		Library:    d.Library,
		Panel:      NewImagePanel(),
		KeyHandler: NewKeyHandler(DefaultKeybinds()),
		Events:     d.Events,
		Log:        log,
	}
}

// DefaultKeybinds returns the registry used by the app.
func DefaultKeybinds() *KeybindRegistry {
	showPicker := func() tea.Msg { return ShowPickerMsg{} }
	clearSel := func() tea.Msg { return ClearSelectionMsg{} }
	rescan := func() tea.Msg { return RescanMsg{} }

	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", tea.Quit, "Quit")
	reg.BindWithDesc("ctrl+c", tea.Quit, "Quit")
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	reg.BindWithDesc("p", showPicker, "Pick a photo")
	reg.BindWithDesc("SPC p p", showPicker, "Pick a photo")
	reg.BindWithDesc("x", clearSel, "Clear selection")
	reg.BindWithDesc("SPC p x", clearSel, "Clear selection")
	reg.BindWithDesc("r", rescan, "Rescan library")
	reg.BindWithDesc("SPC r", rescan, "Rescan library")
	return reg
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return tea.Batch(scanLibraryCmd(a.Library), waitForLoaderEvent(a.Events))
}

// Update implements tea.Model. It is the only place picker state changes.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.Panel.SetSize(msg.Width-2, msg.Height-chromeHeight)
		return a, tea.Batch(a.Overlays.UpdateAll(msg)...)

	case SelectionChangedMsg:
		a.Overlays.Clear()
		a.Mode = ModeViewer
		return a, a.changeSelection(msg.Selection)

	case picker.LoadResultMsg:
		a.Picker.OnLoadResult(msg)
		return a, nil

	case spinner.TickMsg:
		return a, a.Panel.UpdateSpinner(msg, a.Picker.State())

	case ShowPickerMsg:
		modal := NewPhotoPickerModal(a.libraryRoot(), a.Items)
		if a.width > 0 {
			modal.Update(tea.WindowSizeMsg{Width: a.width, Height: a.height})
		}
		a.Overlays.Push(Overlay{View: modal})
		a.Mode = ModePicking
		return a, tea.Batch(modal.Init(), scanLibraryCmd(a.Library))

	case ClearSelectionMsg:
		return a, a.changeSelection(nil)

	case RescanMsg:
		return a, scanLibraryCmd(a.Library)

	case LibraryScannedMsg:
		a.Items, a.ScanErr = msg.Items, msg.Err
		if msg.Err != nil {
			a.Log.Warn("library scan failed", zap.String("root", a.libraryRoot()), zap.Error(msg.Err))
		}
		for _, o := range a.Overlays.Stack {
			if m, ok := o.View.(*PhotoPickerModal); ok {
				m.SetItems(a.Items)
			}
		}
		return a, nil

	case loaderEventMsg:
		ev := msg.Event
		a.LastEvent = &ev
		return a, waitForLoaderEvent(a.Events)

	case DismissModalMsg:
		a.Overlays.Pop()
		if a.Overlays.Len() == 0 {
			a.Mode = ModeViewer
		}
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.Overlays.Len() > 0 {
			cmd, _ := a.Overlays.UpdateTop(msg)
			return a, cmd
		}
		if a.KeyHandler != nil {
			if consumed, cmd := a.KeyHandler.Handle(msg); consumed {
				return a, cmd
			}
		}
		return a, nil
	}

	if a.Overlays.Len() > 0 {
		cmd, _ := a.Overlays.UpdateTop(msg)
		return a, cmd
	}
	return a, nil
}

// changeSelection hands the pick to the picker and starts the spinner when a
// load begins. A spinner already ticking for a previous load keeps going.
func (a *appModelAdapter) changeSelection(sel *picker.Selection) tea.Cmd {
	wasLoading := a.Picker.State().Kind() == picker.KindLoading
	wait := a.Picker.OnSelectionChanged(sel)
	if wait == nil {
		return nil
	}
	if wasLoading {
		return wait
	}
	return tea.Batch(wait, a.Panel.Tick())
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	var b strings.Builder
	b.WriteString(Styles.Affordance.Render(IconPick+" Pick a photo") +
		Styles.Hint.Render("  p: pick  x: clear  r: rescan  SPC: commands  q: quit"))
	b.WriteString("\n")
	b.WriteString(a.statusLine())
	b.WriteString("\n")

	if top, ok := a.Overlays.Peek(); ok {
		w, h := a.Panel.Width+2, a.Panel.Height+2
		b.WriteString(lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, top.View.View()))
	} else {
		b.WriteString(Styles.Frame.Render(a.Panel.View(a.Picker.State())))
	}

	if a.KeyHandler != nil && a.KeyHandler.LeaderWaiting {
		b.WriteString("\n" + RenderKeybindHelp(a.KeyHandler, a.Mode))
	}
	return b.String()
}

func (a *appModelAdapter) statusLine() string {
	var parts []string
	if sel := a.Picker.Selection(); sel != nil {
		parts = append(parts, Styles.Normal.Render(sel.Name))
	} else {
		parts = append(parts, Styles.Empty.Render("nothing selected"))
	}
	parts = append(parts, Styles.Muted.Render(a.Picker.State().Kind().String()))
	if a.ScanErr != nil {
		parts = append(parts, Styles.Warning.Render("library unavailable"))
	}
	if a.LastEvent != nil {
		parts = append(parts, Styles.Status.Render(a.LastEvent.Message))
	}
	return strings.Join(parts, Styles.Muted.Render(" · "))
}

func (a *AppModel) libraryRoot() string {
	if a.Library == nil {
		return ""
	}
	return a.Library.Root()
}
