package ui

import (
	"fmt"

	"photopick/internal/library"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	pickerListWidth  = 48
	pickerListHeight = 14
)

// PhotoPickerModal is the selection control: a filterable list of library photos.
// Enter picks the highlighted photo; Esc dismisses without changing anything.
type PhotoPickerModal struct {
	list  list.Model
	root  string
	count int
}

type photoItem struct {
	library.Item
}

func (p photoItem) FilterValue() string { return p.Name }
func (p photoItem) Title() string       { return p.Name }
func (p photoItem) Description() string {
	return fmt.Sprintf("%s  %s", humanSize(p.Size), p.ModTime.Format("2006-01-02 15:04"))
}

// Ensure PhotoPickerModal implements View.
var _ View = (*PhotoPickerModal)(nil)

// NewPhotoPickerModal lists items from the library rooted at root.
func NewPhotoPickerModal(root string, items []library.Item) *PhotoPickerModal {
	l := list.New(nil, NewCompactListDelegate(), pickerListWidth, pickerListHeight)
	l.Title = IconPick + " Pick a photo"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = Styles.Title
	m := &PhotoPickerModal{list: l, root: root}
	m.SetItems(items)
	return m
}

// SetItems replaces the listed photos, e.g. after a rescan.
func (m *PhotoPickerModal) SetItems(items []library.Item) {
	li := make([]list.Item, len(items))
	for i, it := range items {
		li[i] = photoItem{Item: it}
	}
	m.list.SetItems(li)
	m.count = len(items)
}

// Selected returns the highlighted item, if any.
func (m *PhotoPickerModal) Selected() (library.Item, bool) {
	sel, ok := m.list.SelectedItem().(photoItem)
	if !ok {
		return library.Item{}, false
	}
	return sel.Item, true
}

// Init implements View.
func (m *PhotoPickerModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *PhotoPickerModal) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(max(min(pickerListWidth, msg.Width-4), 20), max(min(pickerListHeight, msg.Height-6), 5))
		return m, nil
	case tea.KeyMsg:
		// While typing a filter, esc and enter belong to the list.
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return DismissModalMsg{} }
		case "enter":
			it, ok := m.Selected()
			if !ok {
				return m, nil
			}
			sel := it.Selection()
			return m, func() tea.Msg { return SelectionChangedMsg{Selection: &sel} }
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements View.
func (m *PhotoPickerModal) View() string {
	body := m.list.View()
	if m.count == 0 {
		body = Styles.Title.Render(m.list.Title) + "\n\n" +
			Styles.Empty.Render("No photos in "+m.root)
	}
	help := "Enter: pick  /: filter  Esc: cancel"
	return Styles.BoxCompact.Render(body + "\n" + Styles.Hint.Render(help))
}

func humanSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMGTPE"[exp])
}
