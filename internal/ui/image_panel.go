package ui

import (
	"fmt"
	"image"
	"math"
	"strings"

	"photopick/internal/picker"

	"github.com/anthonynsimon/bild/transform"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// halfBlock paints the top pixel as foreground and the bottom as background,
// so every terminal cell holds two vertically stacked pixels.
const halfBlock = "▀"

const (
	defaultPanelWidth  = 60
	defaultPanelHeight = 20
	minPanelWidth      = 10
	minPanelHeight     = 4
)

// ImagePanel draws an ImageState into a Width x Height cell box.
// The spinner is the only state it keeps of its own.
type ImagePanel struct {
	Width   int
	Height  int
	spinner spinner.Model
	bar     progress.Model
}

// NewImagePanel returns a panel with default dimensions.
func NewImagePanel() *ImagePanel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = Styles.Spinner

	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = 24

	return &ImagePanel{
		Width:   defaultPanelWidth,
		Height:  defaultPanelHeight,
		spinner: s,
		bar:     bar,
	}
}

// SetSize sets the box the panel draws into. Tiny sizes are clamped.
func (p *ImagePanel) SetSize(w, h int) {
	p.Width = max(w, minPanelWidth)
	p.Height = max(h, minPanelHeight)
	p.bar.Width = min(max(p.Width/2, 10), 40)
}

// Tick starts the loading spinner.
func (p *ImagePanel) Tick() tea.Cmd {
	return p.spinner.Tick
}

// UpdateSpinner advances the spinner. It returns nil (stopping the tick loop)
// unless the state is still loading.
func (p *ImagePanel) UpdateSpinner(msg spinner.TickMsg, state picker.ImageState) tea.Cmd {
	if state.Kind() != picker.KindLoading {
		return nil
	}
	var cmd tea.Cmd
	p.spinner, cmd = p.spinner.Update(msg)
	return cmd
}

// View renders state centered in the panel box.
func (p *ImagePanel) View(state picker.ImageState) string {
	var body string
	switch s := state.(type) {
	case picker.Empty:
		body = Styles.Placeholder.Render(IconPhoto)
	case picker.Loading:
		body = p.spinner.View()
		if s.Progress != nil && s.Progress.Total() > 0 {
			body += "\n\n" + p.bar.ViewAs(s.Progress.Fraction())
		}
	case picker.Success:
		body = RenderImage(s.Image, p.Width, p.Height)
	case picker.Failure:
		// Error detail goes to the log, not the screen.
		body = Styles.Warning.Render(IconWarning)
	default:
		picker.UnknownState(state)
	}
	return lipgloss.Place(p.Width, p.Height, lipgloss.Center, lipgloss.Center, body)
}

// FitWithin scales w x h to the largest size that fits in maxW x maxH while
// keeping the aspect ratio. Both results are at least 1 for a non-empty source.
func FitWithin(w, h, maxW, maxH int) (int, int) {
	if w <= 0 || h <= 0 || maxW <= 0 || maxH <= 0 {
		return 0, 0
	}
	scale := math.Min(float64(maxW)/float64(w), float64(maxH)/float64(h))
	fw := int(math.Round(float64(w) * scale))
	fh := int(math.Round(float64(h) * scale))
	return min(max(fw, 1), maxW), min(max(fh, 1), maxH)
}

// RenderImage draws img scaled to fit cols x rows cells, two pixels per cell.
func RenderImage(img image.Image, cols, rows int) string {
	if img == nil {
		return ""
	}
	b := img.Bounds()
	tw, th := FitWithin(b.Dx(), b.Dy(), cols, rows*2)
	if tw == 0 || th == 0 {
		return ""
	}
	scaled := transform.Resize(img, tw, th, transform.Linear)

	lines := make([]string, 0, (th+1)/2)
	for y := 0; y < th; y += 2 {
		var sb strings.Builder
		for x := 0; x < tw; x++ {
			cell := lipgloss.NewStyle().Foreground(hexColor(scaled, x, y))
			if y+1 < th {
				cell = cell.Background(hexColor(scaled, x, y+1))
			}
			sb.WriteString(cell.Render(halfBlock))
		}
		lines = append(lines, sb.String())
	}
	return strings.Join(lines, "\n")
}

func hexColor(img *image.RGBA, x, y int) lipgloss.Color {
	c := img.RGBAAt(x, y)
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}
