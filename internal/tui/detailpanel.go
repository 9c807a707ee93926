package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// DetailPanel wraps a viewport for scrollable content display.
type DetailPanel struct {
	viewport   viewport.Model
	title      string
	totalLines int // total lines of content (before viewport clipping)
	emptyHint  string
}

// NewDetailPanel creates a detail panel with the given dimensions.
func NewDetailPanel(width, height int) DetailPanel {
	vp := viewport.New(width, height)
	vp.SetContent("")
	return DetailPanel{viewport: vp}
}

// SetSize updates the viewport dimensions.
func (d *DetailPanel) SetSize(width, height int) {
	d.viewport.Width = width
	d.viewport.Height = height
}

// Width returns the content width of the viewport.
func (d DetailPanel) Width() int {
	return d.viewport.Width
}

// SetContent updates the displayed text and title and scrolls to the top.
func (d *DetailPanel) SetContent(title, content string) {
	d.title = title
	d.emptyHint = ""
	d.totalLines = strings.Count(content, "\n") + 1
	d.viewport.SetContent(content)
	d.viewport.GotoTop()
}

// SetEmpty sets the detail panel to show an empty-state hint.
func (d *DetailPanel) SetEmpty(hint string) {
	d.title = ""
	d.emptyHint = hint
	d.totalLines = 0
	d.viewport.SetContent("")
	d.viewport.GotoTop()
}

// Title returns the current panel title.
func (d DetailPanel) Title() string {
	return d.title
}

// Content returns the text currently held by the viewport, or the empty hint.
func (d DetailPanel) Content() string {
	if d.emptyHint != "" {
		return d.emptyHint
	}
	return d.viewport.View()
}

// Update handles viewport scroll messages.
// Home and End are handled explicitly because the viewport's built-in
// KeyMap does not bind those keys.
func (d *DetailPanel) Update(msg tea.Msg) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "home":
			d.viewport.GotoTop()
			return
		case "end":
			d.viewport.GotoBottom()
			return
		}
	}
	d.viewport, _ = d.viewport.Update(msg)
}

// View renders the detail panel with a rounded border and scroll indicators.
func (d DetailPanel) View() string {
	if d.emptyHint != "" {
		content := styleDetailDim.Render(d.emptyHint)
		return styleDetailBorder.Render(content)
	}

	var b strings.Builder

	if d.title != "" {
		b.WriteString(styleDetailTitle.Render(d.title))
		b.WriteString("\n")
	}

	if upMore := d.linesAbove(); upMore > 0 {
		b.WriteString(styleScrollIndicator.Render(fmt.Sprintf("↑ %d more", upMore)))
		b.WriteString("\n")
	}

	b.WriteString(d.viewport.View())

	if downMore := d.linesBelow(); downMore > 0 {
		b.WriteString("\n")
		b.WriteString(styleScrollIndicator.Render(fmt.Sprintf("↓ %d more", downMore)))
	}

	return styleDetailBorder.Render(b.String())
}

// linesAbove returns the number of content lines above the viewport.
func (d DetailPanel) linesAbove() int {
	return d.viewport.YOffset
}

// linesBelow returns the number of content lines below the viewport.
func (d DetailPanel) linesBelow() int {
	below := d.totalLines - d.viewport.YOffset - d.viewport.Height
	if below < 0 {
		return 0
	}
	return below
}
