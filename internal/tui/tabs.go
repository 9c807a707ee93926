package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/papapumpkin/periodic/internal/config"
)

// PageTab identifies one of the element pages.
type PageTab int

const (
	// TabBasic shows identity and classification (default).
	TabBasic PageTab = iota
	// TabDetails shows discovery, appearance and descriptive text.
	TabDetails
	// TabProperties shows physical and chemical quantities.
	TabProperties
)

// pageTabCount is the total number of page tabs.
const pageTabCount = 3

// tabKeys maps each tab to its page key.
var tabKeys = [pageTabCount]string{
	TabBasic:      config.PageBasic,
	TabDetails:    config.PageDetails,
	TabProperties: config.PageProperties,
}

// Key returns the page key for a tab.
func (t PageTab) Key() string {
	if int(t) >= 0 && int(t) < pageTabCount {
		return tabKeys[t]
	}
	return "unknown"
}

// Next cycles forward to the next tab, wrapping around.
func (t PageTab) Next() PageTab {
	return PageTab((int(t) + 1) % pageTabCount)
}

// Prev cycles backward to the previous tab, wrapping around.
func (t PageTab) Prev() PageTab {
	return PageTab((int(t) + pageTabCount - 1) % pageTabCount)
}

// TabBar renders a horizontal row of page titles.
type TabBar struct {
	ActiveTab PageTab
	Titles    [pageTabCount]string
	Width     int
}

// View renders the tab bar as a single styled line.
func (tb TabBar) View() string {
	activeStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(colorPrimary).
		Underline(true)

	inactiveStyle := lipgloss.NewStyle().
		Foreground(colorMuted)

	var parts []string
	for i := 0; i < pageTabCount; i++ {
		tab := PageTab(i)
		title := tb.Titles[i]
		if title == "" {
			title = tab.Key()
		}
		label := fmt.Sprintf("[%d] %s", i+1, title)
		if tab == tb.ActiveTab {
			parts = append(parts, activeStyle.Render(label))
		} else {
			parts = append(parts, inactiveStyle.Render(label))
		}
	}

	line := strings.Join(parts, "  ")
	return lipgloss.NewStyle().
		Width(tb.Width).
		PaddingLeft(2).
		Render(line)
}
