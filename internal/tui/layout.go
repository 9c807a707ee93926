package tui

// Minimum terminal dimensions for usable rendering.
const (
	MinWidth  = 40
	MinHeight = 10
)

// CompactWidth triggers compact mode for the footer.
const CompactWidth = 60

// chromeHeight is the number of lines used by everything except the detail
// panel: title, bordered input, tab bar, status line, panel border and footer.
const chromeHeight = 11

// labelColumnMax caps the width of the label column on a page.
const labelColumnMax = 28

// detailSize returns the viewport size that fits a terminal of the given size.
func detailSize(width, height int) (int, int) {
	w := max(width, MinWidth) - 4
	h := max(height, MinHeight) - chromeHeight
	return w, max(h, 3)
}
