package tui

import "github.com/charmbracelet/lipgloss"

// Semantic color palette.
var (
	colorPrimary     = lipgloss.Color("#00BFFF") // Cyan: primary accent
	colorAccent      = lipgloss.Color("#FFD700") // Gold: warnings
	colorDanger      = lipgloss.Color("#FF5252") // Red: not found
	colorMuted       = lipgloss.Color("#636363") // Gray: de-emphasized
	colorMutedLight  = lipgloss.Color("#8C8C8C") // Lighter gray: normal text
	colorWhite       = lipgloss.Color("#EEEEEE") // Off-white: primary text
	colorBrightWhite = lipgloss.Color("#FFFFFF") // Pure white: emphatic text
	colorSurface     = lipgloss.Color("#1E1E2E") // Dark surface: title bar bg
	colorSurfaceDim  = lipgloss.Color("#181825") // Darkest surface: footer bg
)

// Title bar style.
var styleTitleBar = lipgloss.NewStyle().
	Background(colorSurface).
	Foreground(colorBrightWhite).
	Bold(true).
	Padding(0, 1)

// Search input styles.
var (
	styleInputPrompt = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	styleInputBox = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)
)

// Status line styles.
var (
	styleStatusWarn = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	styleStatusError = lipgloss.NewStyle().
				Foreground(colorDanger).
				Bold(true)

	styleStatusInfo = lipgloss.NewStyle().
			Foreground(colorMutedLight)
)

// Element page styles.
var (
	styleRowLabel = lipgloss.NewStyle().
			Foreground(colorPrimary)

	styleRowValue = lipgloss.NewStyle().
			Foreground(colorWhite)

	styleRowMissing = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleHint = lipgloss.NewStyle().
			Foreground(colorMutedLight)
)

// Detail panel styles: rounded border, styled title.
var (
	styleDetailBorder = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorMuted).
				Padding(0, 1)

	styleDetailTitle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	styleDetailDim = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleScrollIndicator = lipgloss.NewStyle().
				Foreground(colorMuted).
				Italic(true)
)

// Footer styles: top border, clear key/desc contrast.
var (
	styleFooter = lipgloss.NewStyle().
			Foreground(colorMuted).
			Background(colorSurfaceDim).
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(colorMuted)

	styleFooterKey = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleFooterSep = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleFooterDesc = lipgloss.NewStyle().
			Foreground(colorMutedLight)
)
