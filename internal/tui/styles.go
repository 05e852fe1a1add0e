package tui

import "github.com/charmbracelet/lipgloss"

// Semantic color palette.
var (
	colorPrimary       = lipgloss.Color("#00BFFF") // Cyan: primary accent
	colorAccent        = lipgloss.Color("#FFD700") // Gold: headings
	colorDanger        = lipgloss.Color("#FF5252") // Red: errors
	colorMuted         = lipgloss.Color("#636363") // Gray: de-emphasized
	colorMutedLight    = lipgloss.Color("#8C8C8C") // Lighter gray: normal text
	colorWhite         = lipgloss.Color("#EEEEEE") // Off-white: primary text
	colorBrightWhite   = lipgloss.Color("#FFFFFF") // Pure white: emphatic text
	colorSurface       = lipgloss.Color("#1E1E2E") // Dark surface: status bar bg
	colorSurfaceBright = lipgloss.Color("#2A2A3C") // Lighter surface: skeleton bars
	colorSurfaceDim    = lipgloss.Color("#181825") // Darkest surface: footer bg
	colorBlue          = lipgloss.Color("#5B8DEF") // Blue: names
)

// Focus indicator prepended to the focused control.
const focusIndicator = "▸"

// Header styles.
var (
	styleTitle = lipgloss.NewStyle().
			Foreground(colorBrightWhite).
			Bold(true)

	styleSubtitle = lipgloss.NewStyle().
			Foreground(colorMutedLight)

	styleHeading = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)
)

// Button styles by variant.
var (
	styleButtonPrimary = lipgloss.NewStyle().
				Background(colorPrimary).
				Foreground(colorSurface).
				Bold(true).
				Padding(0, 1)

	styleButtonSecondary = lipgloss.NewStyle().
				Background(colorSurfaceBright).
				Foreground(colorWhite).
				Padding(0, 1)

	styleButtonPlain = lipgloss.NewStyle().
				Foreground(colorMutedLight).
				Padding(0, 1)

	styleButtonDisabled = lipgloss.NewStyle().
				Foreground(colorMuted).
				Padding(0, 1)

	styleFocusIndicator = lipgloss.NewStyle().
				Foreground(colorAccent).
				Bold(true)
)

// Form styles.
var (
	styleLabel = lipgloss.NewStyle().
			Foreground(colorMutedLight)

	styleInput = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)

	styleInputFocused = styleInput.
				BorderForeground(colorPrimary)

	stylePlaceholder = lipgloss.NewStyle().
				Foreground(colorMuted)

	styleTextArea = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorMuted).
			Foreground(colorMutedLight).
			Padding(0, 1)
)

// Results panel styles.
var (
	styleCard = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)

	styleCardFocused = styleCard.
				BorderForeground(colorPrimary)

	styleCardName = lipgloss.NewStyle().
			Foreground(colorBlue).
			Bold(true)

	styleCardDesc = lipgloss.NewStyle().
			Foreground(colorMutedLight)

	styleCount = lipgloss.NewStyle().
			Foreground(colorMutedLight)

	styleEmpty = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(1, 0)

	styleLoading = lipgloss.NewStyle().
			Foreground(colorMutedLight).
			Padding(1, 0)

	styleErrorBanner = lipgloss.NewStyle().
				Border(lipgloss.ThickBorder(), false, false, false, true).
				BorderForeground(colorDanger).
				Foreground(colorDanger).
				Padding(0, 1)

	styleErrorTitle = lipgloss.NewStyle().
			Foreground(colorDanger).
			Bold(true)

	styleWelcomeBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 2)
)

// Details overlay styles.
var (
	styleOverlay = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(colorPrimary).
			Padding(1, 2)

	styleDetailTitle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	styleDetailLabel = lipgloss.NewStyle().
				Foreground(colorMuted)

	styleDetailValue = lipgloss.NewStyle().
				Foreground(colorWhite)

	styleSkeleton = lipgloss.NewStyle().
			Background(colorSurfaceBright)

	styleScrollIndicator = lipgloss.NewStyle().
				Foreground(colorMuted).
				Italic(true)
)

// Status bar styles.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(colorSurface).
			Foreground(colorWhite).
			Bold(true).
			Padding(0, 1)

	styleStatusLabel = lipgloss.NewStyle().
				Background(colorSurface).
				Foreground(colorPrimary).
				Bold(true)

	styleStatusValue = lipgloss.NewStyle().
				Background(colorSurface).
				Foreground(colorWhite)

	styleStatusWarn = lipgloss.NewStyle().
			Background(colorSurface).
			Foreground(colorAccent)

	styleStatusError = lipgloss.NewStyle().
				Background(colorSurface).
				Foreground(colorDanger).
				Bold(true)
)

// Footer styles.
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
