package fancy

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	RootStyle = lipgloss.NewStyle().
			Foreground(ColorBlue).
			Bold(true)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorWhite).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorGray).
			Italic(true)

	BranchStyle = lipgloss.NewStyle().
			Foreground(ColorDarkGray)

	FixtureStyle = lipgloss.NewStyle().
			Foreground(ColorCyan)

	MethodStyle = lipgloss.NewStyle().
			Foreground(ColorOrange).
			Bold(true)

	RouteStyle = lipgloss.NewStyle().
			Foreground(ColorYellow)

	AppStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	PolicyStyle = lipgloss.NewStyle().
			Foreground(ColorMagenta)
)

// FixtureText styles a fixture name.
func FixtureText(text string) string {
	return FixtureStyle.Render(text)
}

// RouteText styles a method and path pair.
func RouteText(method, path string) string {
	return MethodStyle.Render(method) + " " + RouteStyle.Render(path)
}

// AppText styles a handler name.
func AppText(text string) string {
	return AppStyle.Render(text)
}

// PolicyText styles a CORS policy name.
func PolicyText(text string) string {
	return PolicyStyle.Render(text)
}
