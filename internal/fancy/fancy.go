// Package fancy renders styled terminal output for the CLI.
package fancy

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
)

var (
	ColorBlue     = lipgloss.Color("39")
	ColorMagenta  = lipgloss.Color("201")
	ColorOrange   = lipgloss.Color("208")
	ColorGreen    = lipgloss.Color("82")
	ColorYellow   = lipgloss.Color("228")
	ColorCyan     = lipgloss.Color("45")
	ColorGray     = lipgloss.Color("250")
	ColorWhite    = lipgloss.Color("15")
	ColorDarkGray = lipgloss.Color("240")
)

// Tree returns a new tree with the shared enumerator styling.
func Tree() *tree.Tree {
	t := tree.New()
	t.EnumeratorStyle(BranchStyle)
	t.Enumerator(tree.RoundedEnumerator)
	return t
}

// BranchNode creates a section header node with a dimmed annotation.
func BranchNode(title string, note string) *tree.Tree {
	return tree.New().Root(
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			HeaderStyle.Render(title),
			" ",
			InfoStyle.Render(note),
		),
	)
}

// TruncateString shortens s to maxLength, ending with an ellipsis.
func TruncateString(s string, maxLength int) string {
	if len(s) <= maxLength {
		return s
	}
	if maxLength <= 3 {
		return s[:maxLength]
	}
	return s[:maxLength-3] + "..."
}
