// Package ui renders the demo output: bold labels, a bracketed list form for
// name sequences, and hex identity tokens. Styling degrades to plain text
// when stdout is not a terminal, so piped output stays readable.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	labelStyle = lipgloss.NewStyle().Bold(true)
	nameStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // green
	punctStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))  // dim
	identStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12")) // blue
)

// Label renders a line label like "Before:" or " After:". Leading spaces are
// part of the label so columns line up, as in the original output.
func Label(s string) string {
	return labelStyle.Render(s)
}

// List renders a sequence of names in bracketed, quoted form:
//
//	['John', 'Paul', 'George', 'Ringo']
func List(names []string) string {
	var b strings.Builder
	b.WriteString(punctStyle.Render("["))
	for i, n := range names {
		if i > 0 {
			b.WriteString(punctStyle.Render(", "))
		}
		b.WriteString(punctStyle.Render("'"))
		b.WriteString(nameStyle.Render(n))
		b.WriteString(punctStyle.Render("'"))
	}
	b.WriteString(punctStyle.Render("]"))
	return b.String()
}

// Ident renders an identity token in hex, e.g. 0xc000012345.
func Ident(id uintptr) string {
	return identStyle.Render(fmt.Sprintf("%#x", id))
}
