package tui

import (
	"fmt"
	"strings"
)

// KeyReference returns the picker key bindings as a markdown document.
func KeyReference() string {
	titles := []string{"Fields", "Dates", "Actions"}

	var b strings.Builder
	b.WriteString("# logspan keys\n\n")
	for i, group := range defaultKeyMap().FullHelp() {
		fmt.Fprintf(&b, "## %s\n\n| Key | Action |\n| --- | --- |\n", titles[i])
		for _, kb := range group {
			h := kb.Help()
			fmt.Fprintf(&b, "| `%s` | %s |\n", h.Key, h.Desc)
		}
		b.WriteString("\n")
	}
	b.WriteString("Digits and backspace edit the focused field. The first digit typed " +
		"after moving to a field replaces its value.\n\n")
	b.WriteString("Pasting an epoch timestamp in milliseconds, or any 16 character number in " +
		"microseconds, sets the start one second before it and the end one second after.\n")
	return b.String()
}
