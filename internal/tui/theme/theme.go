// Package theme provides color themes for the TUI.
package theme

import (
	"embed"
	"fmt"
	"slices"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"
)

// DefaultName is used when no theme, or an unknown one, is requested.
const DefaultName = "mocha"

//go:embed embedded/*.toml
var embeddedThemes embed.FS

// Catppuccin flavors, darkest first.
var names = []string{"mocha", "macchiato", "frappe", "latte"}

// Theme holds all colors for a TUI theme.
type Theme struct {
	Name        string `toml:"name"`
	Bg          string `toml:"bg"`
	BgHighlight string `toml:"bg_highlight"`
	BgSelection string `toml:"bg_selection"` // focused field
	Fg          string `toml:"fg"`
	FgMuted     string `toml:"fg_muted"` // placeholders, separators, help
	Accent      string `toml:"accent"`   // title, focus ring
	Start       string `toml:"start"`
	End         string `toml:"end"`
	Warning     string `toml:"warning"` // rejected paste, date errors
}

// Load reads an embedded theme by name, case-insensitively. Unknown names
// fall back to DefaultName.
func Load(name string) (*Theme, error) {
	name = strings.ToLower(name)
	if !IsAvailable(name) {
		name = DefaultName
	}

	data, err := embeddedThemes.ReadFile("embedded/" + name + ".toml")
	if err != nil {
		return nil, fmt.Errorf("loading theme %q: %w", name, err)
	}

	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing theme %q: %w", name, err)
	}
	t.applyDefaults()
	if err := t.validate(); err != nil {
		return nil, fmt.Errorf("theme %q: %w", name, err)
	}
	return &t, nil
}

// applyDefaults fills optional colors from the ones every theme must set:
// Bg, Fg and Accent.
func (t *Theme) applyDefaults() {
	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	fill(&t.BgHighlight, t.Bg)
	fill(&t.BgSelection, t.BgHighlight)
	fill(&t.FgMuted, t.Fg)
	fill(&t.Start, t.Accent)
	fill(&t.End, t.Accent)
	fill(&t.Warning, t.Accent)
}

func (t *Theme) validate() error {
	colors := []struct{ field, hex string }{
		{"bg", t.Bg}, {"bg_highlight", t.BgHighlight}, {"bg_selection", t.BgSelection},
		{"fg", t.Fg}, {"fg_muted", t.FgMuted}, {"accent", t.Accent},
		{"start", t.Start}, {"end", t.End}, {"warning", t.Warning},
	}
	for _, c := range colors {
		if _, err := colorful.Hex(c.hex); err != nil {
			return fmt.Errorf("%s: invalid color %q", c.field, c.hex)
		}
	}
	return nil
}

// Available returns the names of the embedded themes.
func Available() []string {
	return slices.Clone(names)
}

// IsAvailable reports whether name is an embedded theme, ignoring case.
func IsAvailable(name string) bool {
	return slices.Contains(names, strings.ToLower(name))
}
