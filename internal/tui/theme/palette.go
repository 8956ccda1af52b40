package theme

import (
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// lightBackground is the luminance above which a background reads as light.
const lightBackground = 0.55

// Palette holds precomputed colors derived from a Theme.
type Palette struct {
	Bg          lipgloss.Color
	BgHighlight lipgloss.Color
	BgSelection lipgloss.Color
	Fg          lipgloss.Color
	FgMuted     lipgloss.Color
	Accent      lipgloss.Color
	Start       lipgloss.Color
	End         lipgloss.Color
	Warning     lipgloss.Color

	// Border of an unfocused control, tinted with its role color.
	StartMuted lipgloss.Color
	EndMuted   lipgloss.Color

	// Border of the control that owns the focused field.
	FocusRing lipgloss.Color

	TextOnSelection lipgloss.Color
	TextOnWarning   lipgloss.Color
}

// NewPalette derives a Palette from the provided Theme.
func NewPalette(t *Theme) *Palette {
	if t == nil {
		t, _ = Load(DefaultName)
	}

	return &Palette{
		Bg:          lipgloss.Color(t.Bg),
		BgHighlight: lipgloss.Color(t.BgHighlight),
		BgSelection: lipgloss.Color(t.BgSelection),
		Fg:          lipgloss.Color(t.Fg),
		FgMuted:     lipgloss.Color(t.FgMuted),
		Accent:      lipgloss.Color(t.Accent),
		Start:       lipgloss.Color(t.Start),
		End:         lipgloss.Color(t.End),
		Warning:     lipgloss.Color(t.Warning),

		StartMuted: lipgloss.Color(blend(t.Start, t.Bg, 0.6)),
		EndMuted:   lipgloss.Color(blend(t.End, t.Bg, 0.6)),
		FocusRing:  lipgloss.Color(focusRing(t.Accent, t.Bg)),

		TextOnSelection: lipgloss.Color(readableOn(t.BgSelection, t.Fg, t.Bg)),
		TextOnWarning:   lipgloss.Color(readableOn(t.Warning, t.Bg, t.Fg)),
	}
}

// IsLight reports whether the theme uses a light background.
func (t *Theme) IsLight() bool {
	return luminance(t.Bg) > lightBackground
}

// focusRing softens the accent on light backgrounds so the ring does not
// overpower the digits.
func focusRing(accent, bg string) string {
	if luminance(bg) > lightBackground {
		return blend(accent, bg, 0.25)
	}
	return accent
}

// readableOn returns the candidate with the best contrast against bg.
// Ties go to the earlier candidate.
func readableOn(bg string, candidates ...string) string {
	best, bestRatio := "", -1.0
	for _, c := range candidates {
		if r := contrast(bg, c); r > bestRatio {
			best, bestRatio = c, r
		}
	}
	return best
}

// contrast is the WCAG contrast ratio between two hex colors.
func contrast(a, b string) float64 {
	la, lb := luminance(a), luminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// luminance is the WCAG relative luminance of a hex color. Unparseable
// colors count as black.
func luminance(hex string) float64 {
	c, err := colorful.Hex(hex)
	if err != nil {
		return 0
	}
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// blend mixes a towards b by ratio in [0, 1]. If either color cannot be
// parsed a is returned unchanged.
func blend(a, b string, ratio float64) string {
	ca, err := colorful.Hex(a)
	if err != nil {
		return a
	}
	cb, err := colorful.Hex(b)
	if err != nil {
		return a
	}
	ratio = math.Max(0, math.Min(1, ratio))
	return ca.BlendRgb(cb, ratio).Clamped().Hex()
}
