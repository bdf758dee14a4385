package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette holds precomputed colors derived from a Theme.
type Palette struct {
	Bg          lipgloss.Color
	BgHighlight lipgloss.Color
	BgSelection lipgloss.Color
	Fg          lipgloss.Color
	FgMuted     lipgloss.Color
	Accent      lipgloss.Color
	Today       lipgloss.Color
	Selected    lipgloss.Color
	WeekNumber  lipgloss.Color
	Warning     lipgloss.Color

	// SelectedBg fills selected days; SelectedOutBg fills selected days of
	// the neighbouring months.
	SelectedBg    lipgloss.Color
	SelectedOutBg lipgloss.Color

	TextOnAccent   lipgloss.Color
	TextOnSelected lipgloss.Color
	TextOnToday    lipgloss.Color
}

// NewPalette derives a Palette from the provided Theme.
func NewPalette(t *Theme) *Palette {
	if t == nil {
		t, _ = Load(DefaultName)
	}

	light := isLightTheme(t.Bg)
	selectedBg := rangeBg(t.Selected, t.Bg, light, 0.45)
	selectedOutBg := rangeBg(t.Selected, t.Bg, light, 0.70)

	return &Palette{
		Bg:          lipgloss.Color(t.Bg),
		BgHighlight: lipgloss.Color(t.BgHighlight),
		BgSelection: lipgloss.Color(t.BgSelection),
		Fg:          lipgloss.Color(t.Fg),
		FgMuted:     lipgloss.Color(t.FgMuted),
		Accent:      lipgloss.Color(t.Accent),
		Today:       lipgloss.Color(t.Today),
		Selected:    lipgloss.Color(t.Selected),
		WeekNumber:  lipgloss.Color(t.WeekNumber),
		Warning:     lipgloss.Color(t.Warning),

		SelectedBg:    lipgloss.Color(selectedBg),
		SelectedOutBg: lipgloss.Color(selectedOutBg),

		TextOnAccent:   lipgloss.Color(chooseTextColor(t.Accent, t.Bg, t.Fg)),
		TextOnSelected: lipgloss.Color(chooseTextColor(selectedBg, t.Bg, t.Fg)),
		TextOnToday:    lipgloss.Color(chooseTextColor(t.Today, t.Bg, t.Fg)),
	}
}

func isLightTheme(bg string) bool {
	return relativeLuminance(bg) > 0.55
}

// rangeBg mixes the selection color into the background. Larger ratios stay
// closer to the background.
func rangeBg(accent, bg string, light bool, ratio float64) string {
	if light {
		ratio += 0.2
	}
	return blendColors(accent, bg, min(ratio, 1))
}

func chooseTextColor(bg, lightText, darkText string) string {
	if contrastRatio(bg, lightText) >= contrastRatio(bg, darkText) {
		return lightText
	}
	return darkText
}

func contrastRatio(a, b string) float64 {
	l1 := relativeLuminance(a)
	l2 := relativeLuminance(b)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// relativeLuminance returns the WCAG luminance of a hex color, 0 when it
// does not parse.
func relativeLuminance(hex string) float64 {
	c, err := colorful.Hex(hex)
	if err != nil {
		return 0
	}
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// blendColors moves a towards b by ratio in RGB space. a is returned
// unchanged when either color does not parse.
func blendColors(a, b string, ratio float64) string {
	ca, err := colorful.Hex(a)
	if err != nil {
		return a
	}
	cb, err := colorful.Hex(b)
	if err != nil {
		return a
	}
	return ca.BlendRgb(cb, max(0, min(ratio, 1))).Clamped().Hex()
}
