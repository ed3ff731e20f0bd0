// Package brand defines the immutable palette and brand word threaded into slide rendering.
package brand

import (
	"fmt"
	"sort"
	"strings"

	"github.com/conn-castle/deck-builder/internal/coverage"
	"github.com/conn-castle/deck-builder/internal/messages"
)

// Color is a six-digit upper-case RGB hex value. The zero value means "inherit from the template".
type Color string

// ParseColor accepts "00A9E0", "00a9e0", or "#00A9E0".
func ParseColor(s string) (Color, error) {
	v := strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(s), "#"))
	if len(v) != 6 {
		return "", fmt.Errorf(messages.BrandInvalidColorFmt, s)
	}
	for _, r := range v {
		if (r < '0' || r > '9') && (r < 'A' || r > 'F') {
			return "", fmt.Errorf(messages.BrandInvalidColorFmt, s)
		}
	}
	return Color(v), nil
}

// Hex returns the color as six hex digits.
func (c Color) Hex() string { return string(c) }

// IsZero reports whether c is unset.
func (c Color) IsZero() bool { return c == "" }

// Palette names every color a renderer may use.
type Palette struct {
	Text      Color // primary text on dark backgrounds
	Accent    Color // eyebrows, headers, checkmarks
	Available Color
	Partial   Color
	Planned   Color // also muted body text
	Light     Color
	RowEven   Color
	RowOdd    Color
	Header    Color // table header and total-row fill
	Panel     Color // card and panel backgrounds
	Badge     Color // roadmap badge fill
	Highlight Color
	Alert     Color
	Info      Color
}

// Theme is an immutable rendering configuration. Copies are independent.
type Theme struct {
	// BrandWord is printed on hero and call-to-action slides when the slide names none.
	BrandWord string
	Font      string
	Palette   Palette
}

// Default returns the stock dark-background theme.
func Default() Theme {
	return Theme{
		BrandWord: messages.DeckDefaultBrand,
		Palette: Palette{
			Text:      "FFFFFF",
			Accent:    "00A9E0",
			Available: "73BE28",
			Partial:   "F5821F",
			Planned:   "AAAAAA",
			Light:     "CCCCCC",
			RowEven:   "1E2A3A",
			RowOdd:    "121E2E",
			Header:    "0B1726",
			Panel:     "1A2440",
			Badge:     "555555",
			Highlight: "9B59B6",
			Alert:     "E74C3C",
			Info:      "3495DB",
		},
	}
}

// fields maps override keys onto palette slots.
func (p *Palette) fields() map[string]*Color {
	return map[string]*Color{
		"text":      &p.Text,
		"accent":    &p.Accent,
		"available": &p.Available,
		"partial":   &p.Partial,
		"planned":   &p.Planned,
		"light":     &p.Light,
		"row_even":  &p.RowEven,
		"row_odd":   &p.RowOdd,
		"header":    &p.Header,
		"panel":     &p.Panel,
		"badge":     &p.Badge,
		"highlight": &p.Highlight,
		"alert":     &p.Alert,
		"info":      &p.Info,
	}
}

// PaletteKeys lists the keys accepted by WithOverrides, sorted.
func PaletteKeys() []string {
	var p Palette
	keys := make([]string, 0, 16)
	for k := range p.fields() {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// WithOverrides returns a copy of t with the named palette slots replaced.
func (t Theme) WithOverrides(colors map[string]string) (Theme, error) {
	out := t
	slots := out.Palette.fields()
	for key, value := range colors {
		slot, ok := slots[strings.ToLower(strings.TrimSpace(key))]
		if !ok {
			return t, fmt.Errorf(messages.BrandUnknownColorKeyFmt, key, strings.Join(PaletteKeys(), ", "))
		}
		c, err := ParseColor(value)
		if err != nil {
			return t, err
		}
		*slot = c
	}
	return out, nil
}

// StatusColor returns the text color for a status cell by marker-glyph containment.
func (t Theme) StatusColor(text string) Color {
	switch coverage.GlyphState(text) {
	case coverage.StateAvailable:
		return t.Palette.Available
	case coverage.StatePartial:
		return t.Palette.Partial
	case coverage.StatePlanned:
		return t.Palette.Planned
	default:
		return t.Palette.Text
	}
}

// CardColor returns the accent bar color for the i-th card; colors cycle.
func (t Theme) CardColor(i int) Color {
	cycle := []Color{
		t.Palette.Accent,
		t.Palette.Available,
		t.Palette.Partial,
		t.Palette.Highlight,
		t.Palette.Alert,
		t.Palette.Info,
	}
	return cycle[i%len(cycle)]
}

// NamedColor resolves a user-facing color name, falling back to fallback.
func (t Theme) NamedColor(name string, fallback Color) Color {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "white":
		return t.Palette.Text
	case "teal", "accent":
		return t.Palette.Accent
	case "green":
		return t.Palette.Available
	case "orange":
		return t.Palette.Partial
	case "gray", "grey":
		return t.Palette.Planned
	case "purple":
		return t.Palette.Highlight
	case "red":
		return t.Palette.Alert
	case "blue":
		return t.Palette.Info
	}
	if c, err := ParseColor(name); err == nil {
		return c
	}
	return fallback
}

// Customize returns a copy of t with the brand word, font, and palette slots
// replaced. Empty word and font keep the current values.
func (t Theme) Customize(word, font string, colors map[string]string) (Theme, error) {
	out, err := t.WithOverrides(colors)
	if err != nil {
		return t, err
	}
	if w := strings.TrimSpace(word); w != "" {
		out.BrandWord = w
	}
	if f := strings.TrimSpace(font); f != "" {
		out.Font = f
	}
	return out, nil
}
