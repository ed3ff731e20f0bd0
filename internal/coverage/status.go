// Package coverage classifies requirement status text and summarizes coverage per domain.
package coverage

import (
	"strings"
	"unicode"
)

// State is the coverage state a requirement status classifies into.
type State int

// Coverage states. StateUnknown means the status carried no marker or keyword.
const (
	StateUnknown State = iota
	StateAvailable
	StatePartial
	StatePlanned
)

// Marker glyphs embedded in normalized status text.
const (
	GlyphAvailable = "✅"
	GlyphPartial   = "⚡"
	GlyphPlanned   = "\U0001f5fa"
)

// keywordGroups is ordered; the first group with a matching keyword wins.
var keywordGroups = []struct {
	state    State
	keywords []string
}{
	{state: StateAvailable, keywords: []string{"now", "available", "yes"}},
	{state: StatePartial, keywords: []string{"partial"}},
	{state: StatePlanned, keywords: []string{"roadmap", "planned", "future"}},
}

// Glyph returns the marker glyph for s, or "" for StateUnknown.
func (s State) Glyph() string {
	switch s {
	case StateAvailable:
		return GlyphAvailable
	case StatePartial:
		return GlyphPartial
	case StatePlanned:
		return GlyphPlanned
	default:
		return ""
	}
}

func (s State) String() string {
	switch s {
	case StateAvailable:
		return "available"
	case StatePartial:
		return "partial"
	case StatePlanned:
		return "planned"
	default:
		return "unknown"
	}
}

// GlyphState reports the state whose marker glyph text contains.
// Glyphs are checked in available, partial, planned order.
func GlyphState(text string) State {
	for _, s := range []State{StateAvailable, StatePartial, StatePlanned} {
		if strings.Contains(text, s.Glyph()) {
			return s
		}
	}
	return StateUnknown
}

// KeywordState reports the first keyword group with a keyword at the start of a word in text.
// Matching is case-insensitive, so "unknown" does not match "now" but "Nowcast" does.
func KeywordState(text string) State {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, group := range keywordGroups {
		for _, kw := range group.keywords {
			for _, w := range words {
				if strings.HasPrefix(w, kw) {
					return group.state
				}
			}
		}
	}
	return StateUnknown
}

// Classify returns the coverage state of a status, preferring marker glyphs over keywords.
func Classify(status string) State {
	if s := GlyphState(status); s != StateUnknown {
		return s
	}
	return KeywordState(status)
}

// Normalize trims status and prepends the marker glyph of its keyword group
// when that glyph is absent. Text matching no keyword group is returned trimmed.
func Normalize(status string) string {
	v := strings.TrimSpace(status)
	state := KeywordState(v)
	if state == StateUnknown {
		return v
	}
	glyph := state.Glyph()
	if strings.Contains(v, glyph) {
		return v
	}
	return glyph + " " + v
}
