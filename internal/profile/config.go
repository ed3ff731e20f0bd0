package profile

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/conn-castle/deck-builder/internal/config"
	"github.com/conn-castle/deck-builder/internal/content"
	"github.com/conn-castle/deck-builder/internal/messages"
)

// Screenshot slide kinds.
const (
	ScreenshotTwoImage = "two_image"
	ScreenshotSingle   = "single"
)

// Config is one profile's deck settings. Relative paths resolve against the profile directory.
type Config struct {
	Customer         string             `toml:"customer,omitempty" yaml:"customer"`
	DeckTitle        string             `toml:"deck_title,omitempty" yaml:"deck_title"`
	DeckSubtitle     string             `toml:"deck_subtitle,omitempty" yaml:"deck_subtitle"`
	Contact          string             `toml:"contact,omitempty" yaml:"contact"`
	ClosingMessage   string             `toml:"closing_message,omitempty" yaml:"closing_message"`
	Template         string             `toml:"template,omitempty" yaml:"template"`
	Output           string             `toml:"output,omitempty" yaml:"output"`
	RequirementsFile string             `toml:"requirements_file,omitempty" yaml:"requirements_file"`
	ScreenshotsDir   string             `toml:"screenshots_dir,omitempty" yaml:"screenshots_dir"`
	CustomerLogo     string             `toml:"customer_logo,omitempty" yaml:"customer_logo"`
	CoverageTitle    string             `toml:"coverage_title,omitempty" yaml:"coverage_title"`
	CoverageEyebrow  string             `toml:"coverage_eyebrow,omitempty" yaml:"coverage_eyebrow"`
	LandingTitle     string             `toml:"landing_title,omitempty" yaml:"landing_title"`
	LandingBullets   []string           `toml:"landing_bullets,omitempty" yaml:"landing_bullets"`
	LayoutIndices    map[string]int     `toml:"layout_indices,omitempty" yaml:"layout_indices"`
	Images           map[string]string  `toml:"images,omitempty" yaml:"images"`
	Agenda           []AgendaItem       `toml:"agenda,omitempty" yaml:"agenda"`
	ScreenshotSlides []ScreenshotSlide  `toml:"screenshot_slides,omitempty" yaml:"screenshot_slides"`
	Highlight        *Highlight         `toml:"highlight,omitempty" yaml:"highlight"`
	Theme            config.ThemeConfig `toml:"theme,omitempty" yaml:"theme"`

	// LegacyHighlight is the older YAML name for Highlight.
	LegacyHighlight *Highlight `toml:"-" yaml:"gcc_slide"`
}

// AgendaItem is one line of the optional agenda slide.
type AgendaItem struct {
	Icon  string `toml:"icon,omitempty" yaml:"icon"`
	Label string `toml:"label" yaml:"label"`
}

// ScreenshotSlide describes one screenshot slide. Image keys refer to the images map.
type ScreenshotSlide struct {
	Type         string   `toml:"type" yaml:"type"`
	Title        string   `toml:"title" yaml:"title"`
	Eyebrow      string   `toml:"eyebrow,omitempty" yaml:"eyebrow"`
	LeftKey      string   `toml:"left_key,omitempty" yaml:"left_key"`
	LeftCaption  string   `toml:"left_caption,omitempty" yaml:"left_caption"`
	RightKey     string   `toml:"right_key,omitempty" yaml:"right_key"`
	RightCaption string   `toml:"right_caption,omitempty" yaml:"right_caption"`
	ImgKey       string   `toml:"img_key,omitempty" yaml:"img_key"`
	Bullets      []string `toml:"bullets,omitempty" yaml:"bullets"`
}

// Highlight is an extra requirement table shown after the screenshots.
type Highlight struct {
	Title        string                 `toml:"title,omitempty" yaml:"title"`
	Eyebrow      string                 `toml:"eyebrow,omitempty" yaml:"eyebrow"`
	Requirements []HighlightRequirement `toml:"requirements,omitempty" yaml:"requirements"`
	Legacy       []HighlightRequirement `toml:"-" yaml:"reqs"`
}

// HighlightRequirement is a requirement row written inline in a profile.
type HighlightRequirement struct {
	Name        string `toml:"name,omitempty" yaml:"name"`
	Requirement string `toml:"requirement,omitempty" yaml:"requirement"`
	Description string `toml:"description,omitempty" yaml:"description"`
	Status      string `toml:"status,omitempty" yaml:"status"`
	Signal      string `toml:"signal,omitempty" yaml:"signal"`
}

// Rows converts the highlight entries to requirements, honoring the older keys.
func (h *Highlight) Rows() []content.Requirement {
	if h == nil {
		return nil
	}
	src := h.Requirements
	if len(src) == 0 {
		src = h.Legacy
	}
	out := make([]content.Requirement, 0, len(src))
	for _, r := range src {
		name := r.Name
		if name == "" {
			name = r.Requirement
		}
		out = append(out, content.Requirement{Name: name, Description: r.Description, Status: r.Status, Signal: r.Signal})
	}
	return out
}

// normalize folds legacy keys into their current names.
func (c *Config) normalize() {
	if c.Highlight == nil && c.LegacyHighlight != nil {
		c.Highlight = c.LegacyHighlight
	}
	c.LegacyHighlight = nil
}

// Validate checks settings that cannot be fixed at build time. path names the config file.
func (c *Config) Validate(path string) error {
	if err := config.ValidateLayoutIndices(path, c.LayoutIndices); err != nil {
		return err
	}
	if err := config.ValidateTheme(c.Theme); err != nil {
		return fmt.Errorf(messages.ConfigThemeInvalidFmt, path, err)
	}
	return nil
}

// overrides lists the scalar keys that --set and tool callers may replace.
var overrides = map[string]func(c *Config) *string{
	"customer":          func(c *Config) *string { return &c.Customer },
	"deck_title":        func(c *Config) *string { return &c.DeckTitle },
	"deck_subtitle":     func(c *Config) *string { return &c.DeckSubtitle },
	"contact":           func(c *Config) *string { return &c.Contact },
	"closing_message":   func(c *Config) *string { return &c.ClosingMessage },
	"template":          func(c *Config) *string { return &c.Template },
	"output":            func(c *Config) *string { return &c.Output },
	"requirements_file": func(c *Config) *string { return &c.RequirementsFile },
	"screenshots_dir":   func(c *Config) *string { return &c.ScreenshotsDir },
	"customer_logo":     func(c *Config) *string { return &c.CustomerLogo },
	"coverage_title":    func(c *Config) *string { return &c.CoverageTitle },
	"coverage_eyebrow":  func(c *Config) *string { return &c.CoverageEyebrow },
	"landing_title":     func(c *Config) *string { return &c.LandingTitle },
	"theme.brand_name":  func(c *Config) *string { return &c.Theme.BrandName },
	"theme.font":        func(c *Config) *string { return &c.Theme.Font },
}

// OverrideKeys returns the keys accepted by ApplyOverrides, sorted.
func OverrideKeys() []string {
	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ApplyOverrides replaces scalar settings. Unknown keys fail before anything changes.
func (c *Config) ApplyOverrides(values map[string]string) error {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if _, ok := overrides[k]; !ok {
			valid := OverrideKeys()
			if matches := fuzzy.Find(k, valid); len(matches) > 0 {
				return fmt.Errorf(messages.ProfileOverrideHintFmt, k, matches[0].Str)
			}
			return fmt.Errorf(messages.ProfileOverrideUnknownFmt, k, strings.Join(valid, ", "))
		}
	}
	for _, k := range keys {
		*overrides[k](c) = values[k]
	}
	return nil
}

// ParseOverrides turns key=value pairs into an override map.
func ParseOverrides(pairs []string) (map[string]string, error) {
	out := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf(messages.ProfileOverrideInvalidFmt, pair)
		}
		out[key] = value
	}
	return out, nil
}
