package profile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/conn-castle/deck-builder/internal/content"
	"github.com/conn-castle/deck-builder/internal/layout"
	"github.com/conn-castle/deck-builder/internal/messages"
)

// CreateOptions configures a new profile.
type CreateOptions struct {
	Name           string
	TemplatePath   string
	DeckTitle      string
	ScreenshotsDir string
}

// now is a test seam.
var now = time.Now

// Slug lower-cases a profile name and joins its words with dashes.
func Slug(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

// customerName turns a slug back into a display name: "acme-corp" becomes "Acme Corp".
func customerName(slug string) string {
	words := strings.Split(slug, "-")
	for i, w := range words {
		r := []rune(w)
		if len(r) > 0 {
			r[0] = unicode.ToUpper(r[0])
		}
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

// Scaffold returns the config written for a new profile.
func Scaffold(opts CreateOptions) Config {
	slug := Slug(opts.Name)
	title := opts.DeckTitle
	if title == "" {
		title = messages.ProfileDefaultDeckTitle
	}
	indices := map[string]int{}
	for role, idx := range layout.Defaults() {
		indices[string(role)] = idx
	}
	return Config{
		Customer:         customerName(slug),
		DeckTitle:        title,
		DeckSubtitle:     fmt.Sprintf(messages.ProfileDefaultSubtitleFmt, strings.ToUpper(slug), now().Year()),
		Contact:          messages.ProfileDefaultContact,
		ClosingMessage:   messages.ProfileDefaultClosing,
		Template:         opts.TemplatePath,
		Output:           fmt.Sprintf(messages.ProfileDefaultOutputFmt, slug),
		RequirementsFile: RequirementsFile,
		ScreenshotsDir:   opts.ScreenshotsDir,
		LayoutIndices:    indices,
	}
}

// Create scaffolds a profile with a config and an empty requirements file.
// An existing profile directory is never touched.
func (s Store) Create(opts CreateOptions) (*Profile, error) {
	slug := Slug(opts.Name)
	if slug == "" {
		return nil, errors.New(messages.ProfileNameEmpty)
	}
	if strings.ContainsAny(slug, `/\`) || slug == "." || slug == ".." {
		return nil, fmt.Errorf(messages.ProfileNameInvalidFmt, opts.Name)
	}
	dir := filepath.Join(s.Root, slug)
	if _, err := os.Stat(dir); err == nil {
		return nil, fmt.Errorf(messages.ProfileExistsFmt, dir)
	}

	cfg := Scaffold(opts)
	data, err := Encode(cfg)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf(messages.ProfileCreateFailedFmt, dir, err)
	}
	cfgPath := filepath.Join(dir, ConfigFile)
	if err := os.WriteFile(cfgPath, data, 0o644); err != nil {
		return nil, fmt.Errorf(messages.ProfileCreateFailedFmt, dir, err)
	}
	p := &Profile{Name: slug, Dir: dir, ConfigPath: cfgPath, Config: cfg}
	if err := content.Save(p.RequirementsPath(), nil); err != nil {
		return nil, fmt.Errorf(messages.ProfileCreateFailedFmt, dir, err)
	}
	return p, nil
}

// CreatedMessage describes a freshly scaffolded profile and what to do next.
func CreatedMessage(p *Profile) string {
	return fmt.Sprintf(messages.ProfileScaffoldedFmt, p.Dir, p.ConfigPath, p.RequirementsPath(), p.Name, p.Name)
}
