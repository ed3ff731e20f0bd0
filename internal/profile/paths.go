package profile

import (
	"fmt"
	"path/filepath"

	"github.com/mitchellh/go-homedir"

	"github.com/conn-castle/deck-builder/internal/deckerr"
	"github.com/conn-castle/deck-builder/internal/messages"
)

// Resolve expands "~" and anchors relative paths at the profile directory. Empty stays empty.
func (p *Profile) Resolve(path string) string {
	if path == "" {
		return ""
	}
	if expanded, err := homedir.Expand(path); err == nil {
		path = expanded
	}
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(p.Dir, path)
}

// TemplatePath returns the resolved template, or an error when none is configured.
func (p *Profile) TemplatePath() (string, error) {
	if p.Config.Template == "" {
		return "", fmt.Errorf(messages.ProfileTemplateMissingFmt, deckerr.ErrInputNotFound, p.Name, p.ConfigPath)
	}
	return p.Resolve(p.Config.Template), nil
}

// OutputPath returns where the deck is written, defaulting to <name>_deck.pptx in the profile.
func (p *Profile) OutputPath() string {
	if p.Config.Output != "" {
		return p.Resolve(p.Config.Output)
	}
	return filepath.Join(p.Dir, fmt.Sprintf(messages.ProfileDefaultOutputFmt, p.Name))
}

// RequirementsPath returns the resolved requirements file.
func (p *Profile) RequirementsPath() string {
	if p.Config.RequirementsFile != "" {
		return p.Resolve(p.Config.RequirementsFile)
	}
	return filepath.Join(p.Dir, RequirementsFile)
}

// ScreenshotsDir returns the directory image keys resolve in. It defaults to the profile directory.
func (p *Profile) ScreenshotsDir() string {
	if p.Config.ScreenshotsDir != "" {
		return p.Resolve(p.Config.ScreenshotsDir)
	}
	return p.Dir
}

// ImagePath maps an image key to a file. Unmapped keys return "".
func (p *Profile) ImagePath(key string) string {
	file := p.Config.Images[key]
	if file == "" {
		return ""
	}
	if expanded, err := homedir.Expand(file); err == nil {
		file = expanded
	}
	if filepath.IsAbs(file) {
		return filepath.Clean(file)
	}
	return filepath.Join(p.ScreenshotsDir(), file)
}

// LogoPath returns the resolved customer logo, or "".
func (p *Profile) LogoPath() string {
	return p.Resolve(p.Config.CustomerLogo)
}
