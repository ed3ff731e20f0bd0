package profile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/aymanbagabas/go-udiff"

	"github.com/conn-castle/deck-builder/internal/content"
	"github.com/conn-castle/deck-builder/internal/coverage"
	"github.com/conn-castle/deck-builder/internal/deckerr"
	"github.com/conn-castle/deck-builder/internal/messages"
)

// LoadRequirements reads the profile's requirements file.
func (p *Profile) LoadRequirements() ([]content.Domain, error) {
	return content.Load(p.RequirementsPath())
}

// SaveRequirements replaces the profile's requirements file.
func (p *Profile) SaveRequirements(domains []content.Domain) error {
	return content.Save(p.RequirementsPath(), domains)
}

// PreviewRequirements returns a unified diff from the current requirements file to domains.
// A missing file diffs against empty content.
func (p *Profile) PreviewRequirements(domains []content.Domain) (string, error) {
	path := p.RequirementsPath()
	current, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf(messages.ContentReadFailedFmt, deckerr.ErrInputNotFound, path, err)
	}
	next, err := content.Marshal(domains)
	if err != nil {
		return "", err
	}
	if string(current) == string(next) {
		return messages.ProfileDiffNoChanges, nil
	}
	name := filepath.Base(path)
	return udiff.Unified(
		fmt.Sprintf(messages.ProfileDiffCurrentFmt, name),
		fmt.Sprintf(messages.ProfileDiffParsedFmt, name),
		string(current),
		string(next),
	), nil
}

// Title is the customer name, or the profile name when unset.
func (p *Profile) Title() string {
	if p.Config.Customer != "" {
		return p.Config.Customer
	}
	return p.Name
}

// Report summarizes the profile's requirements as coverage text.
func (p *Profile) Report() (string, error) {
	domains, err := p.LoadRequirements()
	if err != nil {
		return "", err
	}
	return coverage.Report(p.Title(), coverage.Summarize(domains)), nil
}
