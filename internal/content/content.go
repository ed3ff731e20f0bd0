// Package content holds the requirement model shared by extraction, profiles, and deck assembly.
package content

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/conn-castle/deck-builder/internal/deckerr"
	"github.com/conn-castle/deck-builder/internal/messages"
)

// Requirement is one row of a domain's requirement table.
type Requirement struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Signal      string `json:"signal"`
}

// Domain is an ordered group of requirements rendered as one slide.
type Domain struct {
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	Requirements []Requirement `json:"requirements"`
}

// UnmarshalJSON accepts both the canonical keys and the older "requirement" key.
func (r *Requirement) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name        *string `json:"name"`
		Legacy      *string `json:"requirement"`
		Description string  `json:"description"`
		Status      string  `json:"status"`
		Signal      string  `json:"signal"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*r = Requirement{Description: raw.Description, Status: raw.Status, Signal: raw.Signal}
	switch {
	case raw.Name != nil:
		r.Name = *raw.Name
	case raw.Legacy != nil:
		r.Name = *raw.Legacy
	}
	return nil
}

// UnmarshalJSON accepts both the canonical "requirements" key and the older "reqs" key.
func (d *Domain) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name         string        `json:"name"`
		Description  string        `json:"description"`
		Requirements []Requirement `json:"requirements"`
		Legacy       []Requirement `json:"reqs"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*d = Domain{Name: raw.Name, Description: raw.Description, Requirements: raw.Requirements}
	if d.Requirements == nil {
		d.Requirements = raw.Legacy
	}
	if d.Requirements == nil {
		d.Requirements = []Requirement{}
	}
	return nil
}

// RequirementCount returns the number of requirements across domains.
func RequirementCount(domains []Domain) int {
	total := 0
	for _, d := range domains {
		total += len(d.Requirements)
	}
	return total
}

// Parse decodes a requirements document. source is used in error messages.
func Parse(data []byte, source string) ([]Domain, error) {
	var domains []Domain
	if err := json.Unmarshal(data, &domains); err != nil {
		return nil, fmt.Errorf(messages.ContentInvalidFmt, deckerr.ErrFormat, source, err)
	}
	if domains == nil {
		domains = []Domain{}
	}
	return domains, nil
}

// Load reads a requirements JSON file.
func Load(path string) ([]Domain, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf(messages.ContentMissingFileFmt, deckerr.ErrInputNotFound, path)
		}
		return nil, fmt.Errorf(messages.ContentReadFailedFmt, deckerr.ErrInputNotFound, path, err)
	}
	return Parse(data, path)
}

// Marshal renders domains as indented JSON with a trailing newline.
func Marshal(domains []Domain) ([]byte, error) {
	if domains == nil {
		domains = []Domain{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(domains); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save writes domains to path, creating parent directories.
func Save(path string, domains []Domain) error {
	data, err := Marshal(domains)
	if err != nil {
		return fmt.Errorf(messages.ContentWriteFailedFmt, path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf(messages.ContentWriteFailedFmt, path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf(messages.ContentWriteFailedFmt, path, err)
	}
	return nil
}
