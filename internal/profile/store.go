// Package profile manages named deck profiles: a folder holding a deck config and its requirements.
package profile

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/sahilm/fuzzy"
	"gopkg.in/yaml.v3"

	"github.com/conn-castle/deck-builder/internal/deckerr"
	"github.com/conn-castle/deck-builder/internal/messages"
)

// File names inside a profile directory.
const (
	ConfigFile       = "config.toml"
	LegacyConfigFile = "config.yaml"
	RequirementsFile = "requirements.json"
)

// Store is a directory of profiles.
type Store struct {
	Root string
}

// NewStore returns a store rooted at dir.
func NewStore(dir string) Store {
	return Store{Root: dir}
}

// Profile is a loaded profile.
type Profile struct {
	Name       string
	Dir        string
	ConfigPath string
	Config     Config
}

// Summary describes a profile for listings.
type Summary struct {
	Name            string
	Customer        string
	DeckTitle       string
	HasRequirements bool
	// Err is set when the profile config could not be loaded.
	Err error
}

// Status renders the readiness column of a listing.
func (s Summary) Status() string {
	switch {
	case s.Err != nil:
		return fmt.Sprintf(messages.ProfileBrokenFmt, s.Err)
	case s.HasRequirements:
		return messages.ProfileReadyStatus
	default:
		return messages.ProfileNoRequirements
	}
}

// Names lists profile directory names in sorted order. A missing root has no profiles.
func (s Store) Names() ([]string, error) {
	entries, err := os.ReadDir(s.Root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf(messages.ProfileListFailedFmt, s.Root, err)
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if _, ok := configPath(filepath.Join(s.Root, e.Name())); ok {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

// List summarizes every profile. Broken profiles are listed with their error.
func (s Store) List() ([]Summary, error) {
	names, err := s.Names()
	if err != nil {
		return nil, err
	}
	out := make([]Summary, 0, len(names))
	for _, name := range names {
		sum := Summary{Name: name, Customer: name}
		p, err := s.Load(name)
		if err != nil {
			sum.Err = err
			out = append(out, sum)
			continue
		}
		if p.Config.Customer != "" {
			sum.Customer = p.Config.Customer
		}
		sum.DeckTitle = p.Config.DeckTitle
		_, statErr := os.Stat(p.RequirementsPath())
		sum.HasRequirements = statErr == nil
		out = append(out, sum)
	}
	return out, nil
}

// Listing renders summaries as text.
func Listing(root string, summaries []Summary) string {
	if len(summaries) == 0 {
		return fmt.Sprintf(messages.ProfileListEmptyFmt, root)
	}
	lines := []string{messages.ProfileListHeader}
	for _, s := range summaries {
		lines = append(lines, fmt.Sprintf(messages.ProfileListLineFmt, s.Name, s.Customer, s.DeckTitle, s.Status()))
	}
	return strings.Join(lines, "\n")
}

// Load reads the named profile. An unknown name fails with ErrInputNotFound and a suggestion.
func (s Store) Load(name string) (*Profile, error) {
	dir := filepath.Join(s.Root, name)
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, s.notFound(name)
	}
	path, ok := configPath(dir)
	if !ok {
		return nil, fmt.Errorf(messages.ProfileConfigMissingFmt, deckerr.ErrInputNotFound, dir)
	}
	cfg, err := readConfig(path)
	if err != nil {
		return nil, err
	}
	return &Profile{Name: name, Dir: dir, ConfigPath: path, Config: cfg}, nil
}

func (s Store) notFound(name string) error {
	names, _ := s.Names()
	if matches := fuzzy.Find(name, names); len(matches) > 0 {
		return fmt.Errorf(messages.ProfileNotFoundHintFmt, deckerr.ErrInputNotFound, name, s.Root, matches[0].Str)
	}
	available := messages.ProfileNoneAvailable
	if len(names) > 0 {
		available = strings.Join(names, ", ")
	}
	return fmt.Errorf(messages.ProfileNotFoundFmt, deckerr.ErrInputNotFound, name, s.Root, available)
}

// configPath prefers config.toml and falls back to the older config.yaml.
func configPath(dir string) (string, bool) {
	for _, name := range []string{ConfigFile, LegacyConfigFile} {
		p := filepath.Join(dir, name)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, true
		}
	}
	return "", false
}

func readConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf(messages.ProfileReadFailedFmt, path, err)
	}
	var cfg Config
	if filepath.Ext(path) == ".yaml" {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf(messages.ProfileInvalidFmt, deckerr.ErrFormat, path, err)
		}
	} else {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf(messages.ProfileInvalidFmt, deckerr.ErrFormat, path, err)
		}
		var strict Config
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&strict); err != nil {
			return Config{}, fmt.Errorf(messages.ProfileUnknownKeysFmt, deckerr.ErrFormat, path, err)
		}
	}
	cfg.normalize()
	if err := cfg.Validate(path); err != nil {
		return Config{}, fmt.Errorf(messages.ProfileValidationFmt, deckerr.ErrFormat, path, err)
	}
	return cfg, nil
}

// Encode renders a profile config as TOML.
func Encode(cfg Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf(messages.ProfileEncodeFailedFmt, err)
	}
	return buf.Bytes(), nil
}
