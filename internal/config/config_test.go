package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/deck-builder/internal/brand"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseFullConfig(t *testing.T) {
	data := []byte(`
profiles_dir = "profiles"
default_template = "~/templates/brand.potx"

[layout_indices]
title_center = 3
two_img = 4

[theme]
brand_name = "acme"
font = "Inter"

[theme.colors]
accent = "#112233"

[logging]
level = "debug"

[warnings]
noise_mode = "reduce"
`)
	cfg, err := Parse(data, "config.toml")
	require.NoError(t, err)
	assert.Equal(t, "profiles", cfg.ProfilesDir)
	assert.Equal(t, map[string]int{"title_center": 3, "two_img": 4}, cfg.LayoutIndices)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format, "unset keys keep defaults")
	assert.Equal(t, "reduce", cfg.Warnings.NoiseMode)

	theme, err := cfg.Theme.Apply(brand.Default())
	require.NoError(t, err)
	assert.Equal(t, "acme", theme.BrandWord)
	assert.Equal(t, brand.Color("112233"), theme.Palette.Accent)
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("colour = \"red\"\n"), "config.toml")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfigValidation))
}

func TestParseSyntaxErrorIsNotValidation(t *testing.T) {
	_, err := Parse([]byte("profiles_dir = \n"), "config.toml")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrConfigValidation))
}

func TestValidateRejects(t *testing.T) {
	cases := map[string]string{
		"log level":   "[logging]\nlevel = \"loud\"\n",
		"log format":  "[logging]\nformat = \"xml\"\n",
		"noise mode":  "[warnings]\nnoise_mode = \"silent\"\n",
		"layout role": "[layout_indices]\ncover = 1\n",
		"negative":    "[layout_indices]\ntwo_img = -1\n",
		"theme color": "[theme.colors]\naccent = \"blue\"\n",
		"theme key":   "[theme.colors]\nsparkle = \"FFFFFF\"\n",
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(data), "config.toml")
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrConfigValidation))
		})
	}
}

func TestParseLenientSkipsValidation(t *testing.T) {
	cfg, err := ParseLenient([]byte("[logging]\nlevel = \"loud\"\n"), "config.toml")
	require.NoError(t, err)
	assert.Equal(t, "loud", cfg.Logging.Level)
	assert.Error(t, cfg.Validate("config.toml"))
}

func TestEncodeRoundTrips(t *testing.T) {
	cfg := Default()
	cfg.LayoutIndices = map[string]int{"title_content": 5}
	data, err := Encode(cfg)
	require.NoError(t, err)
	back, err := Parse(data, "encoded")
	require.NoError(t, err)
	assert.Equal(t, cfg.LayoutIndices, back.LayoutIndices)
	assert.Equal(t, cfg.ProfilesDir, back.ProfilesDir)
}

func TestConfigPathPrecedence(t *testing.T) {
	orig := getenv
	t.Cleanup(func() { getenv = orig })

	getenv = func(string) string { return "/env/config.toml" }
	got, err := ConfigPath("/flag/config.toml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Clean("/flag/config.toml"), got)

	got, err = ConfigPath("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Clean("/env/config.toml"), got)

	getenv = func(string) string { return "" }
	got, err = ConfigPath("")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(got))
	assert.Equal(t, "config.toml", filepath.Base(got))
}

func TestResolvePathsRelativeToConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	paths, err := ResolvePaths(cfgPath, &Config{ProfilesDir: "decks"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "decks"), paths.ProfilesDir)

	home, err := os.UserHomeDir()
	if err == nil {
		paths, err = ResolvePaths(cfgPath, &Config{})
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".deck-builder", "profiles"), paths.ProfilesDir)
	}
}

func TestMergeLayoutIndicesProfileWins(t *testing.T) {
	global := map[string]int{"title_center": 1, "two_img": 2}
	got := MergeLayoutIndices(global, map[string]int{"two_img": 9})
	assert.Equal(t, map[string]int{"title_center": 1, "two_img": 9}, got)
	assert.Equal(t, 2, global["two_img"])
}

func TestFieldsCatalog(t *testing.T) {
	f, ok := LookupField("warnings.noise_mode")
	require.True(t, ok)
	assert.Equal(t, []string{"default", "reduce", "quiet"}, f.OptionValues())
	_, ok = LookupField("nope")
	assert.False(t, ok)
	assert.Len(t, Fields(), len(fields))
}
