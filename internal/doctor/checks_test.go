package doctor

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/deck-builder/internal/config"
	"github.com/conn-castle/deck-builder/internal/profile"
	"github.com/conn-castle/deck-builder/internal/testutil"
)

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
}

func TestCheckConfig(t *testing.T) {
	dir := t.TempDir()

	results, cfg := CheckConfig(filepath.Join(dir, "missing.toml"))
	require.Len(t, results, 1)
	assert.Equal(t, StatusWarn, results[0].Status)
	assert.Equal(t, config.Default(), cfg)

	good := filepath.Join(dir, "good.toml")
	writeFile(t, good, "[logging]\nlevel = \"debug\"\n")
	results, cfg = CheckConfig(good)
	assert.Equal(t, StatusOK, results[0].Status)
	require.NotNil(t, cfg)
	assert.Equal(t, "debug", cfg.Logging.Level)

	invalid := filepath.Join(dir, "invalid.toml")
	writeFile(t, invalid, "profiles_dir = \"p\"\n[logging]\nlevel = \"loud\"\n")
	results, cfg = CheckConfig(invalid)
	assert.Equal(t, StatusFail, results[0].Status)
	require.NotNil(t, cfg, "lenient config keeps later checks running")
	assert.Equal(t, "p", cfg.ProfilesDir)

	broken := filepath.Join(dir, "broken.toml")
	writeFile(t, broken, "profiles_dir = \n")
	results, cfg = CheckConfig(broken)
	assert.Equal(t, StatusFail, results[0].Status)
	assert.Nil(t, cfg)
}

func TestCheckConfigReadError(t *testing.T) {
	orig := readFileFunc
	t.Cleanup(func() { readFileFunc = orig })
	readFileFunc = func(string) ([]byte, error) { return nil, errors.New("permission denied") }

	results, cfg := CheckConfig("/etc/deck.toml")
	assert.Equal(t, StatusFail, results[0].Status)
	assert.Contains(t, results[0].Message, "permission denied")
	assert.Nil(t, cfg)
}

func TestCheckProfilesDir(t *testing.T) {
	dir := t.TempDir()
	assert.Equal(t, StatusWarn, CheckProfilesDir(filepath.Join(dir, "none")).Status)

	file := filepath.Join(dir, "file")
	writeFile(t, file, "x")
	assert.Equal(t, StatusFail, CheckProfilesDir(file).Status)

	writeFile(t, filepath.Join(dir, "profiles", "acme", profile.ConfigFile), "customer = \"Acme\"\n")
	r := CheckProfilesDir(filepath.Join(dir, "profiles"))
	assert.Equal(t, StatusOK, r.Status)
	assert.True(t, strings.HasPrefix(r.Message, "1 profile(s)"))
}

func TestCheckTemplate(t *testing.T) {
	dir := t.TempDir()
	tmpl := testutil.WriteTemplate(t, dir, testutil.TemplateOptions{Slides: 2})
	assert.Equal(t, StatusOK, CheckTemplate("t", tmpl, nil).Status)

	small := testutil.WriteTemplate(t, t.TempDir(), testutil.TemplateOptions{Layouts: 3})
	r := CheckTemplate("small", small, nil)
	assert.Equal(t, StatusWarn, r.Status)
	assert.Contains(t, r.Message, "3 layouts, 3 layout warning(s)")
	assert.Contains(t, r.Recommendation, "layout_indices.title_center=11")

	r = CheckTemplate("small", small, map[string]int{"title_center": 0, "title_content": 1, "two_img": 2})
	assert.Equal(t, StatusOK, r.Status)

	r = CheckTemplate("gone", filepath.Join(dir, "gone.pptx"), nil)
	assert.Equal(t, StatusFail, r.Status)
}

func TestCheckProfiles(t *testing.T) {
	root := t.TempDir()
	tmpl := testutil.WriteTemplate(t, root, testutil.TemplateOptions{})
	store := profile.NewStore(filepath.Join(root, "profiles"))

	_, err := store.Create(profile.CreateOptions{Name: "acme", TemplatePath: tmpl})
	require.NoError(t, err)
	bare, err := store.Create(profile.CreateOptions{Name: "bare", TemplatePath: tmpl})
	require.NoError(t, err)
	require.NoError(t, os.Remove(bare.RequirementsPath()))
	writeFile(t, filepath.Join(store.Root, "broken", profile.ConfigFile), "nonsense_key = 1\n")

	results := CheckProfiles(store, nil)
	byMessage := map[string]Status{}
	for _, r := range results {
		byMessage[r.Message] = r.Status
	}
	assert.Equal(t, StatusOK, byMessage["acme: 0 domains, 0 requirements"])
	assert.Equal(t, StatusWarn, byMessage["bare: no requirements.json yet"])
	assert.True(t, HasFailure(results))

	var brokenSeen bool
	for _, r := range results {
		if strings.HasPrefix(r.Message, "broken: ") {
			brokenSeen = true
			assert.Equal(t, StatusFail, r.Status)
		}
	}
	assert.True(t, brokenSeen)
}

func TestCheckProfilesTemplateUnset(t *testing.T) {
	root := t.TempDir()
	store := profile.NewStore(root)
	writeFile(t, filepath.Join(root, "acme", profile.ConfigFile), "customer = \"Acme\"\n")
	writeFile(t, filepath.Join(root, "acme", profile.RequirementsFile), "[]")

	results := CheckProfiles(store, nil)
	require.Len(t, results, 3)
	assert.Equal(t, StatusOK, results[0].Status)
	assert.Equal(t, "acme: Acme", results[0].Message)
	assert.Equal(t, StatusFail, results[1].Status)
	assert.Equal(t, "acme: no template configured", results[1].Message)
	assert.Equal(t, StatusOK, results[2].Status)
}

func TestHasFailure(t *testing.T) {
	assert.False(t, HasFailure(nil))
	assert.False(t, HasFailure([]Result{{Status: StatusOK}, {Status: StatusWarn}}))
	assert.True(t, HasFailure([]Result{{Status: StatusOK}, {Status: StatusFail}}))
}
