package content

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/deck-builder/internal/deckerr"
)

func TestParseCanonicalAndLegacyKeys(t *testing.T) {
	data := []byte(`[
		{"name": "API", "description": "d", "requirements": [{"name": "Tracing", "status": "✅ Now", "signal": "TRACE"}]},
		{"name": "Logs", "reqs": [{"requirement": "Ingest", "description": "x"}]},
		{"name": "Empty"}
	]`)
	domains, err := Parse(data, "inline")
	require.NoError(t, err)
	require.Len(t, domains, 3)
	assert.Equal(t, "Tracing", domains[0].Requirements[0].Name)
	assert.Equal(t, "TRACE", domains[0].Requirements[0].Signal)
	assert.Equal(t, "Ingest", domains[1].Requirements[0].Name)
	assert.Equal(t, "x", domains[1].Requirements[0].Description)
	assert.NotNil(t, domains[2].Requirements)
	assert.Empty(t, domains[2].Requirements)
	assert.Equal(t, 2, RequirementCount(domains))
}

func TestParseInvalidJSON(t *testing.T) {
	_, err := Parse([]byte(`{"not": "a list"}`), "bad.json")
	require.Error(t, err)
	assert.True(t, errors.Is(err, deckerr.ErrFormat))
	assert.Contains(t, err.Error(), "bad.json")

	domains, err := Parse([]byte(`null`), "null.json")
	require.NoError(t, err)
	assert.NotNil(t, domains)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "requirements.json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, deckerr.ErrInputNotFound))
}

func TestSaveAndLoadPreserveOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "requirements.json")
	in := []Domain{
		{Name: "Zeta", Requirements: []Requirement{{Name: "b"}, {Name: "a"}}},
		{Name: "Alpha", Requirements: []Requirement{}},
	}
	require.NoError(t, Save(path, in))

	out, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, in, out)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(raw), "\n"))
	assert.Contains(t, string(raw), `  {`)
}

func TestMarshalKeepsGlyphsAndAmpersands(t *testing.T) {
	data, err := Marshal([]Domain{{Name: "R&D", Requirements: []Requirement{{Status: "✅ Now"}}}})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"R&D"`)
	assert.Contains(t, string(data), `"✅ Now"`)

	empty, err := Marshal(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(empty))
}
