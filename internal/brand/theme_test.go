package brand

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	for _, in := range []string{"00A9E0", "00a9e0", "#00A9E0", " 00a9E0 "} {
		c, err := ParseColor(in)
		require.NoError(t, err, in)
		assert.Equal(t, Color("00A9E0"), c)
	}
	for _, in := range []string{"", "00A9E", "GGGGGG", "#1234567"} {
		_, err := ParseColor(in)
		assert.Error(t, err, in)
	}
}

func TestWithOverridesReturnsIndependentCopy(t *testing.T) {
	base := Default()
	custom, err := base.WithOverrides(map[string]string{"Accent": "#112233", "row_even": "abcdef"})
	require.NoError(t, err)
	assert.Equal(t, Color("112233"), custom.Palette.Accent)
	assert.Equal(t, Color("ABCDEF"), custom.Palette.RowEven)
	assert.Equal(t, Color("00A9E0"), base.Palette.Accent)
	assert.Equal(t, Color("00A9E0"), Default().Palette.Accent)
}

func TestWithOverridesRejectsUnknownKeyAndBadColor(t *testing.T) {
	base := Default()
	_, err := base.WithOverrides(map[string]string{"magenta": "FF00FF"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accent")

	_, err = base.WithOverrides(map[string]string{"accent": "teal"})
	require.Error(t, err)
}

func TestPaletteKeysSorted(t *testing.T) {
	keys := PaletteKeys()
	require.Len(t, keys, 14)
	assert.Equal(t, "accent", keys[0])
	assert.IsIncreasing(t, keys)
}

func TestStatusColor(t *testing.T) {
	th := Default()
	assert.Equal(t, th.Palette.Available, th.StatusColor("✅ Now"))
	assert.Equal(t, th.Palette.Partial, th.StatusColor("⚡ Partial"))
	assert.Equal(t, th.Palette.Planned, th.StatusColor("\U0001f5fa Roadmap"))
	assert.Equal(t, th.Palette.Text, th.StatusColor("Now"))
}

func TestCardColorCycles(t *testing.T) {
	th := Default()
	assert.Equal(t, th.Palette.Accent, th.CardColor(0))
	assert.Equal(t, th.Palette.Info, th.CardColor(5))
	assert.Equal(t, th.Palette.Accent, th.CardColor(6))
}

func TestNamedColor(t *testing.T) {
	th := Default()
	assert.Equal(t, th.Palette.Accent, th.NamedColor("Teal", ""))
	assert.Equal(t, th.Palette.Planned, th.NamedColor("grey", ""))
	assert.Equal(t, Color("123456"), th.NamedColor("#123456", ""))
	assert.Equal(t, Color("FFFFFF"), th.NamedColor("chartreuse", "FFFFFF"))
}

func TestCustomizeKeepsUnsetFields(t *testing.T) {
	base := Default()
	got, err := base.Customize("", "Inter", map[string]string{"accent": "#112233"})
	require.NoError(t, err)
	assert.Equal(t, base.BrandWord, got.BrandWord)
	assert.Equal(t, "Inter", got.Font)
	assert.Equal(t, Color("112233"), got.Palette.Accent)

	_, err = base.Customize("acme", "", map[string]string{"nope": "000000"})
	assert.Error(t, err)
}
