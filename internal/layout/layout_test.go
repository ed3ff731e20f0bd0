package layout

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/deck-builder/internal/deckerr"
	"github.com/conn-castle/deck-builder/internal/pptx"
	"github.com/conn-castle/deck-builder/internal/testutil"
	"github.com/conn-castle/deck-builder/internal/warnings"
)

type fakeSource struct {
	layouts []pptx.Layout
	err     error
}

func (f fakeSource) Source() string { return "fake.pptx" }

func (f fakeSource) Layouts() ([]pptx.Layout, error) { return f.layouts, f.err }

func layoutsN(n int) []pptx.Layout {
	out := make([]pptx.Layout, n)
	for i := range out {
		out[i] = pptx.Layout{Index: i, Name: testutil.LayoutName(i)}
	}
	return out
}

func TestResolveDefaults(t *testing.T) {
	m, ws, err := Resolve(fakeSource{layouts: layoutsN(20)}, nil)
	require.NoError(t, err)
	assert.Empty(t, ws)
	assert.Equal(t, 11, m.Get(RoleTitleCenter).Index)
	assert.Equal(t, 2, m.Get(RoleTitleContent).Index)
	assert.Equal(t, 19, m.Get(RoleTwoImage).Index)
}

func TestResolveOverridesReplacePerRole(t *testing.T) {
	m, ws, err := Resolve(fakeSource{layouts: layoutsN(20)}, map[string]int{"title_content": 5})
	require.NoError(t, err)
	assert.Empty(t, ws)
	assert.Equal(t, 5, m.Get(RoleTitleContent).Index)
	assert.Equal(t, 11, m.Get(RoleTitleCenter).Index)
}

func TestResolveOutOfRangeFallsBackToZero(t *testing.T) {
	m, ws, err := Resolve(fakeSource{layouts: layoutsN(4)}, map[string]int{"title_content": -1})
	require.NoError(t, err)
	for _, role := range Roles() {
		assert.Equal(t, 0, m.Get(role).Index, role)
	}
	require.Len(t, ws, 3)
	for _, w := range ws {
		assert.Equal(t, warnings.CodeLayoutIndexOutOfRange, w.Code)
	}
	assert.Contains(t, ws[0].Message, "title_center=11")
	assert.Contains(t, ws[1].Message, "title_content=-1")
}

func TestResolveUnknownRoleWarns(t *testing.T) {
	_, ws, err := Resolve(fakeSource{layouts: layoutsN(20)}, map[string]int{"hero": 3})
	require.NoError(t, err)
	require.Len(t, ws, 1)
	assert.Equal(t, warnings.CodeLayoutRoleUnknown, ws[0].Code)
	assert.Contains(t, ws[0].Message, "two_img")
}

func TestResolveNoLayoutsIsFormatError(t *testing.T) {
	_, _, err := Resolve(fakeSource{}, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, deckerr.ErrFormat))

	boom := errors.New("boom")
	_, _, err = Resolve(fakeSource{err: boom}, nil)
	assert.ErrorIs(t, err, boom)
}

func TestResolveAgainstTemplate(t *testing.T) {
	p, err := pptx.Sanitize(testutil.WriteTemplate(t, t.TempDir(), testutil.TemplateOptions{Layouts: 12}))
	require.NoError(t, err)
	m, ws, err := Resolve(p, nil)
	require.NoError(t, err)
	require.Len(t, ws, 1)
	assert.Equal(t, "layout_indices.two_img", ws[0].Subject)
	assert.Equal(t, testutil.LayoutName(11), m.Get(RoleTitleCenter).Name)
	assert.Equal(t, "ppt/slideLayouts/slideLayout3.xml", m.Get(RoleTitleContent).Part)
}

func TestParseAssignments(t *testing.T) {
	got, err := ParseAssignments([]string{"title_center=3", " two_img = 7 "})
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"title_center": 3, "two_img": 7}, got)

	for _, bad := range []string{"title_center", "=3", "two_img=x"} {
		_, err := ParseAssignments([]string{bad})
		assert.Error(t, err, bad)
	}
}
