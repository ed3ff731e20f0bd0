package slides

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/conn-castle/deck-builder/internal/brand"
	"github.com/conn-castle/deck-builder/internal/content"
	"github.com/conn-castle/deck-builder/internal/coverage"
	"github.com/conn-castle/deck-builder/internal/deckerr"
	"github.com/conn-castle/deck-builder/internal/layout"
	"github.com/conn-castle/deck-builder/internal/pptx"
	"github.com/conn-castle/deck-builder/internal/testutil"
	"github.com/conn-castle/deck-builder/internal/warnings"
)

func newFixture(t *testing.T, logger *zap.Logger) (*pptx.Presentation, *Renderer) {
	t.Helper()
	pres, err := pptx.Sanitize(testutil.WriteTemplate(t, t.TempDir(), testutil.TemplateOptions{}))
	require.NoError(t, err)
	m, ws, err := layout.Resolve(pres, nil)
	require.NoError(t, err)
	require.Empty(t, ws)
	return pres, NewRenderer(brand.Default(), m, logger)
}

func inspectOne(t *testing.T, pres *pptx.Presentation) pptx.SlideInfo {
	t.Helper()
	infos, err := pres.Inspect()
	require.NoError(t, err)
	require.NotEmpty(t, infos)
	return infos[len(infos)-1]
}

func TestRenderEveryTypeAppendsOneSlide(t *testing.T) {
	pres, r := newFixture(t, nil)
	for i, tag := range ValidTypes() {
		spec, err := Decode(map[string]any{"type": tag, "title": "T"})
		require.NoError(t, err)
		sl, ws, err := r.Render(pres, spec)
		require.NoError(t, err, tag)
		require.NotNil(t, sl)
		assert.Empty(t, ws, tag)
		n, err := pres.SlideCount()
		require.NoError(t, err)
		assert.Equal(t, i+1, n, tag)
	}
}

func TestRenderUsesRoleLayouts(t *testing.T) {
	pres, r := newFixture(t, nil)
	_, _, err := r.RenderAll(pres, []map[string]any{
		{"type": "title", "title": "Hello"},
		{"type": "bullets", "title": "List"},
	})
	require.NoError(t, err)
	infos, err := pres.Inspect()
	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, testutil.LayoutName(11), infos[0].Layout)
	assert.Equal(t, testutil.LayoutName(2), infos[1].Layout)
}

func TestRenderAllFailsBeforeAppendingOnUnknownType(t *testing.T) {
	pres, r := newFixture(t, nil)
	_, _, err := r.RenderAll(pres, []map[string]any{
		{"type": "title"},
		{"type": "nope"},
		{"type": "closing"},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, deckerr.ErrUnsupportedSlideType))
	n, err := pres.SlideCount()
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestRenderAllKeepsInputOrder(t *testing.T) {
	pres, r := newFixture(t, nil)
	out, _, err := r.RenderAll(pres, []map[string]any{
		{"type": "section", "title": "One"},
		{"type": "section", "title": "Two"},
		{"type": "section", "title": "Three"},
	})
	require.NoError(t, err)
	require.Len(t, out, 3)
	infos, err := pres.Inspect()
	require.NoError(t, err)
	for i, want := range []string{"One", "Two", "Three"} {
		assert.Equal(t, out[i].Part(), infos[i].Part)
		assert.Contains(t, infos[i].Texts, want)
	}
}

func TestTitleSlideTexts(t *testing.T) {
	pres, r := newFixture(t, nil)
	_, _, err := r.Render(pres, TitleSpec{Title: "Deck", Subtitle: "Sub", Contact: "me@example.com"})
	require.NoError(t, err)
	info := inspectOne(t, pres)
	assert.Equal(t, []string{"Deck", "Sub", "me@example.com"}, info.Texts)
}

func TestClosingDefaultsMessage(t *testing.T) {
	pres, r := newFixture(t, nil)
	_, _, err := r.Render(pres, ClosingSpec{})
	require.NoError(t, err)
	assert.Contains(t, inspectOne(t, pres).Texts, "Thank you")
}

func TestHeroAndCTAUseThemeBrandWord(t *testing.T) {
	pres, r := newFixture(t, nil)
	_, _, err := r.Render(pres, HeroSpec{Headline: "Big"})
	require.NoError(t, err)
	assert.Contains(t, inspectOne(t, pres).Texts, brand.Default().BrandWord)

	_, _, err = r.Render(pres, CTASpec{Brand: "acme", Headline: "Go", CTAText: "Start"})
	require.NoError(t, err)
	texts := inspectOne(t, pres).Texts
	assert.Contains(t, texts, "acme")
	assert.Contains(t, texts, "Start")
}

func TestBulletsArePrefixed(t *testing.T) {
	pres, r := newFixture(t, nil)
	_, _, err := r.Render(pres, TwoColumnSpec{LeftHeader: "Left", LeftBullets: []string{"a", "b"}})
	require.NoError(t, err)
	assert.Contains(t, inspectOne(t, pres).Texts, "Left\n▸  a\n▸  b")
}

func TestTableTruncatesLongRowsAndPadsShortOnes(t *testing.T) {
	pres, r := newFixture(t, nil)
	_, _, err := r.Render(pres, TableSpec{
		Columns: []Text{"A", "B"},
		Rows:    [][]Text{{"1", "2", "3"}, {"4"}},
	})
	require.NoError(t, err)
	info := inspectOne(t, pres)
	require.Len(t, info.Tables, 1)
	assert.Equal(t, [][]string{{"A", "B"}, {"1", "2"}, {"4", ""}}, info.Tables[0])
}

func TestTableWithoutRowsHasNoTable(t *testing.T) {
	pres, r := newFixture(t, nil)
	_, _, err := r.Render(pres, TableSpec{Columns: []Text{"A"}})
	require.NoError(t, err)
	assert.Empty(t, inspectOne(t, pres).Tables)
}

func TestCardGridDrawsPanelsPerCard(t *testing.T) {
	pres, r := newFixture(t, nil)
	cards := []Card{{Title: "a"}, {Title: "b", Icon: "*"}, {Title: "c"}, {Title: "d"}, {Title: "e"}}
	_, _, err := r.Render(pres, CardGridSpec{Cards: cards})
	require.NoError(t, err)
	info := inspectOne(t, pres)
	for _, c := range cards {
		assert.Contains(t, info.Texts, c.Title)
	}
	assert.Contains(t, info.Texts, "*")
}

func TestCardGridWithoutCards(t *testing.T) {
	pres, r := newFixture(t, nil)
	_, _, err := r.Render(pres, CardGridSpec{Title: "Empty"})
	require.NoError(t, err)
	assert.Contains(t, inspectOne(t, pres).Texts, "Empty")
}

func TestMissingImageWarnsAndLogs(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	pres, r := newFixture(t, zap.New(core))
	missing := filepath.Join(t.TempDir(), "nope.png")

	_, ws, err := r.Render(pres, ImageSpec{Title: "Pic", ImagePath: missing, Caption: "cap"})
	require.NoError(t, err)
	require.Len(t, ws, 1)
	assert.Equal(t, warnings.CodeImageNotFound, ws[0].Code)
	assert.Equal(t, missing, ws[0].Subject)
	assert.True(t, ws[0].NoiseSuppressible)

	info := inspectOne(t, pres)
	assert.Equal(t, 0, info.Pictures)
	assert.Contains(t, info.Texts, "cap")
	assert.Equal(t, 1, logs.FilterField(zap.String("code", warnings.CodeImageNotFound)).Len())

	for _, path := range []string{"/nope/shot", "/nope/shot.svg"} {
		_, ws, err := r.Render(pres, ImageSpec{ImagePath: path, Caption: "c"})
		require.NoError(t, err, path)
		require.Len(t, ws, 1, path)
		assert.Equal(t, warnings.CodeImageNotFound, ws[0].Code)
		assert.Equal(t, 0, inspectOne(t, pres).Pictures)
	}
}

func TestImagesAreEmbedded(t *testing.T) {
	pres, r := newFixture(t, nil)
	img := testutil.WritePNG(t, t.TempDir(), "shot.png")

	_, ws, err := r.Render(pres, TwoImageSpec{LeftImage: img, RightImage: img, LeftCaption: "L"})
	require.NoError(t, err)
	assert.Empty(t, ws)
	assert.Equal(t, 2, inspectOne(t, pres).Pictures)

	_, ws, err = r.Render(pres, IconBulletsSpec{Bullets: []string{"x"}, ImagePath: img, ImageCaption: "c"})
	require.NoError(t, err)
	assert.Empty(t, ws)
	info := inspectOne(t, pres)
	assert.Equal(t, 1, info.Pictures)
	assert.Contains(t, info.Texts, "✓")
}

func TestIconBulletsMissingImageWarns(t *testing.T) {
	pres, r := newFixture(t, nil)
	_, ws, err := r.Render(pres, IconBulletsSpec{ImagePath: "/does/not/exist.png"})
	require.NoError(t, err)
	require.Len(t, ws, 1)
	assert.Equal(t, warnings.CodeImageNotFound, ws[0].Code)
}

func TestUnsupportedImageTypeFails(t *testing.T) {
	pres, r := newFixture(t, nil)
	svg := filepath.Join(t.TempDir(), "diagram.svg")
	require.NoError(t, os.WriteFile(svg, []byte("<svg/>"), 0o644))
	_, _, err := r.Render(pres, ImageSpec{ImagePath: svg})
	require.Error(t, err)
	assert.True(t, errors.Is(err, deckerr.ErrFormat))
}

func TestSplitPanelAndValueProps(t *testing.T) {
	pres, r := newFixture(t, nil)
	_, _, err := r.Render(pres, SplitPanelSpec{PanelTitle: "Panel", PanelItems: []PanelItem{"one"}, Bullets: []string{"b"}})
	require.NoError(t, err)
	texts := inspectOne(t, pres).Texts
	assert.Contains(t, texts, "Panel")
	assert.Contains(t, texts, "one")

	_, _, err = r.Render(pres, ValuePropsSpec{Props: []ValueProp{{Title: "Fast"}}})
	require.NoError(t, err)
	texts = inspectOne(t, pres).Texts
	assert.Contains(t, texts, "●")
	assert.Contains(t, texts, "Fast")
}

func TestRenderDomainDrawsBarAndTable(t *testing.T) {
	pres, r := newFixture(t, nil)
	reqs := []content.Requirement{
		{Name: "Tracing", Description: "d", Status: "✅ Now", Signal: "Traces"},
		{Name: "Cost", Status: "⚡ Partial"},
		{Name: "Evals", Status: "\U0001f5fa Roadmap"},
		{Name: "Other", Status: "n/a"},
	}
	_, _, err := r.RenderDomain(pres, DomainTable{Title: "Domain 1", Eyebrow: "ACME", Description: "scope", Requirements: reqs})
	require.NoError(t, err)
	info := inspectOne(t, pres)
	assert.Contains(t, info.Texts, "✅  1 Now")
	assert.Contains(t, info.Texts, "⚡  1 Partial")
	assert.Contains(t, info.Texts, "\U0001f5fa  1 Roadmap")
	assert.Contains(t, info.Texts, "of 4 requirements")
	require.Len(t, info.Tables, 1)
	assert.Equal(t, []string{"Requirement", "Description", "Status", "Signal"}, info.Tables[0][0])
	assert.Equal(t, []string{"Tracing", "d", "✅ Now", "Traces"}, info.Tables[0][1])
	assert.Len(t, info.Tables[0], 5)
}

func TestRenderDomainWithoutBar(t *testing.T) {
	pres, r := newFixture(t, nil)
	_, _, err := r.RenderDomain(pres, DomainTable{Title: "D", HideBar: true})
	require.NoError(t, err)
	info := inspectOne(t, pres)
	for _, text := range info.Texts {
		assert.False(t, strings.HasPrefix(text, "of "), text)
	}
	require.Len(t, info.Tables, 1)
	assert.Len(t, info.Tables[0], 1)
}

func TestRenderCoverageAppendsTotalRow(t *testing.T) {
	pres, r := newFixture(t, nil)
	summary := coverage.Summarize([]content.Domain{
		{Name: "A", Requirements: []content.Requirement{{Name: "x", Status: "✅ Now"}, {Name: "y", Status: "⚡ Partial"}}},
		{Name: "Empty"},
	})
	_, _, err := r.RenderCoverage(pres, CoverageMatrix{Eyebrow: "ACME", Summary: summary})
	require.NoError(t, err)
	info := inspectOne(t, pres)
	assert.Contains(t, info.Texts, "AI Observability Coverage Summary")
	require.Len(t, info.Tables, 1)
	rows := info.Tables[0]
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"A", "2", "1", "1", "0"}, rows[1])
	assert.Equal(t, []string{"Empty", "0", "0", "0", "0"}, rows[2])
	assert.Equal(t, []string{"TOTAL", "2", "1 (50%)", "1 (50%)", "0 (0%)"}, rows[3])
}

func TestRenderCoverZeroDomainsTotalIsZeroPercent(t *testing.T) {
	pres, r := newFixture(t, nil)
	_, _, err := r.RenderCoverage(pres, CoverageMatrix{Summary: coverage.Summarize(nil)})
	require.NoError(t, err)
	rows := inspectOne(t, pres).Tables[0]
	assert.Equal(t, []string{"TOTAL", "0", "0 (0%)", "0 (0%)", "0 (0%)"}, rows[len(rows)-1])
}

func TestStructuredSlides(t *testing.T) {
	pres, r := newFixture(t, nil)
	img := testutil.WritePNG(t, t.TempDir(), "landing.png")

	_, ws, err := r.RenderCover(pres, Cover{Subtitle: "Sub", LogoPath: img})
	require.NoError(t, err)
	assert.Empty(t, ws)
	info := inspectOne(t, pres)
	assert.Contains(t, info.Texts, "AI Observability")
	assert.Equal(t, 1, info.Pictures)

	_, _, err = r.RenderAgenda(pres, Agenda{Items: []AgendaItem{{Icon: "1", Label: "Intro"}}})
	require.NoError(t, err)
	info = inspectOne(t, pres)
	assert.Contains(t, info.Texts, "Agenda")
	assert.Contains(t, info.Texts, "▸  1  Intro")

	_, ws, err = r.RenderScreenshot(pres, Screenshot{Title: "Landing", ImagePath: img, Bullets: []string{"b"}})
	require.NoError(t, err)
	assert.Empty(t, ws)
	assert.Equal(t, 1, inspectOne(t, pres).Pictures)

	_, ws, err = r.RenderScreenshotPair(pres, ScreenshotPair{Title: "Pair", LeftImage: img, LeftCaption: "L", RightCaption: "R"})
	require.NoError(t, err)
	require.Len(t, ws, 1)
	info = inspectOne(t, pres)
	assert.Equal(t, testutil.LayoutName(19), info.Layout)
	assert.Equal(t, 1, info.Pictures)
	assert.Contains(t, info.Texts, "R")
}
