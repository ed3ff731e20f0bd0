package deck

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

	"github.com/conn-castle/deck-builder/internal/config"
	"github.com/conn-castle/deck-builder/internal/content"
	"github.com/conn-castle/deck-builder/internal/deckerr"
	"github.com/conn-castle/deck-builder/internal/pptx"
	"github.com/conn-castle/deck-builder/internal/profile"
	"github.com/conn-castle/deck-builder/internal/testutil"
	"github.com/conn-castle/deck-builder/internal/warnings"
)

func inspect(t *testing.T, res *Result) []pptx.SlideInfo {
	t.Helper()
	data, err := res.Bytes()
	require.NoError(t, err)
	pres, err := pptx.OpenBytes(data, "result")
	require.NoError(t, err)
	infos, err := pres.Inspect()
	require.NoError(t, err)
	return infos
}

func hasText(info pptx.SlideInfo, want string) bool {
	for _, s := range info.Texts {
		if strings.Contains(s, want) {
			return true
		}
	}
	return false
}

func TestBuildSpecDeckRendersExactlyTheSpecs(t *testing.T) {
	dir := t.TempDir()
	tmpl := testutil.WriteTemplate(t, dir, testutil.TemplateOptions{Slides: 3, Template: true})
	a := New()

	res, err := a.BuildSpecDeck(tmpl, []map[string]any{
		{"type": "title", "title": "Kickoff"},
		{"title": "Defaults to bullets", "bullets": []any{"one"}},
		{"type": "closing"},
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Slides)
	assert.NotEmpty(t, res.BuildID)
	assert.Empty(t, res.Warnings)

	infos := inspect(t, res)
	require.Len(t, infos, 3)
	assert.True(t, hasText(infos[0], "Kickoff"))
	assert.True(t, hasText(infos[1], "▸  one"))
	assert.True(t, hasText(infos[2], "Thank you"))

	out := filepath.Join(dir, "out", "deck.pptx")
	summary, err := res.WriteFile(out)
	require.NoError(t, err)
	assert.FileExists(t, out)
	assert.True(t, strings.HasPrefix(summary, out+" ("))
	assert.True(t, strings.HasSuffix(summary, " MB, 3 slides)"))
}

func TestBuildSpecDeckUnknownTypeWritesNothing(t *testing.T) {
	dir := t.TempDir()
	tmpl := testutil.WriteTemplate(t, dir, testutil.TemplateOptions{})
	_, err := New().BuildSpecDeck(tmpl, []map[string]any{
		{"type": "title", "title": "ok"},
		{"type": "bulets"},
	}, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, deckerr.ErrUnsupportedSlideType))
	assert.Contains(t, err.Error(), "bullets")
}

func TestBuildSpecDeckMissingTemplate(t *testing.T) {
	_, err := New().BuildSpecDeck(filepath.Join(t.TempDir(), "nope.pptx"), nil, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, deckerr.ErrInputNotFound))
}

func TestBuildSpecDeckLayoutFallbackWarns(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	tmpl := testutil.WriteTemplate(t, t.TempDir(), testutil.TemplateOptions{Layouts: 5})
	a := New(WithLogger(zap.New(core)), WithLayoutIndices(map[string]int{"title_content": 1}))

	res, err := a.BuildSpecDeck(tmpl, []map[string]any{{"type": "text", "title": "x", "body": "y"}}, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Slides)

	codes := map[string]int{}
	for _, w := range res.Warnings {
		codes[w.Code]++
	}
	// title_center (11) and two_img (19) are out of range on a 5-layout template.
	assert.Equal(t, 2, codes[warnings.CodeLayoutIndexOutOfRange])
	assert.Equal(t, 2, logs.FilterField(zap.String("code", warnings.CodeLayoutIndexOutOfRange)).Len())
	assert.Equal(t, testutil.LayoutName(1), inspect(t, res)[0].Layout)
}

func TestBuildSpecDeckPerBuildIndicesWin(t *testing.T) {
	tmpl := testutil.WriteTemplate(t, t.TempDir(), testutil.TemplateOptions{})
	a := New(WithLayoutIndices(map[string]int{"title_content": 1}))
	res, err := a.BuildSpecDeck(tmpl, []map[string]any{{"type": "bullets"}}, map[string]int{"title_content": 4})
	require.NoError(t, err)
	assert.Equal(t, testutil.LayoutName(4), inspect(t, res)[0].Layout)
}

func newProfile(t *testing.T, mutate func(*profile.Config)) *profile.Profile {
	t.Helper()
	root := t.TempDir()
	tmpl := testutil.WriteTemplate(t, root, testutil.TemplateOptions{Slides: 1})
	p, err := profile.NewStore(filepath.Join(root, "profiles")).Create(profile.CreateOptions{Name: "acme", TemplatePath: tmpl})
	require.NoError(t, err)
	p.Config.Customer = "Acme"
	if mutate != nil {
		mutate(&p.Config)
	}
	return p
}

func sampleDomains() []content.Domain {
	return []content.Domain{
		{Name: "Tracing", Description: "2 requirements", Requirements: []content.Requirement{
			{Name: "Spans", Status: "✅ Now", Signal: "traces"},
			{Name: "Sampling", Status: "⚡ Partial"},
		}},
		{Name: "Costs", Description: "1 requirements", Requirements: []content.Requirement{
			{Name: "Showback", Status: "🗺 Roadmap"},
		}},
	}
}

func TestBuildProfileDeckMinimalSequence(t *testing.T) {
	p := newProfile(t, nil)
	res, err := New().BuildProfileDeck(p, sampleDomains())
	require.NoError(t, err)
	// cover, coverage, two domains, closing
	require.Equal(t, 5, res.Slides)
	assert.Empty(t, res.Warnings)

	infos := inspect(t, res)
	assert.True(t, hasText(infos[0], "AI Observability"))
	require.Len(t, infos[1].Tables, 1)
	cov := infos[1].Tables[0]
	require.Len(t, cov, 4, "header, two domains, total")
	assert.Equal(t, []string{"TOTAL", "3", "1 (33%)", "1 (33%)", "1 (33%)"}, cov[3])
	assert.True(t, hasText(infos[2], "Tracing"))
	assert.True(t, hasText(infos[3], "Costs"))
	assert.True(t, hasText(infos[4], "One Platform. Every AI Signal."))
	assert.True(t, hasText(infos[4], "Prepared by the SE Team"))
}

func TestBuildProfileDeckFullSequence(t *testing.T) {
	p := newProfile(t, func(c *profile.Config) {
		c.Agenda = []profile.AgendaItem{{Icon: "1", Label: "Coverage"}}
		c.LandingBullets = []string{"One agent"}
		c.Images = map[string]string{"landing": "landing.png", "a": "a.png", "b": "missing.png"}
		c.ScreenshotSlides = []profile.ScreenshotSlide{
			{Type: profile.ScreenshotTwoImage, Title: "Pair", LeftKey: "a", RightKey: "b"},
			{Type: profile.ScreenshotSingle, Title: "Single", ImgKey: "a", Bullets: []string{"b1"}},
			{Type: "carousel", Title: "Nope"},
		}
		c.Highlight = &profile.Highlight{Requirements: []profile.HighlightRequirement{{Requirement: "Residency", Status: "Now"}}}
	})
	shots := p.ScreenshotsDir()
	testutil.WritePNG(t, shots, "landing.png")
	testutil.WritePNG(t, shots, "a.png")

	res, err := New().BuildProfileDeck(p, sampleDomains())
	require.NoError(t, err)
	// cover, agenda, coverage, landing, 2 domains, pair, single, highlight, closing
	require.Equal(t, 10, res.Slides)

	codes := map[string]int{}
	for _, w := range res.Warnings {
		codes[w.Code]++
	}
	assert.Equal(t, 1, codes[warnings.CodeImageNotFound])
	assert.Equal(t, 1, codes[warnings.CodeScreenshotTypeUnknown])

	infos := inspect(t, res)
	assert.True(t, hasText(infos[1], "1  Coverage"))
	assert.True(t, hasText(infos[3], "AI Observability · Application View"))
	assert.Equal(t, 1, infos[3].Pictures)
	assert.Equal(t, 1, infos[6].Pictures, "the missing right image is skipped")
	assert.True(t, hasText(infos[8], "GCC / Regulatory Highlights"))
	require.Len(t, infos[8].Tables, 1)
	assert.Equal(t, "Residency", infos[8].Tables[0][1][0])
}

func TestBuildProfileDeckThemeAndTemplateErrors(t *testing.T) {
	p := newProfile(t, func(c *profile.Config) { c.Theme = config.ThemeConfig{Colors: map[string]string{"accent": "nope"}} })
	_, err := New().BuildProfileDeck(p, nil)
	assert.Error(t, err)

	p = newProfile(t, func(c *profile.Config) { c.Template = "" })
	_, err = New().BuildProfileDeck(p, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, deckerr.ErrInputNotFound))
}

func TestBuildProfileDeckZeroDomains(t *testing.T) {
	p := newProfile(t, nil)
	res, err := New().BuildProfileDeck(p, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Slides)
	cov := inspect(t, res)[1].Tables[0]
	assert.Equal(t, []string{"TOTAL", "0", "0 (0%)", "0 (0%)", "0 (0%)"}, cov[len(cov)-1])
}

func TestConcurrentBuildsAreIndependent(t *testing.T) {
	tmpl := testutil.WriteTemplate(t, t.TempDir(), testutil.TemplateOptions{})
	a := New()
	errs := make(chan error, 4)
	counts := make(chan int, 4)
	for i := 0; i < 4; i++ {
		go func(n int) {
			raws := make([]map[string]any, n)
			for j := range raws {
				raws[j] = map[string]any{"type": "section", "title": "s"}
			}
			res, err := a.BuildSpecDeck(tmpl, raws, nil)
			if err != nil {
				errs <- err
				return
			}
			errs <- nil
			counts <- res.Slides
		}(i + 1)
	}
	total := 0
	for i := 0; i < 4; i++ {
		require.NoError(t, <-errs)
	}
	for i := 0; i < 4; i++ {
		total += <-counts
	}
	assert.Equal(t, 10, total)
}

func TestSummaryFormat(t *testing.T) {
	assert.Equal(t, "/x/deck.pptx (1.5 MB, 7 slides)", Summary("/x/deck.pptx", 1_572_864, 7))
}

func TestWriteFileReportsDirError(t *testing.T) {
	tmpl := testutil.WriteTemplate(t, t.TempDir(), testutil.TemplateOptions{})
	res, err := New().BuildSpecDeck(tmpl, []map[string]any{{"type": "title"}}, nil)
	require.NoError(t, err)
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))
	_, err = res.WriteFile(filepath.Join(blocker, "deck.pptx"))
	assert.Error(t, err)
}
