package pptx

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/deck-builder/internal/deckerr"
	"github.com/conn-castle/deck-builder/internal/testutil"
)

func partString(t *testing.T, p *Presentation, name string) string {
	t.Helper()
	data, err := p.partBytes(name)
	require.NoError(t, err)
	return string(data)
}

func TestSanitizeRemovesSlidesAndKeepsLayouts(t *testing.T) {
	path := testutil.WriteTemplate(t, t.TempDir(), testutil.TemplateOptions{Layouts: 5, Slides: 3, Sections: true})

	p, err := Sanitize(path)
	require.NoError(t, err)

	n, err := p.SlideCount()
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	layouts, err := p.Layouts()
	require.NoError(t, err)
	require.Len(t, layouts, 5)
	assert.Equal(t, testutil.LayoutName(3), layouts[3].Name)

	for _, gone := range []string{
		"ppt/slides/slide1.xml",
		"ppt/slides/_rels/slide1.xml.rels",
		"ppt/notesSlides/notesSlide2.xml",
		"ppt/media/image1.png",
	} {
		assert.False(t, p.HasPart(gone), gone)
	}
	assert.True(t, p.HasPart("ppt/theme/theme1.xml"))

	ct := partString(t, p, contentTypesPart)
	assert.NotContains(t, ct, "/ppt/slides/slide1.xml")
	assert.NotContains(t, ct, "/ppt/notesSlides/")
	assert.Contains(t, ct, "/ppt/slideLayouts/slideLayout5.xml")

	pres := partString(t, p, "ppt/presentation.xml")
	assert.NotContains(t, pres, "custShowLst")
	assert.NotContains(t, pres, "p14:sldId ")
	assert.NotContains(t, partString(t, p, "ppt/_rels/presentation.xml.rels"), "slides/slide")
}

func TestSanitizeLeavesNoDanglingRelationships(t *testing.T) {
	path := testutil.WriteTemplate(t, t.TempDir(), testutil.TemplateOptions{Layouts: 3, Slides: 2})
	p, err := Sanitize(path)
	require.NoError(t, err)

	sources := append([]string{""}, p.PartNames()...)
	for _, source := range sources {
		rels, err := p.relationships(source)
		require.NoError(t, err)
		for _, rel := range rels {
			assert.True(t, p.HasPart(resolveTarget(source, rel.Target)), "%s -> %s", source, rel.Target)
		}
	}
}

func TestSanitizeConvertsMasterTemplate(t *testing.T) {
	path := testutil.WriteTemplate(t, t.TempDir(), testutil.TemplateOptions{Template: true, Slides: 1})
	require.True(t, IsTemplatePath(path))

	p, err := Sanitize(path)
	require.NoError(t, err)
	ct, err := p.MainContentType()
	require.NoError(t, err)
	assert.Equal(t, ContentTypePresentationMain, ct)
}

func TestConvertTemplateContentTypeIsByteLevel(t *testing.T) {
	in := []byte(`<Types><!-- keep   spacing --><Override PartName="/ppt/presentation.xml" ContentType="` +
		ContentTypeTemplateMain + `"/></Types>`)
	out, ok := ConvertTemplateContentType(in)
	require.True(t, ok)
	want := strings.Replace(string(in), ContentTypeTemplateMain, ContentTypePresentationMain, 1)
	assert.Equal(t, want, string(out))

	_, ok = ConvertTemplateContentType([]byte(`<Types/>`))
	assert.False(t, ok)
}

func TestConvertTemplateContentTypeReplacesFirstOccurrenceOnly(t *testing.T) {
	in := []byte(`<Types><Override PartName="/ppt/presentation.xml" ContentType="` +
		ContentTypeTemplateMain + `"/><!-- ` + ContentTypeTemplateMain + ` --></Types>`)
	out, ok := ConvertTemplateContentType(in)
	require.True(t, ok)
	assert.Equal(t, 1, strings.Count(string(out), ContentTypePresentationMain))
	assert.Equal(t, 1, strings.Count(string(out), ContentTypeTemplateMain))
	assert.Less(t, strings.Index(string(out), ContentTypePresentationMain), strings.Index(string(out), ContentTypeTemplateMain))
}

func TestConvertTemplateWithoutTemplateTypeIsFormatError(t *testing.T) {
	dir := t.TempDir()
	data := testutil.TemplateBytes(t, testutil.TemplateOptions{})
	path := filepath.Join(dir, "disguised.potx")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	_, err := Sanitize(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, deckerr.ErrFormat))
}

func TestSanitizeErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Sanitize(filepath.Join(dir, "missing.pptx"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, deckerr.ErrInputNotFound))
	assert.Contains(t, err.Error(), "missing.pptx")

	junk := filepath.Join(dir, "junk.pptx")
	require.NoError(t, os.WriteFile(junk, []byte("not a zip"), 0o644))
	_, err = Sanitize(junk)
	require.Error(t, err)
	assert.True(t, errors.Is(err, deckerr.ErrFormat))
}

func TestRemoveAllSlidesToleratesMissingRelationship(t *testing.T) {
	p, err := OpenBytes(testutil.TemplateBytes(t, testutil.TemplateOptions{Layouts: 2, Slides: 2}), "fixture")
	require.NoError(t, err)

	// rId3 is the first slide.
	removed, err := p.removeRel(p.mainPart, "rId3")
	require.NoError(t, err)
	require.True(t, removed)

	require.NoError(t, p.RemoveAllSlides())
	n, err := p.SlideCount()
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestAddSlideClonesPlaceholdersAndRoundTrips(t *testing.T) {
	path := testutil.WriteTemplate(t, t.TempDir(), testutil.TemplateOptions{Layouts: 3})
	p, err := Sanitize(path)
	require.NoError(t, err)
	layouts, err := p.Layouts()
	require.NoError(t, err)

	s, err := p.AddSlide(layouts[2])
	require.NoError(t, err)
	assert.True(t, s.HasPlaceholder(0))
	assert.True(t, s.HasPlaceholder(1))
	assert.False(t, s.HasPlaceholder(10), "date placeholder is not cloned")
	assert.False(t, s.HasPlaceholder(12), "slide number placeholder is not cloned")

	require.True(t, s.SetPlaceholderText(0, "Hello\nWorld", TextStyle{Size: 22, Bold: true, Color: "FFFFFF"}))
	assert.False(t, s.SetPlaceholderText(7, "nope", TextStyle{}))
	s.AddText(Rect{X: 1, Y: 1, W: 3, H: 1}, "Box", TextStyle{Size: 10, Align: AlignCenter})

	pres := partString(t, p, "ppt/presentation.xml")
	assert.Less(t, strings.Index(pres, "p:sldIdLst"), strings.Index(pres, "p:sldSz"))
	assert.Contains(t, pres, `<p:sldId id="256"`)

	data, err := p.Bytes()
	require.NoError(t, err)
	reopened, err := OpenBytes(data, "roundtrip")
	require.NoError(t, err)

	infos, err := reopened.Inspect()
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, testutil.LayoutName(2), infos[0].Layout)
	assert.Equal(t, []string{"Hello\nWorld", "Box"}, infos[0].Texts)
	assert.Equal(t, 3, infos[0].Shapes)

	slideXML := partString(t, reopened, infos[0].Part)
	assert.Contains(t, slideXML, `sz="2200"`)
	assert.Contains(t, slideXML, `algn="ctr"`)
	assert.Contains(t, slideXML, `txBox="1"`)
}

func TestAddSlideNumbersSequentially(t *testing.T) {
	p, err := Sanitize(testutil.WriteTemplate(t, t.TempDir(), testutil.TemplateOptions{Layouts: 1, Slides: 2}))
	require.NoError(t, err)
	layouts, err := p.Layouts()
	require.NoError(t, err)

	for range 3 {
		_, err := p.AddSlide(layouts[0])
		require.NoError(t, err)
	}
	parts, err := p.SlideParts()
	require.NoError(t, err)
	assert.Equal(t, []string{"ppt/slides/slide1.xml", "ppt/slides/slide2.xml", "ppt/slides/slide3.xml"}, parts)
	assert.Contains(t, partString(t, p, contentTypesPart), `/ppt/slides/slide3.xml`)
}

func TestAddTablePadsShortRows(t *testing.T) {
	p, err := Sanitize(testutil.WriteTemplate(t, t.TempDir(), testutil.TemplateOptions{Layouts: 1}))
	require.NoError(t, err)
	layouts, err := p.Layouts()
	require.NoError(t, err)
	s, err := p.AddSlide(layouts[0])
	require.NoError(t, err)

	s.AddTable(Rect{X: 0.7, Y: 2.2, W: 12, H: 5}, nil, [][]Cell{
		{{Text: "A", Fill: "0B1726"}, {Text: "B"}, {Text: "C"}},
		{{Text: "1"}},
	})
	s.AddTable(Rect{}, nil, nil)

	infos, err := p.Inspect()
	require.NoError(t, err)
	require.Len(t, infos[0].Tables, 1)
	assert.Equal(t, [][]string{{"A", "B", "C"}, {"1", "", ""}}, infos[0].Tables[0])
	assert.Contains(t, partString(t, p, s.Part()), tableStyleID)
}

func TestAddPicture(t *testing.T) {
	dir := t.TempDir()
	p, err := Sanitize(testutil.WriteTemplate(t, dir, testutil.TemplateOptions{Layouts: 1}))
	require.NoError(t, err)
	layouts, err := p.Layouts()
	require.NoError(t, err)
	s, err := p.AddSlide(layouts[0])
	require.NoError(t, err)

	img := testutil.WritePNG(t, dir, "shot.png")
	require.NoError(t, s.AddPicture(img, Rect{X: 1, Y: 1, W: 4, H: 3}))
	require.NoError(t, s.AddPicture(img, Rect{X: 6, Y: 1, W: 4, H: 3}))

	var media []string
	for _, name := range p.PartNames() {
		if strings.HasPrefix(name, "ppt/media/") {
			media = append(media, name)
		}
	}
	assert.Equal(t, []string{"ppt/media/image1.png"}, media)

	err = s.AddPicture(filepath.Join(dir, "nope.png"), Rect{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, deckerr.ErrInputNotFound))

	for _, name := range []string{"shot", "vector.svg"} {
		err = s.AddPicture(filepath.Join(dir, "missing", name), Rect{})
		require.Error(t, err)
		assert.True(t, errors.Is(err, deckerr.ErrInputNotFound), name)
	}

	svg := filepath.Join(dir, "vector.svg")
	require.NoError(t, os.WriteFile(svg, []byte("<svg/>"), 0o644))
	err = s.AddPicture(svg, Rect{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, deckerr.ErrFormat))

	infos, err := p.Inspect()
	require.NoError(t, err)
	assert.Equal(t, 2, infos[0].Pictures)
}

func TestAddShapeWritesGeometryAndInsets(t *testing.T) {
	p, err := Sanitize(testutil.WriteTemplate(t, t.TempDir(), testutil.TemplateOptions{Layouts: 1}))
	require.NoError(t, err)
	layouts, err := p.Layouts()
	require.NoError(t, err)
	s, err := p.AddSlide(layouts[0])
	require.NoError(t, err)

	s.AddShape(ShapeSpec{
		Kind:   ShapeRoundRect,
		Rect:   Rect{X: 0.5, Y: 2, W: 1.32, H: 0.27},
		Fill:   "73BE28",
		Text:   []Paragraph{{Text: "ok", Style: TextStyle{Size: 9, Bold: true}}},
		Insets: &Insets{Left: 0.04, Top: 0.02, Right: 0.04, Bottom: 0.02},
		Middle: true,
	})
	xml := partString(t, p, s.Part())
	assert.Contains(t, xml, `prst="roundRect"`)
	assert.Contains(t, xml, `val="73BE28"`)
	assert.Contains(t, xml, `lIns="36576"`)
	assert.Contains(t, xml, `anchor="ctr"`)
	assert.Contains(t, xml, `x="457200"`)
}

func TestTargetPaths(t *testing.T) {
	cases := []struct {
		source, part, rel string
	}{
		{"ppt/slides/slide1.xml", "ppt/slideLayouts/slideLayout2.xml", "../slideLayouts/slideLayout2.xml"},
		{"ppt/presentation.xml", "ppt/slides/slide1.xml", "slides/slide1.xml"},
		{"", "ppt/presentation.xml", "ppt/presentation.xml"},
		{"ppt/slides/slide1.xml", "ppt/media/image1.png", "../media/image1.png"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.rel, relativeTarget(tc.source, tc.part))
		assert.Equal(t, tc.part, resolveTarget(tc.source, tc.rel))
	}
	assert.Equal(t, "ppt/slides/_rels/slide1.xml.rels", relsPartFor("ppt/slides/slide1.xml"))
	assert.Equal(t, "_rels/.rels", relsPartFor(""))
	assert.Equal(t, "ppt/presentation.xml", resolveTarget("", "/ppt/presentation.xml"))
}

func TestEMU(t *testing.T) {
	assert.Equal(t, int64(914400), EMU(1))
	assert.Equal(t, int64(457200), EMU(0.5))
	assert.Equal(t, 2200, centipoints(22))
	assert.Equal(t, 750, centipoints(7.5))
}
