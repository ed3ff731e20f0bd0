// Package testutil builds fixture files for package tests: PPTX/POTX templates, workbooks, and images.
package testutil

import (
	"archive/zip"
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

const (
	nsA = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsR = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsP = "http://schemas.openxmlformats.org/presentationml/2006/main"

	ctPresentation = "application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"
	ctTemplate     = "application/vnd.openxmlformats-officedocument.presentationml.template.main+xml"
	ctMaster       = "application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml"
	ctLayout       = "application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"
	ctSlide        = "application/vnd.openxmlformats-officedocument.presentationml.slide+xml"
	ctNotes        = "application/vnd.openxmlformats-officedocument.presentationml.notesSlide+xml"
	ctTheme        = "application/vnd.openxmlformats-officedocument.theme+xml"

	relOffice = nsR + "/officeDocument"
	relMaster = nsR + "/slideMaster"
	relLayout = nsR + "/slideLayout"
	relSlide  = nsR + "/slide"
	relNotes  = nsR + "/notesSlide"
	relTheme  = nsR + "/theme"
	relImage  = nsR + "/image"

	xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"
)

// TemplateOptions shapes a generated template.
type TemplateOptions struct {
	// Layouts is the number of slide layouts; 0 means 20.
	Layouts int
	// Slides is the number of pre-existing slides, each with a notes part and a shared picture.
	Slides int
	// Template declares the master-template content type for the main part.
	Template bool
	// Sections adds a p14 section list referencing every slide.
	Sections bool
	// NoBodyLayouts lists layout indices that carry only a title placeholder.
	NoBodyLayouts []int
}

// LayoutName returns the name given to generated layout i.
func LayoutName(i int) string {
	return fmt.Sprintf("Layout %d", i)
}

// TemplateBytes builds a minimal PresentationML package.
// opts controls the number of layouts and pre-existing slides.
func TemplateBytes(t *testing.T, opts TemplateOptions) []byte {
	t.Helper()
	if opts.Layouts == 0 {
		opts.Layouts = 20
	}
	noBody := map[int]bool{}
	for _, i := range opts.NoBodyLayouts {
		noBody[i] = true
	}
	parts := map[string]string{}
	var order []string
	put := func(name, body string) {
		order = append(order, name)
		parts[name] = xmlHeader + body
	}

	mainCT := ctPresentation
	if opts.Template {
		mainCT = ctTemplate
	}
	var ct strings.Builder
	ct.WriteString(`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">`)
	ct.WriteString(`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>`)
	ct.WriteString(`<Default Extension="xml" ContentType="application/xml"/>`)
	ct.WriteString(`<Default Extension="png" ContentType="image/png"/>`)
	override := func(part, contentType string) {
		fmt.Fprintf(&ct, `<Override PartName="/%s" ContentType="%s"/>`, part, contentType)
	}
	override("ppt/presentation.xml", mainCT)
	override("ppt/slideMasters/slideMaster1.xml", ctMaster)
	override("ppt/theme/theme1.xml", ctTheme)
	for i := 0; i < opts.Layouts; i++ {
		override(fmt.Sprintf("ppt/slideLayouts/slideLayout%d.xml", i+1), ctLayout)
	}
	for i := 0; i < opts.Slides; i++ {
		override(fmt.Sprintf("ppt/slides/slide%d.xml", i+1), ctSlide)
		override(fmt.Sprintf("ppt/notesSlides/notesSlide%d.xml", i+1), ctNotes)
	}
	ct.WriteString(`</Types>`)
	put("[Content_Types].xml", ct.String())

	put("_rels/.rels", rels([][2]string{{relOffice, "ppt/presentation.xml"}}))

	presRels := [][2]string{{relMaster, "slideMasters/slideMaster1.xml"}, {relTheme, "theme/theme1.xml"}}
	var sldIDs, sectionIDs strings.Builder
	for i := 0; i < opts.Slides; i++ {
		presRels = append(presRels, [2]string{relSlide, fmt.Sprintf("slides/slide%d.xml", i+1)})
		fmt.Fprintf(&sldIDs, `<p:sldId id="%d" r:id="rId%d"/>`, 256+i, len(presRels))
		fmt.Fprintf(&sectionIDs, `<p14:sldId id="%d"/>`, 256+i)
	}
	pres := fmt.Sprintf(`<p:presentation xmlns:a="%s" xmlns:r="%s" xmlns:p="%s">`, nsA, nsR, nsP) +
		`<p:sldMasterIdLst><p:sldMasterId id="2147483648" r:id="rId1"/></p:sldMasterIdLst>`
	if opts.Slides > 0 {
		pres += `<p:sldIdLst>` + sldIDs.String() + `</p:sldIdLst>`
	}
	pres += `<p:sldSz cx="12192000" cy="6858000"/><p:notesSz cx="6858000" cy="9144000"/>`
	if opts.Sections {
		pres += `<p:custShowLst><p:custShow name="Short" id="0"><p:sldLst/></p:custShow></p:custShowLst>`
		pres += `<p:extLst><p:ext uri="{521415D9-36F7-43E2-AB2F-B90AF26B5E84}">` +
			`<p14:sectionLst xmlns:p14="http://schemas.microsoft.com/office/powerpoint/2010/main">` +
			`<p14:section name="Main" id="{00000000-0000-0000-0000-000000000001}"><p14:sldIdLst>` +
			sectionIDs.String() + `</p14:sldIdLst></p14:section></p14:sectionLst></p:ext></p:extLst>`
	}
	pres += `</p:presentation>`
	put("ppt/presentation.xml", pres)
	put("ppt/_rels/presentation.xml.rels", rels(presRels))

	put("ppt/theme/theme1.xml", fmt.Sprintf(`<a:theme xmlns:a="%s" name="Fixture"><a:themeElements/></a:theme>`, nsA))

	var layoutIDs strings.Builder
	var masterRels [][2]string
	for i := 0; i < opts.Layouts; i++ {
		masterRels = append(masterRels, [2]string{relLayout, fmt.Sprintf("../slideLayouts/slideLayout%d.xml", i+1)})
		fmt.Fprintf(&layoutIDs, `<p:sldLayoutId id="%d" r:id="rId%d"/>`, 2147483649+i, i+1)
	}
	masterRels = append(masterRels, [2]string{relTheme, "../theme/theme1.xml"})
	put("ppt/slideMasters/slideMaster1.xml", fmt.Sprintf(`<p:sldMaster xmlns:a="%s" xmlns:r="%s" xmlns:p="%s">`, nsA, nsR, nsP)+
		`<p:cSld><p:spTree>`+groupProps+`</p:spTree></p:cSld>`+
		`<p:clrMap bg1="dk1" tx1="lt1" bg2="dk2" tx2="lt2" accent1="accent1" accent2="accent2" accent3="accent3" accent4="accent4" accent5="accent5" accent6="accent6" hlink="hlink" folHlink="folHlink"/>`+
		`<p:sldLayoutIdLst>`+layoutIDs.String()+`</p:sldLayoutIdLst></p:sldMaster>`)
	put("ppt/slideMasters/_rels/slideMaster1.xml.rels", rels(masterRels))

	for i := 0; i < opts.Layouts; i++ {
		shapes := placeholder(2, "Title 1", `type="title"`)
		if !noBody[i] {
			shapes += placeholder(3, "Text Placeholder 2", `idx="1"`)
		}
		shapes += placeholder(4, "Date Placeholder 3", `type="dt" sz="half" idx="10"`)
		shapes += placeholder(5, "Footer Placeholder 4", `type="ftr" sz="quarter" idx="11"`)
		shapes += placeholder(6, "Slide Number Placeholder 5", `type="sldNum" sz="quarter" idx="12"`)
		put(fmt.Sprintf("ppt/slideLayouts/slideLayout%d.xml", i+1),
			fmt.Sprintf(`<p:sldLayout xmlns:a="%s" xmlns:r="%s" xmlns:p="%s">`, nsA, nsR, nsP)+
				fmt.Sprintf(`<p:cSld name="%s"><p:spTree>`, LayoutName(i))+groupProps+shapes+
				`</p:spTree></p:cSld><p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr></p:sldLayout>`)
		put(fmt.Sprintf("ppt/slideLayouts/_rels/slideLayout%d.xml.rels", i+1),
			rels([][2]string{{relMaster, "../slideMasters/slideMaster1.xml"}}))
	}

	if opts.Slides > 0 {
		order = append(order, "ppt/media/image1.png")
	}
	for i := 0; i < opts.Slides; i++ {
		put(fmt.Sprintf("ppt/slides/slide%d.xml", i+1),
			fmt.Sprintf(`<p:sld xmlns:a="%s" xmlns:r="%s" xmlns:p="%s"><p:cSld><p:spTree>`, nsA, nsR, nsP)+groupProps+
				placeholder(2, "Title 1", `type="title"`)+
				`<p:pic><p:nvPicPr><p:cNvPr id="3" name="Picture 2"/><p:cNvPicPr/><p:nvPr/></p:nvPicPr>`+
				`<p:blipFill><a:blip r:embed="rId2"/><a:stretch><a:fillRect/></a:stretch></p:blipFill><p:spPr/></p:pic>`+
				`</p:spTree></p:cSld></p:sld>`)
		put(fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", i+1), rels([][2]string{
			{relLayout, "../slideLayouts/slideLayout1.xml"},
			{relImage, "../media/image1.png"},
			{relNotes, fmt.Sprintf("../notesSlides/notesSlide%d.xml", i+1)},
		}))
		put(fmt.Sprintf("ppt/notesSlides/notesSlide%d.xml", i+1),
			fmt.Sprintf(`<p:notes xmlns:a="%s" xmlns:r="%s" xmlns:p="%s"><p:cSld><p:spTree>`, nsA, nsR, nsP)+groupProps+
				`</p:spTree></p:cSld></p:notes>`)
		put(fmt.Sprintf("ppt/notesSlides/_rels/notesSlide%d.xml.rels", i+1),
			rels([][2]string{{relSlide, fmt.Sprintf("../slides/slide%d.xml", i+1)}}))
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range order {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("create zip entry %s: %v", name, err)
		}
		data := []byte(parts[name])
		if name == "ppt/media/image1.png" {
			data = PNGBytes(t)
		}
		if _, err := w.Write(data); err != nil {
			t.Fatalf("write zip entry %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

const groupProps = `<p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr><p:grpSpPr/>`

func placeholder(id int, name, phAttrs string) string {
	return fmt.Sprintf(`<p:sp><p:nvSpPr><p:cNvPr id="%d" name="%s"/><p:cNvSpPr><a:spLocks noGrp="1"/></p:cNvSpPr>`+
		`<p:nvPr><p:ph %s/></p:nvPr></p:nvSpPr><p:spPr/></p:sp>`, id, name, phAttrs)
}

func rels(targets [][2]string) string {
	var b strings.Builder
	b.WriteString(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
	for i, rel := range targets {
		fmt.Fprintf(&b, `<Relationship Id="rId%d" Type="%s" Target="%s"/>`, i+1, rel[0], rel[1])
	}
	b.WriteString(`</Relationships>`)
	return b.String()
}

// WriteTemplate writes a generated template into dir and returns its path.
// The extension is .potx when opts.Template is set, otherwise .pptx.
func WriteTemplate(t *testing.T, dir string, opts TemplateOptions) string {
	t.Helper()
	name := "template.pptx"
	if opts.Template {
		name = "template.potx"
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, TemplateBytes(t, opts), 0o644); err != nil {
		t.Fatalf("write template: %v", err)
	}
	return path
}

// PNGBytes returns a tiny valid PNG image.
func PNGBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 0, G: 169, B: 224, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

// WritePNG writes a tiny PNG named name into dir and returns its path.
func WritePNG(t *testing.T, dir string, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, PNGBytes(t), 0o644); err != nil {
		t.Fatalf("write png: %v", err)
	}
	return path
}

// Sheet is one worksheet of a generated workbook.
type Sheet struct {
	Name string
	Rows [][]string
}

// WriteWorkbook writes an .xlsx file with the given sheets, in order, and returns its path.
func WriteWorkbook(t *testing.T, dir string, name string, sheets ...Sheet) string {
	t.Helper()
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()
	for i, sheet := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet.Name); err != nil {
				t.Fatalf("rename sheet: %v", err)
			}
		} else if _, err := f.NewSheet(sheet.Name); err != nil {
			t.Fatalf("new sheet %s: %v", sheet.Name, err)
		}
		for r, row := range sheet.Rows {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			values := make([]interface{}, len(row))
			for c, v := range row {
				values[c] = v
			}
			if err := f.SetSheetRow(sheet.Name, cell, &values); err != nil {
				t.Fatalf("set row %d of %s: %v", r+1, sheet.Name, err)
			}
		}
	}
	path := filepath.Join(dir, name)
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
	return path
}

// WithWorkingDir runs fn with dir as the current working directory and restores the previous directory.
// t is the active test; dir is the temporary working directory for fn.
func WithWorkingDir(t *testing.T, dir string, fn func()) {
	t.Helper()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	defer func() {
		if err := os.Chdir(cwd); err != nil {
			t.Fatalf("restore chdir: %v", err)
		}
	}()
	fn()
}
