package pptx

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/conn-castle/deck-builder/internal/deckerr"
	"github.com/conn-castle/deck-builder/internal/messages"
)

const tableStyleID = "{5C22544A-7EE6-4342-B048-85BDC9FD1C3A}"

// Align is a paragraph alignment. The zero value inherits.
type Align string

const (
	AlignLeft   Align = "l"
	AlignCenter Align = "ctr"
	AlignRight  Align = "r"
)

// TextStyle describes run formatting. Zero fields inherit from the template.
type TextStyle struct {
	Size   float64 // points
	Bold   bool
	Italic bool
	Color  string // RRGGBB
	Font   string
	Align  Align
}

// Paragraph is one paragraph of a text body.
type Paragraph struct {
	Text        string
	Style       TextStyle
	SpaceBefore float64 // points
}

// Lines turns text into one paragraph per line, all with style.
func Lines(text string, style TextStyle) []Paragraph {
	parts := strings.Split(text, "\n")
	out := make([]Paragraph, 0, len(parts))
	for _, line := range parts {
		out = append(out, Paragraph{Text: line, Style: style})
	}
	return out
}

// Cell is one table cell. An empty Fill keeps the table style's fill.
type Cell struct {
	Text  string
	Style TextStyle
	Fill  string
}

// ShapeKind selects a preset geometry.
type ShapeKind int

const (
	ShapeRect ShapeKind = iota
	ShapeRoundRect
)

func (k ShapeKind) preset() (prst, name string) {
	if k == ShapeRoundRect {
		return "roundRect", "Rounded Rectangle"
	}
	return "rect", "Rectangle"
}

// Insets are text-body margins in inches.
type Insets struct {
	Left, Top, Right, Bottom float64
}

// ShapeSpec describes a filled auto shape with optional text.
type ShapeSpec struct {
	Kind   ShapeKind
	Rect   Rect
	Fill   string
	Text   []Paragraph
	Insets *Insets
	// Middle anchors text vertically in the middle of the shape.
	Middle bool
}

func writeRun(p *etree.Element, text string, st TextStyle) {
	r := add(p, "a:r")
	rPr := add(r, "a:rPr", "lang", "en-US")
	if st.Size > 0 {
		rPr.CreateAttr("sz", strconv.Itoa(centipoints(st.Size)))
	}
	if st.Bold {
		rPr.CreateAttr("b", "1")
	}
	if st.Italic {
		rPr.CreateAttr("i", "1")
	}
	rPr.CreateAttr("dirty", "0")
	if st.Color != "" {
		add(add(rPr, "a:solidFill"), "a:srgbClr", "val", st.Color)
	}
	if st.Font != "" {
		add(rPr, "a:latin", "typeface", st.Font)
	}
	add(r, "a:t").SetText(text)
}

func writeParagraph(body *etree.Element, para Paragraph) {
	p := add(body, "a:p")
	if para.Style.Align != "" || para.SpaceBefore > 0 {
		pPr := add(p, "a:pPr")
		if para.Style.Align != "" {
			pPr.CreateAttr("algn", string(para.Style.Align))
		}
		if para.SpaceBefore > 0 {
			add(add(pPr, "a:spcBef"), "a:spcPts", "val", strconv.Itoa(centipoints(para.SpaceBefore)))
		}
	}
	if para.Text == "" {
		add(p, "a:endParaRPr", "lang", "en-US", "dirty", "0")
		return
	}
	writeRun(p, para.Text, para.Style)
}

func writeXfrm(parent *etree.Element, tag string, r Rect) {
	x := add(parent, tag)
	add(x, "a:off", "x", itoa(EMU(r.X)), "y", itoa(EMU(r.Y)))
	add(x, "a:ext", "cx", itoa(EMU(r.W)), "cy", itoa(EMU(r.H)))
}

func writeFill(parent *etree.Element, color string) {
	if color == "" {
		add(parent, "a:noFill")
		return
	}
	add(add(parent, "a:solidFill"), "a:srgbClr", "val", color)
}

// AddTextBox places a word-wrapped, unfilled text box.
func (s *Slide) AddTextBox(r Rect, paras []Paragraph) {
	id := s.takeID()
	sp := add(s.tree, "p:sp")
	nv := add(sp, "p:nvSpPr")
	add(nv, "p:cNvPr", "id", strconv.Itoa(id), "name", "TextBox "+strconv.Itoa(id-1))
	add(nv, "p:cNvSpPr", "txBox", "1")
	add(nv, "p:nvPr")
	spPr := add(sp, "p:spPr")
	writeXfrm(spPr, "a:xfrm", r)
	add(add(spPr, "a:prstGeom", "prst", "rect"), "a:avLst")
	add(spPr, "a:noFill")
	body := add(sp, "p:txBody")
	add(body, "a:bodyPr", "wrap", "square", "rtlCol", "0")
	add(body, "a:lstStyle")
	if len(paras) == 0 {
		writeParagraph(body, Paragraph{})
	}
	for _, para := range paras {
		writeParagraph(body, para)
	}
}

// AddText is AddTextBox with one paragraph per line of text.
func (s *Slide) AddText(r Rect, text string, style TextStyle) {
	s.AddTextBox(r, Lines(text, style))
}

// AddShape places a filled auto shape with no outline.
func (s *Slide) AddShape(spec ShapeSpec) {
	id := s.takeID()
	prst, name := spec.Kind.preset()
	sp := add(s.tree, "p:sp")
	nv := add(sp, "p:nvSpPr")
	add(nv, "p:cNvPr", "id", strconv.Itoa(id), "name", name+" "+strconv.Itoa(id-1))
	add(nv, "p:cNvSpPr")
	add(nv, "p:nvPr")
	spPr := add(sp, "p:spPr")
	writeXfrm(spPr, "a:xfrm", spec.Rect)
	add(add(spPr, "a:prstGeom", "prst", prst), "a:avLst")
	writeFill(spPr, spec.Fill)
	add(add(spPr, "a:ln"), "a:noFill")
	body := add(sp, "p:txBody")
	bodyPr := add(body, "a:bodyPr", "wrap", "square", "rtlCol", "0")
	if in := spec.Insets; in != nil {
		bodyPr.CreateAttr("lIns", itoa(EMU(in.Left)))
		bodyPr.CreateAttr("tIns", itoa(EMU(in.Top)))
		bodyPr.CreateAttr("rIns", itoa(EMU(in.Right)))
		bodyPr.CreateAttr("bIns", itoa(EMU(in.Bottom)))
	}
	if spec.Middle {
		bodyPr.CreateAttr("anchor", "ctr")
	}
	add(body, "a:lstStyle")
	if len(spec.Text) == 0 {
		writeParagraph(body, Paragraph{})
	}
	for _, para := range spec.Text {
		writeParagraph(body, para)
	}
}

// AddTable places a table. colWidths are inches; nil splits r.W evenly.
// Row height is r.H divided evenly across rows. Rows shorter than the first
// row are padded with empty cells.
func (s *Slide) AddTable(r Rect, colWidths []float64, rows [][]Cell) {
	if len(rows) == 0 {
		return
	}
	ncols := len(rows[0])
	for _, row := range rows {
		ncols = max(ncols, len(row))
	}
	if ncols == 0 {
		return
	}
	widths := make([]int64, ncols)
	for i := range widths {
		if i < len(colWidths) {
			widths[i] = EMU(colWidths[i])
		} else {
			widths[i] = EMU(r.W) / int64(ncols)
		}
	}
	rowH := EMU(r.H) / int64(len(rows))

	id := s.takeID()
	gf := add(s.tree, "p:graphicFrame")
	nv := add(gf, "p:nvGraphicFramePr")
	add(nv, "p:cNvPr", "id", strconv.Itoa(id), "name", "Table "+strconv.Itoa(id-1))
	add(add(nv, "p:cNvGraphicFramePr"), "a:graphicFrameLocks", "noGrp", "1")
	add(nv, "p:nvPr")
	writeXfrm(gf, "p:xfrm", r)
	data := add(add(gf, "a:graphic"), "a:graphicData", "uri", nsTable)
	tbl := add(data, "a:tbl")
	add(add(tbl, "a:tblPr", "firstRow", "1", "bandRow", "1"), "a:tableStyleId").SetText(tableStyleID)
	grid := add(tbl, "a:tblGrid")
	for _, w := range widths {
		add(grid, "a:gridCol", "w", itoa(w))
	}
	for _, row := range rows {
		tr := add(tbl, "a:tr", "h", itoa(rowH))
		for c := 0; c < ncols; c++ {
			var cell Cell
			if c < len(row) {
				cell = row[c]
			}
			tc := add(tr, "a:tc")
			body := add(tc, "a:txBody")
			add(body, "a:bodyPr")
			add(body, "a:lstStyle")
			for _, para := range Lines(cell.Text, cell.Style) {
				writeParagraph(body, para)
			}
			tcPr := add(tc, "a:tcPr")
			if cell.Fill != "" {
				writeFill(tcPr, cell.Fill)
			}
		}
	}
}

var imageContentTypes = map[string]string{
	"png":  "image/png",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"gif":  "image/gif",
	"bmp":  "image/bmp",
	"tif":  "image/tiff",
	"tiff": "image/tiff",
}

// AddPicture embeds the image at path stretched to r. Identical images share one media part.
// A missing file yields an error wrapping deckerr.ErrInputNotFound.
// The file is checked for existence before its type, so a missing file of any
// extension is ErrInputNotFound.
func (s *Slide) AddPicture(path string, r Rect) error {
	if _, err := os.Stat(path); err != nil {
		if isNotExist(err) {
			return fmt.Errorf(messages.PptxImageReadFailedFmt, deckerr.ErrInputNotFound, path, err)
		}
		return fmt.Errorf(messages.PptxImageReadFailedFmt, deckerr.ErrFormat, path, err)
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	ct, ok := imageContentTypes[ext]
	if !ok {
		return fmt.Errorf(messages.PptxImageTypeUnsupportedFmt, deckerr.ErrFormat, ext, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if isNotExist(err) {
			return fmt.Errorf(messages.PptxImageReadFailedFmt, deckerr.ErrInputNotFound, path, err)
		}
		return fmt.Errorf(messages.PptxImageReadFailedFmt, deckerr.ErrFormat, path, err)
	}
	media, err := s.pres.addMedia(data, ext, ct)
	if err != nil {
		return err
	}
	rid, err := s.pres.addRel(s.part, relTypeImage, media)
	if err != nil {
		return err
	}

	id := s.takeID()
	pic := add(s.tree, "p:pic")
	nv := add(pic, "p:nvPicPr")
	add(nv, "p:cNvPr", "id", strconv.Itoa(id), "name", "Picture "+strconv.Itoa(id-1), "descr", filepath.Base(path))
	add(add(nv, "p:cNvPicPr"), "a:picLocks", "noChangeAspect", "1")
	add(nv, "p:nvPr")
	fill := add(pic, "p:blipFill")
	add(fill, "a:blip", "r:embed", rid)
	add(add(fill, "a:stretch"), "a:fillRect")
	spPr := add(pic, "p:spPr")
	writeXfrm(spPr, "a:xfrm", r)
	add(add(spPr, "a:prstGeom", "prst", "rect"), "a:avLst")
	return nil
}

func (p *Presentation) addMedia(data []byte, ext, contentType string) (string, error) {
	sum := sha1.Sum(data)
	hash := hex.EncodeToString(sum[:])
	if part, ok := p.media[hash]; ok && p.HasPart(part) {
		return part, nil
	}
	part := p.nextPartName("ppt/media/image", "."+ext)
	p.putRaw(part, data)
	p.media[hash] = part
	if err := p.ensureDefault(ext, contentType); err != nil {
		return "", err
	}
	return part, nil
}
