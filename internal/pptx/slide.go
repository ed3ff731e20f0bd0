package pptx

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/conn-castle/deck-builder/internal/deckerr"
	"github.com/conn-castle/deck-builder/internal/messages"
)

// Slide is a slide being populated. Handles stay valid for the life of their Presentation.
type Slide struct {
	pres   *Presentation
	part   string
	tree   *etree.Element
	nextID int
	layout Layout
}

// Part returns the slide's part name.
func (s *Slide) Part() string { return s.part }

// Layout returns the layout the slide was created from.
func (s *Slide) Layout() Layout { return s.layout }

// add appends a child element with attribute name/value pairs.
func add(parent *etree.Element, tag string, attrs ...string) *etree.Element {
	e := parent.CreateElement(tag)
	for i := 0; i+1 < len(attrs); i += 2 {
		e.CreateAttr(attrs[i], attrs[i+1])
	}
	return e
}

func itoa(n int64) string { return strconv.FormatInt(n, 10) }

// AddSlide appends an empty slide based on layout, cloning the layout's
// placeholders other than date, footer, and slide number.
func (p *Presentation) AddSlide(layout Layout) (*Slide, error) {
	part := p.nextPartName("ppt/slides/slide", ".xml")

	d := etree.NewDocument()
	d.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)
	sld := d.CreateElement("p:sld")
	sld.CreateAttr("xmlns:a", nsDrawing)
	sld.CreateAttr("xmlns:r", nsRelationships)
	sld.CreateAttr("xmlns:p", nsPresentation)
	tree := add(add(sld, "p:cSld"), "p:spTree")
	nvGrp := add(tree, "p:nvGrpSpPr")
	add(nvGrp, "p:cNvPr", "id", "1", "name", "")
	add(nvGrp, "p:cNvGrpSpPr")
	add(nvGrp, "p:nvPr")
	xfrm := add(add(tree, "p:grpSpPr"), "a:xfrm")
	add(xfrm, "a:off", "x", "0", "y", "0")
	add(xfrm, "a:ext", "cx", "0", "cy", "0")
	add(xfrm, "a:chOff", "x", "0", "y", "0")
	add(xfrm, "a:chExt", "cx", "0", "cy", "0")
	add(add(sld, "p:clrMapOvr"), "a:masterClrMapping")

	s := &Slide{pres: p, part: part, tree: tree, nextID: 2, layout: layout}
	if err := s.clonePlaceholders(); err != nil {
		return nil, err
	}

	p.putDoc(part, d)
	if err := p.ensureOverride(part, contentTypeSlide); err != nil {
		return nil, err
	}
	if _, err := p.addRel(part, relTypeSlideLayout, layout.Part); err != nil {
		return nil, err
	}
	rid, err := p.addRel(p.mainPart, relTypeSlide, part)
	if err != nil {
		return nil, err
	}
	if err := p.appendSlideID(rid); err != nil {
		return nil, err
	}
	return s, nil
}

// nextPartName returns prefix+N+suffix for the smallest unused N starting at 1.
func (p *Presentation) nextPartName(prefix, suffix string) string {
	for n := 1; ; n++ {
		name := prefix + strconv.Itoa(n) + suffix
		if !p.HasPart(name) {
			return name
		}
	}
}

func (p *Presentation) appendSlideID(rid string) error {
	root, err := p.presentationRoot()
	if err != nil {
		return err
	}
	list := root.SelectElement("p:sldIdLst")
	if list == nil {
		anchor := root.SelectElement("p:sldSz")
		if anchor == nil {
			anchor = root.SelectElement("p:notesSz")
		}
		if anchor == nil {
			return fmt.Errorf(messages.PptxSlideListMissingFmt, deckerr.ErrFormat)
		}
		list = etree.NewElement("p:sldIdLst")
		root.InsertChildAt(anchor.Index(), list)
	}
	next := 256
	for _, el := range list.SelectElements("p:sldId") {
		if n, err := strconv.Atoi(el.SelectAttrValue("id", "")); err == nil && n >= next {
			next = n + 1
		}
	}
	add(list, "p:sldId", "id", strconv.Itoa(next), "r:id", rid)
	return nil
}

func (s *Slide) clonePlaceholders() error {
	ld, err := s.pres.doc(s.layout.Part)
	if err != nil {
		return err
	}
	layoutTree := ld.FindElement("./p:sldLayout/p:cSld/p:spTree")
	if layoutTree == nil {
		return nil
	}
	for _, sp := range layoutTree.SelectElements("p:sp") {
		ph := sp.FindElement("./p:nvSpPr/p:nvPr/p:ph")
		if ph == nil {
			continue
		}
		switch ph.SelectAttrValue("type", "") {
		case "dt", "ftr", "sldNum":
			continue
		}
		name := ""
		if c := sp.FindElement("./p:nvSpPr/p:cNvPr"); c != nil {
			name = c.SelectAttrValue("name", "")
		}
		id := s.takeID()
		if name == "" {
			name = "Placeholder " + strconv.Itoa(id-1)
		}
		out := add(s.tree, "p:sp")
		nv := add(out, "p:nvSpPr")
		add(nv, "p:cNvPr", "id", strconv.Itoa(id), "name", name)
		add(add(nv, "p:cNvSpPr"), "a:spLocks", "noGrp", "1")
		newPh := add(add(nv, "p:nvPr"), "p:ph")
		for _, key := range []string{"type", "orient", "sz", "idx"} {
			if a := ph.SelectAttr(key); a != nil {
				newPh.CreateAttr(key, a.Value)
			}
		}
		add(out, "p:spPr")
	}
	return nil
}

func (s *Slide) takeID() int {
	id := s.nextID
	s.nextID++
	return id
}

// placeholder finds the placeholder shape with the given idx. A p:ph without idx is 0.
func (s *Slide) placeholder(idx int) *etree.Element {
	want := strconv.Itoa(idx)
	for _, sp := range s.tree.SelectElements("p:sp") {
		ph := sp.FindElement("./p:nvSpPr/p:nvPr/p:ph")
		if ph != nil && ph.SelectAttrValue("idx", "0") == want {
			return sp
		}
	}
	return nil
}

// HasPlaceholder reports whether the slide carries placeholder idx.
func (s *Slide) HasPlaceholder(idx int) bool {
	return s.placeholder(idx) != nil
}

// SetPlaceholderText replaces the text of placeholder idx, one paragraph per
// line, and reports whether the placeholder exists.
func (s *Slide) SetPlaceholderText(idx int, text string, style TextStyle) bool {
	sp := s.placeholder(idx)
	if sp == nil {
		return false
	}
	if old := sp.SelectElement("p:txBody"); old != nil {
		sp.RemoveChild(old)
	}
	body := add(sp, "p:txBody")
	add(body, "a:bodyPr")
	add(body, "a:lstStyle")
	for _, line := range strings.Split(text, "\n") {
		writeParagraph(body, Paragraph{Text: line, Style: style})
	}
	return true
}
