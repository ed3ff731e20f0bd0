package pptx

import (
	"strings"

	"github.com/beevik/etree"
)

// SlideInfo summarizes the content of one slide.
type SlideInfo struct {
	Part   string
	Layout string
	// Texts holds each shape's paragraphs joined with newlines, in tree order.
	Texts    []string
	Tables   [][][]string
	Pictures int
	Shapes   int
}

// SlideParts returns the slide part names in presentation order.
func (p *Presentation) SlideParts() ([]string, error) {
	ids, err := p.slideIDs()
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(ids))
	for _, sld := range ids {
		part, err := p.relTargetPart(p.mainPart, sld.SelectAttrValue("r:id", ""))
		if err != nil {
			return nil, err
		}
		out = append(out, part)
	}
	return out, nil
}

// Inspect reports what each slide contains, in presentation order.
func (p *Presentation) Inspect() ([]SlideInfo, error) {
	parts, err := p.SlideParts()
	if err != nil {
		return nil, err
	}
	layouts, err := p.Layouts()
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(layouts))
	for _, l := range layouts {
		names[l.Part] = l.Name
	}

	out := make([]SlideInfo, 0, len(parts))
	for _, part := range parts {
		info := SlideInfo{Part: part}
		rels, err := p.relationships(part)
		if err != nil {
			return nil, err
		}
		for _, rel := range rels {
			if rel.Type == relTypeSlideLayout {
				info.Layout = names[resolveTarget(part, rel.Target)]
			}
		}
		d, err := p.doc(part)
		if err != nil {
			return nil, err
		}
		tree := d.FindElement("./p:sld/p:cSld/p:spTree")
		if tree == nil {
			out = append(out, info)
			continue
		}
		for _, child := range tree.ChildElements() {
			switch child.FullTag() {
			case "p:sp":
				info.Shapes++
				if body := child.SelectElement("p:txBody"); body != nil {
					info.Texts = append(info.Texts, bodyText(body))
				}
			case "p:pic":
				info.Pictures++
			case "p:graphicFrame":
				if tbl := child.FindElement(".//a:tbl"); tbl != nil {
					info.Tables = append(info.Tables, tableText(tbl))
				}
			}
		}
		out = append(out, info)
	}
	return out, nil
}

func bodyText(body *etree.Element) string {
	var lines []string
	for _, p := range body.SelectElements("a:p") {
		var b strings.Builder
		for _, t := range p.FindElements(".//a:t") {
			b.WriteString(t.Text())
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}

func tableText(tbl *etree.Element) [][]string {
	var rows [][]string
	for _, tr := range tbl.SelectElements("a:tr") {
		var row []string
		for _, tc := range tr.SelectElements("a:tc") {
			text := ""
			if body := tc.SelectElement("a:txBody"); body != nil {
				text = bodyText(body)
			}
			row = append(row, text)
		}
		rows = append(rows, row)
	}
	return rows
}
