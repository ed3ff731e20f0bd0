package pptx

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/beevik/etree"

	"github.com/conn-castle/deck-builder/internal/deckerr"
	"github.com/conn-castle/deck-builder/internal/messages"
)

// IsTemplatePath reports whether path names a master template (.potx).
func IsTemplatePath(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".potx")
}

// Sanitize opens the container at path, converts a master template into a
// presentation, and removes every slide. Masters, layouts, and media they use
// are preserved. The result always has zero slides.
func Sanitize(path string) (*Presentation, error) {
	p, err := Open(path)
	if err != nil {
		return nil, err
	}
	if IsTemplatePath(path) {
		if err := p.ConvertTemplate(); err != nil {
			return nil, err
		}
	}
	if err := p.RemoveAllSlides(); err != nil {
		return nil, err
	}
	n, err := p.SlideCount()
	if err != nil {
		return nil, err
	}
	if n != 0 {
		return nil, fmt.Errorf(messages.PptxSlidesRemainFmt, deckerr.ErrInternalConsistency, n, path)
	}
	return p, nil
}

func (p *Presentation) presentationRoot() (*etree.Element, error) {
	d, err := p.doc(p.mainPart)
	if err != nil {
		return nil, err
	}
	root := d.Root()
	if root == nil {
		return nil, fmt.Errorf(messages.PptxMissingPartFmt, deckerr.ErrFormat, p.source, p.mainPart)
	}
	return root, nil
}

// slideIDs returns the p:sldId entries in presentation order.
func (p *Presentation) slideIDs() ([]*etree.Element, error) {
	root, err := p.presentationRoot()
	if err != nil {
		return nil, err
	}
	list := root.SelectElement("p:sldIdLst")
	if list == nil {
		return nil, nil
	}
	return list.SelectElements("p:sldId"), nil
}

// SlideCount returns the number of entries in the presentation's slide list.
func (p *Presentation) SlideCount() (int, error) {
	ids, err := p.slideIDs()
	if err != nil {
		return 0, err
	}
	return len(ids), nil
}

// RemoveAllSlides empties the slide list. A slide whose relationship is
// already gone is still removed from the list. Parts that were reachable only
// through the removed slides are dropped with their content-type overrides.
func (p *Presentation) RemoveAllSlides() error {
	before, err := p.reachableParts()
	if err != nil {
		return err
	}
	root, err := p.presentationRoot()
	if err != nil {
		return err
	}
	if list := root.SelectElement("p:sldIdLst"); list != nil {
		for _, sld := range list.SelectElements("p:sldId") {
			if rid := sld.SelectAttrValue("r:id", ""); rid != "" {
				if _, err := p.removeRel(p.mainPart, rid); err != nil {
					return err
				}
			}
			list.RemoveChild(sld)
		}
	}
	// Custom shows and sections refer to slide ids that no longer exist.
	if shows := root.SelectElement("p:custShowLst"); shows != nil {
		root.RemoveChild(shows)
	}
	for _, sections := range root.FindElements("//p14:sldIdLst") {
		for _, child := range sections.ChildElements() {
			sections.RemoveChild(child)
		}
	}

	after, err := p.reachableParts()
	if err != nil {
		return err
	}
	for part := range before {
		if !after[part] {
			if err := p.dropPart(part); err != nil {
				return err
			}
		}
	}
	return nil
}
