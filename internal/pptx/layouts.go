package pptx

import (
	"fmt"

	"github.com/conn-castle/deck-builder/internal/deckerr"
	"github.com/conn-castle/deck-builder/internal/messages"
)

// Layout is one slide layout of the first slide master, in master order.
type Layout struct {
	Index int
	Name  string
	Part  string
}

// Layouts lists the layouts of the first slide master.
func (p *Presentation) Layouts() ([]Layout, error) {
	root, err := p.presentationRoot()
	if err != nil {
		return nil, err
	}
	masterID := root.FindElement("./p:sldMasterIdLst/p:sldMasterId")
	if masterID == nil {
		return nil, fmt.Errorf(messages.PptxNoMasterFmt, deckerr.ErrFormat, p.source)
	}
	masterPart, err := p.relTargetPart(p.mainPart, masterID.SelectAttrValue("r:id", ""))
	if err != nil {
		return nil, err
	}
	md, err := p.doc(masterPart)
	if err != nil {
		return nil, err
	}
	list := md.FindElement("./p:sldMaster/p:sldLayoutIdLst")
	if list == nil {
		return nil, nil
	}
	var out []Layout
	for _, el := range list.SelectElements("p:sldLayoutId") {
		part, err := p.relTargetPart(masterPart, el.SelectAttrValue("r:id", ""))
		if err != nil {
			return nil, err
		}
		name := ""
		if ld, err := p.doc(part); err == nil {
			if cSld := ld.FindElement("./p:sldLayout/p:cSld"); cSld != nil {
				name = cSld.SelectAttrValue("name", "")
			}
		}
		out = append(out, Layout{Index: len(out), Name: name, Part: part})
	}
	return out, nil
}

// relTargetPart resolves relationship id on source to an existing part.
func (p *Presentation) relTargetPart(source, id string) (string, error) {
	rel, ok, err := p.findRel(source, id)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf(messages.PptxLayoutRelMissingFmt, deckerr.ErrFormat, id, source)
	}
	part := resolveTarget(source, rel.Target)
	if !p.HasPart(part) {
		return "", fmt.Errorf(messages.PptxMissingPartFmt, deckerr.ErrFormat, p.source, part)
	}
	return part, nil
}
