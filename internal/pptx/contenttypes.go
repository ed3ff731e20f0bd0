package pptx

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/beevik/etree"

	"github.com/conn-castle/deck-builder/internal/deckerr"
	"github.com/conn-castle/deck-builder/internal/messages"
)

// ConvertTemplateContentType rewrites the first template main-part content type to the
// presentation one. Every other byte is unchanged. ok is false when the template
// content type does not occur in data.
func ConvertTemplateContentType(data []byte) (converted []byte, ok bool) {
	from := []byte(ContentTypeTemplateMain)
	if !bytes.Contains(data, from) {
		return data, false
	}
	return bytes.Replace(data, from, []byte(ContentTypePresentationMain), 1), true
}

// ConvertTemplate applies ConvertTemplateContentType to the package's content-type part.
func (p *Presentation) ConvertTemplate() error {
	if err := p.flush(contentTypesPart); err != nil {
		return err
	}
	converted, ok := ConvertTemplateContentType(p.parts[contentTypesPart])
	if !ok {
		return fmt.Errorf(messages.PptxTemplateTypeMissingFmt, deckerr.ErrFormat, p.source)
	}
	p.parts[contentTypesPart] = converted
	return nil
}

// MainContentType returns the content type declared for the main presentation part.
func (p *Presentation) MainContentType() (string, error) {
	root, err := p.contentTypesRoot()
	if err != nil {
		return "", err
	}
	for _, el := range root.SelectElements("Override") {
		if el.SelectAttrValue("PartName", "") == "/"+p.mainPart {
			return el.SelectAttrValue("ContentType", ""), nil
		}
	}
	return "", nil
}

func (p *Presentation) contentTypesRoot() (*etree.Element, error) {
	d, err := p.doc(contentTypesPart)
	if err != nil {
		return nil, err
	}
	root := d.Root()
	if root == nil {
		return nil, fmt.Errorf(messages.PptxMissingPartFmt, deckerr.ErrFormat, p.source, contentTypesPart)
	}
	return root, nil
}

// ensureOverride declares contentType for part, replacing any previous declaration.
func (p *Presentation) ensureOverride(part, contentType string) error {
	root, err := p.contentTypesRoot()
	if err != nil {
		return err
	}
	name := "/" + part
	for _, el := range root.SelectElements("Override") {
		if el.SelectAttrValue("PartName", "") == name {
			el.CreateAttr("ContentType", contentType)
			return nil
		}
	}
	el := root.CreateElement("Override")
	el.CreateAttr("PartName", name)
	el.CreateAttr("ContentType", contentType)
	return nil
}

// removeOverride drops the override for part, if any.
func (p *Presentation) removeOverride(part string) error {
	root, err := p.contentTypesRoot()
	if err != nil {
		return err
	}
	name := "/" + part
	for _, el := range root.SelectElements("Override") {
		if el.SelectAttrValue("PartName", "") == name {
			root.RemoveChild(el)
		}
	}
	return nil
}

// ensureDefault declares contentType for an extension unless one is already declared.
func (p *Presentation) ensureDefault(ext, contentType string) error {
	root, err := p.contentTypesRoot()
	if err != nil {
		return err
	}
	for _, el := range root.SelectElements("Default") {
		if strings.EqualFold(el.SelectAttrValue("Extension", ""), ext) {
			return nil
		}
	}
	el := etree.NewElement("Default")
	el.CreateAttr("Extension", ext)
	el.CreateAttr("ContentType", contentType)
	root.InsertChildAt(0, el)
	return nil
}
