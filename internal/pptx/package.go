// Package pptx reads, edits, and writes PresentationML packages at the part level.
// A Presentation is owned by one build and is not safe for concurrent use.
package pptx

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/beevik/etree"

	"github.com/conn-castle/deck-builder/internal/deckerr"
	"github.com/conn-castle/deck-builder/internal/messages"
)

const (
	contentTypesPart = "[Content_Types].xml"
	rootRelsPart     = "_rels/.rels"
)

// Namespaces and relationship types used when writing parts.
const (
	nsPresentation  = "http://schemas.openxmlformats.org/presentationml/2006/main"
	nsDrawing       = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsRelationships = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsPackageRels   = "http://schemas.openxmlformats.org/package/2006/relationships"
	nsTable         = "http://schemas.openxmlformats.org/drawingml/2006/table"

	relTypeSlide       = nsRelationships + "/slide"
	relTypeSlideLayout = nsRelationships + "/slideLayout"
	relTypeImage       = nsRelationships + "/image"
)

// Content types.
const (
	ContentTypeTemplateMain     = "application/vnd.openxmlformats-officedocument.presentationml.template.main+xml"
	ContentTypePresentationMain = "application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"
	contentTypeSlide            = "application/vnd.openxmlformats-officedocument.presentationml.slide+xml"
	contentTypeRelationships    = "application/vnd.openxmlformats-package.relationships+xml"
)

// Presentation is an in-memory OOXML package: raw part bytes plus lazily parsed XML parts.
type Presentation struct {
	source   string
	parts    map[string][]byte
	order    []string
	docs     map[string]*etree.Document
	mainPart string
	media    map[string]string
}

// Open reads the package at path.
func Open(path string) (*Presentation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(messages.PptxOpenFailedFmt, deckerr.ErrInputNotFound, path, err)
	}
	return OpenBytes(data, path)
}

// OpenBytes reads a package from memory. source names it in error messages.
func OpenBytes(data []byte, source string) (*Presentation, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf(messages.PptxNotArchiveFmt, deckerr.ErrFormat, source, err)
	}
	p := &Presentation{
		source: source,
		parts:  make(map[string][]byte, len(zr.File)),
		docs:   make(map[string]*etree.Document),
		media:  make(map[string]string),
	}
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		b, err := readZipFile(f)
		if err != nil {
			return nil, fmt.Errorf(messages.PptxReadPartFailedFmt, deckerr.ErrFormat, f.Name, source, err)
		}
		if _, dup := p.parts[f.Name]; !dup {
			p.order = append(p.order, f.Name)
		}
		p.parts[f.Name] = b
	}
	if _, ok := p.parts[contentTypesPart]; !ok {
		return nil, fmt.Errorf(messages.PptxMissingPartFmt, deckerr.ErrFormat, source, contentTypesPart)
	}
	main, err := p.findMainPart()
	if err != nil {
		return nil, err
	}
	p.mainPart = main
	return p, nil
}

func readZipFile(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	return io.ReadAll(rc)
}

// findMainPart follows the package root's officeDocument relationship.
func (p *Presentation) findMainPart() (string, error) {
	rels, err := p.relationships("")
	if err != nil {
		return "", err
	}
	for _, rel := range rels {
		if strings.HasSuffix(rel.Type, "/officeDocument") {
			part := resolveTarget("", rel.Target)
			if _, ok := p.parts[part]; !ok {
				return "", fmt.Errorf(messages.PptxMissingPartFmt, deckerr.ErrFormat, p.source, part)
			}
			return part, nil
		}
	}
	return "", fmt.Errorf(messages.PptxMissingPartFmt, deckerr.ErrFormat, p.source, "officeDocument relationship")
}

// Source returns the path or label the package was opened from.
func (p *Presentation) Source() string { return p.source }

// HasPart reports whether the package contains name.
func (p *Presentation) HasPart(name string) bool {
	_, ok := p.parts[name]
	return ok
}

// PartNames returns the package part names in archive order.
func (p *Presentation) PartNames() []string {
	out := make([]string, 0, len(p.order))
	for _, name := range p.order {
		if _, ok := p.parts[name]; ok {
			out = append(out, name)
		}
	}
	return out
}

// doc returns the parsed XML for part, parsing it on first use.
func (p *Presentation) doc(part string) (*etree.Document, error) {
	if d, ok := p.docs[part]; ok {
		return d, nil
	}
	data, ok := p.parts[part]
	if !ok {
		return nil, fmt.Errorf(messages.PptxMissingPartFmt, deckerr.ErrFormat, p.source, part)
	}
	d := etree.NewDocument()
	if err := d.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf(messages.PptxParsePartFailedFmt, deckerr.ErrFormat, part, err)
	}
	p.docs[part] = d
	return d, nil
}

// putDoc registers a new XML part.
func (p *Presentation) putDoc(part string, d *etree.Document) {
	if _, ok := p.parts[part]; !ok {
		p.order = append(p.order, part)
	}
	p.parts[part] = nil
	p.docs[part] = d
}

// putRaw registers a new binary part.
func (p *Presentation) putRaw(part string, data []byte) {
	if _, ok := p.parts[part]; !ok {
		p.order = append(p.order, part)
	}
	p.parts[part] = data
	delete(p.docs, part)
}

// flush serializes a cached document back into the raw part table.
func (p *Presentation) flush(part string) error {
	d, ok := p.docs[part]
	if !ok {
		return nil
	}
	data, err := d.WriteToBytes()
	if err != nil {
		return fmt.Errorf(messages.PptxSerializePartFailedFmt, part, err)
	}
	p.parts[part] = data
	delete(p.docs, part)
	return nil
}

// dropPart removes part, its relationship part, and its content-type override.
func (p *Presentation) dropPart(part string) error {
	delete(p.parts, part)
	delete(p.docs, part)
	rels := relsPartFor(part)
	delete(p.parts, rels)
	delete(p.docs, rels)
	for hash, name := range p.media {
		if name == part {
			delete(p.media, hash)
		}
	}
	return p.removeOverride(part)
}

// Bytes serializes the package with the content-type part first.
func (p *Presentation) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	names := p.PartNames()
	ordered := make([]string, 0, len(names))
	ordered = append(ordered, contentTypesPart)
	for _, name := range names {
		if name != contentTypesPart {
			ordered = append(ordered, name)
		}
	}
	for _, name := range ordered {
		data, err := p.partBytes(name)
		if err != nil {
			return nil, err
		}
		w, err := zw.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate})
		if err != nil {
			return nil, fmt.Errorf(messages.PptxWriteArchiveFailedFmt, err)
		}
		if _, err := w.Write(data); err != nil {
			return nil, fmt.Errorf(messages.PptxWriteArchiveFailedFmt, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf(messages.PptxWriteArchiveFailedFmt, err)
	}
	return buf.Bytes(), nil
}

func (p *Presentation) partBytes(name string) ([]byte, error) {
	if d, ok := p.docs[name]; ok {
		data, err := d.WriteToBytes()
		if err != nil {
			return nil, fmt.Errorf(messages.PptxSerializePartFailedFmt, name, err)
		}
		return data, nil
	}
	return p.parts[name], nil
}

// Save serializes the package to path, creating parent directories.
func (p *Presentation) Save(path string) ([]byte, error) {
	data, err := p.Bytes()
	if err != nil {
		return nil, err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf(messages.PptxCreateDirFailedFmt, dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, fmt.Errorf(messages.PptxWriteFileFailedFmt, path, err)
	}
	return data, nil
}

// isNotExist reports whether err is a missing-file error.
func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
