package pptx

import (
	"path"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

type relationship struct {
	ID       string
	Type     string
	Target   string
	External bool
}

// relsPartFor returns the relationship part for source; "" is the package root.
func relsPartFor(source string) string {
	if source == "" {
		return rootRelsPart
	}
	dir, base := path.Split(source)
	return dir + "_rels/" + base + ".rels"
}

// resolveTarget turns a relationship target into a part name.
func resolveTarget(source, target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(path.Clean(target), "/")
	}
	dir := ""
	if source != "" {
		dir = path.Dir(source)
	}
	return strings.TrimPrefix(path.Join(dir, target), "/")
}

// relativeTarget expresses part relative to source's directory.
func relativeTarget(source, part string) string {
	from := strings.Split(path.Dir(source), "/")
	if path.Dir(source) == "." {
		from = nil
	}
	to := strings.Split(part, "/")
	i := 0
	for i < len(from) && i < len(to)-1 && from[i] == to[i] {
		i++
	}
	var b strings.Builder
	for range from[i:] {
		b.WriteString("../")
	}
	b.WriteString(strings.Join(to[i:], "/"))
	return b.String()
}

// relationships lists the relationships declared by source.
func (p *Presentation) relationships(source string) ([]relationship, error) {
	relsPart := relsPartFor(source)
	if !p.HasPart(relsPart) {
		return nil, nil
	}
	d, err := p.doc(relsPart)
	if err != nil {
		return nil, err
	}
	root := d.Root()
	if root == nil {
		return nil, nil
	}
	var out []relationship
	for _, el := range root.SelectElements("Relationship") {
		out = append(out, relationship{
			ID:       el.SelectAttrValue("Id", ""),
			Type:     el.SelectAttrValue("Type", ""),
			Target:   el.SelectAttrValue("Target", ""),
			External: strings.EqualFold(el.SelectAttrValue("TargetMode", ""), "External"),
		})
	}
	return out, nil
}

// findRel looks up relationship id on source.
func (p *Presentation) findRel(source, id string) (relationship, bool, error) {
	rels, err := p.relationships(source)
	if err != nil {
		return relationship{}, false, err
	}
	for _, rel := range rels {
		if rel.ID == id {
			return rel, true, nil
		}
	}
	return relationship{}, false, nil
}

// relsDoc returns the relationship document for source, creating it when create is set.
func (p *Presentation) relsDoc(source string, create bool) (*etree.Document, error) {
	relsPart := relsPartFor(source)
	if p.HasPart(relsPart) {
		return p.doc(relsPart)
	}
	if !create {
		return nil, nil
	}
	d := etree.NewDocument()
	d.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)
	root := d.CreateElement("Relationships")
	root.CreateAttr("xmlns", nsPackageRels)
	p.putDoc(relsPart, d)
	if err := p.ensureDefault("rels", contentTypeRelationships); err != nil {
		return nil, err
	}
	return d, nil
}

// addRel appends a relationship from source to the part named target and returns its id.
func (p *Presentation) addRel(source, relType, target string) (string, error) {
	d, err := p.relsDoc(source, true)
	if err != nil {
		return "", err
	}
	root := d.Root()
	next := 1
	for _, el := range root.SelectElements("Relationship") {
		id := el.SelectAttrValue("Id", "")
		if n, err := strconv.Atoi(strings.TrimPrefix(id, "rId")); err == nil && strings.HasPrefix(id, "rId") && n >= next {
			next = n + 1
		}
	}
	id := "rId" + strconv.Itoa(next)
	el := root.CreateElement("Relationship")
	el.CreateAttr("Id", id)
	el.CreateAttr("Type", relType)
	el.CreateAttr("Target", relativeTarget(source, target))
	return id, nil
}

// removeRel drops relationship id from source. A missing id is not an error.
func (p *Presentation) removeRel(source, id string) (bool, error) {
	d, err := p.relsDoc(source, false)
	if err != nil || d == nil {
		return false, err
	}
	root := d.Root()
	for _, el := range root.SelectElements("Relationship") {
		if el.SelectAttrValue("Id", "") == id {
			root.RemoveChild(el)
			return true, nil
		}
	}
	return false, nil
}

// reachableParts walks internal relationships from the package root.
func (p *Presentation) reachableParts() (map[string]bool, error) {
	seen := map[string]bool{}
	queue := []string{""}
	for len(queue) > 0 {
		source := queue[0]
		queue = queue[1:]
		rels, err := p.relationships(source)
		if err != nil {
			return nil, err
		}
		for _, rel := range rels {
			if rel.External {
				continue
			}
			part := resolveTarget(source, rel.Target)
			if seen[part] || !p.HasPart(part) {
				continue
			}
			seen[part] = true
			queue = append(queue, part)
		}
	}
	return seen, nil
}
