// Package layout binds abstract layout roles to concrete layouts of a sanitized template.
package layout

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/conn-castle/deck-builder/internal/deckerr"
	"github.com/conn-castle/deck-builder/internal/messages"
	"github.com/conn-castle/deck-builder/internal/pptx"
	"github.com/conn-castle/deck-builder/internal/warnings"
)

// Role names a visual layout independent of any template.
type Role string

const (
	RoleTitleCenter  Role = "title_center"
	RoleTitleContent Role = "title_content"
	RoleTwoImage     Role = "two_img"
)

// Roles lists every role in a stable order.
func Roles() []Role {
	return []Role{RoleTitleCenter, RoleTitleContent, RoleTwoImage}
}

// Defaults returns the built-in role indices.
func Defaults() map[Role]int {
	return map[Role]int{
		RoleTitleCenter:  11,
		RoleTitleContent: 2,
		RoleTwoImage:     19,
	}
}

// Source lists a template's layouts. *pptx.Presentation satisfies it.
type Source interface {
	Source() string
	Layouts() ([]pptx.Layout, error)
}

// Map is the resolved layout per role.
type Map map[Role]pptx.Layout

// Get returns the layout bound to role.
func (m Map) Get(role Role) pptx.Layout {
	return m[role]
}

// Resolve binds every role to a layout. Overrides replace defaults per role.
// Out-of-range indices fall back to layout 0 with a warning and unknown roles
// are ignored with a warning. Only a template with no layouts at all fails.
func Resolve(src Source, overrides map[string]int) (Map, []warnings.Warning, error) {
	layouts, err := src.Layouts()
	if err != nil {
		return nil, nil, err
	}
	if len(layouts) == 0 {
		return nil, nil, fmt.Errorf(messages.LayoutNoneFmt, deckerr.ErrFormat, src.Source())
	}

	indices := Defaults()
	var out []warnings.Warning
	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		role := Role(strings.TrimSpace(k))
		if _, ok := indices[role]; !ok {
			out = append(out, warnings.Warning{
				Code:              warnings.CodeLayoutRoleUnknown,
				Subject:           "layout_indices." + k,
				Message:           fmt.Sprintf(messages.LayoutRoleUnknownFmt, k, roleList()),
				Fix:               messages.LayoutRoleUnknownFix,
				Source:            warnings.SourceConfig,
				NoiseSuppressible: true,
			})
			continue
		}
		indices[role] = overrides[k]
	}

	resolved := make(Map, len(indices))
	for _, role := range Roles() {
		idx := indices[role]
		if idx < 0 || idx >= len(layouts) {
			out = append(out, warnings.Warning{
				Code:    warnings.CodeLayoutIndexOutOfRange,
				Subject: "layout_indices." + string(role),
				Message: fmt.Sprintf(messages.LayoutOutOfRangeFmt, role, idx, len(layouts)),
				Fix:     messages.LayoutOutOfRangeFix,
				Source:  warnings.SourceTemplate,
			})
			idx = 0
		}
		resolved[role] = layouts[idx]
	}
	return resolved, out, nil
}

func roleList() string {
	names := make([]string, 0, 3)
	for _, r := range Roles() {
		names = append(names, string(r))
	}
	return strings.Join(names, ", ")
}

// ParseAssignments parses "role=index" pairs such as command-line flag values.
func ParseAssignments(pairs []string) (map[string]int, error) {
	out := make(map[string]int, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf(messages.LayoutAssignmentInvalidFmt, pair)
		}
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf(messages.LayoutAssignmentInvalidFmt, pair)
		}
		out[key] = n
	}
	return out, nil
}
