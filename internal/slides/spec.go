// Package slides renders declarative slide specs onto a sanitized presentation.
package slides

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/conn-castle/deck-builder/internal/deckerr"
	"github.com/conn-castle/deck-builder/internal/messages"
)

// Spec is one slide description. The set of implementations is closed.
type Spec interface {
	Type() string
	isSpec()
}

// Slide type tags.
const (
	TypeTitle       = "title"
	TypeSection     = "section"
	TypeBullets     = "bullets"
	TypeTable       = "table"
	TypeTwoColumn   = "two_column"
	TypeText        = "text"
	TypeImage       = "image"
	TypeComparison  = "comparison"
	TypeClosing     = "closing"
	TypeHero        = "hero"
	TypeCardGrid    = "card_grid"
	TypeIconBullets = "icon_bullets"
	TypeSplitPanel  = "split_panel"
	TypeTwoImage    = "two_image"
	TypeValueProps  = "value_props"
	TypeCTA         = "cta"
)

// DefaultType is used when a spec has no type key.
const DefaultType = TypeBullets

// Text is a string that also accepts JSON numbers and booleans, kept as written.
type Text string

// UnmarshalJSON implements json.Unmarshaler.
func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*t = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}
	if len(data) > 0 && (data[0] == '{' || data[0] == '[') {
		return fmt.Errorf(messages.SlidesScalarExpectedFmt, data)
	}
	*t = Text(data)
	return nil
}

// TitleSpec is a centered cover slide.
type TitleSpec struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Contact  string `json:"contact"`
}

// SectionSpec is a chapter divider.
type SectionSpec struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

// BulletsSpec is a titled bullet list.
type BulletsSpec struct {
	Title   string   `json:"title"`
	Eyebrow string   `json:"eyebrow"`
	Bullets []string `json:"bullets"`
}

// TableSpec is a titled table with a header row.
type TableSpec struct {
	Title   string   `json:"title"`
	Eyebrow string   `json:"eyebrow"`
	Columns []Text   `json:"columns"`
	Rows    [][]Text `json:"rows"`
}

// TwoColumnSpec is two headed bullet blocks side by side.
type TwoColumnSpec struct {
	Title        string   `json:"title"`
	Eyebrow      string   `json:"eyebrow"`
	LeftHeader   string   `json:"left_header"`
	LeftBullets  []string `json:"left_bullets"`
	RightHeader  string   `json:"right_header"`
	RightBullets []string `json:"right_bullets"`
}

// TextSpec is a titled free-text body.
type TextSpec struct {
	Title   string `json:"title"`
	Eyebrow string `json:"eyebrow"`
	Body    string `json:"body"`
}

// ImageSpec is a single large picture with a caption.
type ImageSpec struct {
	Title     string `json:"title"`
	ImagePath string `json:"image_path"`
	Caption   string `json:"caption"`
}

// ComparisonItem is one column of a comparison slide.
type ComparisonItem struct {
	Label   string   `json:"label"`
	Bullets []string `json:"bullets"`
}

// ComparisonSpec is N labeled bullet columns.
type ComparisonSpec struct {
	Title string           `json:"title"`
	Items []ComparisonItem `json:"items"`
}

// ClosingSpec ends a deck. An empty Message renders "Thank you".
type ClosingSpec struct {
	Message string `json:"message"`
	Contact string `json:"contact"`
}

// HeroSpec is a branded opener.
type HeroSpec struct {
	Brand       string `json:"brand"`
	Headline    string `json:"headline"`
	SubHeadline string `json:"sub_headline"`
	Tagline     string `json:"tagline"`
	Footer      string `json:"footer"`
}

// Card is one tile of a card grid.
type Card struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// CardGridSpec lays cards out in a 2 or 3 column grid.
type CardGridSpec struct {
	Title   string `json:"title"`
	Eyebrow string `json:"eyebrow"`
	Cards   []Card `json:"cards"`
	Footer  string `json:"footer"`
}

// IconBulletsSpec is a checkmark list with an optional picture.
type IconBulletsSpec struct {
	Title        string   `json:"title"`
	Eyebrow      string   `json:"eyebrow"`
	Subtitle     string   `json:"subtitle"`
	Bullets      []string `json:"bullets"`
	ImagePath    string   `json:"image_path"`
	ImageCaption string   `json:"image_caption"`
	Footer       string   `json:"footer"`
}

// PanelItem is a split-panel entry, written either as a string or as {"text": ...}.
type PanelItem string

// UnmarshalJSON implements json.Unmarshaler.
func (p *PanelItem) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		var obj struct {
			Text Text `json:"text"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		*p = PanelItem(obj.Text)
		return nil
	}
	var t Text
	if err := t.UnmarshalJSON(data); err != nil {
		return err
	}
	*p = PanelItem(t)
	return nil
}

// SplitPanelSpec is checkmark bullets on the left and a boxed list on the right.
type SplitPanelSpec struct {
	Title      string      `json:"title"`
	Eyebrow    string      `json:"eyebrow"`
	Subtitle   string      `json:"subtitle"`
	Bullets    []string    `json:"bullets"`
	PanelTitle string      `json:"panel_title"`
	PanelItems []PanelItem `json:"panel_items"`
	Footer     string      `json:"footer"`
}

// TwoImageSpec is two captioned pictures side by side.
type TwoImageSpec struct {
	Title        string `json:"title"`
	Eyebrow      string `json:"eyebrow"`
	LeftImage    string `json:"left_image"`
	LeftCaption  string `json:"left_caption"`
	RightImage   string `json:"right_image"`
	RightCaption string `json:"right_caption"`
	Footer       string `json:"footer"`
}

// ValueProp is one row of a value-propositions slide. An empty Icon renders "●".
type ValueProp struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ValuePropsSpec is a stacked list of icon, title and description rows.
type ValuePropsSpec struct {
	Title    string      `json:"title"`
	Eyebrow  string      `json:"eyebrow"`
	Subtitle string      `json:"subtitle"`
	Props    []ValueProp `json:"props"`
	Footer   string      `json:"footer"`
}

// CTASpec is a call-to-action closer with a button.
type CTASpec struct {
	Brand    string `json:"brand"`
	Headline string `json:"headline"`
	SubText  string `json:"sub_text"`
	CTAText  string `json:"cta_text"`
	Footer   string `json:"footer"`
}

func (TitleSpec) Type() string       { return TypeTitle }
func (SectionSpec) Type() string     { return TypeSection }
func (BulletsSpec) Type() string     { return TypeBullets }
func (TableSpec) Type() string       { return TypeTable }
func (TwoColumnSpec) Type() string   { return TypeTwoColumn }
func (TextSpec) Type() string        { return TypeText }
func (ImageSpec) Type() string       { return TypeImage }
func (ComparisonSpec) Type() string  { return TypeComparison }
func (ClosingSpec) Type() string     { return TypeClosing }
func (HeroSpec) Type() string        { return TypeHero }
func (CardGridSpec) Type() string    { return TypeCardGrid }
func (IconBulletsSpec) Type() string { return TypeIconBullets }
func (SplitPanelSpec) Type() string  { return TypeSplitPanel }
func (TwoImageSpec) Type() string    { return TypeTwoImage }
func (ValuePropsSpec) Type() string  { return TypeValueProps }
func (CTASpec) Type() string         { return TypeCTA }

func (TitleSpec) isSpec()       {}
func (SectionSpec) isSpec()     {}
func (BulletsSpec) isSpec()     {}
func (TableSpec) isSpec()       {}
func (TwoColumnSpec) isSpec()   {}
func (TextSpec) isSpec()        {}
func (ImageSpec) isSpec()       {}
func (ComparisonSpec) isSpec()  {}
func (ClosingSpec) isSpec()     {}
func (HeroSpec) isSpec()        {}
func (CardGridSpec) isSpec()    {}
func (IconBulletsSpec) isSpec() {}
func (SplitPanelSpec) isSpec()  {}
func (TwoImageSpec) isSpec()    {}
func (ValuePropsSpec) isSpec()  {}
func (CTASpec) isSpec()         {}

// factories maps every tag to a constructor for its zero value.
var factories = map[string]func() Spec{
	TypeTitle:       func() Spec { return &TitleSpec{} },
	TypeSection:     func() Spec { return &SectionSpec{} },
	TypeBullets:     func() Spec { return &BulletsSpec{} },
	TypeTable:       func() Spec { return &TableSpec{} },
	TypeTwoColumn:   func() Spec { return &TwoColumnSpec{} },
	TypeText:        func() Spec { return &TextSpec{} },
	TypeImage:       func() Spec { return &ImageSpec{} },
	TypeComparison:  func() Spec { return &ComparisonSpec{} },
	TypeClosing:     func() Spec { return &ClosingSpec{} },
	TypeHero:        func() Spec { return &HeroSpec{} },
	TypeCardGrid:    func() Spec { return &CardGridSpec{} },
	TypeIconBullets: func() Spec { return &IconBulletsSpec{} },
	TypeSplitPanel:  func() Spec { return &SplitPanelSpec{} },
	TypeTwoImage:    func() Spec { return &TwoImageSpec{} },
	TypeValueProps:  func() Spec { return &ValuePropsSpec{} },
	TypeCTA:         func() Spec { return &CTASpec{} },
}

// ValidTypes lists every supported tag in rendering-catalog order.
func ValidTypes() []string {
	return []string{
		TypeTitle, TypeSection, TypeBullets, TypeTable, TypeTwoColumn, TypeText,
		TypeImage, TypeComparison, TypeClosing, TypeHero, TypeCardGrid,
		TypeIconBullets, TypeSplitPanel, TypeTwoImage, TypeValueProps, TypeCTA,
	}
}

// UnsupportedSlideTypeError reports an unknown type tag.
type UnsupportedSlideTypeError struct {
	Type  string
	Valid []string
	// Suggestion is the closest valid tag, or empty.
	Suggestion string
}

func (e *UnsupportedSlideTypeError) Error() string {
	valid := strings.Join(e.Valid, ", ")
	if e.Suggestion != "" {
		return fmt.Errorf(messages.SlidesUnknownTypeHintFmt, deckerr.ErrUnsupportedSlideType, e.Type, e.Suggestion, valid).Error()
	}
	return fmt.Errorf(messages.SlidesUnknownTypeFmt, deckerr.ErrUnsupportedSlideType, e.Type, valid).Error()
}

// Unwrap lets errors.Is match deckerr.ErrUnsupportedSlideType.
func (e *UnsupportedSlideTypeError) Unwrap() error { return deckerr.ErrUnsupportedSlideType }

func newUnsupported(tag string) *UnsupportedSlideTypeError {
	valid := ValidTypes()
	err := &UnsupportedSlideTypeError{Type: tag, Valid: valid}
	if matches := fuzzy.Find(strings.ToLower(tag), valid); len(matches) > 0 {
		err.Suggestion = matches[0].Str
	}
	return err
}

// Decode converts one raw spec into its typed form. A missing type means bullets.
func Decode(raw map[string]any) (Spec, error) {
	tag := DefaultType
	if v, ok := raw["type"]; ok && v != nil {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %s", deckerr.ErrFormat, messages.SlidesTypeFieldInvalid)
		}
		tag = s
	}
	factory, ok := factories[tag]
	if !ok {
		return nil, newUnsupported(tag)
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", deckerr.ErrFormat, err)
	}
	spec := factory()
	if err := json.Unmarshal(data, spec); err != nil {
		return nil, fmt.Errorf("%w: %v", deckerr.ErrFormat, err)
	}
	return deref(spec), nil
}

// DecodeAll decodes every raw spec, failing on the first bad one.
func DecodeAll(raws []map[string]any) ([]Spec, error) {
	out := make([]Spec, 0, len(raws))
	for i, raw := range raws {
		spec, err := Decode(raw)
		if err != nil {
			var unsupported *UnsupportedSlideTypeError
			if errors.As(err, &unsupported) {
				return nil, err
			}
			return nil, fmt.Errorf(messages.SlidesDecodeFailedFmt, deckerr.ErrFormat, i+1, typeOf(raw), err)
		}
		out = append(out, spec)
	}
	return out, nil
}

func typeOf(raw map[string]any) string {
	if s, ok := raw["type"].(string); ok {
		return s
	}
	return DefaultType
}

// deref stores specs by value so callers can type-switch on the struct types.
func deref(s Spec) Spec {
	switch v := s.(type) {
	case *TitleSpec:
		return *v
	case *SectionSpec:
		return *v
	case *BulletsSpec:
		return *v
	case *TableSpec:
		return *v
	case *TwoColumnSpec:
		return *v
	case *TextSpec:
		return *v
	case *ImageSpec:
		return *v
	case *ComparisonSpec:
		return *v
	case *ClosingSpec:
		return *v
	case *HeroSpec:
		return *v
	case *CardGridSpec:
		return *v
	case *IconBulletsSpec:
		return *v
	case *SplitPanelSpec:
		return *v
	case *TwoImageSpec:
		return *v
	case *ValuePropsSpec:
		return *v
	case *CTASpec:
		return *v
	}
	return s
}
