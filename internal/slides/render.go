package slides

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/conn-castle/deck-builder/internal/brand"
	"github.com/conn-castle/deck-builder/internal/layout"
	"github.com/conn-castle/deck-builder/internal/messages"
	"github.com/conn-castle/deck-builder/internal/pptx"
	"github.com/conn-castle/deck-builder/internal/warnings"
)

// Renderer appends one slide per spec using a resolved layout map and a theme.
// It holds no per-build state, so one Renderer may serve many presentations.
type Renderer struct {
	theme   brand.Theme
	layouts layout.Map
	logger  *zap.Logger
}

// NewRenderer returns a Renderer. A nil logger discards output.
func NewRenderer(theme brand.Theme, layouts layout.Map, logger *zap.Logger) *Renderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Renderer{theme: theme, layouts: layouts, logger: logger}
}

// Theme returns the renderer's theme.
func (r *Renderer) Theme() brand.Theme { return r.theme }

func (r *Renderer) newPage(pres *pptx.Presentation, role layout.Role) (*page, error) {
	sl, err := pres.AddSlide(r.layouts.Get(role))
	if err != nil {
		return nil, err
	}
	return &page{slide: sl, pal: r.theme.Palette, font: r.theme.Font}, nil
}

func (r *Renderer) finish(p *page) (*pptx.Slide, []warnings.Warning) {
	warnings.Log(r.logger, p.warns)
	return p.slide, p.warns
}

// Render appends exactly one slide for spec.
func (r *Renderer) Render(pres *pptx.Presentation, spec Spec) (*pptx.Slide, []warnings.Warning, error) {
	var (
		p   *page
		err error
	)
	switch s := deref(spec).(type) {
	case TitleSpec:
		p, err = r.title(pres, s)
	case SectionSpec:
		p, err = r.section(pres, s)
	case BulletsSpec:
		p, err = r.bullets(pres, s)
	case TableSpec:
		p, err = r.table(pres, s)
	case TwoColumnSpec:
		p, err = r.twoColumn(pres, s)
	case TextSpec:
		p, err = r.textSlide(pres, s)
	case ImageSpec:
		p, err = r.image(pres, s)
	case ComparisonSpec:
		p, err = r.comparison(pres, s)
	case ClosingSpec:
		p, err = r.closing(pres, s)
	case HeroSpec:
		p, err = r.hero(pres, s)
	case CardGridSpec:
		p, err = r.cardGrid(pres, s)
	case IconBulletsSpec:
		p, err = r.iconBullets(pres, s)
	case SplitPanelSpec:
		p, err = r.splitPanel(pres, s)
	case TwoImageSpec:
		p, err = r.twoImage(pres, s)
	case ValuePropsSpec:
		p, err = r.valueProps(pres, s)
	case CTASpec:
		p, err = r.cta(pres, s)
	default:
		return nil, nil, newUnsupported(fmt.Sprintf("%T", spec))
	}
	if err != nil {
		return nil, nil, err
	}
	sl, warns := r.finish(p)
	return sl, warns, nil
}

// RenderAll decodes every raw spec before rendering any, so a bad spec leaves
// pres untouched. Slides are appended in input order, one per spec.
func (r *Renderer) RenderAll(pres *pptx.Presentation, raws []map[string]any) ([]*pptx.Slide, []warnings.Warning, error) {
	specs, err := DecodeAll(raws)
	if err != nil {
		return nil, nil, err
	}
	return r.RenderSpecs(pres, specs)
}

// RenderSpecs renders already-decoded specs in order.
func (r *Renderer) RenderSpecs(pres *pptx.Presentation, specs []Spec) ([]*pptx.Slide, []warnings.Warning, error) {
	out := make([]*pptx.Slide, 0, len(specs))
	var warns []warnings.Warning
	for i, spec := range specs {
		sl, w, err := r.Render(pres, spec)
		if err != nil {
			return out, warns, fmt.Errorf(messages.SlidesRenderFailedFmt, i+1, spec.Type(), err)
		}
		r.logger.Debug("slide rendered", zap.Int("index", i+1), zap.String("type", spec.Type()), zap.String("part", sl.Part()))
		out = append(out, sl)
		warns = append(warns, w...)
	}
	return out, warns, nil
}

func (r *Renderer) title(pres *pptx.Presentation, s TitleSpec) (*page, error) {
	p, err := r.newPage(pres, layout.RoleTitleCenter)
	if err != nil {
		return nil, err
	}
	st := p.style(36, p.pal.Text)
	st.Bold = true
	st.Align = pptx.AlignCenter
	p.placeholder(0, s.Title, st)
	sub := p.style(20, p.pal.Accent)
	sub.Align = pptx.AlignCenter
	p.placeholder(1, s.Subtitle, sub)
	p.contact(s.Contact)
	return p, nil
}

func (p *page) contact(text string) {
	if text == "" {
		return
	}
	p.centered(pptx.Rect{X: 3.5, Y: 5.6, W: 7.0, H: 0.5}, text, 11, p.pal.Accent)
}

func (r *Renderer) section(pres *pptx.Presentation, s SectionSpec) (*page, error) {
	p, err := r.newPage(pres, layout.RoleTitleCenter)
	if err != nil {
		return nil, err
	}
	st := p.style(30, p.pal.Accent)
	st.Bold = true
	st.Align = pptx.AlignCenter
	p.placeholder(0, s.Title, st)
	if s.Subtitle != "" {
		sub := p.style(14, p.pal.Text)
		sub.Align = pptx.AlignCenter
		p.placeholder(1, s.Subtitle, sub)
	}
	return p, nil
}

// contentPage opens a title_content slide with the standard 22pt title and eyebrow.
func (r *Renderer) contentPage(pres *pptx.Presentation, title, eyebrow string) (*page, error) {
	p, err := r.newPage(pres, layout.RoleTitleContent)
	if err != nil {
		return nil, err
	}
	p.heading(title, 22)
	p.eyebrow(eyebrow)
	return p, nil
}

func (r *Renderer) bullets(pres *pptx.Presentation, s BulletsSpec) (*page, error) {
	p, err := r.contentPage(pres, s.Title, s.Eyebrow)
	if err != nil {
		return nil, err
	}
	p.bulletBlock(pptx.Rect{X: 0.7, Y: 2.0, W: 11.5, H: 5.2}, s.Bullets, 12, "")
	return p, nil
}

func (r *Renderer) table(pres *pptx.Presentation, s TableSpec) (*page, error) {
	p, err := r.contentPage(pres, s.Title, s.Eyebrow)
	if err != nil {
		return nil, err
	}
	if len(s.Columns) == 0 || len(s.Rows) == 0 {
		return p, nil
	}
	head := make([]pptx.Cell, len(s.Columns))
	for c, col := range s.Columns {
		st := p.style(10, p.pal.Accent)
		st.Bold = true
		st.Align = pptx.AlignCenter
		head[c] = pptx.Cell{Text: string(col), Style: st, Fill: p.pal.Header.Hex()}
	}
	rows := [][]pptx.Cell{head}
	for ri, row := range s.Rows {
		fill := p.pal.RowEven
		if ri%2 == 1 {
			fill = p.pal.RowOdd
		}
		n := min(len(row), len(s.Columns))
		cells := make([]pptx.Cell, n)
		for c := 0; c < n; c++ {
			st := p.style(9, p.pal.Text)
			st.Align = ""
			cells[c] = pptx.Cell{Text: string(row[c]), Style: st, Fill: fill.Hex()}
		}
		rows = append(rows, cells)
	}
	widths := make([]float64, len(s.Columns))
	for i := range widths {
		widths[i] = 12.0 / float64(len(s.Columns))
	}
	p.slide.AddTable(pptx.Rect{X: 0.7, Y: 2.2, W: 12.0, H: 5.0}, widths, rows)
	return p, nil
}

func (r *Renderer) twoColumn(pres *pptx.Presentation, s TwoColumnSpec) (*page, error) {
	p, err := r.contentPage(pres, s.Title, s.Eyebrow)
	if err != nil {
		return nil, err
	}
	p.bulletBlock(pptx.Rect{X: 0.5, Y: 2.2, W: 5.8, H: 4.8}, s.LeftBullets, 11, s.LeftHeader)
	p.bulletBlock(pptx.Rect{X: 6.8, Y: 2.2, W: 5.8, H: 4.8}, s.RightBullets, 11, s.RightHeader)
	return p, nil
}

func (r *Renderer) textSlide(pres *pptx.Presentation, s TextSpec) (*page, error) {
	p, err := r.contentPage(pres, s.Title, s.Eyebrow)
	if err != nil {
		return nil, err
	}
	p.text(pptx.Rect{X: 0.7, Y: 2.0, W: 11.5, H: 5.2}, s.Body, p.style(12, p.pal.Text))
	return p, nil
}

func (r *Renderer) image(pres *pptx.Presentation, s ImageSpec) (*page, error) {
	p, err := r.contentPage(pres, s.Title, "")
	if err != nil {
		return nil, err
	}
	if _, err := p.picture(s.ImagePath, pptx.Rect{X: 1.5, Y: 1.8, W: 10.0, H: 5.0}); err != nil {
		return nil, err
	}
	if s.Caption != "" {
		p.centered(pptx.Rect{X: 1.5, Y: 6.9, W: 10.0, H: 0.4}, s.Caption, 9, p.pal.Planned)
	}
	return p, nil
}

func (r *Renderer) comparison(pres *pptx.Presentation, s ComparisonSpec) (*page, error) {
	p, err := r.contentPage(pres, s.Title, "")
	if err != nil {
		return nil, err
	}
	n := max(len(s.Items), 1)
	colW := 12.0 / float64(n)
	for i, item := range s.Items {
		x := 0.5 + float64(i)*colW
		p.bulletBlock(pptx.Rect{X: x, Y: 2.2, W: colW - 0.3, H: 4.8}, item.Bullets, 11, item.Label)
	}
	return p, nil
}

func (r *Renderer) closing(pres *pptx.Presentation, s ClosingSpec) (*page, error) {
	p, err := r.newPage(pres, layout.RoleTitleCenter)
	if err != nil {
		return nil, err
	}
	msg := s.Message
	if msg == "" {
		msg = messages.DeckDefaultClosingMessage
	}
	st := p.style(36, p.pal.Text)
	st.Bold = true
	st.Align = pptx.AlignCenter
	p.placeholder(0, msg, st)
	p.contact(s.Contact)
	return p, nil
}

func (r *Renderer) brandWord(p *page, word string) {
	if word == "" {
		word = r.theme.BrandWord
	}
	p.text(pptx.Rect{X: 0.6, Y: 0.4, W: 3.0, H: 0.5}, word, p.style(16, p.pal.Text))
}

func (r *Renderer) hero(pres *pptx.Presentation, s HeroSpec) (*page, error) {
	p, err := r.newPage(pres, layout.RoleTitleCenter)
	if err != nil {
		return nil, err
	}
	r.brandWord(p, s.Brand)
	head := p.style(44, p.pal.Text)
	head.Bold = true
	p.text(pptx.Rect{X: 0.6, Y: 1.8, W: 6.0, H: 1.2}, s.Headline, head)
	if s.SubHeadline != "" {
		p.text(pptx.Rect{X: 0.6, Y: 2.85, W: 6.0, H: 0.8}, s.SubHeadline, p.style(28, p.pal.Text))
	}
	if s.Tagline != "" {
		p.text(pptx.Rect{X: 0.6, Y: 3.8, W: 6.0, H: 0.8}, s.Tagline, p.style(14, p.pal.Planned))
	}
	p.footer(s.Footer)
	return p, nil
}

// grid returns the column and row counts for n items.
func grid(n int) (cols, rows int) {
	cols = 2
	if n > 4 {
		cols = 3
	}
	rows = int(math.Ceil(float64(n) / float64(cols)))
	return cols, rows
}

func (r *Renderer) cardGrid(pres *pptx.Presentation, s CardGridSpec) (*page, error) {
	p, err := r.contentPage(pres, s.Title, s.Eyebrow)
	if err != nil {
		return nil, err
	}
	if n := len(s.Cards); n > 0 {
		cols, rows := grid(n)
		w := 12.0/float64(cols) - 0.2
		h := 4.5/float64(rows) - 0.15
		for i, c := range s.Cards {
			x := 0.6 + float64(i%cols)*(w+0.2)
			y := 2.0 + float64(i/cols)*(h+0.15)
			r.card(p, pptx.Rect{X: x, Y: y, W: w, H: h}, c, r.theme.CardColor(i))
		}
	}
	p.footer(s.Footer)
	return p, nil
}

func (r *Renderer) card(p *page, box pptx.Rect, c Card, bar brand.Color) {
	p.panel(box, bar)
	titleX := box.X + 0.2
	if c.Icon != "" {
		p.text(pptx.Rect{X: box.X + 0.2, Y: box.Y + 0.2, W: 0.4, H: 0.4}, c.Icon, p.style(18, p.pal.Text))
		titleX = box.X + 0.65
	}
	st := p.style(12, p.pal.Text)
	st.Bold = true
	p.text(pptx.Rect{X: titleX, Y: box.Y + 0.2, W: box.W - 0.85, H: 0.4}, c.Title, st)
	p.text(pptx.Rect{X: box.X + 0.2, Y: box.Y + 0.65, W: box.W - 0.4, H: box.H - 0.8}, c.Description, p.style(9, p.pal.Planned))
}

func (r *Renderer) iconBullets(pres *pptx.Presentation, s IconBulletsSpec) (*page, error) {
	p, err := r.contentPage(pres, s.Title, s.Eyebrow)
	if err != nil {
		return nil, err
	}
	if s.Subtitle != "" {
		p.text(pptx.Rect{X: 0.6, Y: 1.5, W: 5.5, H: 0.7}, s.Subtitle, p.style(10, p.pal.Planned))
	}
	hasImage := fileExists(s.ImagePath)
	width := 11.5
	if hasImage {
		width = 5.0
	}
	top := 2.0
	if s.Subtitle != "" {
		top = 2.2
	}
	for i, b := range s.Bullets {
		p.checkRow(top+float64(i)*0.42, 0.95, width, b)
	}
	switch {
	case hasImage:
		if _, err := p.picture(s.ImagePath, pptx.Rect{X: 5.8, Y: 1.0, W: 3.9, H: 3.6}); err != nil {
			return nil, err
		}
		if s.ImageCaption != "" {
			p.centered(pptx.Rect{X: 5.8, Y: 4.7, W: 3.9, H: 0.25}, s.ImageCaption, 8, p.pal.Planned)
		}
	case s.ImagePath != "":
		p.missingPicture(s.ImagePath)
	}
	p.footer(s.Footer)
	return p, nil
}

func (r *Renderer) splitPanel(pres *pptx.Presentation, s SplitPanelSpec) (*page, error) {
	p, err := r.contentPage(pres, s.Title, s.Eyebrow)
	if err != nil {
		return nil, err
	}
	if s.Subtitle != "" {
		p.text(pptx.Rect{X: 0.6, Y: 0.8, W: 5.0, H: 0.7}, s.Subtitle, p.style(13, p.pal.Text))
	}
	for i, b := range s.Bullets {
		p.checkRow(1.8+float64(i)*0.42, 0.95, 4.6, b)
	}

	const px, py, pw = 5.8, 1.8, 3.9
	ph := float64(len(s.PanelItems))*0.42 + 0.6
	p.panel(pptx.Rect{X: px, Y: py, W: pw, H: ph}, p.pal.Accent)
	if s.PanelTitle != "" {
		st := p.style(12, p.pal.Text)
		st.Bold = true
		p.text(pptx.Rect{X: px + 0.2, Y: py + 0.15, W: pw - 0.4, H: 0.35}, s.PanelTitle, st)
	}
	for i, item := range s.PanelItems {
		iy := py + 0.55 + float64(i)*0.38
		p.text(pptx.Rect{X: px + 0.2, Y: iy, W: 0.2, H: 0.3}, checkMark, p.style(9, p.pal.Accent))
		p.text(pptx.Rect{X: px + 0.45, Y: iy, W: pw - 0.65, H: 0.3}, string(item), p.style(9, p.pal.Text))
	}
	p.footer(s.Footer)
	return p, nil
}

func (r *Renderer) twoImage(pres *pptx.Presentation, s TwoImageSpec) (*page, error) {
	p, err := r.contentPage(pres, s.Title, s.Eyebrow)
	if err != nil {
		return nil, err
	}
	sides := []struct {
		x            float64
		img, caption string
	}{
		{0.5, s.LeftImage, s.LeftCaption},
		{5.2, s.RightImage, s.RightCaption},
	}
	for _, side := range sides {
		if _, err := p.picture(side.img, pptx.Rect{X: side.x, Y: 1.6, W: 4.3, H: 3.4}); err != nil {
			return nil, err
		}
		if side.caption != "" {
			p.centered(pptx.Rect{X: side.x, Y: 4.95, W: 4.3, H: 0.3}, side.caption, 8, p.pal.Planned)
		}
	}
	p.footer(s.Footer)
	return p, nil
}

func (r *Renderer) valueProps(pres *pptx.Presentation, s ValuePropsSpec) (*page, error) {
	p, err := r.contentPage(pres, s.Title, s.Eyebrow)
	if err != nil {
		return nil, err
	}
	if s.Subtitle != "" {
		p.text(pptx.Rect{X: 0.6, Y: 0.8, W: 9.0, H: 0.9}, s.Subtitle, p.style(14, p.pal.Text))
	}
	for i, prop := range s.Props {
		y := 1.95 + float64(i)*0.6
		icon := prop.Icon
		if icon == "" {
			icon = dotMark
		}
		p.text(pptx.Rect{X: 0.6, Y: y, W: 0.3, H: 0.3}, icon, p.style(11, p.pal.Accent))
		st := p.style(11, p.pal.Text)
		st.Bold = true
		p.text(pptx.Rect{X: 1.05, Y: y, W: 2.5, H: 0.3}, prop.Title, st)
		p.text(pptx.Rect{X: 1.05, Y: y + 0.25, W: 8.0, H: 0.3}, prop.Description, p.style(9, p.pal.Planned))
	}
	p.footer(s.Footer)
	return p, nil
}

func (r *Renderer) cta(pres *pptx.Presentation, s CTASpec) (*page, error) {
	p, err := r.newPage(pres, layout.RoleTitleCenter)
	if err != nil {
		return nil, err
	}
	r.brandWord(p, s.Brand)
	head := p.style(32, p.pal.Text)
	head.Bold = true
	p.text(pptx.Rect{X: 0.6, Y: 2.0, W: 8.0, H: 0.9}, s.Headline, head)
	if s.SubText != "" {
		p.text(pptx.Rect{X: 0.6, Y: 3.0, W: 7.0, H: 0.8}, s.SubText, p.style(14, p.pal.Planned))
	}
	if s.CTAText != "" {
		st := p.style(13, p.pal.Text)
		st.Bold = true
		st.Align = pptx.AlignCenter
		p.slide.AddShape(pptx.ShapeSpec{
			Kind: pptx.ShapeRoundRect,
			Rect: pptx.Rect{X: 0.6, Y: 4.2, W: 2.8, H: 0.55},
			Fill: p.pal.Accent.Hex(),
			Text: []pptx.Paragraph{{Text: s.CTAText, Style: st}},
		})
	}
	p.footer(s.Footer)
	return p, nil
}
