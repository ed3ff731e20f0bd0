package slides

import (
	"fmt"
	"strconv"

	"github.com/conn-castle/deck-builder/internal/brand"
	"github.com/conn-castle/deck-builder/internal/content"
	"github.com/conn-castle/deck-builder/internal/coverage"
	"github.com/conn-castle/deck-builder/internal/layout"
	"github.com/conn-castle/deck-builder/internal/messages"
	"github.com/conn-castle/deck-builder/internal/pptx"
	"github.com/conn-castle/deck-builder/internal/warnings"
)

// Cover is the opening slide of a profile deck.
type Cover struct {
	Title    string
	Subtitle string
	// LogoPath is optional; a missing file only warns.
	LogoPath string
}

// AgendaItem is one agenda line.
type AgendaItem struct {
	Icon  string
	Label string
}

// Agenda lists the sections of a deck.
type Agenda struct {
	Title string
	Items []AgendaItem
}

// CoverageMatrix is the per-domain summary table slide.
type CoverageMatrix struct {
	Title   string
	Eyebrow string
	Summary coverage.Summary
}

// Screenshot is one picture with bullets beside it.
type Screenshot struct {
	Title     string
	Eyebrow   string
	ImagePath string
	Bullets   []string
}

// DomainTable is a requirement table for one domain.
type DomainTable struct {
	Title        string
	Eyebrow      string
	Description  string
	Requirements []content.Requirement
	// HideBar drops the status badge bar and moves the table up.
	HideBar bool
}

// ScreenshotPair is two captioned screenshots on the dual-image layout.
type ScreenshotPair struct {
	Title        string
	Eyebrow      string
	LeftImage    string
	LeftCaption  string
	RightImage   string
	RightCaption string
}

// RenderCover appends the profile deck's title slide.
func (r *Renderer) RenderCover(pres *pptx.Presentation, c Cover) (*pptx.Slide, []warnings.Warning, error) {
	p, err := r.newPage(pres, layout.RoleTitleCenter)
	if err != nil {
		return nil, nil, err
	}
	title := c.Title
	if title == "" {
		title = messages.DeckDefaultTitle
	}
	st := p.style(36, p.pal.Text)
	st.Bold = true
	st.Align = pptx.AlignCenter
	p.placeholder(0, title, st)
	sub := p.style(20, p.pal.Accent)
	sub.Align = pptx.AlignCenter
	p.placeholder(1, c.Subtitle, sub)
	if _, err := p.picture(c.LogoPath, pptx.Rect{X: 10.8, Y: 6.8, W: 2.2, H: 0.55}); err != nil {
		return nil, nil, err
	}
	sl, warns := r.finish(p)
	return sl, warns, nil
}

// RenderAgenda appends a centered agenda slide.
func (r *Renderer) RenderAgenda(pres *pptx.Presentation, a Agenda) (*pptx.Slide, []warnings.Warning, error) {
	p, err := r.newPage(pres, layout.RoleTitleCenter)
	if err != nil {
		return nil, nil, err
	}
	title := a.Title
	if title == "" {
		title = messages.DeckDefaultAgendaTitle
	}
	st := p.style(32, p.pal.Text)
	st.Bold = true
	st.Align = pptx.AlignCenter
	p.placeholder(0, title, st)
	lines := make([]string, 0, len(a.Items))
	for _, item := range a.Items {
		lines = append(lines, fmt.Sprintf(messages.DeckAgendaItemFmt, item.Icon, item.Label))
	}
	p.bulletBlock(pptx.Rect{X: 3.5, Y: 2.0, W: 6.5, H: 4.5}, lines, 14, "")
	sl, warns := r.finish(p)
	return sl, warns, nil
}

// RenderCoverage appends the coverage matrix: one row per domain then the total row.
func (r *Renderer) RenderCoverage(pres *pptx.Presentation, m CoverageMatrix) (*pptx.Slide, []warnings.Warning, error) {
	p, err := r.newPage(pres, layout.RoleTitleContent)
	if err != nil {
		return nil, nil, err
	}
	title := m.Title
	if title == "" {
		title = messages.DeckDefaultCoverageTitle
	}
	p.heading(title, 22)
	p.eyebrow(m.Eyebrow)
	p.slide.AddTable(pptx.Rect{X: 0.7, Y: 2.3, W: 11.94, H: 4.6}, []float64{5.5, 1.1, 1.8, 1.8, 1.74}, coverageRows(p.pal, p.font, m.Summary))
	sl, warns := r.finish(p)
	return sl, warns, nil
}

func coverageRows(pal brand.Palette, font string, s coverage.Summary) [][]pptx.Cell {
	headers := []string{
		messages.DeckCoverageHeaderDomain,
		messages.DeckCoverageHeaderTotal,
		messages.DeckCoverageHeaderNow,
		messages.DeckCoverageHeaderPartial,
		messages.DeckCoverageHeaderRoadmap,
	}
	head := make([]pptx.Cell, len(headers))
	for c, h := range headers {
		head[c] = pptx.Cell{
			Text:  h,
			Style: pptx.TextStyle{Size: 10, Bold: true, Color: pal.Accent.Hex(), Font: font, Align: pptx.AlignCenter},
			Fill:  pal.Header.Hex(),
		}
	}
	colors := []brand.Color{pal.Text, pal.Text, pal.Available, pal.Partial, pal.Planned}
	rows := [][]pptx.Cell{head}
	row := func(values []string, fill brand.Color, total bool) []pptx.Cell {
		cells := make([]pptx.Cell, len(values))
		for c, v := range values {
			st := pptx.TextStyle{Size: 10, Color: colors[c].Hex(), Font: font, Align: pptx.AlignCenter}
			if c == 0 {
				st.Align = pptx.AlignLeft
			}
			if total {
				st.Size = 11
				st.Bold = true
			}
			cells[c] = pptx.Cell{Text: v, Style: st, Fill: fill.Hex()}
		}
		return cells
	}
	for i, d := range s.Rows {
		fill := pal.RowEven
		if i%2 == 1 {
			fill = pal.RowOdd
		}
		rows = append(rows, row([]string{
			d.Name,
			strconv.Itoa(d.Total),
			strconv.Itoa(d.Available),
			strconv.Itoa(d.Partial),
			strconv.Itoa(d.Planned),
		}, fill, false))
	}
	t := s.Total
	rows = append(rows, row([]string{
		t.Name,
		strconv.Itoa(t.Total),
		fmt.Sprintf(messages.DeckTotalCellFmt, t.Available, t.Percent(t.Available)),
		fmt.Sprintf(messages.DeckTotalCellFmt, t.Partial, t.Percent(t.Partial)),
		fmt.Sprintf(messages.DeckTotalCellFmt, t.Planned, t.Percent(t.Planned)),
	}, pal.Header, true))
	return rows
}

// RenderScreenshot appends a screenshot slide: bullets on the left, one large picture on the right.
func (r *Renderer) RenderScreenshot(pres *pptx.Presentation, s Screenshot) (*pptx.Slide, []warnings.Warning, error) {
	p, err := r.newPage(pres, layout.RoleTitleContent)
	if err != nil {
		return nil, nil, err
	}
	p.heading(s.Title, 20)
	p.eyebrow(s.Eyebrow)
	if s.ImagePath == "" {
		p.missingPicture(s.Title)
	} else if _, err := p.picture(s.ImagePath, pptx.Rect{X: 7.0, Y: 1.7, W: 6.0, H: 5.5}); err != nil {
		return nil, nil, err
	}
	if len(s.Bullets) > 0 {
		p.bulletBlock(pptx.Rect{X: 0.5, Y: 2.0, W: 6.2, H: 5.2}, s.Bullets, 11, "")
	}
	sl, warns := r.finish(p)
	return sl, warns, nil
}

// RenderDomain appends a requirement table slide with a status badge bar.
func (r *Renderer) RenderDomain(pres *pptx.Presentation, d DomainTable) (*pptx.Slide, []warnings.Warning, error) {
	p, err := r.newPage(pres, layout.RoleTitleContent)
	if err != nil {
		return nil, nil, err
	}
	p.heading(d.Title, 18)
	p.eyebrow(d.Eyebrow)
	if d.Description != "" {
		p.text(pptx.Rect{X: 0.5, Y: 1.55, W: 12.5, H: 0.4}, d.Description, p.style(10, p.pal.Planned))
	}
	top := 2.0
	if !d.HideBar {
		p.statusBar(coverage.Count(d.Title, d.Requirements), 0.5, 2.0)
		top = 2.42
	}
	p.requirementTable(pptx.Rect{X: 0.5, Y: top, W: 12.84, H: pptx.SlideHeight - top - 0.1}, d.Requirements)
	sl, warns := r.finish(p)
	return sl, warns, nil
}

// statusBar draws the three count badges and the "of N requirements" label.
func (p *page) statusBar(row coverage.Row, left, top float64) {
	badges := []struct {
		text string
		x    float64
		fill brand.Color
	}{
		{fmt.Sprintf(messages.DeckBadgeNowFmt, row.Available), left, p.pal.Available},
		{fmt.Sprintf(messages.DeckBadgePartialFmt, row.Partial), left + 1.4, p.pal.Partial},
		{fmt.Sprintf(messages.DeckBadgeRoadmapFmt, row.Planned), left + 2.8, p.pal.Badge},
	}
	for _, b := range badges {
		st := p.style(9, p.pal.Text)
		st.Bold = true
		st.Align = pptx.AlignCenter
		p.slide.AddShape(pptx.ShapeSpec{
			Kind:   pptx.ShapeRoundRect,
			Rect:   pptx.Rect{X: b.x, Y: top, W: 1.32, H: 0.27},
			Fill:   b.fill.Hex(),
			Text:   []pptx.Paragraph{{Text: b.text, Style: st}},
			Insets: &pptx.Insets{Left: 0.04, Top: 0.02, Right: 0.04, Bottom: 0.02},
		})
	}
	p.text(pptx.Rect{X: left + 4.25, Y: top + 0.02, W: 2.5, H: 0.28},
		fmt.Sprintf(messages.DeckRequirementsOfTotalFmt, row.Total), p.style(10, p.pal.Planned))
}

// requirementTable draws the four-column requirement table. Status cells are
// colored by marker glyph and signal cells use the accent color.
func (p *page) requirementTable(r pptx.Rect, reqs []content.Requirement) {
	headers := []string{
		messages.DeckTableHeaderRequirement,
		messages.DeckTableHeaderDescription,
		messages.DeckTableHeaderStatus,
		messages.DeckTableHeaderSignal,
	}
	head := make([]pptx.Cell, len(headers))
	for c, h := range headers {
		st := p.style(8, p.pal.Accent)
		st.Bold = true
		st.Align = ""
		head[c] = pptx.Cell{Text: h, Style: st, Fill: p.pal.Header.Hex()}
	}
	rows := [][]pptx.Cell{head}
	theme := brand.Theme{Palette: p.pal}
	for i, req := range reqs {
		fill := p.pal.RowEven
		if i%2 == 1 {
			fill = p.pal.RowOdd
		}
		values := []string{req.Name, req.Description, req.Status, req.Signal}
		colors := []brand.Color{p.pal.Text, p.pal.Text, theme.StatusColor(req.Status), p.pal.Accent}
		cells := make([]pptx.Cell, len(values))
		for c, v := range values {
			st := p.style(7.5, colors[c])
			st.Align = ""
			cells[c] = pptx.Cell{Text: v, Style: st, Fill: fill.Hex()}
		}
		rows = append(rows, cells)
	}
	widths := []float64{r.W * 0.40, r.W * 0.29, r.W * 0.17, r.W * 0.14}
	p.slide.AddTable(r, widths, rows)
}

// RenderScreenshotPair appends two screenshots with captions on the dual-image layout.
func (r *Renderer) RenderScreenshotPair(pres *pptx.Presentation, s ScreenshotPair) (*pptx.Slide, []warnings.Warning, error) {
	p, err := r.newPage(pres, layout.RoleTwoImage)
	if err != nil {
		return nil, nil, err
	}
	p.heading(s.Title, 18)
	p.eyebrow(s.Eyebrow)
	sides := []struct {
		x            float64
		img, caption string
	}{
		{0.36, s.LeftImage, s.LeftCaption},
		{6.78, s.RightImage, s.RightCaption},
	}
	for _, side := range sides {
		if side.img == "" {
			p.missingPicture(s.Title)
		} else if _, err := p.picture(side.img, pptx.Rect{X: side.x, Y: 1.75, W: 6.22, H: 5.2}); err != nil {
			return nil, nil, err
		}
	}
	for _, side := range sides {
		p.centered(pptx.Rect{X: side.x, Y: 6.95, W: 6.22, H: 0.4}, side.caption, 9, p.pal.Planned)
	}
	sl, warns := r.finish(p)
	return sl, warns, nil
}
