package slides

import (
	"errors"
	"fmt"
	"os"

	"github.com/conn-castle/deck-builder/internal/brand"
	"github.com/conn-castle/deck-builder/internal/deckerr"
	"github.com/conn-castle/deck-builder/internal/messages"
	"github.com/conn-castle/deck-builder/internal/pptx"
	"github.com/conn-castle/deck-builder/internal/warnings"
)

const (
	bulletMark = "▸"
	checkMark  = "✓"
	dotMark    = "●"
)

// page wraps one slide being drawn plus the warnings it produced.
type page struct {
	slide *pptx.Slide
	pal   brand.Palette
	font  string
	warns []warnings.Warning
}

func (p *page) style(size float64, color brand.Color) pptx.TextStyle {
	return pptx.TextStyle{Size: size, Color: color.Hex(), Font: p.font, Align: pptx.AlignLeft}
}

// placeholder writes text into layout placeholder idx. Missing placeholders are ignored.
func (p *page) placeholder(idx int, text string, st pptx.TextStyle) {
	if st.Align == "" {
		st.Align = pptx.AlignLeft
	}
	p.slide.SetPlaceholderText(idx, text, st)
}

// heading sets the title placeholder in the content-slide style.
func (p *page) heading(text string, size float64) {
	st := p.style(size, p.pal.Text)
	st.Bold = true
	p.placeholder(0, text, st)
}

// eyebrow sets placeholder 1 when text is non-empty.
func (p *page) eyebrow(text string) {
	if text == "" {
		return
	}
	st := p.style(10, p.pal.Accent)
	st.Italic = true
	p.placeholder(1, text, st)
}

func (p *page) text(r pptx.Rect, text string, st pptx.TextStyle) {
	if st.Size == 0 {
		st.Size = 12
	}
	p.slide.AddText(r, text, st)
}

func (p *page) centered(r pptx.Rect, text string, size float64, color brand.Color) {
	st := p.style(size, color)
	st.Align = pptx.AlignCenter
	p.text(r, text, st)
}

func (p *page) footer(text string) {
	if text == "" {
		return
	}
	p.text(pptx.Rect{X: 0.5, Y: 5.25, W: 9.0, H: 0.3}, text, p.style(8, p.pal.Planned))
}

// bulletBlock is an optional bold header paragraph followed by one marked paragraph per line.
func (p *page) bulletBlock(r pptx.Rect, lines []string, size float64, header string) {
	paras := make([]pptx.Paragraph, 0, len(lines)+1)
	if header != "" {
		st := p.style(13, p.pal.Accent)
		st.Bold = true
		st.Align = ""
		paras = append(paras, pptx.Paragraph{Text: header, Style: st})
	}
	for _, line := range lines {
		st := p.style(size, p.pal.Text)
		st.Align = ""
		paras = append(paras, pptx.Paragraph{Text: bulletMark + "  " + line, Style: st, SpaceBefore: 3})
	}
	p.slide.AddTextBox(r, paras)
}

// checkRow draws a check mark and its text on one line.
func (p *page) checkRow(y, textX, textW float64, text string) {
	mark := p.style(11, p.pal.Accent)
	mark.Bold = true
	p.text(pptx.Rect{X: 0.6, Y: y, W: 0.3, H: 0.35}, checkMark, mark)
	p.text(pptx.Rect{X: textX, Y: y, W: textW, H: 0.35}, text, p.style(10, p.pal.Text))
}

// panel draws a filled background with a thin accent bar along its top edge.
func (p *page) panel(r pptx.Rect, bar brand.Color) {
	p.slide.AddShape(pptx.ShapeSpec{Kind: pptx.ShapeRect, Rect: r, Fill: p.pal.Panel.Hex()})
	p.slide.AddShape(pptx.ShapeSpec{Kind: pptx.ShapeRect, Rect: pptx.Rect{X: r.X, Y: r.Y, W: r.W, H: 0.05}, Fill: bar.Hex()})
}

// picture embeds path into r. An empty path is skipped; a missing file becomes
// an IMAGE_NOT_FOUND warning. It reports whether a picture was placed.
func (p *page) picture(path string, r pptx.Rect) (bool, error) {
	if path == "" {
		return false, nil
	}
	err := p.slide.AddPicture(path, r)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, deckerr.ErrInputNotFound) {
		p.warns = append(p.warns, imageWarning(path))
		return false, nil
	}
	return false, err
}

// missingPicture records a warning for an image the caller expected but could not resolve.
func (p *page) missingPicture(path string) {
	p.warns = append(p.warns, imageWarning(path))
}

func imageWarning(path string) warnings.Warning {
	return warnings.Warning{
		Code:              warnings.CodeImageNotFound,
		Subject:           path,
		Message:           fmt.Sprintf(messages.SlidesImageNotFoundFmt, path),
		Fix:               messages.SlidesImageNotFoundFix,
		Source:            warnings.SourceContent,
		NoiseSuppressible: true,
	}
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
