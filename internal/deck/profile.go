package deck

import (
	"fmt"

	"github.com/conn-castle/deck-builder/internal/content"
	"github.com/conn-castle/deck-builder/internal/coverage"
	"github.com/conn-castle/deck-builder/internal/messages"
	"github.com/conn-castle/deck-builder/internal/profile"
	"github.com/conn-castle/deck-builder/internal/slides"
	"github.com/conn-castle/deck-builder/internal/warnings"
)

// BuildProfileDeck builds the structured deck for a profile:
// cover, optional agenda, coverage matrix, optional landing slide, one slide per domain,
// screenshot slides, optional highlight table, closing.
func (a *Assembler) BuildProfileDeck(p *profile.Profile, domains []content.Domain) (*Result, error) {
	cfg := p.Config
	templatePath, err := p.TemplatePath()
	if err != nil {
		return nil, err
	}
	theme, err := cfg.Theme.Apply(a.theme)
	if err != nil {
		return nil, err
	}
	b, err := a.start(templatePath, theme, cfg.LayoutIndices)
	if err != nil {
		return nil, err
	}
	r, pres := b.renderer, b.pres
	customer := cfg.Customer

	if err := b.add(r.RenderCover(pres, slides.Cover{
		Title:    cfg.DeckTitle,
		Subtitle: cfg.DeckSubtitle,
		LogoPath: p.LogoPath(),
	})); err != nil {
		return nil, err
	}

	if len(cfg.Agenda) > 0 {
		items := make([]slides.AgendaItem, 0, len(cfg.Agenda))
		for _, it := range cfg.Agenda {
			items = append(items, slides.AgendaItem{Icon: it.Icon, Label: it.Label})
		}
		if err := b.add(r.RenderAgenda(pres, slides.Agenda{Items: items})); err != nil {
			return nil, err
		}
	}

	eyebrow := cfg.CoverageEyebrow
	if eyebrow == "" {
		eyebrow = customer
	}
	if err := b.add(r.RenderCoverage(pres, slides.CoverageMatrix{
		Title:   cfg.CoverageTitle,
		Eyebrow: eyebrow,
		Summary: coverage.Summarize(domains),
	})); err != nil {
		return nil, err
	}

	if len(cfg.LandingBullets) > 0 || cfg.Images["landing"] != "" {
		title := cfg.LandingTitle
		if title == "" {
			title = messages.DeckDefaultLandingTitle
		}
		if err := b.add(r.RenderScreenshot(pres, slides.Screenshot{
			Title:     title,
			Eyebrow:   customer,
			ImagePath: p.ImagePath("landing"),
			Bullets:   cfg.LandingBullets,
		})); err != nil {
			return nil, err
		}
	}

	for _, d := range domains {
		if err := b.add(r.RenderDomain(pres, slides.DomainTable{
			Title:        d.Name,
			Eyebrow:      customer,
			Description:  d.Description,
			Requirements: d.Requirements,
		})); err != nil {
			return nil, err
		}
	}

	for _, ss := range cfg.ScreenshotSlides {
		if err := screenshotSlide(b, p, ss); err != nil {
			return nil, err
		}
	}

	if h := cfg.Highlight; h != nil {
		title := h.Title
		if title == "" {
			title = messages.DeckDefaultHighlightTitle
		}
		if err := b.add(r.RenderDomain(pres, slides.DomainTable{
			Title:        title,
			Eyebrow:      customer,
			Description:  h.Eyebrow,
			Requirements: h.Rows(),
		})); err != nil {
			return nil, err
		}
	}

	if err := b.add(r.Render(pres, slides.ClosingSpec{Message: cfg.ClosingMessage, Contact: cfg.Contact})); err != nil {
		return nil, err
	}
	return b.finish()
}

func screenshotSlide(b *build, p *profile.Profile, ss profile.ScreenshotSlide) error {
	eyebrow := ss.Eyebrow
	if eyebrow == "" {
		eyebrow = p.Config.Customer
	}
	switch ss.Type {
	case profile.ScreenshotTwoImage:
		return b.add(b.renderer.RenderScreenshotPair(b.pres, slides.ScreenshotPair{
			Title:        ss.Title,
			Eyebrow:      eyebrow,
			LeftImage:    p.ImagePath(ss.LeftKey),
			LeftCaption:  ss.LeftCaption,
			RightImage:   p.ImagePath(ss.RightKey),
			RightCaption: ss.RightCaption,
		}))
	case profile.ScreenshotSingle:
		return b.add(b.renderer.RenderScreenshot(b.pres, slides.Screenshot{
			Title:     ss.Title,
			Eyebrow:   eyebrow,
			ImagePath: p.ImagePath(ss.ImgKey),
			Bullets:   ss.Bullets,
		}))
	default:
		w := warnings.Warning{
			Code:    warnings.CodeScreenshotTypeUnknown,
			Subject: ss.Title,
			Message: fmt.Sprintf(messages.DeckScreenshotUnknownFmt, ss.Type),
			Fix:     messages.DeckScreenshotUnknownFix,
			Source:  warnings.SourceConfig,
		}
		warnings.Log(b.logger, []warnings.Warning{w})
		b.warns = append(b.warns, w)
		return nil
	}
}
