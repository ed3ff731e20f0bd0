// Package deck assembles complete decks: sanitize the template, resolve layouts, render, serialize.
package deck

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/conn-castle/deck-builder/internal/brand"
	"github.com/conn-castle/deck-builder/internal/config"
	"github.com/conn-castle/deck-builder/internal/layout"
	"github.com/conn-castle/deck-builder/internal/messages"
	"github.com/conn-castle/deck-builder/internal/pptx"
	"github.com/conn-castle/deck-builder/internal/slides"
	"github.com/conn-castle/deck-builder/internal/warnings"
)

// Assembler builds decks. It holds no per-build state, so one value may serve concurrent builds.
type Assembler struct {
	theme         brand.Theme
	layoutIndices map[string]int
	logger        *zap.Logger
}

// Option configures an Assembler.
type Option func(*Assembler)

// WithTheme sets the base theme. Profiles may customize it further.
func WithTheme(t brand.Theme) Option {
	return func(a *Assembler) { a.theme = t }
}

// WithLayoutIndices sets tool-wide layout overrides. Per-build overrides win.
func WithLayoutIndices(indices map[string]int) Option {
	return func(a *Assembler) { a.layoutIndices = indices }
}

// WithLogger sets the logger. Nil means no logging.
func WithLogger(l *zap.Logger) Option {
	return func(a *Assembler) {
		if l != nil {
			a.logger = l
		}
	}
}

// New returns an Assembler with the default theme.
func New(opts ...Option) *Assembler {
	a := &Assembler{theme: brand.Default(), logger: zap.NewNop()}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Result is a built deck held in memory until written.
type Result struct {
	BuildID  string
	Slides   int
	Warnings []warnings.Warning
	pres     *pptx.Presentation
}

// Bytes serializes the deck.
func (r *Result) Bytes() ([]byte, error) {
	return r.pres.Bytes()
}

// WriteFile saves the deck to path and returns "<path> (<size> MB, <n> slides)".
func (r *Result) WriteFile(path string) (string, error) {
	data, err := r.pres.Save(path)
	if err != nil {
		return "", err
	}
	return Summary(path, len(data), r.Slides), nil
}

// Summary formats the one-line build summary.
func Summary(path string, size, slideCount int) string {
	return fmt.Sprintf(messages.DeckSummaryFmt, path, float64(size)/1_048_576, slideCount)
}

// build is the state of one build in progress.
type build struct {
	id       string
	pres     *pptx.Presentation
	renderer *slides.Renderer
	logger   *zap.Logger
	warns    []warnings.Warning
}

// start sanitizes the template and resolves layouts for one build.
func (a *Assembler) start(templatePath string, theme brand.Theme, overrides map[string]int) (*build, error) {
	id := uuid.NewString()
	logger := a.logger.With(zap.String("build_id", id))
	logger.Info(fmt.Sprintf(messages.DeckBuildStartedFmt, templatePath))

	pres, err := pptx.Sanitize(templatePath)
	if err != nil {
		return nil, err
	}
	layouts, warns, err := layout.Resolve(pres, config.MergeLayoutIndices(a.layoutIndices, overrides))
	if err != nil {
		return nil, err
	}
	warnings.Log(logger, warns)
	return &build{
		id:       id,
		pres:     pres,
		renderer: slides.NewRenderer(theme, layouts, logger),
		logger:   logger,
		warns:    warns,
	}, nil
}

func (b *build) add(_ *pptx.Slide, warns []warnings.Warning, err error) error {
	b.warns = append(b.warns, warns...)
	return err
}

func (b *build) finish() (*Result, error) {
	n, err := b.pres.SlideCount()
	if err != nil {
		return nil, err
	}
	b.logger.Info("deck assembled", zap.Int("slides", n), zap.Strings("warnings", warnings.Codes(b.warns)))
	return &Result{BuildID: b.id, Slides: n, Warnings: b.warns, pres: b.pres}, nil
}

// BuildSpecDeck renders exactly the given slide specs in order onto the sanitized template.
// Every spec is decoded before the template is opened, so a bad spec produces no output.
func (a *Assembler) BuildSpecDeck(templatePath string, raws []map[string]any, layoutIndices map[string]int) (*Result, error) {
	specs, err := slides.DecodeAll(raws)
	if err != nil {
		return nil, err
	}
	b, err := a.start(templatePath, a.theme, layoutIndices)
	if err != nil {
		return nil, err
	}
	_, warns, err := b.renderer.RenderSpecs(b.pres, specs)
	b.warns = append(b.warns, warns...)
	if err != nil {
		return nil, err
	}
	return b.finish()
}
