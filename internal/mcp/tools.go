package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/conn-castle/deck-builder/internal/content"
	"github.com/conn-castle/deck-builder/internal/coverage"
	"github.com/conn-castle/deck-builder/internal/deck"
	"github.com/conn-castle/deck-builder/internal/deckerr"
	"github.com/conn-castle/deck-builder/internal/messages"
	"github.com/conn-castle/deck-builder/internal/profile"
	"github.com/conn-castle/deck-builder/internal/slides"
	"github.com/conn-castle/deck-builder/internal/spreadsheet"
	"github.com/conn-castle/deck-builder/internal/warnings"
)

type serverRunner func(ctx context.Context, server *mcp.Server) error

// Deps are the services the tools call into.
type Deps struct {
	Assembler *deck.Assembler
	Profiles  profile.Store
	Logger    *zap.Logger
	// NoiseMode filters warnings echoed back to the caller.
	NoiseMode string
}

// RunToolServer starts the deck tool server over stdio.
func RunToolServer(ctx context.Context, version string, deps Deps) error {
	return runToolServer(ctx, version, deps, defaultServerRunner)
}

func runToolServer(ctx context.Context, version string, deps Deps, runner serverRunner) error {
	if runner == nil {
		return fmt.Errorf(messages.McpRunServerFailedFmt, errors.New(messages.McpRunnerNil))
	}
	if err := runner(ctx, NewServer(version, deps)); err != nil {
		return fmt.Errorf(messages.McpRunServerFailedFmt, err)
	}
	return nil
}

// defaultServerRunner runs the server over stdio.
func defaultServerRunner(ctx context.Context, server *mcp.Server) error {
	return server.Run(ctx, &mcp.StdioTransport{})
}

// NewServer registers the six deck tools.
func NewServer(version string, deps Deps) *mcp.Server {
	if deps.Assembler == nil {
		deps.Assembler = deck.New(deck.WithLogger(deps.Logger))
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	t := &tools{deps: deps}
	server := mcp.NewServer(&mcp.Implementation{Name: messages.McpServerName, Version: version}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "build_deck",
		Description: fmt.Sprintf(messages.McpBuildDeckDescription, strings.Join(slides.ValidTypes(), ", ")),
	}, t.buildDeck)
	mcp.AddTool(server, &mcp.Tool{Name: "build_profile_deck", Description: messages.McpBuildProfileDescription}, t.buildProfileDeck)
	mcp.AddTool(server, &mcp.Tool{Name: "list_profiles", Description: messages.McpListProfilesDescription}, t.listProfiles)
	mcp.AddTool(server, &mcp.Tool{Name: "parse_spreadsheet", Description: messages.McpParseSheetDescription}, t.parseSpreadsheet)
	mcp.AddTool(server, &mcp.Tool{Name: "create_profile", Description: messages.McpCreateProfileDesc}, t.createProfile)
	mcp.AddTool(server, &mcp.Tool{Name: "get_requirements", Description: messages.McpGetRequirementsDesc}, t.getRequirements)
	return server
}

type tools struct {
	deps Deps
}

// BuildDeckInput is the build_deck argument object.
type BuildDeckInput struct {
	TemplatePath  string           `json:"template_path" jsonschema:"path to a .pptx or .potx template providing masters and layouts"`
	OutputPath    string           `json:"output_path" jsonschema:"where to write the generated .pptx"`
	Slides        []map[string]any `json:"slides" jsonschema:"slide specs, each with a type field plus type-specific content"`
	LayoutIndices map[string]int   `json:"layout_indices,omitempty" jsonschema:"optional layout overrides: title_center (11), title_content (2), two_img (19)"`
}

// BuildProfileDeckInput is the build_profile_deck argument object.
type BuildProfileDeckInput struct {
	Profile    string            `json:"profile" jsonschema:"profile name; use list_profiles to see options"`
	OutputPath string            `json:"output_path,omitempty" jsonschema:"optional output path; defaults to the profile's output setting"`
	Overrides  map[string]string `json:"overrides,omitempty" jsonschema:"optional profile settings to replace, such as deck_title or closing_message"`
}

// ParseSpreadsheetInput is the parse_spreadsheet argument object.
type ParseSpreadsheetInput struct {
	Path           string `json:"path" jsonschema:"path to the workbook"`
	OutputJSONPath string `json:"output_json_path,omitempty" jsonschema:"optional path to save the parsed requirements JSON"`
}

// CreateProfileInput is the create_profile argument object.
type CreateProfileInput struct {
	Profile        string `json:"profile" jsonschema:"profile name, used as the folder name"`
	TemplatePath   string `json:"template_path" jsonschema:"path to the .pptx or .potx template"`
	DeckTitle      string `json:"deck_title,omitempty" jsonschema:"deck title"`
	ScreenshotsDir string `json:"screenshots_dir,omitempty" jsonschema:"directory holding screenshot images"`
}

// ProfileInput names a profile.
type ProfileInput struct {
	Profile string `json:"profile" jsonschema:"profile name"`
}

// ListProfilesInput takes no arguments.
type ListProfilesInput struct{}

func text(s string) *mcp.CallToolResult {
	return &mcp.CallToolResult{Content: []mcp.Content{&mcp.TextContent{Text: s}}}
}

func (t *tools) warningText(items []warnings.Warning) string {
	shown := warnings.ApplyNoiseControl(items, t.deps.NoiseMode)
	if len(shown) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(messages.McpWarningsHeader)
	for _, w := range shown {
		_, _ = fmt.Fprintf(&b, messages.McpWarningLineFmt, w.Code, w.Message)
	}
	return b.String()
}

func (t *tools) buildDeck(_ context.Context, _ *mcp.CallToolRequest, in BuildDeckInput) (*mcp.CallToolResult, any, error) {
	res, err := t.deps.Assembler.BuildSpecDeck(in.TemplatePath, in.Slides, in.LayoutIndices)
	if err != nil {
		return nil, nil, err
	}
	summary, err := res.WriteFile(in.OutputPath)
	if err != nil {
		return nil, nil, err
	}
	return text(fmt.Sprintf(messages.McpDeckBuiltFmt, summary) + t.warningText(res.Warnings)), nil, nil
}

func (t *tools) buildProfileDeck(_ context.Context, _ *mcp.CallToolRequest, in BuildProfileDeckInput) (*mcp.CallToolResult, any, error) {
	p, err := t.deps.Profiles.Load(in.Profile)
	if err != nil {
		return nil, nil, err
	}
	if err := p.Config.ApplyOverrides(in.Overrides); err != nil {
		return nil, nil, err
	}
	domains, err := p.LoadRequirements()
	if err != nil {
		if errors.Is(err, deckerr.ErrInputNotFound) {
			return nil, nil, fmt.Errorf(messages.McpRequirementsMissingFmt, err)
		}
		return nil, nil, err
	}
	res, err := t.deps.Assembler.BuildProfileDeck(p, domains)
	if err != nil {
		return nil, nil, err
	}
	out := in.OutputPath
	if out == "" {
		out = p.OutputPath()
	}
	summary, err := res.WriteFile(out)
	if err != nil {
		return nil, nil, err
	}
	msg := fmt.Sprintf(messages.McpProfileDeckBuiltFmt, summary, len(domains), content.RequirementCount(domains))
	return text(msg + t.warningText(res.Warnings)), nil, nil
}

func (t *tools) listProfiles(context.Context, *mcp.CallToolRequest, ListProfilesInput) (*mcp.CallToolResult, any, error) {
	list, err := t.deps.Profiles.List()
	if err != nil {
		return nil, nil, err
	}
	return text(profile.Listing(t.deps.Profiles.Root, list)), nil, nil
}

func (t *tools) parseSpreadsheet(_ context.Context, _ *mcp.CallToolRequest, in ParseSpreadsheetInput) (*mcp.CallToolResult, any, error) {
	res, err := spreadsheet.ExtractFile(in.Path, t.deps.Logger)
	if err != nil {
		return nil, nil, err
	}
	head := messages.McpParsedNotSaved
	if in.OutputJSONPath != "" {
		if err := content.Save(in.OutputJSONPath, res.Domains); err != nil {
			return nil, nil, err
		}
		head = fmt.Sprintf(messages.McpParsedSavedFmt, in.OutputJSONPath)
	}
	summary := coverage.Summarize(res.Domains)
	lines := []string{head, "", fmt.Sprintf(messages.McpParsedTotalsFmt, len(summary.Rows), summary.Total.Total), ""}
	for _, row := range summary.Rows {
		lines = append(lines, coverage.DomainLine(row))
	}
	return text(strings.Join(lines, "\n") + t.warningText(res.Warnings)), nil, nil
}

func (t *tools) createProfile(_ context.Context, _ *mcp.CallToolRequest, in CreateProfileInput) (*mcp.CallToolResult, any, error) {
	p, err := t.deps.Profiles.Create(profile.CreateOptions{
		Name:           in.Profile,
		TemplatePath:   in.TemplatePath,
		DeckTitle:      in.DeckTitle,
		ScreenshotsDir: in.ScreenshotsDir,
	})
	if err != nil {
		return nil, nil, err
	}
	return text(profile.CreatedMessage(p)), nil, nil
}

func (t *tools) getRequirements(_ context.Context, _ *mcp.CallToolRequest, in ProfileInput) (*mcp.CallToolResult, any, error) {
	p, err := t.deps.Profiles.Load(in.Profile)
	if err != nil {
		return nil, nil, err
	}
	report, err := p.Report()
	if err != nil {
		return nil, nil, err
	}
	return text(report), nil, nil
}
