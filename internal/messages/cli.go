package messages

// CLI command text and user-facing output for cmd/deck.
const (
	VersionTemplate  = "{{.Version}}\n"
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"

	RootUse   = "deck"
	RootShort = "Build branded slide decks from templates and requirement spreadsheets"
	RootLong  = `deck assembles branded PPTX decks.

It sanitizes a corporate template, resolves its layouts, and renders slides
either from a list of slide specs (deck render) or from a customer profile
with its requirements (deck build).`
	RootConfigFlagUsage  = "path to config.toml (default $DECK_CONFIG or ~/.deck-builder/config.toml)"
	RootVerboseFlagUsage = "log at debug level"

	BuildUse             = "build"
	BuildShort           = "Build a profile's deck"
	BuildProfileFlag     = "profile name"
	BuildOutputFlag      = "output path (defaults to the profile's output setting)"
	BuildSetFlag         = "override a profile setting for this build (key=value, repeatable)"
	BuildProfileRequired = "--profile is required; run `deck profiles list` to see profiles"
	BuildRequirementsFmt = "%w (run `deck parse-sheet FILE --profile %s --apply` first)"
	BuildDoneFmt         = "✅ Deck built: %s\n"
	BuildCountsFmt       = "   %d domains, %d requirements\n"

	RenderUse              = "render"
	RenderShort            = "Render a deck from a JSON list of slide specs"
	RenderTemplateFlag     = "template .pptx or .potx (defaults to default_template)"
	RenderSlidesFlag       = "JSON file holding an array of slide specs"
	RenderOutputFlag       = "output .pptx path"
	RenderLayoutFlag       = "layout override for this build (role=index, repeatable)"
	RenderTemplateRequired = "--template is required when default_template is not configured"
	RenderSlidesRequired   = "--slides is required"
	RenderOutputRequired   = "--output is required"
	RenderReadSlidesFmt    = "%w: read slide specs %s: %v"
	RenderParseSlidesFmt   = "%w: parse slide specs %s: %v"

	ParseSheetUse           = "parse-sheet FILE"
	ParseSheetShort         = "Extract requirements from a spreadsheet"
	ParseSheetOutputFlag    = "write the parsed requirements JSON to this path"
	ParseSheetProfileFlag   = "compare against this profile's requirements"
	ParseSheetApplyFlag     = "save the parsed requirements into the profile"
	ParseSheetApplyNeedsPro = "--apply needs --profile"
	ParseSheetTotalsFmt     = "%d domains, %d requirements\n"
	ParseSheetSavedFmt      = "Saved %s\n"
	ParseSheetApplyHint     = "Re-run with --apply to save these requirements into the profile."

	ProfilesUse        = "profiles"
	ProfilesShort      = "List, show, and create customer profiles"
	ProfilesListUse    = "list"
	ProfilesListShort  = "List profiles and their readiness"
	ProfilesShowUse    = "show NAME"
	ProfilesShowShort  = "Show a profile's settings and requirements summary"
	ProfilesNewUse     = "new [NAME]"
	ProfilesNewShort   = "Scaffold a new profile"
	ProfilesNewTplFlag = "template .pptx or .potx for the profile"
	ProfilesNewTitle   = "deck title"
	ProfilesNewShots   = "directory holding screenshot images"
	ProfilesNewMissing = "profile name and --template are required (or run in a terminal to be prompted)"
	ProfilesShowDirFmt = "Directory: %s\nConfig:    %s\nTemplate:  %s\nOutput:    %s\n\n"

	InspectUse         = "inspect TEMPLATE"
	InspectShort       = "List a template's slide layouts and the roles mapped to them"
	InspectLayoutsFlag = "list slide layouts"
	InspectSlidesFlag  = "list the template's existing slides"
	InspectLayoutsHdr  = "Layouts:"
	InspectLayoutFmt   = "  %2d  %s%s\n"
	InspectRolesFmt    = "  ← %s"
	InspectSlidesHdr   = "Slides:"
	InspectSlideFmt    = "  %2d  [%s] %s\n"

	ServeUse   = "serve"
	ServeShort = "Serve the deck tools over MCP stdio"

	WarningsHeaderFmt = "\n%d warning(s):\n"
)
