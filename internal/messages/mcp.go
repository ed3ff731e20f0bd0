package messages

// MCP tool server messages.
const (
	McpServerName              = "deck-builder"
	McpRunServerFailedFmt      = "run MCP tool server: %w"
	McpRunnerNil               = "tool server runner is nil"
	McpBuildDeckDescription    = "Build a branded PPTX from slide specs. Each slide has a type plus type-specific fields. Supported types: %s."
	McpBuildProfileDescription = "Build the structured deck for a saved profile from its config and requirements.json."
	McpListProfilesDescription = "List saved profiles and whether each has requirements."
	McpParseSheetDescription   = "Parse a requirements workbook (.xlsx, .xls, .csv) into domains and requirements."
	McpCreateProfileDesc       = "Scaffold a new profile with a config and an empty requirements.json."
	McpGetRequirementsDesc     = "Summarize a profile's requirements: domains, counts, and coverage."
	McpDeckBuiltFmt            = "Deck built: %s"
	McpProfileDeckBuiltFmt     = "Deck built: %s\nDomains: %d\nRequirements: %d"
	McpWarningsHeader          = "\n\nWarnings:"
	McpWarningLineFmt          = "\n- %s: %s"
	McpRequirementsMissingFmt  = "%w\nUse parse_spreadsheet with output_json_path to create it."
	McpParsedSavedFmt          = "Parsed and saved to %s"
	McpParsedNotSaved          = "Parsed (not saved to disk)"
	McpParsedTotalsFmt         = "%d domains, %d requirements total"
)
