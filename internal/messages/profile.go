package messages

// Profile messages: discovery, scaffolding, and per-profile config.
const (
	ProfileNotFoundFmt        = "%w: profile %q not found in %s (available: %s)"
	ProfileNotFoundHintFmt    = "%w: profile %q not found in %s (did you mean %q?)"
	ProfileNoneAvailable      = "none"
	ProfileConfigMissingFmt   = "%w: profile %s has no config.toml or config.yaml"
	ProfileReadFailedFmt      = "read profile config %s: %w"
	ProfileInvalidFmt         = "%w: invalid profile config %s: %v"
	ProfileUnknownKeysFmt     = "%w: %s: unrecognized profile keys: %v"
	ProfileValidationFmt      = "%w: %s: %v"
	ProfileExistsFmt          = "profile directory already exists: %s"
	ProfileNameEmpty          = "profile name must not be empty"
	ProfileNameInvalidFmt     = "profile name %q must not contain path separators"
	ProfileCreateFailedFmt    = "create profile %s: %w"
	ProfileEncodeFailedFmt    = "encode profile config: %w"
	ProfileListFailedFmt      = "list profiles in %s: %w"
	ProfileTemplateMissingFmt = "%w: profile %s has no template; set template in %s"
	ProfileOverrideUnknownFmt = "unknown profile override %q (valid: %s)"
	ProfileOverrideHintFmt    = "unknown profile override %q (did you mean %q?)"
	ProfileOverrideInvalidFmt = "invalid override %q (want key=value)"
	ProfileReadyStatus        = "✅ Ready"
	ProfileNoRequirements     = "⚠️ No requirements.json"
	ProfileBrokenFmt          = "❌ %v"
	ProfileListLineFmt        = "- %s · %s (%s) [%s]"
	ProfileListHeader         = "Available profiles:"
	ProfileListEmptyFmt       = "No profiles found under %s."
	ProfileDiffCurrentFmt     = "%s (current)"
	ProfileDiffParsedFmt      = "%s (parsed)"
	ProfileDiffNoChanges      = "no changes"
	ProfileDefaultDeckTitle   = "AI Observability"
	ProfileDefaultSubtitleFmt = "AI OBSERVABILITY · %s · %d"
	ProfileDefaultContact     = "Prepared by the SE Team"
	ProfileDefaultClosing     = "One Platform. Every AI Signal."
	ProfileDefaultOutputFmt   = "%s_deck.pptx"
	ProfileScaffoldedFmt      = "Profile scaffolded: %s\n\nCreated files:\n- %s\n- %s\n\nNext steps:\n1. Add requirements: run `deck parse-sheet FILE --profile %s --apply`\n2. Edit config.toml: set layout_indices for your template\n3. Build: run `deck build --profile %s`"
)
