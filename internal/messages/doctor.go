package messages

// Doctor messages for health checks.
const (
	DoctorUse   = "doctor"
	DoctorShort = "Check config, profiles, and templates for problems"

	DoctorHealthCheckFmt = "🏥 Checking deck-builder setup (config: %s)\n\n"

	DoctorCheckNameConfig       = "Config"
	DoctorCheckNameProfilesDir  = "Profiles"
	DoctorCheckNameTemplate     = "Template"
	DoctorCheckNameProfile      = "Profile"
	DoctorCheckNameRequirements = "Requirements"

	DoctorConfigMissingFmt           = "no config file at %s; using defaults"
	DoctorConfigMissingRecommend     = "Create config.toml to set profiles_dir, default_template, and theme colors."
	DoctorConfigLoadedFmt            = "loaded %s"
	DoctorConfigLoadFailedFmt        = "failed to load config: %v"
	DoctorConfigLoadRecommend        = "Fix the TOML syntax in config.toml."
	DoctorConfigLoadLenientRecommend = "Fix the listed keys; remaining checks use the values that did load."

	DoctorProfilesDirMissingFmt    = "profiles directory %s does not exist"
	DoctorProfilesDirRecommend     = "Run `deck profiles new NAME --template T` to create the first profile."
	DoctorProfilesDirNotDirFmt     = "%s exists but is not a directory"
	DoctorProfilesDirNotDirFix     = "Point profiles_dir at a directory."
	DoctorProfilesFoundFmt         = "%d profile(s) in %s"
	DoctorProfilesListFailedFmt    = "failed to list profiles: %v"
	DoctorProfileBrokenFmt         = "%s: %v"
	DoctorProfileBrokenRecommend   = "Fix the profile config; `deck profiles show NAME` prints the full error."
	DoctorProfileOKFmt             = "%s: %s"
	DoctorRequirementsMissingFmt   = "%s: no requirements.json yet"
	DoctorRequirementsMissingFix   = "Run `deck parse-sheet FILE --profile NAME --apply`."
	DoctorRequirementsInvalidFmt   = "%s: %v"
	DoctorRequirementsInvalidFix   = "Regenerate requirements.json from the source spreadsheet."
	DoctorRequirementsOKFmt        = "%s: %d domains, %d requirements"
	DoctorTemplateUnsetFmt         = "%s: no template configured"
	DoctorTemplateUnsetRecommend   = "Set template in the profile config or default_template in config.toml."
	DoctorTemplateFailedFmt        = "%s: %v"
	DoctorTemplateFailedRecommend  = "Use an unencrypted .pptx or .potx that PowerPoint opens cleanly."
	DoctorTemplateOKFmt            = "%s: %d layouts, roles resolve"
	DoctorTemplateWarnFmt          = "%s: %d layouts, %d layout warning(s)"
	DoctorTemplateWarnRecommendFmt = "Run `deck inspect %s` and set layout_indices to match this template."
	DoctorDefaultTemplateLabel     = "default_template"

	DoctorStatusOKLabel        = "[OK]  "
	DoctorStatusWarnLabel      = "[WARN]"
	DoctorStatusFailLabel      = "[FAIL]"
	DoctorResultLineFmt        = "%s %-13s %s\n"
	DoctorRecommendationPrefix = "       💡 "
	DoctorRecommendationIndent = "          "
	DoctorFailureSummary       = "\n❌ Some checks failed. Fix the issues above before building."
	DoctorFailureError         = "doctor checks failed"
	DoctorSuccessSummary       = "\n✅ All checks passed. Ready to build decks."
)
