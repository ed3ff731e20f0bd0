package messages

// Requirements content, coverage reporting, and theme messages.
const (
	ContentInvalidFmt     = "%w: invalid requirements JSON %s: %v"
	ContentMissingFileFmt = "%w: requirements file %s does not exist"
	ContentReadFailedFmt  = "%w: read requirements %s: %v"
	ContentWriteFailedFmt = "write requirements %s: %w"

	CoverageDomainLineFmt = "- %s: %d reqs (✅ %d · ⚡ %d · 🗺 %d)"
	CoverageEmptyFmt      = "%s: no requirements recorded"
	CoverageHeaderFmt     = "%s Requirements Summary\n\n"
	CoverageTotalsFmt     = "📊 %d total requirements across %d domains\n"
	CoverageAvailableFmt  = "✅ %d available now (%d%%)\n"
	CoveragePartialFmt    = "⚡ %d partially available\n"
	CoveragePlannedFmt    = "🗺 %d on roadmap\n\n"
	CoverageDomainsHeader = "Domains:"

	BrandInvalidColorFmt    = "invalid color %q (want six hex digits such as 00A9E0)"
	BrandUnknownColorKeyFmt = "unknown theme color %q (valid: %s)"

	WarningsNoiseModeInvalidFmt = "warnings.noise_mode %q is not recognized (valid: %s, %s, %s); showing all warnings"
	WarningsNoiseModeInvalidFix = "Set warnings.noise_mode to a supported value in config.toml."
)
