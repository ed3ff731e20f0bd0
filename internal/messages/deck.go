package messages

// Deck pipeline messages: container handling, layouts, rendering, and assembly.
const (
	// PptxOpenFailedFmt formats unreadable template errors.
	PptxOpenFailedFmt           = "%w: open %s: %v"
	PptxNotArchiveFmt           = "%w: %s is not a valid OOXML archive: %v"
	PptxReadPartFailedFmt       = "%w: read part %s in %s: %v"
	PptxParsePartFailedFmt      = "%w: parse part %s: %v"
	PptxMissingPartFmt          = "%w: %s is missing required part %s"
	PptxTemplateTypeMissingFmt  = "%w: %s declares no template content type to convert"
	PptxSlidesRemainFmt         = "%w: %d slides remain after sanitizing %s"
	PptxNoMasterFmt             = "%w: %s has no slide master"
	PptxLayoutRelMissingFmt     = "%w: layout relationship %s missing from %s"
	PptxSlideListMissingFmt     = "%w: presentation part has no slide size element to anchor the slide list"
	PptxImageReadFailedFmt      = "%w: read image %s: %v"
	PptxImageTypeUnsupportedFmt = "%w: unsupported image type %q for %s"
	PptxSerializePartFailedFmt  = "serialize part %s: %w"
	PptxWriteArchiveFailedFmt   = "write archive: %w"
	PptxWriteFileFailedFmt      = "write %s: %w"
	PptxCreateDirFailedFmt      = "create output directory %s: %w"

	LayoutNoneFmt              = "%w: template %s has no slide layouts"
	LayoutOutOfRangeFmt        = "layout_indices.%s=%d out of range (template has %d layouts); using 0"
	LayoutOutOfRangeFix        = "Set layout_indices for this template; run `deck inspect --layouts` to list them."
	LayoutRoleUnknownFmt       = "unknown layout role %q ignored (valid: %s)"
	LayoutRoleUnknownFix       = "Use one of the documented layout roles."
	LayoutAssignmentInvalidFmt = "invalid layout assignment %q (want role=index)"
	SlidesUnknownTypeFmt       = "%w: %q (valid types: %s)"
	SlidesUnknownTypeHintFmt   = "%w: %q (did you mean %q? valid types: %s)"
	SlidesDecodeFailedFmt      = "%w: slide %d (%s): %v"
	SlidesRenderFailedFmt      = "render slide %d (%s): %w"
	SlidesImageNotFoundFmt     = "image not found: %s"
	SlidesImageNotFoundFix     = "Check the image path or the profile's screenshots_dir and images mapping."
	SlidesTypeFieldInvalid     = "type must be a string"
	SlidesScalarExpectedFmt    = "expected a text value, got %s"

	DeckBuildStartedFmt        = "building deck from %s"
	DeckSummaryFmt             = "%s (%.1f MB, %d slides)"
	DeckScreenshotUnknownFmt   = "unknown screenshot slide type %q skipped"
	DeckScreenshotUnknownFix   = "Use screenshot slide type two_image or single."
	DeckDefaultTitle           = "AI Observability"
	DeckDefaultCoverageTitle   = "AI Observability Coverage Summary"
	DeckDefaultLandingTitle    = "AI Observability · Application View"
	DeckDefaultHighlightTitle  = "GCC / Regulatory Highlights"
	DeckDefaultClosingMessage  = "Thank you"
	DeckDefaultAgendaTitle     = "Agenda"
	DeckDefaultBrand           = "dynatrace"
	DeckCoverageTotalLabel     = "TOTAL"
	DeckRequirementsOfTotalFmt = "of %d requirements"
	DeckBadgeNowFmt            = "✅  %d Now"
	DeckBadgePartialFmt        = "⚡  %d Partial"
	DeckBadgeRoadmapFmt        = "\U0001f5fa  %d Roadmap"
	DeckCoverageHeaderDomain   = "Domain"
	DeckCoverageHeaderTotal    = "Total"
	DeckCoverageHeaderNow      = "✅ Now"
	DeckCoverageHeaderPartial  = "⚡ Partial"
	DeckCoverageHeaderRoadmap  = "\U0001f5fa Roadmap"
	DeckTableHeaderRequirement = "Requirement"
	DeckTableHeaderDescription = "Description"
	DeckTableHeaderStatus      = "Status"
	DeckTableHeaderSignal      = "Signal"
	DeckAgendaItemFmt          = "%s  %s"
	DeckTotalCellFmt           = "%d (%d%%)"
)
