package messages

// Workbook extraction messages.
const (
	SheetOpenFailedFmt        = "%w: open workbook %s: %v"
	SheetFormatUnsupportedFmt = "%w: unsupported workbook type %q for %s (want .xlsx, .xlsm, .xls, or .csv)"
	SheetNoRowsFmt            = "%w: no requirement rows found in any sheet of %s"
	SheetUnreadableFmt        = "sheet %q could not be read: %v"
	SheetNotFoundFmt          = "sheet %q not found"
	SheetUnreadableFix        = "Check the sheet for merged or corrupt cells, or export it to a fresh workbook."
	SheetDomainNameFmt        = "Domain %d of %d · %s"
	SheetDomainDescriptionFmt = "%d requirements"
	SheetUncategorized        = "Uncategorized"
	SheetParsedFmt            = "Parsed %d domains, %d requirements from %s"
	SheetWrittenFmt           = "Wrote %s"
)
