// Package warnings carries the non-fatal conditions a build reports alongside its result.
package warnings

import "strings"

// Codes for build warnings.
const (
	CodeLayoutIndexOutOfRange   = "LAYOUT_INDEX_OUT_OF_RANGE"
	CodeLayoutRoleUnknown       = "LAYOUT_ROLE_UNKNOWN"
	CodeImageNotFound           = "IMAGE_NOT_FOUND"
	CodeSheetUnreadable         = "SHEET_UNREADABLE"
	CodeScreenshotTypeUnknown   = "SCREENSHOT_TYPE_UNKNOWN"
	CodeWarningNoiseModeInvalid = "WARNING_NOISE_MODE_INVALID"
)

// Where a warning came from: the template file, the deck content, or configuration.
const (
	SourceTemplate = "template"
	SourceContent  = "content"
	SourceConfig   = "config"
)

const (
	SeverityWarning  = "warning"
	SeverityCritical = "critical"
)

// Warning is a non-fatal condition found during a build. The build continues.
type Warning struct {
	Code    string
	Subject string
	Message string
	Fix     string
	Details []string
	// Source defaults to SourceContent.
	Source string
	// Severity defaults to SeverityWarning.
	Severity string
	// NoiseSuppressible lets the reduce noise mode hide the warning.
	// Critical warnings are never hidden by reduce.
	NoiseSuppressible bool
}

// Critical reports whether w survives every noise mode except quiet.
func (w Warning) Critical() bool {
	return w.severityOrDefault() == SeverityCritical
}

// String renders w as an indented block: a headline, then one labelled line per field.
func (w Warning) String() string {
	var b strings.Builder
	b.WriteString("WARNING ")
	b.WriteString(w.Code)
	b.WriteString(": ")
	b.WriteString(w.Message)
	line := func(label, value string) {
		b.WriteString("\n  ")
		b.WriteString(label)
		b.WriteString(": ")
		b.WriteString(value)
	}
	line("source", w.sourceOrDefault())
	line("severity", w.severityOrDefault())
	if w.Subject != "" {
		line("subject", w.Subject)
	}
	if w.Fix != "" {
		line("fix", w.Fix)
	}
	for _, d := range w.Details {
		line("details", d)
	}
	return b.String()
}

// Codes lists the code of every warning, in order.
func Codes(items []Warning) []string {
	out := make([]string, 0, len(items))
	for _, w := range items {
		out = append(out, w.Code)
	}
	return out
}

func (w Warning) sourceOrDefault() string {
	if w.Source != "" {
		return w.Source
	}
	return SourceContent
}

func (w Warning) severityOrDefault() string {
	if w.Severity != "" {
		return w.Severity
	}
	return SeverityWarning
}
