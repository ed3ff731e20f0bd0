package coverage

import (
	"fmt"
	"math"
	"strings"

	"github.com/conn-castle/deck-builder/internal/content"
	"github.com/conn-castle/deck-builder/internal/messages"
)

// Row holds per-state requirement counts for one domain, or for the whole deck.
type Row struct {
	Name      string
	Total     int
	Available int
	Partial   int
	Planned   int
}

// Summary is the per-domain coverage table plus its computed total row.
type Summary struct {
	Rows  []Row
	Total Row
}

// Percent returns n as a rounded percentage of r.Total, or 0 when the row is empty.
func (r Row) Percent(n int) int {
	if r.Total == 0 {
		return 0
	}
	return int(math.Round(float64(n) * 100 / float64(r.Total)))
}

// Count classifies reqs into a Row named name.
func Count(name string, reqs []content.Requirement) Row {
	row := Row{Name: name, Total: len(reqs)}
	for _, req := range reqs {
		switch Classify(req.Status) {
		case StateAvailable:
			row.Available++
		case StatePartial:
			row.Partial++
		case StatePlanned:
			row.Planned++
		}
	}
	return row
}

// Summarize builds one row per domain in input order. The total row is the sum of the domain rows.
func Summarize(domains []content.Domain) Summary {
	summary := Summary{
		Rows:  make([]Row, 0, len(domains)),
		Total: Row{Name: messages.DeckCoverageTotalLabel},
	}
	for _, d := range domains {
		row := Count(d.Name, d.Requirements)
		summary.Rows = append(summary.Rows, row)
		summary.Total.Total += row.Total
		summary.Total.Available += row.Available
		summary.Total.Partial += row.Partial
		summary.Total.Planned += row.Planned
	}
	return summary
}

// DomainLine formats a one-line count breakdown for a row.
func DomainLine(r Row) string {
	return fmt.Sprintf(messages.CoverageDomainLineFmt, r.Name, r.Total, r.Available, r.Partial, r.Planned)
}

// Report renders a plain-text coverage report headed by title.
func Report(title string, s Summary) string {
	if len(s.Rows) == 0 {
		return fmt.Sprintf(messages.CoverageEmptyFmt, title)
	}
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, messages.CoverageHeaderFmt, title)
	_, _ = fmt.Fprintf(&b, messages.CoverageTotalsFmt, s.Total.Total, len(s.Rows))
	_, _ = fmt.Fprintf(&b, messages.CoverageAvailableFmt, s.Total.Available, s.Total.Percent(s.Total.Available))
	_, _ = fmt.Fprintf(&b, messages.CoveragePartialFmt, s.Total.Partial)
	_, _ = fmt.Fprintf(&b, messages.CoveragePlannedFmt, s.Total.Planned)
	b.WriteString(messages.CoverageDomainsHeader)
	for _, row := range s.Rows {
		b.WriteString("\n")
		b.WriteString(DomainLine(row))
	}
	return b.String()
}
