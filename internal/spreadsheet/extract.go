// Package spreadsheet recovers requirement domains from loosely structured workbooks.
package spreadsheet

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/conn-castle/deck-builder/internal/content"
	"github.com/conn-castle/deck-builder/internal/coverage"
	"github.com/conn-castle/deck-builder/internal/deckerr"
	"github.com/conn-castle/deck-builder/internal/messages"
	"github.com/conn-castle/deck-builder/internal/warnings"
)

type role int

const (
	roleRequirement role = iota
	roleDescription
	roleStatus
	roleSignal
	roleDomain
)

// aliases maps lower-case header text to a column role.
var aliases = buildAliases(map[role][]string{
	roleRequirement: {"requirement", "req", "requirement name", "name", "capability"},
	roleDescription: {"description", "desc", "detail", "details", "notes", "note"},
	roleStatus:      {"status", "coverage", "availability", "state", "response"},
	roleSignal:      {"signal", "signal type", "telemetry", "data type", "type"},
	roleDomain:      {"domain", "domain name", "category", "group", "area"},
})

// skippedSheets are metadata sheet names, compared trimmed and lower-cased.
var skippedSheets = map[string]bool{
	"summary":      true,
	"overview":     true,
	"metadata":     true,
	"readme":       true,
	"instructions": true,
	"cover":        true,
}

func buildAliases(in map[role][]string) map[string]role {
	out := map[string]role{}
	for r, names := range in {
		for _, n := range names {
			out[n] = r
		}
	}
	return out
}

// Result is the outcome of an extraction.
type Result struct {
	Domains  []content.Domain
	Warnings []warnings.Warning
}

type row struct {
	req    content.Requirement
	domain string
}

type sheetRows struct {
	name string
	rows []row
}

// ExtractFile opens path and extracts its domains.
func ExtractFile(path string, logger *zap.Logger) (Result, error) {
	wb, closeFn, err := Open(path)
	if err != nil {
		return Result{}, err
	}
	defer func() { _ = closeFn() }()
	return Extract(wb, path, logger)
}

// Extract converts every usable sheet of wb into domains. source names the
// workbook in errors. It fails only when no sheet yields a requirement row.
func Extract(wb Workbook, source string, logger *zap.Logger) (Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	var res Result
	var productive []sheetRows
	for _, sheet := range wb.Sheets() {
		if skippedSheets[strings.ToLower(strings.TrimSpace(sheet))] {
			logger.Debug("skipping metadata sheet", zap.String("sheet", sheet))
			continue
		}
		raw, err := wb.Rows(sheet)
		if err != nil {
			res.Warnings = append(res.Warnings, warnings.Warning{
				Code:    warnings.CodeSheetUnreadable,
				Subject: sheet,
				Message: fmt.Sprintf(messages.SheetUnreadableFmt, sheet, err),
				Fix:     messages.SheetUnreadableFix,
				Source:  warnings.SourceContent,
			})
			continue
		}
		rows := parseSheet(raw)
		logger.Debug("parsed sheet", zap.String("sheet", sheet), zap.Int("rows", len(rows)))
		if len(rows) > 0 {
			productive = append(productive, sheetRows{name: sheet, rows: rows})
		}
	}
	warnings.Log(logger, res.Warnings)
	if len(productive) == 0 {
		return res, fmt.Errorf(messages.SheetNoRowsFmt, deckerr.ErrExtraction, source)
	}

	if len(productive) == 1 && hasDomainValues(productive[0].rows) {
		res.Domains = groupByDomain(productive[0].rows)
		return res, nil
	}
	for i, s := range productive {
		reqs := make([]content.Requirement, 0, len(s.rows))
		for _, r := range s.rows {
			reqs = append(reqs, r.req)
		}
		res.Domains = append(res.Domains, content.Domain{
			Name:         fmt.Sprintf(messages.SheetDomainNameFmt, i+1, len(productive), s.name),
			Description:  fmt.Sprintf(messages.SheetDomainDescriptionFmt, len(reqs)),
			Requirements: reqs,
		})
	}
	return res, nil
}

// headerColumns returns the column of each role when cells name at least two distinct roles.
// A later column naming the same role replaces an earlier one.
func headerColumns(cells []string) (map[role]int, bool) {
	cols := map[role]int{}
	for i, cell := range cells {
		if r, ok := aliases[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(cell, byteOrderMark)))]; ok {
			cols[r] = i
		}
	}
	return cols, len(cols) >= 2
}

func parseSheet(raw [][]string) []row {
	var cols map[role]int
	var out []row
	for _, cells := range raw {
		if cols == nil {
			if found, ok := headerColumns(cells); ok {
				cols = found
			}
			continue
		}
		get := func(r role) string {
			i, ok := cols[r]
			if !ok || i >= len(cells) {
				return ""
			}
			return strings.TrimSpace(cells[i])
		}
		name := get(roleRequirement)
		if name == "" {
			continue
		}
		out = append(out, row{
			req: content.Requirement{
				Name:        name,
				Description: get(roleDescription),
				Status:      coverage.Normalize(get(roleStatus)),
				Signal:      get(roleSignal),
			},
			domain: get(roleDomain),
		})
	}
	return out
}

func hasDomainValues(rows []row) bool {
	for _, r := range rows {
		if r.domain != "" {
			return true
		}
	}
	return false
}

// groupByDomain groups rows by domain value in first-seen order.
func groupByDomain(rows []row) []content.Domain {
	index := map[string]int{}
	var out []content.Domain
	for _, r := range rows {
		name := r.domain
		if name == "" {
			name = messages.SheetUncategorized
		}
		i, ok := index[name]
		if !ok {
			i = len(out)
			index[name] = i
			out = append(out, content.Domain{Name: name, Requirements: []content.Requirement{}})
		}
		out[i].Requirements = append(out[i].Requirements, r.req)
	}
	for i := range out {
		out[i].Description = fmt.Sprintf(messages.SheetDomainDescriptionFmt, len(out[i].Requirements))
	}
	return out
}
