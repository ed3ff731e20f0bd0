package spreadsheet

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"

	"github.com/conn-castle/deck-builder/internal/deckerr"
	"github.com/conn-castle/deck-builder/internal/messages"
)

// Workbook is the read surface the extractor needs.
type Workbook interface {
	// Sheets returns sheet names in workbook order.
	Sheets() []string
	// Rows returns the cell text of a sheet, row by row. Rows may be ragged.
	Rows(sheet string) ([][]string, error)
}

// Open opens an .xlsx/.xlsm, legacy .xls, or .csv file. The returned close
// function releases the underlying file and is never nil.
func Open(path string) (Workbook, func() error, error) {
	noop := func() error { return nil }
	if _, err := os.Stat(path); err != nil {
		return nil, noop, fmt.Errorf(messages.SheetOpenFailedFmt, deckerr.ErrInputNotFound, path, err)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx", ".xlsm":
		f, err := excelize.OpenFile(path)
		if err != nil {
			return nil, noop, fmt.Errorf(messages.SheetOpenFailedFmt, deckerr.ErrFormat, path, err)
		}
		return excelBook{f: f}, f.Close, nil
	case ".xls":
		wb, err := xls.Open(path, "utf-8")
		if err != nil {
			return nil, noop, fmt.Errorf(messages.SheetOpenFailedFmt, deckerr.ErrFormat, path, err)
		}
		return legacyBook{wb: wb}, noop, nil
	case ".csv":
		book, err := readCSV(path)
		if err != nil {
			return nil, noop, fmt.Errorf(messages.SheetOpenFailedFmt, deckerr.ErrFormat, path, err)
		}
		return book, noop, nil
	default:
		return nil, noop, fmt.Errorf(messages.SheetFormatUnsupportedFmt, deckerr.ErrFormat, ext, path)
	}
}

type excelBook struct {
	f *excelize.File
}

func (b excelBook) Sheets() []string { return b.f.GetSheetList() }

func (b excelBook) Rows(sheet string) ([][]string, error) { return b.f.GetRows(sheet) }

type legacyBook struct {
	wb *xls.WorkBook
}

func (b legacyBook) Sheets() []string {
	names := make([]string, 0, b.wb.NumSheets())
	for i := 0; i < b.wb.NumSheets(); i++ {
		if s := b.wb.GetSheet(i); s != nil {
			names = append(names, s.Name)
		}
	}
	return names
}

func (b legacyBook) Rows(sheet string) ([][]string, error) {
	for i := 0; i < b.wb.NumSheets(); i++ {
		s := b.wb.GetSheet(i)
		if s == nil || s.Name != sheet {
			continue
		}
		rows := make([][]string, 0, int(s.MaxRow)+1)
		for r := 0; r <= int(s.MaxRow); r++ {
			row := s.Row(r)
			if row == nil {
				rows = append(rows, nil)
				continue
			}
			var cells []string
			for c := 0; c <= row.LastCol(); c++ {
				cells = append(cells, row.Col(c))
			}
			for len(cells) > 0 && cells[len(cells)-1] == "" {
				cells = cells[:len(cells)-1]
			}
			rows = append(rows, cells)
		}
		return rows, nil
	}
	return nil, fmt.Errorf(messages.SheetNotFoundFmt, sheet)
}

// csvBook is a single-sheet workbook named after the file.
type csvBook struct {
	name string
	rows [][]string
}

// byteOrderMark is written by Excel's "CSV UTF-8" export.
const byteOrderMark = "\ufeff"

func readCSV(path string) (csvBook, error) {
	f, err := os.Open(path)
	if err != nil {
		return csvBook{}, err
	}
	defer func() { _ = f.Close() }()
	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	rows, err := r.ReadAll()
	if err != nil {
		return csvBook{}, err
	}
	if len(rows) > 0 && len(rows[0]) > 0 {
		rows[0][0] = strings.TrimPrefix(rows[0][0], byteOrderMark)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return csvBook{name: name, rows: rows}, nil
}

func (b csvBook) Sheets() []string { return []string{b.name} }

func (b csvBook) Rows(string) ([][]string, error) { return b.rows, nil }
