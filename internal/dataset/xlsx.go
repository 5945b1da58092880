package dataset

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

type xlsxLoader struct{}

func (xlsxLoader) CanLoad(path string) bool {
	return hasExt(path, ".xlsx", ".xlsm")
}

func (xlsxLoader) Load(path string, opt LoadOptions) (*Dataset, error) {
	return LoadXLSX(path, opt)
}

// LoadXLSX reads one worksheet; its first row is the header.
// Sheet selection: opt.SheetName, else the 1-based opt.SheetIndex, else the first sheet.
func LoadXLSX(path string, opt LoadOptions) (*Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &InputFormatError{Path: path, Err: fmt.Errorf("open xlsx: %w", err)}
	}
	defer f.Close()

	sheet, err := pickSheet(f.GetSheetList(), opt, filepath.Base(path))
	if err != nil {
		return nil, &InputFormatError{Path: path, Err: err}
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, &InputFormatError{Path: path, Err: fmt.Errorf("read sheet %q: %w", sheet, err)}
	}
	// Rows without cells are skipped like empty CSV lines; rows of blank cells are kept.
	kept := rows[:0]
	for _, r := range rows {
		if len(r) > 0 {
			kept = append(kept, r)
		}
	}
	if len(kept) == 0 {
		return nil, &InputFormatError{Path: path, Err: errors.New("no columns to parse")}
	}
	header, body := kept[0], kept[1:]
	width := len(header)
	for _, r := range body {
		if len(r) > width {
			width = len(r)
		}
	}
	// Cells right of the header get "Unnamed: <i>" columns.
	if width > len(header) {
		header = append(append([]string(nil), header...), make([]string, width-len(header))...)
	}
	ds, err := fromRecords(filepath.Base(path), header, body, newInferrer(opt.MissingValues))
	if err != nil {
		return nil, &InputFormatError{Path: path, Err: err}
	}
	return ds, nil
}

func pickSheet(sheets []string, opt LoadOptions, book string) (string, error) {
	if len(sheets) == 0 {
		return "", errors.New("workbook has no sheets")
	}
	if opt.SheetName != "" {
		for _, s := range sheets {
			if strings.EqualFold(s, opt.SheetName) {
				return s, nil
			}
		}
		return "", fmt.Errorf("sheet '%s' not found in workbook '%s'; available sheets: %s",
			opt.SheetName, book, strings.Join(sheets, ", "))
	}
	idx := opt.SheetIndex
	if idx <= 0 {
		idx = 1
	}
	if idx > len(sheets) {
		return "", fmt.Errorf("sheet index %d out of range; workbook '%s' has %d sheets", idx, book, len(sheets))
	}
	return sheets[idx-1], nil
}
