package spreadsheet

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const defaultSheet = "Sheet1"

// ContentType is the media type of an .xlsx workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Table is a single sheet: a header row followed by data rows.
type Table struct {
	Sheet  string
	Header []string
	Rows   [][]any
}

// Write renders t as an .xlsx workbook to w.
func Write(w io.Writer, t Table) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := t.Sheet
	if sheet == "" {
		sheet = defaultSheet
	}
	if sheet != defaultSheet {
		if err := f.SetSheetName(defaultSheet, sheet); err != nil {
			return fmt.Errorf("rename sheet: %w", err)
		}
	}

	header := make([]any, len(t.Header))
	for i, h := range t.Header {
		header[i] = h
	}
	if err := setRow(f, sheet, 1, header); err != nil {
		return err
	}
	for i, row := range t.Rows {
		if err := setRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("cell name: %w", err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("set row %d: %w", row, err)
	}
	return nil
}
