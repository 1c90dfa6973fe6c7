package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"farmhub/backend/pipeline"

	"github.com/xuri/excelize/v2"
)

// Column is one export column: a header label and an accessor producing the
// cell value for a record.
type Column[T any] struct {
	Label string
	Value func(T) string
}

// WriteCSV serializes the filtered record list with a header row. The csv
// writer handles quoting.
func WriteCSV[T any](w io.Writer, columns []Column[T], records []T) error {
	cw := csv.NewWriter(w)

	header := make([]string, len(columns))
	for i, col := range columns {
		header[i] = col.Label
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	row := make([]string, len(columns))
	for _, rec := range records {
		for i, col := range columns {
			row[i] = col.Value(rec)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteXLSX serializes the filtered record list as a single-sheet workbook.
func WriteXLSX[T any](w io.Writer, sheet string, columns []Column[T], records []T) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	for i, col := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, col.Label); err != nil {
			return fmt.Errorf("failed to write header cell: %w", err)
		}
	}

	for r, rec := range records {
		for i, col := range columns {
			cell, err := excelize.CoordinatesToCellName(i+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, col.Value(rec)); err != nil {
				return fmt.Errorf("failed to write cell: %w", err)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// ExportFilename builds a traceable download name: the base, the active
// date-range filter when one is set, and the export date.
func ExportFilename(base string, spec pipeline.FilterSpec, ext string) string {
	name := base
	if spec.StartDate != "" || spec.EndDate != "" {
		start := spec.StartDate
		if start == "" {
			start = "begin"
		}
		end := spec.EndDate
		if end == "" {
			end = "present"
		}
		name += "_" + start + "_to_" + end
	}
	name += "_exported_" + time.Now().Format("2006-01-02")
	return name + "." + ext
}
