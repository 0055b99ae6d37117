package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"airbnb-pricing/pricing"
	"airbnb-pricing/utils"

	"github.com/xuri/excelize/v2"
)

const totalsSheet = "Totals"

// XLSXWriter writes a workbook with the price table and a totals sheet
type XLSXWriter struct {
	dir    string
	logger *utils.Logger
}

// NewXLSXWriter creates a new XLSXWriter writing into dir
func NewXLSXWriter(dir string, logger *utils.Logger) *XLSXWriter {
	return &XLSXWriter{dir: dir, logger: logger}
}

func (w *XLSXWriter) Name() string { return "xlsx" }

// Export writes dynamic-pricing-<platform>.xlsx
func (w *XLSXWriter) Export(ctx context.Context, table ExportTable) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f := excelize.NewFile()
	defer f.Close()

	sheet := table.Platform.Label()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	header := make([]interface{}, len(pricing.ExportHeader))
	for i, h := range pricing.ExportHeader {
		header[i] = h
	}
	if err := setRow(f, sheet, 1, header); err != nil {
		return err
	}
	for i, rec := range table.Records {
		row := []interface{}{
			rec.Platform.Label(), rec.Season, string(rec.DayType),
			rec.DP, rec.Gross, rec.GuestPrice, rec.Net,
			rec.Nights, rec.GrossTotal, rec.GuestTotal, rec.NetTotal,
		}
		if err := setRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet(totalsSheet); err != nil {
		return fmt.Errorf("failed to add totals sheet: %w", err)
	}
	if err := setRow(f, totalsSheet, 1, []interface{}{"Season", "Nights", "Gross", "Guest", "Net"}); err != nil {
		return err
	}
	line := 2
	for _, season := range table.Seasons {
		st := table.Totals.BySeason[season]
		if err := setRow(f, totalsSheet, line, []interface{}{season, st.Nights, st.Gross, st.Guest, st.Net}); err != nil {
			return err
		}
		line++
	}
	g := table.Totals.Grand
	if err := setRow(f, totalsSheet, line, []interface{}{"Total", g.Nights, g.Gross, g.Guest, g.Net}); err != nil {
		return err
	}

	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(w.dir, table.FileName("xlsx"))
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	w.logger.Info("Workbook written to: %s (%d rows)", path, len(table.Records))
	return nil
}

func setRow(f *excelize.File, sheet string, line int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, line)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write %s!%s: %w", sheet, cell, err)
	}
	return nil
}
