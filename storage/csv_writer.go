package storage

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"airbnb-pricing/pricing"
	"airbnb-pricing/utils"
)

// CSVWriter writes the flat price table as comma separated values
type CSVWriter struct {
	dir    string
	logger *utils.Logger
}

// NewCSVWriter creates a new CSVWriter writing into dir
func NewCSVWriter(dir string, logger *utils.Logger) *CSVWriter {
	return &CSVWriter{dir: dir, logger: logger}
}

func (w *CSVWriter) Name() string { return "csv" }

// Export writes dynamic-pricing-<platform>.csv
func (w *CSVWriter) Export(ctx context.Context, table ExportTable) error {
	return writeDelimited(ctx, filepath.Join(w.dir, table.FileName("csv")), ',', table, w.logger)
}

// SheetsWriter writes the same table tab separated, ready to paste into a spreadsheet
type SheetsWriter struct {
	dir    string
	logger *utils.Logger
}

// NewSheetsWriter creates a new SheetsWriter writing into dir
func NewSheetsWriter(dir string, logger *utils.Logger) *SheetsWriter {
	return &SheetsWriter{dir: dir, logger: logger}
}

func (w *SheetsWriter) Name() string { return "tsv" }

// Export writes dynamic-pricing-<platform>.tsv
func (w *SheetsWriter) Export(ctx context.Context, table ExportTable) error {
	return writeDelimited(ctx, filepath.Join(w.dir, table.FileName("tsv")), '\t', table, w.logger)
}

func writeDelimited(ctx context.Context, path string, comma rune, table ExportTable, logger *utils.Logger) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	writer.Comma = comma

	if err := writer.Write(pricing.ExportHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, rec := range table.Records {
		if err := writer.Write(pricing.RecordFields(rec)); err != nil {
			return fmt.Errorf("failed to write row %s/%s: %w", rec.Season, rec.DayType, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}

	logger.Info("Price table written to: %s (%d rows)", path, len(table.Records))
	return nil
}
