package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"airbnb-pricing/models"
	"airbnb-pricing/utils"
)

// TableExporter writes one platform's price table somewhere
type TableExporter interface {
	Export(ctx context.Context, table ExportTable) error
	Name() string
}

// ExportTable is everything a sink needs to publish one platform's table
type ExportTable struct {
	Platform    models.PlatformKey
	Currency    string
	Year        int
	Seasons     []string
	Records     []models.ExportRecord
	Totals      models.Totals
	Markdown    string
	Fingerprint string
}

// FileName is the export file name for the given extension
func (t ExportTable) FileName(ext string) string {
	return fmt.Sprintf("dynamic-pricing-%s.%s", t.Platform, ext)
}

// NewFileExporters builds the file sinks named in formats, in order
func NewFileExporters(formats []string, dir string, renderTimeout time.Duration, maxRetries int, logger *utils.Logger) ([]TableExporter, error) {
	var out []TableExporter
	for _, f := range formats {
		switch strings.ToLower(strings.TrimSpace(f)) {
		case "csv":
			out = append(out, NewCSVWriter(dir, logger))
		case "tsv", "sheets":
			out = append(out, NewSheetsWriter(dir, logger))
		case "xlsx":
			out = append(out, NewXLSXWriter(dir, logger))
		case "pdf":
			out = append(out, NewPDFWriter(dir, renderTimeout, maxRetries, logger))
		default:
			return nil, fmt.Errorf("unknown export format %q", f)
		}
	}
	return out, nil
}
