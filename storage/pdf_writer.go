package storage

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"time"

	"airbnb-pricing/utils"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

const pageStyle = `body{font-family:Helvetica,Arial,sans-serif;font-size:11px;margin:24px}
table{border-collapse:collapse;margin-bottom:16px}
th,td{border:1px solid #bbb;padding:3px 8px}
th{background:#eee}`

var markdown = goldmark.New(goldmark.WithExtensions(extension.Table))

// printFunc turns a complete HTML document into PDF bytes
type printFunc func(ctx context.Context, doc string) ([]byte, error)

// PDFWriter prints the markdown report to PDF through headless Chrome
type PDFWriter struct {
	dir        string
	timeout    time.Duration
	maxRetries int
	print      printFunc
	logger     *utils.Logger
}

// NewPDFWriter creates a new PDFWriter writing into dir
func NewPDFWriter(dir string, timeout time.Duration, maxRetries int, logger *utils.Logger) *PDFWriter {
	return &PDFWriter{
		dir:        dir,
		timeout:    timeout,
		maxRetries: maxRetries,
		print:      chromePrint,
		logger:     logger,
	}
}

func (w *PDFWriter) Name() string { return "pdf" }

// Export writes dynamic-pricing-<platform>.pdf
func (w *PDFWriter) Export(ctx context.Context, table ExportTable) error {
	doc, err := RenderHTML(fmt.Sprintf("Dynamic pricing %s %d", table.Platform.Label(), table.Year), table.Markdown)
	if err != nil {
		return err
	}

	var pdf []byte
	err = utils.RetryWithBackoff(ctx, w.maxRetries, func() error {
		printCtx, cancel := context.WithTimeout(ctx, w.timeout)
		defer cancel()
		out, err := w.print(printCtx, doc)
		if err != nil {
			return err
		}
		pdf = out
		return nil
	}, w.logger)
	if err != nil {
		return fmt.Errorf("failed to print PDF: %w", err)
	}

	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(w.dir, table.FileName("pdf"))
	if err := os.WriteFile(path, pdf, 0644); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	w.logger.Info("PDF written to: %s (%d bytes)", path, len(pdf))
	return nil
}

// RenderHTML converts the markdown report into a standalone HTML page
func RenderHTML(title, md string) (string, error) {
	var body bytes.Buffer
	if err := markdown.Convert([]byte(md), &body); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return fmt.Sprintf("<!DOCTYPE html><html><head><meta charset=\"utf-8\"><title>%s</title><style>%s</style></head><body>%s</body></html>",
		html.EscapeString(title), pageStyle, body.String()), nil
}

// newBrowserContext creates a fresh headless Chrome context
func newBrowserContext(parent context.Context) (context.Context, context.CancelFunc) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("log-level", "3"), // suppress Chrome logs
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(parent, opts...)
	ctx, cancelCtx := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(string, ...interface{}) {}))

	cancel := func() {
		cancelCtx()
		cancelAlloc()
	}
	return ctx, cancel
}

func chromePrint(ctx context.Context, doc string) ([]byte, error) {
	ctx, cancel := newBrowserContext(ctx)
	defer cancel()

	var pdf []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, doc).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("chrome print failed: %w", err)
	}
	return pdf, nil
}
