package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"airbnb-pricing/utils"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
)

const createPriceRows = `
CREATE TABLE IF NOT EXISTS price_rows (
	id          SERIAL PRIMARY KEY,
	run_id      UUID          NOT NULL,
	fingerprint VARCHAR(32)   NOT NULL,
	currency    CHAR(3)       NOT NULL,
	year        INT           NOT NULL,
	platform    VARCHAR(20)   NOT NULL,
	season      TEXT          NOT NULL,
	day_type    VARCHAR(10)   NOT NULL,
	dp          NUMERIC(12,2) NOT NULL,
	gross       NUMERIC(12,2) NOT NULL,
	guest_price NUMERIC(12,2) NOT NULL,
	net         NUMERIC(12,2) NOT NULL,
	nights      INT           NOT NULL,
	gross_total NUMERIC(14,2) NOT NULL,
	guest_total NUMERIC(14,2) NOT NULL,
	net_total   NUMERIC(14,2) NOT NULL,
	created_at  TIMESTAMP     NOT NULL DEFAULT NOW(),
	UNIQUE (run_id, platform, season, day_type)
);

CREATE INDEX IF NOT EXISTS idx_price_rows_fingerprint ON price_rows (fingerprint);
CREATE INDEX IF NOT EXISTS idx_price_rows_platform    ON price_rows (platform);
`

const insertPriceRow = `
INSERT INTO price_rows (run_id, fingerprint, currency, year, platform, season, day_type,
	dp, gross, guest_price, net, nights, gross_total, guest_total, net_total)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
ON CONFLICT (run_id, platform, season, day_type) DO NOTHING
`

// PostgresWriter publishes price tables to PostgreSQL, one run id per export
type PostgresWriter struct {
	db     *sql.DB
	logger *utils.Logger
}

// NewPostgresWriter opens the database and pings it, retrying with backoff
func NewPostgresWriter(ctx context.Context, connStr string, maxRetries int, logger *utils.Logger) (*PostgresWriter, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open DB: %w", err)
	}

	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(time.Minute * 5)

	if err := utils.RetryWithBackoff(ctx, maxRetries, func() error { return db.PingContext(ctx) }, logger); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping DB: %w", err)
	}

	logger.Info("Connected to PostgreSQL successfully")
	return &PostgresWriter{db: db, logger: logger}, nil
}

func (w *PostgresWriter) Name() string { return "postgres" }

// CreateTable creates the price_rows table if it doesn't exist, with indexes
func (w *PostgresWriter) CreateTable(ctx context.Context) error {
	if _, err := w.db.ExecContext(ctx, createPriceRows); err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}
	w.logger.Info("Table 'price_rows' is ready")
	return nil
}

// Export inserts the table in a single transaction under a new run id
func (w *PostgresWriter) Export(ctx context.Context, table ExportTable) (err error) {
	if len(table.Records) == 0 {
		return nil
	}
	runID := uuid.New()

	tx, err := w.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	stmt, err := tx.PrepareContext(ctx, insertPriceRow)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, args := range rowArgs(runID, table) {
		if _, err = stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("failed to insert %v/%v: %w", args[5], args[6], err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	w.logger.Info("Published %d rows for %s as run %s", len(table.Records), table.Platform.Label(), runID)
	return nil
}

// rowArgs builds the insert arguments for every record, in column order
func rowArgs(runID uuid.UUID, table ExportTable) [][]interface{} {
	out := make([][]interface{}, 0, len(table.Records))
	for _, rec := range table.Records {
		out = append(out, []interface{}{
			runID.String(), table.Fingerprint, table.Currency, table.Year,
			string(rec.Platform), rec.Season, string(rec.DayType),
			rec.DP, rec.Gross, rec.GuestPrice, rec.Net,
			rec.Nights, rec.GrossTotal, rec.GuestTotal, rec.NetTotal,
		})
	}
	return out
}

// Close closes the database connection
func (w *PostgresWriter) Close() {
	if w.db != nil {
		_ = w.db.Close()
	}
}
