package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"airbnb-pricing/config"
	"airbnb-pricing/holidays"
	"airbnb-pricing/models"
	"airbnb-pricing/services"
	"airbnb-pricing/storage"
	"airbnb-pricing/utils"
)

func main() {
	// ================== Bootstrap ====================
	cfg := config.Load()

	scenarioPath := flag.String("scenario", cfg.ScenarioFile, "YAML scenario file (defaults when empty)")
	holidayPath := flag.String("holidays", cfg.HolidayFile, "YAML holiday file (built-in seed holidays when empty)")
	platformFlag := flag.String("platform", cfg.ExportPlatform, "platform to report and export")
	outDir := flag.String("out", cfg.OutputDir, "output directory for export files")
	formats := flag.String("formats", "", "comma separated export formats: csv,tsv,xlsx,pdf")
	publish := flag.Bool("publish", cfg.DatabaseURL != "", "publish the table to PostgreSQL (needs DATABASE_URL)")
	var feeEdits []string
	flag.Func("fee", "fee edit as platform.field=value, e.g. airbnb.guest_fee_pct=12 (repeatable)", func(v string) error {
		feeEdits = append(feeEdits, v)
		return nil
	})
	flag.Parse()

	if *formats != "" {
		cfg.ExportFormats = config.SplitList(*formats)
	}

	logger := utils.NewLogger()
	if cfg.LogFile != "" {
		logger = utils.NewRotatingLogger(cfg.LogFile, cfg.LogMaxSizeMB)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("Nightly Price Planner")

	// =============== Scenario ===================================
	sc, err := config.LoadScenario(*scenarioPath)
	if err != nil {
		logger.Error("Cannot load scenario: %v", err)
		os.Exit(1)
	}
	platform := models.PlatformKey(*platformFlag)
	if _, ok := sc.Platforms[platform]; !ok || !platform.Valid() {
		logger.Error("Platform %q is not configured in the scenario", *platformFlag)
		os.Exit(1)
	}
	logger.Info("Year %d | Currency %s | Platforms %d | Seasons %d",
		sc.Year, sc.Currency, len(sc.Platforms), len(sc.Seasonality.Types))

	// =============== Holidays ===================================
	var source holidays.Source = holidays.SeedSource{}
	if *holidayPath != "" {
		source = holidays.FileSource{Path: *holidayPath}
	}
	var calendar []models.MergedHoliday
	entries, err := source.Fetch(ctx, sc.Year, sc.Holidays.ActiveCountries)
	if err != nil {
		// Non-fatal: prices do not depend on the calendar
		logger.Warn("Holiday calendar unavailable: %v", err)
	} else {
		calendar = holidays.Merge(entries, sc.Holidays, sc.HolidayPreferences)
		logger.Info("Holiday calendar: %d dates from %d records", len(calendar), len(entries))
	}

	// =========== Recompute ======================
	cleaner := services.NewInputCleaner(logger)
	planner := services.NewPlanner(cleaner.Clean(sc.Inputs(calendar)), logger)

	for _, edit := range feeEdits {
		pk, field, raw, err := parseFeeEdit(edit)
		if err != nil {
			logger.Warn("Ignoring fee edit: %v", err)
			continue
		}
		planner.Update(func(in *models.Inputs) {
			if profile, ok := in.Platforms[pk]; ok {
				in.Platforms[pk] = cleaner.UpdateFee(profile, field, raw)
			}
		})
	}

	for _, o := range sc.Overrides {
		if o.Gross != "" && !planner.SetOverrideGross(o.Key(), o.Gross) {
			logger.Warn("Ignoring override %s/%s/%s: gross %q is not a positive number", o.Platform, o.Season, o.DayType, o.Gross)
		}
		if o.Locked != nil {
			if ok, err := planner.SetOverrideLock(o.Key(), *o.Locked); err != nil || !ok {
				logger.Warn("Ignoring lock for %s/%s/%s: no such cell", o.Platform, o.Season, o.DayType)
			}
		}
	}

	view, err := planner.Recompute()
	if err != nil {
		logger.Error("Recompute failed: %v", err)
		os.Exit(1)
	}

	// ==== Insights ============================
	insightSvc := services.NewInsightService(logger)
	report := insightSvc.Generate(view, platform, view.Inputs.Currency)
	services.PrintInsightReport(report)

	table := storage.ExportTable{
		Platform:    platform,
		Currency:    view.Inputs.Currency,
		Year:        view.Inputs.Year,
		Seasons:     view.Inputs.Seasonality.Types,
		Records:     view.Records(platform),
		Totals:      report.Totals,
		Markdown:    services.RenderMarkdown(report),
		Fingerprint: view.State.Fingerprint,
	}

	// ========= Files ===========================
	exporters, err := storage.NewFileExporters(cfg.ExportFormats, *outDir, cfg.RenderTimeout, cfg.MaxRetries, logger)
	if err != nil {
		logger.Error("Bad export formats: %v", err)
		os.Exit(1)
	}
	for _, exp := range exporters {
		if err := exp.Export(ctx, table); err != nil {
			// Non-fatal: continue with the remaining formats
			logger.Error("Failed to write %s export: %v", exp.Name(), err)
		}
	}

	// ========= PostgreSQL ============
	if *publish {
		if cfg.DatabaseURL == "" {
			logger.Error("Publishing needs DATABASE_URL")
			os.Exit(1)
		}
		pgWriter, err := storage.NewPostgresWriter(ctx, cfg.DatabaseURL, cfg.MaxRetries, logger)
		if err != nil {
			logger.Error("Cannot connect to PostgreSQL: %v", err)
			os.Exit(1)
		}
		defer pgWriter.Close()

		if err := pgWriter.CreateTable(ctx); err != nil {
			logger.Error("Failed to create DB table: %v", err)
			os.Exit(1)
		}
		if err := pgWriter.Export(ctx, table); err != nil {
			logger.Error("Failed to publish to PostgreSQL: %v", err)
			os.Exit(1)
		}
	}

	fmt.Println(" Done! Exports →", *outDir)
}

// parseFeeEdit splits "airbnb.guest_fee_pct=12" into its parts
func parseFeeEdit(edit string) (models.PlatformKey, models.FeeField, string, error) {
	target, raw, ok := strings.Cut(edit, "=")
	if !ok {
		return "", 0, "", fmt.Errorf("%q: missing '='", edit)
	}
	pk, key, ok := strings.Cut(strings.TrimSpace(target), ".")
	if !ok {
		return "", 0, "", fmt.Errorf("%q: expected platform.field", edit)
	}
	platform := models.PlatformKey(strings.ToLower(pk))
	if !platform.Valid() {
		return "", 0, "", fmt.Errorf("%q: unknown platform %s", edit, pk)
	}
	field, ok := models.ParseFeeField(key)
	if !ok {
		return "", 0, "", fmt.Errorf("%q: unknown fee field %s", edit, key)
	}
	return platform, field, raw, nil
}
