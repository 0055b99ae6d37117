package services

import (
	"fmt"
	"io"
	"os"
	"strings"

	"airbnb-pricing/models"
	"airbnb-pricing/pricing"
	"airbnb-pricing/utils"
)

const noData = "No data yet"

// PrintInsightReport formats and prints the insight report to terminal
func PrintInsightReport(report *models.InsightReport) {
	FprintInsightReport(os.Stdout, report)
}

// FprintInsightReport writes the terminal report to w
func FprintInsightReport(w io.Writer, report *models.InsightReport) {
	border := strings.Repeat("═", 64)
	thin := strings.Repeat("─", 64)
	money := func(v float64) string { return utils.FormatMoney(v, report.Currency) }

	fmt.Fprintf(w, "\n╔%s╗\n", border)
	fmt.Fprintf(w, "║%s║\n", center(fmt.Sprintf("NIGHTLY PRICE PLAN  %s %d", report.Platform.Label(), report.Year), 64))
	fmt.Fprintf(w, "╚%s╝\n", border)

	g := report.Totals.Grand
	fmt.Fprintf(w, "\n OVERVIEW\n%s\n", thin)
	fmt.Fprintf(w, "  Net goal                : %s\n", money(report.Goal))
	fmt.Fprintf(w, "  Projected net           : %s (%+.0f)\n", money(g.Net), report.Drift)
	fmt.Fprintf(w, "  Projected gross         : %s\n", money(g.Gross))
	fmt.Fprintf(w, "  Guest spend             : %s\n", money(g.Guest))
	fmt.Fprintf(w, "  Booked nights           : %d\n", g.Nights)
	fmt.Fprintf(w, "  Avg net / night         : %s\n", money(report.AvgNetPerNight))
	if report.BestSeason != "" {
		fmt.Fprintf(w, "  Best season             : %s\n", report.BestSeason)
	}
	if report.LockedOverrides > 0 {
		fmt.Fprintf(w, "  Locked overrides        : %d\n", report.LockedOverrides)
	}

	fmt.Fprintf(w, "\n PRICE TABLE\n%s\n", thin)
	fmt.Fprintf(w, "  %-16s %-8s %8s %8s %8s %8s %6s\n", "Season", "Day", "DP", "Gross", "Guest", "Net", "Nights")
	for _, season := range report.Seasons {
		for _, dt := range models.DayTypes {
			row, ok := pricing.FindRow(report.Rows, report.Platform, season, dt)
			if !ok {
				fmt.Fprintf(w, "  %-16s %-8s %s\n", truncate(season, 16), dt, noData)
				continue
			}
			fmt.Fprintf(w, "  %-16s %-8s %8.0f %8.0f %8.0f %8.0f %6d\n",
				truncate(season, 16), dt, row.DP, row.Gross, row.GuestPrice, row.Net, report.Nights[season].Get(dt))
		}
	}

	if g.Net > 0 {
		fmt.Fprintf(w, "\n NET BY SEASON\n%s\n", thin)
		for _, season := range report.Seasons {
			st := report.Totals.BySeason[season]
			bar := strings.Repeat("▓", int(st.Net/g.Net*30))
			fmt.Fprintf(w, "  %-16s %14s  %s\n", truncate(season, 16), money(st.Net), bar)
		}
	}

	if len(report.Preview) > 0 {
		fmt.Fprintf(w, "\n FEE PREVIEW (DP %.0f)\n%s\n", report.Preview[0].DP, thin)
		for _, p := range report.Preview {
			fmt.Fprintf(w, "  %-8s gross %6.0f  guest %6.0f  net %6.0f\n", p.DayType, p.Gross, p.GuestPrice, p.Net)
		}
	}

	if report.SuggestedSplit != nil {
		s := report.SuggestedSplit
		fmt.Fprintf(w, "\n CALENDAR MIX\n%s\n", thin)
		for _, season := range report.Seasons {
			n := report.CalendarMix[season]
			fmt.Fprintf(w, "  %-16s weekday %3d  weekend %3d  holiday %3d\n", truncate(season, 16), n.Weekday, n.Weekend, n.Holiday)
		}
		fmt.Fprintf(w, "  Suggested split: %.0f%% / %.0f%% / %.0f%%\n", s.Weekday*100, s.Weekend*100, s.Holiday*100)
	}

	fmt.Fprintf(w, "\n%s\n\n", border)
}

// RenderMarkdown renders the report as markdown for print export
func RenderMarkdown(report *models.InsightReport) string {
	var b strings.Builder
	money := func(v float64) string { return utils.FormatMoney(v, report.Currency) }
	g := report.Totals.Grand

	fmt.Fprintf(&b, "# Nightly prices: %s %d\n\n", report.Platform.Label(), report.Year)
	fmt.Fprintf(&b, "Net goal **%s**, projected net **%s** over %d booked nights.\n\n", money(report.Goal), money(g.Net), g.Nights)

	b.WriteString("| Season | Day | DP | Gross | Guest price | Net | Nights |\n")
	b.WriteString("|---|---|---:|---:|---:|---:|---:|\n")
	for _, season := range report.Seasons {
		for _, dt := range models.DayTypes {
			row, ok := pricing.FindRow(report.Rows, report.Platform, season, dt)
			if !ok {
				fmt.Fprintf(&b, "| %s | %s | %s | | | | |\n", season, dt, noData)
				continue
			}
			fmt.Fprintf(&b, "| %s | %s | %.0f | %.0f | %.0f | %.0f | %d |\n",
				season, dt, row.DP, row.Gross, row.GuestPrice, row.Net, report.Nights[season].Get(dt))
		}
	}

	b.WriteString("\n## Totals\n\n")
	b.WriteString("| Season | Nights | Gross | Guest | Net |\n")
	b.WriteString("|---|---:|---:|---:|---:|\n")
	for _, season := range report.Seasons {
		st := report.Totals.BySeason[season]
		fmt.Fprintf(&b, "| %s | %d | %s | %s | %s |\n", season, st.Nights, money(st.Gross), money(st.Guest), money(st.Net))
	}
	fmt.Fprintf(&b, "| **Total** | %d | %s | %s | %s |\n", g.Nights, money(g.Gross), money(g.Guest), money(g.Net))
	return b.String()
}

func center(s string, width int) string {
	runes := []rune(s)
	if len(runes) >= width {
		return s
	}
	pad := (width - len(runes)) / 2
	return strings.Repeat(" ", pad) + s + strings.Repeat(" ", width-len(runes)-pad)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
