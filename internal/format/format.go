// Package format renders estimate figures for people: whole-gold currency with digit
// grouping, percentages, season names and a plain-text results table.
package format

import (
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/osse101/CropCalc_Go/internal/domain"
)

// CurrencySuffix is appended to every money amount
const CurrencySuffix = "g"

var tableHeader = []string{"Crop", "Seeds", "Harvest", "Unit", "Sold", "Jarred", "Kegged", "Aged", "Revenue", "Seed cost", "Profit"}

func printer() *message.Printer {
	return message.NewPrinter(language.English)
}

// Currency floors v to whole gold and groups digits: 1234.9 -> "1,234g"
func Currency(v float64) string {
	return printer().Sprintf("%d", int64(math.Floor(v))) + CurrencySuffix
}

// Percent renders a percentage with up to two decimals: 91.18 -> "91.18%"
func Percent(p float64) string {
	return printer().Sprint(number.Decimal(p, number.MaxFractionDigits(2))) + "%"
}

// UnitPrice renders a per-unit price with two decimals
func UnitPrice(v float64) string {
	return printer().Sprintf("%.2f", v) + CurrencySuffix
}

// SeasonTitle capitalizes a season for display
func SeasonTitle(season domain.Season) string {
	return cases.Title(language.English).String(string(season))
}

// ChannelTitle capitalizes a channel for display
func ChannelTitle(ch domain.Channel) string {
	return cases.Title(language.English).String(string(ch))
}

// Quantity renders a unit count with digit grouping
func Quantity(n int) string {
	return printer().Sprintf("%d", n)
}

// WriteBreakdownTable writes totals as an aligned table, one line per row and a total line
func WriteBreakdownTable(w io.Writer, totals domain.Totals) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)

	line := func(cells ...string) {
		fmt.Fprintln(tw, strings.Join(cells, "\t")+"\t")
	}

	line(tableHeader...)
	for _, row := range totals.Breakdown {
		line(
			row.CropName,
			Quantity(row.SeedCount),
			Quantity(row.HarvestTotal),
			UnitPrice(row.UnitPrice),
			Quantity(row.Distribution.Sold),
			Quantity(row.Distribution.Jarred),
			Quantity(row.Distribution.Kegged),
			Quantity(row.Distribution.Aged),
			Currency(row.Revenue),
			Currency(row.SeedCost),
			Currency(row.Profit),
		)
	}
	line("Total", "", "", "", "", "", "", "",
		Currency(totals.TotalRevenue),
		Currency(totals.TotalSeedCost),
		Currency(totals.TotalProfit),
	)

	for _, s := range totals.Skipped {
		fmt.Fprintf(tw, "skipped %s (%s)\n", s.CropName, s.Reason)
	}
	return tw.Flush()
}

// BreakdownTable is WriteBreakdownTable into a string
func BreakdownTable(totals domain.Totals) string {
	var sb strings.Builder
	_ = WriteBreakdownTable(&sb, totals)
	return sb.String()
}
