package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/aristath/folio/internal/domain"
	"github.com/aristath/folio/internal/modules/portfolio"
	"github.com/aristath/folio/internal/modules/reference"
	"github.com/aristath/folio/internal/utils"
	"github.com/aristath/folio/pkg/formulas"
	"github.com/google/subcommands"
)

type snapshotCmd struct {
	currency   string
	jsonOutput bool
	sequential bool
	out        io.Writer
}

func (*snapshotCmd) Name() string     { return "snapshot" }
func (*snapshotCmd) Synopsis() string { return "display holdings, allocations and statistics" }
func (*snapshotCmd) Usage() string {
	return `folioctl [-db <path>] snapshot [-currency <code>] [-json]

  Computes a portfolio snapshot from the stored reference data, prices and
  holdings. Incomplete data is reported at the end of the output.
`
}

func (c *snapshotCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "currency", "EUR", "Currency used to display portfolio totals")
	f.BoolVar(&c.jsonOutput, "json", false, "Print the snapshot as JSON")
	f.BoolVar(&c.sequential, "sequential", false, "Compute allocation passes one after another")
}

func (c *snapshotCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	currency := utils.NormalizeCode(c.currency)
	if !formulas.IsCurrencyCode(currency) {
		fmt.Fprintf(os.Stderr, "Error: unknown currency %q\n", c.currency)
		return subcommands.ExitUsageError
	}

	db, err := openDB()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer db.Close()

	log := newLogger()
	svc := portfolio.NewService(reference.NewRepository(db.Conn(), log), portfolio.Options{Parallel: !c.sequential}, log)

	snap, err := svc.Snapshot(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	out := output(c.out)
	if c.jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(snap); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	renderSnapshot(out, snap, currency)
	return subcommands.ExitSuccess
}

func renderSnapshot(w io.Writer, snap *domain.Snapshot, currency string) {
	fmt.Fprintf(w, "Total value:  %s\n", formulas.FormatCurrency(snap.TotalValue, currency))
	fmt.Fprintf(w, "Cost basis:   %s\n", formulas.FormatCurrency(snap.TotalCostBasis, currency))
	fmt.Fprintf(w, "Profit/loss:  %s\n", formulas.FormatCurrency(snap.TotalProfitLoss, currency))

	fmt.Fprintln(w, "\nHoldings")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TICKER\tQUANTITY\tPRICE\tVALUE\tP/L\tWEIGHT")
	for _, h := range snap.Holdings {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			h.Ticker,
			h.Quantity.String(),
			h.CurrentPrice.StringFixed(2),
			formulas.FormatCurrency(h.MarketValue, h.CurrencyCode),
			formulas.FormatPercent(h.ProfitLossPercent.Shift(2)),
			formulas.FormatPercent(h.Weight.Shift(2)),
		)
	}
	tw.Flush()

	sections := []struct {
		title   string
		buckets []domain.AllocationBucket
	}{
		{"Asset classes", snap.AssetClasses},
		{"Sectors", snap.Sectors},
		{"Currencies", snap.Currencies},
		{"Markets", snap.Markets},
	}
	for _, s := range sections {
		renderBuckets(w, s.title, s.buckets, currency)
	}

	fmt.Fprintln(w, "\nRegions")
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, r := range snap.Regions {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Name, formulas.FormatCurrency(r.CurrentValue, currency), formulas.FormatPercent(r.AllocationPercent))
		for _, country := range r.Countries {
			fmt.Fprintf(tw, "  %s\t%s\t%s of region\n", country.Name, formulas.FormatCurrency(country.CurrentValue, currency), formulas.FormatPercent(country.AllocationRegionPercent))
		}
	}
	tw.Flush()

	st := snap.Statistics
	fmt.Fprintf(w, "\nPositions: %d (%d trackers), markets: %d, asset classes: %d, sectors: %d\n",
		st.PositionCount, st.TrackerCount, st.MarketCount, st.AssetClassCount, st.SectorCount)
	if snap.Concentration.LargestTicker != "" {
		fmt.Fprintf(w, "Effective holdings: %.2f, largest: %s (%.2f%%)\n",
			snap.Concentration.EffectiveHoldings, snap.Concentration.LargestTicker, snap.Concentration.LargestWeight*100)
	}

	if snap.Degraded() {
		fmt.Fprintf(w, "\nIncomplete data (%d):\n", len(snap.DataGaps))
		for _, g := range snap.DataGaps {
			fmt.Fprintf(w, "  %s\n", g)
		}
	}
}

func renderBuckets(w io.Writer, title string, buckets []domain.AllocationBucket, currency string) {
	fmt.Fprintf(w, "\n%s\n", title)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, b := range buckets {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", b.Name, formulas.FormatCurrency(b.CurrentValue, currency), formulas.FormatPercent(b.AllocationPercent), b.HoldingCount)
	}
	tw.Flush()
}
