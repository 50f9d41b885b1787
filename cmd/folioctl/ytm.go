package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/aristath/folio/internal/modules/bonds"
	"github.com/google/subcommands"
)

type ytmCmd struct {
	face   float64
	price  float64
	coupon float64
	years  float64
	freq   int
	out    io.Writer
}

func (*ytmCmd) Name() string     { return "ytm" }
func (*ytmCmd) Synopsis() string { return "compute the yield to maturity of a fixed-coupon bond" }
func (*ytmCmd) Usage() string {
	return `folioctl ytm -price <price> -coupon <percent> -years <years> [-face <value>] [-freq <n>]

  Solves the annual nominal yield at which the bond's discounted cash flows
  equal its price.
`
}

func (c *ytmCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.face, "face", 1000, "Face value repaid at maturity")
	f.Float64Var(&c.price, "price", 0, "Current market price")
	f.Float64Var(&c.coupon, "coupon", 0, "Annual coupon rate in percent")
	f.Float64Var(&c.years, "years", 0, "Years to maturity")
	f.IntVar(&c.freq, "freq", 2, "Coupon payments per year")
}

func (c *ytmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	result, err := bonds.SolveYTM(bonds.Input{
		FaceValue:       c.face,
		Price:           c.price,
		CouponRate:      c.coupon / 100,
		Years:           c.years,
		PaymentsPerYear: c.freq,
	})
	if errors.Is(err, bonds.ErrInvalidInput) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	out := output(c.out)
	fmt.Fprintf(out, "Yield to maturity: %.4f%%\n", result.YTMPercent)
	fmt.Fprintf(out, "Current yield:     %.4f%%\n", result.CurrentYieldPercent)
	fmt.Fprintf(out, "Total coupons:     %.2f\n", result.TotalCoupons)
	fmt.Fprintf(out, "Capital gain:      %.2f\n", result.CapitalGain)
	fmt.Fprintf(out, "Total return:      %.2f\n", result.TotalReturn)

	if !result.Converged {
		fmt.Fprintf(out, "Warning: solver stopped after %d iterations (%s)\n", result.Iterations, result.Termination)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
