// Package bonds solves yield to maturity for plain fixed-coupon bonds.
package bonds

import (
	"errors"
	"fmt"
	"math"
)

const (
	// MaxIterations caps the Newton-Raphson loop
	MaxIterations = 100
	// Tolerance is the price error below which the solver stops
	Tolerance = 1e-7
)

// ErrInvalidInput is returned for inputs that do not describe a bond
var ErrInvalidInput = errors.New("invalid bond input")

// Termination records why the solver stopped
type Termination string

const (
	TerminationConverged           Termination = "converged"
	TerminationMaxIterations       Termination = "max_iterations"
	TerminationZeroDerivative      Termination = "zero_derivative"
	TerminationNonPositiveDiscount Termination = "non_positive_discount"
	TerminationNonFinite           Termination = "non_finite"
)

// Input describes a bond quote. CouponRate is an annual fraction (0.05 is 5%).
type Input struct {
	FaceValue       float64
	Price           float64
	CouponRate      float64
	Years           float64
	PaymentsPerYear int
}

// Periods is the number of coupon periods, Years x PaymentsPerYear rounded
// to the nearest whole period.
func (in Input) Periods() int {
	return int(math.Round(in.Years * float64(in.PaymentsPerYear)))
}

// Validate checks that the input can be priced
func (in Input) Validate() error {
	for name, v := range map[string]float64{
		"face_value":  in.FaceValue,
		"price":       in.Price,
		"coupon_rate": in.CouponRate,
		"years":       in.Years,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s must be finite", ErrInvalidInput, name)
		}
	}

	switch {
	case in.FaceValue <= 0:
		return fmt.Errorf("%w: face value must be positive", ErrInvalidInput)
	case in.Price <= 0:
		return fmt.Errorf("%w: price must be positive", ErrInvalidInput)
	case in.CouponRate < 0:
		return fmt.Errorf("%w: coupon rate must not be negative", ErrInvalidInput)
	case in.PaymentsPerYear < 1:
		return fmt.Errorf("%w: payments per year must be at least 1", ErrInvalidInput)
	case in.Years <= 0 || in.Periods() < 1:
		return fmt.Errorf("%w: maturity must cover at least one coupon period", ErrInvalidInput)
	}
	return nil
}

// Result is the solver output. YTMPercent is the annualized nominal yield.
//
// When Converged is false YTMPercent holds the last finite estimate and
// Termination says why the loop gave up.
type Result struct {
	YTMPercent          float64
	TotalCoupons        float64
	CapitalGain         float64
	TotalReturn         float64
	CurrentYieldPercent float64
	Iterations          int
	Converged           bool
	Termination         Termination
}

// SolveYTM finds the periodic yield that prices the bond at in.Price using
// Newton-Raphson, starting from the coupon rate.
func SolveYTM(in Input) (Result, error) {
	if err := in.Validate(); err != nil {
		return Result{}, err
	}

	n := in.Periods()
	coupon := in.CouponRate * in.FaceValue / float64(in.PaymentsPerYear)

	r, iterations, term := newton(in, n, coupon)

	totalCoupons := coupon * float64(n)
	capitalGain := in.FaceValue - in.Price

	return Result{
		YTMPercent:          r * 100,
		TotalCoupons:        totalCoupons,
		CapitalGain:         capitalGain,
		TotalReturn:         totalCoupons + capitalGain,
		CurrentYieldPercent: in.CouponRate * in.FaceValue / in.Price * 100,
		Iterations:          iterations,
		Converged:           term == TerminationConverged,
		Termination:         term,
	}, nil
}

func newton(in Input, n int, coupon float64) (float64, int, Termination) {
	m := float64(in.PaymentsPerYear)
	r := in.CouponRate
	// last estimate with a positive discount factor; the starting guess always qualifies
	good := r

	for i := 0; i < MaxIterations; i++ {
		if 1+r/m <= 0 {
			return good, i, TerminationNonPositiveDiscount
		}
		good = r

		price, slope := priceAt(r, m, n, coupon, in.FaceValue)
		f := price - in.Price
		if math.Abs(f) < Tolerance {
			return r, i, TerminationConverged
		}
		if slope == 0 {
			return r, i, TerminationZeroDerivative
		}

		next := r - f/slope
		if math.IsNaN(next) || math.IsInf(next, 0) {
			return r, i, TerminationNonFinite
		}
		r = next
	}

	if 1+r/m <= 0 {
		return good, MaxIterations, TerminationNonPositiveDiscount
	}
	// The last step may have landed inside tolerance
	if price, _ := priceAt(r, m, n, coupon, in.FaceValue); math.Abs(price-in.Price) < Tolerance {
		return r, MaxIterations, TerminationConverged
	}
	return r, MaxIterations, TerminationMaxIterations
}

// priceAt returns the bond price at annual yield r and its derivative dP/dr.
// The caller guarantees 1 + r/m > 0.
func priceAt(r, m float64, n int, coupon, face float64) (float64, float64) {
	d := 1 + r/m
	var price, slope float64
	for k := 1; k <= n; k++ {
		kf := float64(k)
		price += coupon * math.Pow(d, -kf)
		slope -= kf * coupon * math.Pow(d, -kf-1) / m
	}
	nf := float64(n)
	price += face * math.Pow(d, -nf)
	slope -= nf * face * math.Pow(d, -nf-1) / m
	return price, slope
}
