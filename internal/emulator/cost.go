// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package emulator

import (
	"fmt"

	"github.com/MKhiriev/go-qnexus/internal/hugr"
	"github.com/MKhiriev/go-qnexus/models"
	"github.com/shopspring/decimal"
)

// ConfidenceLevels are the levels reported by [Estimator.Confidence], in
// order.
var ConfidenceLevels = []float64{0.5, 0.75, 0.9, 0.95, 0.99}

var (
	baseCost      = decimal.NewFromInt(5)
	twoQubitCost  = decimal.NewFromInt(10)
	measureCost   = decimal.NewFromInt(5)
	shotsDivisor  = decimal.NewFromInt(5000)
	costPrecision = int32(4)
)

// Estimator prices programs in hardware credits:
//
//	5 + (N1q + 10*N2q + 5*Nm) * shots / 5000
//
// summed over programs. The point estimate from [Estimator.Cost] prices only
// operations that run on every shot and is the lower bound of the list from
// [Estimator.Confidence]; each confidence level adds its share of the
// conditionally executed operations on top of it.
type Estimator struct{}

// Job is one program priced together with its shot count.
type Job struct {
	Program hugr.Program
	NShots  int
}

// Cost returns the point estimate, counting only operations that run on
// every shot. It never exceeds the first confidence level.
func (Estimator) Cost(jobs []Job) (float64, error) {
	total, err := sum(jobs, decimal.Zero)
	if err != nil {
		return 0, err
	}
	return total.Round(costPrecision).InexactFloat64(), nil
}

// Confidence returns one estimate per entry of ConfidenceLevels. Each level
// is the share of conditionally executed operations assumed to run, so the
// list never decreases.
func (Estimator) Confidence(jobs []Job) ([]float64, error) {
	out := make([]float64, 0, len(ConfidenceLevels))
	for _, level := range ConfidenceLevels {
		total, err := sum(jobs, decimal.NewFromFloat(level))
		if err != nil {
			return nil, err
		}
		out = append(out, total.Round(costPrecision).InexactFloat64())
	}
	return out, nil
}

func sum(jobs []Job, branchShare decimal.Decimal) (decimal.Decimal, error) {
	if len(jobs) == 0 {
		return decimal.Zero, fmt.Errorf("%w: no programs to price", models.ErrInputMismatch)
	}

	total := decimal.Zero
	for _, j := range jobs {
		if j.NShots <= 0 {
			return decimal.Zero, fmt.Errorf("%w: n_shots must be positive", models.ErrInputMismatch)
		}

		certain := weight(j.Program.Certain)
		conditional := weight(j.Program.Conditional).Mul(branchShare)

		ops := certain.Add(conditional)
		total = total.Add(baseCost).Add(ops.Mul(decimal.NewFromInt(int64(j.NShots))).Div(shotsDivisor))
	}

	return total, nil
}

func weight(c hugr.OpCounts) decimal.Decimal {
	return decimal.NewFromInt(int64(c.OneQubit)).
		Add(decimal.NewFromInt(int64(c.TwoQubit)).Mul(twoQubitCost)).
		Add(decimal.NewFromInt(int64(c.Measure)).Mul(measureCost))
}
