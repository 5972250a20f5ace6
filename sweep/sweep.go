// Package sweep implements order sweeps over state-space model fits.
package sweep

import (
	"errors"
	"fmt"
	"math"

	"github.com/sartorproj/tsfeat/stats"
	"github.com/sartorproj/tsfeat/timeseries"
)

// Model is the view the sweep needs of one fitted model. Estimation is owned
// entirely by the Estimator collaborator; the sweep only reads fit statistics.
type Model interface {
	// Loss returns the loss-function value of the fit.
	Loss() float64
	// FPE returns Akaike's final prediction error.
	FPE() float64
	// AIC returns the Akaike information criterion.
	AIC() float64
	// NumParams returns the number of estimated parameters.
	NumParams() int
}

// Estimator fits a state-space model of the given order to a series.
type Estimator interface {
	Estimate(series *timeseries.Series, order int) (Model, error)
}

// ErrOutOfRange is returned when the requested maximum order cannot support
// the sweep's aggregate statistics.
var ErrOutOfRange = errors.New("max order out of range")

// FitError reports an estimator failure at a specific order. A single failure
// terminates the whole sweep; orders are never skipped.
type FitError struct {
	Order int
	Err   error
}

func (e *FitError) Error() string {
	return fmt.Sprintf("model fit failed at order %d: %v", e.Order, e.Err)
}

func (e *FitError) Unwrap() error { return e.Err }

// OrderStat holds the fit statistics reported for one model order.
type OrderStat struct {
	Order int
	Loss  float64
	FPE   float64
	AIC   float64
}

// Result aggregates fit statistics across a full successful sweep.
type Result struct {
	// Per-order statistics for orders 1..maxOrder, in order.
	Stats []OrderStat

	// First order achieving the minimum AIC, and that minimum.
	BestAICOrder int
	BestAIC      float64

	// First order achieving the minimum loss, and that minimum.
	BestLossOrder int
	BestLoss      float64

	// Statistics at order 2.
	AICAt2  float64
	FPEAt2  float64
	LossAt2 float64

	// Summary of successive differences of the AIC sequence.
	AICDiffMean float64
	AICDiffMax  float64
	AICDiffMin  float64

	// Count of negative successive AIC differences: how often increasing
	// the order improved the criterion.
	AICDiffNegative int
}

// Fit sweeps model orders 1..maxOrder over the series using est and
// aggregates the reported statistics.
//
// The sweep is strictly sequential and fail-fast: the first estimator error
// aborts the sweep with a *FitError naming the failing order. maxOrder must
// be at least 2 because the order-2 statistics are part of the result;
// smaller values return ErrOutOfRange.
func Fit(series *timeseries.Series, maxOrder int, est Estimator) (*Result, error) {
	if maxOrder < 2 {
		return nil, fmt.Errorf("max order %d (order-2 statistics require at least 2): %w", maxOrder, ErrOutOfRange)
	}

	orderStats := make([]OrderStat, 0, maxOrder)
	for k := 1; k <= maxOrder; k++ {
		model, err := est.Estimate(series, k)
		if err != nil {
			return nil, &FitError{Order: k, Err: err}
		}
		orderStats = append(orderStats, OrderStat{
			Order: k,
			Loss:  model.Loss(),
			FPE:   model.FPE(),
			AIC:   model.AIC(),
		})
	}

	result := &Result{
		Stats:    orderStats,
		BestAIC:  math.Inf(1),
		BestLoss: math.Inf(1),
	}

	aics := make([]float64, len(orderStats))
	for i, s := range orderStats {
		aics[i] = s.AIC
		if s.AIC < result.BestAIC {
			result.BestAIC = s.AIC
			result.BestAICOrder = s.Order
		}
		if s.Loss < result.BestLoss {
			result.BestLoss = s.Loss
			result.BestLossOrder = s.Order
		}
	}

	at2 := orderStats[1]
	result.AICAt2 = at2.AIC
	result.FPEAt2 = at2.FPE
	result.LossAt2 = at2.Loss

	diffs := stats.Diffs(aics)
	result.AICDiffMean = stats.MeanOf(diffs)
	result.AICDiffMax = stats.MaxOf(diffs)
	result.AICDiffMin = stats.MinOf(diffs)
	result.AICDiffNegative = stats.CountNegative(diffs)

	return result, nil
}
