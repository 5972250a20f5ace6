package sweep

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/tsfeat/timeseries"
)

// stubModel reports canned statistics for one order.
type stubModel struct {
	loss, fpe, aic float64
	params         int
}

func (m stubModel) Loss() float64  { return m.loss }
func (m stubModel) FPE() float64   { return m.fpe }
func (m stubModel) AIC() float64   { return m.aic }
func (m stubModel) NumParams() int { return m.params }

// stubEstimator serves stats indexed by order and records the orders asked for.
type stubEstimator struct {
	models    map[int]stubModel
	failOrder int
	calls     []int
}

func (e *stubEstimator) Estimate(series *timeseries.Series, order int) (Model, error) {
	e.calls = append(e.calls, order)
	if e.failOrder != 0 && order == e.failOrder {
		return nil, fmt.Errorf("estimate order %d: singular system", order)
	}
	m, ok := e.models[order]
	if !ok {
		return nil, fmt.Errorf("no stub for order %d", order)
	}
	return m, nil
}

func newStubEstimator(aics []float64) *stubEstimator {
	models := make(map[int]stubModel, len(aics))
	for i, aic := range aics {
		order := i + 1
		models[order] = stubModel{
			loss:   float64(10 - order), // strictly decreasing
			fpe:    aic + 0.5,
			aic:    aic,
			params: order + 1,
		}
	}
	return &stubEstimator{models: models}
}

func TestFitAggregates(t *testing.T) {
	est := newStubEstimator([]float64{10, 8, 9, 7, 7})
	series := timeseries.New([]float64{1, 2, 3, 4, 5})

	result, err := Fit(series, 5, est)
	require.NoError(t, err)
	require.Len(t, result.Stats, 5)

	// Minimum AIC is 7, first achieved at order 4
	assert.Equal(t, 4, result.BestAICOrder)
	assert.InDelta(t, 7, result.BestAIC, 1e-10)

	// Loss is strictly decreasing, so order 5 wins
	assert.Equal(t, 5, result.BestLossOrder)
	assert.InDelta(t, 5, result.BestLoss, 1e-10)

	// Order-2 statistics
	assert.InDelta(t, 8, result.AICAt2, 1e-10)
	assert.InDelta(t, 8.5, result.FPEAt2, 1e-10)
	assert.InDelta(t, 8, result.LossAt2, 1e-10)

	// AIC diffs are [-2, 1, -2, 0]
	assert.InDelta(t, -0.75, result.AICDiffMean, 1e-10)
	assert.InDelta(t, 1, result.AICDiffMax, 1e-10)
	assert.InDelta(t, -2, result.AICDiffMin, 1e-10)
	assert.Equal(t, 2, result.AICDiffNegative)
}

func TestFitSweepsOrdersInSequence(t *testing.T) {
	est := newStubEstimator([]float64{5, 4, 3})
	series := timeseries.New([]float64{1, 2, 3})

	_, err := Fit(series, 3, est)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, est.calls)
}

func TestFitMaxOrderOutOfRange(t *testing.T) {
	est := newStubEstimator([]float64{5})
	series := timeseries.New([]float64{1, 2, 3})

	for _, maxOrder := range []int{1, 0, -3} {
		result, err := Fit(series, maxOrder, est)
		assert.Nil(t, result)
		assert.ErrorIs(t, err, ErrOutOfRange, "maxOrder=%d", maxOrder)
	}

	// The estimator must never have been consulted
	assert.Empty(t, est.calls)
}

func TestFitEstimatorFailureIsTerminal(t *testing.T) {
	est := newStubEstimator([]float64{10, 9, 8, 7, 6})
	est.failOrder = 3
	series := timeseries.New([]float64{1, 2, 3, 4, 5})

	result, err := Fit(series, 5, est)
	require.Error(t, err)
	assert.Nil(t, result)

	var fitErr *FitError
	require.True(t, errors.As(err, &fitErr))
	assert.Equal(t, 3, fitErr.Order)
	assert.Contains(t, err.Error(), "order 3")

	// Sweep stopped at the failure; later orders were never attempted
	assert.Equal(t, []int{1, 2, 3}, est.calls)
}
