// Package ssm implements autoregressive state-space model estimation.
package ssm

import (
	"errors"
	"fmt"
	"math"

	"github.com/sartorproj/tsfeat/stats"
	"github.com/sartorproj/tsfeat/sweep"
	"github.com/sartorproj/tsfeat/timeseries"
)

// Model represents a fitted AR(k) state-space model.
type Model struct {
	Order     int
	Coeffs    []float64 // AR coefficients (phi)
	Intercept float64

	loss      float64 // residual variance V
	fpe       float64
	aic       float64
	logLik    float64
	residuals []float64
	fitted    bool
}

// New creates an unfitted AR model of the given order.
func New(order int) *Model {
	return &Model{
		Order:  order,
		Coeffs: make([]float64, order),
	}
}

// Fit estimates the model parameters from the series using Yule-Walker
// initial estimates refined by conditional least squares.
func (m *Model) Fit(series *timeseries.Series) error {
	if m.Order < 1 {
		return errors.New("order must be at least 1")
	}
	if series.Len() < m.Order+10 {
		return errors.New("insufficient data points for the specified order")
	}

	y := series.Values
	n := len(y)
	k := m.Order

	mean := 0.0
	for _, v := range y {
		mean += v
	}
	m.Intercept = mean / float64(n)

	acf := stats.ACF(series, k)
	if acf == nil {
		return errors.New("series has zero variance")
	}
	m.Coeffs = yuleWalker(acf, k)
	if m.Coeffs == nil {
		return errors.New("yule-walker estimation failed")
	}

	m.refineCSS(y)
	m.calculateStats(n)

	m.fitted = true
	return nil
}

// refineCSS refines the AR coefficients by minimizing the conditional sum of
// squares with a fixed-step gradient iteration.
func (m *Model) refineCSS(y []float64) {
	n := len(y)
	k := m.Order

	maxIter := 100
	tolerance := 1e-6
	learningRate := 0.01

	prevSSE := math.Inf(1)
	for iter := 0; iter < maxIter; iter++ {
		grad := make([]float64, k)
		sse := 0.0

		for t := k; t < n; t++ {
			pred := m.Intercept
			for i := 0; i < k; i++ {
				pred += m.Coeffs[i] * (y[t-i-1] - m.Intercept)
			}
			resid := y[t] - pred
			sse += resid * resid
			for i := 0; i < k; i++ {
				grad[i] -= 2 * resid * (y[t-i-1] - m.Intercept)
			}
		}

		for i := 0; i < k; i++ {
			m.Coeffs[i] -= learningRate * grad[i] / float64(n)
			// Constrain for stationarity (simple bounds)
			m.Coeffs[i] = math.Max(-0.99, math.Min(0.99, m.Coeffs[i]))
		}

		if math.Abs(prevSSE-sse) < tolerance {
			break
		}
		prevSSE = sse
	}

	m.residuals = make([]float64, n)
	for t := 0; t < n; t++ {
		if t < k {
			m.residuals[t] = y[t] - m.Intercept
			continue
		}
		pred := m.Intercept
		for i := 0; i < k; i++ {
			pred += m.Coeffs[i] * (y[t-i-1] - m.Intercept)
		}
		m.residuals[t] = y[t] - pred
	}
}

// calculateStats computes the residual variance, log-likelihood, AIC, and FPE.
func (m *Model) calculateStats(n int) {
	k := m.Order
	d := k + 1 // AR coefficients + intercept

	sse := 0.0
	count := 0
	for t := k; t < n; t++ {
		sse += m.residuals[t] * m.residuals[t]
		count++
	}

	if count > d {
		m.loss = sse / float64(count-d)
	} else {
		m.loss = sse / float64(count)
	}

	// Log-likelihood (assuming Gaussian errors)
	if m.loss > 0 {
		m.logLik = -float64(count)/2*math.Log(2*math.Pi) -
			float64(count)/2*math.Log(m.loss) - sse/(2*m.loss)
	} else {
		m.logLik = math.Inf(-1)
	}

	m.aic = -2*m.logLik + 2*float64(d)

	// Akaike's final prediction error
	if count > d {
		m.fpe = m.loss * float64(count+d) / float64(count-d)
	} else {
		m.fpe = math.Inf(1)
	}
}

// Loss returns the loss-function value (residual variance) of the fit.
func (m *Model) Loss() float64 { return m.loss }

// FPE returns Akaike's final prediction error.
func (m *Model) FPE() float64 { return m.fpe }

// AIC returns the Akaike information criterion.
func (m *Model) AIC() float64 { return m.aic }

// LogLik returns the Gaussian log-likelihood of the fit.
func (m *Model) LogLik() float64 { return m.logLik }

// NumParams returns the number of estimated parameters (coefficients plus
// intercept).
func (m *Model) NumParams() int { return m.Order + 1 }

// Residuals returns a copy of the model residuals, or nil before fitting.
func (m *Model) Residuals() []float64 {
	if !m.fitted {
		return nil
	}
	result := make([]float64, len(m.residuals))
	copy(result, m.residuals)
	return result
}

// Estimator adapts AR model fitting to the sweep.Estimator interface.
type Estimator struct{}

// NewEstimator returns an estimator usable with sweep.Fit.
func NewEstimator() *Estimator {
	return &Estimator{}
}

// Estimate fits an AR model of the given order to the series.
func (e *Estimator) Estimate(series *timeseries.Series, order int) (sweep.Model, error) {
	model := New(order)
	if err := model.Fit(series); err != nil {
		return nil, fmt.Errorf("estimate order %d: %w", order, err)
	}
	return model, nil
}

// yuleWalker estimates AR coefficients from the ACF using the
// Levinson-Durbin recursion.
func yuleWalker(acf []float64, order int) []float64 {
	if order <= 0 || len(acf) <= order {
		return nil
	}

	phi := make([]float64, order)
	phi[0] = acf[1]
	if order == 1 {
		return phi
	}

	v := 1 - phi[0]*phi[0]
	for i := 1; i < order; i++ {
		lambda := acf[i+1]
		for j := 0; j < i; j++ {
			lambda -= phi[j] * acf[i-j]
		}
		lambda /= v

		newPhi := make([]float64, i+1)
		for j := 0; j < i; j++ {
			newPhi[j] = phi[j] - lambda*phi[i-1-j]
		}
		newPhi[i] = lambda
		copy(phi, newPhi)

		v *= (1 - lambda*lambda)
		if v <= 0 {
			break
		}
	}

	return phi
}
