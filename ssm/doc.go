// Package ssm implements autoregressive state-space model estimation.
//
// An AR(k) model is fitted with Yule-Walker initial estimates refined by
// conditional least squares. The fitted model reports the statistics an
// order sweep consumes: loss (residual variance), final prediction error,
// and AIC.
//
// # Basic Usage
//
//	model := ssm.New(2)
//	if err := model.Fit(series); err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("AIC: %.2f, FPE: %.4f\n", model.AIC(), model.FPE())
//
// # Use with sweep
//
// Estimator satisfies sweep.Estimator:
//
//	result, err := sweep.Fit(series, 8, ssm.NewEstimator())
package ssm
