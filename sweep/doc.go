// Package sweep fits a family of state-space models of increasing order to a
// single time series and aggregates the reported goodness-of-fit statistics.
//
// The sweep itself performs no estimation. It delegates every fit to an
// Estimator collaborator and reads back loss, final prediction error, and AIC
// for each order, then summarizes the resulting criterion curve.
//
// # Basic Usage
//
//	est := ssm.NewEstimator()
//	result, err := sweep.Fit(series, 8, est)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("Best order by AIC: %d (AIC %.2f)\n",
//	    result.BestAICOrder, result.BestAIC)
//
// # Failure Semantics
//
// A single estimator failure is terminal for the whole sweep: Fit returns a
// *FitError naming the failing order and no partial result. There are no
// retries and no skipped orders.
package sweep
