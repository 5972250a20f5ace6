package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sartorproj/tsfeat/ssm"
	"github.com/sartorproj/tsfeat/sweep"
	"github.com/sartorproj/tsfeat/timeseries"
)

var (
	sweepCSVPath     string
	sweepValueColumn string
	sweepMaxOrder    int
	sweepDiffOrder   int
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Fit state-space models of increasing order to a series",
	Long: `Load a time series from CSV and fit an autoregressive state-space
model at each order from 1 to --max-order, reporting loss, final prediction
error, and AIC per order plus aggregate statistics of the AIC curve.`,
	RunE: runSweep,
}

func init() {
	sweepCmd.Flags().StringVar(&sweepCSVPath, "csv", "", "CSV file holding the series")
	sweepCmd.Flags().StringVar(&sweepValueColumn, "value-column", "y", "CSV column holding the values")
	sweepCmd.Flags().IntVar(&sweepMaxOrder, "max-order", 8, "maximum model order to fit")
	sweepCmd.Flags().IntVar(&sweepDiffOrder, "diff", 0, "difference the series this many times before fitting")
	sweepCmd.MarkFlagRequired("csv")
}

func runSweep(cmd *cobra.Command, args []string) error {
	opts := timeseries.DefaultCSVOptions()
	opts.ValueColumn = sweepValueColumn

	series, err := timeseries.LoadCSV(sweepCSVPath, opts)
	if err != nil {
		return err
	}
	logger.Debug("loaded series", zap.String("csv", sweepCSVPath), zap.Int("length", series.Len()))

	for i := 0; i < sweepDiffOrder; i++ {
		series = series.Diff()
		if series.Len() == 0 {
			return fmt.Errorf("differencing %d times left no observations", sweepDiffOrder)
		}
	}

	result, err := sweep.Fit(series, sweepMaxOrder, ssm.NewEstimator())
	if err != nil {
		return err
	}

	fmt.Printf("%-6s  %12s  %12s  %12s\n", "ORDER", "LOSS", "FPE", "AIC")
	for _, s := range result.Stats {
		fmt.Printf("%-6d  %12.6f  %12.6f  %12.4f\n", s.Order, s.Loss, s.FPE, s.AIC)
	}

	fmt.Println()
	fmt.Printf("Best AIC:   %.4f at order %d\n", result.BestAIC, result.BestAICOrder)
	fmt.Printf("Best loss:  %.6f at order %d\n", result.BestLoss, result.BestLossOrder)
	fmt.Printf("At order 2: loss=%.6f fpe=%.6f aic=%.4f\n",
		result.LossAt2, result.FPEAt2, result.AICAt2)
	fmt.Printf("AIC diffs:  mean=%.4f max=%.4f min=%.4f negative=%d\n",
		result.AICDiffMean, result.AICDiffMax, result.AICDiffMin, result.AICDiffNegative)
	return nil
}
