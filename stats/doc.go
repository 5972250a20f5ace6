// Package stats provides statistical functions for time series analysis.
//
// # Autocorrelation
//
// Analyze autocorrelation patterns:
//
//	acf := stats.ACF(series, 20)
//
// # Sequence Summaries
//
// Summarize plain float sequences, such as an information-criterion curve
// across model orders:
//
//	diffs := stats.Diffs(aics)
//	mean := stats.MeanOf(diffs)
//	negatives := stats.CountNegative(diffs)
package stats
