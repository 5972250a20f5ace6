// Package tsfeat provides analysis-support utilities for a labeled
// time-series feature-extraction toolkit.
//
// Two independent, stateless utilities are included:
//
//   - group: partitions stored labeled records into keyword-defined groups
//     and validates that the partition is mutually exclusive and exhaustive.
//   - sweep: fits a family of autoregressive state-space models of
//     increasing order to a single series and aggregates the reported
//     goodness-of-fit statistics (loss, final prediction error, AIC).
//
// Supporting packages provide the time series container (timeseries),
// statistical primitives (stats), a concrete model estimator (ssm), and a
// SQLite-backed record store (record). The cmd/tsfeat command exposes both
// utilities on the command line.
package tsfeat
