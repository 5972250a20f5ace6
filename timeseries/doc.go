// Package timeseries provides time series data structures and utilities.
//
// This package includes the Series type for representing time series data,
// along with CSV loading and basic transformations.
//
// # Creating a Series
//
// Create a time series from a slice:
//
//	values := []float64{100, 102, 105, 103, 108, 110}
//	series := timeseries.New(values)
//
// # Loading from CSV
//
//	// Load a specific column
//	series, err := timeseries.LoadCSVColumn("data.csv", "value")
//
// # Basic Statistics
//
//	mean := series.Mean()
//	std := series.Std()
//	min := series.Min()
//	max := series.Max()
//
// # Transformations
//
//	diff := series.Diff()    // First difference
//	diff2 := series.DiffN(2) // Second difference
//	subset := series.Slice(10, 50)
package timeseries
