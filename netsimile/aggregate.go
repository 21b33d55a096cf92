// SPDX-License-Identifier: MIT

package netsimile

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Statistic indices within one block of Aggregate's output.
const (
	StatMean = iota
	StatMedian
	StatStdDev
	StatSkewness
	StatKurtosis

	// NumStatistics is the number of statistics per feature.
	NumStatistics
)

// AggregateLen is the length of an aggregate vector.
const AggregateLen = NumStatistics * NumFeatures

// constantRange is the column range below which higher moments are forced to 0.
const constantRange = 1e-8

// Aggregate summarizes each feature column by mean, median, population
// standard deviation, skewness and excess kurtosis. The result is laid out
// statistic-major: out[s*NumFeatures+c] is statistic s of column c.
//
// Skewness and kurtosis are the bias-corrected estimators when enough
// samples exist (n > 2 and n > 3 respectively) and the biased moment ratios
// otherwise. Both are 0 for a column whose range is below 1e-8.
// A nil or empty matrix yields NaN for mean, median and standard deviation.
//
// Errors:
//   - ErrBadFeatureMatrix: f has a column count other than NumFeatures.
func Aggregate(f *mat.Dense) ([]float64, error) {
	out := make([]float64, AggregateLen)
	var n int
	if f != nil && !f.IsEmpty() {
		var c int
		n, c = f.Dims()
		if c != NumFeatures {
			return nil, ErrBadFeatureMatrix
		}
	}

	col := make([]float64, n)
	for c := 0; c < NumFeatures; c++ {
		if n > 0 {
			mat.Col(col, c, f)
		}
		mean, median, std, skew, kurt := describe(col)
		out[StatMean*NumFeatures+c] = mean
		out[StatMedian*NumFeatures+c] = median
		out[StatStdDev*NumFeatures+c] = std
		out[StatSkewness*NumFeatures+c] = skew
		out[StatKurtosis*NumFeatures+c] = kurt
	}

	return out, nil
}

// describe computes the five statistics of one column.
func describe(x []float64) (mean, median, std, skew, kurt float64) {
	if len(x) == 0 {
		nan := math.NaN()
		return nan, nan, nan, 0, 0
	}

	mean = stat.Mean(x, nil)
	std = stat.PopStdDev(x, nil)

	sorted := slices.Clone(x)
	slices.Sort(sorted)
	mid := len(sorted) / 2
	median = sorted[mid]
	if len(sorted)%2 == 0 {
		median = (sorted[mid-1] + sorted[mid]) / 2
	}

	if sorted[len(sorted)-1]-sorted[0] < constantRange {
		return mean, median, std, 0, 0
	}

	m2 := stat.Moment(2, x, nil)
	if len(x) > 2 {
		skew = stat.Skew(x, nil)
	} else {
		skew = stat.Moment(3, x, nil) / math.Pow(m2, 1.5)
	}
	if len(x) > 3 {
		kurt = stat.ExKurtosis(x, nil)
	} else {
		kurt = stat.Moment(4, x, nil)/(m2*m2) - 3
	}

	return mean, median, std, skew, kurt
}
