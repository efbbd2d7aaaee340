// Package gpa computes grade point averages from a student's grades.
package gpa

import (
	"math"
	"strconv"
)

// Strategy maps a collection of grades, keyed by course code, to a
// single grade point average. Implementations must be total.
type Strategy interface {
	Calculate(grades map[string]float64) float64
}

// StrategyFunc adapts an ordinary function to the Strategy interface.
type StrategyFunc func(grades map[string]float64) float64

// Calculate implements Strategy.
func (f StrategyFunc) Calculate(grades map[string]float64) float64 {
	return f(grades)
}

// Regular is the unweighted arithmetic mean of all grades. Course
// credits play no part.
type Regular struct{}

// Calculate returns 0.0 for no grades, otherwise the mean.
func (Regular) Calculate(grades map[string]float64) float64 {
	if len(grades) == 0 {
		return 0.0
	}

	var sum float64
	for _, g := range grades {
		sum += g
	}
	return sum / float64(len(grades))
}

// Default returns the strategy given to students when none is configured.
func Default() Strategy {
	return Regular{}
}

// Format renders a grade or GPA with at least one decimal place,
// e.g. 4 -> "4.0", 3.5 -> "3.5". NaN and infinities render as "NaN",
// "+Inf" and "-Inf".
func Format(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return s
	}
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			return s
		}
	}
	return s + ".0"
}
