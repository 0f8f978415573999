// Package initializer provides the random scalar sources used to set the
// initial weights and biases of a network.
package initializer

import "time"

// Source produces initial parameter values.
type Source interface {

	// NextSignedUnit returns a value in [-1, 1].
	NextSignedUnit() float64
}

// Func adapts a plain function to a Source.
type Func func() float64

// NextSignedUnit calls f.
func (f Func) NextSignedUnit() float64 {
	return f()
}

// Constant is a Source always returning the same value. It is useful for
// tests and for symmetric starting points.
type Constant float64

// NextSignedUnit returns c.
func (c Constant) NextSignedUnit() float64 {
	return float64(c)
}

// Default is the process-wide source, seeded from the clock. It is safe to
// share between concurrently constructed networks.
var Default Source = NewLocked(time.Now().UnixNano())
