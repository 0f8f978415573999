// Package isalnum implements the IsAlnum Dataset
package isalnum

import "github.com/neurlang/micrograd/datasets"

// Bits is the input width, one byte.
const Bits = 8

// Sample is one byte value.
type Sample rune

// Output is 1 for an ASCII letter or digit, 0 otherwise.
func (c Sample) Output() int {
	if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
		return 1
	}
	return 0
}

// Set materializes all 256 byte values as a single-output ±1 classification
// set.
func Set() datasets.Dataset {
	set := make(datasets.Dataset, 1<<Bits)
	for i := range set {
		c := Sample(i)
		target := -1.0
		if c.Output() == 1 {
			target = 1
		}
		set[i] = datasets.Sample{
			Input:  datasets.Bits(uint32(c), Bits),
			Label:  c.Output(),
			Target: []float64{target},
		}
	}
	return set
}
