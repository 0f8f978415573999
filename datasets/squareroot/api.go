package squareroot

import "math"

import "github.com/neurlang/micrograd/datasets"

// SmallBits is the input width of the default set.
const SmallBits = 8

// Classes returns the number of distinct square roots of bits-wide numbers.
func Classes(bits int) int {
	return 1 << ((bits + 1) / 2)
}

// Output is the integer square root of x.
func Output(x uint32) int {
	return int(math.Sqrt(float64(x)))
}

// New lists every bits-wide number with its integer square root as the
// one-hot target.
func New(bits int) datasets.Dataset {
	classes := Classes(bits)
	set := make(datasets.Dataset, 1<<bits)
	for i := range set {
		label := Output(uint32(i))
		set[i] = datasets.Sample{
			Input:  datasets.Bits(uint32(i), bits),
			Label:  label,
			Target: datasets.OneHot(label, classes),
		}
	}
	return set
}
