// Package datasets implements the sample and dataset types fed to the networks
package datasets

import "math/rand"

import "github.com/pkg/errors"
import "github.com/samber/lo"

var (
	// ErrDimension is returned by Validate for a sample of the wrong length.
	ErrDimension = errors.New("sample dimension mismatch")

	// ErrLabel is returned by Validate for a label outside the class range.
	ErrLabel = errors.New("label out of range")
)

// Sample is one input vector with its class label and the output vector the
// network is trained to produce for it.
type Sample struct {
	Input  []float64
	Label  int
	Target []float64
}

// Dataset is an ordered list of samples.
type Dataset []Sample

// Shuffle permutes the dataset in place.
func (d Dataset) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(d), func(i, j int) {
		d[i], d[j] = d[j], d[i]
	})
}

// Batches splits the dataset into consecutive batches of size samples; the
// last batch may be shorter. A size below 1 yields one batch.
func (d Dataset) Batches(size int) []Dataset {
	if len(d) == 0 {
		return nil
	}
	if size < 1 {
		size = len(d)
	}
	chunks := lo.Chunk([]Sample(d), size)
	out := make([]Dataset, len(chunks))
	for i, c := range chunks {
		out[i] = Dataset(c)
	}
	return out
}

// Validate checks that every input has dim elements, every target has the
// same length as the first one and every label lies in [0, classes). A
// classes value below 1 skips the label check.
func (d Dataset) Validate(dim, classes int) error {
	for i, s := range d {
		if len(s.Input) != dim {
			return errors.Wrapf(ErrDimension, "sample %d: input length %d, want %d", i, len(s.Input), dim)
		}
		if len(s.Target) != len(d[0].Target) {
			return errors.Wrapf(ErrDimension, "sample %d: target length %d, want %d", i, len(s.Target), len(d[0].Target))
		}
		if classes > 0 && (s.Label < 0 || s.Label >= classes) {
			return errors.Wrapf(ErrLabel, "sample %d: label %d, %d classes", i, s.Label, classes)
		}
	}
	return nil
}

// OneHot returns a target of classes elements set to -1 except the label
// position which is 1, matching the tanh output range.
func OneHot(label, classes int) []float64 {
	t := make([]float64, classes)
	for i := range t {
		t[i] = -1
	}
	if label >= 0 && label < classes {
		t[label] = 1
	}
	return t
}

// Binary returns the four-sample toy problem with three inputs and a single
// ±1 target. Label 1 marks the positive samples.
func Binary() Dataset {
	xs := [][]float64{
		{2.0, 3.0, -1.0},
		{3.0, -1.0, 0.5},
		{0.5, 1.0, 1.0},
		{1.0, 1.0, -1.0},
	}
	ys := []float64{1.0, -1.0, -1.0, 1.0}
	d := make(Dataset, len(xs))
	for i := range xs {
		d[i] = Sample{Input: xs[i], Target: []float64{ys[i]}}
		if ys[i] > 0 {
			d[i].Label = 1
		}
	}
	return d
}

// Bits encodes the low n bits of x as ±1 inputs, most significant first.
func Bits(x uint32, n int) []float64 {
	return lo.Times(n, func(i int) float64 {
		if x>>(n-1-i)&1 != 0 {
			return 1
		}
		return -1
	})
}
