package trainer

import "crypto/sha256"
import "encoding/binary"
import "math"
import "math/rand"

import "github.com/neurlang/micrograd/datasets"
import "github.com/neurlang/quaternary"
import "github.com/pkg/errors"
import "gonum.org/v1/gonum/floats"

// Inferer evaluates a network on plain inputs.
type Inferer interface {
	Infer(inputs []float64) ([]float64, error)
}

// Mistake is one misclassified sample.
type Mistake struct {
	Index     int
	Expected  int
	Predicted int
}

// Report summarizes an evaluation run.
type Report struct {
	Correct  int
	Total    int
	Accuracy float64 // percent

	Incorrect []Mistake

	// Record is a quaternary filter of which sample indexes were classified
	// correctly, nil for an empty set.
	Record []byte

	// State fingerprints the predicted labels, two runs predicting the same
	// labels in the same order have equal states.
	State [32]byte
}

// Predict maps network outputs to a class. A single output is a binary
// classifier with the decision boundary at zero, otherwise the index of the
// largest output wins, the lowest index on a tie.
func Predict(out []float64) int {
	switch len(out) {
	case 0:
		return -1
	case 1:
		if out[0] > 0 {
			return 1
		}
		return 0
	}
	return floats.MaxIdx(out)
}

// Evaluate runs m over every sample of set.
func Evaluate(m Inferer, set datasets.Dataset) (r Report, err error) {
	var predicted = make([]byte, 2*len(set))
	var record = make(map[uint32]bool, len(set))
	for i, s := range set {
		out, err := m.Infer(s.Input)
		if err != nil {
			return r, errors.Wrapf(err, "sample %d", i)
		}
		p := Predict(out)
		binary.BigEndian.PutUint16(predicted[2*i:], uint16(p))
		record[uint32(i)] = p == s.Label
		if p == s.Label {
			r.Correct++
		} else {
			r.Incorrect = append(r.Incorrect, Mistake{Index: i, Expected: s.Label, Predicted: p})
		}
	}
	r.Total = len(set)
	if r.Total > 0 {
		r.Accuracy = 100 * float64(r.Correct) / float64(r.Total)
		r.Record = []byte(quaternary.Make(record))
	}
	r.State = sha256.Sum256(predicted)
	return r, nil
}

// EvaluateSample evaluates a random subset of set large enough to estimate
// the accuracy at the given significance level (0-100). Large test sets are
// checked this way between iterations.
func EvaluateSample(m Inferer, set datasets.Dataset, significance byte, rng *rand.Rand) (Report, error) {
	n := sampleSize(len(set), significance)
	if n >= len(set) {
		return Evaluate(m, set)
	}
	sub := make(datasets.Dataset, n)
	for i, j := range rng.Perm(len(set))[:n] {
		sub[i] = set[j]
	}
	return Evaluate(m, sub)
}

// sampleSize calculates the statistically sufficient sample size
// for a given dataset size N and significance level (0–100).
func sampleSize(N int, significance byte) int {
	if N <= 1 || significance >= 100 {
		return N
	}

	// Convert significance level to Z-score
	z := zScoreFromAlpha(100 - significance)

	// Assume worst-case proportion p = 0.5 for max variability
	p := 0.5
	e := float64(100-significance) * 0.01

	ss := math.Pow(z, 2) * p * (1 - p) / math.Pow(e, 2)

	// finite population correction
	corrected := ss * float64(N) / (float64(N) - 1 + ss)

	if int(corrected) > N {
		return N
	}
	return int(corrected)
}

// zScoreFromAlpha returns the Z-score for a given alpha level
// Common: 90% => 1.645, 95% => 1.96, 99% => 2.576
func zScoreFromAlpha(alpha byte) float64 {
	switch {
	case alpha <= 1:
		return 2.576
	case alpha <= 5:
		return 1.96
	case alpha <= 10:
		return 1.645
	default:
		return 1.96
	}
}
