package trainer

import "math/rand"
import "path/filepath"
import "testing"

import "github.com/neurlang/micrograd/datasets"
import "github.com/neurlang/micrograd/initializer"
import "github.com/neurlang/micrograd/net/feedforward"
import "github.com/neurlang/micrograd/scalar"
import "github.com/pkg/errors"

type echo struct{}

func (echo) Infer(inputs []float64) ([]float64, error) {
	return inputs, nil
}

type broken struct{}

func (broken) Infer([]float64) ([]float64, error) {
	return nil, errors.New("broken")
}

func TestPredict(t *testing.T) {
	for _, test := range []struct {
		out  []float64
		want int
	}{
		{nil, -1},
		{[]float64{0.3}, 1},
		{[]float64{0}, 0},
		{[]float64{-0.9}, 0},
		{[]float64{-1, 0.5, 0.2}, 1},
		{[]float64{0.7, 0.7, 0.1}, 0},
	} {
		if got := Predict(test.out); got != test.want {
			t.Errorf("Predict(%v) = %d, want %d", test.out, got, test.want)
		}
	}
}

func TestEvaluate(t *testing.T) {
	set := datasets.Dataset{
		{Input: []float64{1, 0, 0}, Label: 0},
		{Input: []float64{0, 1, 0}, Label: 1},
		{Input: []float64{0, 0, 1}, Label: 1},
		{Input: []float64{0, 0, 1}, Label: 2},
	}
	r, err := Evaluate(echo{}, set)
	if err != nil {
		t.Fatal(err)
	}
	if r.Correct != 3 || r.Total != 4 || r.Accuracy != 75 {
		t.Errorf("got %d/%d, %v%%", r.Correct, r.Total, r.Accuracy)
	}
	if len(r.Incorrect) != 1 || r.Incorrect[0] != (Mistake{Index: 2, Expected: 1, Predicted: 2}) {
		t.Errorf("mistakes %v", r.Incorrect)
	}
	if len(r.Record) == 0 {
		t.Errorf("missing record")
	}

	again, _ := Evaluate(echo{}, set)
	if again.State != r.State {
		t.Errorf("state differs between identical runs")
	}
	set[0].Input = []float64{0, 1, 0}
	changed, _ := Evaluate(echo{}, set)
	if changed.State == r.State {
		t.Errorf("state ignores predictions")
	}
}

func TestEvaluateEmptyAndErrors(t *testing.T) {
	r, err := Evaluate(echo{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if r.Total != 0 || r.Accuracy != 0 || r.Record != nil {
		t.Errorf("empty set gave %+v", r)
	}
	if _, err := Evaluate(broken{}, datasets.Binary()); err == nil || err.Error() != "sample 0: broken" {
		t.Errorf("got %v", err)
	}
}

func TestEvaluateSample(t *testing.T) {
	set := make(datasets.Dataset, 1000)
	for i := range set {
		set[i] = datasets.Sample{Input: []float64{1, 0}, Label: 0}
	}
	r, err := EvaluateSample(echo{}, set, 95, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}
	if r.Total != sampleSize(1000, 95) || r.Total >= 1000 || r.Accuracy != 100 {
		t.Errorf("evaluated %d samples, accuracy %v", r.Total, r.Accuracy)
	}

	small, _ := EvaluateSample(echo{}, set[:3], 95, rand.New(rand.NewSource(1)))
	if small.Total != 3 {
		t.Errorf("small set sampled down to %d", small.Total)
	}
}

func TestSampleSize(t *testing.T) {
	if n := sampleSize(1000, 95); n < 250 || n > 300 {
		t.Errorf("got %d", n)
	}
	if n := sampleSize(10, 100); n != 10 {
		t.Errorf("full significance: got %d", n)
	}
	if n := sampleSize(1, 95); n != 1 {
		t.Errorf("single sample: got %d", n)
	}
}

func TestEvaluateNetwork(t *testing.T) {
	net := feedforward.MustNew(new(scalar.Tape), initializer.NewHashed(7), 3, 4, 4, 1)
	before, err := Evaluate(net, datasets.Binary())
	if err != nil {
		t.Fatal(err)
	}
	if before.Total != 4 {
		t.Fatalf("total %d", before.Total)
	}
	if net.Tape().Len() != net.Len() {
		t.Errorf("evaluation left %d nodes on the tape", net.Tape().Len()-net.Len())
	}
}

func TestResume(t *testing.T) {
	dir := t.TempDir()
	src := feedforward.MustNew(new(scalar.Tape), initializer.NewHashed(1), 3, 2, 1)
	dst := feedforward.MustNew(new(scalar.Tape), initializer.NewHashed(2), 3, 2, 1)

	if ok, err := Resume(dst, ""); ok || err != nil {
		t.Errorf("empty path: %v %v", ok, err)
	}
	if ok, err := Resume(dst, filepath.Join(dir, "missing.json.lzw")); ok || err != nil {
		t.Errorf("missing file: %v %v", ok, err)
	}

	path := filepath.Join(dir, "weights.json.lzw")
	if err := src.WriteCompressedWeightsToFile(path); err != nil {
		t.Fatal(err)
	}
	ok, err := Resume(dst, path)
	if !ok || err != nil {
		t.Fatalf("resume: %v %v", ok, err)
	}
	for i, p := range src.GetParameters() {
		if dst.GetParameter(i).Data() != p.Data() {
			t.Errorf("parameter %d: got %v, want %v", i, dst.GetParameter(i).Data(), p.Data())
		}
	}

	other := feedforward.MustNew(new(scalar.Tape), initializer.NewHashed(2), 3, 1)
	if _, err := Resume(other, path); err == nil {
		t.Errorf("expected a weight count error")
	}
}
