package full

import "testing"

import "github.com/neurlang/micrograd/initializer"
import "github.com/neurlang/micrograd/layer"
import "github.com/neurlang/micrograd/scalar"
import "github.com/pkg/errors"

func TestForwardIndependentUnits(t *testing.T) {
	var tape scalar.Tape
	l := MustNew(&tape, 3, 4, initializer.NewHashed(9))
	x := tape.Constants([]float64{0.5, -1, 2})
	out, err := l.Forward(x)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 4 || l.Outputs() != 4 || l.Inputs() != 3 {
		t.Fatalf("got %d outputs", len(out))
	}
	for i, n := range l.Neurons() {
		want, _ := n.Forward(x)
		if out[i].Data() != want.Data() {
			t.Errorf("unit %d: got %v, want %v", i, out[i].Data(), want.Data())
		}
	}
}

func TestParametersConcatenated(t *testing.T) {
	var tape scalar.Tape
	l := MustNew(&tape, 2, 3, initializer.NewHashed(2))
	params := l.GetParameters()
	if len(params) != 3*(2+1) {
		t.Fatalf("got %d parameters", len(params))
	}
	var k int
	for _, n := range l.Neurons() {
		for _, p := range n.GetParameters() {
			if params[k] != p {
				t.Errorf("parameter %d out of order", k)
			}
			k++
		}
	}
}

func TestErrors(t *testing.T) {
	var tape scalar.Tape
	if _, err := New(&tape, 2, 0, initializer.Constant(0)); errors.Cause(err) != ErrNoNeurons {
		t.Errorf("nout=0: got %v", err)
	}
	if _, err := New(&tape, 0, 2, initializer.Constant(0)); err == nil {
		t.Errorf("nin=0: expected error")
	}
	l := MustNew(&tape, 2, 2, initializer.Constant(0.3))
	if _, err := l.Forward(tape.Constants([]float64{1})); errors.Cause(err) != layer.ErrShapeMismatch {
		t.Errorf("short input: got %v", err)
	}
}

func TestZeroGrad(t *testing.T) {
	var tape scalar.Tape
	l := MustNew(&tape, 2, 2, initializer.NewHashed(5))
	out, _ := l.Forward(tape.Constants([]float64{1, 2}))
	out[0].Add(out[1]).Backward()
	var nonzero bool
	for _, p := range l.GetParameters() {
		nonzero = nonzero || p.Gradient() != 0
	}
	if !nonzero {
		t.Fatalf("backward left every gradient at zero")
	}
	l.ZeroGrad()
	for i, p := range l.GetParameters() {
		if p.Gradient() != 0 {
			t.Errorf("parameter %d: gradient %v", i, p.Gradient())
		}
	}
}
