package scalar

import "math"
import "testing"

import "github.com/pkg/errors"

func approx(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestAddMulData(t *testing.T) {
	testCases := []struct {
		name string
		a, b float64
	}{
		{"positive", 2, 3},
		{"negative", -1.5, 4},
		{"zero", 0, 7},
		{"fraction", 0.25, -0.5},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var tape Tape
			a, b := tape.New(tc.a), tape.New(tc.b)
			if got := a.Add(b).Data(); got != tc.a+tc.b {
				t.Errorf("Add: got %v, want %v", got, tc.a+tc.b)
			}
			if got := a.Mul(b).Data(); got != tc.a*tc.b {
				t.Errorf("Mul: got %v, want %v", got, tc.a*tc.b)
			}
			if a.Gradient() != 0 || b.Gradient() != 0 {
				t.Errorf("new values must start with zero gradient")
			}
		})
	}
}

func TestDerivedOps(t *testing.T) {
	var tape Tape
	a, b := tape.New(6), tape.New(-2)

	if got := a.Neg().Data(); got != -6 {
		t.Errorf("Neg: got %v", got)
	}
	if got := a.Sub(b).Data(); got != 8 {
		t.Errorf("Sub: got %v", got)
	}
	if got := a.Div(b).Data(); got != -3 {
		t.Errorf("Div: got %v", got)
	}
	if got := b.Pow(3).Data(); got != -8 {
		t.Errorf("Pow: got %v", got)
	}
	if got := tape.New(1).Exp().Data(); !approx(got, math.E, 1e-12) {
		t.Errorf("Exp: got %v", got)
	}

	// d(a/b)/da = 1/b, d(a/b)/db = -a/b^2
	q := a.Div(b)
	q.Backward()
	if !approx(a.Gradient(), -0.5, 1e-12) {
		t.Errorf("Div grad a: got %v", a.Gradient())
	}
	if !approx(b.Gradient(), -1.5, 1e-12) {
		t.Errorf("Div grad b: got %v", b.Gradient())
	}
}

func TestChildrenAndOp(t *testing.T) {
	var tape Tape
	x := tape.New(3).SetLabel("x")
	y := x.Mul(x)
	if y.Op() != OpMul {
		t.Fatalf("op: got %v", y.Op())
	}
	children := y.Children()
	if len(children) != 2 || children[0] != x || children[1] != x {
		t.Errorf("children: got %v", children)
	}
	if x.Children() != nil || x.Op() != OpNone {
		t.Errorf("leaf must have no children")
	}
	if x.Label() != "x" || y.Label() != "" {
		t.Errorf("labels: got %q %q", x.Label(), y.Label())
	}
	p := x.Pow(4)
	if p.Exponent() != 4 || p.Op().String() != "pow" {
		t.Errorf("pow node: exponent %d op %s", p.Exponent(), p.Op())
	}
}

func TestPowZeroBasePanics(t *testing.T) {
	for _, n := range []int{0, -1, -3} {
		func() {
			defer func() {
				r := recover()
				err, ok := r.(error)
				if !ok || errors.Cause(err) != ErrInvalidPower {
					t.Errorf("0^%d: recovered %v, want ErrInvalidPower", n, r)
				}
			}()
			var tape Tape
			tape.New(0).Pow(n)
		}()
	}

	var tape Tape
	if got := tape.New(0).Pow(2).Data(); got != 0 {
		t.Errorf("0^2: got %v", got)
	}
}

func TestForeignValuePanics(t *testing.T) {
	defer func() {
		if r := recover(); r != ErrForeignValue {
			t.Errorf("recovered %v, want ErrForeignValue", r)
		}
	}()
	var t1, t2 Tape
	t1.New(1).Add(t2.New(2))
}

func TestReleaseKeepsParameters(t *testing.T) {
	var tape Tape
	w := tape.New(0.5).SetLabel("w")
	mark := tape.Mark()

	for i := 0; i < 3; i++ {
		x := tape.New(2).SetLabel("x")
		y := w.Mul(x)
		w.ZeroGrad()
		y.Backward()
		if w.Gradient() != 2 {
			t.Fatalf("iteration %d: got gradient %v", i, w.Gradient())
		}
		w.SetData(w.Data() - 0.1*w.Gradient())
		tape.Release(mark)
		if tape.Len() != 1 {
			t.Fatalf("iteration %d: tape length %d after release", i, tape.Len())
		}
		if x.Valid() {
			t.Fatalf("iteration %d: released value still valid", i)
		}
	}
	if !approx(w.Data(), -0.1, 1e-12) || w.Label() != "w" {
		t.Errorf("parameter changed by release: %v %q", w, w.Label())
	}
}

func TestReleasedValueStaysInvalid(t *testing.T) {
	var tape Tape
	w := tape.New(0.5)
	mark := tape.Mark()
	stale := tape.New(1)
	tape.Release(mark)
	fresh := tape.New(2)

	if stale.Valid() {
		t.Errorf("released value valid again after its index was reused")
	}
	if !fresh.Valid() || !w.Valid() || fresh.Data() != 2 {
		t.Errorf("live values must stay valid")
	}
	if c := fresh.Mul(w).Children(); !c[0].Valid() || c[0] != fresh || c[1] != w {
		t.Errorf("children %v", c)
	}

	defer func() {
		err, _ := recover().(error)
		if errors.Cause(err) != ErrStaleValue {
			t.Errorf("got panic %v", err)
		}
	}()
	stale.Data()
}

func TestConstants(t *testing.T) {
	tape := NewTape(4)
	vs := tape.Constants([]float64{1, 2, 3})
	if len(vs) != 3 || tape.Len() != 3 {
		t.Fatalf("got %d values on a tape of %d", len(vs), tape.Len())
	}
	if got := Sum(vs...).Data(); got != 6 {
		t.Errorf("Sum: got %v", got)
	}
}
