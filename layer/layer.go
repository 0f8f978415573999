// Package layer defines the trainable parameter capability shared by
// neurons, layers and networks, and the layer interface
package layer

import "github.com/neurlang/micrograd/scalar"
import "github.com/pkg/errors"
import "github.com/samber/lo"

// ErrShapeMismatch reports an input vector whose length differs from the
// input dimension of the unit, layer or network it was fed to.
var ErrShapeMismatch = errors.New("input shape mismatch")

// Parameterized is anything owning trainable scalars.
type Parameterized interface {

	// GetParameters returns every trainable scalar in a stable order. The
	// trainer reads their gradients and writes their data.
	GetParameters() []scalar.Value

	// ZeroGrad resets the gradient of every parameter.
	ZeroGrad()
}

// Layer maps an input vector to an output vector.
type Layer interface {
	Parameterized

	// Forward records the layer computation on the inputs' tape.
	Forward(inputs []scalar.Value) ([]scalar.Value, error)

	// Inputs is the expected input length.
	Inputs() int

	// Outputs is the produced output length.
	Outputs() int
}

// ZeroGrad resets the gradients of every parameter of p.
func ZeroGrad(p Parameterized) {
	for _, v := range p.GetParameters() {
		v.ZeroGrad()
	}
}

// Collect concatenates the parameters of ps in order.
func Collect[P Parameterized](ps []P) []scalar.Value {
	return lo.FlatMap(ps, func(p P, _ int) []scalar.Value {
		return p.GetParameters()
	})
}

// CheckShape returns ErrShapeMismatch with context when got != want.
func CheckShape(got, want int) error {
	if got != want {
		return errors.Wrapf(ErrShapeMismatch, "got %d inputs, want %d", got, want)
	}
	return nil
}
