// Package neuron implements a single tanh unit
package neuron

import "github.com/neurlang/micrograd/initializer"
import "github.com/neurlang/micrograd/layer"
import "github.com/neurlang/micrograd/scalar"
import "github.com/pkg/errors"

// ErrNoInputs is returned when a neuron is created with no inputs.
var ErrNoInputs = errors.New("neuron needs at least one input")

// Neuron computes tanh(w·x + b).
type Neuron struct {
	weights []scalar.Value
	bias    scalar.Value
}

// MustNew creates a new neuron with nin inputs
func MustNew(tape *scalar.Tape, nin int, src initializer.Source) *Neuron {
	o, err := New(tape, nin, src)
	if err != nil {
		panic(err.Error())
	}
	return o
}

// New creates a new neuron with nin inputs. Weights are drawn from src first,
// then the bias, all recorded on tape as leaves.
func New(tape *scalar.Tape, nin int, src initializer.Source) (o *Neuron, err error) {
	if nin < 1 {
		return nil, errors.Wrapf(ErrNoInputs, "nin=%d", nin)
	}
	o = new(Neuron)
	o.weights = make([]scalar.Value, nin)
	for i := range o.weights {
		o.weights[i] = tape.New(src.NextSignedUnit())
	}
	o.bias = tape.New(src.NextSignedUnit())
	return
}

// Forward records tanh(x[0]*w[0] + ... + x[n-1]*w[n-1] + b).
func (n *Neuron) Forward(x []scalar.Value) (scalar.Value, error) {
	if err := layer.CheckShape(len(x), len(n.weights)); err != nil {
		return scalar.Value{}, err
	}
	act := x[0].Mul(n.weights[0])
	for i := 1; i < len(x); i++ {
		act = act.Add(x[i].Mul(n.weights[i]))
	}
	return act.Add(n.bias).Tanh(), nil
}

// Weights returns the weight scalars, one per input.
func (n *Neuron) Weights() []scalar.Value {
	return n.weights
}

// Bias returns the bias scalar.
func (n *Neuron) Bias() scalar.Value {
	return n.bias
}

// Inputs is the number of weights.
func (n *Neuron) Inputs() int {
	return len(n.weights)
}

// GetParameters returns the weights followed by the bias.
func (n *Neuron) GetParameters() []scalar.Value {
	params := make([]scalar.Value, 0, len(n.weights)+1)
	params = append(params, n.weights...)
	return append(params, n.bias)
}

// ZeroGrad resets the gradients of the weights and the bias.
func (n *Neuron) ZeroGrad() {
	layer.ZeroGrad(n)
}
