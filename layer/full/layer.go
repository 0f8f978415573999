// Package full implements a fully connected layer of tanh neurons
package full

import "github.com/neurlang/micrograd/initializer"
import "github.com/neurlang/micrograd/layer"
import "github.com/neurlang/micrograd/layer/neuron"
import "github.com/neurlang/micrograd/scalar"
import "github.com/pkg/errors"

// ErrNoNeurons is returned when a layer is created without neurons.
var ErrNoNeurons = errors.New("layer needs at least one neuron")

// FullLayer is a row of neurons all reading the same input vector.
type FullLayer struct {
	neurons []*neuron.Neuron
	nin     int
}

// MustNew creates a new full layer with nin inputs and nout neurons
func MustNew(tape *scalar.Tape, nin, nout int, src initializer.Source) *FullLayer {
	o, err := New(tape, nin, nout, src)
	if err != nil {
		panic(err.Error())
	}
	return o
}

// New creates a new full layer with nin inputs and nout neurons
func New(tape *scalar.Tape, nin, nout int, src initializer.Source) (o *FullLayer, err error) {
	if nout < 1 {
		return nil, errors.Wrapf(ErrNoNeurons, "nout=%d", nout)
	}
	o = new(FullLayer)
	o.nin = nin
	o.neurons = make([]*neuron.Neuron, nout)
	for i := range o.neurons {
		o.neurons[i], err = neuron.New(tape, nin, src)
		if err != nil {
			return nil, errors.Wrapf(err, "neuron %d", i)
		}
	}
	return
}

// Forward evaluates every neuron on x, one output per neuron.
func (f *FullLayer) Forward(x []scalar.Value) ([]scalar.Value, error) {
	if err := layer.CheckShape(len(x), f.nin); err != nil {
		return nil, err
	}
	out := make([]scalar.Value, len(f.neurons))
	for i, n := range f.neurons {
		var err error
		if out[i], err = n.Forward(x); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Neurons returns the neurons in output order.
func (f *FullLayer) Neurons() []*neuron.Neuron {
	return f.neurons
}

// Inputs is the expected input length.
func (f *FullLayer) Inputs() int {
	return f.nin
}

// Outputs is the number of neurons.
func (f *FullLayer) Outputs() int {
	return len(f.neurons)
}

// GetParameters concatenates the parameters of every neuron in order.
func (f *FullLayer) GetParameters() []scalar.Value {
	return layer.Collect(f.neurons)
}

// ZeroGrad resets the gradients of every neuron.
func (f *FullLayer) ZeroGrad() {
	layer.ZeroGrad(f)
}

var _ layer.Layer = (*FullLayer)(nil)
