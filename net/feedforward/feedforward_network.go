// Package feedforward implements a feedforward network type (multi-layer perceptron)
package feedforward

import "github.com/neurlang/micrograd/initializer"
import "github.com/neurlang/micrograd/layer"
import "github.com/neurlang/micrograd/layer/full"
import "github.com/neurlang/micrograd/scalar"
import "github.com/pkg/errors"

// FeedforwardNetwork is the feedforward network. Each layer reads the
// outputs of the previous one; the first layer reads the network inputs.
type FeedforwardNetwork struct {
	tape   *scalar.Tape
	src    initializer.Source
	nin    int
	layers []*full.FullLayer
}

// MustNew creates a network with nin inputs and one layer per width.
func MustNew(tape *scalar.Tape, src initializer.Source, nin int, widths ...int) *FeedforwardNetwork {
	o, err := New(tape, src, nin, widths...)
	if err != nil {
		panic(err.Error())
	}
	return o
}

// New creates a network with nin inputs and one layer per width. Parameters
// are recorded on tape, drawn from src in layer, neuron, weight order.
func New(tape *scalar.Tape, src initializer.Source, nin int, widths ...int) (*FeedforwardNetwork, error) {
	f := &FeedforwardNetwork{tape: tape, src: src, nin: nin}
	for _, w := range widths {
		if err := f.NewLayer(w); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// NewLayer adds a layer of n neurons to the end of network.
func (f *FeedforwardNetwork) NewLayer(n int) error {
	l, err := full.New(f.tape, f.Outputs(), n, f.src)
	if err != nil {
		return errors.Wrapf(err, "layer %d", len(f.layers))
	}
	f.layers = append(f.layers, l)
	return nil
}

// Forward feeds x through every layer in order.
func (f FeedforwardNetwork) Forward(x []scalar.Value) (out []scalar.Value, err error) {
	if err := layer.CheckShape(len(x), f.nin); err != nil {
		return nil, err
	}
	out = x
	for i, l := range f.layers {
		if out, err = l.Forward(out); err != nil {
			return nil, errors.Wrapf(err, "layer %d", i)
		}
	}
	return out, nil
}

// Infer runs the network on plain numbers and returns plain numbers. The
// nodes it records are released before it returns, so it does not grow the
// tape. It must not be called while a graph built on the same tape is still
// in use.
func (f FeedforwardNetwork) Infer(x []float64) ([]float64, error) {
	mark := f.tape.Mark()
	defer f.tape.Release(mark)

	out, err := f.Forward(f.tape.Constants(x))
	if err != nil {
		return nil, err
	}
	ret := make([]float64, len(out))
	for i, v := range out {
		ret[i] = v.Data()
	}
	return ret, nil
}

// Tape returns the tape holding the parameters.
func (f FeedforwardNetwork) Tape() *scalar.Tape {
	return f.tape
}

// Layers returns the layers in order.
func (f FeedforwardNetwork) Layers() []*full.FullLayer {
	return f.layers
}

// Inputs is the expected input length.
func (f FeedforwardNetwork) Inputs() int {
	return f.nin
}

// Outputs is the width of the last layer, or the input length when the
// network has no layers yet.
func (f FeedforwardNetwork) Outputs() int {
	if len(f.layers) == 0 {
		return f.nin
	}
	return f.layers[len(f.layers)-1].Outputs()
}

// Len returns the number of trainable parameters inside the network.
func (f FeedforwardNetwork) Len() (o int) {
	for _, l := range f.layers {
		o += lenLayer(l)
	}
	return
}

// LenLayers returns the number of layers.
func (f FeedforwardNetwork) LenLayers() int {
	return len(f.layers)
}

func lenLayer(l *full.FullLayer) int {
	return l.Outputs() * (l.Inputs() + 1)
}

// GetLayer gets the layer number of parameter based on parameter number.
// Returns -1 on failure.
func (f FeedforwardNetwork) GetLayer(n int) int {
	if n < 0 {
		return -1
	}
	for i, l := range f.layers {
		if n < lenLayer(l) {
			return i
		}
		n -= lenLayer(l)
	}
	return -1
}

// GetPosition gets the position of parameter within its layer based on the
// overall parameter number. Returns -1 on failure.
func (f FeedforwardNetwork) GetPosition(n int) int {
	if n < 0 {
		return -1
	}
	for _, l := range f.layers {
		if n < lenLayer(l) {
			return n
		}
		n -= lenLayer(l)
	}
	return -1
}

// GetParameter gets the n-th parameter in GetParameters order. The returned
// value is not Valid when n is out of range.
func (f FeedforwardNetwork) GetParameter(n int) scalar.Value {
	l := f.GetLayer(n)
	if l == -1 {
		return scalar.Value{}
	}
	pos := f.GetPosition(n)
	per := f.layers[l].Inputs() + 1
	nr := f.layers[l].Neurons()[pos/per]
	if pos%per == nr.Inputs() {
		return nr.Bias()
	}
	return nr.Weights()[pos%per]
}

// GetParameters concatenates the parameters of every layer in order.
func (f FeedforwardNetwork) GetParameters() []scalar.Value {
	return layer.Collect(f.layers)
}

// ZeroGrad resets the gradients of every parameter.
func (f FeedforwardNetwork) ZeroGrad() {
	layer.ZeroGrad(f)
}

var _ layer.Layer = (*FeedforwardNetwork)(nil)
