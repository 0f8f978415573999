package trainer

import "github.com/neurlang/micrograd/layer"
import "github.com/neurlang/micrograd/scalar"
import "github.com/pkg/errors"
import "github.com/samber/lo"

// ErrEmpty is returned for a loss over no outputs.
var ErrEmpty = errors.New("no predictions")

// LossFunc builds the loss of one sample as a scalar expression over the
// network outputs, so that Backward reaches the parameters through it.
type LossFunc func(pred []scalar.Value, target []float64) (scalar.Value, error)

// SquaredError records Σ (pred[i] - target[i])².
func SquaredError(pred []scalar.Value, target []float64) (scalar.Value, error) {
	if len(pred) == 0 {
		return scalar.Value{}, ErrEmpty
	}
	if err := layer.CheckShape(len(target), len(pred)); err != nil {
		return scalar.Value{}, errors.Wrap(err, "target")
	}
	tape := pred[0].Tape()
	return scalar.Sum(lo.Map(pred, func(p scalar.Value, i int) scalar.Value {
		return p.Sub(tape.Constant(target[i])).Pow(2)
	})...), nil
}

// MeanSquaredError records the squared error divided by the output count.
func MeanSquaredError(pred []scalar.Value, target []float64) (scalar.Value, error) {
	loss, err := SquaredError(pred, target)
	if err != nil {
		return loss, err
	}
	return loss.Div(loss.Tape().Constant(float64(len(pred)))), nil
}
