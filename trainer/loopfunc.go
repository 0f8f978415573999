package trainer

import "math"
import "math/rand"

import "github.com/neurlang/micrograd/datasets"
import "github.com/neurlang/micrograd/layer"
import "github.com/neurlang/micrograd/scalar"
import "github.com/pkg/errors"

// ErrDiverged is returned when the loss stops being a finite number.
var ErrDiverged = errors.New("loss diverged")

// Model is a trainable network whose parameters live on Tape.
type Model interface {
	layer.Parameterized

	// Forward records the network on the inputs' tape.
	Forward(inputs []scalar.Value) ([]scalar.Value, error)

	// Tape is the tape holding the parameters.
	Tape() *scalar.Tape
}

// Step performs one gradient descent update: gradients of the parameters
// are cleared, loss is back-propagated and every parameter moves by -lr
// times its gradient.
func Step(m layer.Parameterized, loss scalar.Value, lr float64) {
	m.ZeroGrad()
	loss.Backward()
	for _, p := range m.GetParameters() {
		p.SetData(p.Data() - lr*p.Gradient())
	}
}

// BatchLoss records the sum of the per-sample losses of batch on the model
// tape.
func BatchLoss(m Model, batch datasets.Dataset, lossFn LossFunc) (scalar.Value, error) {
	if len(batch) == 0 {
		return scalar.Value{}, ErrEmpty
	}
	tape := m.Tape()
	losses := make([]scalar.Value, len(batch))
	for i, s := range batch {
		pred, err := m.Forward(tape.Constants(s.Input))
		if err != nil {
			return scalar.Value{}, errors.Wrapf(err, "sample %d", i)
		}
		if losses[i], err = lossFn(pred, s.Target); err != nil {
			return scalar.Value{}, errors.Wrapf(err, "sample %d", i)
		}
	}
	return scalar.Sum(losses...), nil
}

// Train runs h.Iterations passes of mini-batch gradient descent over set and
// returns the summed loss of each pass. Every batch graph is released from
// the model tape once its update is applied. The learning rate is multiplied
// by h.Decay after h.Patience passes without a lower loss.
func Train(m Model, set datasets.Dataset, h *HyperParameters) (history []float64, err error) {
	if len(set) == 0 {
		return nil, errors.Wrap(ErrEmpty, "empty dataset")
	}
	tape := m.Tape()
	lossFn := h.loss()
	lr := h.LearningRate
	rng := rand.New(rand.NewSource(h.Seed))
	if h.Shuffle {
		set = append(datasets.Dataset(nil), set...)
	}

	best, stale := math.Inf(1), 0
	for it := 0; it < h.Iterations; it++ {
		if h.Shuffle {
			set.Shuffle(rng)
		}
		var total float64
		batches := set.Batches(h.BatchSize)
		for b, batch := range batches {
			mark := tape.Mark()
			loss, err := BatchLoss(m, batch, lossFn)
			if err != nil {
				tape.Release(mark)
				return history, errors.Wrapf(err, "iteration %d batch %d", it, b)
			}
			Step(m, loss, lr)
			total += loss.Data()
			if len(batches) > 1 {
				h.printf(b, "iteration %d batch %d loss %v", it, b, loss.Data())
			}
			tape.Release(mark)
		}
		if math.IsNaN(total) || math.IsInf(total, 0) {
			return history, errors.Wrapf(ErrDiverged, "iteration %d", it)
		}
		history = append(history, total)
		h.logf("iteration %d loss %v learning rate %v", it, total, lr)
		h.printf(it, "iteration %d loss %v", it, total)

		if total < best {
			best, stale = total, 0
		} else {
			stale++
			if h.Decay > 0 && h.Patience > 0 && stale >= h.Patience {
				lr *= h.Decay
				stale = 0
				h.logf("iteration %d learning rate decayed to %v", it, lr)
			}
		}
		if h.OnIteration != nil && h.OnIteration(it, total) {
			break
		}
	}
	return history, nil
}
