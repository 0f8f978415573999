package trainer

import "fmt"
import "log"
import "os"

import "github.com/pkg/errors"

// SetLogger sets the output logger file where per-iteration losses are appended.
// A previously set logger file is closed.
func (h *HyperParameters) SetLogger(filename string) error {
	outfile, err := os.OpenFile(filename, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return errors.Wrap(err, "open log file")
	}
	if err := h.Close(); err != nil {
		outfile.Close()
		return err
	}
	h.l = log.New(outfile, "", log.LstdFlags)
	h.f = outfile
	return nil
}

// Close closes the logger file, if any. Logging stops.
func (h *HyperParameters) Close() error {
	if h.f == nil {
		return nil
	}
	err := h.f.Close()
	h.f, h.l = nil, nil
	return errors.Wrap(err, "close log file")
}

type HyperParameters struct {
	LearningRate float64 // step size of gradient descent
	Iterations   int     // number of passes over the dataset
	BatchSize    int     // samples per parameter update, 0 for the whole dataset

	Decay    float64 // multiply the learning rate by this on a plateau, 0 disables
	Patience int     // iterations without a lower loss before decaying

	Shuffle bool  // whether to shuffle the dataset before each iteration
	Seed    int64 // seed of the shuffling prng

	Printer int // print losses to stdout every this many iterations and batches, 0 disables

	Loss LossFunc // per-sample loss, SquaredError when nil

	// OnIteration is called after each iteration with its summed loss.
	// Returning true ends training.
	OnIteration func(iteration int, loss float64) (stop bool)

	l *log.Logger
	f *os.File
}

func (h *HyperParameters) logf(format string, args ...interface{}) {
	if h.l != nil {
		h.l.Printf(format, args...)
	}
}

func (h *HyperParameters) printf(n int, format string, args ...interface{}) {
	if h.Printer > 0 && n%h.Printer == 0 {
		fmt.Printf(format+"\n", args...)
	}
}

func (h *HyperParameters) loss() LossFunc {
	if h.Loss == nil {
		return SquaredError
	}
	return h.Loss
}
