package main

import "fmt"
import "os"

import "github.com/neurlang/micrograd/datasets"
import "github.com/neurlang/micrograd/datasets/isalnum"
import "github.com/neurlang/micrograd/datasets/squareroot"
import "github.com/neurlang/micrograd/initializer"
import "github.com/neurlang/micrograd/net/feedforward"
import "github.com/neurlang/micrograd/parallel"
import "github.com/neurlang/micrograd/scalar"
import "github.com/neurlang/micrograd/trainer"
import "github.com/pkg/errors"
import "github.com/spf13/cobra"

func dataset(name string, bits int) (datasets.Dataset, error) {
	switch name {
	case "binary":
		return datasets.Binary(), nil
	case "isalnum":
		return isalnum.Set(), nil
	case "squareroot":
		if bits < 1 || bits > 16 {
			return nil, errors.Errorf("squareroot needs 1 to 16 bits, got %d", bits)
		}
		return squareroot.New(bits), nil
	}
	return nil, errors.Errorf("unknown dataset %q", name)
}

// source returns the shared weight source, the clock seeded default for a
// zero seed.
func source(seed int64) initializer.Source {
	if seed == 0 {
		return initializer.Default
	}
	return initializer.NewLocked(seed)
}

type result struct {
	loss     float64
	accuracy float64
	outputs  []float64
}

func main() {
	var h trainer.HyperParameters
	var runs, threads, bits int
	var seed int64
	var logfile, name string
	var hidden []int

	cmd := &cobra.Command{
		Use:   "train_binary",
		Short: "Train a small multi-layer perceptron, MLP(3, [4, 4, 1]) on the four-sample binary set by default",
		RunE: func(cmd *cobra.Command, args []string) error {
			if logfile != "" {
				if err := h.SetLogger(logfile); err != nil {
					return err
				}
				defer h.Close()
			}
			if h.Iterations < 1 || runs < 1 {
				return errors.New("--iterations and --runs must be positive")
			}
			if threads <= 0 {
				threads = parallel.Threads()
			}
			fmt.Printf("cpu: %s, threads: %d\n", parallel.CPU(), threads)

			set, err := dataset(name, bits)
			if err != nil {
				return err
			}
			widths := append(append([]int(nil), hidden...), len(set[0].Target))
			src := source(seed)
			results := make([]result, runs)

			err = parallel.ForEach(runs, threads, func(run int) error {
				net, err := feedforward.New(scalar.NewTape(4096), src, len(set[0].Input), widths...)
				if err != nil {
					return err
				}
				hh := h
				if runs > 1 {
					hh.Printer = 0
				}
				history, err := trainer.Train(net, set, &hh)
				if err != nil {
					return errors.Wrapf(err, "run %d", run)
				}
				report, err := trainer.Evaluate(net, set)
				if err != nil {
					return errors.Wrapf(err, "run %d", run)
				}
				r := result{loss: history[len(history)-1], accuracy: report.Accuracy}
				for _, s := range set {
					out, err := net.Infer(s.Input)
					if err != nil {
						return errors.Wrapf(err, "run %d", run)
					}
					if len(out) == 1 {
						r.outputs = append(r.outputs, out[0])
					}
				}
				results[run] = r
				return nil
			})
			if err != nil {
				return err
			}

			for run, r := range results {
				fmt.Printf("run %d: loss %.6f accuracy %.0f%%", run, r.loss, r.accuracy)
				if len(r.outputs) > 0 && len(r.outputs) <= 8 {
					fmt.Printf(" predictions %.4f", r.outputs)
				}
				fmt.Println()
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&h.LearningRate, "lr", 0.01, "learning rate")
	cmd.Flags().IntVar(&h.Iterations, "iterations", 100, "passes over the dataset")
	cmd.Flags().IntVar(&h.Printer, "printer", 10, "print the loss every this many iterations, 0 disables")
	cmd.Flags().IntVar(&runs, "runs", 1, "independent networks to train")
	cmd.Flags().IntVar(&threads, "threads", 0, "concurrent runs, 0 for one per logical core")
	cmd.Flags().Int64Var(&seed, "seed", 1, "weight initialization seed, 0 seeds from the clock")
	cmd.Flags().StringVar(&name, "dataset", "binary", "training set: binary, isalnum or squareroot")
	cmd.Flags().IntVar(&bits, "bits", squareroot.SmallBits, "input width of the squareroot dataset")
	cmd.Flags().IntSliceVar(&hidden, "hidden", []int{4, 4}, "hidden layer widths")
	cmd.Flags().StringVar(&logfile, "log", "", "append per-iteration losses to this file")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
