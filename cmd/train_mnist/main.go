package main

import "fmt"
import "math/rand"
import "os"

import "github.com/neurlang/micrograd/datasets"
import "github.com/neurlang/micrograd/datasets/mnist"
import "github.com/neurlang/micrograd/initializer"
import "github.com/neurlang/micrograd/net/feedforward"
import "github.com/neurlang/micrograd/parallel"
import "github.com/neurlang/micrograd/scalar"
import "github.com/neurlang/micrograd/trainer"
import "github.com/pkg/errors"
import "github.com/spf13/cobra"

type options struct {
	trainImages, trainLabels string
	testImages, testLabels   string
	trainCount, testCount    int

	small    bool
	seed     int64
	dstmodel string
	resume   bool
	logfile  string
	pgo      bool

	significance byte
	repeats      int
}

func load(o *options) (train, test datasets.Dataset, err error) {
	train, err = mnist.Read(o.trainImages, o.trainLabels, o.trainCount)
	if err != nil {
		return nil, nil, errors.Wrap(err, "training set")
	}
	test, err = mnist.Read(o.testImages, o.testLabels, o.testCount)
	if err != nil {
		return nil, nil, errors.Wrap(err, "test set")
	}
	if o.small {
		train, test = mnist.DownscaleSet(train), mnist.DownscaleSet(test)
	}
	return train, test, nil
}

func run(o *options, h *trainer.HyperParameters) error {
	if o.pgo {
		stop, err := profile("default.pgo")
		if err != nil {
			return err
		}
		defer stop()
	}
	if o.logfile != "" {
		if err := h.SetLogger(o.logfile); err != nil {
			return err
		}
		defer h.Close()
	}
	fmt.Printf("cpu: %s, threads: %d\n", parallel.CPU(), parallel.Threads())

	train, test, err := load(o)
	if err != nil {
		return err
	}
	dim := mnist.ImgSize * mnist.ImgSize
	if o.small {
		dim = mnist.SmallImgSize * mnist.SmallImgSize
	}
	if err := train.Validate(dim, mnist.Classes); err != nil {
		return err
	}
	fmt.Printf("loaded %d training and %d test samples of %d pixels\n", len(train), len(test), dim)

	var src initializer.Source = initializer.Default
	if o.seed != 0 {
		src = initializer.NewLocked(o.seed)
	}
	net, err := feedforward.New(scalar.NewTape(1<<20), src, dim, 28, 16, mnist.Classes)
	if err != nil {
		return err
	}
	fmt.Printf("network: %d layers, %d parameters\n", net.LenLayers(), net.Len())

	if o.resume {
		ok, err := trainer.Resume(net, o.dstmodel)
		if err != nil {
			return err
		}
		if ok {
			fmt.Println("resumed from", o.dstmodel)
		}
	}

	// stop when the sampled test predictions repeat for several iterations
	rng := rand.New(rand.NewSource(o.seed))
	var state [32]byte
	var same int
	best := -1.0
	h.OnIteration = func(iteration int, loss float64) bool {
		report, err := trainer.EvaluateSample(net, test, o.significance, rng)
		if err != nil {
			println(err.Error())
			return true
		}
		fmt.Printf("iteration %d: loss %.4f, test accuracy %.2f%% (%d/%d)\n",
			iteration, loss, report.Accuracy, report.Correct, report.Total)

		if report.Accuracy > best && o.dstmodel != "" {
			best = report.Accuracy
			if err := net.WriteCompressedWeightsToFile(o.dstmodel); err != nil {
				println(err.Error())
			}
		}
		if report.State == state {
			same++
		} else {
			state, same = report.State, 0
		}
		return o.repeats > 0 && same >= o.repeats
	}

	if _, err := trainer.Train(net, train, h); err != nil {
		return err
	}

	report, err := trainer.Evaluate(net, test)
	if err != nil {
		return err
	}
	fmt.Printf("test accuracy %.2f%% (%d/%d)\n", report.Accuracy, report.Correct, report.Total)
	if o.dstmodel == "" {
		return net.WriteCompressedWeightsToFile(fmt.Sprintf("output.%d.json.lzw", int(report.Accuracy)))
	}
	if report.Accuracy >= best {
		return net.WriteCompressedWeightsToFile(o.dstmodel)
	}
	return nil
}

// defaults divides each image's squared error by the class count.
func defaults() trainer.HyperParameters {
	return trainer.HyperParameters{Shuffle: true, Loss: trainer.MeanSquaredError}
}

func main() {
	var o options
	h := defaults()
	var significance uint8

	cmd := &cobra.Command{
		Use:   "train_mnist",
		Short: "Train a multi-layer perceptron on the MNIST digits",
		RunE: func(cmd *cobra.Command, args []string) error {
			o.significance = significance
			h.Seed = o.seed
			return run(&o, &h)
		},
	}
	f := cmd.Flags()
	f.StringVar(&o.trainImages, "train-images", "train-images-idx3-ubyte.gz", "training images IDX file")
	f.StringVar(&o.trainLabels, "train-labels", "train-labels-idx1-ubyte.gz", "training labels IDX file")
	f.StringVar(&o.testImages, "test-images", "t10k-images-idx3-ubyte.gz", "test images IDX file")
	f.StringVar(&o.testLabels, "test-labels", "t10k-labels-idx1-ubyte.gz", "test labels IDX file")
	f.IntVar(&o.trainCount, "train-count", 0, "training samples to load, 0 for all")
	f.IntVar(&o.testCount, "test-count", 0, "test samples to load, 0 for all")
	f.BoolVar(&o.small, "small", false, "downscale images to 13x13")
	f.Int64Var(&o.seed, "seed", 1, "weight initialization and shuffling seed, 0 seeds weights from the clock")
	f.StringVar(&o.dstmodel, "dstmodel", "", "model destination .json.lzw file")
	f.BoolVar(&o.resume, "resume", false, "resume training from dstmodel")
	f.StringVar(&o.logfile, "log", "", "append per-iteration losses to this file")
	f.BoolVar(&o.pgo, "pgo", false, "write a cpu profile to default.pgo")
	f.Uint8Var(&significance, "significance", 95, "confidence level of the sampled test accuracy, 100 evaluates every sample")
	f.IntVar(&o.repeats, "repeats", 3, "stop after this many iterations with unchanged test predictions, 0 disables")

	f.Float64Var(&h.LearningRate, "lr", 0.05, "learning rate")
	f.IntVar(&h.Iterations, "iterations", 10, "passes over the training set")
	f.IntVar(&h.BatchSize, "batch", 40, "samples per update")
	f.Float64Var(&h.Decay, "decay", 0.5, "learning rate decay on a plateau, 0 disables")
	f.IntVar(&h.Patience, "patience", 2, "iterations without improvement before decaying")
	f.IntVar(&h.Printer, "printer", 100, "print the batch loss every this many batches, 0 disables")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
