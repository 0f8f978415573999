package main

import "fmt"
import "os"

import "github.com/neurlang/micrograd/datasets/mnist"
import "github.com/neurlang/micrograd/initializer"
import "github.com/neurlang/micrograd/net/feedforward"
import "github.com/neurlang/micrograd/scalar"
import "github.com/neurlang/micrograd/trainer"
import "github.com/pkg/errors"
import "github.com/spf13/cobra"

func main() {
	var images, labels, model string
	var count int
	var small, mistakes bool
	var indexes []int

	cmd := &cobra.Command{
		Use:   "infer_mnist",
		Short: "Evaluate saved MNIST weights on the test set",
		RunE: func(cmd *cobra.Command, args []string) error {
			if model == "" {
				return errors.New("--model is required")
			}
			test, err := mnist.Read(images, labels, count)
			if err != nil {
				return err
			}
			dim := mnist.ImgSize * mnist.ImgSize
			if small {
				test = mnist.DownscaleSet(test)
				dim = mnist.SmallImgSize * mnist.SmallImgSize
			}

			net, err := feedforward.New(scalar.NewTape(0), initializer.Constant(0), dim, 28, 16, mnist.Classes)
			if err != nil {
				return err
			}
			if err := net.ReadCompressedWeightsFromFile(model); err != nil {
				return err
			}

			report, err := trainer.Evaluate(net, test)
			if err != nil {
				return err
			}
			fmt.Printf("accuracy %.2f%% (%d/%d), state %x\n", report.Accuracy, report.Correct, report.Total, report.State[:8])

			if mistakes {
				for _, m := range report.Incorrect {
					indexes = append(indexes, m.Index)
				}
			}
			for _, i := range indexes {
				if i < 0 || i >= len(test) {
					return errors.Errorf("index %d out of range [0, %d)", i, len(test))
				}
				out, err := net.Infer(test[i].Input)
				if err != nil {
					return err
				}
				fmt.Print(mnist.Render(test[i].Input))
				fmt.Printf("sample %d: expected %d, predicted %d\n\n", i, test[i].Label, trainer.Predict(out))
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&images, "images", "t10k-images-idx3-ubyte.gz", "test images IDX file")
	f.StringVar(&labels, "labels", "t10k-labels-idx1-ubyte.gz", "test labels IDX file")
	f.IntVar(&count, "count", 0, "test samples to load, 0 for all")
	f.StringVar(&model, "model", "", "weights .json.lzw file written by train_mnist")
	f.BoolVar(&small, "small", false, "the model was trained on 13x13 images")
	f.IntSliceVar(&indexes, "index", nil, "test samples to draw")
	f.BoolVar(&mistakes, "mistakes", false, "draw every misclassified sample")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
