package main

import "fmt"
import "os"
import "strings"

import "github.com/neurlang/micrograd/scalar"
import "github.com/spf13/cobra"

func printTree(v scalar.Value, depth int, seen map[scalar.Value]bool) {
	indent := strings.Repeat("  ", depth)
	name := v.Label()
	if name == "" {
		name = "_"
	}
	op := ""
	if v.Op() != scalar.OpNone {
		op = " " + v.Op().String()
		if v.Op() == scalar.OpPow {
			op += fmt.Sprint(v.Exponent())
		}
	}
	fmt.Printf("%s%s%s data=%.4f grad=%.4f\n", indent, name, op, v.Data(), v.Gradient())
	if seen[v] {
		return
	}
	seen[v] = true
	for _, c := range v.Children() {
		printTree(c, depth+1, seen)
	}
}

func main() {
	var x1, x2, w1, w2, b float64
	var tree bool

	cmd := &cobra.Command{
		Use:   "function_gradient",
		Short: "Back-propagate through tanh(x1*w1 + x2*w2 + b)",
		RunE: func(cmd *cobra.Command, args []string) error {
			tape := scalar.NewTape(16)

			vx1 := tape.New(x1).SetLabel("x1")
			vx2 := tape.New(x2).SetLabel("x2")
			vw1 := tape.New(w1).SetLabel("w1")
			vw2 := tape.New(w2).SetLabel("w2")
			vb := tape.New(b).SetLabel("b")

			x1w1 := vx1.Mul(vw1).SetLabel("x1*w1")
			x2w2 := vx2.Mul(vw2).SetLabel("x2*w2")
			sum := x1w1.Add(x2w2).SetLabel("x1*w1 + x2*w2")
			n := sum.Add(vb).SetLabel("n")
			o := n.Tanh().SetLabel("o")

			o.Backward()

			if tree {
				printTree(o, 0, make(map[scalar.Value]bool))
				println()
			}
			for _, v := range o.Topology() {
				fmt.Println(v.Label(), v)
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&x1, "x1", 2, "first input")
	cmd.Flags().Float64Var(&x2, "x2", 0, "second input")
	cmd.Flags().Float64Var(&w1, "w1", -3, "first weight")
	cmd.Flags().Float64Var(&w2, "w2", 1, "second weight")
	cmd.Flags().Float64Var(&b, "b", 6.8813735870195432, "bias")
	cmd.Flags().BoolVar(&tree, "tree", true, "print the graph as an indented tree")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
