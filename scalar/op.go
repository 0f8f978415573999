package scalar

import "strconv"

// Op identifies the rule that produced a node.
type Op uint8

const (
	// OpNone marks a leaf: a constant, an input or a parameter.
	OpNone Op = iota
	OpAdd
	OpMul
	OpPow
	OpExp
	OpTanh
	OpRelu
)

var opNames = [...]string{
	OpNone: "",
	OpAdd:  "+",
	OpMul:  "*",
	OpPow:  "pow",
	OpExp:  "exp",
	OpTanh: "tanh",
	OpRelu: "relu",
}

// String returns the short symbol of the op, empty for leaves.
func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return "op(" + strconv.Itoa(int(o)) + ")"
}

// Arity reports how many children a node produced by o has.
func (o Op) Arity() int {
	switch o {
	case OpAdd, OpMul:
		return 2
	case OpPow, OpExp, OpTanh, OpRelu:
		return 1
	}
	return 0
}
