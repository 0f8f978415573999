package scalar

import "fmt"
import "math"

import "github.com/pkg/errors"

// Value is a handle to one node of a Tape: a real number with the gradient
// accumulated into it by Backward. Values are small and meant to be passed
// by value; two handles are equal when they name the same node.
type Value struct {
	t   *Tape
	id  int32
	gen uint32
}

// Valid reports whether v names a node that is still on its tape. A value
// recorded after a released mark stays invalid after its index is reused.
func (v Value) Valid() bool {
	return v.t != nil && v.id >= 0 && int(v.id) < len(v.t.nodes) && v.t.nodes[v.id].gen == v.gen
}

// Tape returns the tape v was recorded on.
func (v Value) Tape() *Tape {
	return v.t
}

func (v Value) node() *node {
	if !v.Valid() {
		panic(errors.Wrapf(ErrStaleValue, "node %d", v.id))
	}
	return &v.t.nodes[v.id]
}

// Data returns the forward value.
func (v Value) Data() float64 {
	return v.node().data
}

// SetData overwrites the forward value. It is how an optimizer updates a
// parameter; nodes already computed from v are not recomputed.
func (v Value) SetData(x float64) {
	v.node().data = x
}

// Gradient returns the gradient accumulated by the last Backward calls.
func (v Value) Gradient() float64 {
	return v.node().grad
}

// ZeroGrad resets the accumulated gradient to 0.
func (v Value) ZeroGrad() {
	v.node().grad = 0
}

// Op returns the operation that produced v, OpNone for leaves.
func (v Value) Op() Op {
	return v.node().op
}

// Exponent returns the integer exponent of an OpPow node, 0 otherwise.
func (v Value) Exponent() int {
	return v.node().exp
}

// Children returns the operands v was computed from, in operand order. The
// same value appears twice when an operation used it for both operands.
func (v Value) Children() []Value {
	n := v.node()
	switch n.op.Arity() {
	case 2:
		return []Value{v.t.handle(n.a), v.t.handle(n.b)}
	case 1:
		return []Value{v.t.handle(n.a)}
	}
	return nil
}

// Label returns the diagnostic name of v, if any.
func (v Value) Label() string {
	return v.t.labels[v.id]
}

// SetLabel attaches a diagnostic name to v. It has no effect on arithmetic.
func (v Value) SetLabel(label string) Value {
	if v.t.labels == nil {
		v.t.labels = make(map[int32]string)
	}
	v.t.labels[v.id] = label
	return v
}

// String formats the data and gradient of v.
func (v Value) String() string {
	if !v.Valid() {
		return "value=<invalid>"
	}
	return fmt.Sprintf("value=%v grad=%v", v.Data(), v.Gradient())
}

func (v Value) binary(op Op, o Value, data float64) Value {
	if v.t != o.t {
		panic(ErrForeignValue)
	}
	return v.t.push(node{data: data, op: op, a: v.id, b: o.id})
}

func (v Value) unary(op Op, data float64) Value {
	return v.t.push(node{data: data, op: op, a: v.id, b: -1})
}

// Add records v + o.
func (v Value) Add(o Value) Value {
	return v.binary(OpAdd, o, v.Data()+o.Data())
}

// Mul records v * o.
func (v Value) Mul(o Value) Value {
	return v.binary(OpMul, o, v.Data()*o.Data())
}

// Neg records -v as v * -1.
func (v Value) Neg() Value {
	return v.Mul(v.t.Constant(-1))
}

// Sub records v - o as v + (-o).
func (v Value) Sub(o Value) Value {
	return v.Add(o.Neg())
}

// Div records v / o as v * o^-1. It panics like Pow when o is zero.
func (v Value) Div(o Value) Value {
	return v.Mul(o.Pow(-1))
}

// Pow records v^n for an integer exponent n. The exponent is a parameter of
// the operation, not a graph input, so no gradient flows into it. A zero
// base with n <= 0 panics with an error wrapping ErrInvalidPower.
func (v Value) Pow(n int) Value {
	x := v.Data()
	if x == 0 && n <= 0 {
		panic(errors.Wrapf(ErrInvalidPower, "0^%d", n))
	}
	out := v.unary(OpPow, math.Pow(x, float64(n)))
	out.node().exp = n
	return out
}

// Exp records e^v.
func (v Value) Exp() Value {
	return v.unary(OpExp, math.Exp(v.Data()))
}

// Tanh records the hyperbolic tangent of v.
func (v Value) Tanh() Value {
	return v.unary(OpTanh, math.Tanh(v.Data()))
}

// Relu records max(0, v). Its subgradient at exactly 0 is 0.
func (v Value) Relu() Value {
	return v.unary(OpRelu, math.Max(0, v.Data()))
}

// Sum records the left-to-right sum of vs. It panics on an empty list.
func Sum(vs ...Value) Value {
	out := vs[0]
	for _, v := range vs[1:] {
		out = out.Add(v)
	}
	return out
}
