package scalar

import "github.com/pkg/errors"
import "github.com/samber/lo"

// node is one entry of the arena. Children are indices into the same arena,
// -1 when absent. exp is only meaningful for OpPow. gen is the tape
// generation the node was recorded in.
type node struct {
	data float64
	grad float64
	exp  int
	a, b int32
	gen  uint32
	op   Op
}

// Tape is the arena owning every node of one computation graph. The zero
// Tape is ready to use.
type Tape struct {
	nodes  []node
	labels map[int32]string
	gen    uint32
}

// Mark is a position in a tape, see Tape.Mark.
type Mark int

// NewTape creates an empty tape with room for size nodes.
func NewTape(size int) *Tape {
	return &Tape{nodes: make([]node, 0, size)}
}

// Len returns the number of nodes recorded so far.
func (t *Tape) Len() int {
	return len(t.nodes)
}

// New records a leaf node holding x with zero gradient.
func (t *Tape) New(x float64) Value {
	return t.push(node{data: x, a: -1, b: -1})
}

// Constant records a raw number so it can take part in graph arithmetic.
// It is the same leaf as New; the name documents intent at call sites.
func (t *Tape) Constant(x float64) Value {
	return t.New(x)
}

// Constants records one leaf per element of xs, in order.
func (t *Tape) Constants(xs []float64) []Value {
	return lo.Map(xs, func(x float64, _ int) Value {
		return t.New(x)
	})
}

// Mark returns the current end of the tape. Values recorded after the mark
// can be discarded in one go by Release.
func (t *Tape) Mark() Mark {
	return Mark(len(t.nodes))
}

// Release truncates the tape back to m. Every Value recorded after m
// becomes invalid, even once later nodes reuse its index, and using it
// panics with ErrStaleValue. Values recorded before m, typically
// parameters, keep their data and gradient.
func (t *Tape) Release(m Mark) {
	if m < 0 || int(m) > len(t.nodes) {
		panic(errors.Wrapf(ErrBadMark, "mark %d, tape length %d", m, len(t.nodes)))
	}
	for id := range t.labels {
		if int(id) >= int(m) {
			delete(t.labels, id)
		}
	}
	t.nodes = t.nodes[:m]
	t.gen++
}

func (t *Tape) push(n node) Value {
	if len(t.nodes) >= maxNodes {
		panic(errors.Wrapf(ErrTapeFull, "%d nodes", len(t.nodes)))
	}
	n.gen = t.gen
	t.nodes = append(t.nodes, n)
	return Value{t: t, id: int32(len(t.nodes) - 1), gen: t.gen}
}

const maxNodes = 1<<31 - 1

func (t *Tape) handle(id int32) Value {
	return Value{t: t, id: id, gen: t.nodes[id].gen}
}
