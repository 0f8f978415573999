package scalar

import "math"

// bitset marks visited node indices during a traversal.
type bitset []uint64

func newBitset(n int) bitset {
	return make(bitset, (n+63)/64)
}

func (b bitset) has(i int32) bool {
	return b[i>>6]&(1<<(uint(i)&63)) != 0
}

func (b bitset) set(i int32) {
	b[i>>6] |= 1 << (uint(i) & 63)
}

// reachable returns the indices of every node reachable from root, root
// included, in ascending order. Children always precede their consumers in
// the arena, so ascending index order is a topological order of the
// reachable subgraph.
func (t *Tape) reachable(root int32) []int32 {
	seen := newBitset(int(root) + 1)
	seen.set(root)
	stack := []int32{root}
	count := 1
	for len(stack) > 0 {
		n := &t.nodes[stack[len(stack)-1]]
		stack = stack[:len(stack)-1]
		for _, c := range [2]int32{n.a, n.b} {
			if c < 0 || seen.has(c) {
				continue
			}
			seen.set(c)
			stack = append(stack, c)
			count++
		}
	}
	order := make([]int32, 0, count)
	for i := int32(0); i <= root; i++ {
		if seen.has(i) {
			order = append(order, i)
		}
	}
	return order
}

// Topology returns every value reachable from v, each one placed after all
// of its children. Backward runs the derivative rules in the reverse of this
// order.
func (v Value) Topology() []Value {
	order := v.t.reachable(v.id)
	out := make([]Value, len(order))
	for i, id := range order {
		out[i] = v.t.handle(id)
	}
	return out
}

// Backward computes the derivative of v with respect to every value it was
// computed from. The gradients of the reachable interior nodes are reset,
// the gradient of v is set to 1 and each reachable node then adds its
// contribution into its children, consumers strictly before the values they
// consume. Leaves accumulate across passes: call ZeroGrad on parameters
// between passes.
func (v Value) Backward() {
	root := v.node()
	order := v.t.reachable(v.id)
	for _, id := range order {
		if n := &v.t.nodes[id]; n.op != OpNone {
			n.grad = 0
		}
	}
	root.grad = 1
	for i := len(order) - 1; i >= 0; i-- {
		v.t.backward(order[i])
	}
}

// backward applies the local derivative rule of node id to its children.
func (t *Tape) backward(id int32) {
	n := &t.nodes[id]
	g := n.grad
	switch n.op {
	case OpNone:
	case OpAdd:
		t.nodes[n.a].grad += g
		t.nodes[n.b].grad += g
	case OpMul:
		a, b := &t.nodes[n.a], &t.nodes[n.b]
		a.grad += b.data * g
		b.grad += a.data * g
	case OpPow:
		a := &t.nodes[n.a]
		a.grad += float64(n.exp) * math.Pow(a.data, float64(n.exp-1)) * g
	case OpExp:
		t.nodes[n.a].grad += n.data * g
	case OpTanh:
		t.nodes[n.a].grad += (1 - n.data*n.data) * g
	case OpRelu:
		if a := &t.nodes[n.a]; a.data > 0 {
			a.grad += g
		}
	default:
		panic("scalar: unknown op " + n.op.String())
	}
}
