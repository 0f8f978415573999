// Package scalar implements a scalar-valued reverse-mode automatic
// differentiation engine.
//
// Every node lives in a Tape, an append-only arena. A Value is a handle into
// the tape; arithmetic on values appends new nodes that record their operands
// as child indices, so a child always has a smaller index than its consumer
// and the graph can never contain a cycle. Backward seeds the gradient of a
// terminal node with 1 and runs the derivative rule of every reachable node
// in reverse topological order, accumulating into the children's gradients.
//
// A tape is not safe for concurrent use. Independent graphs belong on
// independent tapes.
package scalar
