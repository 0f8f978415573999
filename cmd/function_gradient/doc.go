// Package main provides a demo program which builds the expression of a
// single two-input tanh neuron by hand, back-propagates through it and prints
// the recorded graph with the value and gradient of every node.
package main
