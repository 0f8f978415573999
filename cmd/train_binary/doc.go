// Package main provides a demo program for training a small multi-layer
// perceptron on a four-sample binary classification problem. Several
// independent runs can train at once, one per core.
package main
