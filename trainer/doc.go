// Package trainer provides the training loop around the scalar engine:
// losses built as scalar expressions, plain gradient descent steps over the
// parameters of a model, and accuracy evaluation.
package trainer
