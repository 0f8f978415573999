// Package main provides a demo program for training a handwritten digit classifier on
// the MNIST dataset. A multi-layer perceptron of tanh units is trained by mini-batch
// gradient descent over the scalar autodiff engine, evaluated on the test set and
// saved as compressed weights.
package main
