// Package main provides a demo program for running inference with a trained MNIST digit
// classifier. It loads weights saved by train_mnist, reports the test accuracy and can
// draw chosen test images as text next to the expected and predicted digits.
package main
