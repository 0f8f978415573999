// Package squareroot provides a synthetic dataset for learning to compute integer square
// roots. Numbers are fed as ±1 bits and the root is the class to predict.
package squareroot
