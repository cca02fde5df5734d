// Package train implements gradient-descent training for feed-forward
// networks.
//
// This package provides:
//   - Data: one labeled training example with an optional reward scale
//   - Backpropagation: the backward pass and weight/bias update rules, with
//     classic momentum and an optional gradient-scaled learning rate
//   - Trainer: convergence loops driving repeated training calls over one or
//     many examples
//
// A training step is a forward pass followed by one atomic backward pass
// that computes per-neuron gradients and applies every weight and bias
// update. Numeric edge cases (NaN or infinite values from extreme inputs)
// are not intercepted; they propagate as ordinary floating-point values.
package train
