// Package activation implements the neuron activation functions used by the
// NeuralNetLib engine.
//
// This package provides:
//   - Function interface: a scalar activation with its derivative
//   - Sigmoid: logistic function, output range (0, 1)
//   - Tanh: hyperbolic tangent, output range (-1, 1)
//   - ReLU: rectified linear unit, output range [0, +inf)
//
// Derivative takes the activation OUTPUT y = Apply(x), not the raw input x.
// The forward pass already computed y for every neuron, so expressing the
// derivative in terms of y lets the backward pass reuse it:
//
//	sigmoid: y * (1 - y)
//	tanh:    (1 - y) * (1 + y)
//	relu:    1 if y > 0 else 0
//
// All functions are stateless. The package-level instances are shared and
// safe for concurrent use.
package activation

import "math"

// Function is a scalar activation function paired with its derivative.
//
// Apply maps a pre-activation sum to the neuron's output value.
// Derivative maps the neuron's OUTPUT back to the slope at the point that
// produced it; for every supported function, Derivative(Apply(x)) equals the
// true mathematical derivative at x.
type Function interface {
	// Apply computes the activation output for the pre-activation sum x.
	Apply(x float64) float64

	// Derivative computes the derivative given the activation output y,
	// i.e. given y = Apply(x) it returns f'(x).
	Derivative(y float64) float64

	// String returns the function's name.
	String() string
}

// Shared instances. The functions hold no state, so a single instance serves
// every network.
var (
	Sigmoid Function = sigmoid{}
	Tanh    Function = tanh{}
	ReLU    Function = relu{}
)

// sigmoid is the logistic function 1 / (1 + exp(-x)).
type sigmoid struct{}

func (sigmoid) Apply(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

func (sigmoid) Derivative(y float64) float64 {
	return y * (1.0 - y)
}

func (sigmoid) String() string { return "sigmoid" }

// tanh is the hyperbolic tangent.
type tanh struct{}

func (tanh) Apply(x float64) float64 {
	return math.Tanh(x)
}

func (tanh) Derivative(y float64) float64 {
	return (1.0 - y) * (1.0 + y)
}

func (tanh) String() string { return "tanh" }

// relu is the rectified linear unit max(0, x).
type relu struct{}

func (relu) Apply(x float64) float64 {
	return math.Max(0, x)
}

func (relu) Derivative(y float64) float64 {
	if y > 0 {
		return 1
	}
	return 0
}

func (relu) String() string { return "relu" }
