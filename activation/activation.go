// Copyright 2025 The NeuralNetLib Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package activation exposes the neuron activation functions.
package activation

import (
	"github.com/AilurusApps/NeuralNetLib/internal/activation"
)

// Function is a scalar activation function paired with its derivative. The
// derivative takes the activation output, not the raw input.
type Function = activation.Function

// Shared stateless instances, safe for concurrent use.
var (
	// Sigmoid is the logistic function 1 / (1 + exp(-x)).
	Sigmoid = activation.Sigmoid

	// Tanh is the hyperbolic tangent.
	Tanh = activation.Tanh

	// ReLU is the rectified linear unit max(0, x).
	ReLU = activation.ReLU
)
