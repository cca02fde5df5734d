// Copyright 2025 The NeuralNetLib Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package train exposes backpropagation training and the convergence-driving
// trainer loops.
package train

import (
	"github.com/AilurusApps/NeuralNetLib/internal/train"
)

// Data is one labeled training example with an optional reward scale.
type Data = train.Data

// NewData creates a training example with the default reward of 1.
func NewData(inputs, outputs []float64) *Data {
	return train.NewData(inputs, outputs)
}

// Config holds the hyperparameters of a Backpropagation algorithm.
type Config = train.Config

// Backpropagation computes gradients for a fired network and applies weight
// and bias updates with classic momentum.
type Backpropagation = train.Backpropagation

// NewBackpropagation creates a Backpropagation algorithm from config,
// applying defaults to zero-value fields.
//
// Example:
//
//	algo := train.NewBackpropagation(train.Config{
//	    LearningRate: 0.2,
//	    Momentum:     0.1,
//	})
func NewBackpropagation(config Config) *Backpropagation {
	return train.NewBackpropagation(config)
}

// Trainer drives repeated training calls over a keyed, insertion-ordered
// collection of examples until convergence or an iteration budget is
// exhausted.
type Trainer[K comparable] = train.Trainer[K]

// NewTrainer creates a Trainer around the given algorithm.
//
// Example:
//
//	trainer := train.NewTrainer[string](algo)
//	trainer.Put("00", train.NewData([]float64{0, 0}, []float64{0}))
//	converged, err := trainer.Retrain(net, 0.1, 10000)
func NewTrainer[K comparable](algorithm *Backpropagation) *Trainer[K] {
	return train.NewTrainer[K](algorithm)
}
