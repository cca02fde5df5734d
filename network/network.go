// Copyright 2025 The NeuralNetLib Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package network exposes the feed-forward network representation: neurons,
// connections, the forward pass, and the topology builder.
package network

import (
	"github.com/AilurusApps/NeuralNetLib/internal/network"
)

// Network is a fully connected feed-forward neural network.
type Network = network.Network

// Neuron holds one node's bias, value and gradient.
type Neuron = network.Neuron

// Connection is a directed, weighted edge between two neurons.
type Connection = network.Connection

// Config describes the topology and construction choices for a new Network.
type Config = network.Config

// Common errors.
var (
	// ErrShapeMismatch reports a value vector whose length does not match
	// the layer it is addressed to.
	ErrShapeMismatch = network.ErrShapeMismatch

	// ErrInvalidTopology reports a construction request with a non-positive
	// layer size.
	ErrInvalidTopology = network.ErrInvalidTopology
)

// New constructs a fully connected feed-forward network.
//
// Example:
//
//	net, err := network.New(network.Config{
//	    Inputs:       2,
//	    Outputs:      1,
//	    HiddenLayers: []int{3},
//	})
func New(config Config) (*Network, error) {
	return network.New(config)
}
