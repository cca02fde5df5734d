package network

import (
	"fmt"
)

// Network is a fully connected feed-forward neural network.
//
// Hidden layers are ordered from the layer nearest the inputs to the layer
// nearest the outputs. The topology is immutable after construction; Fire and
// the training algorithm only mutate values, gradients, weights and biases.
type Network struct {
	inputs  []*Neuron
	hidden  [][]*Neuron
	outputs []*Neuron
}

// Fire assigns the given values to the input neurons and propagates them
// forward through the network.
//
// Input values are stored verbatim: the input layer's attached activation
// function is kept for type uniformity only and is never applied to
// externally supplied values.
//
// Returns an error wrapping ErrShapeMismatch if len(values) differs from the
// input layer size.
func (n *Network) Fire(values []float64) error {
	if len(values) != len(n.inputs) {
		return fmt.Errorf("fire: expected %d input values, got %d: %w",
			len(n.inputs), len(values), ErrShapeMismatch)
	}

	for i, v := range values {
		n.inputs[i].SetValue(v)
	}
	n.FeedForward()

	return nil
}

// FeedForward recomputes every hidden and output neuron's value from the
// current input values, sweeping the hidden layers in forward order and the
// output layer last.
func (n *Network) FeedForward() {
	for _, layer := range n.hidden {
		for _, neuron := range layer {
			neuron.Fire()
		}
	}
	for _, neuron := range n.outputs {
		neuron.Fire()
	}
}

// Inputs returns the input layer.
func (n *Network) Inputs() []*Neuron {
	return n.inputs
}

// HiddenLayers returns the hidden layers, nearest-to-inputs first.
func (n *Network) HiddenLayers() [][]*Neuron {
	return n.hidden
}

// Outputs returns the output layer.
func (n *Network) Outputs() []*Neuron {
	return n.outputs
}

// InputCount returns the input layer size.
func (n *Network) InputCount() int {
	return len(n.inputs)
}

// OutputCount returns the output layer size.
func (n *Network) OutputCount() int {
	return len(n.outputs)
}

// HiddenSizes returns the hidden layer sizes in forward order.
func (n *Network) HiddenSizes() []int {
	sizes := make([]int, len(n.hidden))
	for i, layer := range n.hidden {
		sizes[i] = len(layer)
	}
	return sizes
}

// OutputValues returns the output neurons' values from the last forward pass.
func (n *Network) OutputValues() []float64 {
	values := make([]float64, len(n.outputs))
	for i, neuron := range n.outputs {
		values[i] = neuron.Value()
	}
	return values
}

// EachNeuron visits every neuron in the network's canonical traversal order:
// input layer, hidden layers in forward order, output layer, each layer in
// position order. Serialization depends on this order being stable.
func (n *Network) EachNeuron(visit func(*Neuron)) {
	for _, neuron := range n.inputs {
		visit(neuron)
	}
	for _, layer := range n.hidden {
		for _, neuron := range layer {
			visit(neuron)
		}
	}
	for _, neuron := range n.outputs {
		visit(neuron)
	}
}

// EachConnection visits every connection in the network's canonical traversal
// order: the outgoing connections of each input neuron, then of each hidden
// neuron, layers in forward order and neurons in position order. Output
// neurons have no outgoing connections, so the traversal covers each
// connection exactly once.
func (n *Network) EachConnection(visit func(*Connection)) {
	for _, neuron := range n.inputs {
		for _, c := range neuron.Outputs() {
			visit(c)
		}
	}
	for _, layer := range n.hidden {
		for _, neuron := range layer {
			for _, c := range neuron.Outputs() {
				visit(c)
			}
		}
	}
}
