package network

import (
	"github.com/AilurusApps/NeuralNetLib/internal/activation"
)

// Neuron holds the mutable state of a single network node: its bias, the
// value produced by the last forward pass, and the gradient computed by the
// last backward pass.
//
// Input-layer neurons have no incoming connections; their value is assigned
// externally by Network.Fire and their attached activation function is never
// applied to it. Output-layer neurons have no outgoing connections.
type Neuron struct {
	activation        activation.Function
	bias              float64
	previousBiasDelta float64
	value             float64
	gradient          float64
	inputs            []*Connection
	outputs           []*Connection
}

func newNeuron(fn activation.Function, bias float64) *Neuron {
	return &Neuron{activation: fn, bias: bias}
}

// Fire recomputes the neuron's value from its incoming connections:
//
//	value = activation(sum(weight * input.value) + bias)
//
// Neurons without incoming connections keep their externally assigned value.
func (n *Neuron) Fire() {
	if len(n.inputs) == 0 {
		return
	}

	sum := n.bias
	for _, c := range n.inputs {
		sum += c.weight * c.in.value
	}
	n.value = n.activation.Apply(sum)
}

// Activation returns the neuron's activation function.
func (n *Neuron) Activation() activation.Function {
	return n.activation
}

// Value returns the value produced by the last forward pass.
func (n *Neuron) Value() float64 {
	return n.value
}

// SetValue assigns the neuron's value directly. Used for input neurons, whose
// values come from the caller rather than from connections.
func (n *Neuron) SetValue(v float64) {
	n.value = v
}

// Gradient returns the gradient computed by the last backward pass.
func (n *Neuron) Gradient() float64 {
	return n.gradient
}

// SetGradient stores the neuron's gradient. Called by the training algorithm.
func (n *Neuron) SetGradient(g float64) {
	n.gradient = g
}

// Bias returns the neuron's bias.
func (n *Neuron) Bias() float64 {
	return n.bias
}

// SetBias sets the neuron's bias.
func (n *Neuron) SetBias(b float64) {
	n.bias = b
}

// PreviousBiasDelta returns the bias delta applied by the previous training
// step. Zero before the first step.
func (n *Neuron) PreviousBiasDelta() float64 {
	return n.previousBiasDelta
}

// SetPreviousBiasDelta records the bias delta of the current training step.
func (n *Neuron) SetPreviousBiasDelta(d float64) {
	n.previousBiasDelta = d
}

// Inputs returns the incoming connections, ordered by the layer position of
// their source neurons. Nil for input-layer neurons.
func (n *Neuron) Inputs() []*Connection {
	return n.inputs
}

// Outputs returns the outgoing connections, ordered by the layer position of
// their destination neurons. Nil for output-layer neurons.
func (n *Neuron) Outputs() []*Connection {
	return n.outputs
}
