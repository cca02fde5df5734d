package train

import (
	"fmt"
	"math"

	"github.com/AilurusApps/NeuralNetLib/internal/network"
)

// Config holds the hyperparameters of a Backpropagation algorithm.
type Config struct {
	// LearningRate scales every weight and bias delta (default: 0.01).
	LearningRate float64

	// Momentum is the fraction of the previous delta carried into the
	// current update (default: 0, range: [0, 1)).
	Momentum float64

	// AdaptiveLearningRate scales the effective learning rate of each
	// individual update by the magnitude of the gradient driving it, so
	// larger errors take larger steps. When false the configured rate is
	// used as-is and updates are bit-identical to plain fixed-rate
	// backpropagation.
	AdaptiveLearningRate bool
}

// Backpropagation computes per-neuron gradients for a fired network and
// applies weight and bias updates with classic momentum.
//
// Update rule for a connection with gradient g at its destination:
//
//	delta  = rate * g * input.value
//	weight = weight + delta + momentum * previousDelta
//
// where previousDelta is the delta of the preceding step, read before it is
// overwritten (classic momentum, not Nesterov). Biases follow the same rule
// with delta = rate * g.
//
// Example:
//
//	algo := train.NewBackpropagation(train.Config{
//	    LearningRate: 0.2,
//	    Momentum:     0.1,
//	})
//	err := algo.Train(net, example.Inputs, example.Reward, example.Outputs)
type Backpropagation struct {
	rate     float64
	momentum float64
	adaptive bool
}

// NewBackpropagation creates a Backpropagation algorithm from config,
// applying defaults to zero-value fields.
func NewBackpropagation(config Config) *Backpropagation {
	if config.LearningRate == 0 {
		config.LearningRate = 0.01
	}

	return &Backpropagation{
		rate:     config.LearningRate,
		momentum: config.Momentum,
		adaptive: config.AdaptiveLearningRate,
	}
}

// Train performs one full training step: a forward pass over inputs followed
// by a backward pass against targets, with the error signal scaled by reward.
func (b *Backpropagation) Train(net *network.Network, inputs []float64, reward float64, targets []float64) error {
	if err := net.Fire(inputs); err != nil {
		return err
	}
	return b.Backpropagate(net, reward, targets)
}

// Backpropagate performs the backward pass only, assuming the caller already
// fired the network forward. Gradients are computed for the output layer,
// then for each hidden layer in reverse order, and finally every weight and
// bias is updated in one atomic sweep.
//
// Returns an error wrapping network.ErrShapeMismatch if len(targets) differs
// from the output layer size.
func (b *Backpropagation) Backpropagate(net *network.Network, reward float64, targets []float64) error {
	outputs := net.Outputs()
	if len(targets) != len(outputs) {
		return fmt.Errorf("backpropagate: expected %d target values, got %d: %w",
			len(outputs), len(targets), network.ErrShapeMismatch)
	}

	// Output gradients: derivative at the computed value times the
	// reward-scaled error.
	for i, out := range outputs {
		g := out.Activation().Derivative(out.Value()) * (targets[i] - out.Value()) * reward
		out.SetGradient(g)
	}

	// Hidden gradients, output-adjacent layer first. Each layer needs the
	// downstream layer's gradients finalized, so the sweep is strictly
	// reverse-topological.
	hidden := net.HiddenLayers()
	for l := len(hidden) - 1; l >= 0; l-- {
		for _, h := range hidden[l] {
			sum := 0.0
			for _, c := range h.Outputs() {
				sum += c.Output().Gradient() * c.Weight()
			}
			h.SetGradient(h.Activation().Derivative(h.Value()) * sum)
		}
	}

	// Weight updates: the input layer's outgoing connections, then each
	// hidden layer's, in forward order.
	for _, in := range net.Inputs() {
		b.updateWeights(in)
	}
	for _, layer := range hidden {
		for _, h := range layer {
			b.updateWeights(h)
		}
	}

	// Bias updates: hidden layers before the output layer.
	for _, layer := range hidden {
		for _, h := range layer {
			b.updateBias(h)
		}
	}
	for _, out := range outputs {
		b.updateBias(out)
	}

	return nil
}

func (b *Backpropagation) updateWeights(n *network.Neuron) {
	for _, c := range n.Outputs() {
		g := c.Output().Gradient()
		delta := b.effectiveRate(g) * g * c.Input().Value()
		c.SetWeight(c.Weight() + delta + b.momentum*c.PreviousDelta())
		c.SetPreviousDelta(delta)
	}
}

func (b *Backpropagation) updateBias(n *network.Neuron) {
	g := n.Gradient()
	delta := b.effectiveRate(g) * g
	n.SetBias(n.Bias() + delta + b.momentum*n.PreviousBiasDelta())
	n.SetPreviousBiasDelta(delta)
}

// effectiveRate returns the learning rate for one update. In adaptive mode
// the configured rate is scaled by 1+|gradient|: monotonic in the gradient
// magnitude and strictly positive whenever the gradient is nonzero.
func (b *Backpropagation) effectiveRate(gradient float64) float64 {
	if !b.adaptive {
		return b.rate
	}
	return b.rate * (1 + math.Abs(gradient))
}
