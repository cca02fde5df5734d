package network

import (
	"fmt"

	"github.com/AilurusApps/NeuralNetLib/internal/activation"
	"github.com/AilurusApps/NeuralNetLib/internal/initializer"
)

// initialBias is the bias every neuron starts with.
const initialBias = 0.01

// Config describes the topology and construction choices for a new Network.
//
// Zero-value fields fall back to defaults: tanh activation for the input and
// hidden layers, sigmoid for the output layer, Xavier-normal weight
// initialization.
type Config struct {
	Inputs       int   // Input layer size (required, > 0)
	Outputs      int   // Output layer size (required, > 0)
	HiddenLayers []int // Hidden layer sizes, nearest-to-inputs first; may be empty

	Activation       activation.Function  // Input and hidden layers (default: Tanh)
	OutputActivation activation.Function  // Output layer (default: Sigmoid)
	Initializer      initializer.Strategy // Weight initialization (default: XavierNormal)
}

// New constructs a fully connected feed-forward network.
//
// Every neuron in a layer is connected to every neuron of the next layer,
// with weights drawn from the configured initialization strategy and biases
// set to a small fixed value. With an empty HiddenLayers list the inputs are
// wired directly to the outputs.
//
// Example:
//
//	net, err := network.New(network.Config{
//	    Inputs:       2,
//	    Outputs:      1,
//	    HiddenLayers: []int{3},
//	})
//
// Returns an error wrapping ErrInvalidTopology if any layer size is not
// positive.
func New(config Config) (*Network, error) {
	if config.Inputs <= 0 {
		return nil, fmt.Errorf("new network: input count %d: %w", config.Inputs, ErrInvalidTopology)
	}
	if config.Outputs <= 0 {
		return nil, fmt.Errorf("new network: output count %d: %w", config.Outputs, ErrInvalidTopology)
	}
	for i, size := range config.HiddenLayers {
		if size <= 0 {
			return nil, fmt.Errorf("new network: hidden layer %d size %d: %w", i, size, ErrInvalidTopology)
		}
	}

	// Defaults.
	if config.Activation == nil {
		config.Activation = activation.Tanh
	}
	if config.OutputActivation == nil {
		config.OutputActivation = activation.Sigmoid
	}
	if config.Initializer == nil {
		config.Initializer = initializer.NewXavierNormal()
	}

	net := &Network{
		inputs:  newLayer(config.Inputs, config.Activation),
		hidden:  make([][]*Neuron, len(config.HiddenLayers)),
		outputs: newLayer(config.Outputs, config.OutputActivation),
	}
	for i, size := range config.HiddenLayers {
		net.hidden[i] = newLayer(size, config.Activation)
	}

	previous := net.inputs
	for _, layer := range net.hidden {
		connect(previous, layer, config.Initializer)
		previous = layer
	}
	connect(previous, net.outputs, config.Initializer)

	return net, nil
}

func newLayer(size int, fn activation.Function) []*Neuron {
	layer := make([]*Neuron, size)
	for i := range layer {
		layer[i] = newNeuron(fn, initialBias)
	}
	return layer
}

// connect fully wires two consecutive layers. Iterating destinations in the
// outer loop and sources in the inner loop keeps both positional contracts:
// to[j].inputs[i] originates at from[i], and from[i].outputs[j] terminates at
// to[j].
func connect(from, to []*Neuron, strategy initializer.Strategy) {
	fanIn, fanOut := len(from), len(to)
	for _, dst := range to {
		for _, src := range from {
			c := newConnection(src, dst, strategy.Init(fanIn, fanOut))
			src.outputs = append(src.outputs, c)
			dst.inputs = append(dst.inputs, c)
		}
	}
}
