// Package network implements the feed-forward network representation used by
// the NeuralNetLib engine.
//
// A Network owns three groups of neurons: the input layer, an ordered list of
// hidden layers, and the output layer. Consecutive layers are fully connected
// by directed, weighted Connections. The topology is a strict feed-forward
// DAG with no cycles and no skip connections; it is fixed at construction
// time, and only weights, biases and gradients mutate afterwards.
//
// Connections are indexed bidirectionally: a connection appears once in its
// source neuron's outgoing list and once in its destination neuron's incoming
// list. The position of a connection in a neuron's incoming list equals the
// layer position of its source neuron in the preceding layer. Training and
// serialization both rely on this positional contract.
//
// All operations are synchronous and single-threaded. A Network must be owned
// by one training or inference call at a time; concurrent mutation is not
// guarded.
package network
