// Package serialization provides the text encoding for network state and
// training sets.
//
// A network record is a flat, whitespace-separated token stream:
//
//	Record structure:
//	  NNL <version>
//	  <input count> <output count>
//	  <hidden layer count> <hidden sizes...>
//	  <biases...>          (inputs, hidden layers in order, outputs)
//	  <bias deltas...>     (same order)
//	  <weights...>         (outgoing connections of inputs, then of each
//	                        hidden layer, neurons and connections in
//	                        position order)
//	  <weight deltas...>   (same order)
//
// The sequences follow the network's canonical traversal order, so a record
// written from one network and read back reproduces every weight, bias and
// momentum delta exactly. Values are formatted in shortest round-trip form;
// the reader accepts any whitespace between tokens.
//
// A training-set record uses the NNLT magic and stores, per example, the
// reward followed by the counted input and output vectors.
//
// Example usage:
//
//	// Save a trained network
//	if err := serialization.SaveNetwork("xor.nnl", net); err != nil {
//	    log.Fatal(err)
//	}
//
//	// Load it back, re-attaching the activation functions
//	net, err := serialization.LoadNetwork("xor.nnl", serialization.ReadConfig{})
//	if err != nil {
//	    log.Fatal(err)
//	}
package serialization
