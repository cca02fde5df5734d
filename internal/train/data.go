package train

// Data is one labeled training example.
//
// Inputs and Outputs are the example's feature and target vectors; the
// trainer never mutates them. Reward scales the output-layer error signal:
// 1 is plain supervised learning, 0 makes a training pass a no-op, and a
// negative value inverts the gradient direction, pushing the network away
// from the target. Reward may be changed between training calls.
type Data struct {
	Inputs  []float64
	Outputs []float64
	Reward  float64
}

// NewData creates a training example with the default reward of 1.
func NewData(inputs, outputs []float64) *Data {
	return &Data{
		Inputs:  inputs,
		Outputs: outputs,
		Reward:  1,
	}
}
