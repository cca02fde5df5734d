package network

// Connection is a directed, weighted edge between two neurons.
//
// Besides the weight itself, a connection remembers the weight delta applied
// by the most recent training step so the training algorithm can carry a
// momentum term into the next update.
type Connection struct {
	in            *Neuron
	out           *Neuron
	weight        float64
	previousDelta float64
}

func newConnection(in, out *Neuron, weight float64) *Connection {
	return &Connection{in: in, out: out, weight: weight}
}

// Input returns the source neuron.
func (c *Connection) Input() *Neuron {
	return c.in
}

// Output returns the destination neuron.
func (c *Connection) Output() *Neuron {
	return c.out
}

// Weight returns the connection weight.
func (c *Connection) Weight() float64 {
	return c.weight
}

// SetWeight sets the connection weight.
func (c *Connection) SetWeight(w float64) {
	c.weight = w
}

// PreviousDelta returns the weight delta applied by the previous training
// step. Zero before the first step.
func (c *Connection) PreviousDelta() float64 {
	return c.previousDelta
}

// SetPreviousDelta records the weight delta of the current training step.
func (c *Connection) SetPreviousDelta(d float64) {
	c.previousDelta = d
}
