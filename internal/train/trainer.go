package train

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/AilurusApps/NeuralNetLib/internal/network"
)

// Trainer drives repeated training calls until convergence or an iteration
// budget is exhausted.
//
// A Trainer holds a training algorithm and a keyed collection of examples.
// The key type is the caller's choice; insertion order is preserved and is
// the sweep order used by Retrain, so whole-set training is reproducible.
//
// Example:
//
//	trainer := train.NewTrainer[string](train.NewBackpropagation(train.Config{
//	    LearningRate: 0.2,
//	    Momentum:     0.1,
//	}))
//	trainer.Put("00", train.NewData([]float64{0, 0}, []float64{0}))
//	trainer.Put("01", train.NewData([]float64{0, 1}, []float64{1}))
//	converged, err := trainer.Retrain(net, 0.1, 10000)
type Trainer[K comparable] struct {
	algorithm *Backpropagation
	keys      []K
	examples  map[K]*Data
}

// NewTrainer creates a Trainer around the given algorithm.
func NewTrainer[K comparable](algorithm *Backpropagation) *Trainer[K] {
	return &Trainer[K]{
		algorithm: algorithm,
		examples:  make(map[K]*Data),
	}
}

// Algorithm returns the wrapped training algorithm.
func (t *Trainer[K]) Algorithm() *Backpropagation {
	return t.algorithm
}

// Put stores an example under key. Replacing an existing key keeps its
// original position in the sweep order.
func (t *Trainer[K]) Put(key K, d *Data) {
	if _, ok := t.examples[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.examples[key] = d
}

// Get returns the example stored under key.
func (t *Trainer[K]) Get(key K) (*Data, bool) {
	d, ok := t.examples[key]
	return d, ok
}

// Delete removes the example stored under key, if any.
func (t *Trainer[K]) Delete(key K) {
	if _, ok := t.examples[key]; !ok {
		return
	}
	delete(t.examples, key)
	for i, k := range t.keys {
		if k == key {
			t.keys = append(t.keys[:i], t.keys[i+1:]...)
			break
		}
	}
}

// Len returns the number of stored examples.
func (t *Trainer[K]) Len() int {
	return len(t.examples)
}

// Keys returns the stored keys in insertion order.
func (t *Trainer[K]) Keys() []K {
	keys := make([]K, len(t.keys))
	copy(keys, t.keys)
	return keys
}

// Train repeatedly trains the network on a single example until the largest
// absolute output error is within tolerance, or maxIterations training calls
// have been made. Reports whether the tolerance was achieved.
//
// The error is measured on the output values left by the forward pass of
// each training call, so at least one call is always made.
func (t *Trainer[K]) Train(net *network.Network, tolerance float64, maxIterations int, d *Data) (bool, error) {
	converged, _, err := t.trainToTolerance(net, tolerance, maxIterations, d)
	return converged, err
}

// Retrain sweeps every stored example in insertion order, one training call
// per example, and repeats the sweep until the worst error seen across a
// full sweep is within tolerance. The iteration budget counts training calls
// and is shared across all examples, not per-example; a call stops mid-sweep
// when the budget runs out. Reports whether the tolerance was achieved.
func (t *Trainer[K]) Retrain(net *network.Network, tolerance float64, maxIterations int) (bool, error) {
	if len(t.keys) == 0 {
		return true, nil
	}

	remaining := maxIterations
	for {
		worst := 0.0
		for _, key := range t.keys {
			if remaining <= 0 {
				return false, nil
			}
			d := t.examples[key]

			if err := t.algorithm.Train(net, d.Inputs, d.Reward, d.Outputs); err != nil {
				return false, err
			}
			remaining--
			worst = math.Max(worst, maxError(net, d))
		}
		if worst <= tolerance {
			return true, nil
		}
	}
}

// TrainUntil repeatedly trains the network on a single example, invoking the
// done predicate after every training call, and stops as soon as the
// predicate returns true or maxIterations calls have been made. Reports
// whether it stopped via the predicate.
//
// The predicate is evaluated exactly once per iteration and only after
// training, so a predicate that is already true before any training still
// costs one training step.
func (t *Trainer[K]) TrainUntil(net *network.Network, maxIterations int, d *Data, done func() bool) (bool, error) {
	for i := 0; i < maxIterations; i++ {
		if err := t.algorithm.Train(net, d.Inputs, d.Reward, d.Outputs); err != nil {
			return false, err
		}
		if done() {
			return true, nil
		}
	}
	return false, nil
}

// trainToTolerance trains on one example until its error is within tolerance
// or budget calls have been made, reporting convergence and the number of
// calls used.
func (t *Trainer[K]) trainToTolerance(net *network.Network, tolerance float64, budget int, d *Data) (bool, int, error) {
	used := 0
	for used < budget {
		if err := t.algorithm.Train(net, d.Inputs, d.Reward, d.Outputs); err != nil {
			return false, used, err
		}
		used++
		if maxError(net, d) <= tolerance {
			return true, used, nil
		}
	}
	return false, used, nil
}

// maxError is the Chebyshev distance between the network's current output
// values and the example's targets.
func maxError(net *network.Network, d *Data) float64 {
	return floats.Distance(net.OutputValues(), d.Outputs, math.Inf(1))
}
