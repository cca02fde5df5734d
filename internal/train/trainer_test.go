package train

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AilurusApps/NeuralNetLib/internal/initializer"
	"github.com/AilurusApps/NeuralNetLib/internal/network"
)

func newXORTrainer(rate, momentum float64) *Trainer[string] {
	trainer := NewTrainer[string](NewBackpropagation(Config{
		LearningRate: rate,
		Momentum:     momentum,
	}))
	trainer.Put("00", NewData([]float64{0, 0}, []float64{0}))
	trainer.Put("01", NewData([]float64{0, 1}, []float64{1}))
	trainer.Put("10", NewData([]float64{1, 0}, []float64{1}))
	trainer.Put("11", NewData([]float64{1, 1}, []float64{0}))
	return trainer
}

// TestTrainToTolerance trains one example until the error bound holds.
func TestTrainToTolerance(t *testing.T) {
	net, err := network.New(network.Config{
		Inputs:       1,
		Outputs:      1,
		HiddenLayers: []int{2},
		Initializer:  initializer.NewXavierNormalWithSeed(3),
	})
	require.NoError(t, err)

	trainer := NewTrainer[int](NewBackpropagation(Config{LearningRate: 0.5}))
	d := NewData([]float64{0.5}, []float64{0.8})

	converged, err := trainer.Train(net, 0.05, 10000, d)
	require.NoError(t, err)
	assert.True(t, converged)

	require.NoError(t, net.Fire(d.Inputs))
	assert.LessOrEqual(t, math.Abs(net.OutputValues()[0]-0.8), 0.05)
}

// TestTrainBudgetExhausted reports false when the budget is too small for
// the requested tolerance.
func TestTrainBudgetExhausted(t *testing.T) {
	net, err := network.New(network.Config{
		Inputs:      1,
		Outputs:     1,
		Initializer: initializer.NewXavierNormalWithSeed(3),
	})
	require.NoError(t, err)

	trainer := NewTrainer[int](NewBackpropagation(Config{LearningRate: 0.01}))
	d := NewData([]float64{0.5}, []float64{0.99})

	converged, err := trainer.Train(net, 1e-9, 3, d)
	require.NoError(t, err)
	assert.False(t, converged)
}

// TestTrainUntilPredicateFirst: a predicate that is true on its first check
// still costs exactly one training step.
func TestTrainUntilPredicateFirst(t *testing.T) {
	net, err := network.New(network.Config{Inputs: 1, Outputs: 1})
	require.NoError(t, err)

	trainer := NewTrainer[int](NewBackpropagation(Config{}))
	d := NewData([]float64{0.1}, []float64{0.5})

	weightBefore := net.Outputs()[0].Inputs()[0].Weight()

	checks := 0
	converged, err := trainer.TrainUntil(net, 100, d, func() bool {
		checks++
		return true
	})
	require.NoError(t, err)

	assert.True(t, converged)
	assert.Equal(t, 1, checks, "predicate evaluated exactly once")
	assert.NotEqual(t, weightBefore, net.Outputs()[0].Inputs()[0].Weight(),
		"one training step ran before the predicate was consulted")
}

// TestTrainUntilPredicateNeverTrue: a permanently false predicate runs the
// full budget and reports exhaustion.
func TestTrainUntilPredicateNeverTrue(t *testing.T) {
	net, err := network.New(network.Config{Inputs: 1, Outputs: 1})
	require.NoError(t, err)

	trainer := NewTrainer[int](NewBackpropagation(Config{}))
	d := NewData([]float64{0.1}, []float64{0.5})

	checks := 0
	converged, err := trainer.TrainUntil(net, 25, d, func() bool {
		checks++
		return false
	})
	require.NoError(t, err)

	assert.False(t, converged)
	assert.Equal(t, 25, checks, "predicate evaluated once per iteration")
}

// TestTrainUntilShapeError propagates training errors to the caller.
func TestTrainUntilShapeError(t *testing.T) {
	net, err := network.New(network.Config{Inputs: 2, Outputs: 1})
	require.NoError(t, err)

	trainer := NewTrainer[int](NewBackpropagation(Config{}))
	d := NewData([]float64{0.1}, []float64{0.5}) // one input for a 2-input net

	converged, err := trainer.TrainUntil(net, 10, d, func() bool { return true })
	assert.False(t, converged)
	assert.ErrorIs(t, err, network.ErrShapeMismatch)
}

// TestRetrainXOR trains the four XOR rows end to end and checks every output
// rounds to the correct bit. Initialization is random, so a handful of seeds
// guards against a draw that lands in a local minimum.
func TestRetrainXOR(t *testing.T) {
	trainer := newXORTrainer(0.2, 0.1)

	for _, seed := range []int64{1, 2, 3, 4, 5, 6, 7, 8} {
		net, err := network.New(network.Config{
			Inputs:       2,
			Outputs:      1,
			HiddenLayers: []int{3},
			Initializer:  initializer.NewXavierNormalWithSeed(seed),
		})
		require.NoError(t, err)

		// Tolerance 0 is unreachable for a sigmoid output; the run always
		// exhausts its budget and the check is on the learned rounding.
		converged, err := trainer.Retrain(net, 0, 10000)
		require.NoError(t, err)
		assert.False(t, converged)

		if xorLearned(t, net) {
			return
		}
	}
	t.Fatal("no seed learned XOR within 10000 iterations")
}

func xorLearned(t *testing.T, net *network.Network) bool {
	t.Helper()

	cases := []struct {
		inputs []float64
		want   float64
	}{
		{[]float64{0, 0}, 0},
		{[]float64{0, 1}, 1},
		{[]float64{1, 0}, 1},
		{[]float64{1, 1}, 0},
	}

	for _, c := range cases {
		require.NoError(t, net.Fire(c.inputs))
		if math.Round(net.OutputValues()[0]) != c.want {
			return false
		}
	}
	return true
}

// TestRetrainConverges reports true once every example of a sweep is within
// tolerance, and the trained network honors the bound.
func TestRetrainConverges(t *testing.T) {
	for _, seed := range []int64{2, 3, 4, 5, 6, 7, 8, 9} {
		net, err := network.New(network.Config{
			Inputs:       2,
			Outputs:      1,
			HiddenLayers: []int{3},
			Initializer:  initializer.NewXavierNormalWithSeed(seed),
		})
		require.NoError(t, err)

		trainer := newXORTrainer(0.3, 0.2)
		converged, err := trainer.Retrain(net, 0.45, 200000)
		require.NoError(t, err)
		if !converged {
			continue
		}

		// The sweep measured each example before later examples nudged the
		// weights again, so re-firing allows a small drift past the
		// tolerance; rounding correctness is the stable property.
		for _, key := range trainer.Keys() {
			d, ok := trainer.Get(key)
			require.True(t, ok)
			require.NoError(t, net.Fire(d.Inputs))
			assert.Equal(t, d.Outputs[0], math.Round(net.OutputValues()[0]))
		}
		return
	}
	t.Fatal("no seed reached the tolerance within the budget")
}

// TestRetrainEmptySet is trivially converged.
func TestRetrainEmptySet(t *testing.T) {
	net, err := network.New(network.Config{Inputs: 1, Outputs: 1})
	require.NoError(t, err)

	trainer := NewTrainer[string](NewBackpropagation(Config{}))
	converged, err := trainer.Retrain(net, 0.1, 100)
	require.NoError(t, err)
	assert.True(t, converged)
}

// TestRetrainZeroBudget stops before any training call.
func TestRetrainZeroBudget(t *testing.T) {
	net, err := network.New(network.Config{Inputs: 2, Outputs: 1})
	require.NoError(t, err)

	trainer := newXORTrainer(0.2, 0)
	converged, err := trainer.Retrain(net, 0, 0)
	require.NoError(t, err)
	assert.False(t, converged)
}

// TestExampleSetOrdering checks the keyed example set keeps insertion order
// through replacement and deletion.
func TestExampleSetOrdering(t *testing.T) {
	trainer := NewTrainer[string](NewBackpropagation(Config{}))

	trainer.Put("a", NewData([]float64{1}, []float64{1}))
	trainer.Put("b", NewData([]float64{2}, []float64{0}))
	trainer.Put("c", NewData([]float64{3}, []float64{1}))
	assert.Equal(t, []string{"a", "b", "c"}, trainer.Keys())
	assert.Equal(t, 3, trainer.Len())

	// Replacement keeps the original position.
	replacement := NewData([]float64{4}, []float64{0})
	trainer.Put("b", replacement)
	assert.Equal(t, []string{"a", "b", "c"}, trainer.Keys())
	got, ok := trainer.Get("b")
	require.True(t, ok)
	assert.Same(t, replacement, got)

	trainer.Delete("a")
	assert.Equal(t, []string{"b", "c"}, trainer.Keys())
	assert.Equal(t, 2, trainer.Len())

	_, ok = trainer.Get("a")
	assert.False(t, ok)

	// Deleting a missing key is a no-op.
	trainer.Delete("missing")
	assert.Equal(t, []string{"b", "c"}, trainer.Keys())
}

// TestNewDataDefaultReward pins the default reward of 1.
func TestNewDataDefaultReward(t *testing.T) {
	d := NewData([]float64{1}, []float64{0})
	assert.Equal(t, 1.0, d.Reward)
}
