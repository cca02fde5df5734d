// Package initializer implements weight initialization strategies for
// network construction.
//
// This package provides:
//   - Strategy interface: maps a connection's layer fan-in/fan-out to an
//     initial weight
//   - XavierNormal: Glorot initialization, N(0, 2/(fanIn+fanOut))
//   - XavierUniform: Glorot initialization, U(-bound, bound) with
//     bound = sqrt(6/(fanIn+fanOut))
//   - FixedRandom: narrow uniform values near 0.5, independent of fan sizes
//
// Each strategy instance owns its random source. Strategies built with the
// *WithSeed constructors are deterministic: the same seed always yields the
// same weight sequence. The plain constructors fall back to the process-wide
// generator and are not reproducible unless the caller seeds math/rand.
package initializer

import (
	"math"
	"math/rand"
)

// Strategy produces an initial connection weight from the sizes of the two
// layers the connection joins. FanIn is the size of the source layer, fanOut
// the size of the destination layer.
type Strategy interface {
	Init(fanIn, fanOut int) float64
}

// XavierNormal draws weights from a normal distribution with mean 0 and
// standard deviation sqrt(2/(fanIn+fanOut)).
//
// Sampling uses the Box–Muller transform over the strategy's uniform source,
// one variate per call.
type XavierNormal struct {
	rng *rand.Rand
}

// NewXavierNormal creates a XavierNormal strategy backed by the process-wide
// generator.
func NewXavierNormal() *XavierNormal {
	return &XavierNormal{}
}

// NewXavierNormalWithSeed creates a deterministic XavierNormal strategy.
func NewXavierNormalWithSeed(seed int64) *XavierNormal {
	return &XavierNormal{rng: rand.New(rand.NewSource(seed))}
}

// Init returns a weight drawn from N(0, 2/(fanIn+fanOut)).
func (x *XavierNormal) Init(fanIn, fanOut int) float64 {
	stdDev := math.Sqrt(2.0 / float64(fanIn+fanOut))
	return x.norm() * stdDev
}

// norm returns a standard normal variate via Box–Muller.
func (x *XavierNormal) norm() float64 {
	// 1-Float64() keeps u1 in (0, 1] so the log never sees zero.
	u1 := 1.0 - x.float64()
	u2 := x.float64()
	return math.Sqrt(-2.0*math.Log(u1)) * math.Cos(2.0*math.Pi*u2)
}

func (x *XavierNormal) float64() float64 {
	if x.rng != nil {
		return x.rng.Float64()
	}
	//nolint:gosec // math/rand for weight initialization (not security-critical)
	return rand.Float64()
}

// XavierUniform draws weights from U(-bound, bound) with
// bound = sqrt(6/(fanIn+fanOut)).
type XavierUniform struct {
	rng *rand.Rand
}

// NewXavierUniform creates a XavierUniform strategy backed by the
// process-wide generator.
func NewXavierUniform() *XavierUniform {
	return &XavierUniform{}
}

// NewXavierUniformWithSeed creates a deterministic XavierUniform strategy.
func NewXavierUniformWithSeed(seed int64) *XavierUniform {
	return &XavierUniform{rng: rand.New(rand.NewSource(seed))}
}

// Init returns a weight drawn from U(-bound, bound).
func (x *XavierUniform) Init(fanIn, fanOut int) float64 {
	bound := math.Sqrt(6.0 / float64(fanIn+fanOut))
	return (x.float64()*2.0 - 1.0) * bound
}

func (x *XavierUniform) float64() float64 {
	if x.rng != nil {
		return x.rng.Float64()
	}
	//nolint:gosec // math/rand for weight initialization (not security-critical)
	return rand.Float64()
}

// FixedRandom ignores the fan sizes and draws weights uniformly from the
// narrow band [0.45, 0.55).
type FixedRandom struct {
	rng *rand.Rand
}

// NewFixedRandom creates a FixedRandom strategy backed by the process-wide
// generator.
func NewFixedRandom() *FixedRandom {
	return &FixedRandom{}
}

// NewFixedRandomWithSeed creates a deterministic FixedRandom strategy.
func NewFixedRandomWithSeed(seed int64) *FixedRandom {
	return &FixedRandom{rng: rand.New(rand.NewSource(seed))}
}

// Init returns a weight in [0.45, 0.55).
func (f *FixedRandom) Init(fanIn, fanOut int) float64 {
	return 0.45 + f.float64()*0.1
}

func (f *FixedRandom) float64() float64 {
	if f.rng != nil {
		return f.rng.Float64()
	}
	//nolint:gosec // math/rand for weight initialization (not security-critical)
	return rand.Float64()
}
