// Copyright 2025 The NeuralNetLib Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package initializer exposes the weight initialization strategies.
package initializer

import (
	"github.com/AilurusApps/NeuralNetLib/internal/initializer"
)

// Strategy produces an initial connection weight from a connection's layer
// fan-in and fan-out.
type Strategy = initializer.Strategy

// XavierNormal draws weights from N(0, 2/(fanIn+fanOut)).
type XavierNormal = initializer.XavierNormal

// NewXavierNormal creates a XavierNormal strategy backed by the process-wide
// generator.
func NewXavierNormal() *XavierNormal {
	return initializer.NewXavierNormal()
}

// NewXavierNormalWithSeed creates a deterministic XavierNormal strategy.
func NewXavierNormalWithSeed(seed int64) *XavierNormal {
	return initializer.NewXavierNormalWithSeed(seed)
}

// XavierUniform draws weights from U(-b, b) with b = sqrt(6/(fanIn+fanOut)).
type XavierUniform = initializer.XavierUniform

// NewXavierUniform creates a XavierUniform strategy backed by the
// process-wide generator.
func NewXavierUniform() *XavierUniform {
	return initializer.NewXavierUniform()
}

// NewXavierUniformWithSeed creates a deterministic XavierUniform strategy.
func NewXavierUniformWithSeed(seed int64) *XavierUniform {
	return initializer.NewXavierUniformWithSeed(seed)
}

// FixedRandom draws weights uniformly from the narrow band [0.45, 0.55),
// ignoring the fan sizes.
type FixedRandom = initializer.FixedRandom

// NewFixedRandom creates a FixedRandom strategy backed by the process-wide
// generator.
func NewFixedRandom() *FixedRandom {
	return initializer.NewFixedRandom()
}

// NewFixedRandomWithSeed creates a deterministic FixedRandom strategy.
func NewFixedRandomWithSeed(seed int64) *FixedRandom {
	return initializer.NewFixedRandomWithSeed(seed)
}
