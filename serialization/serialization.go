// Copyright 2025 The NeuralNetLib Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package serialization exposes the text encoding for network state and
// training sets.
package serialization

import (
	"io"

	"github.com/AilurusApps/NeuralNetLib/internal/network"
	"github.com/AilurusApps/NeuralNetLib/internal/serialization"
	"github.com/AilurusApps/NeuralNetLib/internal/train"
)

// ReadConfig carries the construction choices a network record does not
// encode; nil fields fall back to the builder defaults.
type ReadConfig = serialization.ReadConfig

// Common errors.
var (
	ErrInvalidMagic       = serialization.ErrInvalidMagic
	ErrUnsupportedVersion = serialization.ErrUnsupportedVersion
	ErrCorruptRecord      = serialization.ErrCorruptRecord
)

// WriteNetwork writes a network record to w.
func WriteNetwork(w io.Writer, net *network.Network) error {
	return serialization.WriteNetwork(w, net)
}

// ReadNetwork reads a network record from r, restoring every weight, bias
// and momentum delta.
func ReadNetwork(r io.Reader, config ReadConfig) (*network.Network, error) {
	return serialization.ReadNetwork(r, config)
}

// SaveNetwork writes a network record to the file at path.
func SaveNetwork(path string, net *network.Network) error {
	return serialization.SaveNetwork(path, net)
}

// LoadNetwork reads a network record from the file at path.
func LoadNetwork(path string, config ReadConfig) (*network.Network, error) {
	return serialization.LoadNetwork(path, config)
}

// WriteTrainingSet writes a training-set record to w.
func WriteTrainingSet(w io.Writer, examples []*train.Data) error {
	return serialization.WriteTrainingSet(w, examples)
}

// ReadTrainingSet reads a training-set record from r.
func ReadTrainingSet(r io.Reader) ([]*train.Data, error) {
	return serialization.ReadTrainingSet(r)
}

// SaveTrainingSet writes a training-set record to the file at path.
func SaveTrainingSet(path string, examples []*train.Data) error {
	return serialization.SaveTrainingSet(path, examples)
}

// LoadTrainingSet reads a training-set record from the file at path.
func LoadTrainingSet(path string) ([]*train.Data, error) {
	return serialization.LoadTrainingSet(path)
}
