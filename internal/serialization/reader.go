package serialization

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/AilurusApps/NeuralNetLib/internal/activation"
	"github.com/AilurusApps/NeuralNetLib/internal/network"
	"github.com/AilurusApps/NeuralNetLib/internal/train"
)

// ReadConfig carries the construction choices a network record does not
// encode. The record stores topology and numeric state only; activation
// functions are re-attached on read. Nil fields fall back to the builder
// defaults (tanh hidden, sigmoid output).
type ReadConfig struct {
	Activation       activation.Function
	OutputActivation activation.Function
}

// ReadNetwork reads a network record from r and reconstructs the network,
// restoring every weight, bias and momentum delta.
func ReadNetwork(r io.Reader, config ReadConfig) (*network.Network, error) {
	tr := newTokenReader(r)

	if err := tr.expectMagic(NetworkMagic); err != nil {
		return nil, err
	}

	inputCount, err := tr.readInt("input count")
	if err != nil {
		return nil, err
	}
	outputCount, err := tr.readInt("output count")
	if err != nil {
		return nil, err
	}
	hiddenCount, err := tr.readInt("hidden layer count")
	if err != nil {
		return nil, err
	}
	if hiddenCount < 0 {
		return nil, fmt.Errorf("read network: negative hidden layer count %d: %w", hiddenCount, ErrCorruptRecord)
	}
	hidden := make([]int, hiddenCount)
	for i := range hidden {
		if hidden[i], err = tr.readInt("hidden layer size"); err != nil {
			return nil, err
		}
	}

	net, err := network.New(network.Config{
		Inputs:           inputCount,
		Outputs:          outputCount,
		HiddenLayers:     hidden,
		Activation:       config.Activation,
		OutputActivation: config.OutputActivation,
	})
	if err != nil {
		return nil, fmt.Errorf("read network: %w", err)
	}

	if err := readNeuronValues(tr, net, "bias", (*network.Neuron).SetBias); err != nil {
		return nil, err
	}
	if err := readNeuronValues(tr, net, "bias delta", (*network.Neuron).SetPreviousBiasDelta); err != nil {
		return nil, err
	}
	if err := readConnectionValues(tr, net, "weight", (*network.Connection).SetWeight); err != nil {
		return nil, err
	}
	if err := readConnectionValues(tr, net, "weight delta", (*network.Connection).SetPreviousDelta); err != nil {
		return nil, err
	}

	return net, nil
}

// LoadNetwork reads a network record from the file at path.
func LoadNetwork(path string, config ReadConfig) (*network.Network, error) {
	//nolint:gosec // G304: the source path is caller-chosen by design
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load network: %w", err)
	}
	defer file.Close()

	return ReadNetwork(file, config)
}

// ReadTrainingSet reads a training-set record from r.
func ReadTrainingSet(r io.Reader) ([]*train.Data, error) {
	tr := newTokenReader(r)

	if err := tr.expectMagic(TrainingSetMagic); err != nil {
		return nil, err
	}

	count, err := tr.readInt("example count")
	if err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, fmt.Errorf("read training set: negative example count %d: %w", count, ErrCorruptRecord)
	}

	examples := make([]*train.Data, 0, count)
	for i := 0; i < count; i++ {
		reward, err := tr.readFloat("reward")
		if err != nil {
			return nil, err
		}
		inputs, err := tr.readCountedFloats("inputs")
		if err != nil {
			return nil, err
		}
		outputs, err := tr.readCountedFloats("outputs")
		if err != nil {
			return nil, err
		}

		d := train.NewData(inputs, outputs)
		d.Reward = reward
		examples = append(examples, d)
	}

	return examples, nil
}

// LoadTrainingSet reads a training-set record from the file at path.
func LoadTrainingSet(path string) ([]*train.Data, error) {
	//nolint:gosec // G304: the source path is caller-chosen by design
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load training set: %w", err)
	}
	defer file.Close()

	return ReadTrainingSet(file)
}

func readNeuronValues(tr *tokenReader, net *network.Network, what string, set func(*network.Neuron, float64)) error {
	var err error
	net.EachNeuron(func(n *network.Neuron) {
		if err != nil {
			return
		}
		var v float64
		if v, err = tr.readFloat(what); err == nil {
			set(n, v)
		}
	})
	return err
}

func readConnectionValues(tr *tokenReader, net *network.Network, what string, set func(*network.Connection, float64)) error {
	var err error
	net.EachConnection(func(c *network.Connection) {
		if err != nil {
			return
		}
		var v float64
		if v, err = tr.readFloat(what); err == nil {
			set(c, v)
		}
	})
	return err
}

// tokenReader pulls whitespace-separated tokens off a stream and parses them
// with positional error context.
type tokenReader struct {
	scanner *bufio.Scanner
	tokens  int
}

func newTokenReader(r io.Reader) *tokenReader {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	return &tokenReader{scanner: scanner}
}

func (tr *tokenReader) next(what string) (string, error) {
	if !tr.scanner.Scan() {
		if err := tr.scanner.Err(); err != nil {
			return "", fmt.Errorf("reading %s: %w", what, err)
		}
		return "", fmt.Errorf("token %d: missing %s: %w", tr.tokens+1, what, ErrCorruptRecord)
	}
	tr.tokens++
	return tr.scanner.Text(), nil
}

func (tr *tokenReader) expectMagic(magic string) error {
	got, err := tr.next("magic")
	if err != nil {
		return err
	}
	if got != magic {
		return fmt.Errorf("got %q, expected %q: %w", got, magic, ErrInvalidMagic)
	}

	version, err := tr.readInt("version")
	if err != nil {
		return err
	}
	if version != FormatVersion {
		return fmt.Errorf("version %d: %w", version, ErrUnsupportedVersion)
	}
	return nil
}

func (tr *tokenReader) readInt(what string) (int, error) {
	token, err := tr.next(what)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("token %d: %s %q: %w", tr.tokens, what, token, ErrCorruptRecord)
	}
	return v, nil
}

func (tr *tokenReader) readFloat(what string) (float64, error) {
	token, err := tr.next(what)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, fmt.Errorf("token %d: %s %q: %w", tr.tokens, what, token, ErrCorruptRecord)
	}
	return v, nil
}

func (tr *tokenReader) readCountedFloats(what string) ([]float64, error) {
	count, err := tr.readInt(what + " count")
	if err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, fmt.Errorf("token %d: negative %s count %d: %w", tr.tokens, what, count, ErrCorruptRecord)
	}

	values := make([]float64, count)
	for i := range values {
		if values[i], err = tr.readFloat(what); err != nil {
			return nil, err
		}
	}
	return values, nil
}
