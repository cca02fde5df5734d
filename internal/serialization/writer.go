package serialization

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/AilurusApps/NeuralNetLib/internal/network"
	"github.com/AilurusApps/NeuralNetLib/internal/train"
)

// WriteNetwork writes a network record to w.
//
// The output is deterministic: the same network state always produces the
// same bytes.
func WriteNetwork(w io.Writer, net *network.Network) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%s %d\n", NetworkMagic, FormatVersion)
	fmt.Fprintf(bw, "%d %d\n", net.InputCount(), net.OutputCount())

	sizes := net.HiddenSizes()
	fmt.Fprintf(bw, "%d", len(sizes))
	for _, size := range sizes {
		fmt.Fprintf(bw, " %d", size)
	}
	fmt.Fprintln(bw)

	writeFloats(bw, collectNeuronValues(net, (*network.Neuron).Bias))
	writeFloats(bw, collectNeuronValues(net, (*network.Neuron).PreviousBiasDelta))
	writeFloats(bw, collectConnectionValues(net, (*network.Connection).Weight))
	writeFloats(bw, collectConnectionValues(net, (*network.Connection).PreviousDelta))

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write network: %w", err)
	}
	return nil
}

// SaveNetwork writes a network record to the file at path, creating or
// truncating it.
func SaveNetwork(path string, net *network.Network) error {
	//nolint:gosec // G304: the destination path is caller-chosen by design
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save network: %w", err)
	}
	defer file.Close()

	return WriteNetwork(file, net)
}

// WriteTrainingSet writes a training-set record to w. Examples are written
// in slice order.
func WriteTrainingSet(w io.Writer, examples []*train.Data) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%s %d\n", TrainingSetMagic, FormatVersion)
	fmt.Fprintf(bw, "%d\n", len(examples))

	for _, d := range examples {
		fmt.Fprintf(bw, "%s\n", formatFloat(d.Reward))

		fmt.Fprintf(bw, "%d", len(d.Inputs))
		for _, v := range d.Inputs {
			fmt.Fprintf(bw, " %s", formatFloat(v))
		}
		fmt.Fprintln(bw)

		fmt.Fprintf(bw, "%d", len(d.Outputs))
		for _, v := range d.Outputs {
			fmt.Fprintf(bw, " %s", formatFloat(v))
		}
		fmt.Fprintln(bw)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write training set: %w", err)
	}
	return nil
}

// SaveTrainingSet writes a training-set record to the file at path.
func SaveTrainingSet(path string, examples []*train.Data) error {
	//nolint:gosec // G304: the destination path is caller-chosen by design
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save training set: %w", err)
	}
	defer file.Close()

	return WriteTrainingSet(file, examples)
}

// formatFloat renders a value in shortest form that parses back to the same
// bits.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func writeFloats(bw *bufio.Writer, values []float64) {
	for i, v := range values {
		if i > 0 {
			bw.WriteByte(' ')
		}
		bw.WriteString(formatFloat(v))
	}
	bw.WriteByte('\n')
}

func collectNeuronValues(net *network.Network, get func(*network.Neuron) float64) []float64 {
	var values []float64
	net.EachNeuron(func(n *network.Neuron) {
		values = append(values, get(n))
	})
	return values
}

func collectConnectionValues(net *network.Network, get func(*network.Connection) float64) []float64 {
	var values []float64
	net.EachConnection(func(c *network.Connection) {
		values = append(values, get(c))
	})
	return values
}
