// Package inspect implements diagnostics for preprocessed
// observations: channel layouts, per-channel statistics, and heatmap
// renderings of encoded planes.
package inspect

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/samuelfneumann/gosc2/preprocess"
	"github.com/samuelfneumann/gosc2/utils/tensorutils"
	"gorgonia.org/tensor"
)

// PlaneStats summarizes the values of a single encoded channel
type PlaneStats struct {
	Channel int
	Mean    float64
	StdDev  float64
	Min     float64
	Max     float64

	// Active is the fraction of non-zero cells
	Active float64
}

// Summarize computes statistics of every channel of an encoded tensor.
// The tensor must have shape (channels, height, width) or
// (batch, channels, height, width). For batched tensors, statistics of
// a channel are computed over all observations of the batch.
func Summarize(t *tensor.Dense) ([]PlaneStats, error) {
	if t == nil {
		return nil, fmt.Errorf("summarize: nil tensor")
	}

	shape := t.Shape()
	var n, c, size int
	switch len(shape) {
	case 3:
		n, c, size = 1, shape[0], shape[1]*shape[2]
	case 4:
		n, c, size = shape[0], shape[1], shape[2]*shape[3]
	default:
		return nil, fmt.Errorf("summarize: tensor must be 3 or "+
			"4-dimensional, have shape %v", shape)
	}
	if n*size == 0 {
		return nil, fmt.Errorf("summarize: tensor has no cells")
	}

	data, err := tensorutils.Float64s(t)
	if err != nil {
		return nil, fmt.Errorf("summarize: %v", err)
	}

	stats := make([]PlaneStats, c)
	values := make([]float64, n*size)
	for ch := 0; ch < c; ch++ {
		for i := 0; i < n; i++ {
			start := (i*c + ch) * size
			copy(values[i*size:(i+1)*size], data[start:start+size])
		}

		mean, std := stat.Mean(values, nil), 0.0
		if len(values) > 1 {
			mean, std = stat.MeanStdDev(values, nil)
		}
		active := floats.Count(func(v float64) bool { return v != 0 }, values)

		stats[ch] = PlaneStats{
			Channel: ch,
			Mean:    mean,
			StdDev:  std,
			Min:     floats.Min(values),
			Max:     floats.Max(values),
			Active:  float64(active) / float64(len(values)),
		}
	}
	return stats, nil
}

// Describe returns a short description of an output channel, such as
// "player_relative == 3" for one-hot planes or "unit_hit_points / 1600"
// for normalized planes
func Describe(p preprocess.Plane) string {
	if p.OneHot() {
		return fmt.Sprintf("%v == %d", p.Feature.Name, p.Category)
	}
	return fmt.Sprintf("%v / %d", p.Feature.Name, p.Feature.Scale)
}

// gridDims returns the number of rows and columns of a near-square
// grid holding n cells
func gridDims(n int) (rows, cols int) {
	cols = int(math.Ceil(math.Sqrt(float64(n))))
	if cols == 0 {
		return 0, 0
	}
	rows = (n + cols - 1) / cols
	return rows, cols
}
