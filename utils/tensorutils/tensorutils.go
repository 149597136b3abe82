// Package tensorutils implements utility functions for working with
// gorgonia tensors
package tensorutils

import (
	"fmt"

	"gorgonia.org/tensor"
)

// Float64s returns the elements of a numeric tensor converted to
// float64 in row-major order. The tensor's backing data is not
// modified.
func Float64s(t *tensor.Dense) ([]float64, error) {
	if t == nil {
		return nil, fmt.Errorf("float64s: nil tensor")
	}
	if t.IsMaterializable() {
		t = t.Materialize().(*tensor.Dense)
	}

	switch data := t.Data().(type) {
	case []float64:
		out := make([]float64, len(data))
		copy(out, data)
		return out, nil
	case []float32:
		return convert(data), nil
	case []int:
		return convert(data), nil
	case []int64:
		return convert(data), nil
	case []int32:
		return convert(data), nil
	case []int16:
		return convert(data), nil
	case []int8:
		return convert(data), nil
	case []uint8:
		return convert(data), nil
	case []uint16:
		return convert(data), nil
	case []uint32:
		return convert(data), nil
	default:
		return nil, fmt.Errorf("float64s: unsupported dtype %v", t.Dtype())
	}
}

type number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 |
		~float32 | ~float64
}

func convert[T number](data []T) []float64 {
	out := make([]float64, len(data))
	for i, v := range data {
		out[i] = float64(v)
	}
	return out
}
