// Package preprocess converts raw minimap and screen layer stacks and
// available action lists into normalized float32 tensors that can be
// fed to a policy network, and assembles batches of such tensors from
// trajectories.
//
// Scalar features are divided by their scale. Categorical features are
// expanded into one binary indicator plane per category. Which layers
// are encoded, and in which order, is determined by a Policy.
//
// All functions in this package are pure and may be called
// concurrently.
package preprocess

import (
	"fmt"

	"github.com/samuelfneumann/gosc2/features"
	"github.com/samuelfneumann/gosc2/utils/tensorutils"
	"gorgonia.org/tensor"
)

// Plane describes a single output channel of an Encoder. Output is the
// index of the channel in the encoded tensor and Channel is the index
// of the source layer in the raw layer stack. Category is the category
// id that the plane indicates for one-hot planes and -1 for normalized
// planes.
type Plane struct {
	Output   int
	Channel  int
	Feature  features.Feature
	Category int
}

// OneHot returns whether the plane is a binary indicator plane
func (p Plane) OneHot() bool {
	return p.Category >= 0
}

// Encoder encodes raw layer stacks described by a feature Table
// according to a selection Policy. Encoders are immutable.
type Encoder struct {
	table  features.Table
	policy Policy
	layout []Plane
}

// NewEncoder creates and returns a new Encoder. The policy must
// reference only channels of the table and must produce exactly
// policy.OutputChannels channels.
func NewEncoder(table features.Table, policy Policy) (*Encoder, error) {
	const op = "newencoder"

	channels := policy.Channels
	if channels == nil {
		channels = make([]int, table.Len())
		for i := range channels {
			channels[i] = i
		}
	}

	seen := make(map[int]bool, len(channels))
	for _, ch := range channels {
		if ch < 0 || ch >= table.Len() {
			return nil, newError(op, ErrPolicy, "channel %d not in table "+
				"%v", ch, table.Name())
		}
		if seen[ch] {
			return nil, newError(op, ErrPolicy, "channel %d selected "+
				"twice", ch)
		}
		seen[ch] = true
	}

	skip, norm := set(policy.Skip), set(policy.Normalize)
	var layout []Plane
	for _, ch := range channels {
		if skip[ch] {
			continue
		}

		f := table.At(ch)
		if norm[ch] || f.Type == features.Scalar {
			layout = append(layout, Plane{len(layout), ch, f, -1})
			continue
		}
		for j := 0; j < f.Scale; j++ {
			layout = append(layout, Plane{len(layout), ch, f, j})
		}
	}

	if policy.OutputChannels <= 0 {
		return nil, newError(op, ErrPolicy, "output channels must be > 0")
	}
	if len(layout) != policy.OutputChannels {
		return nil, newError(op, ErrPolicy, "policy produces wrong number "+
			"of channels\n\twant(%v)\n\thave(%v)", policy.OutputChannels,
			len(layout))
	}

	return &Encoder{
		table: table,
		policy: Policy{
			Channels:       copyInts(channels),
			Skip:           copyInts(policy.Skip),
			Normalize:      copyInts(policy.Normalize),
			OutputChannels: policy.OutputChannels,
		},
		layout: layout,
	}, nil
}

// mustEncoder is like NewEncoder but panics on error. It is used only
// for the built-in encoders.
func mustEncoder(table features.Table, policy Policy) *Encoder {
	e, err := NewEncoder(table, policy)
	if err != nil {
		panic(fmt.Sprintf("mustencoder: %v", err))
	}
	return e
}

var (
	minimapEncoder = mustEncoder(features.MinimapV12, MinimapPolicy())
	screenEncoder  = mustEncoder(features.ScreenV12, ScreenPolicy())
)

// MinimapEncoder returns the built-in pysc2 v1.2 minimap Encoder
func MinimapEncoder() *Encoder {
	return minimapEncoder
}

// ScreenEncoder returns the built-in pysc2 v1.2 screen Encoder
func ScreenEncoder() *Encoder {
	return screenEncoder
}

// Table returns the feature table of the Encoder
func (e *Encoder) Table() features.Table {
	return e.table
}

// Policy returns a copy of the selection policy of the Encoder
func (e *Encoder) Policy() Policy {
	return Policy{
		Channels:       copyInts(e.policy.Channels),
		Skip:           copyInts(e.policy.Skip),
		Normalize:      copyInts(e.policy.Normalize),
		OutputChannels: e.policy.OutputChannels,
	}
}

// Channels returns the number of channels the Encoder outputs
func (e *Encoder) Channels() int {
	return e.policy.OutputChannels
}

// Layout returns a description of every output channel of the Encoder
func (e *Encoder) Layout() []Plane {
	layout := make([]Plane, len(e.layout))
	copy(layout, e.layout)
	return layout
}

// Encode encodes a raw layer stack of shape (channels, height, width)
// into a float32 tensor of shape (e.Channels(), height, width). The
// number of input channels must equal the length of the Encoder's
// feature table. The input is not modified.
func (e *Encoder) Encode(stack *tensor.Dense) (*tensor.Dense, error) {
	data, h, w, err := e.encode("encode", stack)
	if err != nil {
		return nil, err
	}
	return tensor.New(
		tensor.WithShape(e.Channels(), h, w),
		tensor.WithBacking(data),
	), nil
}

// encode encodes stack and returns the encoded backing data along
// with the spatial dimensions of the stack
func (e *Encoder) encode(op string, stack *tensor.Dense) ([]float32, int,
	int, error) {
	if stack == nil {
		return nil, 0, 0, newError(op, ErrShape, "nil layer stack")
	}

	shape := stack.Shape()
	if len(shape) != 3 {
		return nil, 0, 0, newError(op, ErrShape, "layer stack must be "+
			"3-dimensional (channels, height, width), have shape %v", shape)
	}
	if shape[0] != e.table.Len() {
		return nil, 0, 0, newError(op, ErrShape, "invalid number of "+
			"channels for %v\n\twant(%v)\n\thave(%v)", e.table.Name(),
			e.table.Len(), shape[0])
	}

	raw, err := tensorutils.Float64s(stack)
	if err != nil {
		return nil, 0, 0, &PreprocessError{Op: op, Err: err}
	}

	h, w := shape[1], shape[2]
	size := h * w
	out := make([]float32, e.Channels()*size)

	for _, p := range e.layout {
		src := raw[p.Channel*size : (p.Channel+1)*size]
		dst := out[p.Output*size : (p.Output+1)*size]

		if !p.OneHot() {
			scale := float32(p.Feature.Scale)
			for i, v := range src {
				dst[i] = float32(v) / scale
			}
			continue
		}

		category := float64(p.Category)
		for i, v := range src {
			if v == category {
				dst[i] = 1
			}
		}
	}

	return out, h, w, nil
}
