package timestep

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gorgonia.org/tensor"
)

// rawObservation is the JSON layout of an observation dump
type rawObservation struct {
	Minimap          [][][]int32 `json:"minimap"`
	Screen           [][][]int32 `json:"screen"`
	AvailableActions []int       `json:"available_actions"`
}

func (r rawObservation) observation() (Observation, error) {
	minimap, err := stack(r.Minimap)
	if err != nil {
		return Observation{}, fmt.Errorf("minimap: %v", err)
	}
	screen, err := stack(r.Screen)
	if err != nil {
		return Observation{}, fmt.Errorf("screen: %v", err)
	}

	actions := make([]int, len(r.AvailableActions))
	copy(actions, r.AvailableActions)

	return Observation{
		Minimap:          minimap,
		Screen:           screen,
		AvailableActions: actions,
	}, nil
}

// stack converts nested (channel, row, column) slices into an int32
// tensor of shape (channels, height, width)
func stack(layers [][][]int32) (*tensor.Dense, error) {
	if len(layers) == 0 || len(layers[0]) == 0 || len(layers[0][0]) == 0 {
		return nil, fmt.Errorf("empty layer stack")
	}
	c, h, w := len(layers), len(layers[0]), len(layers[0][0])

	backing := make([]int32, 0, c*h*w)
	for i, layer := range layers {
		if len(layer) != h {
			return nil, fmt.Errorf("layer %d: ragged rows\n\twant(%v)"+
				"\n\thave(%v)", i, h, len(layer))
		}
		for j, row := range layer {
			if len(row) != w {
				return nil, fmt.Errorf("layer %d row %d: ragged columns"+
					"\n\twant(%v)\n\thave(%v)", i, j, w, len(row))
			}
			backing = append(backing, row...)
		}
	}

	return tensor.New(tensor.WithShape(c, h, w), tensor.WithBacking(backing)), nil
}

// DecodeObservations decodes observations from JSON. The input may be
// a single observation object or an array of observation objects.
func DecodeObservations(r io.Reader) ([]Observation, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("decodeobservations: %w", err)
	}

	var raws []rawObservation
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '[' {
		err = json.Unmarshal(trimmed, &raws)
	} else {
		raws = make([]rawObservation, 1)
		err = json.Unmarshal(trimmed, &raws[0])
	}
	if err != nil {
		return nil, fmt.Errorf("decodeobservations: %w", err)
	}

	obs := make([]Observation, len(raws))
	for i, raw := range raws {
		obs[i], err = raw.observation()
		if err != nil {
			return nil, fmt.Errorf("decodeobservations: observation %d: %v",
				i, err)
		}
	}
	return obs, nil
}

// DecodeObservation decodes a single JSON observation
func DecodeObservation(r io.Reader) (Observation, error) {
	obs, err := DecodeObservations(r)
	if err != nil {
		return Observation{}, err
	}
	if len(obs) != 1 {
		return Observation{}, fmt.Errorf("decodeobservation: expected "+
			"one observation, have(%v)", len(obs))
	}
	return obs[0], nil
}

// LoadObservations reads JSON observations from a file
func LoadObservations(path string) ([]Observation, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loadobservations: %w", err)
	}
	defer file.Close()

	return DecodeObservations(file)
}
