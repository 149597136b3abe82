package timestep

import (
	"reflect"
	"strings"
	"testing"
)

const single = `{
	"minimap": [[[0, 1], [2, 3]], [[4, 5], [6, 7]]],
	"screen": [[[1, 1, 1]]],
	"available_actions": [0, 3]
}`

func TestDecodeObservation(t *testing.T) {
	obs, err := DecodeObservation(strings.NewReader(single))
	if err != nil {
		t.Fatal(err)
	}

	if shape := []int(obs.Minimap.Shape()); !reflect.DeepEqual(shape,
		[]int{2, 2, 2}) {
		t.Errorf("minimap shape \n\twant(%v)\n\thave(%v)", []int{2, 2, 2},
			shape)
	}
	want := []int32{0, 1, 2, 3, 4, 5, 6, 7}
	if data := obs.Minimap.Data().([]int32); !reflect.DeepEqual(data, want) {
		t.Errorf("minimap data \n\twant(%v)\n\thave(%v)", want, data)
	}
	if shape := []int(obs.Screen.Shape()); !reflect.DeepEqual(shape,
		[]int{1, 1, 3}) {
		t.Errorf("screen shape \n\twant(%v)\n\thave(%v)", []int{1, 1, 3},
			shape)
	}
	if !reflect.DeepEqual(obs.AvailableActions, []int{0, 3}) {
		t.Errorf("available actions \n\twant(%v)\n\thave(%v)", []int{0, 3},
			obs.AvailableActions)
	}
}

func TestDecodeObservations(t *testing.T) {
	obs, err := DecodeObservations(strings.NewReader("[" + single + "," +
		single + "]"))
	if err != nil {
		t.Fatal(err)
	}
	if len(obs) != 2 {
		t.Errorf("observations \n\twant(%v)\n\thave(%v)", 2, len(obs))
	}
}

func TestDecodeObservationErrors(t *testing.T) {
	inputs := map[string]string{
		"ragged rows": `{"minimap": [[[0]], [[0], [1]]], "screen": [[[0]]]}`,
		"ragged cols": `{"minimap": [[[0, 1], [1]]], "screen": [[[0]]]}`,
		"empty":       `{"minimap": [], "screen": [[[0]]]}`,
		"not json":    `minimap`,
	}
	for name, input := range inputs {
		if _, err := DecodeObservation(strings.NewReader(input)); err == nil {
			t.Errorf("decodeobservation %v: expected error", name)
		}
	}

	if _, err := DecodeObservation(strings.NewReader("[" + single + "," +
		single + "]")); err == nil {
		t.Error("decodeobservation: expected error for multiple observations")
	}
}

func TestTransition(t *testing.T) {
	first, err := DecodeObservation(strings.NewReader(single))
	if err != nil {
		t.Fatal(err)
	}
	step := New(First, 0, 1, first, 0)
	next := New(Last, 1, 0, first, 1)

	if !step.First() || step.Last() || !next.Last() {
		t.Error("steptype: incorrect step types")
	}

	a := FunctionCall{Function: 7, Arguments: [][]int{{0}}}
	tr := NewTransition(step, a, next)
	if tr.Action.Function != 7 || tr.Observation.Minimap != first.Minimap {
		t.Error("newtransition: transition does not match its steps")
	}
}
