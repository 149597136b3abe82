package network

import (
	"reflect"
	"testing"

	"github.com/samuelfneumann/gosc2/preprocess"
	"github.com/samuelfneumann/gosc2/synth"
	G "gorgonia.org/gorgonia"
)

func TestInputs(t *testing.T) {
	const (
		batch       = 2
		minimapSize = 4
		screenSize  = 6
		actionSpace = 10
	)

	g := G.NewGraph()
	in, err := NewInputs(g, batch, minimapSize, screenSize, actionSpace)
	if err != nil {
		t.Fatal(err)
	}
	if in.BatchSize() != batch || in.Graph() != g {
		t.Errorf("batchsize \n\twant(%v)\n\thave(%v)", batch, in.BatchSize())
	}

	want := []int{batch, preprocess.MinimapChannels(), minimapSize,
		minimapSize}
	if shape := []int(in.Minimap().Shape()); !reflect.DeepEqual(shape, want) {
		t.Errorf("minimap shape \n\twant(%v)\n\thave(%v)", want, shape)
	}

	gen, err := synth.NewV12(minimapSize, screenSize, actionSpace, 3)
	if err != nil {
		t.Fatal(err)
	}
	b, err := preprocess.PreprocessBatch(gen.Transitions(batch), actionSpace)
	if err != nil {
		t.Fatal(err)
	}
	if err := in.Set(b); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(in.Info().Value().Data(), b.Infos.Data()) {
		t.Error("set: info node value does not match batch")
	}

	// Batches of the wrong size are rejected
	b, err = preprocess.PreprocessBatch(gen.Transitions(batch+1),
		actionSpace)
	if err != nil {
		t.Fatal(err)
	}
	if err := in.Set(b); err == nil {
		t.Error("set: expected error for wrong batch size")
	}
	if err := in.Set(preprocess.Batch{}); err == nil {
		t.Error("set: expected error for empty batch")
	}
}

func TestNewInputsErrors(t *testing.T) {
	g := G.NewGraph()
	if _, err := NewInputs(g, 0, 4, 4, 10); err == nil {
		t.Error("newinputs: expected error for batch size 0")
	}
	if _, err := NewInputs(g, 1, 4, 4, 0); err == nil {
		t.Error("newinputs: expected error for action space 0")
	}
}
