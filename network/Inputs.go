// Package network provides the input layer of a policy network that
// consumes preprocessed observations
package network

import (
	"fmt"

	"github.com/samuelfneumann/gosc2/preprocess"
	G "gorgonia.org/gorgonia"
	"gorgonia.org/tensor"
)

// Inputs holds the input nodes of a policy network's computational
// graph: the encoded minimaps, the encoded screens, and the available
// action vectors of a batch of observations
type Inputs struct {
	g       *G.ExprGraph
	minimap *G.Node
	screen  *G.Node
	info    *G.Node
}

// NewInputs creates the input nodes on graph g for batches of batch
// observations. Minimap layers are minimapSize x minimapSize, screen
// layers are screenSize x screenSize, and the action space has
// actionSpace actions.
func NewInputs(g *G.ExprGraph, batch, minimapSize, screenSize,
	actionSpace int) (*Inputs, error) {
	if batch < 1 {
		return nil, fmt.Errorf("newinputs: batch size must be >= 1")
	}
	if minimapSize < 1 || screenSize < 1 {
		return nil, fmt.Errorf("newinputs: layer sizes must be >= 1")
	}
	if actionSpace < 1 {
		return nil, fmt.Errorf("newinputs: action space must be >= 1")
	}

	minimap := G.NewTensor(
		g,
		tensor.Float32,
		4,
		G.WithShape(batch, preprocess.MinimapChannels(), minimapSize,
			minimapSize),
		G.WithName("minimap"),
		G.WithInit(G.Zeroes()),
	)
	screen := G.NewTensor(
		g,
		tensor.Float32,
		4,
		G.WithShape(batch, preprocess.ScreenChannels(), screenSize,
			screenSize),
		G.WithName("screen"),
		G.WithInit(G.Zeroes()),
	)
	info := G.NewMatrix(
		g,
		tensor.Float32,
		G.WithShape(batch, actionSpace),
		G.WithName("info"),
		G.WithInit(G.Zeroes()),
	)

	return &Inputs{g, minimap, screen, info}, nil
}

// Graph returns the computational graph of the input nodes
func (in *Inputs) Graph() *G.ExprGraph {
	return in.g
}

// Minimap returns the encoded minimap input node
func (in *Inputs) Minimap() *G.Node {
	return in.minimap
}

// Screen returns the encoded screen input node
func (in *Inputs) Screen() *G.Node {
	return in.screen
}

// Info returns the available action input node
func (in *Inputs) Info() *G.Node {
	return in.info
}

// BatchSize returns the batch size of the input nodes
func (in *Inputs) BatchSize() int {
	return in.info.Shape()[0]
}

// Set sets the values of the input nodes to a preprocessed batch
// before running the forward pass. The batch must have the shapes of
// the input nodes.
func (in *Inputs) Set(b preprocess.Batch) error {
	if b.Len() == 0 {
		return fmt.Errorf("set: empty batch")
	}

	pairs := []struct {
		node  *G.Node
		value *tensor.Dense
	}{
		{in.minimap, b.Minimaps},
		{in.screen, b.Screens},
		{in.info, b.Infos},
	}
	for _, p := range pairs {
		if !p.node.Shape().Eq(p.value.Shape()) {
			return fmt.Errorf("set: invalid %v shape\n\twant(%v)\n\thave(%v)",
				p.node.Name(), p.node.Shape(), p.value.Shape())
		}
	}

	for _, p := range pairs {
		if err := G.Let(p.node, p.value); err != nil {
			return fmt.Errorf("set: %v: %v", p.node.Name(), err)
		}
	}
	return nil
}
