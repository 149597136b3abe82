// Package synth generates synthetic, well-formed raw observations.
// Synthetic observations are useful for testing and benchmarking
// preprocessing without running the game.
package synth

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/samuelfneumann/gosc2/features"
	"github.com/samuelfneumann/gosc2/timestep"
	"gorgonia.org/tensor"
)

// AvailableProb is the probability with which each action other than
// action 0 is available in a generated observation. Action 0 (no-op)
// is always available.
const AvailableProb float64 = 0.1

// Generator generates random observations. Scalar layers are sampled
// uniformly from [0, scale) and categorical layers uniformly from the
// category ids [0, scale). Generators with equal seeds generate equal
// observations.
type Generator struct {
	minimap     features.Table
	screen      features.Table
	minimapSize int
	screenSize  int
	actionSpace int

	rng       *rand.Rand
	uniform   distuv.Uniform
	available distuv.Bernoulli
}

// New creates and returns a new Generator of observations with layer
// stacks described by the minimap and screen tables. Minimap layers
// are minimapSize x minimapSize and screen layers are
// screenSize x screenSize.
func New(minimap, screen features.Table, minimapSize, screenSize,
	actionSpace int, seed uint64) (*Generator, error) {
	if minimapSize < 1 || screenSize < 1 {
		return nil, fmt.Errorf("new: layer sizes must be >= 1")
	}
	if actionSpace < 1 {
		return nil, fmt.Errorf("new: action space must be >= 1")
	}

	src := rand.NewSource(seed)
	return &Generator{
		minimap:     minimap,
		screen:      screen,
		minimapSize: minimapSize,
		screenSize:  screenSize,
		actionSpace: actionSpace,
		rng:         rand.New(src),
		uniform:     distuv.Uniform{Min: 0, Max: 1, Src: src},
		available:   distuv.Bernoulli{P: AvailableProb, Src: src},
	}, nil
}

// NewV12 returns a Generator of pysc2 v1.2 observations
func NewV12(minimapSize, screenSize, actionSpace int,
	seed uint64) (*Generator, error) {
	return New(features.MinimapV12, features.ScreenV12, minimapSize,
		screenSize, actionSpace, seed)
}

// ActionSpace returns the size of the action space of generated
// observations
func (g *Generator) ActionSpace() int {
	return g.actionSpace
}

// Observation generates a single observation
func (g *Generator) Observation() timestep.Observation {
	return timestep.Observation{
		Minimap:          g.stack(g.minimap, g.minimapSize),
		Screen:           g.stack(g.screen, g.screenSize),
		AvailableActions: g.actions(),
	}
}

// Episode generates an episode of n+1 timesteps. The first timestep
// is a First step, the last is a Last step and all others are Mid
// steps. Rewards are 0 and discounts are 1 except at the last step,
// which has a discount of 0.
func (g *Generator) Episode(n int) []timestep.TimeStep {
	if n <= 0 {
		return nil
	}

	steps := make([]timestep.TimeStep, n+1)
	for i := range steps {
		stepType, discount := timestep.Mid, 1.0
		switch i {
		case 0:
			stepType = timestep.First
		case n:
			stepType, discount = timestep.Last, 0.0
		}
		steps[i] = timestep.New(stepType, 0, discount, g.Observation(), i)
	}
	return steps
}

// Transitions generates a trajectory of n transitions from an Episode.
// The next observation of each transition is the observation of the
// following transition, and each action is one of the actions
// available at its observation.
func (g *Generator) Transitions(n int) []timestep.Transition {
	steps := g.Episode(n)
	if steps == nil {
		return nil
	}

	t := make([]timestep.Transition, n)
	for i := range t {
		actions := steps[i].Observation.AvailableActions
		action := timestep.FunctionCall{
			Function: actions[g.rng.Intn(len(actions))],
		}
		t[i] = timestep.NewTransition(steps[i], action, steps[i+1])
	}
	return t
}

// stack generates a layer stack for a table
func (g *Generator) stack(table features.Table, size int) *tensor.Dense {
	layer := size * size
	backing := make([]int32, table.Len()*layer)

	for c := 0; c < table.Len(); c++ {
		f := table.At(c)
		data := backing[c*layer : (c+1)*layer]
		for i := range data {
			if f.Type == features.Categorical {
				data[i] = int32(g.rng.Intn(f.Scale))
			} else {
				value := math.Floor(g.uniform.Rand() * float64(f.Scale))
				data[i] = int32(math.Min(value, float64(f.Scale-1)))
			}
		}
	}

	return tensor.New(
		tensor.WithShape(table.Len(), size, size),
		tensor.WithBacking(backing),
	)
}

// actions generates a list of available actions
func (g *Generator) actions() []int {
	actions := []int{0}
	for a := 1; a < g.actionSpace; a++ {
		if g.available.Rand() == 1 {
			actions = append(actions, a)
		}
	}
	return actions
}
