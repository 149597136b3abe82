package preprocess

import (
	"fmt"

	"github.com/samuelfneumann/gosc2/buffer/trajectory"
	"github.com/samuelfneumann/gosc2/timestep"
	"gorgonia.org/tensor"
)

// PreprocessMinimap encodes a pysc2 v1.2 minimap layer stack of shape
// (7, height, width) into a tensor of shape (14, height, width)
func PreprocessMinimap(minimap *tensor.Dense) (*tensor.Dense, error) {
	return minimapEncoder.Encode(minimap)
}

// PreprocessScreen encodes a pysc2 v1.2 screen layer stack of shape
// (17, height, width) into a tensor of shape (16, height, width)
func PreprocessScreen(screen *tensor.Dense) (*tensor.Dense, error) {
	return screenEncoder.Encode(screen)
}

// Preprocessor encodes whole observations with a minimap Encoder and
// a screen Encoder
type Preprocessor struct {
	Minimap *Encoder
	Screen  *Encoder
}

// NewPreprocessor returns a Preprocessor using the given encoders
func NewPreprocessor(minimap, screen *Encoder) (Preprocessor, error) {
	if minimap == nil || screen == nil {
		return Preprocessor{}, fmt.Errorf("newpreprocessor: encoders " +
			"must not be nil")
	}
	return Preprocessor{Minimap: minimap, Screen: screen}, nil
}

// DefaultPreprocessor returns the Preprocessor of pysc2 v1.2
// observations used by PreprocessObs and PreprocessBatch
func DefaultPreprocessor() Preprocessor {
	return Preprocessor{Minimap: minimapEncoder, Screen: screenEncoder}
}

// PreprocessObs encodes a single observation. It returns the encoded
// minimap of shape (1, 14, height, width), the encoded screen of shape
// (1, 16, height, width), and the available action vector of shape
// (1, actionSpace), which is 1 at each available action id and 0
// elsewhere.
func PreprocessObs(obs timestep.Observation, actionSpace int) (minimap,
	screen, info *tensor.Dense, err error) {
	return DefaultPreprocessor().Obs(obs, actionSpace)
}

// Obs encodes a single observation. The returned tensors have a
// leading batch dimension of size 1.
func (p Preprocessor) Obs(obs timestep.Observation, actionSpace int) (minimap,
	screen, info *tensor.Dense, err error) {
	const op = "preprocessobs"

	m, mh, mw, err := p.Minimap.encode(op, obs.Minimap)
	if err != nil {
		return nil, nil, nil, err
	}
	s, sh, sw, err := p.Screen.encode(op, obs.Screen)
	if err != nil {
		return nil, nil, nil, err
	}
	avail, err := available(op, obs.AvailableActions, actionSpace)
	if err != nil {
		return nil, nil, nil, err
	}

	minimap = tensor.New(
		tensor.WithShape(1, p.Minimap.Channels(), mh, mw),
		tensor.WithBacking(m),
	)
	screen = tensor.New(
		tensor.WithShape(1, p.Screen.Channels(), sh, sw),
		tensor.WithBacking(s),
	)
	info = tensor.New(
		tensor.WithShape(1, actionSpace),
		tensor.WithBacking(avail),
	)
	return minimap, screen, info, nil
}

// available returns the binary available action vector
func available(op string, actions []int, actionSpace int) ([]float32,
	error) {
	if actionSpace <= 0 {
		return nil, newError(op, ErrActionSpace, "have(%v)", actionSpace)
	}

	info := make([]float32, actionSpace)
	for _, a := range actions {
		if a < 0 || a >= actionSpace {
			return nil, newError(op, ErrActionRange, "action %d not in "+
				"[0, %d)", a, actionSpace)
		}
		info[a] = 1
	}
	return info, nil
}

// PreprocessBatch encodes the first observation of each transition and
// concatenates the results along the batch dimension, preserving the
// order of transitions. The actions and next observations of the
// transitions are not used. At least one transition is required.
func PreprocessBatch(transitions []timestep.Transition,
	actionSpace int) (Batch, error) {
	return DefaultPreprocessor().Batch(transitions, actionSpace)
}

// Batch encodes the first observation of each transition and
// concatenates the results along the batch dimension
func (p Preprocessor) Batch(transitions []timestep.Transition,
	actionSpace int) (Batch, error) {
	const op = "preprocessbatch"

	if len(transitions) == 0 {
		return Batch{}, newError(op, ErrEmptyBatch, "at least one "+
			"transition is required")
	}

	minimaps := make([]*tensor.Dense, len(transitions))
	screens := make([]*tensor.Dense, len(transitions))
	infos := make([]*tensor.Dense, len(transitions))
	for i, t := range transitions {
		m, s, info, err := p.Obs(t.Observation, actionSpace)
		if err != nil {
			return Batch{}, &PreprocessError{
				Op:  op,
				Err: fmt.Errorf("transition %d: %w", i, err),
			}
		}
		minimaps[i], screens[i], infos[i] = m, s, info
	}
	return Stack(minimaps, screens, infos)
}

// Stack concatenates observations encoded with PreprocessObs or
// Preprocessor.Obs along the batch dimension. All three slices must
// have the same length, and all minimaps and all screens must have the
// same spatial dimensions.
func Stack(minimaps, screens, infos []*tensor.Dense) (Batch, error) {
	const op = "stack"

	if len(minimaps) == 0 {
		return Batch{}, newError(op, ErrEmptyBatch, "at least one "+
			"observation is required")
	}
	if len(screens) != len(minimaps) || len(infos) != len(minimaps) {
		return Batch{}, newError(op, ErrShape, "screen and info counts "+
			"\n\twant(%v)\n\thave(%v, %v)",
			len(minimaps), len(screens), len(infos))
	}

	for i := range minimaps {
		if minimaps[i] == nil || screens[i] == nil || infos[i] == nil {
			return Batch{}, newError(op, ErrShape, "observation %d is nil", i)
		}
		if i > 0 && (!minimaps[i].Shape().Eq(minimaps[0].Shape()) ||
			!screens[i].Shape().Eq(screens[0].Shape()) ||
			!infos[i].Shape().Eq(infos[0].Shape())) {
			return Batch{}, newError(op, ErrShape, "observation %d has "+
				"different dimensions than observation 0", i)
		}
	}

	var err error
	b := Batch{}
	if b.Minimaps, err = concat(minimaps); err != nil {
		return Batch{}, &PreprocessError{Op: op, Err: err}
	}
	if b.Screens, err = concat(screens); err != nil {
		return Batch{}, &PreprocessError{Op: op, Err: err}
	}
	if b.Infos, err = concat(infos); err != nil {
		return Batch{}, &PreprocessError{Op: op, Err: err}
	}
	return b, nil
}

// PreprocessBuffer encodes the transitions of a trajectory buffer,
// most recent transition first
func PreprocessBuffer(b *trajectory.Buffer, actionSpace int) (Batch, error) {
	return PreprocessBatch(b.Reversed(), actionSpace)
}

// concat concatenates tensors along the first axis
func concat(ts []*tensor.Dense) (*tensor.Dense, error) {
	if len(ts) == 1 {
		return ts[0], nil
	}
	return ts[0].Concat(0, ts[1:]...)
}
