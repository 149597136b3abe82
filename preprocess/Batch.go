package preprocess

import (
	"fmt"

	"gorgonia.org/tensor"
)

// Batch is a batch of encoded observations. Minimaps has shape
// (n, 14, height, width), Screens has shape (n, 16, height, width),
// and Infos has shape (n, actionSpace).
type Batch struct {
	Minimaps *tensor.Dense
	Screens  *tensor.Dense
	Infos    *tensor.Dense
}

// Len returns the number of observations in the batch
func (b Batch) Len() int {
	if b.Infos == nil {
		return 0
	}
	return b.Infos.Shape()[0]
}

// At returns a copy of the i-th observation of the batch. Each
// returned tensor keeps a leading batch dimension of size 1, so that
// b.At(i) has the same shapes as PreprocessObs for that observation.
func (b Batch) At(i int) (minimap, screen, info *tensor.Dense, err error) {
	if i < 0 || i >= b.Len() {
		return nil, nil, nil, fmt.Errorf("at: index %d out of range "+
			"[0, %d)", i, b.Len())
	}
	return item(b.Minimaps, i), item(b.Screens, i), item(b.Infos, i), nil
}

// item copies the i-th entry along the first axis of t into a new
// tensor with a leading dimension of size 1
func item(t *tensor.Dense, i int) *tensor.Dense {
	shape := t.Shape().Clone()
	size := shape.TotalSize() / shape[0]
	data := t.Data().([]float32)

	backing := make([]float32, size)
	copy(backing, data[i*size:(i+1)*size])

	shape[0] = 1
	return tensor.New(tensor.WithShape(shape...), tensor.WithBacking(backing))
}

// String returns a string representation of the batch
func (b Batch) String() string {
	if b.Len() == 0 {
		return "Batch | empty"
	}
	return fmt.Sprintf("Batch | Minimaps: %v  |  Screens: %v  |  Infos: %v",
		b.Minimaps.Shape(), b.Screens.Shape(), b.Infos.Shape())
}
