package inspect

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"
	"gonum.org/v1/gonum/floats"

	"github.com/samuelfneumann/gosc2/utils/tensorutils"
	"gorgonia.org/tensor"
)

// Padding is the number of pixels between planes in a rendering
const Padding int = 2

// RenderImage renders every channel of an encoded tensor as a
// greyscale heatmap, arranged in a near-square grid. Each map cell is
// drawn as a cell x cell square, and each plane is scaled by its own
// maximum value. The tensor must have shape (channels, height, width)
// or (1, channels, height, width).
func RenderImage(t *tensor.Dense, cell int) (image.Image, error) {
	if t == nil {
		return nil, fmt.Errorf("renderimage: nil tensor")
	}
	if cell < 1 {
		return nil, fmt.Errorf("renderimage: cell size must be >= 1")
	}

	c, h, w, err := planeDims(t.Shape())
	if err != nil {
		return nil, fmt.Errorf("renderimage: %v", err)
	}

	data, err := tensorutils.Float64s(t)
	if err != nil {
		return nil, fmt.Errorf("renderimage: %v", err)
	}

	rows, cols := gridDims(c)
	planeW, planeH := w*cell+Padding, h*cell+Padding
	dc := gg.NewContext(cols*planeW+Padding, rows*planeH+Padding)
	dc.SetRGB(0.15, 0.15, 0.3)
	dc.Clear()

	size := h * w
	for ch := 0; ch < c; ch++ {
		plane := data[ch*size : (ch+1)*size]
		max := floats.Max(plane)
		x0 := float64(Padding + (ch%cols)*planeW)
		y0 := float64(Padding + (ch/cols)*planeH)

		for i, v := range plane {
			if max > 0 {
				v /= max
			} else {
				v = 0
			}
			x := x0 + float64((i%w)*cell)
			y := y0 + float64((i/w)*cell)

			dc.SetRGB(v, v, v)
			dc.DrawRectangle(x, y, float64(cell), float64(cell))
			dc.Fill()
		}
	}
	return dc.Image(), nil
}

// planeDims returns the number of planes and the height and width of
// each plane of a (channels, height, width) or
// (1, channels, height, width) shape
func planeDims(shape tensor.Shape) (c, h, w int, err error) {
	if len(shape) == 4 && shape[0] == 1 {
		shape = shape[1:]
	}
	if len(shape) != 3 {
		return 0, 0, 0, fmt.Errorf("tensor must have shape "+
			"(channels, height, width), have %v", shape)
	}
	c, h, w = shape[0], shape[1], shape[2]
	if c*h*w == 0 {
		return 0, 0, 0, fmt.Errorf("cannot render empty planes of shape %v",
			shape)
	}
	return c, h, w, nil
}

// RenderPlanes renders an encoded tensor with RenderImage and saves
// the rendering as a PNG file at path
func RenderPlanes(t *tensor.Dense, path string, cell int) error {
	img, err := RenderImage(t, cell)
	if err != nil {
		return err
	}
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("renderplanes: %v", err)
	}
	return nil
}
