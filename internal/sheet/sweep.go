package sheet

import (
	"fmt"
	"image"

	"spritecam/internal/turntable"
)

// FromSweep builds one cell per step. rendered holds the images of the
// non-mirrored steps in sweep order; mirrored steps reuse their source
// image flipped.
func FromSweep(steps []turntable.Step, rendered []*image.NRGBA) ([]Cell, error) {
	want := turntable.Rendered(steps)
	if len(rendered) != len(want) {
		return nil, fmt.Errorf("sheet: sweep of %d steps needs %d rendered frames, got %d",
			len(steps), len(want), len(rendered))
	}

	byIndex := make(map[int]*image.NRGBA, len(want))
	for i, s := range want {
		byIndex[s.Index] = rendered[i]
	}

	cells := make([]Cell, len(steps))
	for i, s := range steps {
		img, ok := byIndex[s.SourceIndex]
		if !ok {
			return nil, fmt.Errorf("sheet: step %d mirrors azimuth %v which is not rendered", s.Index, s.Source)
		}
		cells[i] = Cell{Image: img, Mirror: s.Mirror}
	}
	return cells, nil
}
