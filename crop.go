package wand

import "fmt"

// Range selects a half-open interval of pixels along one axis of an
// image. Bounds may be omitted: an absent start means 0 and an absent
// stop means the image dimension. Negative bounds count back from the
// dimension, so Span(-70, -50) on a 100 pixel axis selects 30:50.
type Range struct {
	start    int
	stop     int
	hasStart bool
	hasStop  bool
	point    bool
}

// Span returns the range start:stop
func Span(start, stop int) Range {
	return Range{start: start, stop: stop, hasStart: true, hasStop: true}
}

// From returns the range start:
func From(start int) Range {
	return Range{start: start, hasStart: true}
}

// To returns the range :stop
func To(stop int) Range {
	return Range{stop: stop, hasStop: true}
}

// All returns the fully open range :
func All() Range {
	return Range{}
}

// At returns the one-element range covering the single coordinate i.
// The coordinate is resolved against the image dimension before being
// widened, so At(-1) selects the last pixel of the axis.
func At(i int) Range {
	return Range{start: i, hasStart: true, point: true}
}

func (r Range) isFull() bool {
	return !r.hasStart && !r.hasStop && !r.point
}

// resolveBound turns one bound into an absolute coordinate within extent
func resolveBound(n, extent int) (int, error) {
	if n > extent {
		return 0, fmt.Errorf("%w: %d > %d", ErrRangeOutOfBounds, n, extent)
	}
	if n < 0 {
		return extent + n, nil
	}
	return n, nil
}

// resolve computes the absolute start and stop of the range against the
// given axis extent
func (r Range) resolve(extent int) (start, stop int, err error) {
	if r.point {
		if start, err = resolveBound(r.start, extent); err != nil {
			return 0, 0, err
		}
		return start, start + 1, nil
	}
	start = 0
	if r.hasStart {
		if start, err = resolveBound(r.start, extent); err != nil {
			return 0, 0, err
		}
	}
	stop = extent
	if r.hasStop {
		if stop, err = resolveBound(r.stop, extent); err != nil {
			return 0, 0, err
		}
	}
	return start, stop, nil
}

// Crop returns a new image cropped to the rectangle selected by the x
// and y ranges. The receiver is never mutated: the crop is applied to a
// fresh clone, which the caller owns. Both ranges fully open is a plain
// clone without a crop call.
func (im *Image) Crop(x, y Range) (*Image, error) {
	if x.isFull() && y.isFull() {
		return im.Clone()
	}
	width, err := im.Width()
	if err != nil {
		return nil, err
	}
	height, err := im.Height()
	if err != nil {
		return nil, err
	}
	xStart, xStop, err := x.resolve(width)
	if err != nil {
		return nil, err
	}
	yStart, yStop, err := y.resolve(height)
	if err != nil {
		return nil, err
	}
	cropWidth := xStop - xStart
	cropHeight := yStop - yStart
	if cropWidth < 1 {
		return nil, ErrZeroWidth
	}
	if cropHeight < 1 {
		return nil, ErrZeroHeight
	}
	cloned, err := im.Clone()
	if err != nil {
		return nil, err
	}
	if err := cloned.crop(cropWidth, cropHeight, xStart, yStart); err != nil {
		_ = cloned.Close()
		return nil, err
	}
	return cloned, nil
}
