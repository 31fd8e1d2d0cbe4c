package wand

import "fmt"

// Filter represents a resize filter type
type Filter int

// Filter enum, ordered as the MagickWand filter list
const (
	FilterUndefined Filter = iota
	FilterPoint
	FilterBox
	FilterTriangle
	FilterHermite
	FilterHanning
	FilterHamming
	FilterBlackman
	FilterGaussian
	FilterQuadratic
	FilterCubic
	FilterCatrom
	FilterMitchell
	FilterLanczos
	FilterBessel
	FilterSinc
)

// FilterNames is the fixed ordered list of resize filter names
var FilterNames = []string{
	"undefined",
	"point",
	"box",
	"triangle",
	"hermite",
	"hanning",
	"hamming",
	"blackman",
	"gaussian",
	"quadratic",
	"cubic",
	"catrom",
	"mitchell",
	"lanczos",
	"bessel",
	"sinc",
}

// FilterByName returns the Filter for the given name
func FilterByName(name string) (Filter, error) {
	for i, n := range FilterNames {
		if n == name {
			return Filter(i), nil
		}
	}
	return FilterUndefined, fmt.Errorf("%w: %q", ErrInvalidFilter, name)
}

// IsValid returns true when the filter is within FilterNames
func (f Filter) IsValid() bool {
	return f >= 0 && int(f) < len(FilterNames)
}

// String returns the filter name
func (f Filter) String() string {
	if !f.IsValid() {
		return "invalid"
	}
	return FilterNames[f]
}
