package wand

import (
	"errors"
	"fmt"
)

var (
	// ErrImageClosed image handle already destroyed
	ErrImageClosed = errors.New("image is closed already")
	// ErrInvalidHandle pointer is not a MagickWand instance
	ErrInvalidHandle = errors.New("not a MagickWand instance")
	// ErrEmptyFilename missing filename argument
	ErrEmptyFilename = errors.New("filename must not be empty")
	// ErrEmptyBlob zero-length blob not permitted
	ErrEmptyBlob = errors.New("zero-length blob not permitted")
	// ErrInvalidFormat image format rejected by the library
	ErrInvalidFormat = errors.New("invalid image format")
	// ErrInvalidFilter filter name or index outside FilterNames
	ErrInvalidFilter = errors.New("invalid filter type")
	// ErrRangeOutOfBounds crop bound beyond the image dimension
	ErrRangeOutOfBounds = errors.New("range out of bounds")
	// ErrZeroWidth crop resolves to zero or negative width
	ErrZeroWidth = errors.New("image width cannot be zero")
	// ErrZeroHeight crop resolves to zero or negative height
	ErrZeroHeight = errors.New("image height cannot be zero")
	// ErrInvalidDimension resize dimension is not a natural number
	ErrInvalidDimension = errors.New("dimension must be a natural number")
	// ErrInvalidBlur blur factor is not a finite number
	ErrInvalidBlur = errors.New("blur must be a finite number")
)

// ExceptionError is an error reported by the MagickWand exception state,
// carrying the native severity and message text.
type ExceptionError struct {
	Severity Severity
	Message  string
}

// Error implements error
func (e *ExceptionError) Error() string {
	return fmt.Sprintf("magick: %s: %s", e.Severity.Domain(), e.Message)
}

// IsWarning returns true when the exception severity is non-fatal
func (e *ExceptionError) IsWarning() bool {
	return e.Severity.IsWarning()
}
