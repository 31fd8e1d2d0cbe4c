package wand

// #include <wand/MagickWand.h>
import "C"
import (
	"fmt"
	"io"
	"math"
	"runtime"
	"strings"
	"sync"
)

// Image wraps one MagickWand handle and manages its lifecycle. A handle
// is either live or closed; every operation on a closed image fails
// with ErrImageClosed. Images are closed by the finalizer, but callers
// should defer Close to release native memory deterministically:
//
//	img, err := wand.NewFromFile("pikachu.png")
//	if err != nil { ... }
//	defer img.Close()
type Image struct {
	wand *C.MagickWand
	lock sync.Mutex
}

// newImage wraps a native handle after validating it, consuming the
// caller's tracker increment on failure.
func newImage(w *C.MagickWand) (*Image, error) {
	if !isMagickWand(w) {
		if w != nil {
			destroyMagickWand(w)
		}
		decrementRefCount()
		return nil, ErrInvalidHandle
	}
	im := &Image{wand: w}
	runtime.SetFinalizer(im, finalizeImage)
	return im, nil
}

func finalizeImage(im *Image) {
	log("wand", LogLevelDebug, fmt.Sprintf("finalizing image %p", im))
	_ = im.Close()
}

// handle returns the native handle or ErrImageClosed
func (im *Image) handle() (*C.MagickWand, error) {
	if im.wand == nil {
		return nil, ErrImageClosed
	}
	return im.wand, nil
}

// exception reads and clears the pending native exception for the
// image. Warnings are emitted through the logging handler and do not
// fail the operation; errors are returned.
func (im *Image) exception() error {
	w, err := im.handle()
	if err != nil {
		return err
	}
	severity, message := magickGetException(w)
	if severity == SeverityUndefined {
		return nil
	}
	e := &ExceptionError{Severity: severity, Message: message}
	if e.IsWarning() {
		log("magick", LogLevelWarning, e.Error())
		return nil
	}
	return e
}

// NewFromFile opens and decodes the image at the given path
func NewFromFile(filename string) (*Image, error) {
	if filename == "" {
		return nil, ErrEmptyFilename
	}
	incrementRefCount()
	im, err := newImage(newMagickWand())
	if err != nil {
		return nil, err
	}
	if ok := magickReadImage(im.wand, filename); !ok {
		return nil, im.closeWithException()
	}
	if err := im.exception(); err != nil {
		_ = im.Close()
		return nil, err
	}
	return im, nil
}

// NewFromBlob decodes an image from an in-memory byte buffer
func NewFromBlob(blob []byte) (*Image, error) {
	if len(blob) == 0 {
		return nil, ErrEmptyBlob
	}
	incrementRefCount()
	im, err := newImage(newMagickWand())
	if err != nil {
		return nil, err
	}
	if ok := magickReadImageBlob(im.wand, blob); !ok {
		return nil, im.closeWithException()
	}
	if err := im.exception(); err != nil {
		_ = im.Close()
		return nil, err
	}
	return im, nil
}

// NewFromReader concatenates the reader into a single buffer and
// decodes it as NewFromBlob does
func NewFromReader(r io.Reader) (*Image, error) {
	blob, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return NewFromBlob(blob)
}

// Clone returns an independent deep copy of the image, safe to mutate
// without affecting the original
func (im *Image) Clone() (*Image, error) {
	w, err := im.handle()
	if err != nil {
		return nil, err
	}
	incrementRefCount()
	return newImage(cloneMagickWand(w))
}

// closeWithException captures the pending exception, then closes the
// image. Used on construction failure paths so the tracker increment is
// released before the error propagates.
func (im *Image) closeWithException() error {
	err := im.exception()
	if err == nil {
		err = &ExceptionError{Severity: severityError, Message: "unknown error"}
	}
	_ = im.Close()
	return err
}

// Close destroys the native handle and releases its tracker reference.
// Close is not idempotent: closing an already closed image returns
// ErrImageClosed, and the tracker is decremented exactly once.
func (im *Image) Close() error {
	im.lock.Lock()
	defer im.lock.Unlock()
	if im.wand == nil {
		return ErrImageClosed
	}
	destroyMagickWand(im.wand)
	im.wand = nil
	runtime.SetFinalizer(im, nil)
	decrementRefCount()
	return nil
}

// Width returns the width of the image
func (im *Image) Width() (int, error) {
	w, err := im.handle()
	if err != nil {
		return 0, err
	}
	return magickGetImageWidth(w), nil
}

// Height returns the height of the image
func (im *Image) Height() (int, error) {
	w, err := im.handle()
	if err != nil {
		return 0, err
	}
	return magickGetImageHeight(w), nil
}

// Size returns the (width, height) pair of the image
func (im *Image) Size() (int, int, error) {
	width, err := im.Width()
	if err != nil {
		return 0, 0, err
	}
	height, err := im.Height()
	if err != nil {
		return 0, 0, err
	}
	return width, height, nil
}

// crop applies the native crop call to the image in place
func (im *Image) crop(width, height, x, y int) error {
	w, err := im.handle()
	if err != nil {
		return err
	}
	if ok := magickCropImage(w, width, height, x, y); !ok {
		return im.exceptionOrUnknown()
	}
	return im.exception()
}

// ResizeOptions are options for Resize. Zero Width or Height defaults
// to the current dimension and zero Blur defaults to 1. The Filter
// zero value is FilterUndefined, which lets the library pick; it is
// not re-defaulted, so that the undefined filter stays selectable.
// Use NewResizeOptions for the triangle default.
type ResizeOptions struct {
	Width  int
	Height int
	Filter Filter
	Blur   float64
}

// NewResizeOptions creates default ResizeOptions with the triangle
// filter and a neutral blur factor
func NewResizeOptions() *ResizeOptions {
	return &ResizeOptions{Filter: FilterTriangle, Blur: 1}
}

// Resize scales the image in place. The blur factor blurs above 1 and
// sharpens below 1.
func (im *Image) Resize(options *ResizeOptions) error {
	w, err := im.handle()
	if err != nil {
		return err
	}
	if options == nil {
		options = NewResizeOptions()
	}
	width := options.Width
	height := options.Height
	if width == 0 {
		width = magickGetImageWidth(w)
	}
	if height == 0 {
		height = magickGetImageHeight(w)
	}
	if width < 1 {
		return fmt.Errorf("%w: width %d", ErrInvalidDimension, options.Width)
	}
	if height < 1 {
		return fmt.Errorf("%w: height %d", ErrInvalidDimension, options.Height)
	}
	if !options.Filter.IsValid() {
		return fmt.Errorf("%w: %d", ErrInvalidFilter, int(options.Filter))
	}
	blur := options.Blur
	if blur == 0 {
		blur = 1
	}
	if math.IsNaN(blur) || math.IsInf(blur, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidBlur, options.Blur)
	}
	if ok := magickResizeImage(w, width, height, options.Filter, blur); !ok {
		return im.exceptionOrUnknown()
	}
	return im.exception()
}

// Save writes the image to the given path
func (im *Image) Save(filename string) error {
	w, err := im.handle()
	if err != nil {
		return err
	}
	if filename == "" {
		return ErrEmptyFilename
	}
	if ok := magickWriteImage(w, filename); !ok {
		return im.exceptionOrUnknown()
	}
	return im.exception()
}

// Blob serializes the image to a byte buffer in the requested format,
// e.g. "png" or "jpeg"
func (im *Image) Blob(format string) ([]byte, error) {
	w, err := im.handle()
	if err != nil {
		return nil, err
	}
	normalized := strings.ToUpper(strings.TrimSpace(format))
	if normalized == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFormat, format)
	}
	if ok := magickSetImageFormat(w, normalized); !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFormat, format)
	}
	blob := magickGetImageBlob(w)
	if len(blob) == 0 {
		return nil, im.exceptionOrUnknown()
	}
	return blob, nil
}

// exceptionOrUnknown is exception for call sites where the native call
// already reported failure, so a missing exception still yields an error
func (im *Image) exceptionOrUnknown() error {
	if err := im.exception(); err != nil {
		return err
	}
	return &ExceptionError{Severity: severityError, Message: "unknown error"}
}
