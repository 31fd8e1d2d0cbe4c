package wand

/*
#cgo pkg-config: MagickWand MagickCore
#include <wand/MagickWand.h>
#include <stdlib.h>
*/
import "C"
import (
	"runtime"
	"unsafe"
)

// filterTypes maps Filter onto the FilterTypes enum of the linked
// library by constant name, never by raw index.
var filterTypes = [...]C.FilterTypes{
	C.UndefinedFilter,
	C.PointFilter,
	C.BoxFilter,
	C.TriangleFilter,
	C.HermiteFilter,
	C.HanningFilter,
	C.HammingFilter,
	C.BlackmanFilter,
	C.GaussianFilter,
	C.QuadraticFilter,
	C.CubicFilter,
	C.CatromFilter,
	C.MitchellFilter,
	C.LanczosFilter,
	C.BesselFilter,
	C.SincFilter,
}

func freeCString(s *C.char) {
	C.free(unsafe.Pointer(s))
}

func newMagickWand() *C.MagickWand {
	return C.NewMagickWand()
}

func cloneMagickWand(w *C.MagickWand) *C.MagickWand {
	return C.CloneMagickWand(w)
}

func destroyMagickWand(w *C.MagickWand) {
	C.DestroyMagickWand(w)
}

func isMagickWand(w *C.MagickWand) bool {
	if w == nil {
		return false
	}
	return C.IsMagickWand(w) == C.MagickTrue
}

func magickReadImage(w *C.MagickWand, filename string) bool {
	cFilename := C.CString(filename)
	defer freeCString(cFilename)
	return C.MagickReadImage(w, cFilename) == C.MagickTrue
}

func magickReadImageBlob(w *C.MagickWand, blob []byte) bool {
	// reference blob so it is not garbage collected during the read
	defer runtime.KeepAlive(blob)
	return C.MagickReadImageBlob(w,
		unsafe.Pointer(&blob[0]), C.size_t(len(blob))) == C.MagickTrue
}

func magickGetImageWidth(w *C.MagickWand) int {
	return int(C.MagickGetImageWidth(w))
}

func magickGetImageHeight(w *C.MagickWand) int {
	return int(C.MagickGetImageHeight(w))
}

func magickCropImage(w *C.MagickWand, width, height, x, y int) bool {
	return C.MagickCropImage(w, C.size_t(width), C.size_t(height),
		C.ssize_t(x), C.ssize_t(y)) == C.MagickTrue
}

func magickResizeImage(w *C.MagickWand, width, height int, filter Filter, blur float64) bool {
	return C.MagickResizeImage(w, C.size_t(width), C.size_t(height),
		filterTypes[filter], C.double(blur)) == C.MagickTrue
}

func magickSetImageFormat(w *C.MagickWand, format string) bool {
	cFormat := C.CString(format)
	defer freeCString(cFormat)
	return C.MagickSetImageFormat(w, cFormat) == C.MagickTrue
}

// magickGetImageBlob copies the serialized image out of library-owned
// memory and relinquishes the native buffer before returning.
func magickGetImageBlob(w *C.MagickWand) []byte {
	C.MagickResetIterator(w)
	var length C.size_t
	blob := C.MagickGetImageBlob(w, &length)
	if blob == nil {
		return nil
	}
	defer C.MagickRelinquishMemory(unsafe.Pointer(blob))
	return C.GoBytes(unsafe.Pointer(blob), C.int(length))
}

func magickWriteImage(w *C.MagickWand, filename string) bool {
	cFilename := C.CString(filename)
	defer freeCString(cFilename)
	return C.MagickWriteImage(w, cFilename) == C.MagickTrue
}

// magickGetException reads and clears the pending exception state
func magickGetException(w *C.MagickWand) (Severity, string) {
	var severity C.ExceptionType
	desc := C.MagickGetException(w, &severity)
	if severity == C.UndefinedException {
		if desc != nil {
			C.MagickRelinquishMemory(unsafe.Pointer(desc))
		}
		return SeverityUndefined, ""
	}
	message := C.GoString(desc)
	C.MagickRelinquishMemory(unsafe.Pointer(desc))
	C.MagickClearException(w)
	return Severity(severity), message
}

func magickWandGenesis() {
	C.MagickWandGenesis()
}

func magickWandTerminus() {
	C.MagickWandTerminus()
}

func magickVersion() string {
	var version C.size_t
	return C.GoString(C.MagickGetVersion(&version))
}
