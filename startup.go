package wand

import "sync"

// The MagickWand environment is process-global: the first live image
// brings it up and the last one closed tears it down. The counter is
// guarded by refLock; individual images are still not safe for
// concurrent use without external locking.
var (
	refLock  sync.Mutex
	refCount int
)

// Version returns the version string of the linked ImageMagick library
func Version() string {
	return magickVersion()
}

// incrementRefCount registers one live native handle, starting the
// library environment on the first. Constructors call this before the
// native call so failure paths can decrement symmetrically.
func incrementRefCount() {
	refLock.Lock()
	defer refLock.Unlock()
	refCount++
	if refCount == 1 {
		magickWandGenesis()
		log("wand", LogLevelInfo, "genesis "+magickVersion())
	}
}

// decrementRefCount releases one live native handle, terminating the
// library environment when none remain.
func decrementRefCount() {
	refLock.Lock()
	defer refLock.Unlock()
	if refCount <= 0 {
		return
	}
	refCount--
	if refCount == 0 {
		magickWandTerminus()
		log("wand", LogLevelInfo, "terminus")
	}
}

// RefCount reports the number of live native handles
func RefCount() int {
	refLock.Lock()
	defer refLock.Unlock()
	return refCount
}
