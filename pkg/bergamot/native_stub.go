//go:build !bergamot

package bergamot

// This file is compiled when the 'bergamot' build tag is NOT set, keeping
// default builds and CI CGO-free. The real boundary lives in native_cgo.go.

func newNativeEngine(workers uint) (engine, error) {
	return nil, ErrEngineUnavailable
}

// NativeAvailable reports whether the native engine is compiled in.
func NativeAvailable() bool { return false }
