package bergamot

import (
	"strings"
	"sync"
	"sync/atomic"
)

// fakeEngine records every call that would reach native code.
type fakeEngine struct {
	mu        sync.Mutex
	calls     atomic.Int64
	destroyed atomic.Int64
	freed     atomic.Int64
	configs   map[string]string
	output    []byte // when set, returned verbatim by translate
}

func newFakeEngine() *fakeEngine { return &fakeEngine{configs: map[string]string{}} }

func (f *fakeEngine) factory(uint) (engine, error) { return f, nil }

func (f *fakeEngine) loadModelFromConfig(pair, config string) {
	f.calls.Add(1)
	f.mu.Lock()
	f.configs[pair] = config
	f.mu.Unlock()
}

func (f *fakeEngine) isSupported(from, to string) bool {
	f.calls.Add(1)
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.configs[from+"-"+to]
	return ok
}

// translate signals an unloaded pair with a null result, like the native
// engine. Loaded pairs upper-case the input.
func (f *fakeEngine) translate(from, to, input string) ([]byte, bool) {
	f.calls.Add(1)
	if !f.has(from + "-" + to) {
		return nil, false
	}
	// released through copyNative like the cgo engine; freed counts releases
	buf := []byte(strings.ToUpper(input))
	if f.output != nil {
		buf = f.output
	}
	return copyNative(
		func() []byte { return append([]byte(nil), buf...) },
		func() { f.freed.Add(1) },
	), true
}

func (f *fakeEngine) has(pair string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.configs[pair]
	return ok
}

func (f *fakeEngine) destroy() { f.destroyed.Add(1) }
