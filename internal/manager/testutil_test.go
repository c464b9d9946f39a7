package manager

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"linguaspark/internal/registry"
	"linguaspark/pkg/bergamot"
	"linguaspark/pkg/types"
)

// makeRegistry writes complete model dirs for pairs under a temp root and scans it.
func makeRegistry(t *testing.T, pairs ...string) []types.Model {
	t.Helper()
	root := t.TempDir()
	for _, p := range pairs {
		dir := filepath.Join(root, p)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		for _, n := range []string{"vocab.spm", "model.intgemm8.bin", "lex.s2t.bin"} {
			if err := os.WriteFile(filepath.Join(dir, n), []byte("x"), 0o644); err != nil {
				t.Fatalf("write: %v", err)
			}
		}
	}
	reg, err := registry.LoadDir(root)
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	return reg
}

// fakeEngine is an in-memory Engine. Loaded pairs translate by upper-casing.
type fakeEngine struct {
	mu          sync.Mutex
	loaded      map[string]bergamot.ModelFiles
	loadCalls   atomic.Int64
	transCalls  atomic.Int64
	closeCalls  atomic.Int64
	unconfirmed bool          // IsSupported always false
	loadErr     error         // returned by LoadModel
	block       chan struct{} // when set, Translate waits on it
}

func newFakeEngine() *fakeEngine { return &fakeEngine{loaded: map[string]bergamot.ModelFiles{}} }

func (f *fakeEngine) LoadModel(pair string, files bergamot.ModelFiles) error {
	f.loadCalls.Add(1)
	if f.loadErr != nil {
		return f.loadErr
	}
	f.mu.Lock()
	f.loaded[pair] = files
	f.mu.Unlock()
	return nil
}

func (f *fakeEngine) IsSupported(from, to string) (bool, error) {
	if f.unconfirmed {
		return false, nil
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.loaded[from+"-"+to]
	return ok, nil
}

func (f *fakeEngine) Translate(from, to, input string) (string, error) {
	f.transCalls.Add(1)
	if f.block != nil {
		<-f.block
	}
	f.mu.Lock()
	_, ok := f.loaded[from+"-"+to]
	f.mu.Unlock()
	if !ok {
		return "", &bergamot.TranslationError{From: from, To: to, Reason: "null pointer returned"}
	}
	return strings.ToUpper(input), nil
}

func (f *fakeEngine) Close() error {
	f.closeCalls.Add(1)
	return nil
}

// fakeCache is an in-memory Cache.
type fakeCache struct {
	mu   sync.Mutex
	data map[string]string
}

func newFakeCache() *fakeCache { return &fakeCache{data: map[string]string{}} }

func (c *fakeCache) Get(_ context.Context, text, from, to string) (string, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.data[from+"|"+to+"|"+text]
	return v, ok, nil
}

func (c *fakeCache) Put(_ context.Context, text, from, to, out string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[from+"|"+to+"|"+text] = out
	return nil
}

type fixedDetector string

func (d fixedDetector) DetectISO(string) (string, bool) { return string(d), d != "" }
