package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"linguaspark/internal/config"
	"linguaspark/internal/manager"
	"linguaspark/pkg/bergamot"
)

var modelFiles = []string{"vocab.ende.spm", "model.ende.intgemm.alphas.bin", "lex.50.50.ende.s2t.bin"}

// writeModel creates root/pair with the given files and returns the dir.
func writeModel(t *testing.T, root, pair string, files ...string) string {
	t.Helper()
	dir := filepath.Join(root, pair)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	for _, f := range files {
		if err := os.WriteFile(filepath.Join(dir, f), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

// fakeEngine supports every pair loaded into it and tags its output.
type fakeEngine struct {
	mu     sync.Mutex
	loaded  map[string]bool
	closed  bool
	workers uint
}

func (f *fakeEngine) LoadModel(pair string, files bergamot.ModelFiles) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loaded[pair] = true
	return nil
}

func (f *fakeEngine) IsSupported(from, to string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loaded[from+"-"+to], nil
}

func (f *fakeEngine) Translate(from, to, input string) (string, error) {
	return "[" + from + ">" + to + "] " + input, nil
}

func (f *fakeEngine) Close() error {
	f.mu.Lock()
	f.closed = true
	f.mu.Unlock()
	return nil
}

// withFakeEngine swaps newEngine for the duration of the test.
func withFakeEngine(t *testing.T) *fakeEngine {
	t.Helper()
	fe := &fakeEngine{loaded: map[string]bool{}}
	orig := newEngine
	newEngine = func(workers uint, _ zerolog.Logger) (manager.Engine, error) {
		fe.workers = workers
		return fe, nil
	}
	t.Cleanup(func() { newEngine = orig })
	return fe
}

func testOptions(modelsDir string) *Options {
	return &Options{Config: config.Config{ModelsDir: modelsDir, Workers: 1, LogLevel: "error"}}
}

// run executes the command tree over opts and returns stdout.
func run(t *testing.T, opts *Options, stdin string, args ...string) (string, error) {
	t.Helper()
	root := buildRootCmdWith(opts)
	var out, errb bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errb)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}
