package e2e

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"linguaspark/internal/httpapi"
	"linguaspark/internal/manager"
	"linguaspark/internal/registry"
	"linguaspark/internal/store"
	"linguaspark/pkg/bergamot"
)

// createTempModelsDir creates one complete model directory per pair and
// returns the models root.
func createTempModelsDir(t *testing.T, pairs ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, p := range pairs {
		dir := filepath.Join(root, p)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatal(err)
		}
		for _, n := range []string{"vocab.spm", "model.intgemm.alphas.bin", "lex.50.50.s2t.bin"} {
			if err := os.WriteFile(filepath.Join(dir, n), []byte(""), 0o644); err != nil {
				t.Fatalf("write temp model file %s: %v", n, err)
			}
		}
	}
	return root
}

// echoEngine reverses the case of its input and supports every loaded pair
// except those listed in unconfirmed.
type echoEngine struct {
	mu          sync.Mutex
	loaded      map[string]bool
	unconfirmed map[string]bool
	calls       int
}

func newEchoEngine(unconfirmed ...string) *echoEngine {
	e := &echoEngine{loaded: map[string]bool{}, unconfirmed: map[string]bool{}}
	for _, p := range unconfirmed {
		e.unconfirmed[p] = true
	}
	return e
}

func (e *echoEngine) LoadModel(pair string, files bergamot.ModelFiles) error {
	if err := files.Validate(); err != nil {
		return err
	}
	e.mu.Lock()
	e.loaded[pair] = true
	e.mu.Unlock()
	return nil
}

func (e *echoEngine) IsSupported(from, to string) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	p := from + "-" + to
	return e.loaded[p] && !e.unconfirmed[p], nil
}

func (e *echoEngine) Translate(from, to, input string) (string, error) {
	e.mu.Lock()
	e.calls++
	e.mu.Unlock()
	return strings.ToUpper(input), nil
}

func (e *echoEngine) Close() error { return nil }

func (e *echoEngine) Calls() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.calls
}

// newServerForDirWithConfig wires registry, manager and HTTP API the way
// `linguaspark serve` does, with cfg supplying engine and collaborators.
func newServerForDirWithConfig(t *testing.T, modelsDir string, cfg manager.ManagerConfig) (*httptest.Server, *manager.Manager) {
	t.Helper()
	reg, err := registry.LoadDir(modelsDir)
	if err != nil {
		t.Fatalf("scan models: %v", err)
	}
	cfg.Registry = reg
	mgr := manager.NewWithConfig(cfg)
	srv := httptest.NewServer(httpapi.NewMux(mgr))
	t.Cleanup(func() {
		srv.Close()
		_ = mgr.Close()
	})
	return srv, mgr
}

func newCache(t *testing.T) *store.Store {
	t.Helper()
	c, err := store.New(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func httpGet(t *testing.T, url string) (*http.Response, []byte) {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, url, nil)
	if err != nil {
		t.Fatalf("new req: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do req: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return resp, body
}

func httpPostJSON(t *testing.T, url string, payload []byte) (*http.Response, []byte) {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("new req: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do req: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return resp, body
}
