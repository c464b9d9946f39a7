package e2e

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"linguaspark/internal/detector"
	"linguaspark/internal/manager"
	"linguaspark/pkg/types"
)

func TestE2E_Models_Translate_Status(t *testing.T) {
	dir := createTempModelsDir(t, "en-de", "deen")
	eng := newEchoEngine()
	srv, _ := newServerForDirWithConfig(t, dir, manager.ManagerConfig{Engine: eng, Workers: 2})

	// 1) GET /models returns discovered models
	resp, body := httpGet(t, srv.URL+"/models")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("/models status=%d body=%s", resp.StatusCode, string(body))
	}
	var modelsResp types.ModelsResponse
	if err := json.Unmarshal(body, &modelsResp); err != nil {
		t.Fatalf("/models json: %v body=%s", err, string(body))
	}
	if len(modelsResp.Models) != 2 || modelsResp.Models[0].Pair != "de-en" {
		t.Fatalf("unexpected models: %+v", modelsResp.Models)
	}

	// 2) lazy loading: ready immediately, nothing loaded yet
	resp, _ = httpGet(t, srv.URL+"/readyz")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("/readyz expected 200, got %d", resp.StatusCode)
	}

	// 3) POST /translate loads the pair on first use
	resp, body = httpPostJSON(t, srv.URL+"/translate", []byte(`{"from":"en","to":"de","text":"hello"}`))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("/translate status=%d body=%s", resp.StatusCode, string(body))
	}
	var tr types.TranslateResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		t.Fatalf("/translate json: %v", err)
	}
	if tr.Text != "HELLO" || tr.Cached {
		t.Fatalf("unexpected translation: %+v", tr)
	}

	// 4) GET /supported reflects the loaded direction
	resp, body = httpGet(t, srv.URL+"/supported?from=en&to=de")
	var sup map[string]bool
	_ = json.Unmarshal(body, &sup)
	if resp.StatusCode != http.StatusOK || !sup["supported"] {
		t.Fatalf("/supported status=%d body=%s", resp.StatusCode, string(body))
	}

	// 5) GET /status shows en-de ready, de-en still unloaded
	resp, body = httpGet(t, srv.URL+"/status")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("/status status=%d", resp.StatusCode)
	}
	var st types.StatusResponse
	if err := json.Unmarshal(body, &st); err != nil {
		t.Fatalf("/status json: %v body=%s", err, string(body))
	}
	states := map[string]string{}
	for _, in := range st.Instances {
		states[in.Pair] = in.State
	}
	if states["en-de"] != "ready" || states["de-en"] != "unloaded" {
		t.Fatalf("unexpected states: %v", states)
	}
	if st.Workers != 2 || st.LoadsTotal != 1 {
		t.Fatalf("unexpected status: %+v", st)
	}
}

func TestE2E_UnknownPair404(t *testing.T) {
	dir := createTempModelsDir(t, "en-de")
	srv, _ := newServerForDirWithConfig(t, dir, manager.ManagerConfig{Engine: newEchoEngine()})

	resp, body := httpPostJSON(t, srv.URL+"/translate", []byte(`{"from":"en","to":"fr","text":"hello"}`))
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", resp.StatusCode, string(body))
	}
}

func TestE2E_CacheServesRepeatTranslations(t *testing.T) {
	dir := createTempModelsDir(t, "en-de")
	eng := newEchoEngine()
	srv, _ := newServerForDirWithConfig(t, dir, manager.ManagerConfig{Engine: eng, Cache: newCache(t)})

	for i := 0; i < 3; i++ {
		resp, body := httpPostJSON(t, srv.URL+"/translate", []byte(`{"from":"en","to":"de","text":"hello"}`))
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("#%d status=%d body=%s", i, resp.StatusCode, string(body))
		}
		var tr types.TranslateResponse
		_ = json.Unmarshal(body, &tr)
		if tr.Cached != (i > 0) {
			t.Fatalf("#%d cached=%v", i, tr.Cached)
		}
	}
	if eng.Calls() != 1 {
		t.Fatalf("engine calls=%d, want 1", eng.Calls())
	}
	_, body := httpGet(t, srv.URL+"/status")
	var st types.StatusResponse
	_ = json.Unmarshal(body, &st)
	if !st.CacheEnabled || st.CacheHitsTotal != 2 {
		t.Fatalf("unexpected status: %+v", st)
	}
}

func TestE2E_UnconfirmedLoadIsRequested(t *testing.T) {
	dir := createTempModelsDir(t, "en-de")
	eng := newEchoEngine("en-de")
	srv, _ := newServerForDirWithConfig(t, dir, manager.ManagerConfig{Engine: eng})

	resp, body := httpPostJSON(t, srv.URL+"/translate", []byte(`{"from":"en","to":"de","text":"hello"}`))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status=%d body=%s", resp.StatusCode, string(body))
	}
	_, body = httpGet(t, srv.URL+"/status")
	var st types.StatusResponse
	_ = json.Unmarshal(body, &st)
	if len(st.Instances) != 1 || st.Instances[0].State != "requested" {
		t.Fatalf("unexpected instances: %+v", st.Instances)
	}
}

func TestE2E_EagerLoadReadiness(t *testing.T) {
	dir := createTempModelsDir(t, "en-de", "de-en")
	srv, mgr := newServerForDirWithConfig(t, dir, manager.ManagerConfig{Engine: newEchoEngine(), EagerLoad: true})

	resp, _ := httpGet(t, srv.URL+"/readyz")
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("/readyz before LoadAll expected 503, got %d", resp.StatusCode)
	}
	go func() { _ = mgr.LoadAll(context.Background()) }()

	deadline := time.Now().Add(2 * time.Second)
	for {
		resp, _ = httpGet(t, srv.URL+"/readyz")
		if resp.StatusCode == http.StatusOK {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("/readyz did not become ready in time; last=%d", resp.StatusCode)
		}
		time.Sleep(25 * time.Millisecond)
	}
}

func TestE2E_AutoDetectSource(t *testing.T) {
	dir := createTempModelsDir(t, "en-fr", "de-fr")
	det, err := detector.New([]string{"en", "de"})
	if err != nil {
		t.Fatalf("detector: %v", err)
	}
	srv, _ := newServerForDirWithConfig(t, dir, manager.ManagerConfig{Engine: newEchoEngine(), Detector: det})

	resp, body := httpPostJSON(t, srv.URL+"/translate", []byte(`{"from":"auto","to":"fr","text":"Guten Morgen, wie geht es dir heute? Ich hoffe, du hast gut geschlafen."}`))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status=%d body=%s", resp.StatusCode, string(body))
	}
	var tr types.TranslateResponse
	_ = json.Unmarshal(body, &tr)
	if tr.From != "de" {
		t.Fatalf("detected from=%q", tr.From)
	}
}
