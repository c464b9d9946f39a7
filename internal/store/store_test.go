package store

import (
	"context"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "cache", "test.db"))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestPutGet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	if _, ok, err := s.Get(ctx, "hello", "en", "de"); err != nil || ok {
		t.Fatalf("expected miss, ok=%v err=%v", ok, err)
	}
	if err := s.Put(ctx, "hello", "en", "de", "hallo"); err != nil {
		t.Fatalf("put: %v", err)
	}
	got, ok, err := s.Get(ctx, "hello", "en", "de")
	if err != nil || !ok || got != "hallo" {
		t.Fatalf("got %q ok=%v err=%v", got, ok, err)
	}
	if _, ok, _ := s.Get(ctx, "hello", "en", "fr"); ok {
		t.Fatalf("pair must be part of the key")
	}
}

func TestPut_Overwrites(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	_ = s.Put(ctx, "a", "en", "de", "one")
	if err := s.Put(ctx, "a", "en", "de", "two"); err != nil {
		t.Fatalf("put: %v", err)
	}
	got, _, _ := s.Get(ctx, "a", "en", "de")
	if got != "two" {
		t.Fatalf("got %q", got)
	}
}

func TestGet_NormalizesText(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	// precomposed vs decomposed e-acute
	if err := s.Put(ctx, "caf\u00e9", "fr", "en", "coffee"); err != nil {
		t.Fatalf("put: %v", err)
	}
	got, ok, err := s.Get(ctx, "cafe\u0301", "fr", "en")
	if err != nil || !ok || got != "coffee" {
		t.Fatalf("got %q ok=%v err=%v", got, ok, err)
	}
}

func TestListAndPurge(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	_ = s.Put(ctx, "a", "en", "de", "A")
	_ = s.Put(ctx, "b", "en", "de", "B")
	_ = s.Put(ctx, "c", "de", "en", "C")
	_, _, _ = s.Get(ctx, "b", "en", "de")

	entries, err := s.List(ctx, "en", "de", 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 2 || entries[0].SourceText != "b" || entries[0].Hits != 1 {
		t.Fatalf("unexpected entries: %+v", entries)
	}
	n, err := s.Purge(ctx, "en", "de")
	if err != nil || n != 2 {
		t.Fatalf("purge n=%d err=%v", n, err)
	}
	all, _ := s.List(ctx, "", "", 0)
	if len(all) != 1 || all[0].SrcLang != "de" {
		t.Fatalf("unexpected remaining: %+v", all)
	}
}
