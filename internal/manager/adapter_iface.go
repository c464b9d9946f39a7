package manager

import (
	"context"

	"linguaspark/pkg/bergamot"
)

// Engine abstracts the translation runtime used by the Manager.
// *bergamot.Translator satisfies it; tests use in-memory fakes.
type Engine interface {
	// LoadModel requests that files be served under pair. A nil error does
	// not confirm the load; the Manager probes IsSupported afterwards.
	LoadModel(pair string, files bergamot.ModelFiles) error
	IsSupported(from, to string) (bool, error)
	// Translate blocks until the runtime returns.
	Translate(from, to, input string) (string, error)
	Close() error
}

// Cache stores finished translations. Implemented by store.Store.
type Cache interface {
	Get(ctx context.Context, text, from, to string) (string, bool, error)
	Put(ctx context.Context, text, from, to, translation string) error
}

// Detector guesses the source language of a text. Implemented by detector.Detector.
type Detector interface {
	DetectISO(text string) (string, bool)
}

var _ Engine = (*bergamot.Translator)(nil)
