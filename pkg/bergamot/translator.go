package bergamot

import (
	"runtime"
	"sync"

	"github.com/rs/zerolog"
)

// engine is the foreign boundary. Every string handed to it has already
// passed checkCString; translate returns a Go-owned copy of the native
// result and has released the native buffer before returning.
type engine interface {
	loadModelFromConfig(pair, config string)
	isSupported(from, to string) bool
	translate(from, to, input string) (out []byte, ok bool)
	destroy()
}

type options struct {
	log     zerolog.Logger
	factory func(workers uint) (engine, error)
}

// Option configures New.
type Option func(*options)

// WithLogger sets the logger used by the Translator.
func WithLogger(l zerolog.Logger) Option { return func(o *options) { o.log = l } }

// withEngine overrides the native factory (tests).
func withEngine(f func(workers uint) (engine, error)) Option {
	return func(o *options) { o.factory = f }
}

// Translator owns one native engine instance.
//
// A Translator may be shared by any number of goroutines. Calls hold a read
// lock only to keep Close from destroying the instance underneath them; they
// never serialize each other.
type Translator struct {
	mu  sync.RWMutex
	eng engine
	log zerolog.Logger
}

// New allocates a native engine with the given worker pool size.
func New(workers uint, opts ...Option) (*Translator, error) {
	o := options{log: zerolog.Nop(), factory: newNativeEngine}
	for _, opt := range opts {
		opt(&o)
	}
	eng, err := o.factory(workers)
	if err != nil {
		return nil, err
	}
	if eng == nil {
		return nil, ErrCreationFailed
	}
	t := &Translator{eng: eng, log: o.log}
	runtime.SetFinalizer(t, (*Translator).Close)
	t.log.Debug().Uint("workers", workers).Msg("translator created")
	return t, nil
}

// acquire returns the live engine with the read lock held.
func (t *Translator) acquire() (engine, func(), error) {
	t.mu.RLock()
	if t.eng == nil {
		t.mu.RUnlock()
		return nil, nil, ErrClosed
	}
	return t.eng, t.mu.RUnlock, nil
}

// LoadModel registers files under the language pair key (e.g. "en-de").
//
// The native engine does not report load failures, so a nil error means the
// load was requested, not that it succeeded. Use IsSupported to confirm.
func (t *Translator) LoadModel(pair string, files ModelFiles) error {
	if err := checkCStrings(
		"language pair", pair,
		"src_vocab", files.SrcVocab,
		"trg_vocab", files.TrgVocab,
		"model", files.Model,
		"shortlist", files.Shortlist,
	); err != nil {
		return err
	}
	if err := files.Validate(); err != nil {
		return err
	}
	cfg := files.Config()
	if err := checkCString("config", cfg); err != nil {
		return err
	}
	eng, release, err := t.acquire()
	if err != nil {
		return err
	}
	defer release()
	eng.loadModelFromConfig(pair, cfg)
	t.log.Debug().Str("pair", pair).Str("model", files.Model).Msg("model load requested")
	return nil
}

// LoadModelDir resolves dir with ResolveDir and loads the result.
func (t *Translator) LoadModelDir(pair, dir string) error {
	files, err := ResolveDir(dir)
	if err != nil {
		return err
	}
	return t.LoadModel(pair, files)
}

// IsSupported asks the engine whether a from->to model is loaded.
func (t *Translator) IsSupported(from, to string) (bool, error) {
	if err := checkCStrings("from", from, "to", to); err != nil {
		return false, err
	}
	eng, release, err := t.acquire()
	if err != nil {
		return false, err
	}
	defer release()
	return eng.isSupported(from, to), nil
}

// Translate blocks until the engine returns input translated from -> to.
func (t *Translator) Translate(from, to, input string) (string, error) {
	if err := checkCStrings("from", from, "to", to, "input", input); err != nil {
		return "", err
	}
	eng, release, err := t.acquire()
	if err != nil {
		return "", err
	}
	defer release()
	out, ok := eng.translate(from, to, input)
	if !ok {
		return "", &TranslationError{From: from, To: to, Reason: "null pointer returned"}
	}
	return decodeNative(out), nil
}

// Close destroys the native instance. It is safe to call more than once.
func (t *Translator) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.eng == nil {
		return nil
	}
	t.eng.destroy()
	t.eng = nil
	runtime.SetFinalizer(t, nil)
	t.log.Debug().Msg("translator destroyed")
	return nil
}
