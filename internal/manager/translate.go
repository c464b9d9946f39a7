package manager

import (
	"context"
	"strings"
	"time"

	"linguaspark/pkg/bergamot"
	"linguaspark/pkg/types"
)

// AutoDetect as the source language asks the manager to detect it.
const AutoDetect = "auto"

// Translate resolves the pair, loads it if needed and runs the engine.
//
// The engine call cannot be interrupted. When ctx ends first, Translate
// returns ctx.Err() and the call finishes in the background; its result is
// discarded.
func (m *Manager) Translate(ctx context.Context, req types.TranslateRequest) (types.TranslateResponse, error) {
	from := strings.ToLower(strings.TrimSpace(req.From))
	to := strings.ToLower(strings.TrimSpace(req.To))
	if to == "" {
		return types.TranslateResponse{}, ErrBadRequest("target language is required")
	}
	if from == "" || from == AutoDetect {
		detected, err := m.detect(req.Text)
		if err != nil {
			return types.TranslateResponse{}, err
		}
		from = detected
	}
	resp := types.TranslateResponse{From: from, To: to}
	if from == to {
		resp.Text = req.Text
		return resp, nil
	}

	inst, err := m.EnsurePair(ctx, from, to)
	if err != nil {
		return resp, err
	}
	inst.touch()
	pair := inst.Model.Pair

	if m.cache != nil {
		out, ok, err := m.cache.Get(ctx, req.Text, from, to)
		switch {
		case err != nil:
			m.log.Warn().Err(err).Str("pair", pair).Msg("cache lookup failed")
			cacheLookupsTotal.WithLabelValues("error").Inc()
		case ok:
			m.cacheHitsTotal.Add(1)
			cacheLookupsTotal.WithLabelValues("hit").Inc()
			resp.Text = out
			resp.Cached = true
			return resp, nil
		default:
			cacheLookupsTotal.WithLabelValues("miss").Inc()
		}
	}

	out, err := m.runTranslate(ctx, inst, from, to, req.Text)
	if err != nil {
		if bergamot.IsTranslationFailed(err) {
			m.events.Publish(Event{Name: EventTranslateFailed, Pair: pair, Fields: map[string]any{"error": err.Error()}})
		}
		return resp, err
	}
	resp.Text = out

	if m.cache != nil {
		if err := m.cache.Put(ctx, req.Text, from, to, out); err != nil {
			m.log.Warn().Err(err).Str("pair", pair).Msg("cache store failed")
		}
	}
	return resp, nil
}

type translateResult struct {
	out string
	err error
}

// runTranslate calls the engine on its own goroutine so ctx can abandon it.
func (m *Manager) runTranslate(ctx context.Context, inst *Instance, from, to, text string) (string, error) {
	pair := inst.Model.Pair
	inst.inflight.Add(1)
	translationsInflight.WithLabelValues(pair).Inc()
	start := time.Now()

	done := make(chan translateResult, 1)
	go func() {
		defer func() {
			inst.inflight.Add(-1)
			translationsInflight.WithLabelValues(pair).Dec()
		}()
		out, err := m.engine.Translate(from, to, text)
		done <- translateResult{out: out, err: err}
	}()

	select {
	case r := <-done:
		result := "ok"
		if r.err != nil {
			result = "error"
		} else {
			inst.served.Add(1)
		}
		translationsTotal.WithLabelValues(pair, result).Inc()
		translationDuration.WithLabelValues(pair).Observe(time.Since(start).Seconds())
		return r.out, r.err
	case <-ctx.Done():
		translationsTotal.WithLabelValues(pair, "abandoned").Inc()
		return "", ctx.Err()
	}
}

func (m *Manager) detect(text string) (string, error) {
	if m.detector == nil {
		return "", ErrBadRequest("source language is required (detection disabled)")
	}
	code, ok := m.detector.DetectISO(text)
	if !ok {
		return "", ErrBadRequest("could not detect source language")
	}
	return code, nil
}

// IsSupported asks the engine directly whether from->to can be served.
func (m *Manager) IsSupported(from, to string) (bool, error) {
	m.mu.RLock()
	closed := m.state == StateClosed
	m.mu.RUnlock()
	if closed {
		return false, ErrClosed
	}
	return m.engine.IsSupported(from, to)
}
