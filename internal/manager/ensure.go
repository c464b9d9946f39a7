package manager

import (
	"context"
	"errors"
	"time"

	"linguaspark/internal/registry"
)

// EnsurePair makes sure the model for from->to has been loaded into the
// engine, loading it if needed. Concurrent callers for the same pair wait
// for a single load.
func (m *Manager) EnsurePair(ctx context.Context, from, to string) (*Instance, error) {
	pair := from + "-" + to
	for {
		m.mu.Lock()
		if m.state == StateClosed {
			m.mu.Unlock()
			return nil, ErrClosed
		}
		mdl, ok := m.models[pair]
		if !ok {
			m.mu.Unlock()
			return nil, ErrPairNotFound(pair)
		}
		inst := m.instances[pair]
		if inst == nil {
			inst = newInstance(mdl)
			m.instances[pair] = inst
		}
		switch {
		case inst.State.servable():
			m.mu.Unlock()
			return inst, nil
		case inst.State == StateLoading:
			wait := inst.loaded
			m.mu.Unlock()
			select {
			case <-wait:
				continue
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
		// unloaded or error: this caller performs the load
		inst.State = StateLoading
		inst.Err = ""
		inst.loaded = make(chan struct{})
		m.mu.Unlock()

		err := m.load(inst)

		m.mu.Lock()
		close(inst.loaded)
		m.mu.Unlock()
		if err != nil {
			return nil, err
		}
		return inst, nil
	}
}

// load runs one load attempt and records the outcome on inst.
func (m *Manager) load(inst *Instance) error {
	mdl := inst.Model
	start := time.Now()
	m.events.Publish(Event{Name: EventLoadStart, Pair: mdl.Pair})
	m.log.Info().Str("pair", mdl.Pair).Str("dir", mdl.Dir).Msg("loading model")

	state, err := m.loadAndProbe(inst)

	m.mu.Lock()
	inst.State = state
	if err != nil {
		inst.Err = err.Error()
		m.lastErr = err.Error()
	}
	m.mu.Unlock()

	modelLoadsTotal.WithLabelValues(mdl.Pair, string(state)).Inc()
	if err != nil {
		m.events.Publish(Event{Name: EventLoadFailed, Pair: mdl.Pair, Fields: map[string]any{"error": err.Error()}})
		m.log.Error().Str("pair", mdl.Pair).Err(err).Msg("model load failed")
		return loadFailedError{pair: mdl.Pair, err: err}
	}
	m.loadsTotal.Add(1)
	m.events.Publish(Event{Name: EventLoadDone, Pair: mdl.Pair, Fields: map[string]any{"state": string(state), "dur": time.Since(start)}})
	ev := m.log.Info()
	if state == StateRequested {
		ev = m.log.Warn()
	}
	ev.Str("pair", mdl.Pair).Str("state", string(state)).Dur("dur", time.Since(start)).Msg("model loaded")
	return nil
}

// loadAndProbe asks the engine to load inst and then checks support, since
// the engine reports nothing from the load itself.
func (m *Manager) loadAndProbe(inst *Instance) (State, error) {
	mdl := inst.Model
	if err := m.engine.LoadModel(mdl.Pair, registry.ToBergamot(mdl)); err != nil {
		return StateError, err
	}
	ok, err := m.engine.IsSupported(mdl.From, mdl.To)
	if err != nil {
		return StateError, err
	}
	if !ok {
		return StateRequested, nil
	}
	return StateReady, nil
}

// LoadAll loads every registry model. Failures are collected; the manager
// becomes ready once every pair has been attempted.
func (m *Manager) LoadAll(ctx context.Context) error {
	var errs []error
	for _, mdl := range m.ListModels() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := m.EnsurePair(ctx, mdl.From, mdl.To); err != nil {
			errs = append(errs, err)
		}
	}
	m.mu.Lock()
	if m.state == StateLoading {
		m.state = StateReady
	}
	m.mu.Unlock()
	return errors.Join(errs...)
}
