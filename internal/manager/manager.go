package manager

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"linguaspark/internal/registry"
	"linguaspark/pkg/types"
)

var timeNow = time.Now

// Manager owns one translation engine and the language pairs loaded into it.
type Manager struct {
	mu        sync.RWMutex
	state     State
	lastErr   string
	engine    Engine
	models    map[string]types.Model
	order     []types.Model
	instances map[string]*Instance
	cache     Cache
	detector  Detector
	events    EventPublisher
	log       zerolog.Logger
	workers   uint
	eager     bool
	startTime time.Time

	loadsTotal     atomic.Uint64
	cacheHitsTotal atomic.Uint64
}

// New builds a Manager over engine for the models in reg.
func New(reg []types.Model, engine Engine, workers uint) *Manager {
	return NewWithConfig(ManagerConfig{Registry: reg, Engine: engine, Workers: workers})
}

// Ready reports whether the manager can serve translations.
func (m *Manager) Ready() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state == StateReady
}

// ListModels returns the registry sorted by pair.
func (m *Manager) ListModels() []types.Model {
	m.mu.RLock()
	defer m.mu.RUnlock()
	// return a copy to avoid external mutation
	out := make([]types.Model, len(m.order))
	copy(out, m.order)
	return out
}

// Languages returns every pair the registry can serve.
func (m *Manager) Languages() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	pairs := make([]string, 0, len(m.models))
	for p := range m.models {
		pairs = append(pairs, p)
	}
	sort.Strings(pairs)
	return pairs
}

// SourceLanguages returns the distinct source codes of the registry.
func (m *Manager) SourceLanguages() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return registry.SourceLanguages(m.order)
}

// Close destroys the engine. Later calls return ErrClosed.
func (m *Manager) Close() error {
	m.mu.Lock()
	if m.state == StateClosed {
		m.mu.Unlock()
		return nil
	}
	m.state = StateClosed
	eng := m.engine
	m.mu.Unlock()
	if eng == nil {
		return nil
	}
	return eng.Close()
}
