package manager

import (
	"github.com/rs/zerolog"

	"linguaspark/pkg/types"
)

// Defaults applied when corresponding ManagerConfig fields are unset.
const defaultWorkers = 1

// ManagerConfig encapsulates all tunables for Manager construction.
type ManagerConfig struct {
	Registry []types.Model
	Engine   Engine
	// Workers is informational; the engine was created with it.
	Workers uint
	// EagerLoad makes LoadAll a precondition of Ready.
	EagerLoad bool
	// Optional collaborators; nil disables the feature.
	Cache    Cache
	Detector Detector
	Events   EventPublisher
	Logger   *zerolog.Logger
}

// NewWithConfig constructs a Manager from ManagerConfig.
func NewWithConfig(cfg ManagerConfig) *Manager {
	m := &Manager{
		engine:    cfg.Engine,
		models:    make(map[string]types.Model, len(cfg.Registry)),
		instances: make(map[string]*Instance, len(cfg.Registry)),
		cache:     cfg.Cache,
		detector:  cfg.Detector,
		events:    cfg.Events,
		workers:   cfg.Workers,
		eager:     cfg.EagerLoad,
		log:       zerolog.Nop(),
	}
	for _, mdl := range cfg.Registry {
		if _, dup := m.models[mdl.Pair]; dup {
			continue
		}
		m.models[mdl.Pair] = mdl
		m.order = append(m.order, mdl)
	}
	if m.workers == 0 {
		m.workers = defaultWorkers
	}
	if m.events == nil {
		m.events = noopPublisher{}
	}
	if cfg.Logger != nil {
		m.log = *cfg.Logger
	}
	// Without eager loading pairs are loaded on first use, so the manager is
	// ready as soon as it exists.
	if m.eager {
		m.state = StateLoading
	} else {
		m.state = StateReady
	}
	m.startTime = timeNow()
	return m
}
