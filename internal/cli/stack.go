package cli

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"linguaspark/internal/common/fsutil"
	"linguaspark/internal/detector"
	"linguaspark/internal/manager"
	"linguaspark/internal/registry"
	"linguaspark/internal/store"
	"linguaspark/pkg/bergamot"
	"linguaspark/pkg/types"
)

// newEngine creates the translation engine. Tests replace it with a fake.
var newEngine = func(workers uint, log zerolog.Logger) (manager.Engine, error) {
	return bergamot.New(workers, bergamot.WithLogger(log))
}

// stack is a manager plus the resources it was built over.
type stack struct {
	mgr   *manager.Manager
	cache *store.Store
}

func (s *stack) Close() error {
	err := s.mgr.Close()
	if s.cache != nil {
		err = errors.Join(err, s.cache.Close())
	}
	return err
}

func (a *app) scanModels() ([]types.Model, error) {
	models, err := registry.NewScanner(a.component("registry")).Scan(a.opts.ModelsDir)
	if err != nil {
		return nil, err
	}
	if len(models) == 0 {
		a.log.Warn().Str("models_dir", a.opts.ModelsDir).Msg("no models found")
	}
	return models, nil
}

func (a *app) openCache() (*store.Store, error) {
	if a.opts.CachePath == "" {
		return nil, errors.New("no cache configured (set --cache or cache_path)")
	}
	p, err := fsutil.ExpandHome(a.opts.CachePath)
	if err != nil {
		return nil, err
	}
	return store.New(p)
}

// buildStack wires registry, engine, cache and detector into a Manager.
// A nil events publisher drops events.
func (a *app) buildStack(events manager.EventPublisher) (*stack, error) {
	models, err := a.scanModels()
	if err != nil {
		return nil, err
	}
	eng, err := newEngine(a.opts.Workers, a.component("bergamot"))
	if err != nil {
		return nil, fmt.Errorf("create engine: %w", err)
	}
	mlog := a.component("manager")
	cfg := manager.ManagerConfig{
		Registry:  models,
		Engine:    eng,
		Workers:   a.opts.Workers,
		EagerLoad: a.opts.EagerLoad,
		Events:    events,
		Logger:    &mlog,
	}
	st := &stack{}
	if a.opts.CachePath != "" {
		c, err := a.openCache()
		if err != nil {
			_ = eng.Close()
			return nil, fmt.Errorf("open cache: %w", err)
		}
		st.cache = c
		cfg.Cache = c
	}
	if a.opts.DetectLanguages {
		d, err := detector.New(registry.SourceLanguages(models))
		if err != nil {
			a.log.Warn().Err(err).Msg("language detection disabled")
		} else {
			cfg.Detector = d
		}
	}
	st.mgr = manager.NewWithConfig(cfg)
	return st, nil
}
