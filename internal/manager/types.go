package manager

import (
	"sync/atomic"
	"time"

	"linguaspark/pkg/types"
)

// State represents lifecycle state of the manager/instances.
type State string

const (
	StateUnloaded  State = "unloaded"
	StateLoading   State = "loading"
	StateRequested State = "requested" // engine accepted the load, support not confirmed
	StateReady     State = "ready"
	StateError     State = "error"
	StateClosed    State = "closed"
)

// servable reports whether translations may be attempted in state s.
func (s State) servable() bool { return s == StateReady || s == StateRequested }

// Instance tracks one language pair loaded into the engine.
type Instance struct {
	Model types.Model
	State State
	Err   string
	// loaded is closed when a load attempt finishes, successfully or not.
	loaded   chan struct{}
	lastUsed atomic.Int64
	inflight atomic.Int64
	served   atomic.Uint64
}

func newInstance(m types.Model) *Instance {
	return &Instance{Model: m, State: StateUnloaded}
}

func (i *Instance) touch() { i.lastUsed.Store(time.Now().Unix()) }
