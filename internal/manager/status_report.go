package manager

import (
	"sort"
	"time"

	"linguaspark/pkg/bergamot"
	"linguaspark/pkg/types"
)

// Status builds a detailed status response for /status.
func (m *Manager) Status() types.StatusResponse {
	m.mu.RLock()
	defer m.mu.RUnlock()
	now := timeNow()
	resp := types.StatusResponse{
		Workers:         m.workers,
		State:           string(m.state),
		NativeAvailable: bergamot.NativeAvailable(),
		CacheEnabled:    m.cache != nil,
		UptimeSeconds:   int64(now.Sub(m.startTime) / time.Second),
		ServerTimeUnix:  now.Unix(),
		LoadsTotal:      m.loadsTotal.Load(),
		CacheHitsTotal:  m.cacheHitsTotal.Load(),
		LastError:       m.lastErr,
	}
	resp.Instances = make([]types.InstanceStatus, 0, len(m.models))
	for _, mdl := range m.order {
		st := types.InstanceStatus{Pair: mdl.Pair, State: string(StateUnloaded)}
		if inst := m.instances[mdl.Pair]; inst != nil {
			st.State = string(inst.State)
			st.Error = inst.Err
			st.LastUsed = inst.lastUsed.Load()
			st.Inflight = inst.inflight.Load()
			st.Served = inst.served.Load()
		}
		resp.Instances = append(resp.Instances, st)
	}
	sort.Slice(resp.Instances, func(i, j int) bool { return resp.Instances[i].Pair < resp.Instances[j].Pair })
	return resp
}
