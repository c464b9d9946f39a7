// Package manager coordinates the translation engine for the service. It is
// structured into small files by concern:
//
//   - manager.go: core Manager type, constructor, simple getters, Close.
//   - config.go: ManagerConfig and package defaults; NewWithConfig applies defaults.
//   - types.go: lifecycle states and per-pair Instance.
//   - adapter_iface.go: Engine, Cache and Detector collaborator interfaces.
//   - errors.go: error types and helpers (IsPairNotFound, IsLoadFailed, IsBadRequest).
//   - ensure.go: EnsurePair/LoadAll; single-flight loading and support probing.
//   - translate.go: Translate entry point (detection, cache, engine call).
//   - status_report.go: Status reporting.
//   - metrics.go: Prometheus collectors for engine and cache activity.
//   - events.go, eventpub_memory.go, eventpub_log.go: lifecycle events.
//
// The Manager never serializes engine calls: translations for any pair run
// concurrently on the shared engine. Only model loading is coordinated so a
// pair is loaded once before traffic for it reaches the engine.
package manager
