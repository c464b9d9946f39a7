package types

// TranslateRequest is the payload of POST /translate.
type TranslateRequest struct {
	// Source language code, or "auto" to detect it.
	// example: en
	From string `json:"from" example:"en"`
	// Target language code.
	// example: de
	To string `json:"to" example:"de"`
	// Text to translate.
	// example: Hello world
	Text string `json:"text" example:"Hello world"`
}

// TranslateResponse is returned by POST /translate.
type TranslateResponse struct {
	// example: Hallo Welt
	Text string `json:"text" example:"Hallo Welt"`
	// Source language actually used (differs from the request when detected).
	// example: en
	From string `json:"from" example:"en"`
	// example: de
	To string `json:"to" example:"de"`
	// True when served from the translation cache.
	Cached bool `json:"cached"`
}

// ModelsResponse wraps the list of models returned by GET /models.
type ModelsResponse struct {
	Models []Model `json:"models"`
}

// LanguagesResponse lists the directions the server can translate.
type LanguagesResponse struct {
	// example: ["en-de","de-en"]
	Pairs []string `json:"pairs" example:"en-de,de-en"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// example: invalid JSON body
	Error string `json:"error" example:"invalid JSON body"`
	// example: 400
	Code int `json:"code" example:"400"`
}

// InstanceStatus summarizes one language pair for /status.
type InstanceStatus struct {
	// example: en-de
	Pair string `json:"pair" example:"en-de"`
	// Lifecycle state: unloaded, loading, requested, ready, error.
	// "requested" means the engine accepted the load but did not confirm support.
	// example: ready
	State string `json:"state" example:"ready"`
	// Last time this pair served a request (unix seconds).
	// example: 1700000000
	LastUsed int64 `json:"last_used_unix" example:"1700000000"`
	// Translations currently running on this pair.
	// example: 1
	Inflight int64 `json:"inflight" example:"1"`
	// Total translations served.
	// example: 42
	Served uint64 `json:"served" example:"42"`
	// Last error seen for this pair.
	Error string `json:"error,omitempty"`
}

// StatusResponse is returned by GET /status.
type StatusResponse struct {
	Instances []InstanceStatus `json:"instances"`
	// Native worker pool size.
	// example: 4
	Workers uint `json:"workers" example:"4"`
	// example: ready
	State string `json:"state" example:"ready"`
	// Whether the native engine is compiled in.
	NativeAvailable bool `json:"native_available"`
	// Whether a translation cache is configured.
	CacheEnabled bool `json:"cache_enabled"`
	// example: 3600
	UptimeSeconds int64 `json:"uptime_seconds" example:"3600"`
	// example: 1700000000
	ServerTimeUnix int64 `json:"server_time_unix" example:"1700000000"`
	// example: 12
	LoadsTotal uint64 `json:"loads_total" example:"12"`
	// example: 100
	CacheHitsTotal uint64 `json:"cache_hits_total" example:"100"`
	LastError      string `json:"last_error,omitempty"`
}
