package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"linguaspark/internal/registry"
	"linguaspark/pkg/types"
)

// Service defines the methods required by the HTTP API layer.
type Service interface {
	ListModels() []types.Model
	Languages() []string
	Status() types.StatusResponse
	Translate(ctx context.Context, req types.TranslateRequest) (types.TranslateResponse, error)
	IsSupported(from, to string) (bool, error)
	Ready() bool
}

func NewMux(svc Service) http.Handler {
	r := chi.NewRouter()
	// Basic middlewares: request id, real ip, recoverer
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(MetricsMiddleware)
	// Compression for JSON endpoints
	r.Use(middleware.Compress(5))
	if corsEnabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: corsAllowedOrigins,
			AllowedMethods: defaultIfEmpty(corsAllowedMethods, []string{http.MethodGet, http.MethodPost, http.MethodOptions}),
			AllowedHeaders: defaultIfEmpty(corsAllowedHeaders, []string{"Content-Type", "X-Log-Level"}),
			MaxAge:         300,
		}))
	}
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})

	h := &handlers{svc: svc}
	r.Get("/models", h.models)
	r.Get("/languages", h.languages)
	r.Get("/supported", h.supported)
	r.Get("/status", h.status)
	r.Post("/translate", h.translate)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if svc.Ready() {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ready"))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("loading"))
	})

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)
	MountSwagger(r)

	return r
}

func defaultIfEmpty(v, def []string) []string {
	if len(v) == 0 {
		return def
	}
	return v
}

type handlers struct {
	svc Service
}

// models godoc
//
//	@Summary	List models discovered in the models directory
//	@Tags		models
//	@Produce	json
//	@Success	200	{object}	types.ModelsResponse
//	@Router		/models [get]
func (h *handlers) models(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, types.ModelsResponse{Models: h.svc.ListModels()})
}

// languages godoc
//
//	@Summary	List translatable language pairs
//	@Tags		models
//	@Produce	json
//	@Success	200	{object}	types.LanguagesResponse
//	@Router		/languages [get]
func (h *handlers) languages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, types.LanguagesResponse{Pairs: h.svc.Languages()})
}

// supported godoc
//
//	@Summary	Ask the engine whether a direction is loaded
//	@Tags		models
//	@Produce	json
//	@Param		from	query		string	true	"source language"
//	@Param		to		query		string	true	"target language"
//	@Success	200		{object}	map[string]bool
//	@Failure	400		{object}	types.ErrorResponse
//	@Router		/supported [get]
func (h *handlers) supported(w http.ResponseWriter, r *http.Request) {
	from, to := r.URL.Query().Get("from"), r.URL.Query().Get("to")
	if from == "" || to == "" {
		writeJSONError(w, http.StatusBadRequest, "from and to are required")
		return
	}
	ok, err := h.svc.IsSupported(from, to)
	if err != nil {
		writeJSONError(w, statusForError(err), err.Error())
		return
	}
	writeJSON(w, map[string]bool{"supported": ok})
}

// status godoc
//
//	@Summary	Engine and per-pair status
//	@Tags		status
//	@Produce	json
//	@Success	200	{object}	types.StatusResponse
//	@Router		/status [get]
func (h *handlers) status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.svc.Status())
}

// translate godoc
//
//	@Summary	Translate text
//	@Tags		translate
//	@Accept		json
//	@Produce	json
//	@Param		request	body		types.TranslateRequest	true	"translation request"
//	@Success	200		{object}	types.TranslateResponse
//	@Failure	400		{object}	types.ErrorResponse
//	@Failure	404		{object}	types.ErrorResponse
//	@Failure	502		{object}	types.ErrorResponse
//	@Failure	503		{object}	types.ErrorResponse
//	@Router		/translate [post]
func (h *handlers) translate(w http.ResponseWriter, r *http.Request) {
	ct := r.Header.Get("Content-Type")
	if ct == "" || !strings.HasPrefix(strings.ToLower(ct), "application/json") {
		writeJSONError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	var req types.TranslateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.To) == "" {
		writeJSONError(w, http.StatusBadRequest, "to is required")
		return
	}
	if err := registry.CheckLanguage(req.To); err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	lvl := requestLogLevel(r)
	rid := middleware.GetReqID(r.Context())
	start := time.Now()
	if lvl >= LevelInfo {
		zlog.Info().Str("request_id", rid).Str("from", req.From).Str("to", req.To).Int("chars", len(req.Text)).Msg("translate start")
	}

	// Join server base context with request context so shutdown cancels work too.
	ctx, cancel := joinContexts(serverBaseCtx, r.Context())
	defer cancel()
	if translateTimeout > 0 {
		var tcancel context.CancelFunc
		ctx, tcancel = context.WithTimeout(ctx, translateTimeout)
		defer tcancel()
	}

	resp, err := h.svc.Translate(ctx, req)
	if err != nil {
		// client went away; nothing to write
		if r.Context().Err() != nil || serverBaseCtx.Err() != nil {
			return
		}
		status := statusForError(err)
		incrementTranslateError(status)
		writeJSONError(w, status, err.Error())
		if lvl >= LevelError {
			zlog.Warn().Str("request_id", rid).Int("status", status).Dur("dur", time.Since(start)).Err(err).Msg("translate end")
		}
		return
	}
	writeJSON(w, resp)
	if lvl >= LevelInfo {
		ev := zlog.Info().Str("request_id", rid).Int("status", http.StatusOK).Str("from", resp.From).Bool("cached", resp.Cached).Dur("dur", time.Since(start))
		if lvl >= LevelDebug {
			ev = ev.Str("text", req.Text).Str("translation", resp.Text)
		}
		ev.Msg("translate end")
	}
}
