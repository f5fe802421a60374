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

	"lmnode/internal/node"
	"lmnode/pkg/types"
)

// Service defines the methods required by the HTTP API layer.
type Service interface {
	ModelOptions(ctx context.Context) []types.ModelOption
	Execute(ctx context.Context, items []types.Item, p node.Params) ([]types.Item, error)
	Ready(ctx context.Context) bool
}

// readyTimeout bounds the upstream probe behind /readyz.
const readyTimeout = 3 * time.Second

func NewMux(svc Service) http.Handler {
	r := chi.NewRouter()
	// Basic middlewares: request id, real ip, recoverer
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(MetricsMiddleware)
	if corsEnabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: corsAllowedOrigins,
			AllowedMethods: corsAllowedMethods,
			AllowedHeaders: corsAllowedHeaders,
			MaxAge:         300,
		}))
	}
	// Compression for JSON endpoints
	r.Use(middleware.Compress(5))
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})

	r.Get("/models", handleModels(svc))
	r.Post("/execute", handleExecute(svc))

	r.Get("/healthz", handleHealthz)
	r.Get("/readyz", handleReadyz(svc))
	r.Get("/metrics", handleMetrics())

	MountSwagger(r)
	return r
}

// handleHealthz reports liveness.
//
// @Summary      Liveness check
// @Tags         health
// @Produce      plain
// @Success      200  {string}  string  "ok"
// @Router       /healthz [get]
func handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// handleReadyz reports whether LM Studio answers a model listing.
//
// @Summary      Readiness check
// @Description  Ready when the LM Studio models endpoint answers within three seconds.
// @Tags         health
// @Produce      plain
// @Success      200  {string}  string  "ready"
// @Failure      503  {string}  string  "lm studio unreachable"
// @Router       /readyz [get]
func handleReadyz(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
		defer cancel()
		if svc.Ready(ctx) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ready"))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("lm studio unreachable"))
	}
}

// handleMetrics exposes Prometheus metrics.
//
// @Summary      Prometheus metrics
// @Tags         metrics
// @Produce      plain
// @Success      200  {string}  string  "Prometheus text exposition format"
// @Router       /metrics [get]
func handleMetrics() http.HandlerFunc {
	return promhttp.Handler().ServeHTTP
}

// handleModels lists the models offered in the node's model dropdown.
//
// @Summary      List LM Studio models
// @Description  Chat-capable (llm and vlm) models known to LM Studio, sorted by name. When LM Studio cannot be reached a single placeholder option with an empty value is returned.
// @Tags         models
// @Produce      json
// @Success      200  {object}  types.ModelsResponse
// @Router       /models [get]
func handleModels(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, types.ModelsResponse{Models: svc.ModelOptions(r.Context())})
	}
}

// handleExecute runs the chat node over a batch of items.
//
// @Summary      Execute the chat node
// @Description  Sends one chat completion per input item. Request params override the server defaults field by field. An empty item list runs the node once with an empty item.
// @Tags         execute
// @Accept       json
// @Produce      json
// @Param        request  body      types.ExecuteRequest  true  "Items and node parameters"
// @Success      200      {object}  types.ExecuteResponse
// @Failure      400      {object}  types.ErrorResponse
// @Failure      415      {object}  types.ErrorResponse
// @Failure      502      {object}  types.ErrorResponse
// @Failure      504      {object}  types.ErrorResponse
// @Router       /execute [post]
func handleExecute(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ct := r.Header.Get("Content-Type")
		if ct == "" || !strings.HasPrefix(strings.ToLower(ct), "application/json") {
			writeJSONError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
			return
		}
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		var req types.ExecuteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			// Oversized bodies land here too; keep the message generic.
			writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		params := defaultParams
		if len(req.Params) > 0 && string(req.Params) != "null" {
			if err := json.Unmarshal(req.Params, &params); err != nil {
				writeJSONError(w, http.StatusBadRequest, "invalid params: "+err.Error())
				return
			}
		}
		items := req.Items
		if len(items) == 0 {
			items = []types.Item{{JSON: map[string]any{}}}
		}

		start := time.Now()
		lvl := requestLogLevel(r)
		if lvl >= LevelInfo {
			requestEvent(r, zlog.Info()).Str("model", params.Model).Int("items", len(items)).Msg("execute start")
		}
		if lvl >= LevelDebug {
			requestEvent(r, zlog.Debug()).Interface("params", params).Msg("execute params")
		}

		// Join server base context with request context so shutdown cancels work too.
		ctx, cancel := joinContexts(serverBaseCtx, r.Context())
		defer cancel()
		if executeTimeout > 0 {
			var cancelTimeout context.CancelFunc
			ctx, cancelTimeout = context.WithTimeout(ctx, time.Duration(executeTimeout)*time.Second)
			defer cancelTimeout()
		}

		out, err := svc.Execute(ctx, items, params)
		if err != nil {
			// If context was canceled (client disconnect), just return.
			if r.Context().Err() != nil || serverBaseCtx.Err() != nil {
				return
			}
			status := statusForError(err)
			writeExecuteError(w, status, err)
			logExecuteEnd(r, lvl, status, start, err)
			return
		}
		recordItemOutcomes(out)
		writeJSON(w, http.StatusOK, types.ExecuteResponse{Items: out})
		logExecuteEnd(r, lvl, http.StatusOK, start, nil)
	}
}
