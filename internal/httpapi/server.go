package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"bodyfatd/internal/manager"
	"bodyfatd/pkg/types"
)

// Service defines the methods required by the HTTP API layer.
type Service interface {
	ListModels() []types.Model
	Status() types.StatusResponse
	Evaluate(ctx context.Context, req types.PredictRequest) (manager.Evaluation, error)
	Ready() bool
}

func NewMux(svc Service) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(MetricsMiddleware)
	r.Use(middleware.Compress(5))
	if opts.CORS {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: defaultIfEmpty(opts.CORSOrigins, []string{"*"}),
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Content-Type", "X-Log-Level", "X-Request-Id"},
			ExposedHeaders: []string{"Content-Disposition"},
			MaxAge:         300,
		}))
	}
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})

	r.Get("/models", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, types.ModelsResponse{Models: svc.ListModels()})
	})

	r.Get("/status", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.Status())
	})

	r.Post("/predict", func(w http.ResponseWriter, r *http.Request) {
		ev, start, ok := evaluate(svc, w, r)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, ev.Response())
		logPredictEnd(r, requestLogLevel(r), http.StatusOK, start, string(ev.Result.Variant), nil)
	})

	r.Post("/predict/export", func(w http.ResponseWriter, r *http.Request) {
		ev, start, ok := evaluate(svc, w, r)
		if !ok {
			return
		}
		body, err := ev.Export.CSV()
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, "failed to encode export row")
			logPredictEnd(r, requestLogLevel(r), http.StatusInternalServerError, start, string(ev.Result.Variant), err)
			return
		}
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="bodyfat_data.csv"`)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
		logPredictEnd(r, requestLogLevel(r), http.StatusOK, start, string(ev.Result.Variant), nil)
	})

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
		_, _ = w.Write([]byte("no models"))
	})

	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	MountSwagger(r)

	return r
}

// evaluate decodes the request body and runs it through svc. On failure it
// has already written the error response and returns ok=false.
func evaluate(svc Service, w http.ResponseWriter, r *http.Request) (manager.Evaluation, time.Time, bool) {
	start := time.Now()
	lvl := requestLogLevel(r)
	ct := r.Header.Get("Content-Type")
	if ct == "" || !strings.HasPrefix(strings.ToLower(ct), "application/json") {
		writeJSONError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return manager.Evaluation{}, start, false
	}
	r.Body = http.MaxBytesReader(w, r.Body, opts.MaxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	var req types.PredictRequest
	if err := dec.Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			IncrementRejected("body_too_large")
			writeJSONError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return manager.Evaluation{}, start, false
		}
		writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return manager.Evaluation{}, start, false
	}
	if lvl >= LevelDebug {
		l := requestLogger(r)
		l.Debug().Str("sex", req.Sex).Int("age", req.Age).Msg("predict start")
	}

	ctx, cancel := evaluationContext(r)
	defer cancel()
	ev, err := svc.Evaluate(ctx, req)
	if err != nil {
		if r.Context().Err() != nil {
			// Client went away; nobody reads the response.
			return manager.Evaluation{}, start, false
		}
		if ctx.Err() != nil {
			IncrementRejected("shutdown")
			writeJSONError(w, http.StatusServiceUnavailable, "server shutting down")
			l := requestLogger(r)
			l.Warn().Err(err).Int("status", http.StatusServiceUnavailable).Msg("evaluation aborted by shutdown")
			return manager.Evaluation{}, start, false
		}
		status := writeServiceError(w, err)
		logPredictEnd(r, lvl, status, start, "", err)
		return manager.Evaluation{}, start, false
	}
	return ev, start, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to encode response")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(b, '\n'))
}

func defaultIfEmpty(v, def []string) []string {
	if len(v) == 0 {
		return def
	}
	return v
}
