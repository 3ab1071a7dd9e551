package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/osse101/CropCalc_Go/docs"
	"github.com/osse101/CropCalc_Go/internal/catalog"
	"github.com/osse101/CropCalc_Go/internal/config"
	"github.com/osse101/CropCalc_Go/internal/handler"
	"github.com/osse101/CropCalc_Go/internal/logger"
	"github.com/osse101/CropCalc_Go/internal/metrics"
	"github.com/osse101/CropCalc_Go/internal/session"
	"github.com/osse101/CropCalc_Go/internal/sse"
)

// Dependencies are the components the HTTP API serves
type Dependencies struct {
	Data     *catalog.ReferenceData
	Sessions session.Service
	Hub      *sse.Hub
}

type Server struct {
	httpServer *http.Server
	handler    http.Handler
}

// NewServer creates a new Server instance
func NewServer(cfg *config.Config, deps Dependencies) *Server {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(loggingMiddleware)
	r.Use(RateLimitMiddleware(cfg.TrustedProxies, detector))
	r.Use(AuthMiddleware(cfg.APIKey, cfg.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(cfg.MaxBodyBytes))
	r.Use(metrics.Middleware)

	if !cfg.AuthEnabled() {
		slog.Warn(LogMsgAuthDisabled)
	}

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(deps.Data))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/crops", handler.HandleListCrops(deps.Data))
		r.Get("/crops/{season}/{name}/quote", handler.HandleGetCropQuote(deps.Data))

		r.Route("/probabilities", func(r chi.Router) {
			r.Get("/", handler.HandleListProbabilities(deps.Data))
			r.Get("/{level}", handler.HandleGetProbability(deps.Data))
		})

		r.Post("/estimate", handler.HandleEstimate(deps.Data))

		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", handler.HandleCreateSession(deps.Sessions))

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", handler.HandleGetSession(deps.Sessions))
				r.Patch("/settings", handler.HandleUpdateSettings(deps.Sessions))
				r.Post("/distribution", handler.HandleOpenDistribution(deps.Sessions))
				r.Post("/calculate", handler.HandleCalculate(deps.Sessions))
				r.Post("/reset", handler.HandleResetSession(deps.Sessions))

				r.Route("/rows", func(r chi.Router) {
					r.Post("/", handler.HandleAddRow(deps.Sessions))
					r.Delete("/{rowID}", handler.HandleRemoveRow(deps.Sessions))
					r.Put("/{rowID}/crop", handler.HandleSelectCrop(deps.Sessions))
					r.Put("/{rowID}/seeds", handler.HandleSetSeedCount(deps.Sessions))
					r.Put("/{rowID}/channels/{channel}", handler.HandleEditChannel(deps.Sessions))
				})
			})
		})

		if deps.Hub != nil {
			r.Get("/events", sse.Handler(deps.Hub))
		}
	})

	if cfg.SwaggerEnabled {
		r.Get("/swagger/*", httpSwagger.WrapHandler)
	} else {
		slog.Info(LogMsgSwaggerDisabled)
	}

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           r,
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
		handler: r,
	}
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.handler
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, prefix := range quietPaths {
			if strings.HasPrefix(r.URL.Path, prefix) {
				next.ServeHTTP(w, r)
				return
			}
		}

		start := time.Now()

		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" {
			requestID = logger.GenerateRequestID()
		}
		w.Header().Set(HeaderRequestID, requestID)

		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
