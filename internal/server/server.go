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

	"github.com/campuslife/CampusLife_Go/internal/dailysong"
	"github.com/campuslife/CampusLife_Go/internal/database"
	"github.com/campuslife/CampusLife_Go/internal/handler"
	"github.com/campuslife/CampusLife_Go/internal/logger"
	"github.com/campuslife/CampusLife_Go/internal/memories"
	"github.com/campuslife/CampusLife_Go/internal/metrics"
	"github.com/campuslife/CampusLife_Go/internal/music"
	"github.com/campuslife/CampusLife_Go/internal/profile"
	"github.com/campuslife/CampusLife_Go/internal/rant"
	"github.com/campuslife/CampusLife_Go/internal/user"
	"github.com/campuslife/CampusLife_Go/internal/wishlist"
)

// Services bundles everything the router serves
type Services struct {
	User      user.Service
	Profile   profile.Service
	Rant      rant.Service
	Memories  memories.Service
	Wishlist  wishlist.Service
	DailySong dailysong.Service
	Music     music.Searcher
}

type Server struct {
	httpServer *http.Server
	dbPool     database.Pool
}

// NewServer creates a new Server instance
func NewServer(port int, trustedProxies []string, maxUploadBytes int64, dbPool database.Pool, services Services) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(RateLimitMiddleware(trustedProxies, detector))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	requireAuth := AuthMiddleware(services.User, trustedProxies, detector)
	limitBody := RequestSizeLimitMiddleware(RequestSizeLimit)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Session bootstrap (public)
		r.Group(func(r chi.Router) {
			r.Use(limitBody)
			r.Post("/auth/signup", handler.HandleSignup(services.User))
			r.Post("/auth/login", handler.HandleLogin(services.User))
		})

		// Account routes
		r.Route("/auth", func(r chi.Router) {
			r.Use(requireAuth, limitBody)
			r.Get("/me", handler.HandleGetMe(services.User))
			r.Put("/name", handler.HandleUpdateName(services.User))
			r.Put("/email", handler.HandleUpdateEmail(services.User))
			r.Put("/password", handler.HandleUpdatePassword(services.User))
		})

		// Avatar bytes are served publicly, like memory photos, so <img>
		// tags work without a token; the upload body cap replaces the JSON
		// size limit.
		r.Get("/profiles/{userID}/avatar", handler.HandleGetAvatar(services.Profile))
		r.With(requireAuth).Put("/profiles/me/avatar", handler.HandleUploadAvatar(services.Profile, maxUploadBytes))

		// Profile routes
		r.Route("/profiles", func(r chi.Router) {
			r.Use(requireAuth, limitBody)
			r.Get("/", handler.HandleListProfiles(services.Profile))
			r.Get("/search", handler.HandleSearchProfiles(services.Profile))
			r.Get("/birthdays", handler.HandleGetBirthdays(services.Profile))
			r.Get("/me", handler.HandleGetMyProfile(services.Profile, services.User))
			r.Put("/me", handler.HandleUpdateProfile(services.Profile))
			r.Get("/{userID}", handler.HandleGetProfile(services.Profile))
		})

		// Rant feed routes
		r.Route("/rants", func(r chi.Router) {
			r.Use(requireAuth, limitBody)
			r.Get("/", handler.HandleListRants(services.Rant))
			r.Post("/", handler.HandleCreateRant(services.Rant, services.User))
			r.Put("/{rantID}", handler.HandleUpdateRant(services.Rant))
			r.Delete("/{rantID}", handler.HandleDeleteRant(services.Rant))
		})

		// Memory routes. Photo serving is public so <img> tags work without
		// a token; the upload body cap replaces the JSON size limit.
		r.Get("/memories/{memoryID}/photo", handler.HandleGetMemoryPhoto(services.Memories))
		r.Route("/memories", func(r chi.Router) {
			r.Use(requireAuth)
			r.Get("/", handler.HandleListMemories(services.Memories))
			r.Post("/", handler.HandleUploadMemory(services.Memories, maxUploadBytes))
			r.Delete("/{memoryID}", handler.HandleDeleteMemory(services.Memories))
		})

		// Wishlist routes. No auth: items are anonymous and ownership is
		// proven with the client-held token.
		r.Route("/wishlist", func(r chi.Router) {
			r.Use(limitBody)
			r.Get("/", handler.HandleListWishlist(services.Wishlist))
			r.Post("/", handler.HandleCreateWishlistItem(services.Wishlist))
			r.Put("/{itemID}", handler.HandleUpdateWishlistItem(services.Wishlist))
			r.Delete("/{itemID}", handler.HandleDeleteWishlistItem(services.Wishlist))
		})

		// Daily song routes. The winner is public; submitting and personal
		// state require auth.
		r.Get("/daily-song", handler.HandleGetSongOfTheDay(services.DailySong))
		r.Route("/daily-song", func(r chi.Router) {
			r.Use(requireAuth, limitBody)
			r.Get("/status", handler.HandleGetSubmitStatus(services.DailySong))
			r.Get("/streak", handler.HandleGetStreak(services.DailySong))
			r.Post("/submit", handler.HandleSubmitSong(services.DailySong, services.User))
		})

		// Song search
		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Get("/music/search", handler.HandleSearchSongs(services.Music))
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool: dbPool,
	}
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

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health and metrics endpoints
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		// Redact credentials before header logging
		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAuthorization) || strings.EqualFold(k, handler.HeaderOwnerToken) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug("Request headers", "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
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
