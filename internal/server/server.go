package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/Foodgram_Go/internal/auth"
	"github.com/osse101/Foodgram_Go/internal/collection"
	"github.com/osse101/Foodgram_Go/internal/database"
	"github.com/osse101/Foodgram_Go/internal/handler"
	"github.com/osse101/Foodgram_Go/internal/ingredient"
	"github.com/osse101/Foodgram_Go/internal/logger"
	"github.com/osse101/Foodgram_Go/internal/metrics"
	"github.com/osse101/Foodgram_Go/internal/middleware"
	"github.com/osse101/Foodgram_Go/internal/recipe"
	"github.com/osse101/Foodgram_Go/internal/shoppinglist"
	"github.com/osse101/Foodgram_Go/internal/subscription"
	"github.com/osse101/Foodgram_Go/internal/user"
)

// Config carries the HTTP-level settings of the server
type Config struct {
	Port               int
	TrustedProxies     []string
	CORSAllowedOrigins []string
	RateLimitRequests  int
	RateLimitWindow    time.Duration
	MediaRoot          string
	MediaURL           string // served locally when it is a path such as /media/
}

// Services groups everything the routes delegate to
type Services struct {
	Users         user.Service
	Tokens        auth.TokenService
	Ingredients   ingredient.Service
	Recipes       recipe.Service
	Favorites     collection.Service
	ShoppingCart  collection.Service
	ShoppingList  shoppinglist.Service
	Subscriptions subscription.Service
	Images        handler.ImageURLer
}

type Server struct {
	httpServer *http.Server
	dbPool     database.Pool
}

// NewServer creates a new Server instance
func NewServer(cfg Config, dbPool database.Pool, svc Services) *Server {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(SecurityLoggingMiddleware(cfg.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.StripSlashes)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", HeaderAuthorization, "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           CORSMaxAge,
	}))
	if cfg.RateLimitRequests > 0 {
		r.Use(httprate.LimitByIP(cfg.RateLimitRequests, cfg.RateLimitWindow))
	}
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)
	r.Use(middleware.Authenticate(svc.Tokens, FailedAuthRecorder(detector, cfg.TrustedProxies)))

	// Health check routes
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	users := handler.NewUserHandler(svc.Users, svc.Images)
	authHandler := handler.NewAuthHandler(svc.Users)
	ingredients := handler.NewIngredientHandler(svc.Ingredients)
	recipes := handler.NewRecipeHandler(svc.Recipes, svc.Images)
	favorites := handler.NewCollectionHandler(svc.Favorites, svc.Images)
	cart := handler.NewCollectionHandler(svc.ShoppingCart, svc.Images)
	shoppingList := handler.NewShoppingListHandler(svc.ShoppingList)
	subscriptions := handler.NewSubscriptionHandler(svc.Subscriptions, svc.Images)

	r.Route("/api", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Post("/", users.HandleRegister)
			r.Get("/", users.HandleList)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAuth)
				r.Get("/me", users.HandleMe)
				r.Put("/me/avatar", users.HandleSetAvatar)
				r.Delete("/me/avatar", users.HandleDeleteAvatar)
				r.Post("/set_password", users.HandleSetPassword)
				r.Get("/subscriptions", subscriptions.HandleList)
				r.Post("/{id}/subscribe", subscriptions.HandleSubscribe)
				r.Delete("/{id}/subscribe", subscriptions.HandleUnsubscribe)
			})

			r.Get("/{id}", users.HandleGet)
		})

		r.Route("/auth/token", func(r chi.Router) {
			r.Post("/login", authHandler.HandleLogin)
			r.With(middleware.RequireAuth).Post("/logout", authHandler.HandleLogout)
		})

		r.Route("/ingredients", func(r chi.Router) {
			r.Get("/", ingredients.HandleList)
			r.Get("/{id}", ingredients.HandleGet)
		})

		r.Route("/recipes", func(r chi.Router) {
			r.Get("/", recipes.HandleList)
			r.Get("/{id}", recipes.HandleGet)
			r.Get("/{id}/get-link", recipes.HandleGetLink)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAuth)
				r.Post("/", recipes.HandleCreate)
				r.Patch("/{id}", recipes.HandleUpdate)
				r.Delete("/{id}", recipes.HandleDelete)

				r.Get("/download_shopping_cart", shoppingList.HandleDownload)
				r.Get("/shopping_cart/download", shoppingList.HandleDownload)

				r.Post("/{id}/favorite", favorites.HandleAdd)
				r.Delete("/{id}/favorite", favorites.HandleRemove)
				r.Post("/{id}/shopping_cart", cart.HandleAdd)
				r.Delete("/{id}/shopping_cart", cart.HandleRemove)
			})
		})
	})

	// Short links
	r.Get(recipe.ShortLinkPrefix+"{code}", recipes.HandleShortLinkRedirect)

	// Uploaded images
	if prefix, ok := localMediaPrefix(cfg.MediaURL); ok && cfg.MediaRoot != "" {
		fileServer := http.StripPrefix(prefix, http.FileServer(http.Dir(cfg.MediaRoot)))
		r.Handle(prefix+"*", fileServer)
	}

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           r,
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
		dbPool: dbPool,
	}
}

// localMediaPrefix returns the route prefix for media served by this process.
// Absolute URLs point at an external host and are not mounted.
func localMediaPrefix(mediaURL string) (string, bool) {
	if !strings.HasPrefix(mediaURL, "/") {
		return "", false
	}
	if !strings.HasSuffix(mediaURL, "/") {
		mediaURL += "/"
	}
	return mediaURL, true
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
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
		statusCode:     http.StatusOK, // default status
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

func isQuietPath(path string) bool {
	for _, p := range QuietPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		if isQuietPath(r.URL.Path) {
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

		// Tokens must never reach the logs
		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAuthorization) || strings.EqualFold(k, HeaderCookie) {
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
