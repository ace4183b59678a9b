// Package showcase is the server side of a developer content showcase site:
// blog posts and portfolio projects with search/filter, block rendering of
// post bodies, and a mock auth flow, all exposed as a JSON API over Echo.
//
// All content and user state is in-memory and lives for the process
// lifetime; nothing is persisted.
package showcase

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	_ "modernc.org/sqlite"

	"github.com/rudra/showcase/auth"
)

// App is the central showcase application. It wires together the content
// store, cache, auth service, middleware, and routes.
type App struct {
	Config    SiteConfig
	Echo      *echo.Echo
	Store     *ContentStore
	Cache     *ContentCache
	Directory auth.Directory
	Auth      *auth.Handler

	log          *slog.Logger
	loginLimiter *LoginLimiter
	customRoutes []func(*App)
}

// New creates a new showcase App with the given configuration.
func New(cfg SiteConfig, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
		log:    slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// setup initializes the store, cache, auth service, middleware, and routes.
// Split from Start so tests can serve requests without a listener.
func (a *App) setup() error {
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("showcase: SessionSecret is required")
	}

	store, err := NewContentStore(SeedBlogPosts(), SeedProjects())
	if err != nil {
		return fmt.Errorf("showcase: init content store: %w", err)
	}
	a.Store = store
	a.Cache = NewContentCache(a.Store, a.Config.ContentCacheTTL)

	a.Directory = auth.NewMemoryDirectory()
	if err := auth.SeedUser(a.Directory, demoUser(), demoPassword); err != nil {
		return fmt.Errorf("showcase: seed demo user: %w", err)
	}

	a.loginLimiter = NewLoginLimiter(5, time.Minute)
	a.Auth = auth.NewHandler(auth.NewService(a.Directory), a.loginLimiter, a.log)

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}
	return nil
}

// Start initializes the app and runs the HTTP server until it stops.
func (a *App) Start() error {
	if err := a.setup(); err != nil {
		return err
	}
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.GET("/health", handleHealth)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)

	api := e.Group("/api")
	api.GET("/content", a.handleContent)
	api.GET("/blogs", a.handleBlogs)
	api.GET("/blogs/:id", a.handleBlog)
	api.GET("/projects", a.handleProjects)
	api.GET("/projects/:id", a.handleProject)
	api.GET("/tags", a.handleTags)
	api.GET("/placeholder/:width/:height", a.handlePlaceholder)

	a.Auth.RegisterRoutes(api.Group("/auth"))
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}

// Demo account seeded at startup, matching the published site fixtures.
const demoPassword = "password"

func demoUser() auth.User {
	return auth.User{
		ID:        "1",
		Email:     "demo@example.com",
		Name:      "Demo User",
		Avatar:    "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=32&h=32&fit=crop&crop=face",
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// MustEnv returns the value of the environment variable key, or fatally exits if empty.
func MustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		slog.Error("required environment variable is not set", "key", key)
		os.Exit(1)
	}
	return v
}
