package showcase

import "time"

// SiteConfig holds all configuration for a showcase site.
type SiteConfig struct {
	Name        string // Site name (default "DevShowcase")
	URL         string // Canonical URL (default "http://localhost:3000")
	Description string // Site description for RSS and robots
	Author      string // Author name for the RSS channel

	Addr string // Listen address (default ":3000")

	SessionSecret string // Required: session cookie encryption secret
	CookieSecure  bool   // Set true for HTTPS

	ContentCacheTTL time.Duration // Content cache TTL (default 5min)
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "DevShowcase"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.ContentCacheTTL == 0 {
		c.ContentCacheTTL = 5 * time.Minute
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App after built-in routes are set up.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}
