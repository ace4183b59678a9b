package main

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/rudra/showcase"
)

func main() {
	// Optional .env file for local development.
	_ = godotenv.Load()

	cfg := showcase.SiteConfig{
		Name:          showcase.EnvOr("SITE_NAME", "DevShowcase"),
		URL:           strings.TrimSuffix(showcase.EnvOr("SITE_URL", "http://localhost:3000"), "/"),
		Description:   os.Getenv("SITE_DESCRIPTION"),
		Author:        os.Getenv("SITE_AUTHOR"),
		Addr:          showcase.EnvOr("ADDR", ":3000"),
		SessionSecret: showcase.MustEnv("SESSION_SECRET"),
		CookieSecure:  strings.EqualFold(os.Getenv("COOKIE_SECURE"), "true"),
	}

	app := showcase.New(cfg)
	defer app.Close()

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
