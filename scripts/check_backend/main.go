package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"ovenaura/internal/backend"
	"ovenaura/internal/config"
	"ovenaura/internal/probe"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// check_backend probes a backend base URL the way the login screen does:
// one health check, and one retry after a short delay.
func main() {
	_ = godotenv.Load()

	baseURL := flag.String("url", os.Getenv("BACKEND_BASE_URL"), "backend base URL, e.g. http://localhost:5000/api")
	timeout := flag.Duration("timeout", 5*time.Second, "per-attempt timeout")
	retryDelay := flag.Duration("retry-delay", 3*time.Second, "delay before the single retry")
	verbose := flag.Bool("v", false, "log each request")
	flag.Parse()

	if *baseURL == "" {
		fmt.Fprintln(os.Stderr, "backend URL is required (-url or BACKEND_BASE_URL)")
		os.Exit(2)
	}

	logger := zerolog.Nop()
	if *verbose {
		logger = config.NewLogger(config.LoggerConfig{Level: "debug", Format: "console"})
	}

	client, err := backend.NewClient(config.BackendConfig{BaseURL: *baseURL, Timeout: *timeout}, noSession{}, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid backend URL: %v\n", err)
		os.Exit(2)
	}

	result, err := probe.New(client, *timeout, *retryDelay, logger).Check(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Backend unreachable after %d attempt(s): %s\n", result.Attempts, result.Message)
		os.Exit(1)
	}

	fmt.Printf("Backend reachable at %s (%d attempt(s), %dms)\n", *baseURL, result.Attempts, result.LatencyMs)
}

type noSession struct{}

func (noSession) Token() string { return "" }
