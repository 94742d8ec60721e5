package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	requestTimeout = 500 * time.Millisecond
	pollInterval   = 50 * time.Millisecond
)

// Logger is the subset of gofr's logging.Logger used by the announcer.
type Logger interface {
	Infof(format string, args ...any)
}

// AnnounceWhenListening waits until this application answers GET / on localhost:port
// and then logs the server address once. gofr starts its HTTP server inside Run and
// exposes no hook after the bind, so readiness is observed from outside. A listener
// on the port that does not serve the greeting belongs to another process and is
// never announced.
func AnnounceWhenListening(ctx context.Context, logger Logger, port int) error {
	url := fmt.Sprintf("http://localhost:%d/", port)
	client := http.Client{Timeout: requestTimeout}

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		if servesGreeting(ctx, &client, url) {
			logger.Infof("Server running at http://localhost:%d", port)

			return nil
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("server on port %d did not start listening: %w", port, ctx.Err())
		case <-ticker.C:
		}
	}
}

func servesGreeting(ctx context.Context, client *http.Client, url string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return false
	}

	resp, err := client.Do(req)
	if err != nil {
		return false
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, int64(len(Greeting))+1))
	if err != nil {
		return false
	}

	return resp.StatusCode == http.StatusOK && string(body) == Greeting
}
