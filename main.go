package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"gofr.dev/pkg/gofr/logging"

	"github.com/tsx-backend/server/internal/server"
)

const (
	port           = 3000
	httpPortKey    = "HTTP_PORT"
	startupTimeout = 30 * time.Second
)

func main() {
	// gofr reads the listen port from HTTP_PORT; the port is fixed for this service.
	if err := pinPort(httpPortKey, port); err != nil {
		logging.NewLogger(logging.INFO).Fatalf("%v", err)
	}

	app := server.New()

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
		defer cancel()

		if err := server.AnnounceWhenListening(ctx, app.Logger(), port); err != nil {
			app.Logger().Errorf("%v", err)
		}
	}()

	app.Run()
}

func pinPort(key string, p int) error {
	if err := os.Setenv(key, strconv.Itoa(p)); err != nil {
		return fmt.Errorf("unable to set %s to %d: %w", key, p, err)
	}

	return nil
}
