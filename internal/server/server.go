// Package server assembles the GoFr application served by the TSX backend.
package server

import (
	"gofr.dev/pkg/gofr"
	"gofr.dev/pkg/gofr/http/response"
)

const (
	// Greeting is the body returned for GET /.
	Greeting = "Hello from TSX Backend!"

	// ContentType is the content type of the greeting response.
	ContentType = "text/plain; charset=utf-8"
)

// New creates the application with its single route registered. Listen port and
// other server settings are read by gofr from its configuration.
func New() *gofr.App {
	app := gofr.New()

	app.GET("/", Hello)

	return app
}

// Hello writes the greeting as a raw body. Returning response.File keeps gofr's
// responder from wrapping the string in its JSON data envelope.
func Hello(*gofr.Context) (any, error) {
	return response.File{
		Content:     []byte(Greeting),
		ContentType: ContentType,
	}, nil
}
