// cmd/web/main.go
package main

import (
	"context"

	"github.com/dalemusser/waffle/app"

	"github.com/raiconsult/web/internal/app/bootstrap"
)

// main hands control to the WAFFLE runtime, which drives the
// bootstrap hooks from config loading through graceful shutdown.
func main() {
	app.Run(context.Background(), bootstrap.Hooks)
}
