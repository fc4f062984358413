// Command trackctl manages TrackNest shipments from the command line.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/kum096/Dashboard/internal/cli"
	"github.com/kum096/Dashboard/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logger.Init(logger.Options{
		Level:   os.Getenv("LOG_LEVEL"),
		Pretty:  true,
		Service: "trackctl",
		Output:  os.Stderr,
	})
	cli.Execute(ctx, log)
}
