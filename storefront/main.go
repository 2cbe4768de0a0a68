package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"crawingo-delivery/config"
	"crawingo-delivery/storefront/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := cli.NewRootCmd(config.Load(""), nil)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
