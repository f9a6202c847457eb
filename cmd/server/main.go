// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package main

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v3"

	"codeberg.org/oliverandrich/resonance-shop/internal/config"
	"codeberg.org/oliverandrich/resonance-shop/internal/server"
)

func main() {
	cmd := &cli.Command{
		Name:   "resonance-shop",
		Usage:  "Start the Resonance Sound Shop API server",
		Flags:  config.Flags(),
		Action: server.Run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
