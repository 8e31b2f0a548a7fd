package main

import (
	"context"
	"log"

	"github.com/jpavezs/actascli/internal/cli"
	"github.com/jpavezs/actascli/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("%v", err)
	}

	ctx := context.Background()
	app, err := cli.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
