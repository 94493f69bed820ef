package main

import (
	"context"
	"log"

	"github.com/dkraev/inkpress/internal/server"
	"github.com/dkraev/inkpress/internal/server/config"
)

func main() {

	ctx := context.Background()

	cfg := config.LoadConfig()
	app, err := server.NewApp(ctx, cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
