package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/officerdemo/internal/app"
	"github.com/dmitrijs2005/officerdemo/internal/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	a, err := app.NewApp(ctx, cfg)

	if err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}
	defer a.Close()

	if err := a.Run(ctx); err != nil {
		log.Printf("%v", err)
		a.Close()
		os.Exit(1)
	}

}
