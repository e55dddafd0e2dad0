package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/addrkeeper/internal/client/cli"
	"github.com/dmitrijs2005/addrkeeper/internal/client/config"
	"github.com/dmitrijs2005/addrkeeper/internal/flagx"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx, flagx.Rest(os.Args[1:], []string{"-a", "-i", "-t", "-c", "-config"}))

}
