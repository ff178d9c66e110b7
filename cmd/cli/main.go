package main

import (
	"context"
	"log"
	"os"

	"github.com/kashifkhan1545/fingerauth/internal/buildinfo"
	"github.com/kashifkhan1545/fingerauth/internal/client/cli"
	"github.com/kashifkhan1545/fingerauth/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
