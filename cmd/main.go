package main

import (
	"log"
	"os"

	"github.com/Badsnus/qrstudio/internal/adapters/config"
	"github.com/Badsnus/qrstudio/internal/adapters/controller/cli"
	"github.com/Badsnus/qrstudio/internal/domain/service"
	"github.com/Badsnus/qrstudio/pkg/logger"
)

func main() {
	cfg := config.Get()

	qrLogger, err := logger.Named("qr")
	if err != nil {
		log.Panic(err)
	}
	cliLogger, err := logger.Named("cli")
	if err != nil {
		log.Panic(err)
	}

	root := cli.NewRootCmd(service.NewQrService(qrLogger, cfg.Defaults), cliLogger)
	code := cli.Execute(root, cliLogger)
	_ = logger.Log.Sync()
	os.Exit(code)
}
