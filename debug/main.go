package main

import (
	"github.com/emrgen/pagebuilder/internal/config"
	"github.com/emrgen/pagebuilder/internal/server"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg := config.LoadConfig()
	cfg.ConfigureLogging()

	err := server.Start(cfg)
	if err != nil {
		logrus.Error(err)
		return
	}
}
