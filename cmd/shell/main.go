package main

import (
	"flag"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/jigsolver/config"
	"github.com/domino14/jigsolver/shell"
)

var cfgFile = flag.String("config", "", "path to an optional config file")

func main() {
	flag.Parse()

	cfg, err := config.Load(*cfgFile)
	if err != nil {
		log.Fatal().Err(err).Msg("loading config")
	}
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	sh, err := shell.New(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("starting shell")
	}
	sh.Run()
}
