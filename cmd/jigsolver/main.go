package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/jigsolver/config"
	"github.com/domino14/jigsolver/imgio"
	"github.com/domino14/jigsolver/puzzle"
	"github.com/domino14/jigsolver/solver"
	"github.com/domino14/jigsolver/stats"
)

var (
	cfgFile   = flag.String("config", "", "path to an optional config file")
	imgPath   = flag.String("img", "", "image to cut into a puzzle")
	showStats = flag.Bool("stats", false, "print the compatibility distribution before solving")
)

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
	if *imgPath == "" {
		log.Fatal().Msg("an -img path is required")
	}

	img, err := imgio.LoadImage(*imgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("loading image")
	}
	rng := puzzle.NewRNG(cfg.Seed)
	pz, err := puzzle.New(cfg.PatchSize, rng)
	if err != nil {
		log.Fatal().Err(err).Msg("creating puzzle")
	}
	if err := pz.CreateFromImage(img); err != nil {
		log.Fatal().Err(err).Msg("cutting pieces")
	}
	if err := pz.Shuffle(); err != nil {
		log.Fatal().Err(err).Msg("shuffling")
	}

	sv, err := solver.NewPomeranz(pz, rng)
	if err != nil {
		log.Fatal().Err(err).Msg("preparing solver")
	}
	if *showStats {
		if err := stats.WriteReport(os.Stdout, sv.Compatibility(), sv.Buddies()); err != nil {
			log.Fatal().Err(err).Msg("writing report")
		}
	}
	seg, err := sv.Solve(cfg.MaxRounds, cfg.Trials)
	if err != nil {
		log.Fatal().Err(err).Msg("solving")
	}
	rows, cols := pz.Shape()
	log.Info().Msgf("final segment covers %d of %d pieces", len(seg), rows*cols)
	os.Stdout.WriteString(pz.Board.String())
}
