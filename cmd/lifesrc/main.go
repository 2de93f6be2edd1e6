// Package main is a minimal command-line driver for lifesrc: load a
// YAML Config, run the search to completion (or a step budget), and
// print whatever pattern is found.
package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hollowgrid/lifesrc/pkg/lifesrc"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML search config (defaults built in if omitted)")
	maxStep := flag.Int("max-step", 0, "step budget per Search call, 0 for unbounded")
	snapshotOut := flag.String("save", "", "path to write a JSON snapshot after the search stops")
	verbose := flag.Bool("verbose", false, "trace every decision/conflict/backjump at debug level")
	flag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	lifesrc.SetLogger(lifesrc.NewDefaultLogger(level))

	cfg := lifesrc.DefaultConfig()
	if *configPath != "" {
		loaded, err := lifesrc.LoadConfig(*configPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", *configPath).Msg("loading config")
		}
		cfg = loaded
	}

	world, err := lifesrc.NewWorld(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("building world")
	}

	status := world.Search(*maxStep)
	log.Info().Str("status", status.String()).Str("summary", world.Summary()).Msg("search finished")

	switch status {
	case lifesrc.StatusFound:
		if !world.Nontrivial() {
			log.Info().Msg("pattern found matches the rule's background everywhere (forced-empty result)")
		}
		for t := 0; t < world.Period; t++ {
			os.Stdout.WriteString(world.DisplayGen(t))
			os.Stdout.WriteString("\n")
		}
	case lifesrc.StatusNone:
		log.Info().Msg("no pattern exists for this config")
	case lifesrc.StatusSearching:
		log.Info().Msg("step budget exhausted; re-run with a larger -max-step or resume from a snapshot")
	}

	if *snapshotOut != "" {
		data, err := world.Save().Serialize()
		if err != nil {
			log.Fatal().Err(err).Msg("serializing snapshot")
		}
		if err := os.WriteFile(*snapshotOut, data, 0o644); err != nil {
			log.Fatal().Err(err).Str("path", *snapshotOut).Msg("writing snapshot")
		}
	}
}
