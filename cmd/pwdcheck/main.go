// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/alvinbaena/pwd-strength/internal/cli"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	_ "net/http/pprof"
	"os"
)

func main() {
	// Logs go to stderr so stdout only carries results.
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
