// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package cli

var (
	// root
	verbose bool
	// root
	profile bool
	// root
	pprofPort uint16
	// analyze, estimate, serve
	scenariosFile string
	// words, serve
	wordsFile string
	// analyze
	interactive bool
	// analyze, estimate
	jsonOutput bool
	// estimate
	scenarioID string
	// words
	listWords bool
	// serve
	selfTLS bool
	// serve
	tlsCert string
	// serve
	tlsKey string
	// serve
	port uint16
)
