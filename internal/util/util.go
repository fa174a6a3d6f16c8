// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package util

import (
	"fmt"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shirou/gopsutil/v3/mem"
	"net/http"
	"runtime"
	"strings"
	"time"
	"unicode"
)

// Stats returns a func that logs the elapsed time and memory usage at debug
// level. Meant to be deferred.
func Stats() func() {
	start := time.Now()
	return func() {
		if zerolog.GlobalLevel() > zerolog.DebugLevel {
			return
		}

		var ms runtime.MemStats
		runtime.ReadMemStats(&ms)
		log.Debug().Msgf("time to run %v", time.Since(start))
		log.Debug().Msgf("Alloc: %d MB, TotalAlloc: %d MB, Sys: %d MB",
			ms.Alloc/1024/1024, ms.TotalAlloc/1024/1024, ms.Sys/1024/1024)
		log.Debug().Msgf("HeapAlloc: %d MB, HeapObjects: %d", ms.HeapAlloc/1024/1024, ms.HeapObjects)
	}
}

func ApplyCliSettings(verbose bool, profile bool, pprofPort uint16) {
	if verbose {
		log.Warn().Msgf("verbosity up")
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if profile {
		log.Info().Msgf("profiling is enabled for this session. Server will listen on port %d", pprofPort)
		go func() {
			if err := http.ListenAndServe(fmt.Sprintf("localhost:%d", pprofPort), nil); err != nil {
				log.Error().Err(err).Msgf("error starting profiling server on port %d", pprofPort)
				return
			}
		}()
	}
}

// wordOverhead is a rough per entry cost of a word held in a map[string]struct{}.
const wordOverhead = 64

// EstimateWordListBytes guesses the memory needed to hold a word list file of
// the given size once loaded.
func EstimateWordListBytes(fileSize int64) uint64 {
	if fileSize <= 0 {
		return 0
	}
	// Average English word plus newline is about 8 bytes.
	return uint64(fileSize) + uint64(fileSize/8)*wordOverhead
}

// CheckRam returns an error if the system does not have required bytes of
// memory available. When memory can't be read it only warns.
func CheckRam(required uint64) error {
	memStat, err := mem.VirtualMemory()
	if err != nil {
		log.Warn().Err(err).Msgf("could not read system memory. Estimated memory use is %d MiB", required/(1024*1024))
		return nil
	}

	log.Debug().Msgf("system has %.2f MiB of RAM available", float64(memStat.Available)/(1024*1024))
	if required > memStat.Available {
		return fmt.Errorf("not enough memory: %d MiB required, %d MiB available",
			required/(1024*1024), memStat.Available/(1024*1024))
	}

	return nil
}

// ToScreamingSnakeCase converts a Go field name ("TLSCert", "SelfTLS") or a
// list of them separated by spaces into env var style ("TLS_CERT", "SELF_TLS").
func ToScreamingSnakeCase(s string) string {
	fields := strings.Fields(s)
	for i, f := range fields {
		fields[i] = screamingSnake(f)
	}
	return strings.Join(fields, " ")
}

func screamingSnake(s string) string {
	runes := []rune(s)
	var b strings.Builder
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				b.WriteRune('_')
			}
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}
