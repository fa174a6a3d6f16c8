// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

// Package cracktime turns entropy bits into the time an attacker needs to
// exhaust the search space at a given guess rate.
package cracktime

import (
	"fmt"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"math"
)

const (
	minute = 60.0
	hour   = 3600.0
	day    = 86400.0
	// 365 day year
	year = 31536000.0

	maxYears = 10000.0
)

// Scenario is an attacker model, defined only by its guess rate.
type Scenario struct {
	ID               string  `json:"id" yaml:"id" validate:"required"`
	Title            string  `json:"title" yaml:"title" validate:"required"`
	GuessesPerSecond float64 `json:"guesses_per_second" yaml:"guesses_per_second" validate:"gt=0"`
	Footnote         string  `json:"footnote,omitempty" yaml:"footnote,omitempty"`
}

var (
	Online = Scenario{
		ID:               "online",
		Title:            "Online attack",
		GuessesPerSecond: 100,
		Footnote:         "Throttled login form, about 100 guesses per second.",
	}

	OfflineModerate = Scenario{
		ID:               "offline-moderate",
		Title:            "Offline attack",
		GuessesPerSecond: 1e9,
		Footnote:         "Stolen hashes cracked on commodity hardware, about a billion guesses per second.",
	}
)

// Estimate holds the time to find a password, on average and in the worst case.
type Estimate struct {
	ExpectedSeconds float64 `json:"expected_seconds"`
	WorstSeconds    float64 `json:"worst_seconds"`
}

// Estimate computes the crack time for a password of the given entropy.
// Non-positive (or NaN) entropy yields a zero Estimate. Very large entropy
// overflows to +Inf, which Format renders as "Effectively never".
func (s Scenario) Estimate(bits float64) Estimate {
	if !(bits > 0) || !(s.GuessesPerSecond > 0) {
		return Estimate{}
	}

	space := math.Pow(2, bits)
	return Estimate{
		ExpectedSeconds: 0.5 * space / s.GuessesPerSecond,
		WorstSeconds:    1.0 * space / s.GuessesPerSecond,
	}
}

// Display formats the estimate with FormatRange.
func (e Estimate) Display() string {
	return FormatRange(e.ExpectedSeconds, e.WorstSeconds)
}

// Format renders a duration in seconds as a short human string such as
// "30s", "12m", "5h", "20d", "7mo" or "1,234y".
func Format(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return "Effectively never"
	}

	switch {
	case seconds <= 1:
		return "Instant"
	case seconds < minute:
		return fmt.Sprintf("%ds", round(seconds))
	case seconds < hour:
		return fmt.Sprintf("%dm", round(seconds/minute))
	case seconds < day:
		return fmt.Sprintf("%dh", round(seconds/hour))
	case seconds < year:
		days := seconds / day
		if days < 45 {
			return fmt.Sprintf("%dd", round(days))
		}
		return fmt.Sprintf("%dmo", round(days/30))
	default:
		years := round(seconds / year)
		if years >= maxYears {
			return ">10,000y"
		}
		p := message.NewPrinter(language.English)
		return p.Sprintf("%dy", years)
	}
}

// FormatRange renders the average and worst case together, or a single value
// when both format to the same string.
func FormatRange(expected float64, worst float64) string {
	e := Format(expected)
	w := Format(worst)
	if e == w {
		return e
	}
	return fmt.Sprintf("%s avg & %s worst", e, w)
}

func round(v float64) int64 {
	return int64(math.Round(v))
}
