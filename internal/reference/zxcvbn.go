// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

// Package reference runs zxcvbn next to the heuristic engine so both scores can
// be compared. It never influences the engine's result.
package reference

import (
	"github.com/nbutton23/zxcvbn-go"
	"math"
)

// zxcvbn gets slow on long inputs; past this only the prefix is scored.
const maxLength = 100

type Score struct {
	Score            int     `json:"score"`
	Entropy          float64 `json:"entropy"`
	CrackTimeDisplay string  `json:"crack_time_display"`
}

// Of scores pwd with zxcvbn. Returns nil for an empty password.
func Of(pwd string) *Score {
	if pwd == "" {
		return nil
	}

	runes := []rune(pwd)
	if len(runes) > maxLength {
		pwd = string(runes[:maxLength])
	}

	m := zxcvbn.PasswordStrength(pwd, nil)
	entropy := m.Entropy
	if math.IsNaN(entropy) || math.IsInf(entropy, 0) {
		entropy = 0
	}

	return &Score{
		Score:            m.Score,
		Entropy:          entropy,
		CrackTimeDisplay: m.CrackTimeDisplay,
	}
}
