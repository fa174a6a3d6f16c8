// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package strength

import (
	"fmt"
)

// Category is the qualitative strength bucket derived from the final entropy.
type Category int

const (
	VeryWeak Category = iota
	Weak
	Fair
	Strong
)

var categoryNames = map[Category]string{
	VeryWeak: "very_weak",
	Weak:     "weak",
	Fair:     "fair",
	Strong:   "strong",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("category(%d)", int(c))
}

func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(text []byte) error {
	for k, v := range categoryNames {
		if v == string(text) {
			*c = k
			return nil
		}
	}
	return fmt.Errorf("unknown category %q", string(text))
}

// Severity of a Warning. Mapping it to colors or icons is up to the caller.
type Severity int

const (
	Info Severity = iota
	// Caution renders as "warning".
	Caution
	Critical
)

var severityNames = map[Severity]string{
	Info:     "info",
	Caution:  "warning",
	Critical: "critical",
}

func (s Severity) String() string {
	if name, ok := severityNames[s]; ok {
		return name
	}
	return fmt.Sprintf("severity(%d)", int(s))
}

func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Severity) UnmarshalText(text []byte) error {
	for k, v := range severityNames {
		if v == string(text) {
			*s = k
			return nil
		}
	}
	return fmt.Errorf("unknown severity %q", string(text))
}

// Warning is a human-readable weakness found in a password. ID is a stable key
// used for de-duplication and is not meant to be displayed.
type Warning struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Detail   string   `json:"detail"`
	Severity Severity `json:"severity"`
}

// EntropyComponent is one line of the entropy ledger. Positive bits are the
// baseline contribution, negative bits are deductions.
type EntropyComponent struct {
	Label string  `json:"label"`
	Bits  float64 `json:"bits"`
}

type Result struct {
	PasswordLength int                `json:"password_length"`
	EntropyBits    float64            `json:"entropy_bits"`
	Category       Category           `json:"category"`
	MeterValue     float64            `json:"meter_value"`
	Warnings       []Warning          `json:"warnings"`
	Breakdown      []EntropyComponent `json:"breakdown"`
}

// HasWarning reports whether a warning with the given id is present.
func (r Result) HasWarning(id string) bool {
	for _, w := range r.Warnings {
		if w.ID == id {
			return true
		}
	}
	return false
}

// Deductions sums the negative entries of the breakdown.
func (r Result) Deductions() float64 {
	total := 0.0
	for _, c := range r.Breakdown {
		if c.Bits < 0 {
			total += c.Bits
		}
	}
	return total
}
