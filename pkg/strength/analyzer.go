// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

// Package strength scores passwords with a transparent entropy heuristic.
//
// Analyze starts from a baseline of length × log2(alphabet) and applies a
// fixed list of pattern rules, each of which may add a warning and an entropy
// deduction. The result keeps every step in its Breakdown so the score can be
// explained. The package keeps no state and never stores the password.
package strength

import (
	"fmt"
	"math"
	"strings"
)

// Warning ids, in rule evaluation order.
const (
	WarnEmpty           = "empty"
	WarnTooShort        = "too_short_8"
	WarnShort           = "short_12"
	WarnSingleClass     = "single_class"
	WarnRepeatRun       = "repeat_run"
	WarnRepeatSubstring = "repeat_substring"
	WarnSequentialRun   = "sequential_run"
	WarnKeyboard        = "keyboard_sequence"
	WarnCommonPassword  = "common_password"
	WarnCapitalized     = "capitalized_first"
	WarnCommonSuffix    = "common_suffix"
)

// Breakdown labels.
const (
	LabelBaseline        = "Baseline (length × log2(alphabet))"
	LabelSingleClass     = "Single character class"
	LabelRepeatRun       = "Repeated characters"
	LabelRepeatSubstring = "Repeated pattern"
	LabelSequentialRun   = "Sequential characters"
	LabelKeyboard        = "Keyboard sequence"
	LabelCommonPassword  = "Common password"
	LabelCapitalized     = "Capitalized first letter"
	LabelCommonSuffix    = "Common suffix"
)

const (
	weakThreshold   = 28.0
	fairThreshold   = 36.0
	strongThreshold = 60.0
	meterCap        = 80.0
)

type password struct {
	runes    []rune
	lowered  []rune
	classes  charClass
	baseline float64
}

// finding is what a rule reports when it fires. A zero label means the rule
// only warns.
type finding struct {
	warning Warning
	label   string
	bits    float64
}

type rule func(p *password) (finding, bool)

// rules run in this order; the breakdown follows it.
var rules = []rule{
	tooShortRule,
	shortRule,
	singleClassRule,
	repeatRunRule,
	repeatSubstringRule,
	sequentialRunRule,
	keyboardRule,
	commonPasswordRule,
	capitalizedRule,
	commonSuffixRule,
}

// Analyze scores a password. It never fails: an empty password is reported as
// a very weak result with a single informational warning.
func Analyze(pwd string) Result {
	pwd = strings.TrimFunc(pwd, isNewline)
	runes := []rune(pwd)

	if len(runes) == 0 {
		return Result{
			PasswordLength: 0,
			EntropyBits:    0,
			Category:       VeryWeak,
			MeterValue:     0,
			Warnings: []Warning{{
				ID:       WarnEmpty,
				Title:    "Enter a password",
				Detail:   "Type or paste a password to see how strong it is.",
				Severity: Info,
			}},
			Breakdown: []EntropyComponent{{Label: LabelBaseline, Bits: 0}},
		}
	}

	classes := classesOf(runes)
	p := &password{
		runes:    runes,
		lowered:  []rune(strings.ToLower(pwd)),
		classes:  classes,
		baseline: baselineBits(len(runes), alphabetSize(classes)),
	}

	warnings := make([]Warning, 0, len(rules))
	breakdown := []EntropyComponent{{Label: LabelBaseline, Bits: p.baseline}}
	bits := p.baseline

	for _, r := range rules {
		f, fired := r(p)
		if !fired {
			continue
		}

		warnings = append(warnings, f.warning)
		if f.label != "" {
			breakdown = append(breakdown, EntropyComponent{Label: f.label, Bits: f.bits})
			bits += f.bits
		}
	}

	bits = math.Max(0, bits)
	return Result{
		PasswordLength: len(runes),
		EntropyBits:    bits,
		Category:       Classify(bits),
		MeterValue:     Meter(bits),
		Warnings:       DedupWarnings(warnings),
		Breakdown:      breakdown,
	}
}

// Classify maps entropy bits to a Category.
func Classify(bits float64) Category {
	switch {
	case bits < weakThreshold:
		return VeryWeak
	case bits < fairThreshold:
		return Weak
	case bits < strongThreshold:
		return Fair
	default:
		return Strong
	}
}

// Meter normalizes entropy bits to [0, 1] against an 80 bit cap.
func Meter(bits float64) float64 {
	return math.Min(meterCap, math.Max(0, bits)) / meterCap
}

// DedupWarnings drops warnings whose id was already seen, keeping the first
// occurrence and the original order.
func DedupWarnings(warnings []Warning) []Warning {
	seen := make(map[string]struct{}, len(warnings))
	out := make([]Warning, 0, len(warnings))
	for _, w := range warnings {
		if _, ok := seen[w.ID]; ok {
			continue
		}
		seen[w.ID] = struct{}{}
		out = append(out, w)
	}
	return out
}

func isNewline(r rune) bool {
	switch r {
	case '\n', '\v', '\f', '\r', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}

// deduction returns -min(limit, fraction × baseline).
func deduction(baseline float64, limit float64, fraction float64) float64 {
	return -math.Min(limit, fraction*baseline)
}

func tooShortRule(p *password) (finding, bool) {
	if len(p.runes) >= 8 {
		return finding{}, false
	}
	return finding{
		warning: Warning{
			ID:       WarnTooShort,
			Title:    "Too short",
			Detail:   "Passwords shorter than 8 characters can be guessed very quickly. Use at least 12.",
			Severity: Critical,
		},
	}, true
}

func shortRule(p *password) (finding, bool) {
	if n := len(p.runes); n < 8 || n >= 12 {
		return finding{}, false
	}
	return finding{
		warning: Warning{
			ID:       WarnShort,
			Title:    "Could be longer",
			Detail:   "Length is the biggest factor in strength. Aim for 12 characters or more.",
			Severity: Caution,
		},
	}, true
}

func singleClassRule(p *password) (finding, bool) {
	if p.classes.count() != 1 {
		return finding{}, false
	}
	return finding{
		warning: Warning{
			ID:       WarnSingleClass,
			Title:    "Only one kind of character",
			Detail:   "Mix lowercase, uppercase, digits and symbols to widen the search space.",
			Severity: Caution,
		},
		label: LabelSingleClass,
		bits:  deduction(p.baseline, 12, 0.25),
	}, true
}

func repeatRunRule(p *password) (finding, bool) {
	if !hasRepeatRun(p.runes) {
		return finding{}, false
	}
	return finding{
		warning: Warning{
			ID:       WarnRepeatRun,
			Title:    "Repeated characters",
			Detail:   "The same character appears three or more times in a row.",
			Severity: Caution,
		},
		label: LabelRepeatRun,
		bits:  deduction(p.baseline, 10, 0.15),
	}, true
}

func repeatSubstringRule(p *password) (finding, bool) {
	period := smallestPeriod(p.runes)
	if period == 0 {
		return finding{}, false
	}
	return finding{
		warning: Warning{
			ID:    WarnRepeatSubstring,
			Title: "Repeated pattern",
			Detail: fmt.Sprintf("The password is the same %d-character block repeated %d times.",
				period, len(p.runes)/period),
			Severity: Caution,
		},
		label: LabelRepeatSubstring,
		bits:  deduction(p.baseline, 14, 0.20),
	}, true
}

func sequentialRunRule(p *password) (finding, bool) {
	run, ok := sequentialRun(p.lowered)
	if !ok {
		return finding{}, false
	}
	return finding{
		warning: Warning{
			ID:       WarnSequentialRun,
			Title:    "Sequential characters",
			Detail:   fmt.Sprintf("Runs like %q are among the first things attackers try.", run),
			Severity: Caution,
		},
		label: LabelSequentialRun,
		bits:  deduction(p.baseline, 12, 0.18),
	}, true
}

func keyboardRule(p *password) (finding, bool) {
	seq, ok := keyboardSequence(string(p.lowered))
	if !ok {
		return finding{}, false
	}
	return finding{
		warning: Warning{
			ID:       WarnKeyboard,
			Title:    "Keyboard pattern",
			Detail:   fmt.Sprintf("%q follows a row of the keyboard.", seq),
			Severity: Critical,
		},
		label: LabelKeyboard,
		bits:  deduction(p.baseline, 18, 0.30),
	}, true
}

func commonPasswordRule(p *password) (finding, bool) {
	if !isCommonPassword(p.lowered) {
		return finding{}, false
	}
	// Picked from a short list: the search space collapses to the list size.
	listBits := math.Log2(float64(CommonPasswordCount()))
	return finding{
		warning: Warning{
			ID:       WarnCommonPassword,
			Title:    "Common password",
			Detail:   "This password appears in lists of the most used passwords and is guessed almost immediately.",
			Severity: Critical,
		},
		label: LabelCommonPassword,
		bits:  -math.Max(0, p.baseline-listBits),
	}, true
}

func capitalizedRule(p *password) (finding, bool) {
	if !isCapitalizedFirst(p.runes) {
		return finding{}, false
	}
	return finding{
		warning: Warning{
			ID:       WarnCapitalized,
			Title:    "Predictable capitalization",
			Detail:   "Capitalizing only the first letter adds very little strength.",
			Severity: Info,
		},
		label: LabelCapitalized,
		bits:  deduction(p.baseline, 6, 0.08),
	}, true
}

func commonSuffixRule(p *password) (finding, bool) {
	if !hasCommonSuffix(string(p.lowered)) {
		return finding{}, false
	}
	return finding{
		warning: Warning{
			ID:       WarnCommonSuffix,
			Title:    "Predictable ending",
			Detail:   "Ending with \"!\", a few digits or a year is a very common habit.",
			Severity: Caution,
		},
		label: LabelCommonSuffix,
		bits:  deduction(p.baseline, 10, 0.12),
	}, true
}
