// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package strength

import (
	"math"
	"regexp"
	"strings"
	"unicode"
)

type charClass uint8

const (
	classLower charClass = 1 << iota
	classUpper
	classDigit
	classSymbol
)

// Assumed symbol count for every class present in a password.
var classSizes = map[charClass]int{
	classLower:  26,
	classUpper:  26,
	classDigit:  10,
	classSymbol: 33,
}

var keyboardRows = []string{
	"qwertyuiop",
	"asdfghjkl",
	"zxcvbnm",
	"1234567890",
}

// Ends with "!", with 1-4 digits, or with a year between 1900 and 2099.
var commonSuffixPattern = regexp.MustCompile(`(?:!|[0-9]{1,4}|(?:19|20)[0-9]{2})$`)

func classify(r rune) charClass {
	switch {
	case r >= 'a' && r <= 'z':
		return classLower
	case r >= 'A' && r <= 'Z':
		return classUpper
	case r >= '0' && r <= '9':
		return classDigit
	default:
		return classSymbol
	}
}

func classesOf(runes []rune) charClass {
	var set charClass
	for _, r := range runes {
		set |= classify(r)
	}
	return set
}

func (c charClass) count() int {
	n := 0
	for class := range classSizes {
		if c&class != 0 {
			n++
		}
	}
	return n
}

func alphabetSize(classes charClass) int {
	size := 0
	for class, n := range classSizes {
		if classes&class != 0 {
			size += n
		}
	}
	if size < 1 {
		return 1
	}
	return size
}

func baselineBits(length int, alphabet int) float64 {
	return float64(length) * math.Log2(float64(alphabet))
}

// hasRepeatRun reports whether any character repeats 3 or more times in a row.
func hasRepeatRun(runes []rune) bool {
	run := 0
	for i, r := range runes {
		if i > 0 && r == runes[i-1] {
			run++
		} else {
			run = 1
		}
		if run >= 3 {
			return true
		}
	}
	return false
}

// smallestPeriod returns the length of the shortest block that, repeated,
// produces the whole password. Zero means no such block exists.
func smallestPeriod(runes []rune) int {
	n := len(runes)
	if n < 4 {
		return 0
	}

	for p := 1; p <= n/2; p++ {
		if n%p != 0 {
			continue
		}

		match := true
		for i := p; i < n; i++ {
			if runes[i] != runes[i%p] {
				match = false
				break
			}
		}

		if match {
			return p
		}
	}

	return 0
}

// sequentialRun returns the first run of 4 or more ASCII characters whose
// codes increase by exactly one, e.g. "abcd" or "3456".
func sequentialRun(lowered []rune) (string, bool) {
	start := 0
	for i := 1; i <= len(lowered); i++ {
		if i < len(lowered) && lowered[i-1] < unicode.MaxASCII && lowered[i] == lowered[i-1]+1 {
			continue
		}
		if i-start >= 4 {
			return string(lowered[start:i]), true
		}
		start = i
	}
	return "", false
}

func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// keyboardSequence looks for the longest run of a keyboard row (forward or
// reversed) contained in the password. Rows are tried in order and the first
// row with a match wins.
func keyboardSequence(lowered string) (string, bool) {
	for _, row := range keyboardRows {
		for _, candidate := range []string{row, reverse(row)} {
			for size := len(candidate); size >= 4; size-- {
				for start := 0; start+size <= len(candidate); start++ {
					chunk := candidate[start : start+size]
					if strings.Contains(lowered, chunk) {
						return chunk, true
					}
				}
			}
		}
	}
	return "", false
}

// isCommonPassword matches the built-in list, plus passwords made of a single
// digit repeated ("0000", "77777777").
func isCommonPassword(lowered []rune) bool {
	if commonPasswords.contains(string(lowered)) {
		return true
	}

	if len(lowered) < 2 {
		return false
	}
	for _, r := range lowered {
		if r < '0' || r > '9' || r != lowered[0] {
			return false
		}
	}
	return true
}

// isCapitalizedFirst matches "Password" style: an uppercase first letter
// followed only by lowercase letters. Non-letters are ignored.
func isCapitalizedFirst(runes []rune) bool {
	if len(runes) < 2 || classify(runes[0]) != classUpper {
		return false
	}
	for _, r := range runes[1:] {
		if unicode.IsLetter(r) && !unicode.IsLower(r) {
			return false
		}
	}
	return true
}

func hasCommonSuffix(lowered string) bool {
	return commonSuffixPattern.MatchString(lowered)
}
