// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package strength

// commonPasswords is a small built-in list of the most used passwords. It is
// matched case-insensitively against the whole password and is independent of
// the offline word list in pkg/wordlist.
var commonPasswords = newCommonSet(
	"123456", "123456789", "12345678", "12345", "1234567", "1234567890", "123123",
	"000000", "111111", "654321", "666666", "121212", "112233", "123321", "987654321",
	"password", "password1", "password123", "passw0rd", "p@ssw0rd", "pass", "pass123",
	"qwerty", "qwerty123", "qwertyuiop", "qwe123", "1q2w3e4r", "1q2w3e", "1qaz2wsx",
	"asdfgh", "asdfghjkl", "zxcvbnm", "azerty", "abc123", "abcdef", "abcd1234",
	"iloveyou", "letmein", "welcome", "welcome1", "admin", "admin123", "administrator",
	"root", "toor", "login", "master", "secret", "changeme", "default", "guest",
	"monkey", "dragon", "football", "baseball", "soccer", "hockey", "basketball",
	"superman", "batman", "starwars", "pokemon", "sunshine", "princess", "shadow",
	"michael", "jennifer", "jordan", "charlie", "daniel", "jessica", "thomas",
	"trustno1", "whatever", "freedom", "hello", "hello123", "flower", "lovely",
	"loveme", "ninja", "mustang", "access", "killer", "hunter", "hunter2", "buster",
	"tigger", "summer", "winter", "computer", "internet", "cheese", "cookie",
	"chocolate", "purple", "orange", "banana", "qazwsx", "zaq12wsx", "google",
	"samsung", "apple", "iphone", "matrix", "secret123", "test", "test123",
)

type commonSet map[string]struct{}

func newCommonSet(words ...string) commonSet {
	s := make(commonSet, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

func (s commonSet) contains(lowered string) bool {
	_, ok := s[lowered]
	return ok
}

// CommonPasswordCount is the size of the built-in common password list.
func CommonPasswordCount() int {
	return len(commonPasswords)
}
