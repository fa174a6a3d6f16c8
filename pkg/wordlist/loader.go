// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

// Package wordlist loads the offline dictionary shipped with the binary.
//
// A Loader reads its resource at most once, on first use, and caches the
// result for the life of the process. A missing or unreadable resource is not
// an error: the loader degrades to an empty Set.
package wordlist

import (
	"bufio"
	"embed"
	"github.com/alvinbaena/pwd-strength/internal/util"
	"github.com/jfcg/sorty/v2"
	"github.com/rs/zerolog/log"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"unicode"
)

const bundledName = "data/words.txt"

//go:embed data/words.txt
var bundled embed.FS

var defaultLoader = NewLoader(bundled, bundledName)

// Set is a read-only set of lowercase words.
type Set struct {
	words map[string]struct{}
}

func (s Set) Size() int {
	return len(s.words)
}

// Contains reports whether word, lowercased, is in the set.
func (s Set) Contains(word string) bool {
	_, ok := s.words[strings.ToLower(word)]
	return ok
}

// Sorted returns a sorted copy of the words.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s.words))
	for w := range s.words {
		out = append(out, w)
	}
	sorty.SortSlice(out)
	return out
}

type Loader struct {
	fsys fs.FS
	name string
	once sync.Once
	set  Set
}

// NewLoader creates a loader for the newline delimited resource name in fsys.
// Nothing is read until Load is called.
func NewLoader(fsys fs.FS, name string) *Loader {
	return &Loader{fsys: fsys, name: name}
}

// FileLoader creates a loader for a word list on disk.
func FileLoader(fileName string) *Loader {
	abs, err := filepath.Abs(fileName)
	if err != nil {
		abs = fileName
	}
	return NewLoader(os.DirFS(filepath.Dir(abs)), filepath.Base(abs))
}

// Default returns the loader of the bundled word list.
func Default() *Loader {
	return defaultLoader
}

// Load returns the word set, reading the resource on the first call only.
// Concurrent first callers block until that single read is done.
func (l *Loader) Load() Set {
	l.once.Do(func() {
		l.set = l.read()
	})
	return l.set
}

// Size is shorthand for Load().Size().
func (l *Loader) Size() int {
	return l.Load().Size()
}

func (l *Loader) read() Set {
	s := util.Stats()
	defer s()

	file, err := l.fsys.Open(l.name)
	if err != nil {
		log.Warn().Err(err).Msgf("word list %s is not available, dictionary disabled", l.name)
		return Set{words: map[string]struct{}{}}
	}

	defer func(file fs.File) {
		if err := file.Close(); err != nil {
			log.Warn().Err(err).Msgf("error closing word list %s", l.name)
		}
	}(file)

	set, err := Parse(file)
	if err != nil {
		log.Warn().Err(err).Msgf("error reading word list %s, dictionary disabled", l.name)
		return Set{words: map[string]struct{}{}}
	}

	log.Debug().Msgf("loaded %d words from %s", set.Size(), l.name)
	return set
}

// Parse reads one word per line. Words are lowercased; lines that are not
// made only of letters are skipped.
func Parse(r io.Reader) (Set, error) {
	words := make(map[string]struct{})
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" || !isAlphabetic(word) {
			continue
		}
		words[word] = struct{}{}
	}

	if err := scanner.Err(); err != nil {
		return Set{}, err
	}
	return Set{words: words}, nil
}

func isAlphabetic(word string) bool {
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
