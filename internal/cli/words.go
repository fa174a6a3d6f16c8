// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"github.com/alvinbaena/pwd-strength/internal/util"
	"github.com/alvinbaena/pwd-strength/pkg/wordlist"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"io"
	"os"
)

var (
	wordsCmd = &cobra.Command{
		Use:   "words",
		Short: "Show the offline dictionary statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			return wordsCommand(cmd.OutOrStdout())
		},
	}
)

//goland:noinspection GoUnhandledErrorResult
func init() {
	wordsCmd.Flags().StringVarP(&wordsFile, "words-file", "w", "", "Word list to load instead of the bundled one")
	wordsCmd.Flags().BoolVarP(&listWords, "list", "l", false, "Print every word, sorted")

	rootCmd.AddCommand(wordsCmd)
}

// wordListLoader returns the loader of the user supplied list or the bundled
// one. A user list is refused if it would not fit in memory.
func wordListLoader(fileName string) (*wordlist.Loader, error) {
	if fileName == "" {
		return wordlist.Default(), nil
	}

	// A missing file still degrades to an empty dictionary in the loader.
	if info, err := os.Stat(fileName); err == nil {
		if err = util.CheckRam(util.EstimateWordListBytes(info.Size())); err != nil {
			return nil, err
		}
	} else {
		log.Warn().Err(err).Msgf("word list %s can't be read", fileName)
	}

	return wordlist.FileLoader(fileName), nil
}

func wordsCommand(w io.Writer) error {
	loader, err := wordListLoader(wordsFile)
	if err != nil {
		return err
	}

	set := loader.Load()
	if listWords {
		for _, word := range set.Sorted() {
			if _, err = fmt.Fprintln(w, word); err != nil {
				return err
			}
		}
		return nil
	}

	p := message.NewPrinter(language.English)
	_, err = p.Fprintf(w, "%d words\n", set.Size())
	return err
}
