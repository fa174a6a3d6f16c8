// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"github.com/alvinbaena/pwd-strength/internal/reference"
	"github.com/alvinbaena/pwd-strength/pkg/cracktime"
	"github.com/alvinbaena/pwd-strength/pkg/strength"
	"github.com/manifoldco/promptui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"io"
)

var (
	analyzeCmd = &cobra.Command{
		Use:   "analyze [PASSWORD]",
		Short: "Analyze the strength of a password. Prefer --interactive to keep it out of the shell history",
		Args: func(cmd *cobra.Command, args []string) error {
			if !interactive {
				if err := cobra.ExactArgs(1)(cmd, args); err != nil {
					return err
				}
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive {
				return analyzeInteractive(cmd.OutOrStdout())
			}
			return analyzeCommand(cmd.OutOrStdout(), args[0])
		},
	}
)

//goland:noinspection GoUnhandledErrorResult
func init() {
	analyzeCmd.Flags().BoolVarP(&interactive, "interactive", "n", false, "Interactive mode. Passwords are read from a masked prompt")
	analyzeCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the result as JSON")
	analyzeCmd.Flags().StringVar(&scenariosFile, "scenarios", "", "YAML file with additional attack scenarios")

	rootCmd.AddCommand(analyzeCmd)
}

func analyzeCommand(w io.Writer, password string) error {
	scenarios, err := cracktime.LoadCatalogueFile(scenariosFile)
	if err != nil {
		return err
	}

	return printAnalysis(w, password, scenarios)
}

func printAnalysis(w io.Writer, password string, scenarios []cracktime.Scenario) error {
	result := strength.Analyze(password)
	out := analyzeOutput{
		Result:    result,
		Estimates: estimatesFor(result.EntropyBits, scenarios),
		Reference: reference.Of(password),
	}

	if jsonOutput {
		return renderJSON(w, out)
	}
	return renderAnalysis(w, out)
}

func analyzeInteractive(w io.Writer) error {
	scenarios, err := cracktime.LoadCatalogueFile(scenariosFile)
	if err != nil {
		return err
	}

	prompt := promptui.Prompt{
		Label: "Password",
		Mask:  '*',
	}

	log.Info().Msgf("running interactive session. ^C to exit")
	for {
		password, err := prompt.Run()
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
				log.Info().Msgf("goodbye")
				// No error to avoid the default cobra error message
				return nil
			}
			return err
		}

		if err = printAnalysis(w, password, scenarios); err != nil {
			log.Error().Err(err).Msg("error printing analysis")
		}
	}
}
