// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"github.com/alvinbaena/pwd-strength/pkg/cracktime"
	"github.com/spf13/cobra"
	"io"
	"strconv"
	"text/tabwriter"
)

var (
	estimateCmd = &cobra.Command{
		Use:   "estimate BITS",
		Short: "Estimate the time needed to crack a password of the given entropy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bits, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid entropy %q: %w", args[0], err)
			}
			return estimateCommand(cmd.OutOrStdout(), bits)
		},
	}
)

//goland:noinspection GoUnhandledErrorResult
func init() {
	estimateCmd.Flags().StringVar(&scenariosFile, "scenarios", "", "YAML file with additional attack scenarios")
	estimateCmd.Flags().StringVarP(&scenarioID, "scenario", "s", "", "Only estimate for the scenario with this id")
	estimateCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the result as JSON")

	rootCmd.AddCommand(estimateCmd)
}

func estimateCommand(w io.Writer, bits float64) error {
	scenarios, err := cracktime.LoadCatalogueFile(scenariosFile)
	if err != nil {
		return err
	}

	if scenarioID != "" {
		s, ok := cracktime.Lookup(scenarios, scenarioID)
		if !ok {
			return fmt.Errorf("unknown scenario %q", scenarioID)
		}
		scenarios = []cracktime.Scenario{s}
	}

	estimates := estimatesFor(bits, scenarios)
	if jsonOutput {
		return renderJSON(w, estimates)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, e := range estimates {
		fmt.Fprintf(tw, "%s\t%s\n", e.Title, e.Display)
	}
	return tw.Flush()
}
