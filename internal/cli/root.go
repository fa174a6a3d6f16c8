// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/alvinbaena/pwd-strength/internal/util"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "pwdcheck [COMMAND] [OPTIONS]",
		Short: "Estimate the strength of a password",
		Long: "Estimate the strength of a password offline. The password is scored with an explainable entropy " +
			"heuristic, checked for common weaknesses and turned into crack time estimates for several attack scenarios.",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			util.ApplyCliSettings(verbose, profile, pprofPort)
		},
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print more information on the processing")
	rootCmd.PersistentFlags().BoolVar(&profile, "profile", false, "Enable the profiling server (pprof) when running commands")
	rootCmd.PersistentFlags().Uint16Var(&pprofPort, "profile-port", 6060, "The port to use for the pprof server. Only used if the profile flag is set")
}

func Execute() error {
	return rootCmd.Execute()
}
