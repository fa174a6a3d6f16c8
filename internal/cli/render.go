// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/json"
	"fmt"
	"github.com/alvinbaena/pwd-strength/internal/reference"
	"github.com/alvinbaena/pwd-strength/pkg/cracktime"
	"github.com/alvinbaena/pwd-strength/pkg/strength"
	"io"
	"strings"
	"text/tabwriter"
)

type scenarioDisplay struct {
	Scenario string `json:"scenario"`
	Title    string `json:"title"`
	Display  string `json:"display"`
}

type analyzeOutput struct {
	Result    strength.Result   `json:"result"`
	Estimates []scenarioDisplay `json:"estimates"`
	Reference *reference.Score  `json:"reference"`
}

func estimatesFor(bits float64, scenarios []cracktime.Scenario) []scenarioDisplay {
	out := make([]scenarioDisplay, 0, len(scenarios))
	for _, s := range scenarios {
		out = append(out, scenarioDisplay{Scenario: s.ID, Title: s.Title, Display: s.Estimate(bits).Display()})
	}
	return out
}

func renderJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func meterBar(value float64) string {
	const width = 20
	filled := int(value*width + 0.5)
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", width-filled) + "]"
}

func renderAnalysis(w io.Writer, out analyzeOutput) error {
	r := out.Result
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Length:\t%d\n", r.PasswordLength)
	fmt.Fprintf(tw, "Entropy:\t%.2f bits\n", r.EntropyBits)
	fmt.Fprintf(tw, "Strength:\t%s %s\n", r.Category, meterBar(r.MeterValue))
	if out.Reference != nil {
		fmt.Fprintf(tw, "zxcvbn:\t%d/4 (%s)\n", out.Reference.Score, out.Reference.CrackTimeDisplay)
	}

	fmt.Fprintln(tw, "\nBreakdown:")
	for _, c := range r.Breakdown {
		fmt.Fprintf(tw, "  %s\t%+.2f\n", c.Label, c.Bits)
	}

	if len(r.Warnings) > 0 {
		fmt.Fprintln(tw, "\nWarnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(tw, "  [%s]\t%s: %s\n", warn.Severity, warn.Title, warn.Detail)
		}
	}

	fmt.Fprintln(tw, "\nTime to crack:")
	for _, e := range out.Estimates {
		fmt.Fprintf(tw, "  %s\t%s\n", e.Title, e.Display)
	}

	return tw.Flush()
}
