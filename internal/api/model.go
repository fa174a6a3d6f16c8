// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package api

import (
	"github.com/alvinbaena/pwd-strength/internal/reference"
	"github.com/alvinbaena/pwd-strength/pkg/cracktime"
	"github.com/alvinbaena/pwd-strength/pkg/strength"
	"math"
)

type analyzeRequest struct {
	// Pointer so that an empty password is accepted and analyzed.
	Password *string `json:"password" binding:"required"`
}

type analyzeResponse struct {
	Result    strength.Result    `json:"result"`
	Estimates []estimateResponse `json:"estimates"`
	Reference *reference.Score   `json:"reference"`
}

type estimateRequest struct {
	Bits     *float64 `json:"bits" binding:"required"`
	Scenario string   `json:"scenario" binding:"required"`
}

// estimateResponse uses null seconds when the time does not fit a float,
// JSON has no infinity.
type estimateResponse struct {
	Scenario        cracktime.Scenario `json:"scenario"`
	ExpectedSeconds *float64           `json:"expected_seconds"`
	WorstSeconds    *float64           `json:"worst_seconds"`
	Display         string             `json:"display"`
}

type wordListResponse struct {
	Size int `json:"size"`
}

func newEstimateResponse(s cracktime.Scenario, bits float64) estimateResponse {
	e := s.Estimate(bits)
	return estimateResponse{
		Scenario:        s,
		ExpectedSeconds: finite(e.ExpectedSeconds),
		WorstSeconds:    finite(e.WorstSeconds),
		Display:         e.Display(),
	}
}

func finite(v float64) *float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}
	return &v
}
