// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package cracktime

import (
	"github.com/stretchr/testify/assert"
	"math"
	"testing"
)

func TestEstimate_NonPositive(t *testing.T) {
	for _, bits := range []float64{0, -1, -100, math.NaN()} {
		assert.Equal(t, Estimate{}, Online.Estimate(bits))
		assert.Equal(t, Estimate{}, OfflineModerate.Estimate(bits))
	}
}

func TestEstimate(t *testing.T) {
	cases := []struct {
		bits     float64
		scenario Scenario
		expected float64
		worst    float64
	}{
		{10, Online, 5.12, 10.24},
		{1, Online, 0.01, 0.02},
		{40, OfflineModerate, 549.755813888, 1099.511627776},
		{20, Scenario{ID: "one", Title: "One per second", GuessesPerSecond: 1}, 524288, 1048576},
	}

	for _, tc := range cases {
		e := tc.scenario.Estimate(tc.bits)
		assert.InDeltaf(t, tc.expected, e.ExpectedSeconds, 1e-9, "expected for %v bits", tc.bits)
		assert.InDeltaf(t, tc.worst, e.WorstSeconds, 1e-9, "worst for %v bits", tc.bits)
		assert.InDelta(t, 2*e.ExpectedSeconds, e.WorstSeconds, 1e-9)
	}
}

func TestEstimate_Overflow(t *testing.T) {
	e := OfflineModerate.Estimate(5000)
	assert.True(t, math.IsInf(e.WorstSeconds, 1))
	assert.Equal(t, "Effectively never", e.Display())
}

func TestFormat(t *testing.T) {
	cases := []struct {
		seconds float64
		want    string
	}{
		{math.Inf(1), "Effectively never"},
		{math.NaN(), "Effectively never"},
		{0, "Instant"},
		{0.5, "Instant"},
		{1, "Instant"},
		{1.4, "1s"},
		{30, "30s"},
		{59.9, "60s"},
		{60, "1m"},
		{90, "2m"},
		{3599, "60m"},
		{3600, "1h"},
		{7200, "2h"},
		{86399, "24h"},
		{86400, "1d"},
		{44 * day, "44d"},
		{45 * day, "2mo"},
		{200 * day, "7mo"},
		{year - 1, "12mo"},
		{year, "1y"},
		{1234 * year, "1,234y"},
		{9999 * year, "9,999y"},
		{9999.4 * year, "9,999y"},
		{9999.5 * year, ">10,000y"},
		{9999.6 * year, ">10,000y"},
		{10000 * year, ">10,000y"},
		{1e30, ">10,000y"},
	}

	for _, tc := range cases {
		assert.Equalf(t, tc.want, Format(tc.seconds), "Format(%v)", tc.seconds)
	}
}

func TestFormatRange(t *testing.T) {
	assert.Equal(t, "30s", FormatRange(30, 30))
	assert.Equal(t, "Instant", FormatRange(0.2, 0.4))
	assert.Equal(t, "30s avg & 1m worst", FormatRange(30, 60))
	assert.Equal(t, "2,000y avg & 4,000y worst", FormatRange(2000*year, 4000*year))
	assert.Equal(t, ">10,000y", FormatRange(20000*year, 40000*year))
}

func TestEstimate_Display(t *testing.T) {
	e := Online.Estimate(12)
	// 2^12 / 100 = 40.96s worst, 20.48s expected
	assert.Equal(t, "20s avg & 41s worst", e.Display())
}
