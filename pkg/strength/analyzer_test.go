// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package strength

import (
	"encoding/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"math"
	"sync"
	"testing"
)

var samplePasswords = []string{
	"",
	"a",
	"password",
	"Password1",
	"qwerty123",
	"aaaaaaaa",
	"aA1!aA1!",
	"abcabc",
	"Tr0ub4dor&3Tr0ub4dor&3",
	"correct-Horse7battery$Staple",
	"0000",
	"Summer2024!",
	"pässwörd ünïcode",
	"日本語のパスワード",
	"lkjhgfdsa",
	"\nsecret\n",
}

var labelOrder = []string{
	LabelBaseline,
	LabelSingleClass,
	LabelRepeatRun,
	LabelRepeatSubstring,
	LabelSequentialRun,
	LabelKeyboard,
	LabelCommonPassword,
	LabelCapitalized,
	LabelCommonSuffix,
}

func labels(r Result) []string {
	out := make([]string, 0, len(r.Breakdown))
	for _, c := range r.Breakdown {
		out = append(out, c.Label)
	}
	return out
}

func warningIDs(r Result) []string {
	out := make([]string, 0, len(r.Warnings))
	for _, w := range r.Warnings {
		out = append(out, w.ID)
	}
	return out
}

func TestAnalyze_Empty(t *testing.T) {
	for _, input := range []string{"", "\n", "\r\n\r\n"} {
		r := Analyze(input)

		assert.Equal(t, 0, r.PasswordLength)
		assert.Equal(t, 0.0, r.EntropyBits)
		assert.Equal(t, VeryWeak, r.Category)
		assert.Equal(t, 0.0, r.MeterValue)
		require.Len(t, r.Warnings, 1)
		assert.Equal(t, WarnEmpty, r.Warnings[0].ID)
		assert.Equal(t, Info, r.Warnings[0].Severity)
		assert.Equal(t, []EntropyComponent{{Label: LabelBaseline, Bits: 0}}, r.Breakdown)
	}
}

func TestAnalyze_TrimsNewlinesOnly(t *testing.T) {
	assert.Equal(t, 6, Analyze("\nsecret\n").PasswordLength)
	assert.Equal(t, 8, Analyze(" secret ").PasswordLength)
	assert.Equal(t, 7, Analyze("\tsecret").PasswordLength)
}

func TestAnalyze_Invariants(t *testing.T) {
	for _, pwd := range samplePasswords {
		r := Analyze(pwd)

		assert.GreaterOrEqualf(t, r.EntropyBits, 0.0, "%q entropy", pwd)
		assert.Equalf(t, Classify(r.EntropyBits), r.Category, "%q category", pwd)
		assert.GreaterOrEqualf(t, r.MeterValue, 0.0, "%q meter", pwd)
		assert.LessOrEqualf(t, r.MeterValue, 1.0, "%q meter", pwd)
		require.NotEmptyf(t, r.Breakdown, "%q breakdown", pwd)
		assert.Equalf(t, LabelBaseline, r.Breakdown[0].Label, "%q first breakdown entry", pwd)

		// Deductions appear in rule order, each at most once.
		last := 0
		for _, c := range r.Breakdown[1:] {
			idx := indexOf(labelOrder, c.Label)
			require.Greaterf(t, idx, last, "%q breakdown out of order: %v", pwd, labels(r))
			assert.LessOrEqualf(t, c.Bits, 0.0, "%q deduction %s", pwd, c.Label)
			last = idx
		}

		want := math.Max(0, r.Breakdown[0].Bits+r.Deductions())
		assert.InDeltaf(t, want, r.EntropyBits, 1e-9, "%q final bits", pwd)
	}
}

func indexOf(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return -1
}

func TestAnalyze_Idempotent(t *testing.T) {
	for _, pwd := range samplePasswords {
		assert.Equal(t, Analyze(pwd), Analyze(pwd))
	}
}

func TestAnalyze_Concurrent(t *testing.T) {
	want := make(map[string]Result, len(samplePasswords))
	for _, pwd := range samplePasswords {
		want[pwd] = Analyze(pwd)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, pwd := range samplePasswords {
				assert.Equal(t, want[pwd], Analyze(pwd))
			}
		}()
	}
	wg.Wait()
}

func TestAnalyze_AlphabetDiversity(t *testing.T) {
	plain := Analyze("aaaaaaaa")
	mixed := Analyze("aA1!aA1!")

	assert.InDelta(t, 8*math.Log2(26), plain.Breakdown[0].Bits, 1e-9)
	assert.InDelta(t, 8*math.Log2(95), mixed.Breakdown[0].Bits, 1e-9)
	assert.Greater(t, mixed.Breakdown[0].Bits, plain.Breakdown[0].Bits)
}

func TestAnalyze_RepeatedLetters(t *testing.T) {
	r := Analyze("aaaaaaaa")
	baseline := 8 * math.Log2(26)

	assert.Equal(t, []string{WarnShort, WarnSingleClass, WarnRepeatRun, WarnRepeatSubstring}, warningIDs(r))
	assert.Equal(t, []string{LabelBaseline, LabelSingleClass, LabelRepeatRun, LabelRepeatSubstring}, labels(r))
	assert.InDelta(t, -0.25*baseline, r.Breakdown[1].Bits, 1e-9)
	assert.InDelta(t, -0.15*baseline, r.Breakdown[2].Bits, 1e-9)
	assert.InDelta(t, -0.20*baseline, r.Breakdown[3].Bits, 1e-9)
	assert.InDelta(t, 0.4*baseline, r.EntropyBits, 1e-9)
	assert.Equal(t, VeryWeak, r.Category)
}

func TestAnalyze_DeductionCaps(t *testing.T) {
	// 40 lowercase letters: baseline is large enough for every cap to apply.
	r := Analyze("abcdefghijabcdefghijabcdefghijabcdefghij")

	assert.Equal(t, []string{LabelBaseline, LabelSingleClass, LabelRepeatSubstring, LabelSequentialRun}, labels(r))
	assert.Equal(t, -12.0, r.Breakdown[1].Bits)
	assert.Equal(t, -14.0, r.Breakdown[2].Bits)
	assert.Equal(t, -12.0, r.Breakdown[3].Bits)
}

func TestAnalyze_CommonPassword(t *testing.T) {
	r := Analyze("password")

	assert.True(t, r.HasWarning(WarnCommonPassword))
	assert.Contains(t, []Category{VeryWeak, Weak}, r.Category)
	assert.Contains(t, labels(r), LabelCommonPassword)

	r = Analyze("PASSWORD")
	assert.True(t, r.HasWarning(WarnCommonPassword))

	r = Analyze("99999999")
	assert.True(t, r.HasWarning(WarnCommonPassword))
	assert.Equal(t, VeryWeak, r.Category)
}

func TestAnalyze_CommonPasswordCollapsesToListSize(t *testing.T) {
	// Long enough to avoid every other rule.
	r := Analyze("0000000000000000")
	baseline := 16 * math.Log2(10)
	listBits := math.Log2(float64(CommonPasswordCount()))

	idx := indexOf(labels(r), LabelCommonPassword)
	require.Greater(t, idx, 0)
	assert.InDelta(t, -(baseline - listBits), r.Breakdown[idx].Bits, 1e-9)
}

func TestAnalyze_RuleOrder(t *testing.T) {
	r := Analyze("Password1")

	assert.Equal(t, []string{WarnShort, WarnCommonPassword, WarnCapitalized, WarnCommonSuffix}, warningIDs(r))
	assert.Equal(t, []string{LabelBaseline, LabelCommonPassword, LabelCapitalized, LabelCommonSuffix}, labels(r))
	assert.Equal(t, VeryWeak, r.Category)
}

func TestAnalyze_RepeatSubstring(t *testing.T) {
	cases := []struct {
		input  string
		period int
	}{
		{"abcabc", 3},
		{"abcabcabc", 3},
		{"abab", 2},
		{"Tr0ub4dor&3Tr0ub4dor&3", 11},
	}

	for _, tc := range cases {
		r := Analyze(tc.input)
		assert.Truef(t, r.HasWarning(WarnRepeatSubstring), "%q should warn about repetition", tc.input)
		assert.Equalf(t, tc.period, smallestPeriod([]rune(tc.input)), "%q period", tc.input)
	}
}

func TestAnalyze_KeyboardSequence(t *testing.T) {
	r := Analyze("qwerty123")

	require.True(t, r.HasWarning(WarnKeyboard))
	for _, w := range r.Warnings {
		if w.ID == WarnKeyboard {
			assert.Equal(t, Critical, w.Severity)
			assert.Contains(t, w.Detail, "qwerty")
		}
	}
}

func TestAnalyze_TooShort(t *testing.T) {
	r := Analyze("a")

	assert.Equal(t, 1, r.PasswordLength)
	assert.True(t, r.HasWarning(WarnTooShort))
	assert.False(t, r.HasWarning(WarnShort))
	assert.Equal(t, VeryWeak, r.Category)
}

func TestAnalyze_Strong(t *testing.T) {
	r := Analyze("correct-Horse7battery$Staple")

	assert.Equal(t, 28, r.PasswordLength)
	assert.Empty(t, r.Warnings)
	assert.Len(t, r.Breakdown, 1)
	assert.InDelta(t, 28*math.Log2(95), r.EntropyBits, 1e-9)
	assert.Equal(t, Strong, r.Category)
	assert.Equal(t, 1.0, r.MeterValue)
}

func TestAnalyze_Unicode(t *testing.T) {
	r := Analyze("日本語のパスワード")

	assert.Equal(t, 9, r.PasswordLength)
	assert.InDelta(t, 9*math.Log2(33), r.Breakdown[0].Bits, 1e-9)
	assert.True(t, r.HasWarning(WarnSingleClass))
}

func TestClassify(t *testing.T) {
	cases := []struct {
		bits float64
		want Category
	}{
		{0, VeryWeak},
		{27.99, VeryWeak},
		{28, Weak},
		{35.99, Weak},
		{36, Fair},
		{59.99, Fair},
		{60, Strong},
		{200, Strong},
	}

	for _, tc := range cases {
		assert.Equalf(t, tc.want, Classify(tc.bits), "Classify(%v)", tc.bits)
	}
}

func TestMeter(t *testing.T) {
	assert.Equal(t, 0.0, Meter(-5))
	assert.Equal(t, 0.0, Meter(0))
	assert.Equal(t, 0.5, Meter(40))
	assert.Equal(t, 1.0, Meter(80))
	assert.Equal(t, 1.0, Meter(120))
}

func TestDedupWarnings(t *testing.T) {
	in := []Warning{
		{ID: "a", Title: "first"},
		{ID: "b"},
		{ID: "a", Title: "second"},
		{ID: "c"},
		{ID: "b"},
	}

	out := DedupWarnings(in)
	require.Len(t, out, 3)
	assert.Equal(t, "a", out[0].ID)
	assert.Equal(t, "first", out[0].Title)
	assert.Equal(t, "b", out[1].ID)
	assert.Equal(t, "c", out[2].ID)
}

func TestResult_JSON(t *testing.T) {
	data, err := json.Marshal(Analyze("password"))
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "very_weak", decoded["category"])

	warnings := decoded["warnings"].([]interface{})
	require.NotEmpty(t, warnings)
	assert.Equal(t, "warning", warnings[0].(map[string]interface{})["severity"])

	var back Result
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, VeryWeak, back.Category)
}

func TestAnalyze_SequentialRunIsASCIIOnly(t *testing.T) {
	for _, pwd := range []string{"Zxαβγδ-Q9!x", "абвгдеXy7?kk"} {
		assert.Falsef(t, Analyze(pwd).HasWarning(WarnSequentialRun), "%q should not be sequential", pwd)
	}
	assert.True(t, Analyze("Zxabcd-Q9!x").HasWarning(WarnSequentialRun))
}
