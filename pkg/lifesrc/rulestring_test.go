package lifesrc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConwayLife(t *testing.T) {
	r, err := ParseRuleString("B3/S23")
	require.NoError(t, err)
	tr, ok := r.(*TotalisticRule)
	require.True(t, ok)
	assert.True(t, tr.birth[3])
	assert.False(t, tr.birth[2])
	assert.True(t, tr.survival[2])
	assert.True(t, tr.survival[3])
	assert.False(t, tr.survival[4])
	assert.Equal(t, 0, r.Generations())
	assert.False(t, r.Background().B0)
}

func TestParseSurvivalFirstOrder(t *testing.T) {
	r, err := ParseRuleString("S23/B3")
	require.NoError(t, err)
	tr := r.(*TotalisticRule)
	assert.True(t, tr.birth[3])
	assert.True(t, tr.survival[2])
}

func TestParseBareDigitShorthandIsBirthFirst(t *testing.T) {
	r, err := ParseRuleString("3457/357/5")
	require.NoError(t, err)
	tr := r.(*TotalisticRule)
	for _, c := range []int{3, 4, 5, 7} {
		assert.True(t, tr.birth[c], "birth count %d", c)
	}
	for _, c := range []int{3, 5, 7} {
		assert.True(t, tr.survival[c], "survival count %d", c)
	}
	assert.False(t, tr.survival[4])
	assert.Equal(t, 5, r.Generations())
}

func TestParseB0RuleSetsBackground(t *testing.T) {
	r, err := ParseRuleString("B0123478/S01234678")
	require.NoError(t, err)
	assert.True(t, r.Background().B0)
}

func TestParseGenerationsRequiresAtLeastThree(t *testing.T) {
	_, err := ParseRuleString("B3/S23/2")
	assert.Error(t, err)
}

func TestParseEmptyStringFails(t *testing.T) {
	_, err := ParseRuleString("")
	assert.Error(t, err)
}

func TestParseMissingCounterpartFails(t *testing.T) {
	_, err := ParseRuleString("B3")
	assert.Error(t, err)
}

func TestParseNonTotalisticHenselRule(t *testing.T) {
	r, err := ParseRuleString("B2-ce3/S23-a")
	require.NoError(t, err)
	nt, ok := r.(*NonTotalisticRule)
	require.True(t, ok)

	excluded := map[byte]bool{'c': true, 'e': true}
	for _, l := range LettersForCount(2) {
		for _, p := range PatternsForLetter(2, l) {
			if excluded[l] {
				assert.False(t, nt.birth[p], "pattern %08b should be excluded from birth", p)
			} else {
				assert.True(t, nt.birth[p], "pattern %08b should be included in birth", p)
			}
		}
	}
	for _, p := range AllPatternsForCount(3) {
		assert.True(t, nt.birth[p])
	}
}

func TestRuleStringOfRoundTripsTotalistic(t *testing.T) {
	r, err := ParseRuleString("B3/S23")
	require.NoError(t, err)
	assert.Equal(t, "B3/S23", RuleStringOf(r))
}

func TestRuleStringOfRoundTripsGenerations(t *testing.T) {
	r, err := ParseRuleString("3457/357/5")
	require.NoError(t, err)
	s := RuleStringOf(r)
	reparsed, err := ParseRuleString(s)
	require.NoError(t, err)
	assert.Equal(t, r.(*TotalisticRule).birth, reparsed.(*TotalisticRule).birth)
	assert.Equal(t, r.(*TotalisticRule).survival, reparsed.(*TotalisticRule).survival)
	assert.Equal(t, 5, reparsed.Generations())
}

func TestRuleStringOfRoundTripsNonTotalistic(t *testing.T) {
	r, err := ParseRuleString("B2-ce3/S23-a")
	require.NoError(t, err)
	s := RuleStringOf(r)
	reparsed, err := ParseRuleString(s)
	require.NoError(t, err)
	assert.Equal(t, r.(*NonTotalisticRule).birth, reparsed.(*NonTotalisticRule).birth)
	assert.Equal(t, r.(*NonTotalisticRule).survival, reparsed.(*NonTotalisticRule).survival)
}
