package radiogaga_test

import (
	"slices"
	"testing"

	"github.com/fwojciec/radiogaga"
	"github.com/stretchr/testify/assert"
)

func TestFuzzyMatch(t *testing.T) {
	t.Parallel()

	candidates := []string{"France Inter", "France Info", "FIP", "Radio Nova", "Fun Radio"}

	t.Run("empty query returns all candidates in order", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, candidates, radiogaga.FuzzyMatch("", candidates))
	})

	t.Run("matches subsequences", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []string{"France Inter", "France Info"}, radiogaga.FuzzyMatch("fin", candidates))
		assert.Equal(t, []string{"Radio Nova", "Fun Radio"}, radiogaga.FuzzyMatch("rdo", candidates))
	})

	t.Run("ignores case", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []string{"FIP"}, radiogaga.FuzzyMatch("fip", candidates))
		assert.Equal(t, []string{"Radio Nova"}, radiogaga.FuzzyMatch("NOVA", candidates))
	})

	t.Run("requires characters in order", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, radiogaga.FuzzyMatch("pif", candidates))
	})

	t.Run("handles accented characters", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []string{"Chérie FM"}, radiogaga.FuzzyMatch("ÉRI", []string{"Chérie FM", "Cherie"}))
	})

	t.Run("spaces in the query must match spaces", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []string{"France Inter", "France Info"}, radiogaga.FuzzyMatch("e i", candidates))
		assert.Empty(t, radiogaga.FuzzyMatch("f i p", candidates))
	})

	t.Run("result is a subset of candidates", func(t *testing.T) {
		t.Parallel()

		for _, q := range []string{"a", "r", "zz", "fr in", "o"} {
			for _, m := range radiogaga.FuzzyMatch(q, candidates) {
				assert.Contains(t, candidates, m)
			}
		}
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, radiogaga.FuzzyMatch("ra", candidates), radiogaga.FuzzyMatch("ra", candidates))
	})
}

func TestFuzzyFilter(t *testing.T) {
	t.Parallel()

	t.Run("sequence can be ranged over twice", func(t *testing.T) {
		t.Parallel()

		seq := radiogaga.FuzzyFilter("o", []string{"Nova", "FIP", "Mouv'"})

		assert.Equal(t, []string{"Nova", "Mouv'"}, slices.Collect(seq))
		assert.Equal(t, []string{"Nova", "Mouv'"}, slices.Collect(seq))
	})

	t.Run("stops early when the consumer stops", func(t *testing.T) {
		t.Parallel()

		var got []string
		for s := range radiogaga.FuzzyFilter("", []string{"a", "b", "c"}) {
			got = append(got, s)
			if len(got) == 2 {
				break
			}
		}

		assert.Equal(t, []string{"a", "b"}, got)
	})
}
