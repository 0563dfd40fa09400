package bench

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCount(t *testing.T) {
	for _, c := range Cases() {
		for _, n := range []int{0, 1, 2, 7, 100, 1000} {
			words, err := NewGenerator(DefaultSeed).Generate(n, c)
			require.NoError(t, err, "%s/%d", c, n)
			assert.Len(t, words, n, "%s/%d", c, n)
			assertUnique(t, words)
		}
	}
}

func TestGenerateWorstIsChain(t *testing.T) {
	words, err := NewGenerator(DefaultSeed).Generate(50, Worst)
	require.NoError(t, err)
	require.Len(t, words, 50)

	assert.Equal(t, "a", words[0])
	for i := 1; i < len(words); i++ {
		assert.Len(t, words[i], len(words[i-1])+1)
		assert.True(t, strings.HasPrefix(words[i], words[i-1]))
	}
}

func TestGenerateAverage(t *testing.T) {
	words, err := NewGenerator(DefaultSeed).Generate(500, Average)
	require.NoError(t, err)

	for _, w := range words {
		assert.GreaterOrEqual(t, len(w), minWordLen)
		assert.LessOrEqual(t, len(w), maxWordLen)
		assert.Equal(t, strings.ToLower(w), w)
		assert.Empty(t, strings.Trim(w, "abcdefghijklmnopqrstuvwxyz"))
	}
	assert.False(t, sort.StringsAreSorted(words))

	fixed, err := NewGenerator(DefaultSeed).GenerateFixed(200, 5, Average)
	require.NoError(t, err)
	for _, w := range fixed {
		assert.Len(t, w, 5)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	for _, c := range Cases() {
		a, err := NewGenerator(42).Generate(300, c)
		require.NoError(t, err)
		b, err := NewGenerator(42).Generate(300, c)
		require.NoError(t, err)
		assert.Equal(t, a, b, c.String())
	}

	a, _ := NewGenerator(1).Generate(300, Average)
	b, _ := NewGenerator(2).Generate(300, Average)
	assert.NotEqual(t, a, b)
}

func TestGenerateBestIsMedianFirst(t *testing.T) {
	words, err := NewGenerator(DefaultSeed).Generate(101, Best)
	require.NoError(t, err)

	for _, w := range words {
		assert.True(t, strings.HasPrefix(w, bestPrefix))
		assert.Len(t, w, len(bestPrefix)+bestSuffixLen)
	}

	sorted := append([]string{}, words...)
	sort.Strings(sorted)
	assert.Equal(t, sorted[50], words[0])
	assert.Equal(t, medianOrder(sorted), words)

	fixed, err := NewGenerator(DefaultSeed).GenerateFixed(20, 3, Best)
	require.NoError(t, err)
	assert.Len(t, fixed[0], len(bestPrefix)+3)
}

func TestMedianOrder(t *testing.T) {
	assert.Empty(t, medianOrder(nil))
	assert.Equal(t, []string{"a"}, medianOrder([]string{"a"}))
	assert.Equal(t, []string{"b", "a"}, medianOrder([]string{"a", "b"}))
	assert.Equal(t,
		[]string{"d", "b", "a", "c", "f", "e", "g"},
		medianOrder([]string{"a", "b", "c", "d", "e", "f", "g"}),
	)
}

func TestGenerateErrors(t *testing.T) {
	g := NewGenerator(DefaultSeed)

	_, err := g.Generate(10, Case("typical"))
	assert.ErrorIs(t, err, ErrInvalidCase)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = g.Generate(-1, Average)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = g.GenerateFixed(10, 0, Average)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	// only 26 one-letter words exist
	_, err = g.GenerateFixed(27, 1, Average)
	assert.ErrorIs(t, err, ErrCapacity)
	_, err = g.GenerateFixed(27, 1, Best)
	assert.ErrorIs(t, err, ErrCapacity)

	words, err := g.GenerateFixed(26, 1, Average)
	require.NoError(t, err)
	assert.Len(t, words, 26)
}

func TestParseCase(t *testing.T) {
	for _, c := range Cases() {
		got, err := ParseCase(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}

	_, err := ParseCase("Average")
	assert.ErrorIs(t, err, ErrInvalidCase)
	_, err = ParseCase("")
	assert.ErrorIs(t, err, ErrInvalidCase)
}

func assertUnique(t *testing.T, words []string) {
	t.Helper()
	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		_, dup := seen[w]
		assert.False(t, dup, "duplicate %q", w)
		seen[w] = struct{}{}
	}
}
