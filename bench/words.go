package bench

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/brianvoe/gofakeit/v6"
)

// Generator produces word sets for a case. Each Generator owns its random
// source, so two generators built with the same non-zero seed yield the same
// sequence of word sets.
type Generator struct {
	faker *gofakeit.Faker
}

// NewGenerator returns a generator seeded with seed. A zero seed picks a
// random one.
func NewGenerator(seed int64) *Generator {
	return &Generator{faker: gofakeit.New(seed)}
}

// Generate returns n unique words for c. Average words are 2 to 20 letters
// long; best-case suffixes use the default length.
func (g *Generator) Generate(n int, c Case) ([]string, error) {
	return g.generate(n, 0, c)
}

// GenerateFixed is Generate with every random word (or best-case suffix)
// exactly k letters long.
func (g *Generator) GenerateFixed(n, k int, c Case) ([]string, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: word length %d", ErrInvalidArgument, k)
	}
	return g.generate(n, k, c)
}

func (g *Generator) generate(n, k int, c Case) ([]string, error) {
	if !c.valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCase, string(c))
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: word count %d", ErrInvalidArgument, n)
	}

	switch c {
	case Worst:
		return chainWords(n), nil
	case Best:
		if k == 0 {
			k = bestSuffixLen
		}
		suffixes, err := g.uniqueWords(n, k, k)
		if err != nil {
			return nil, err
		}
		words := make([]string, len(suffixes))
		for i, s := range suffixes {
			words[i] = bestPrefix + s
		}
		sort.Strings(words)
		return medianOrder(words), nil
	default:
		lo, hi := minWordLen, maxWordLen
		if k > 0 {
			lo, hi = k, k
		}
		words, err := g.uniqueWords(n, lo, hi)
		if err != nil {
			return nil, err
		}
		g.faker.ShuffleStrings(words)
		return words, nil
	}
}

// uniqueWords draws random lowercase words with lengths uniform in [lo, hi]
// until n distinct ones are collected.
func (g *Generator) uniqueWords(n, lo, hi int) ([]string, error) {
	if capacity(lo, hi) < float64(n) {
		return nil, fmt.Errorf("%w: %d words of length %d..%d", ErrCapacity, n, lo, hi)
	}

	seen := make(map[string]struct{}, n)
	words := make([]string, 0, n)
	buf := make([]byte, hi)
	for attempts := 0; len(words) < n; attempts++ {
		if attempts >= n*attemptsPerWord {
			return nil, fmt.Errorf("%w: %d of %d after %d attempts", ErrCapacity, len(words), n, attempts)
		}

		l := lo
		if hi > lo {
			l = g.faker.Number(lo, hi)
		}
		for i := 0; i < l; i++ {
			buf[i] = byte('a' + g.faker.Number(0, alphabetSize-1))
		}

		w := string(buf[:l])
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		words = append(words, w)
	}
	return words, nil
}

// capacity is the number of distinct words with lengths in [lo, hi].
func capacity(lo, hi int) float64 {
	total := 0.0
	for l := lo; l <= hi; l++ {
		total += math.Pow(alphabetSize, float64(l))
	}
	return total
}

// chainWords returns "a", "aa", "aaa", ... Every word is a substring of one
// backing string, so the set costs O(n) memory.
func chainWords(n int) []string {
	words := make([]string, n)
	base := strings.Repeat("a", n)
	for i := range words {
		words[i] = base[:i+1]
	}
	return words
}

// medianOrder reorders sorted words so the median comes first, followed by
// the median-first order of the lower half and then of the upper half.
func medianOrder(sorted []string) []string {
	type span struct{ lo, hi int }

	out := make([]string, 0, len(sorted))
	stack := []span{{0, len(sorted)}}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if s.lo >= s.hi {
			continue
		}

		mid := s.lo + (s.hi-s.lo)/2
		out = append(out, sorted[mid])
		stack = append(stack, span{mid + 1, s.hi}, span{s.lo, mid})
	}
	return out
}
