// Package bench generates case-controlled word sets and measures how long
// ordered string trees take to insert and search them, and how much resident
// memory each build costs.
package bench

import (
	"errors"
	"fmt"
)

const (
	Average Case = "average"
	Best    Case = "best"
	Worst   Case = "worst"
)

const (
	// DefaultSeed matches the seed the comparison runs have always used.
	DefaultSeed int64 = 100

	minWordLen = 2
	maxWordLen = 20

	bestPrefix       = "tst"
	bestSuffixLen    = 8
	alphabetSize     = 26
	attemptsPerWord  = 64
	bytesPerMegabyte = 1e6
)

const (
	MetricInsert = "insert"
	MetricSearch = "search"
	MetricRAM    = "ram"

	SizeColumn = "size"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrInvalidCase     = fmt.Errorf("%w: unknown case", ErrInvalidArgument)
	ErrCapacity        = errors.New("cannot generate enough unique words")
	ErrSampling        = errors.New("memory sampling failed")
	ErrSearchMiss      = errors.New("inserted word not found")
)

var metrics = []string{MetricInsert, MetricSearch, MetricRAM}

// Case selects the insertion regime a word set is tailored to.
type Case string

func (c Case) String() string {
	return string(c)
}

func (c Case) valid() bool {
	switch c {
	case Average, Best, Worst:
		return true
	}
	return false
}

// Cases returns every case in the order comparison runs report them.
func Cases() []Case {
	return []Case{Best, Worst, Average}
}

func ParseCase(s string) (Case, error) {
	c := Case(s)
	if !c.valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidCase, s)
	}
	return c, nil
}
