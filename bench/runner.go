package bench

import (
	"fmt"
	"runtime/debug"
	"time"

	"github.com/e11jah/tstbench"
)

// Result holds per-trial averages for one tree variant over one word list.
type Result struct {
	Insert float64 // seconds
	Search float64 // seconds
	RAM    float64 // megabytes
}

// Runner times insert and search passes over fresh trees.
type Runner struct {
	sampler Sampler
	now     func() time.Time
	// runs before each trial so garbage from the previous tree is not
	// counted against the next one
	settle func()
}

// NewRunner returns a runner that samples memory with sampler, or with a
// ProcSampler when sampler is nil.
func NewRunner(sampler Sampler) *Runner {
	if sampler == nil {
		sampler = NewProcSampler()
	}
	return &Runner{
		sampler: sampler,
		now:     time.Now,
		settle:  debug.FreeOSMemory,
	}
}

// Run builds repeat independent trees with factory, inserting and then
// searching words in list order, and returns the arithmetic mean of each
// metric across trials.
func (r *Runner) Run(factory tstbench.Factory, words []string, repeat int) (Result, error) {
	if repeat < 1 {
		return Result{}, fmt.Errorf("%w: repeat %d", ErrInvalidArgument, repeat)
	}
	if factory == nil {
		return Result{}, fmt.Errorf("%w: nil tree factory", ErrInvalidArgument)
	}

	var sum Result
	for i := 0; i < repeat; i++ {
		res, err := r.trial(factory, words)
		if err != nil {
			return Result{}, fmt.Errorf("trial %d: %w", i, err)
		}
		sum.Insert += res.Insert
		sum.Search += res.Search
		sum.RAM += res.RAM
	}

	n := float64(repeat)
	return Result{
		Insert: sum.Insert / n,
		Search: sum.Search / n,
		RAM:    sum.RAM / n,
	}, nil
}

func (r *Runner) trial(factory tstbench.Factory, words []string) (Result, error) {
	if r.settle != nil {
		r.settle()
	}

	before, err := r.sampler.Sample()
	if err != nil {
		return Result{}, err
	}

	tree := factory()
	start := r.now()
	for _, w := range words {
		tree.Insert(w)
	}
	insert := r.now().Sub(start)

	after, err := r.sampler.Sample()
	if err != nil {
		return Result{}, err
	}

	hits := 0
	start = r.now()
	for _, w := range words {
		if tree.Contains(w) {
			hits++
		}
	}
	search := r.now().Sub(start)

	if hits != len(words) {
		return Result{}, fmt.Errorf("%w: %d of %d", ErrSearchMiss, len(words)-hits, len(words))
	}

	return Result{
		Insert: insert.Seconds(),
		Search: search.Seconds(),
		RAM:    memDelta(before, after),
	}, nil
}
