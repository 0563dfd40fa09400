package bench

import (
	"fmt"

	"github.com/prometheus/procfs"
)

// Sampler reports the resident memory of the current process in megabytes.
// Single readings are noisy; only the difference between two is meaningful.
type Sampler interface {
	Sample() (float64, error)
}

// ProcSampler reads resident set size from /proc/self/stat.
type ProcSampler struct{}

func NewProcSampler() *ProcSampler {
	return &ProcSampler{}
}

func (s *ProcSampler) Sample() (float64, error) {
	p, err := procfs.Self()
	if err != nil {
		return 0, fmt.Errorf("%w: open /proc/self: %v", ErrSampling, err)
	}
	stat, err := p.Stat()
	if err != nil {
		return 0, fmt.Errorf("%w: read stat: %v", ErrSampling, err)
	}
	return float64(stat.ResidentMemory()) / bytesPerMegabyte, nil
}

// memDelta floors growth at zero: memory released by unrelated work during a
// build must not show up as a negative cost.
func memDelta(before, after float64) float64 {
	if after < before {
		return 0
	}
	return after - before
}
