package bench

import (
	"fmt"
)

const (
	// ScaleStart is the first size of the large-scale grid.
	ScaleStart = 1_000_000

	scaleDefault = 5_000_000
)

// LocalSizes is the grid for quick runs on a workstation.
func LocalSizes() []int {
	return []int{10_000, 50_000, 100_000, 250_000, 500_000}
}

// ScaleSizes starts at start and grows alternately by x2.5 and x2 while the
// size stays within maxSize: 1M, 2.5M, 5M, 12.5M, 25M, ...
func ScaleSizes(start, maxSize int) ([]int, error) {
	if start <= 0 || maxSize <= 0 {
		return nil, fmt.Errorf("%w: scale sizes start %d max %d", ErrInvalidArgument, start, maxSize)
	}

	sizes := make([]int, 0)
	double := false
	for n := start; n <= maxSize; {
		sizes = append(sizes, n)
		// room left below maxSize; the next size must fit in it, which
		// also keeps the arithmetic from overflowing
		room := maxSize - n
		if double {
			if n > room {
				break
			}
			n *= 2
		} else {
			if n > room || n/2 > room-n {
				break
			}
			n = 2*n + n/2
		}
		double = !double
	}
	return sizes, nil
}

// DefaultScaleSizes is ScaleSizes(1M, 5M).
func DefaultScaleSizes() []int {
	sizes, _ := ScaleSizes(ScaleStart, scaleDefault)
	return sizes
}

// StepSizes returns step, 2*step, ... up to and including maxSize.
func StepSizes(step, maxSize int) ([]int, error) {
	if step <= 0 || maxSize <= 0 {
		return nil, fmt.Errorf("%w: step sizes step %d max %d", ErrInvalidArgument, step, maxSize)
	}

	sizes := make([]int, 0, maxSize/step)
	for n := step; n <= maxSize; n += step {
		sizes = append(sizes, n)
		if n > maxSize-step {
			break
		}
	}
	return sizes, nil
}
