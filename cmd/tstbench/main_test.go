package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/e11jah/tstbench/bench"
)

func TestPickSizes(t *testing.T) {
	sizes, err := pickSizes([]int{5, 3}, 0, true, 10)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 3}, sizes)

	sizes, err = pickSizes(nil, 0, false, 0)
	require.NoError(t, err)
	assert.Equal(t, bench.LocalSizes(), sizes)

	sizes, err = pickSizes(nil, 0, true, 5_000_000)
	require.NoError(t, err)
	assert.Equal(t, bench.DefaultScaleSizes(), sizes)

	sizes, err = pickSizes(nil, 250, true, 1000)
	require.NoError(t, err)
	assert.Equal(t, []int{250, 500, 750, 1000}, sizes)

	_, err = pickSizes([]int{0}, 0, false, 0)
	assert.ErrorIs(t, err, bench.ErrInvalidArgument)
	_, err = pickSizes(nil, 0, true, 0)
	assert.ErrorIs(t, err, bench.ErrInvalidArgument)
	_, err = pickSizes(nil, -5, false, 100)
	assert.ErrorIs(t, err, bench.ErrInvalidArgument)
}

func TestPickVariantsAndCases(t *testing.T) {
	variants, err := pickVariants([]string{"bst", " tst"})
	require.NoError(t, err)
	require.Len(t, variants, 2)
	assert.Equal(t, "bst", variants[0].Label)
	assert.Equal(t, "tst", variants[1].Label)

	_, err = pickVariants([]string{"avl"})
	assert.ErrorIs(t, err, bench.ErrInvalidArgument)

	cases, err := pickCases([]string{"worst", "average"})
	require.NoError(t, err)
	assert.Equal(t, []bench.Case{bench.Worst, bench.Average}, cases)

	_, err = pickCases([]string{"typical"})
	assert.ErrorIs(t, err, bench.ErrInvalidCase)
}

func TestRunWritesCSV(t *testing.T) {
	if _, err := os.Stat("/proc/self/stat"); errors.Is(err, os.ErrNotExist) {
		t.Skip("procfs not available")
	}
	dir := t.TempDir()

	err := newApp().Run([]string{"tstbench",
		"--sizes", "20", "--sizes", "40",
		"--repeat", "1",
		"--cases", "worst", "--cases", "best",
		"--out-dir", dir,
		"--name", "Test",
		"--log-level", "error",
	})
	require.NoError(t, err)

	b, err := os.ReadFile(filepath.Join(dir, "df_test.csv"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "case,size,tst_insert,tst_search,tst_ram,bst_insert,bst_search,bst_ram", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "worst,20,"))
	assert.True(t, strings.HasPrefix(lines[4], "best,40,"))
}

func TestRunRejectsBadLogLevel(t *testing.T) {
	err := newApp().Run([]string{"tstbench", "--log-level", "loud", "--out-dir", t.TempDir()})
	assert.ErrorIs(t, err, bench.ErrInvalidArgument)
}
