// Package report persists comparison tables as CSV and prints them for humans.
package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/e11jah/tstbench/bench"
)

const caseColumn = "case"

var ErrColumnMismatch = errors.New("case tables have different columns")

// CaseTable is one comparison run labelled with the case it was run for.
type CaseTable struct {
	Case  bench.Case
	Table *bench.Table
}

// FileName is the CSV name a run by name is stored under.
func FileName(name string) string {
	return "df_" + strings.ToLower(name) + ".csv"
}

// Save writes tables into dir/FileName(name), creating dir when needed, and
// returns the written path.
func Save(dir, name string, tables []CaseTable) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	path := filepath.Join(dir, FileName(name))
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteCSV(f, tables); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, f.Close()
}

// WriteCSV writes one header and then every row of every table, each row
// prefixed with its case.
func WriteCSV(w io.Writer, tables []CaseTable) error {
	cw := csv.NewWriter(w)
	var header []string
	for _, ct := range tables {
		records := ct.Table.Records()
		if header == nil {
			header = records[0]
			if err := cw.Write(append([]string{caseColumn}, header...)); err != nil {
				return err
			}
		} else if !slices.Equal(header, records[0]) {
			return fmt.Errorf("%w: %s", ErrColumnMismatch, ct.Case)
		}

		for _, rec := range records[1:] {
			if err := cw.Write(append([]string{ct.Case.String()}, rec...)); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// Summary prints a table as aligned columns.
func Summary(w io.Writer, ct CaseTable) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "%s case\t\n", ct.Case)
	for _, rec := range ct.Table.Records() {
		fmt.Fprintln(tw, strings.Join(rec, "\t")+"\t")
	}
	return tw.Flush()
}
