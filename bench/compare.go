package bench

import (
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/e11jah/tstbench"
)

// Variant is a labelled tree constructor. The label prefixes its result
// columns: {label}_insert, {label}_search and {label}_ram.
type Variant struct {
	Label   string
	Factory tstbench.Factory
}

// Table is the column-oriented comparison result. Columns[0] is "size";
// each Row's Values line up with Columns[1:].
type Table struct {
	Columns []string
	Rows    []Row
}

type Row struct {
	Size   int
	Values []float64
}

type Option func(*options)

type options struct {
	gen    *Generator
	runner *Runner
	log    *zap.Logger
}

func WithGenerator(g *Generator) Option {
	return func(o *options) { o.gen = g }
}

func WithRunner(r *Runner) Option {
	return func(o *options) { o.runner = r }
}

func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.log = l }
}

// Compare generates one word list per size and runs every variant over that
// same list. Sizes are processed in the given order.
func Compare(sizes []int, variants []Variant, repeat int, c Case, opts ...Option) (*Table, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.gen == nil {
		o.gen = NewGenerator(DefaultSeed)
	}
	if o.runner == nil {
		o.runner = NewRunner(nil)
	}
	if o.log == nil {
		o.log = zap.NewNop()
	}

	if err := validate(sizes, variants, repeat, c); err != nil {
		return nil, err
	}

	table := newTable(variants)
	for _, size := range sizes {
		row := Row{Size: size, Values: make([]float64, 0, len(table.Columns)-1)}
		if len(variants) == 0 {
			table.Rows = append(table.Rows, row)
			continue
		}

		words, err := o.gen.Generate(size, c)
		if err != nil {
			return nil, fmt.Errorf("generate %d %s words: %w", size, c, err)
		}
		o.log.Info("benchmarking", zap.Int("size", size), zap.Stringer("case", c), zap.Int("repeat", repeat))

		for _, v := range variants {
			res, err := o.runner.Run(v.Factory, words, repeat)
			if err != nil {
				return nil, fmt.Errorf("%s at size %d: %w", v.Label, size, err)
			}
			row.Values = append(row.Values, res.Insert, res.Search, res.RAM)

			o.log.Info("variant done",
				zap.String("variant", v.Label),
				zap.Int("size", size),
				zap.Float64("insert_s", res.Insert),
				zap.Float64("search_s", res.Search),
				zap.Float64("ram_mb", res.RAM),
			)
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

func validate(sizes []int, variants []Variant, repeat int, c Case) error {
	if !c.valid() {
		return fmt.Errorf("%w: %q", ErrInvalidCase, string(c))
	}
	if repeat < 1 {
		return fmt.Errorf("%w: repeat %d", ErrInvalidArgument, repeat)
	}
	for _, size := range sizes {
		if size < 1 {
			return fmt.Errorf("%w: size %d", ErrInvalidArgument, size)
		}
	}

	seen := make(map[string]struct{}, len(variants))
	for _, v := range variants {
		if v.Label == "" {
			return fmt.Errorf("%w: empty variant label", ErrInvalidArgument)
		}
		if v.Factory == nil {
			return fmt.Errorf("%w: variant %q has no factory", ErrInvalidArgument, v.Label)
		}
		if _, ok := seen[v.Label]; ok {
			return fmt.Errorf("%w: duplicate variant %q", ErrInvalidArgument, v.Label)
		}
		seen[v.Label] = struct{}{}
	}
	return nil
}

func newTable(variants []Variant) *Table {
	cols := make([]string, 0, 1+len(variants)*len(metrics))
	cols = append(cols, SizeColumn)
	for _, v := range variants {
		for _, m := range metrics {
			cols = append(cols, ColumnName(v.Label, m))
		}
	}
	return &Table{Columns: cols, Rows: make([]Row, 0)}
}

// ColumnName is the stable result column for a variant's metric.
func ColumnName(label, metric string) string {
	return label + "_" + metric
}

// Get returns the value of column in row i. The size column is returned as
// a float as well.
func (t *Table) Get(i int, column string) (float64, bool) {
	if i < 0 || i >= len(t.Rows) {
		return 0, false
	}
	row := t.Rows[i]
	if column == SizeColumn {
		return float64(row.Size), true
	}
	for j, c := range t.Columns[1:] {
		if c == column && j < len(row.Values) {
			return row.Values[j], true
		}
	}
	return 0, false
}

// Records renders the table as a header line followed by one line per row.
func (t *Table) Records() [][]string {
	out := make([][]string, 0, len(t.Rows)+1)
	out = append(out, append([]string{}, t.Columns...))
	for _, row := range t.Rows {
		rec := make([]string, 0, len(row.Values)+1)
		rec = append(rec, strconv.Itoa(row.Size))
		for _, v := range row.Values {
			rec = append(rec, strconv.FormatFloat(v, 'g', -1, 64))
		}
		out = append(out, rec)
	}
	return out
}
