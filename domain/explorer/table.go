package explorer

import (
	"sort"
)

// Table is an ordered collection of rows keyed by column name. Columns keep
// the order in which they were first written.
type Table struct {
	columns []string
	index   map[string]int
	rows    []map[string]Cell
}

// NewTable returns a table with the given columns registered up front.
func NewTable(columns ...string) *Table {
	t := &Table{index: make(map[string]int)}
	for _, c := range columns {
		t.register(c)
	}
	return t
}

func (t *Table) register(col string) {
	if _, ok := t.index[col]; ok {
		return
	}
	t.index[col] = len(t.columns)
	t.columns = append(t.columns, col)
}

// Columns returns the column names in order.
func (t *Table) Columns() []string {
	out := make([]string, len(t.columns))
	copy(out, t.columns)
	return out
}

// HasColumn reports whether col is registered.
func (t *Table) HasColumn(col string) bool {
	_, ok := t.index[col]
	return ok
}

func (t *Table) Len() int { return len(t.rows) }

// Row is a handle on one row of a table.
type Row struct {
	t *Table
	i int
}

// NewRow appends an empty row.
func (t *Table) NewRow() Row {
	t.rows = append(t.rows, make(map[string]Cell))
	return Row{t: t, i: len(t.rows) - 1}
}

// Row returns the handle for row i.
func (t *Table) Row(i int) Row { return Row{t: t, i: i} }

// Index is the row position within its table.
func (r Row) Index() int { return r.i }

// Set assigns a value (see CellOf) and returns the row for chaining.
func (r Row) Set(col string, v any) Row {
	r.t.register(col)
	r.t.rows[r.i][col] = CellOf(v)
	return r
}

// Get returns the cell at col, Empty when unset.
func (r Row) Get(col string) Cell { return r.t.rows[r.i][col] }

// Str returns the rendered value at col.
func (r Row) Str(col string) string { return r.Get(col).String() }

// Get returns the cell at row i, column col.
func (t *Table) Get(i int, col string) Cell { return t.rows[i][col] }

// Column returns the rendered values of one column.
func (t *Table) Column(col string) []string {
	out := make([]string, len(t.rows))
	for i, row := range t.rows {
		out[i] = row[col].String()
	}
	return out
}

// SetAll assigns v to col on every row.
func (t *Table) SetAll(col string, v any) *Table {
	return t.SetFrom(0, col, v)
}

// SetFrom assigns v to col on every row at or after start.
func (t *Table) SetFrom(start int, col string, v any) *Table {
	t.register(col)
	c := CellOf(v)
	for i := start; i < len(t.rows); i++ {
		t.rows[i][col] = c
	}
	return t
}

// SetWhere assigns v to col on rows matching pred. The column is registered
// even when nothing matches.
func (t *Table) SetWhere(pred func(Row) bool, col string, v any) *Table {
	t.register(col)
	c := CellOf(v)
	for i := range t.rows {
		if pred(Row{t: t, i: i}) {
			t.rows[i][col] = c
		}
	}
	return t
}

// Filter returns a new table holding copies of the rows matching pred, with
// the same columns.
func (t *Table) Filter(pred func(Row) bool) *Table {
	out := NewTable(t.columns...)
	for i, row := range t.rows {
		if pred(Row{t: t, i: i}) {
			out.rows = append(out.rows, cloneRow(row))
		}
	}
	return out
}

// Drop returns a copy without the named columns.
func (t *Table) Drop(cols ...string) *Table {
	skip := make(map[string]bool, len(cols))
	for _, c := range cols {
		skip[c] = true
	}
	out := NewTable()
	for _, c := range t.columns {
		if !skip[c] {
			out.register(c)
		}
	}
	for _, row := range t.rows {
		nr := make(map[string]Cell, len(row))
		for k, v := range row {
			if !skip[k] {
				nr[k] = v
			}
		}
		out.rows = append(out.rows, nr)
	}
	return out
}

// Copy returns a deep copy of the table.
func (t *Table) Copy() *Table {
	return t.Filter(func(Row) bool { return true })
}

// Concat stacks tables vertically. Columns are the union in first-seen order.
func Concat(tables ...*Table) *Table {
	out := NewTable()
	for _, t := range tables {
		for _, c := range t.columns {
			out.register(c)
		}
		for _, row := range t.rows {
			out.rows = append(out.rows, cloneRow(row))
		}
	}
	return out
}

// Append adds copies of other's rows to t, registering new columns at the end.
func (t *Table) Append(other *Table) *Table {
	for _, c := range other.columns {
		t.register(c)
	}
	for _, row := range other.rows {
		t.rows = append(t.rows, cloneRow(row))
	}
	return t
}

// SortStable reorders rows by less, keeping the relative order of equal rows.
func (t *Table) SortStable(less func(a, b Row) bool) {
	idx := make([]int, len(t.rows))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return less(Row{t: t, i: idx[a]}, Row{t: t, i: idx[b]})
	})
	sorted := make([]map[string]Cell, len(t.rows))
	for pos, i := range idx {
		sorted[pos] = t.rows[i]
	}
	t.rows = sorted
}

// Records renders the table as a header record followed by one record per row.
func (t *Table) Records() [][]string {
	out := make([][]string, 0, len(t.rows)+1)
	out = append(out, t.Columns())
	for _, row := range t.rows {
		rec := make([]string, len(t.columns))
		for j, c := range t.columns {
			rec[j] = row[c].String()
		}
		out = append(out, rec)
	}
	return out
}

func cloneRow(row map[string]Cell) map[string]Cell {
	nr := make(map[string]Cell, len(row))
	for k, v := range row {
		nr[k] = v
	}
	return nr
}
