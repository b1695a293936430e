package report

// Table is an ordered, named-column result produced by one derivation and
// consumed by exactly one chart. A table is never mutated after it is built.
type Table struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

// NewTable creates an empty table with the given column labels.
func NewTable(columns ...string) *Table {
	return &Table{Columns: columns, Rows: [][]any{}}
}

// Append adds one row. The caller is responsible for matching the column count;
// derivations build their own tables so the arity is fixed at each call site.
func (t *Table) Append(values ...any) {
	t.Rows = append(t.Rows, values)
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}
