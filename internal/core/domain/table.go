package domain

// Column describes a single result column as reported by the driver.
type Column struct {
	// Name is the column name or alias.
	Name string

	// Type is the declared database type (e.g., "INTEGER", "TEXT").
	// Empty for expressions without a declared type.
	Type string

	// Nullable reports whether the driver considers the column nullable.
	// False when the driver cannot tell.
	Nullable bool
}

// Row holds the raw driver values for one result row, in column order.
type Row []any

// Table is a fully materialised result set.
// Columns and Rows keep the order produced by the query.
type Table struct {
	// Columns describes the result columns.
	Columns []Column

	// Rows holds every row of the result set.
	Rows []Row
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// ColumnNames returns the column names in result order.
func (t *Table) ColumnNames() []string {
	if t == nil {
		return nil
	}
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// Strings returns every row with each value rendered by FormatValue.
func (t *Table) Strings() [][]string {
	if t == nil {
		return nil
	}
	out := make([][]string, len(t.Rows))
	for i, r := range t.Rows {
		out[i] = r.Strings()
	}
	return out
}

// Strings renders each value of the row with FormatValue.
func (r Row) Strings() []string {
	out := make([]string, len(r))
	for i, v := range r {
		out[i] = FormatValue(v)
	}
	return out
}
