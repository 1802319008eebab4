package covariate

import "fmt"

// Column is one covariate measured on every unit of a group.
//
// Fields:
//   - Name  : optional label, used only in error messages.
//   - Kind  : how the covariate is compared; Auto infers it from data.
//   - Levels: level count for Kind == Cyclic; ignored otherwise.
//   - Values: raw cells, one per unit, aligned with the group order.
type Column struct {
	Name   string
	Kind   Kind
	Levels int
	Values Values
}

// NewColumn returns an Auto column.
func NewColumn(name string, values Values) Column {
	return Column{Name: name, Kind: Auto, Values: values}
}

// ContinuousColumn returns a Continuous column of real values.
func ContinuousColumn(name string, xs ...float64) Column {
	return Column{Name: name, Kind: Continuous, Values: Floats(xs...)}
}

// CyclicColumn returns a Cyclic column wrapping modulo levels.
// Values may be numeric level indices or labels.
func CyclicColumn(name string, levels int, values Values) Column {
	return Column{Name: name, Kind: Cyclic, Levels: levels, Values: values}
}

// CategoricalColumn returns a Categorical column.
func CategoricalColumn(name string, values Values) Column {
	return Column{Name: name, Kind: Categorical, Values: values}
}

// Len returns the number of cells.
func (c Column) Len() int { return len(c.Values) }

// Validate checks the column's own invariants.
func (c Column) Validate() error {
	if !c.Kind.Valid() {
		return c.errorf(ErrInvalidKind)
	}
	if len(c.Values) == 0 {
		return c.errorf(ErrEmptyColumn)
	}
	if c.Kind == Cyclic && c.Levels <= 0 {
		return c.errorf(ErrInvalidLevels)
	}

	return nil
}

func (c Column) errorf(err error) error {
	return fmt.Errorf("column %q: %w", c.Name, err)
}

// Table is a columnar covariate table: k columns of n cells each.
// A Table is immutable after construction.
type Table struct {
	cols []Column
	rows int
}

// NewTable validates and assembles columns into a Table.
//
// Errors:
//   - ErrNoColumns when called without columns.
//   - Column.Validate failures.
//   - ErrRaggedTable when column lengths differ.
func NewTable(cols ...Column) (*Table, error) {
	if len(cols) == 0 {
		return nil, ErrNoColumns
	}
	rows := cols[0].Len()
	own := make([]Column, len(cols))
	for i, c := range cols {
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("NewTable: %w", err)
		}
		if c.Len() != rows {
			return nil, fmt.Errorf("NewTable: column %d has %d cells, want %d: %w", i, c.Len(), rows, ErrRaggedTable)
		}
		c.Values = append(Values(nil), c.Values...)
		own[i] = c
	}

	return &Table{cols: own, rows: rows}, nil
}

// NewTableFromRows transposes row records into an Auto-kind Table.
// names may be nil; otherwise it must have one entry per column.
func NewTableFromRows(names []string, rows [][]any) (*Table, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrNoColumns
	}
	k := len(rows[0])
	if names != nil && len(names) != k {
		return nil, fmt.Errorf("NewTableFromRows: %d names for %d columns: %w", len(names), k, ErrRaggedTable)
	}
	cols := make([]Column, k)
	for j := range cols {
		cols[j].Values = make(Values, len(rows))
		if names != nil {
			cols[j].Name = names[j]
		}
	}
	for i, r := range rows {
		if len(r) != k {
			return nil, fmt.Errorf("NewTableFromRows: row %d has %d cells, want %d: %w", i, len(r), k, ErrRaggedTable)
		}
		for j, v := range r {
			cols[j].Values[i] = v
		}
	}

	return NewTable(cols...)
}

// NumRows returns the number of units.
func (t *Table) NumRows() int { return t.rows }

// NumColumns returns the number of covariates.
func (t *Table) NumColumns() int { return len(t.cols) }

// Column returns column i.
func (t *Table) Column(i int) (Column, error) {
	if i < 0 || i >= len(t.cols) {
		return Column{}, fmt.Errorf("Column(%d): %w", i, ErrColumnIndex)
	}

	return t.cols[i], nil
}
