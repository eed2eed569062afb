package reader

// Dataset is a fully parsed table of text cells in file order
type Dataset struct {
	rows  [][]string
	width int
}

// NewDataset wraps rows and records the widest row
func NewDataset(rows [][]string) *Dataset {
	ds := &Dataset{rows: rows}
	for _, row := range rows {
		if len(row) > ds.width {
			ds.width = len(row)
		}
	}
	return ds
}

// Len returns the number of rows
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.rows)
}

// Width returns the number of fields in the widest row
func (d *Dataset) Width() int {
	if d == nil {
		return 0
	}
	return d.width
}

// Row returns the fields of row i, or nil when i is out of range
func (d *Dataset) Row(i int) []string {
	if d == nil || i < 0 || i >= len(d.rows) {
		return nil
	}
	return d.rows[i]
}

// Rows returns all rows
func (d *Dataset) Rows() [][]string {
	if d == nil {
		return nil
	}
	return d.rows
}
