package report

// Table is a named set of labelled rows sharing one header.
// Failed lists the labels of rows whose operation returned an error; CSV
// output does not carry it.
type Table struct {
	Name   string     `json:"name" yaml:"name" toml:"name"`
	Header []string   `json:"header" yaml:"header" toml:"header"`
	Rows   [][]string `json:"rows" yaml:"rows" toml:"rows"`
	Failed []string   `json:"failed,omitempty" yaml:"failed,omitempty" toml:"failed,omitempty"`
}

// NewTable returns an empty table with the given file stem and header.
func NewTable(name string, header ...string) *Table {
	return &Table{Name: name, Header: header, Rows: [][]string{}}
}

// Add appends the row (label, cells...).
func (t *Table) Add(label string, cells ...string) {
	row := make([]string, 0, len(cells)+1)
	row = append(row, label)
	row = append(row, cells...)
	t.Rows = append(t.Rows, row)
}

// addOutcome appends (label, cell), or the error text when err is non-nil,
// marking the row failed.
func (t *Table) addOutcome(label, cell string, err error) {
	if err != nil {
		t.Add(label, errorCell(err))
		t.Failed = append(t.Failed, label)
		return
	}
	t.Add(label, cell)
}

// Lookup returns the cells after the label of the first row labelled label.
func (t *Table) Lookup(label string) ([]string, bool) {
	for _, r := range t.Rows {
		if len(r) > 0 && r[0] == label {
			return r[1:], true
		}
	}

	return nil, false
}
