package models

// Table is the display projection of a record set.
type Table struct {
	Title   string     `json:"title"`
	Columns []string   `json:"columns"`
	Rows    []TableRow `json:"rows"`
}

type TableRow struct {
	ID    string   `json:"id"`
	Cells []string `json:"cells"`
}

// NewTable takes its columns from the first record, leaving out formula and rollup
// properties, and formats every record against those columns.
func NewTable(title string, records []Record) *Table {
	t := &Table{Title: title, Columns: []string{}, Rows: []TableRow{}}
	if len(records) == 0 {
		return t
	}

	for _, np := range records[0].Properties {
		if np.Property != nil && (np.Property.Type == PropertyTypeFormula || np.Property.Type == PropertyTypeRollup) {
			continue
		}
		t.Columns = append(t.Columns, np.Name)
	}

	for i := range records {
		row := TableRow{ID: records[i].ID, Cells: make([]string, len(t.Columns))}
		for j, col := range t.Columns {
			row.Cells[j] = Format(records[i].Property(col))
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}
