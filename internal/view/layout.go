package view

// Column is one displayed field of a table.
type Column struct {
	Title string
	Field string
	Width int
}

// Layout describes how a collection is tabulated: its columns, the fields
// offered as filters and the fields offered as sort keys.
type Layout struct {
	Columns []Column
	Filters []string
	Sorts   []string
}

// Header returns the column titles.
func (l Layout) Header() []string {
	out := make([]string, 0, len(l.Columns))
	for _, c := range l.Columns {
		out = append(out, c.Title)
	}
	return out
}

// Widths returns the column widths.
func (l Layout) Widths() []int {
	out := make([]int, 0, len(l.Columns))
	for _, c := range l.Columns {
		out = append(out, c.Width)
	}
	return out
}

// Cells renders e's value for every column.
func (l Layout) Cells(e Entity) []string {
	out := make([]string, 0, len(l.Columns))
	for _, c := range l.Columns {
		v, _ := e.Field(c.Field)
		out = append(out, Text(v))
	}
	return out
}
