package table

// Cell is a single cell in a table row. RTL cells hold text already in
// visual order (shaped upstream) and default to right alignment.
type Cell struct {
	text  string
	rtl   bool
	style *CellStyle
}

// SetStyle sets the style for this cell, overriding table and row defaults.
func (c *Cell) SetStyle(s CellStyle) *Cell {
	c.style = &s
	return c
}

// SetAlign sets the horizontal alignment for this cell.
func (c *Cell) SetAlign(align string) *Cell {
	if c.style == nil {
		c.style = &CellStyle{}
	}
	c.style.Align = align
	return c
}

// Row is a single row in a table.
type Row struct {
	cells    []*Cell
	style    *CellStyle
	isHeader bool
}

// AddCell adds a left-to-right text cell and returns it for chaining.
func (r *Row) AddCell(text string) *Cell {
	c := &Cell{text: text}
	r.cells = append(r.cells, c)
	return c
}

// AddRTLCell adds a right-to-left text cell. The text must already be in
// visual order; the cell is right-aligned unless overridden.
func (r *Row) AddRTLCell(text string) *Cell {
	c := &Cell{text: text, rtl: true}
	r.cells = append(r.cells, c)
	return c
}

// SetStyle sets the style for all cells in this row.
func (r *Row) SetStyle(s CellStyle) *Row {
	r.style = &s
	return r
}
