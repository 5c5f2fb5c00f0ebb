package table

import (
	"github.com/go-pdf/fpdf"
)

// ColumnDef defines the properties of a table column.
type ColumnDef struct {
	Width    float64 // fixed width; 0 means auto/fill
	MinWidth float64 // minimum width for auto columns
	MaxWidth float64 // maximum width for auto columns; 0 means unlimited
	Align    string  // default alignment for this column ("L", "C", "R")
}

// Table draws rows of cells onto an fpdf canvas.
type Table struct {
	pdf     *fpdf.Fpdf
	columns []ColumnDef
	rows    []*Row
	style   Style
	width   float64 // total table width; 0 means page width minus margins
}

// New creates a Table bound to the given canvas.
func New(pdf *fpdf.Fpdf) *Table {
	return &Table{
		pdf: pdf,
		style: Style{
			CellPadding: UniformPadding(1.5),
			Border:      &BorderStyle{Width: 0.2, Color: RGBColor{128, 128, 128}},
		},
	}
}

// SetColumns sets column definitions for the table.
func (t *Table) SetColumns(cols ...ColumnDef) *Table {
	t.columns = cols
	return t
}

// SetStyle sets the table-wide style.
func (t *Table) SetStyle(s Style) *Table {
	t.style = s
	return t
}

// SetWidth sets the total table width. Unset, the table spans the page
// width minus margins.
func (t *Table) SetWidth(w float64) *Table {
	t.width = w
	return t
}

// AddRow adds a data row and returns it for chaining.
func (t *Table) AddRow() *Row {
	r := &Row{}
	t.rows = append(t.rows, r)
	return r
}

// AddHeaderRow adds a header row, which is repeated at the top of the
// table after every page break.
func (t *Table) AddHeaderRow() *Row {
	r := &Row{isHeader: true}
	t.rows = append(t.rows, r)
	return r
}

// Render draws the table at the current cursor position.
func (t *Table) Render() error {
	if t.pdf.Err() {
		return t.pdf.Error()
	}

	widths := t.calculateWidths()
	startX := t.pdf.GetX()

	var headerRows, bodyRows []*Row
	for _, r := range t.rows {
		if r.isHeader {
			headerRows = append(headerRows, r)
		} else {
			bodyRows = append(bodyRows, r)
		}
	}

	for _, r := range headerRows {
		t.renderRow(r, widths, startX, -1)
	}

	_, pageH := t.pdf.GetPageSize()
	_, _, _, bMargin := t.pdf.GetMargins()

	for i, r := range bodyRows {
		// Break between rows only; a row is never split across pages.
		if t.pdf.GetY()+t.rowHeight(r, widths) > pageH-bMargin {
			t.pdf.AddPage()
			for _, hr := range headerRows {
				t.renderRow(hr, widths, startX, -1)
			}
		}
		t.renderRow(r, widths, startX, i)
	}

	return t.pdf.Error()
}

// calculateWidths computes final column widths from the definitions and
// the available space: fixed widths first, the remainder split across auto
// columns subject to their min/max.
func (t *Table) calculateWidths() []float64 {
	total := t.width
	if total == 0 {
		pageW, _ := t.pdf.GetPageSize()
		lMargin, _, rMargin, _ := t.pdf.GetMargins()
		total = pageW - lMargin - rMargin
	}

	numCols := len(t.columns)
	if numCols == 0 {
		if len(t.rows) > 0 {
			numCols = len(t.rows[0].cells)
		}
		if numCols == 0 {
			return nil
		}
		t.columns = make([]ColumnDef, numCols)
	}

	widths := make([]float64, numCols)
	fixed := 0.0
	autoCount := 0
	for i, col := range t.columns {
		if col.Width > 0 {
			widths[i] = col.Width
			fixed += col.Width
		} else {
			autoCount++
		}
	}

	if autoCount > 0 {
		remaining := total - fixed
		if remaining < 0 {
			remaining = 0
		}
		autoWidth := remaining / float64(autoCount)
		for i, col := range t.columns {
			if col.Width != 0 {
				continue
			}
			w := autoWidth
			if col.MinWidth > 0 && w < col.MinWidth {
				w = col.MinWidth
			}
			if col.MaxWidth > 0 && w > col.MaxWidth {
				w = col.MaxWidth
			}
			widths[i] = w
		}
	}

	return widths
}

// rowHeight computes the height needed for a row from its wrapped text.
func (t *Table) rowHeight(r *Row, widths []float64) float64 {
	maxH := 6.0 // minimum row height
	padding := t.style.CellPadding

	for i, cell := range r.cells {
		if i >= len(widths) {
			break
		}
		contentW := widths[i] - padding.Left - padding.Right
		if contentW < 1 {
			contentW = 1
		}
		lines := t.pdf.SplitLines([]byte(cell.text), contentW)
		_, fontH := t.pdf.GetFontSize()
		cellH := float64(len(lines))*fontH*1.4 + padding.Top + padding.Bottom
		if cellH > maxH {
			maxH = cellH
		}
	}
	return maxH
}

// renderRow draws a single row at the current Y position.
func (t *Table) renderRow(r *Row, widths []float64, startX float64, bodyIdx int) {
	rowH := t.rowHeight(r, widths)
	padding := t.style.CellPadding

	t.pdf.SetX(startX)
	y := t.pdf.GetY()

	for i, cell := range r.cells {
		if i >= len(widths) {
			break
		}
		cellW := widths[i]
		style := t.resolveCellStyle(cell, r, bodyIdx)
		x := t.pdf.GetX()

		if style.FillColor != nil {
			t.pdf.SetFillColor(style.FillColor.R, style.FillColor.G, style.FillColor.B)
			t.pdf.Rect(x, y, cellW, rowH, "F")
		}

		if t.style.Border != nil {
			bc := t.style.Border.Color
			t.pdf.SetDrawColor(bc.R, bc.G, bc.B)
			if t.style.Border.Width > 0 {
				t.pdf.SetLineWidth(t.style.Border.Width)
			}
			t.pdf.Rect(x, y, cellW, rowH, "D")
		}

		if style.TextColor != nil {
			t.pdf.SetTextColor(style.TextColor.R, style.TextColor.G, style.TextColor.B)
		}
		if style.Font != nil {
			t.pdf.SetFont(style.Font.Family, style.Font.Style, style.Font.Size)
		}

		align := t.cellAlign(cell, style, i)

		contentW := cellW - padding.Left - padding.Right
		t.pdf.SetXY(x+padding.Left, y+padding.Top)
		if t.pdf.GetStringWidth(cell.text) > contentW {
			_, fontH := t.pdf.GetFontSize()
			t.pdf.MultiCell(contentW, fontH*1.4, cell.text, "", align, false)
		} else {
			t.pdf.CellFormat(contentW, rowH-padding.Top-padding.Bottom,
				cell.text, "", 0, align, false, 0, "")
		}

		t.pdf.SetXY(x+cellW, y)
	}

	t.pdf.SetDrawColor(0, 0, 0)
	t.pdf.SetTextColor(0, 0, 0)

	t.pdf.SetXY(startX, y+rowH)
}

// cellAlign resolves alignment precedence: explicit cell or merged style,
// column default, then the RTL default.
func (t *Table) cellAlign(cell *Cell, style CellStyle, col int) string {
	if style.Align != "" {
		return style.Align
	}
	if col < len(t.columns) && t.columns[col].Align != "" {
		return t.columns[col].Align
	}
	if cell.rtl {
		return "R"
	}
	return "L"
}

// resolveCellStyle merges table, header, alternate-row, row and cell
// styles, in increasing priority.
func (t *Table) resolveCellStyle(cell *Cell, row *Row, bodyIdx int) CellStyle {
	var result CellStyle

	if t.style.CellFont != nil {
		result.Font = t.style.CellFont
	}
	if row.isHeader && t.style.HeaderStyle != nil {
		mergeStyle(&result, t.style.HeaderStyle)
	}
	if !row.isHeader && t.style.AlternateRows != nil && bodyIdx >= 0 {
		if bodyIdx%2 == 0 {
			mergeStyle(&result, &t.style.AlternateRows.Even)
		} else {
			mergeStyle(&result, &t.style.AlternateRows.Odd)
		}
	}
	if row.style != nil {
		mergeStyle(&result, row.style)
	}
	if cell.style != nil {
		mergeStyle(&result, cell.style)
	}
	return result
}
