// Package table renders evaluation tables into a PDF page.
//
// It provides column definitions with fixed or auto widths, header rows
// repeated after a page break, alternating row fills and style merging at
// table, row and cell level. Page breaks happen only between rows, never
// inside one, so a metric's value is never truncated across pages.
package table

// RGBColor represents an RGB color value.
type RGBColor struct {
	R, G, B int
}

// FontSpec defines font properties for cell text.
type FontSpec struct {
	Family string
	Style  string  // "", "B", "I", "BI"
	Size   float64 // in points
}

// Padding defines spacing inside a cell.
type Padding struct {
	Top, Right, Bottom, Left float64
}

// UniformPadding creates a Padding with the same value on all sides.
func UniformPadding(v float64) Padding {
	return Padding{Top: v, Right: v, Bottom: v, Left: v}
}

// BorderStyle defines the appearance of cell borders.
type BorderStyle struct {
	Width float64
	Color RGBColor
}

// CellStyle defines the visual appearance of a cell.
type CellStyle struct {
	FillColor *RGBColor
	TextColor *RGBColor
	Font      *FontSpec
	Align     string // "L", "C", "R"; empty means column default
}

// AlternateStyle defines alternating body row styles.
type AlternateStyle struct {
	Even CellStyle
	Odd  CellStyle
}

// Style defines the overall appearance of a table.
type Style struct {
	Border        *BorderStyle
	AlternateRows *AlternateStyle
	HeaderStyle   *CellStyle
	CellPadding   Padding
	CellFont      *FontSpec
}

// mergeStyle copies set fields from src over dst.
func mergeStyle(dst, src *CellStyle) {
	if src.FillColor != nil {
		dst.FillColor = src.FillColor
	}
	if src.TextColor != nil {
		dst.TextColor = src.TextColor
	}
	if src.Font != nil {
		dst.Font = src.Font
	}
	if src.Align != "" {
		dst.Align = src.Align
	}
}
