// Package emit turns a layout instruction sequence into PDF bytes.
//
// The emitter is deliberately dumb: direction, shaping and pagination are
// decided by the layout package, so every instruction maps to a handful
// of canvas calls. Page-wide decorations (letterhead, watermark, footer
// with the QR verification mark) hook into the canvas page callbacks and
// repeat on every page the content flows onto.
package emit

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/HazemIbrahim256/academyreport/fonts"
	"github.com/HazemIbrahim256/academyreport/layout"
	"github.com/HazemIbrahim256/academyreport/table"
)

// Page geometry in millimeters (A4 portrait). Block heights mirror the
// estimates the layout package paginates with.
const (
	marginLeft   = 15.0
	marginTop    = 15.0
	marginRight  = 15.0
	marginBottom = 18.0

	titleHeight   = 12.0
	headingHeight = 8.0
	lineHeight    = 6.0
)

// Options configures a single emit run.
type Options struct {
	// CreatedAt is stamped as both creation and modification date so
	// identical input produces identical bytes. Zero means the Unix
	// epoch.
	CreatedAt time.Time

	// LetterheadPath names an existing PDF whose first page is drawn
	// under every page of the report. Empty disables the letterhead.
	LetterheadPath string
}

// Stats reports what an emit run produced.
type Stats struct {
	Pages int
}

// Emit renders the instruction sequence to w using the resolved font.
func Emit(w io.Writer, res *layout.Result, f *fonts.Font, opts Options) (Stats, error) {
	if res == nil {
		return Stats{}, newRenderError("Emit", ErrNilResult)
	}
	if f == nil {
		return Stats{}, newRenderError("Emit", ErrNilFont)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCatalogSort(true)

	created := opts.CreatedAt
	if created.IsZero() {
		created = time.Unix(0, 0).UTC()
	}
	pdf.SetCreationDate(created)
	pdf.SetModificationDate(created)

	pdf.SetMargins(marginLeft, marginTop, marginRight)
	pdf.SetAutoPageBreak(true, marginBottom)

	e := &emitter{pdf: pdf, family: f.Family}
	if !f.Core() {
		pdf.AddUTF8FontFromBytes(f.Family, "", f.Data)
		pdf.AddUTF8FontFromBytes(f.Family, "B", f.Data)
	}

	// Page-wide marks apply to every page, so they are lifted out of the
	// instruction stream before any page exists.
	for _, in := range res.Instructions {
		switch v := in.(type) {
		case layout.Watermark:
			e.watermark = v.Text
		case layout.QRCode:
			e.reference = v.Payload
		}
	}
	if e.reference != "" {
		png, err := qrPNG(e.reference)
		if err != nil {
			return Stats{}, newRenderError("qr", err)
		}
		e.registerQR(png)
	}
	if opts.LetterheadPath != "" {
		lh, err := importLetterhead(pdf, opts.LetterheadPath)
		if err != nil {
			return Stats{}, newRenderError("letterhead", err)
		}
		e.letterhead = lh
	}

	pdf.SetHeaderFunc(func() {
		if e.letterhead != nil {
			e.letterhead.draw(pdf)
		}
		e.drawWatermark()
	})
	pdf.SetFooterFunc(e.footer)
	pdf.AddPage()

	for _, in := range res.Instructions {
		if err := e.emit(in); err != nil {
			return Stats{}, err
		}
	}

	if pdf.Err() {
		return Stats{}, newRenderError("render", pdf.Error())
	}
	stats := Stats{Pages: pdf.PageNo()}
	if err := pdf.Output(w); err != nil {
		return Stats{}, newRenderError("write", err)
	}
	return stats, nil
}

type emitter struct {
	pdf        *fpdf.Fpdf
	family     string
	watermark  string
	reference  string
	letterhead *letterhead
}

func (e *emitter) emit(in layout.Instruction) error {
	switch v := in.(type) {
	case layout.Watermark, layout.QRCode:
		// Handled page-wide during setup.
	case layout.PageBreak:
		e.pdf.AddPage()
	case layout.Spacer:
		e.pdf.Ln(v.Height)
	case layout.Heading:
		e.heading(v)
	case layout.Paragraph:
		e.paragraph(v)
	case layout.Table:
		return e.table(v)
	case layout.Image:
		e.drawImage(v)
	default:
		return newRenderError("emit", fmt.Errorf("%w: %T", ErrBadInstruction, in))
	}
	if e.pdf.Err() {
		return newRenderError("emit", e.pdf.Error())
	}
	return nil
}

func (e *emitter) heading(h layout.Heading) {
	size, height := 11.0, headingHeight
	switch h.Level {
	case 1:
		size, height = 16, titleHeight
	case 2:
		size = 13
	}
	e.pdf.SetFont(e.family, "B", size)
	e.pdf.CellFormat(0, height, h.Text.Content, "", 1, align(h.Align, h.Text), false, 0, "")
}

func (e *emitter) paragraph(p layout.Paragraph) {
	e.pdf.SetFont(e.family, "", 10)
	e.pdf.CellFormat(0, lineHeight, p.Text.Content, "", 1, align(p.Align, p.Text), false, 0, "")
}

// align resolves the drawing alignment: an explicit request wins, then
// right-to-left text right-aligns.
func align(explicit string, t layout.Text) string {
	if explicit != "" {
		return explicit
	}
	if t.RTL {
		return "R"
	}
	return "L"
}

func (e *emitter) table(t layout.Table) error {
	e.pdf.SetFont(e.family, "", 10)

	grey := table.RGBColor{R: 230, G: 230, B: 230}
	tbl := table.New(e.pdf)
	tbl.SetStyle(table.Style{
		CellPadding: table.UniformPadding(1.0),
		Border:      &table.BorderStyle{Width: 0.2, Color: table.RGBColor{R: 128, G: 128, B: 128}},
		HeaderStyle: &table.CellStyle{
			FillColor: &grey,
			Font:      &table.FontSpec{Family: e.family, Style: "B", Size: 10},
		},
		CellFont: &table.FontSpec{Family: e.family, Size: 10},
	})
	tbl.SetColumns(
		table.ColumnDef{},
		table.ColumnDef{Width: 60, Align: "C"},
	)

	hdr := tbl.AddHeaderRow()
	hdr.AddCell(t.HeaderLabel)
	hdr.AddCell(t.HeaderValue)

	for _, r := range t.Rows {
		row := tbl.AddRow()
		addCell(row, r.Label)
		addCell(row, r.Value)
	}

	if err := tbl.Render(); err != nil {
		return newRenderError("table", err)
	}
	return nil
}

func addCell(row *table.Row, t layout.Text) {
	if t.RTL {
		row.AddRTLCell(t.Content)
	} else {
		row.AddCell(t.Content)
	}
}
