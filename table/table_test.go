package table_test

import (
	"bytes"
	"testing"

	"github.com/go-pdf/fpdf"

	"github.com/HazemIbrahim256/academyreport/table"
)

func newTestPDF() *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.AddPage()
	return pdf
}

func output(t *testing.T, pdf *fpdf.Fpdf) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		t.Fatalf("output: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("expected non-empty PDF output")
	}
	return buf.Bytes()
}

func TestBasicTable(t *testing.T) {
	pdf := newTestPDF()

	tb := table.New(pdf)
	tb.SetColumns(
		table.ColumnDef{Width: 100},
		table.ColumnDef{Align: "C"},
	)

	h := tb.AddHeaderRow()
	h.AddCell("Skill")
	h.AddCell("Rating")

	r := tb.AddRow()
	r.AddCell("Passing")
	r.AddCell("Good")

	r2 := tb.AddRow()
	r2.AddCell("Speed")
	r2.AddCell("Excellent")

	if err := tb.Render(); err != nil {
		t.Fatalf("render: %v", err)
	}

	out := output(t, pdf)
	t.Logf("basic table PDF: %d bytes", len(out))
}

func TestRTLCellDefaultsRight(t *testing.T) {
	pdf := newTestPDF()

	tb := table.New(pdf)
	tb.SetColumns(table.ColumnDef{}, table.ColumnDef{})

	r := tb.AddRow()
	r.AddCell("Speed")
	r.AddRTLCell("ﺔﻋﺮﺴﻟﺍ") // pre-shaped visual order

	if err := tb.Render(); err != nil {
		t.Fatalf("render: %v", err)
	}
	output(t, pdf)
}

func TestAutoWidthColumns(t *testing.T) {
	pdf := newTestPDF()

	tb := table.New(pdf)
	tb.SetColumns(
		table.ColumnDef{Width: 40},
		table.ColumnDef{MinWidth: 30},
		table.ColumnDef{},
	)

	r := tb.AddRow()
	r.AddCell("fixed")
	r.AddCell("auto with min")
	r.AddCell("auto")

	if err := tb.Render(); err != nil {
		t.Fatalf("render: %v", err)
	}
	output(t, pdf)
}

func TestHeaderRepeatsAcrossPages(t *testing.T) {
	pdf := newTestPDF()

	tb := table.New(pdf)
	tb.SetColumns(table.ColumnDef{Width: 60}, table.ColumnDef{})

	h := tb.AddHeaderRow()
	h.AddCell("Metric")
	h.AddCell("Value")
	h.SetStyle(table.CellStyle{
		FillColor: &table.RGBColor{R: 220, G: 220, B: 220},
		Font:      &table.FontSpec{Family: "Helvetica", Style: "B", Size: 10},
	})

	// Enough rows to force at least one page break between rows.
	for i := 0; i < 80; i++ {
		r := tb.AddRow()
		r.AddCell("Metric")
		r.AddCell("Value")
	}

	if err := tb.Render(); err != nil {
		t.Fatalf("render: %v", err)
	}
	if pdf.PageNo() < 2 {
		t.Errorf("expected a page break, still on page %d", pdf.PageNo())
	}
	output(t, pdf)
}

func TestAlternatingRowStyles(t *testing.T) {
	pdf := newTestPDF()

	tb := table.New(pdf)
	tb.SetColumns(table.ColumnDef{}, table.ColumnDef{})
	tb.SetStyle(table.Style{
		CellPadding: table.UniformPadding(2),
		Border:      &table.BorderStyle{Width: 0.2, Color: table.RGBColor{R: 128, G: 128, B: 128}},
		AlternateRows: &table.AlternateStyle{
			Even: table.CellStyle{FillColor: &table.RGBColor{R: 245, G: 245, B: 245}},
		},
	})

	for i := 0; i < 6; i++ {
		r := tb.AddRow()
		r.AddCell("label")
		r.AddCell("value")
	}

	if err := tb.Render(); err != nil {
		t.Fatalf("render: %v", err)
	}
	output(t, pdf)
}

func TestCellStyleOverride(t *testing.T) {
	pdf := newTestPDF()

	tb := table.New(pdf)
	tb.SetColumns(table.ColumnDef{Align: "C"}, table.ColumnDef{})

	r := tb.AddRow()
	r.AddCell("centered by column")
	r.AddCell("left").SetAlign("R")

	r2 := tb.AddRow()
	r2.SetStyle(table.CellStyle{TextColor: &table.RGBColor{R: 200, G: 0, B: 0}})
	r2.AddCell("row styled")
	r2.AddCell("x").SetStyle(table.CellStyle{
		FillColor: &table.RGBColor{R: 230, G: 230, B: 230},
	})

	if err := tb.Render(); err != nil {
		t.Fatalf("render: %v", err)
	}
	output(t, pdf)
}
