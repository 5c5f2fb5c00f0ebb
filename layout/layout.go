package layout

import (
	"strings"

	"github.com/HazemIbrahim256/academyreport/fonts"
	"github.com/HazemIbrahim256/academyreport/report"
	"github.com/HazemIbrahim256/academyreport/script"
)

// Page geometry in millimeters (A4 portrait).
const (
	pageHeight   = 297.0
	marginTop    = 15.0
	marginBottom = 18.0 // leaves room for the footer strip
	contentTop   = marginTop
	contentMax   = pageHeight - marginBottom
)

// Nominal block heights used for greedy pagination. The emitter draws with
// matching metrics, so estimates stay aligned with actual output.
const (
	titleHeight    = 12.0
	headingHeight  = 8.0
	lineHeight     = 6.0
	rowHeight      = 7.0
	sectionSpacing = 4.0
	headerImageH   = 28.0
)

// Result carries the instruction sequence and out-of-band render metadata.
// Degraded is set when the resolved font cannot cover a script the
// document needs; layout still proceeds with the best available font so
// the caller can warn instead of failing.
type Result struct {
	Instructions []Instruction
	Degraded     bool
}

// Layout walks the document and produces drawing instructions.
func Layout(doc *report.Document, font *fonts.Font) (*Result, error) {
	res := &Result{Degraded: font.Degraded || missingScript(doc, font)}

	l := &layouter{res: res, y: contentTop}

	if doc.Meta.Preliminary {
		l.add(Watermark{Text: "PRELIMINARY"})
	}
	if doc.Meta.Reference != "" {
		l.add(QRCode{Payload: doc.Meta.Reference})
	}

	l.header(doc)

	for _, s := range doc.Sections {
		l.section(s)
	}

	for _, fn := range doc.Footnotes {
		l.ensure(headingHeight)
		l.add(Heading{Text: renderRun(fn), Level: 3, Align: "R"})
		l.y += headingHeight
	}

	return res, nil
}

type layouter struct {
	res *Result
	y   float64
}

func (l *layouter) add(in Instruction) {
	l.res.Instructions = append(l.res.Instructions, in)
}

// ensure breaks the page when h does not fit in the remaining height.
func (l *layouter) ensure(h float64) {
	if l.y+h > contentMax {
		l.add(PageBreak{})
		l.y = contentTop
	}
}

// header lays out the title block: logo on the left, title and detail
// lines in the middle, player photo on the right.
func (l *layouter) header(doc *report.Document) {
	if doc.Meta.LogoPath != "" {
		l.add(Image{Path: doc.Meta.LogoPath, X: 15, Y: marginTop, W: 20, H: 20})
	}
	if doc.Meta.PhotoPath != "" {
		l.add(Image{Path: doc.Meta.PhotoPath, X: 165, Y: marginTop, W: 30, H: 30})
	}

	// The title block is centered between the absolutely positioned
	// logo and photo.
	l.add(Heading{Text: renderRun(doc.Title), Level: 1, Align: "C"})
	l.y += titleHeight

	if doc.Subtitle.Content != "" {
		l.add(Heading{Text: renderRun(doc.Subtitle), Level: 2, Align: "C"})
		l.y += headingHeight
	}
	for _, d := range doc.Details {
		l.add(Paragraph{Text: renderRun(d), Align: "C"})
		l.y += lineHeight
	}

	// Keep flowed text clear of the absolutely positioned images.
	if doc.Meta.LogoPath != "" || doc.Meta.PhotoPath != "" {
		if l.y < contentTop+headerImageH {
			l.add(Spacer{Height: contentTop + headerImageH - l.y})
			l.y = contentTop + headerImageH
		}
	}
	l.add(Spacer{Height: sectionSpacing})
	l.y += sectionSpacing
}

// section lays out one section heading and its table. When the whole
// section fits on a fresh page but not in the remaining space, it moves to
// a new page; taller sections flow and split between rows.
func (l *layouter) section(s report.Section) {
	sectionH := headingHeight + rowHeight*float64(len(s.Rows)+1) + sectionSpacing
	if l.y+sectionH > contentMax && sectionH <= contentMax-contentTop {
		l.add(PageBreak{})
		l.y = contentTop
	}

	l.add(Heading{Text: renderRun(s.Heading), Level: 3})
	l.y += headingHeight

	tbl := Table{HeaderLabel: "Skill", HeaderValue: "Rating"}
	for _, r := range s.Rows {
		tbl.Rows = append(tbl.Rows, TableRow{
			Label: renderRun(r.Label),
			Value: renderRun(r.Value),
		})
	}
	l.add(tbl)

	// Mirror the table's own row pagination to keep the cursor honest.
	l.y += rowHeight // header row
	for range s.Rows {
		if l.y+rowHeight > contentMax {
			l.y = contentTop + rowHeight // new page plus repeated header
		}
		l.y += rowHeight
	}

	l.add(Spacer{Height: sectionSpacing})
	l.y += sectionSpacing
}

// renderRun resolves a text run into drawable form. Latin passes through;
// Arabic is shaped into visual order and right-aligned; Mixed runs keep
// left-to-right paragraph flow with each Arabic segment shaped in place.
func renderRun(r report.TextRun) Text {
	switch r.Script {
	case script.Arabic:
		return Text{Content: script.Shape(r.Content), RTL: true}
	case script.Mixed:
		var b strings.Builder
		for _, seg := range script.Segments(r.Content) {
			if seg.RTL {
				b.WriteString(script.Shape(seg.Text))
			} else {
				b.WriteString(seg.Text)
			}
		}
		return Text{Content: b.String()}
	default:
		return Text{Content: r.Content}
	}
}

// missingScript reports whether any run in the document needs a script the
// font does not cover.
func missingScript(doc *report.Document, font *fonts.Font) bool {
	runs := []report.TextRun{doc.Title, doc.Subtitle}
	runs = append(runs, doc.Details...)
	runs = append(runs, doc.Footnotes...)
	for _, s := range doc.Sections {
		runs = append(runs, s.Heading)
		for _, r := range s.Rows {
			runs = append(runs, r.Label, r.Value)
		}
	}
	for _, r := range runs {
		if r.Content == "" {
			continue
		}
		if !font.SupportsScript(r.Script) {
			return true
		}
	}
	return false
}
