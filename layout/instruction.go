// Package layout turns a report document tree into a flat sequence of
// drawing instructions for the PDF emitter.
//
// Direction is resolved here, once: right-to-left runs arrive at the
// emitter already shaped into visual order, so the emitter never inspects
// text. Pagination is greedy: a section is kept together when it fits in
// the remaining page height and is otherwise moved to a fresh page; a
// section taller than a whole page splits between rows, never inside one.
package layout

// Text is a piece of text ready to draw. For right-to-left text, Content
// is in visual order and RTL requests right alignment.
type Text struct {
	Content string
	RTL     bool
}

// Instruction is one drawing step. The concrete set is closed; the emitter
// rejects nothing from this package short of an internal invariant
// violation.
type Instruction interface {
	isInstruction()
}

// PageBreak starts a new page.
type PageBreak struct{}

// Spacer advances the cursor by Height (in millimeters).
type Spacer struct {
	Height float64
}

// Heading is a titled block. Level 1 is the document title; levels 2 and 3
// are section headings.
type Heading struct {
	Text  Text
	Level int
	Align string // "L", "C", "R"; empty means "L"
}

// Paragraph is a body text block.
type Paragraph struct {
	Text  Text
	Align string
}

// TableRow is one label/value line of a section table.
type TableRow struct {
	Label Text
	Value Text
}

// Table draws a section's rows as a two-column table with a header row.
type Table struct {
	HeaderLabel string
	HeaderValue string
	Rows        []TableRow
}

// Image places an image at an absolute position, in millimeters. Used for
// the header logo and player photo.
type Image struct {
	Path       string
	X, Y, W, H float64
}

// QRCode asks the emitter to draw the machine-readable report reference in
// the page footer.
type QRCode struct {
	Payload string
}

// Watermark is drawn across every page, used for preliminary reports.
type Watermark struct {
	Text string
}

func (PageBreak) isInstruction() {}
func (Spacer) isInstruction()    {}
func (Heading) isInstruction()   {}
func (Paragraph) isInstruction() {}
func (Table) isInstruction()     {}
func (Image) isInstruction()     {}
func (QRCode) isInstruction()    {}
func (Watermark) isInstruction() {}
