package emit

import (
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/go-pdf/fpdf/contrib/gofpdi"
)

// letterhead is the first page of an existing PDF, imported once as a
// template and drawn under every page of the report.
type letterhead struct {
	imp *gofpdi.Importer
	tpl int
}

// importLetterhead loads page 1 of the given PDF. The importer panics on
// missing or malformed files, so the failure is converted to an error.
func importLetterhead(pdf *fpdf.Fpdf, path string) (lh *letterhead, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("import %s: %v", path, r)
		}
	}()
	imp := gofpdi.NewImporter()
	tpl := imp.ImportPage(pdf, path, 1, "/MediaBox")
	return &letterhead{imp: imp, tpl: tpl}, nil
}

// draw stretches the template over the full current page.
func (l *letterhead) draw(pdf *fpdf.Fpdf) {
	pageW, pageH := pdf.GetPageSize()
	l.imp.UseImportedTemplate(pdf, l.tpl, 0, 0, pageW, pageH)
}
