package emit

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

// qrImageName keys the registered footer QR raster.
const qrImageName = "report-reference-qr"

// qrFooterSide is the drawn size of the footer QR square in millimeters.
const qrFooterSide = 12.0

func (e *emitter) registerQR(png []byte) {
	opt := fpdf.ImageOptions{ImageType: "PNG"}
	e.pdf.RegisterImageOptionsReader(qrImageName, opt, bytes.NewReader(png))
}

// footer draws the page number centered in the bottom strip, with the
// report reference and its QR code when the document carries one.
func (e *emitter) footer() {
	pdf := e.pdf
	pageW, pageH := pdf.GetPageSize()

	pdf.SetFont(e.family, "", 8)
	pdf.SetTextColor(120, 120, 120)

	pdf.SetY(-(marginBottom - 4))
	pdf.CellFormat(0, 4, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")

	if e.reference != "" {
		pdf.ImageOptions(qrImageName,
			pageW-marginRight-qrFooterSide, pageH-qrFooterSide-2,
			qrFooterSide, qrFooterSide,
			false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
		pdf.SetXY(marginLeft, pageH-(marginBottom-4))
		pdf.CellFormat(0, 4, e.reference, "", 0, "L", false, 0, "")
	}

	pdf.SetTextColor(0, 0, 0)
}

// drawWatermark renders the watermark text rotated across the page
// center, beneath the content drawn after it.
func (e *emitter) drawWatermark() {
	if e.watermark == "" {
		return
	}
	pdf := e.pdf

	pdf.SetFont(e.family, "B", 60)
	pdf.SetTextColor(200, 200, 200)
	pdf.SetAlpha(0.3, "Normal")

	pageW, pageH := pdf.GetPageSize()
	cx, cy := pageW/2, pageH/2
	textW := pdf.GetStringWidth(e.watermark)

	pdf.TransformBegin()
	pdf.TransformRotate(45, cx, cy)
	pdf.Text(cx-textW/2, cy+7, e.watermark)
	pdf.TransformEnd()

	pdf.SetAlpha(1, "Normal")
	pdf.SetTextColor(0, 0, 0)
}
