package emit

import (
	"bytes"
	"image/png"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"
)

// qrSide is the rendered QR resolution in pixels. The code occupies a
// 12mm footer square, so a modest raster is plenty.
const qrSide = 192

// qrPNG renders the report reference as a QR code PNG, used as the
// machine-readable verification mark in the page footer.
func qrPNG(payload string) ([]byte, error) {
	code, err := qr.Encode(payload, qr.M, qr.Auto)
	if err != nil {
		return nil, err
	}
	scaled, err := barcode.Scale(code, qrSide, qrSide)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
