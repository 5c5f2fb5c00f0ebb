package emit

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"

	"github.com/go-pdf/fpdf"
	xdraw "golang.org/x/image/draw"

	"github.com/HazemIbrahim256/academyreport/layout"
)

// maxImageSide bounds the embedded raster resolution. Player photos come
// from phone cameras and are far larger than the few square centimeters
// they occupy on the page.
const maxImageSide = 512

// drawImage places an image file at an absolute position. A missing or
// undecodable file is skipped: a report renders without its photo rather
// than failing.
func (e *emitter) drawImage(in layout.Image) {
	data, err := os.ReadFile(in.Path)
	if err != nil {
		return
	}
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, downscale(src)); err != nil {
		return
	}

	opt := fpdf.ImageOptions{ImageType: "PNG"}
	e.pdf.RegisterImageOptionsReader(in.Path, opt, &buf)
	e.pdf.ImageOptions(in.Path, in.X, in.Y, in.W, in.H, false, opt, 0, "")
}

// downscale resizes an image whose longer side exceeds maxImageSide,
// keeping the aspect ratio.
func downscale(src image.Image) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxImageSide && h <= maxImageSide {
		return src
	}
	scale := float64(maxImageSide) / float64(w)
	if h > w {
		scale = float64(maxImageSide) / float64(h)
	}
	dst := image.NewRGBA(image.Rect(0, 0, int(float64(w)*scale), int(float64(h)*scale)))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, xdraw.Over, nil)
	return dst
}
