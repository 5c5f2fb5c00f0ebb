package emit

import (
	"bytes"
	"errors"
	"image/png"
	"path/filepath"
	"testing"
	"time"

	"github.com/HazemIbrahim256/academyreport/fonts"
	"github.com/HazemIbrahim256/academyreport/layout"
	"github.com/HazemIbrahim256/academyreport/report"
)

var testTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func layoutPlayer(t *testing.T, p report.Player, evals []report.Evaluation) (*layout.Result, *fonts.Font) {
	t.Helper()
	doc, err := report.BuildPlayerReport(p, evals, testTime)
	if err != nil {
		t.Fatal(err)
	}
	f := fonts.Load(t.TempDir())
	res, err := layout.Layout(doc, f)
	if err != nil {
		t.Fatal(err)
	}
	return res, f
}

func TestEmitPlayerReport(t *testing.T) {
	res, f := layoutPlayer(t, report.Player{ID: 7, Name: "Ahmad"}, nil)

	var buf bytes.Buffer
	stats, err := Emit(&buf, res, f, Options{CreatedAt: testTime})
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Error("output does not start with PDF header")
	}
	if stats.Pages < 1 {
		t.Errorf("pages = %d, want at least 1", stats.Pages)
	}
	t.Logf("generated player report PDF: %d bytes, %d pages", buf.Len(), stats.Pages)
}

func TestEmitDeterministic(t *testing.T) {
	render := func() []byte {
		res, f := layoutPlayer(t, report.Player{ID: 7, Name: "أحمد"}, nil)
		var buf bytes.Buffer
		if _, err := Emit(&buf, res, f, Options{CreatedAt: testTime}); err != nil {
			t.Fatalf("Emit: %v", err)
		}
		return buf.Bytes()
	}

	a, b := render(), render()
	if !bytes.Equal(a, b) {
		t.Error("identical input produced different bytes")
	}
}

func TestEmitGroupReportPaginates(t *testing.T) {
	g := report.Group{ID: 3, Name: "U14-A", Coach: "Omar"}
	for i := 0; i < 8; i++ {
		g.Players = append(g.Players, report.Player{ID: int64(i + 1), Name: string(rune('A' + i))})
	}
	doc, err := report.BuildGroupReport(g, nil, testTime, nil)
	if err != nil {
		t.Fatal(err)
	}

	f := fonts.Load(t.TempDir())
	res, err := layout.Layout(doc, f)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	stats, err := Emit(&buf, res, f, Options{CreatedAt: testTime})
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if stats.Pages < 2 {
		t.Errorf("pages = %d, want at least 2 for an 8-player group", stats.Pages)
	}
	t.Logf("generated group report PDF: %d bytes, %d pages", buf.Len(), stats.Pages)
}

func TestEmitSkipsMissingPhoto(t *testing.T) {
	p := report.Player{
		ID:        7,
		Name:      "Ahmad",
		PhotoPath: filepath.Join(t.TempDir(), "missing.jpg"),
	}
	res, f := layoutPlayer(t, p, nil)

	var buf bytes.Buffer
	if _, err := Emit(&buf, res, f, Options{CreatedAt: testTime}); err != nil {
		t.Fatalf("missing photo must not fail the render: %v", err)
	}
}

func TestEmitNilResult(t *testing.T) {
	_, err := Emit(&bytes.Buffer{}, nil, fonts.Load(t.TempDir()), Options{})
	if !errors.Is(err, ErrNilResult) {
		t.Fatalf("err = %v, want ErrNilResult", err)
	}
	var re *RenderError
	if !errors.As(err, &re) || re.Op != "Emit" {
		t.Errorf("err = %#v, want RenderError with Op Emit", err)
	}
}

func TestEmitBadLetterhead(t *testing.T) {
	res, f := layoutPlayer(t, report.Player{ID: 7, Name: "Ahmad"}, nil)

	_, err := Emit(&bytes.Buffer{}, res, f, Options{
		CreatedAt:      testTime,
		LetterheadPath: filepath.Join(t.TempDir(), "missing.pdf"),
	})
	if err == nil {
		t.Fatal("expected an error for a missing letterhead file")
	}
	var re *RenderError
	if !errors.As(err, &re) || re.Op != "letterhead" {
		t.Errorf("err = %v, want RenderError with Op letterhead", err)
	}
}

func TestQRPNG(t *testing.T) {
	data, err := qrPNG("academyreport:player:7")
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("invalid PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != qrSide || b.Dy() != qrSide {
		t.Errorf("bounds = %v, want %dx%d", b, qrSide, qrSide)
	}
}
