// Package academyreport generates bilingual (English and Arabic) player
// evaluation reports for a football academy as PDF documents.
//
// A render runs a three-stage pipeline: the report package assembles a
// document tree from the player, group and evaluation records; the layout
// package flattens the tree into drawing instructions, resolving text
// direction and pagination; the emit package executes the instructions on
// a PDF canvas. Font resolution never fails: when no Arabic-capable font
// file is found the render proceeds with the built-in Latin-only font and
// the Result reports degraded mode so the caller can warn.
//
// Given identical records and the same WithGeneratedAt timestamp, a
// render produces byte-identical output.
package academyreport

import (
	"io"

	"github.com/HazemIbrahim256/academyreport/emit"
	"github.com/HazemIbrahim256/academyreport/layout"
	"github.com/HazemIbrahim256/academyreport/report"
)

// Result reports what a render produced.
type Result struct {
	Pages    int
	Degraded bool
}

// RenderPlayerReport writes a single player's evaluation report to w.
// The most recent of the player's evaluations is reported; with none
// recorded the report renders with placeholder values and a PRELIMINARY
// watermark.
func RenderPlayerReport(w io.Writer, p report.Player, evals []report.Evaluation, opts ...Option) (*Result, error) {
	cfg := newConfig(opts)
	doc, err := report.BuildPlayerReport(p, evals, cfg.generatedAt)
	if err != nil {
		return nil, err
	}
	return render(w, doc, cfg)
}

// RenderGroupReport writes a group summary report to w, one subsection
// per player with the full metric set so rows align across players.
func RenderGroupReport(w io.Writer, g report.Group, evals []report.Evaluation, opts ...Option) (*Result, error) {
	cfg := newConfig(opts)
	doc, err := report.BuildGroupReport(g, evals, cfg.generatedAt, cfg.sort)
	if err != nil {
		return nil, err
	}
	return render(w, doc, cfg)
}

func render(w io.Writer, doc *report.Document, cfg *renderConfig) (*Result, error) {
	if cfg.logoPath != "" {
		doc.Meta.LogoPath = cfg.logoPath
	}

	f := cfg.font()
	res, err := layout.Layout(doc, f)
	if err != nil {
		return nil, err
	}

	stats, err := emit.Emit(w, res, f, emit.Options{
		CreatedAt:      doc.Meta.GeneratedAt,
		LetterheadPath: cfg.letterhead,
	})
	if err != nil {
		return nil, err
	}

	return &Result{Pages: stats.Pages, Degraded: res.Degraded}, nil
}
