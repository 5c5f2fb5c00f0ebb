package academyreport

import (
	"time"

	"github.com/HazemIbrahim256/academyreport/fonts"
	"github.com/HazemIbrahim256/academyreport/report"
)

// Option is a functional option configuring a single render via
// RenderPlayerReport or RenderGroupReport.
type Option func(*renderConfig)

type renderConfig struct {
	generatedAt time.Time
	fontDir     string
	logoPath    string
	letterhead  string
	sort        report.PlayerSort
}

// WithGeneratedAt sets the report generation timestamp. It is stamped on
// the document and drives byte-identical output for identical input; a
// render without it fails with ErrInvalidInput.
func WithGeneratedAt(t time.Time) Option {
	return func(c *renderConfig) {
		c.generatedAt = t
	}
}

// WithFontDir sets the directory searched for report fonts, bypassing the
// process-wide font cache. The directory is authoritative; when no
// candidate is found there the render degrades to the built-in Latin-only
// font rather than failing.
func WithFontDir(dir string) Option {
	return func(c *renderConfig) {
		c.fontDir = dir
	}
}

// WithLogo places the academy logo image in the report header. A missing
// or undecodable file is skipped.
func WithLogo(path string) Option {
	return func(c *renderConfig) {
		c.logoPath = path
	}
}

// WithLetterhead draws the first page of an existing PDF under every page
// of the report.
func WithLetterhead(path string) Option {
	return func(c *renderConfig) {
		c.letterhead = path
	}
}

// WithPlayerSort overrides the ordering of player subsections in a group
// report. The default is ascending codepoint order by name.
func WithPlayerSort(less report.PlayerSort) Option {
	return func(c *renderConfig) {
		c.sort = less
	}
}

func newConfig(opts []Option) *renderConfig {
	cfg := &renderConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// font resolves the render font: a configured directory is loaded
// directly, otherwise the cached process-wide resolution is shared.
func (c *renderConfig) font() *fonts.Font {
	if c.fontDir != "" {
		return fonts.Load(c.fontDir)
	}
	return fonts.Resolve()
}
