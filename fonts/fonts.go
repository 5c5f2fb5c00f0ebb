// Package fonts locates and loads a script-complete TrueType font for
// report rendering.
//
// Candidates are a fixed, ordered list evaluated against a configured
// fonts directory and a handful of well-known system locations. The first
// candidate that exists and passes a sanity check wins. When nothing is
// found the resolver falls back to the built-in Helvetica core font and
// flags degraded mode: Arabic glyphs will render as boxes, but rendering
// never aborts for a missing font.
package fonts

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/HazemIbrahim256/academyreport/script"
)

// Candidate describes one font file, identified by its conventional file
// name, together with the scripts it fully covers. List position is the
// fallback priority.
type Candidate struct {
	Family  string
	File    string
	Scripts []script.Script
}

// candidates is the closed fallback order. All listed fonts cover both
// Latin and Arabic; the terminal Helvetica fallback is appended by the
// resolver itself and covers Latin only.
var candidates = []Candidate{
	{Family: "NotoNaskhArabic", File: "NotoNaskhArabic-Regular.ttf", Scripts: []script.Script{script.Latin, script.Arabic}},
	{Family: "Amiri", File: "Amiri-Regular.ttf", Scripts: []script.Script{script.Latin, script.Arabic}},
	{Family: "DejaVuSans", File: "DejaVuSans.ttf", Scripts: []script.Script{script.Latin, script.Arabic}},
	{Family: "FreeSans", File: "FreeSans.ttf", Scripts: []script.Script{script.Latin, script.Arabic}},
}

// systemDirs are searched after the configured directory.
var systemDirs = []string{
	"/usr/share/fonts/truetype/noto",
	"/usr/share/fonts/opentype/noto",
	"/usr/share/fonts/truetype/dejavu",
	"/usr/share/fonts/truetype/freefont",
	"/usr/local/share/fonts",
}

// coreFamily is the built-in fallback registered in every PDF canvas.
const coreFamily = "Helvetica"

// Font is a resolved, loadable font. It is immutable after resolution and
// safe for concurrent readers.
type Font struct {
	Family   string
	Data     []byte // nil for the built-in core font
	Degraded bool
	scripts  map[script.Script]bool
}

// Core reports whether this is the built-in fallback rather than a loaded
// font file.
func (f *Font) Core() bool { return f.Data == nil }

// SupportsScript reports whether the font covers the given script. Mixed
// requires both Latin and Arabic coverage.
func (f *Font) SupportsScript(sc script.Script) bool {
	if sc == script.Mixed {
		return f.scripts[script.Latin] && f.scripts[script.Arabic]
	}
	return f.scripts[sc]
}

var (
	resolveOnce sync.Once
	resolved    *Font
)

// DefaultDir is the conventional fonts directory relative to the working
// directory, matching the deployment layout.
const DefaultDir = "fonts"

// Resolve loads the best available font once per process and caches it.
// It searches the conventional fonts directory first, then the well-known
// system locations. Subsequent calls return the cached result; the cache
// is read-only after initialization, so concurrent renders share it
// without locking. Resolve never fails: absence of every candidate is a
// supported configuration state reported through Degraded.
func Resolve() *Font {
	resolveOnce.Do(func() {
		dirs := append([]string{DefaultDir}, systemDirs...)
		resolved = load(dirs)
	})
	return resolved
}

// Load resolves a font from the given directory alone, without touching
// the process cache. A configured directory is authoritative: system
// locations are not consulted, so a deployment that ships its own fonts
// directory gets exactly what it shipped.
func Load(dir string) *Font {
	return load([]string{dir})
}

func load(dirs []string) *Font {
	for _, c := range candidates {
		for _, d := range dirs {
			data, err := os.ReadFile(filepath.Join(d, c.File))
			if err != nil || !validTrueType(data) {
				continue
			}
			scripts := make(map[script.Script]bool, len(c.Scripts))
			for _, sc := range c.Scripts {
				scripts[sc] = true
			}
			return &Font{Family: c.Family, Data: data, scripts: scripts}
		}
	}

	return &Font{
		Family:   coreFamily,
		Degraded: true,
		scripts:  map[script.Script]bool{script.Latin: true},
	}
}

// validTrueType checks the sfnt header so a truncated or mislabeled file
// is skipped in favour of the next candidate.
func validTrueType(data []byte) bool {
	if len(data) < 12 {
		return false
	}
	switch string(data[:4]) {
	case "\x00\x01\x00\x00", "true", "OTTO", "ttcf":
		return true
	}
	return false
}
