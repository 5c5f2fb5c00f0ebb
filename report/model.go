// Package report builds the in-memory document tree for academy evaluation
// reports.
//
// The builder is pure: given the same records and the same generation
// timestamp it produces a structurally identical document. All text is
// normalized and script-tagged here so the later stages never inspect
// strings again. The document tree is owned by a single render call and
// discarded after emission.
package report

import (
	"time"

	"github.com/HazemIbrahim256/academyreport/script"
)

// TextRun is a script-tagged piece of text.
type TextRun struct {
	Content string
	Script  script.Script
}

// NewTextRun normalizes and classifies s.
func NewTextRun(s string) TextRun {
	n := script.Normalize(s)
	return TextRun{Content: n, Script: script.Classify(n)}
}

// Row is a label/value leaf of a report section.
type Row struct {
	Label TextRun
	Value TextRun
}

// Section is one evaluation category or one player block of a group report.
type Section struct {
	Heading TextRun
	Rows    []Row
}

// Meta carries render metadata that is not part of the section tree.
type Meta struct {
	// GeneratedAt is supplied by the caller; the builder has no clock.
	GeneratedAt time.Time
	// Reference identifies the report for the machine-readable footer code.
	Reference string
	// Preliminary marks a report built without any recorded evaluation.
	Preliminary bool
	// PhotoPath and LogoPath are optional header images; empty means none.
	PhotoPath string
	LogoPath  string
}

// Document is the root of one report render.
type Document struct {
	Title    TextRun
	Subtitle TextRun
	Details  []TextRun // header lines under the title
	Sections []Section
	// Footnotes are free-standing closing lines, e.g. the coach-opinion
	// prompts at the bottom of a player report.
	Footnotes []TextRun
	Meta      Meta
}

// Player is an externally validated player record.
type Player struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	GroupName string `json:"groupName,omitempty"`
	Age       int    `json:"age,omitempty"`
	Phone     string `json:"phone,omitempty"`
	PhotoPath string `json:"photoPath,omitempty"`
}

// Group is an externally validated group record with its players.
type Group struct {
	ID      int64    `json:"id"`
	Name    string   `json:"name"`
	Coach   string   `json:"coach,omitempty"`
	Players []Player `json:"players"`
}

// Evaluation is one recorded evaluation session for a player. Metrics
// without a recorded score are simply absent from Scores; keys are the
// metric labels, e.g. "Ball control".
type Evaluation struct {
	PlayerID    int64          `json:"playerId"`
	Coach       string         `json:"coach,omitempty"`
	Notes       string         `json:"notes,omitempty"`
	EvaluatedAt time.Time      `json:"evaluatedAt"`
	UpdatedAt   time.Time      `json:"updatedAt,omitempty"`
	Scores      map[Metric]int `json:"scores,omitempty"` // 1..5
}
