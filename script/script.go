// Package script classifies text by writing system and prepares
// right-to-left runs for rendering.
//
// Classification is done once, when the report model is built, so the
// layout stage works on already-tagged text. Mixed-script runs are broken
// into maximal same-direction segments; full Unicode BiDi reordering is
// deliberately out of scope, direction is resolved per segment only.
package script

import (
	"golang.org/x/text/unicode/bidi"
	"golang.org/x/text/unicode/norm"
)

// Script identifies the writing system of a text run.
type Script uint8

const (
	// Latin covers left-to-right text, including digits and punctuation.
	Latin Script = iota
	// Arabic covers right-to-left text.
	Arabic
	// Mixed marks runs containing both strong directions. Mixed runs are
	// segmented before layout; individual segments are never Mixed.
	Mixed
)

// String returns "Latin", "Arabic" or "Mixed".
func (s Script) String() string {
	switch s {
	case Latin:
		return "Latin"
	case Arabic:
		return "Arabic"
	case Mixed:
		return "Mixed"
	default:
		return "Unknown"
	}
}

// RTL reports whether the script is rendered right-to-left.
func (s Script) RTL() bool { return s == Arabic }

// Normalize returns s in NFC form. All report text is normalized before
// classification so that visually identical inputs tag and render the same.
func Normalize(s string) string {
	return norm.NFC.String(s)
}

// Classify returns the script tag for a string based on the strong
// bidirectional classes present in it. Digits, punctuation and whitespace
// are neutral; a string with no strong characters classifies as Latin.
func Classify(s string) Script {
	var ltr, rtl bool
	for _, r := range s {
		switch runeClass(r) {
		case bidi.L:
			ltr = true
		case bidi.R, bidi.AL:
			rtl = true
		}
		if ltr && rtl {
			return Mixed
		}
	}
	if rtl {
		return Arabic
	}
	return Latin
}

func runeClass(r rune) bidi.Class {
	p, _ := bidi.LookupRune(r)
	return p.Class()
}
