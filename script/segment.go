package script

import "golang.org/x/text/unicode/bidi"

// Segment is a maximal substring sharing one direction. For right-to-left
// segments, Text still holds logical order; shaping into visual order
// happens at layout time via Shape.
type Segment struct {
	Text string
	RTL  bool
}

// Segments splits a string into maximal same-direction segments.
//
// Neutral characters (digits, punctuation, spaces) join a right-to-left
// segment only when strong right-to-left characters surround them;
// otherwise they read left to right. This keeps "Passing (التمرير)" as
// three segments with both parentheses on the Latin side, which is how
// bilingual report labels are written.
func Segments(s string) []Segment {
	if s == "" {
		return nil
	}

	var segs []Segment
	var cur, pending []rune
	curRTL := false
	started := false // cur contains at least one strong character

	flush := func() {
		if len(cur) > 0 {
			segs = append(segs, Segment{Text: string(cur), RTL: curRTL})
			cur = cur[:0]
		}
	}

	for _, r := range s {
		var strong, rtl bool
		switch runeClass(r) {
		case bidi.L:
			strong = true
		case bidi.R, bidi.AL:
			strong, rtl = true, true
		}
		if !strong {
			pending = append(pending, r)
			continue
		}

		if started && rtl != curRTL {
			if !curRTL {
				cur = append(cur, pending...)
				pending = pending[:0]
			}
			flush()
			started = false
		}
		if !started {
			if rtl && len(pending) > 0 {
				segs = append(segs, Segment{Text: string(pending)})
				pending = pending[:0]
			}
			curRTL = rtl
			started = true
		}
		cur = append(cur, pending...)
		pending = pending[:0]
		cur = append(cur, r)
	}

	if curRTL && len(pending) > 0 {
		flush()
		curRTL = false
	}
	cur = append(cur, pending...)
	flush()
	return segs
}
