package script

// Arabic letters change form depending on their neighbours. PDF canvases
// place glyphs one after another with no OpenType shaping, so right-to-left
// segments are converted here to Unicode presentation forms (FB50-FEFF) and
// reordered into visual order before they reach the page. This mirrors what
// the rest of the pipeline expects: layout hands the emitter text that can
// be drawn left to right as-is.

// arabicForms maps a base letter to its isolated, final, initial and medial
// presentation forms. A zero entry means the letter has no such form
// (right-joining letters have no initial or medial form).
var arabicForms = map[rune][4]rune{
	0x0621: {0xFE80, 0, 0, 0},                // hamza
	0x0622: {0xFE81, 0xFE82, 0, 0},           // alef madda
	0x0623: {0xFE83, 0xFE84, 0, 0},           // alef hamza above
	0x0624: {0xFE85, 0xFE86, 0, 0},           // waw hamza
	0x0625: {0xFE87, 0xFE88, 0, 0},           // alef hamza below
	0x0626: {0xFE89, 0xFE8A, 0xFE8B, 0xFE8C}, // yeh hamza
	0x0627: {0xFE8D, 0xFE8E, 0, 0},           // alef
	0x0628: {0xFE8F, 0xFE90, 0xFE91, 0xFE92}, // beh
	0x0629: {0xFE93, 0xFE94, 0, 0},           // teh marbuta
	0x062A: {0xFE95, 0xFE96, 0xFE97, 0xFE98}, // teh
	0x062B: {0xFE99, 0xFE9A, 0xFE9B, 0xFE9C}, // theh
	0x062C: {0xFE9D, 0xFE9E, 0xFE9F, 0xFEA0}, // jeem
	0x062D: {0xFEA1, 0xFEA2, 0xFEA3, 0xFEA4}, // hah
	0x062E: {0xFEA5, 0xFEA6, 0xFEA7, 0xFEA8}, // khah
	0x062F: {0xFEA9, 0xFEAA, 0, 0},           // dal
	0x0630: {0xFEAB, 0xFEAC, 0, 0},           // thal
	0x0631: {0xFEAD, 0xFEAE, 0, 0},           // reh
	0x0632: {0xFEAF, 0xFEB0, 0, 0},           // zain
	0x0633: {0xFEB1, 0xFEB2, 0xFEB3, 0xFEB4}, // seen
	0x0634: {0xFEB5, 0xFEB6, 0xFEB7, 0xFEB8}, // sheen
	0x0635: {0xFEB9, 0xFEBA, 0xFEBB, 0xFEBC}, // sad
	0x0636: {0xFEBD, 0xFEBE, 0xFEBF, 0xFEC0}, // dad
	0x0637: {0xFEC1, 0xFEC2, 0xFEC3, 0xFEC4}, // tah
	0x0638: {0xFEC5, 0xFEC6, 0xFEC7, 0xFEC8}, // zah
	0x0639: {0xFEC9, 0xFECA, 0xFECB, 0xFECC}, // ain
	0x063A: {0xFECD, 0xFECE, 0xFECF, 0xFED0}, // ghain
	0x0641: {0xFED1, 0xFED2, 0xFED3, 0xFED4}, // feh
	0x0642: {0xFED5, 0xFED6, 0xFED7, 0xFED8}, // qaf
	0x0643: {0xFED9, 0xFEDA, 0xFEDB, 0xFEDC}, // kaf
	0x0644: {0xFEDD, 0xFEDE, 0xFEDF, 0xFEE0}, // lam
	0x0645: {0xFEE1, 0xFEE2, 0xFEE3, 0xFEE4}, // meem
	0x0646: {0xFEE5, 0xFEE6, 0xFEE7, 0xFEE8}, // noon
	0x0647: {0xFEE9, 0xFEEA, 0xFEEB, 0xFEEC}, // heh
	0x0648: {0xFEED, 0xFEEE, 0, 0},           // waw
	0x0649: {0xFEEF, 0xFEF0, 0, 0},           // alef maksura
	0x064A: {0xFEF1, 0xFEF2, 0xFEF3, 0xFEF4}, // yeh
}

// lamAlef maps the alef variant following a lam to the isolated and final
// forms of the mandatory lam-alef ligature.
var lamAlef = map[rune][2]rune{
	0x0622: {0xFEF5, 0xFEF6},
	0x0623: {0xFEF7, 0xFEF8},
	0x0625: {0xFEF9, 0xFEFA},
	0x0627: {0xFEFB, 0xFEFC},
}

const (
	formIsolated = 0
	formFinal    = 1
	formInitial  = 2
	formMedial   = 3
)

// isTransparent reports whether r is a combining mark that does not affect
// joining between the letters around it.
func isTransparent(r rune) bool {
	return (r >= 0x0610 && r <= 0x061A) ||
		(r >= 0x064B && r <= 0x065F) ||
		r == 0x0670
}

// joins reports whether r is a shapeable Arabic letter.
func joins(r rune) bool {
	_, ok := arabicForms[r]
	return ok
}

// dualJoining reports whether r connects to the following letter.
func dualJoining(r rune) bool {
	f, ok := arabicForms[r]
	return ok && f[formInitial] != 0
}

// Shape converts an Arabic string to presentation forms and returns it in
// visual (left-to-right drawable) order. Non-Arabic characters pass through
// unchanged. Combining marks stay attached to their base letter during
// reordering.
func Shape(s string) string {
	runes := []rune(s)
	shaped := make([]rune, 0, len(runes))

	// Previous emitted letter connects forward.
	prevConnects := false

	for i := 0; i < len(runes); i++ {
		r := runes[i]

		form, ok := arabicForms[r]
		if !ok {
			shaped = append(shaped, r)
			if !isTransparent(r) {
				prevConnects = false
			}
			continue
		}

		// Lam followed directly by an alef variant becomes a ligature.
		if r == 0x0644 && i+1 < len(runes) {
			if lig, liga := lamAlef[runes[i+1]]; liga {
				if prevConnects {
					shaped = append(shaped, lig[formFinal])
				} else {
					shaped = append(shaped, lig[formIsolated])
				}
				prevConnects = false // the ligature ends in alef
				i++
				continue
			}
		}

		want := formIsolated
		if prevConnects {
			want = formFinal
		}
		if dualJoining(r) && nextJoinable(runes, i) {
			want += formInitial // final -> medial, isolated -> initial
		}
		if form[want] == 0 {
			want &^= formInitial // degrade to the right-joining form
		}
		if form[want] == 0 {
			want = formIsolated
		}

		shaped = append(shaped, form[want])
		prevConnects = dualJoining(r)
	}

	return string(reverseVisual(shaped))
}

// nextJoinable reports whether the next non-transparent rune after index i
// is a shapeable letter.
func nextJoinable(runes []rune, i int) bool {
	for j := i + 1; j < len(runes); j++ {
		if isTransparent(runes[j]) {
			continue
		}
		return joins(runes[j])
	}
	return false
}

// reverseVisual reverses a rune slice into visual order, keeping combining
// marks after the base letter they modify.
func reverseVisual(runes []rune) []rune {
	out := make([]rune, 0, len(runes))
	i := len(runes)
	for i > 0 {
		start := i - 1
		for start > 0 && isTransparent(runes[start]) {
			start--
		}
		out = append(out, runes[start:i]...)
		i = start
	}
	return out
}
