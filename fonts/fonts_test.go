package fonts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/HazemIbrahim256/academyreport/script"
)

// fakeTTF is a minimal byte sequence passing the sfnt header check.
var fakeTTF = append([]byte("\x00\x01\x00\x00"), make([]byte, 16)...)

func TestLoadDegradedWhenNoCandidateExists(t *testing.T) {
	f := Load(t.TempDir())
	if !f.Degraded {
		t.Fatal("expected degraded mode with an empty fonts directory")
	}
	if !f.Core() || f.Family != coreFamily {
		t.Errorf("fallback = %q, want built-in %s", f.Family, coreFamily)
	}
	if f.SupportsScript(script.Arabic) {
		t.Error("core fallback must not claim Arabic support")
	}
	if !f.SupportsScript(script.Latin) {
		t.Error("core fallback must support Latin")
	}
	if f.SupportsScript(script.Mixed) {
		t.Error("Mixed requires both scripts")
	}
}

func TestLoadPicksFirstCandidate(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"DejaVuSans.ttf", "NotoNaskhArabic-Regular.ttf"} {
		if err := os.WriteFile(filepath.Join(dir, name), fakeTTF, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	f := Load(dir)
	if f.Degraded {
		t.Fatal("unexpected degraded mode")
	}
	if f.Family != "NotoNaskhArabic" {
		t.Errorf("resolved %q, want the higher-priority candidate", f.Family)
	}
	if !f.SupportsScript(script.Arabic) || !f.SupportsScript(script.Mixed) {
		t.Error("resolved font must cover Arabic and Mixed")
	}
}

func TestLoadSkipsInvalidFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "NotoNaskhArabic-Regular.ttf"), []byte("not a font"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "DejaVuSans.ttf"), fakeTTF, 0o644); err != nil {
		t.Fatal(err)
	}

	f := Load(dir)
	if f.Family != "DejaVuSans" {
		t.Errorf("resolved %q, want the next valid candidate", f.Family)
	}
}

func TestResolveCaches(t *testing.T) {
	a := Resolve()
	b := Resolve()
	if a != b {
		t.Error("Resolve must return the cached instance")
	}
}

func TestValidTrueType(t *testing.T) {
	if validTrueType(nil) || validTrueType([]byte("short")) {
		t.Error("short data accepted")
	}
	for _, magic := range []string{"\x00\x01\x00\x00", "true", "OTTO", "ttcf"} {
		data := append([]byte(magic), make([]byte, 16)...)
		if !validTrueType(data) {
			t.Errorf("magic %q rejected", magic)
		}
	}
}
