package diferenco

import "testing"

const sampleOld = "line one\nline two\nline three\nline four\nline five\nline six\nline seven\n"
const sampleNew = "line one\nline TWO\nline three\nline four\nline four point five\nline five\nline six\nline seven\n"

func TestCreatePatchFormatParseRoundTrip(t *testing.T) {
	p := CreatePatch(sampleOld, sampleNew, DefaultDiffOptions(), "a/sample.txt", "b/sample.txt")
	if len(p.Hunks) == 0 {
		t.Fatal("expected at least one hunk")
	}

	text := p.String()
	parsed, err := ParsePatch(text)
	if err != nil {
		t.Fatalf("ParsePatch: %v", err)
	}
	if parsed.String() != text {
		t.Fatalf("round trip mismatch:\n--- got ---\n%s\n--- want ---\n%s", parsed.String(), text)
	}
}

func TestCreatePatchApplyRoundTrip(t *testing.T) {
	p := CreatePatch(sampleOld, sampleNew, DefaultDiffOptions(), "a/sample.txt", "b/sample.txt")
	got, err := Apply(sampleOld, p)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if got != sampleNew {
		t.Fatalf("Apply result mismatch:\n--- got ---\n%s\n--- want ---\n%s", got, sampleNew)
	}
}

func TestParsePatchNoNewlineAtEOF(t *testing.T) {
	text := "--- a/f\n+++ b/f\n@@ -1,2 +1,2 @@\n line one\n-line two\n+line TWO\n\\ No newline at end of file\n"
	p, err := ParsePatch(text)
	if err != nil {
		t.Fatalf("ParsePatch: %v", err)
	}
	if len(p.Hunks) != 1 {
		t.Fatalf("expected 1 hunk, got %d", len(p.Hunks))
	}
	last := p.Hunks[0].Lines[len(p.Hunks[0].Lines)-1]
	if last.hasNewline() {
		t.Fatalf("last line should not carry a trailing newline, got %q", last.Content)
	}
}

func TestApplyFindsShiftedPosition(t *testing.T) {
	old := "alpha\nbeta\ngamma\ndelta\nepsilon\n"
	new_ := "alpha\nbeta\nGAMMA\ndelta\nepsilon\n"
	p := CreatePatch(old, new_, DefaultDiffOptions(), "", "")

	// The hunk's recorded new-range anchor is relative to old/new_, so
	// applying against a base with two extra leading lines forces the
	// applier's position search to look beyond its initial guess.
	shiftedBase := "zzz\nzzz\n" + old
	got, err := Apply(shiftedBase, p)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	want := "zzz\nzzz\n" + new_
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestApplyAllBestEffortSkipsFailingHunks(t *testing.T) {
	old := "one\ntwo\nthree\n"
	new_ := "one\nTWO\nthree\n"
	p := CreatePatch(old, new_, DefaultDiffOptions(), "", "")

	unrelated := "completely\ndifferent\ncontent\n"
	_, failed := ApplyAll(unrelated, p, ApplyOptions{MaxFuzzy: 0})
	if len(failed) != len(p.Hunks) {
		t.Fatalf("expected all %d hunks to fail, got %d failures", len(p.Hunks), len(failed))
	}
}
