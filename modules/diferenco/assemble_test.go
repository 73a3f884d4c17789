package diferenco

import "testing"

func TestAssembleHunksMergesNearbyEdits(t *testing.T) {
	// Two single-line edits with five unchanged lines between them and
	// contextLen=3 should merge into a single hunk, since the gap (5) is
	// within 2*contextLen (6).
	oldLines := []string{"a\n", "b\n", "c\n", "d\n", "e\n", "f\n", "g\n"}
	newLines := []string{"A\n", "b\n", "c\n", "d\n", "e\n", "f\n", "G\n"}

	cls := newClassifier()
	oldIDs := cls.classifyLines(oldLines)
	newIDs := cls.classifyLines(newLines)
	diff := Compact(diffSlices(RangeOf(oldIDs), RangeOf(newIDs)))

	hunks := AssembleHunks(oldLines, newLines, diff, 3)
	if len(hunks) != 1 {
		t.Fatalf("expected 1 merged hunk, got %d", len(hunks))
	}
}

func TestAssembleHunksSplitsDistantEdits(t *testing.T) {
	oldLines := make([]string, 0, 20)
	newLines := make([]string, 0, 20)
	for i := 0; i < 20; i++ {
		oldLines = append(oldLines, "line\n")
		newLines = append(newLines, "line\n")
	}
	newLines[0] = "FIRST\n"
	newLines[19] = "LAST\n"

	cls := newClassifier()
	oldIDs := cls.classifyLines(oldLines)
	newIDs := cls.classifyLines(newLines)
	diff := Compact(diffSlices(RangeOf(oldIDs), RangeOf(newIDs)))

	hunks := AssembleHunks(oldLines, newLines, diff, 3)
	if len(hunks) != 2 {
		t.Fatalf("expected 2 separate hunks, got %d", len(hunks))
	}
}
