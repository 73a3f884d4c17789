package diferenco

import "testing"

func TestDiffLineLevel(t *testing.T) {
	old := "alpha\nbeta\ngamma\n"
	new_ := "alpha\nBETA\ngamma\n"
	diffs := DiffLines(old, new_, DefaultDiffOptions())

	var rebuiltOld, rebuiltNew string
	for _, d := range diffs {
		switch d.Kind {
		case Equal:
			for _, l := range d.Text {
				rebuiltOld += l
				rebuiltNew += l
			}
		case Delete:
			for _, l := range d.Text {
				rebuiltOld += l
			}
		case Insert:
			for _, l := range d.Text {
				rebuiltNew += l
			}
		}
	}
	if rebuiltOld != old {
		t.Errorf("rebuilt old = %q, want %q", rebuiltOld, old)
	}
	if rebuiltNew != new_ {
		t.Errorf("rebuilt new = %q, want %q", rebuiltNew, new_)
	}
}

func TestDiffSliceGeneric(t *testing.T) {
	old := []int{1, 2, 3, 4}
	new_ := []int{1, 9, 3, 4}
	diffs := DiffSlice(old, new_, true)
	if len(diffs) == 0 {
		t.Fatal("expected at least one diff segment")
	}
	foundDelete, foundInsert := false, false
	for _, d := range diffs {
		if d.Kind == Delete && len(d.Text) == 1 && d.Text[0] == 2 {
			foundDelete = true
		}
		if d.Kind == Insert && len(d.Text) == 1 && d.Text[0] == 9 {
			foundInsert = true
		}
	}
	if !foundDelete || !foundInsert {
		t.Fatalf("expected a Delete of 2 and an Insert of 9, got %+v", diffs)
	}
}

func TestDiffBytesRealignsUTF8(t *testing.T) {
	old := []byte("café")  // "café" with a 2-byte é
	new_ := []byte("cafés") // "cafés"
	diffs := DiffBytes(old, new_, DefaultDiffOptions())
	for _, d := range diffs {
		if d.Kind == Equal {
			if !validUTF8Prefix(d.Text) {
				t.Errorf("Equal segment does not start on a code point boundary: %q", d.Text)
			}
		}
	}
}

func validUTF8Prefix(b []byte) bool {
	if len(b) == 0 {
		return true
	}
	return b[0]&0xC0 != 0x80
}

func TestCreatePatchBytes(t *testing.T) {
	old := []byte("one\ntwo\nthree\n")
	new_ := []byte("one\nTWO\nthree\n")
	p := CreatePatchBytes(old, new_, DefaultDiffOptions(), "a", "b")
	if len(p.Hunks) != 1 {
		t.Fatalf("expected 1 hunk, got %d", len(p.Hunks))
	}
	got, err := ApplyBytes(old, p)
	if err != nil {
		t.Fatalf("ApplyBytes: %v", err)
	}
	if string(got) != string(new_) {
		t.Fatalf("got %q, want %q", got, new_)
	}
}
