package diferenco

// DiffOptions configures the line-oriented diff and patch-construction entry
// points (spec 6).
type DiffOptions struct {
	// ContextLen is the number of unchanged lines kept around each hunk.
	ContextLen int
	// Compact runs the semantic cleanup pass over the raw Myers script
	// before it is handed to the hunk assembler or returned to the caller.
	Compact bool
}

// DefaultDiffOptions returns the conventional unified-diff defaults: three
// lines of context, cleanup enabled.
func DefaultDiffOptions() DiffOptions {
	return DiffOptions{ContextLen: 3, Compact: true}
}

// DiffChars computes the character-level difference between oldText and newText
// (spec 6: "character-level diffs over strings"), realigning segment
// boundaries to UTF-8 code points so no returned Text ever splits a rune.
// Each returned Diff carries its segment as a single string atom.
func DiffChars(oldText, newText string, opts DiffOptions) []Diff[string] {
	ranges := diffSlices(RangeOf([]byte(oldText)), RangeOf([]byte(newText)))
	if opts.Compact {
		ranges = Compact(ranges)
	}
	ranges = realignUTF8(ranges)
	out := make([]Diff[string], len(ranges))
	for i, r := range ranges {
		d := r.ToDiff()
		out[i] = Diff[string]{Kind: d.Kind, Text: []string{string(d.Text)}}
	}
	return out
}

// DiffLines computes the line-level difference between oldText and newText,
// the front end CreatePatch builds its hunks from.
func DiffLines(oldText, newText string, opts DiffOptions) []Diff[string] {
	oldLines, newLines := splitLinesString(oldText), splitLinesString(newText)
	diff := diffLineIDs(oldLines, newLines, opts)
	return ToDiffs(projectToLines(diff, oldLines, newLines))
}

// DiffSlice computes the difference between two arbitrary comparable-atom
// sequences directly, bypassing line splitting. It runs the same diffSlices
// engine the other entry points in this file use, with no UTF-8 realignment.
func DiffSlice[T comparable](old, new_ []T, compact bool) []Diff[T] {
	ranges := diffSlices(RangeOf(old), RangeOf(new_))
	if compact {
		ranges = Compact(ranges)
	}
	return ToDiffs(ranges)
}

// DiffBytes computes a byte-level difference, realigning segment boundaries
// to UTF-8 code points (spec 4.3.4). Use this instead of DiffSlice[byte] when
// the input may be non-ASCII text.
func DiffBytes(old, new_ []byte, opts DiffOptions) []Diff[byte] {
	ranges := diffSlices(RangeOf(old), RangeOf(new_))
	if opts.Compact {
		ranges = Compact(ranges)
	}
	ranges = realignUTF8(ranges)
	return ToDiffs(ranges)
}

// CreatePatch diffs oldText against newText and assembles the result into a
// Patch with the given header filenames.
func CreatePatch(oldText, newText string, opts DiffOptions, originalName, modifiedName string) *Patch {
	oldLines, newLines := splitLinesString(oldText), splitLinesString(newText)
	diff := diffLineIDs(oldLines, newLines, opts)
	return &Patch{
		OriginalName: NewFilename(originalName),
		ModifiedName: NewFilename(modifiedName),
		Hunks:        AssembleHunks(oldLines, newLines, diff, opts.ContextLen),
	}
}

// CreatePatchBytes is the []byte counterpart of CreatePatch.
func CreatePatchBytes(oldText, newText []byte, opts DiffOptions, originalName, modifiedName string) *BytePatch {
	oldLines, newLines := splitLinesBytes(oldText), splitLinesBytes(newText)
	cls := newClassifier()
	oldIDs := cls.classifyBytesLines(oldLines)
	newIDs := cls.classifyBytesLines(newLines)
	diff := diffSlices(RangeOf(oldIDs), RangeOf(newIDs))
	if opts.Compact {
		diff = Compact(diff)
	}
	oldLineViews := viewBytesLines(oldLines)
	newLineViews := viewBytesLines(newLines)
	return &BytePatch{
		OriginalName: NewFilename(originalName),
		ModifiedName: NewFilename(modifiedName),
		Hunks:        AssembleHunks(oldLineViews, newLineViews, diff, opts.ContextLen),
	}
}

func viewBytesLines(lines [][]byte) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = bytesToStringView(l)
	}
	return out
}

func diffLineIDs(oldLines, newLines []string, opts DiffOptions) []DiffRange[uint64] {
	cls := newClassifier()
	oldIDs := cls.classifyLines(oldLines)
	newIDs := cls.classifyLines(newLines)
	diff := diffSlices(RangeOf(oldIDs), RangeOf(newIDs))
	if opts.Compact {
		diff = Compact(diff)
	}
	return diff
}

// projectToLines lifts a diff computed over classified line ids back onto
// the original line text, since the id Ranges and the line-slice Ranges
// share the same offsets and lengths by construction.
func projectToLines(diff []DiffRange[uint64], oldLines, newLines []string) []DiffRange[string] {
	out := make([]DiffRange[string], len(diff))
	for i, d := range diff {
		switch d.Kind {
		case Equal:
			out[i] = newEqual(
				NewRange(oldLines, d.Old.Offset(), d.Old.Len()),
				NewRange(newLines, d.New.Offset(), d.New.Len()),
			)
		case Delete:
			out[i] = newDelete(NewRange(oldLines, d.Old.Offset(), d.Old.Len()))
		default:
			out[i] = newInsert(NewRange(newLines, d.New.Offset(), d.New.Len()))
		}
	}
	return out
}
