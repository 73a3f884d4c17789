package diferenco

import (
	"sort"
	"strings"
)

// ConflictStyle selects how a conflict block is rendered (spec 4.8).
type ConflictStyle int

const (
	// StyleMerge shows only the minimized conflicting lines of ours and
	// theirs, hoisting any shared prefix/suffix out of the markers and
	// omitting the original entirely.
	StyleMerge ConflictStyle = iota
	// StyleDiff3 shows the full, non-minimized ours, original and theirs
	// spans, with the original between a "|||||||" marker and the "======="
	// separator.
	StyleDiff3
)

// DefaultMarkerLen is the conventional git-style conflict marker width.
const DefaultMarkerLen = 7

// MergeOptions configures a three-way merge.
type MergeOptions struct {
	Style         ConflictStyle
	MarkerLen     int
	LabelOriginal string
	LabelOurs     string
	LabelTheirs   string
}

func (o *MergeOptions) normalize() MergeOptions {
	out := MergeOptions{}
	if o != nil {
		out = *o
	}
	if out.MarkerLen <= 0 {
		out.MarkerLen = DefaultMarkerLen
	}
	return out
}

// mergeChange is a paired edit in the O→side diff: del lines at o[p1:p1+del]
// were replaced by the side's lines at side[p2:p2+ins]. Mirrors the classic
// diff "Change" shape a three-way merge is built from.
type mergeChange struct {
	p1, del, p2, ins int
}

// changesFromDiff collapses a compacted diff into paired edit records,
// merging an adjacent Delete+Insert pair at the same locus into a single
// replacement the way a line-oriented diff tool reports changes.
func changesFromDiff(diff []DiffRange[uint64]) []mergeChange {
	var out []mergeChange
	i := 0
	for i < len(diff) {
		d := diff[i]
		if d.Kind == Equal {
			i++
			continue
		}
		var c mergeChange
		if d.Kind == Delete {
			c.p1, c.del = d.Old.Offset(), d.Old.Len()
			c.p2 = insertAnchor(diff, i)
			i++
			if i < len(diff) && diff[i].Kind == Insert {
				c.p2, c.ins = diff[i].New.Offset(), diff[i].New.Len()
				i++
			}
		} else {
			c.p2, c.ins = d.New.Offset(), d.New.Len()
			c.p1 = deleteAnchor(diff, i)
			i++
		}
		out = append(out, c)
	}
	return out
}

// insertAnchor/deleteAnchor find the position a pure Delete/Insert change
// would have landed on the opposite side, by looking at the nearest
// preceding Equal segment. Needed because a lone edit carries no Range on
// the side it doesn't touch.
func insertAnchor(diff []DiffRange[uint64], at int) int {
	for j := at - 1; j >= 0; j-- {
		if diff[j].Kind == Equal {
			return diff[j].New.Offset() + diff[j].New.Len()
		}
	}
	return 0
}

func deleteAnchor(diff []DiffRange[uint64], at int) int {
	for j := at - 1; j >= 0; j-- {
		if diff[j].Kind == Equal {
			return diff[j].Old.Offset() + diff[j].Old.Len()
		}
	}
	return 0
}

// mergeRecord is one entry of a resolved three-way merge plan: either a
// plain copy from one numbered side (0 = ours, 1 = original, 2 = theirs) or
// a conflict (side == -1) carrying independent spans of all three.
type mergeRecord struct {
	side                 int
	oursLo, oursLen      int
	originalLo, originalLen int
	theirsLo, theirsLen  int
}

// diff3Indices is the region-resolution core of the merge: it overlays the
// O→ours and O→theirs change lists onto the shared original-line axis,
// groups overlapping changes into a single conflict, and reports spans of
// ours/original/theirs for every resulting record. Ported from the
// classic diff3MergeIndices algorithm (prefix/suffix-corrected skew
// formula), generalized to the mergeChange shape above.
func diff3Indices(oLen, aLen, bLen int, changesA, changesB []mergeChange) []mergeRecord {
	type tagged struct {
		c    mergeChange
		side int // 0 = ours, 2 = theirs
	}
	var all []tagged
	for _, c := range changesA {
		all = append(all, tagged{c, 0})
	}
	for _, c := range changesB {
		all = append(all, tagged{c, 2})
	}
	sort.Slice(all, func(i, j int) bool { return all[i].c.p1 < all[j].c.p1 })

	var result []mergeRecord
	commonOffset := 0
	copyCommon := func(target int) {
		if target > commonOffset {
			result = append(result, mergeRecord{side: 1, originalLo: commonOffset, originalLen: target - commonOffset})
			commonOffset = target
		}
	}

	for idx := 0; idx < len(all); idx++ {
		first := idx
		regionLhs := all[idx].c.p1
		regionRhs := regionLhs + all[idx].c.del
		for idx < len(all)-1 {
			next := all[idx+1]
			if next.c.p1 > regionRhs {
				break
			}
			regionRhs = max(regionRhs, next.c.p1+next.c.del)
			idx++
		}

		copyCommon(regionLhs)
		if first == idx {
			c := all[idx].c
			if c.ins > 0 {
				result = append(result, mergeRecord{side: all[idx].side, oursLo: c.p2, oursLen: c.ins, theirsLo: c.p2, theirsLen: c.ins})
			}
		} else {
			// Merge all overlapping hunks on each side and correct for
			// skew between the region bounds (in O) and each side's own
			// change bounds.
			type bound struct{ lo, hi, oLo, oHi int }
			bounds := map[int]*bound{0: {lo: aLen, hi: -1, oLo: oLen, oHi: -1}, 2: {lo: bLen, hi: -1, oLo: oLen, oHi: -1}}
			for i := first; i <= idx; i++ {
				c := all[i].c
				b := bounds[all[i].side]
				oLhs, oRhs := c.p1, c.p1+c.del
				abLhs, abRhs := c.p2, c.p2+c.ins
				b.lo = min(abLhs, b.lo)
				b.hi = max(abRhs, b.hi)
				b.oLo = min(oLhs, b.oLo)
				b.oHi = max(oRhs, b.oHi)
			}
			ba, bb := bounds[0], bounds[2]
			aLo := ba.lo + (regionLhs - ba.oLo)
			aHi := ba.hi + (regionRhs - ba.oHi)
			bLo := bb.lo + (regionLhs - bb.oLo)
			bHi := bb.hi + (regionRhs - bb.oHi)
			result = append(result, mergeRecord{
				side:        -1,
				oursLo:      aLo, oursLen: aHi - aLo,
				originalLo:  regionLhs, originalLen: regionRhs - regionLhs,
				theirsLo:    bLo, theirsLen: bHi - bLo,
			})
		}
		commonOffset = regionRhs
	}
	copyCommon(oLen)
	return result
}

// MergeResult is the outcome of a three-way merge.
type MergeResult struct {
	Text      string
	Conflicts int
}

// Merge performs a three-way merge of ours and theirs against their common
// original, returning conflict-marker text in the requested style. When one
// or more conflicts remain, the returned error is a *MergeConflictError and
// Text still holds the marked-up result (spec 4.8).
func Merge(original, ours, theirs string, opts MergeOptions) (*MergeResult, error) {
	o := opts.normalize()
	oLines := splitLinesString(original)
	aLines := splitLinesString(ours)
	bLines := splitLinesString(theirs)

	cls := newClassifier()
	oIDs := cls.classifyLines(oLines)
	aIDs := cls.classifyLines(aLines)
	bIDs := cls.classifyLines(bLines)

	diffA := Compact(diffSlices(RangeOf(oIDs), RangeOf(aIDs)))
	diffB := Compact(diffSlices(RangeOf(oIDs), RangeOf(bIDs)))

	records := diff3Indices(len(oLines), len(aLines), len(bLines), changesFromDiff(diffA), changesFromDiff(diffB))

	var b strings.Builder
	conflicts := 0
	for _, r := range records {
		switch r.side {
		case 1:
			writeLinesJoined(&b, oLines[r.originalLo:r.originalLo+r.originalLen])
		case 0:
			writeLinesJoined(&b, aLines[r.oursLo:r.oursLo+r.oursLen])
		case 2:
			writeLinesJoined(&b, bLines[r.theirsLo:r.theirsLo+r.theirsLen])
		default:
			oursSpan := aLines[r.oursLo : r.oursLo+r.oursLen]
			theirsSpan := bLines[r.theirsLo : r.theirsLo+r.theirsLen]
			if stringSlicesEqual(oursSpan, theirsSpan) {
				// Both sides made the same edit to this region: not a
				// real conflict, even though their underlying hunks
				// overlapped on the original axis.
				writeLinesJoined(&b, oursSpan)
				continue
			}
			conflicts++
			writeConflict(&b, o, oursSpan, oLines[r.originalLo:r.originalLo+r.originalLen], theirsSpan)
		}
	}

	result := &MergeResult{Text: b.String(), Conflicts: conflicts}
	if conflicts > 0 {
		log.WithField("conflicts", conflicts).Warn("diferenco: merge produced conflicts")
		return result, &MergeConflictError{ConflictCount: conflicts}
	}
	return result, nil
}

func stringSlicesEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func writeLinesJoined(b *strings.Builder, lines []string) {
	for _, l := range lines {
		b.WriteString(l)
	}
}

func writeConflict(b *strings.Builder, opts MergeOptions, ours, original, theirs []string) {
	markLeft := strings.Repeat("<", opts.MarkerLen)
	markOrig := strings.Repeat("|", opts.MarkerLen)
	markMid := strings.Repeat("=", opts.MarkerLen)
	markRight := strings.Repeat(">", opts.MarkerLen)

	writeLabeled := func(mark, label string) {
		b.WriteString(mark)
		if label != "" {
			b.WriteByte(' ')
			b.WriteString(label)
		}
		b.WriteByte('\n')
	}

	if opts.Style == StyleDiff3 {
		writeLabeled(markLeft, opts.LabelOurs)
		writeLinesJoined(b, ours)
		writeLabeled(markOrig, opts.LabelOriginal)
		writeLinesJoined(b, original)
		b.WriteString(markMid)
		b.WriteByte('\n')
		writeLinesJoined(b, theirs)
		writeLabeled(markRight, opts.LabelTheirs)
		return
	}

	oursR := RangeOf(ours)
	theirsR := RangeOf(theirs)
	prefix := oursR.CommonPrefixLen(theirsR)
	writeLinesJoined(b, ours[:prefix])
	ours, theirs = ours[prefix:], theirs[prefix:]
	suffix := RangeOf(ours).CommonSuffixLen(RangeOf(theirs))

	writeLabeled(markLeft, opts.LabelOurs)
	writeLinesJoined(b, ours[:len(ours)-suffix])
	b.WriteString(markMid)
	b.WriteByte('\n')
	writeLinesJoined(b, theirs[:len(theirs)-suffix])
	writeLabeled(markRight, opts.LabelTheirs)
	if suffix != 0 {
		writeLinesJoined(b, theirs[len(theirs)-suffix:])
	}
}
