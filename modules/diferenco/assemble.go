package diferenco

// AssembleHunks converts a cleaned diff over classified line ids back into
// hunks with correct context (spec 4.5). oldLines/newLines are the original
// line slices (each including its trailing '\n' except possibly the last);
// diff is the Compact-ed output of diffing their ids; contextLen is the
// number of unchanged lines to retain around each change.
//
// Two hunks whose context would overlap (the gap between them is at most
// 2*contextLen lines) are merged into one, with the gap lines included
// verbatim as context — the standard unified-diff hunk-merging rule,
// grounded in the teacher's sink.go ToUnified/addEqualLines logic.
func AssembleHunks(oldLines, newLines []string, diff []DiffRange[uint64], contextLen int) []*Hunk {
	oldLen, newLen := len(oldLines), len(newLines)
	var hunks []*Hunk
	var cur *Hunk
	var curOldStart, curNewStart, curOldEnd, curNewEnd int
	having := false

	prevEqualOldEnd, prevEqualNewEnd := 0, 0

	closeCurrent := func(postContext int) {
		for k := 0; k < postContext; k++ {
			cur.Lines = append(cur.Lines, Line{Kind: Context, Content: oldLines[curOldEnd+k]})
		}
		curOldEnd += postContext
		curNewEnd += postContext
		cur.OldRange = NewHunkRange(curOldStart, curOldEnd-curOldStart)
		cur.NewRange = NewHunkRange(curNewStart, curNewEnd-curNewStart)
		hunks = append(hunks, cur)
		cur = nil
		having = false
	}

	openHunk := func(oldLo, newLo, preContext int) {
		cur = &Hunk{}
		having = true
		curOldStart = oldLo - preContext
		curNewStart = newLo - preContext
		for k := 0; k < preContext; k++ {
			cur.Lines = append(cur.Lines, Line{Kind: Context, Content: oldLines[curOldStart+k]})
		}
		curOldEnd = oldLo
		curNewEnd = newLo
	}

	appendGroup := func(oldLo, oldHi, newLo, newHi int) {
		for k := oldLo; k < oldHi; k++ {
			cur.Lines = append(cur.Lines, Line{Kind: Delete, Content: oldLines[k]})
		}
		for k := newLo; k < newHi; k++ {
			cur.Lines = append(cur.Lines, Line{Kind: Insert, Content: newLines[k]})
		}
		curOldEnd = oldHi
		curNewEnd = newHi
	}

	n := len(diff)
	i := 0
	for i < n {
		seg := diff[i]
		if seg.Kind == Equal {
			prevEqualOldEnd = seg.Old.Offset() + seg.Old.Len()
			prevEqualNewEnd = seg.New.Offset() + seg.New.Len()
			i++
			continue
		}

		j := i
		oldLo, oldHi := -1, -1
		newLo, newHi := -1, -1
		for j < n && diff[j].Kind != Equal {
			if diff[j].Kind == Delete {
				if oldLo == -1 {
					oldLo = diff[j].Old.Offset()
				}
				oldHi = diff[j].Old.Offset() + diff[j].Old.Len()
			} else {
				if newLo == -1 {
					newLo = diff[j].New.Offset()
				}
				newHi = diff[j].New.Offset() + diff[j].New.Len()
			}
			j++
		}
		if oldLo == -1 {
			oldLo, oldHi = prevEqualOldEnd, prevEqualOldEnd
		}
		if newLo == -1 {
			newLo, newHi = prevEqualNewEnd, prevEqualNewEnd
		}

		if having {
			gap := oldLo - curOldEnd
			if gap <= 2*contextLen {
				for k := 0; k < gap; k++ {
					cur.Lines = append(cur.Lines, Line{Kind: Context, Content: oldLines[curOldEnd+k]})
				}
				curOldEnd += gap
				curNewEnd += gap
				appendGroup(oldLo, oldHi, newLo, newHi)
				i = j
				continue
			}
			closeCurrent(min(contextLen, gap))
		}

		preContext := min(contextLen, oldLo)
		openHunk(oldLo, newLo, preContext)
		appendGroup(oldLo, oldHi, newLo, newHi)
		i = j
	}

	if having {
		closeCurrent(min(contextLen, oldLen-curOldEnd, newLen-curNewEnd))
	}

	return hunks
}
