package diferenco

// Compact performs semantic cleanup on a raw Myers edit script (spec 4.4).
// It walks every Delete, then every Insert, and tries to shift it as far up
// and then as far down through its neighboring Equal runs as the common
// affix allows — rotating the edit across an Equal so it can merge with a
// same-kind edit separated from it by that Equal, or swap past an
// opposite-kind edit to reach one it can merge with. The old- and new-side
// projections are unchanged by this pass (invariant 6); a second pass finds
// nothing left to shift (invariant 5).
//
// Ported from original_source/src/diff/mod.rs's shift_diff_up/shift_diff_down
// rotation loop, re-expressed over Range-backed DiffRange segments.
func Compact[T comparable](ranges []DiffRange[T]) []DiffRange[T] {
	diffs := append([]DiffRange[T](nil), ranges...)

	pointer := 0
	for pointer < len(diffs) {
		if diffs[pointer].Kind == Delete {
			pointer = shiftDiffUp(&diffs, pointer)
			pointer = shiftDiffDown(&diffs, pointer)
		}
		pointer++
	}

	pointer = 0
	for pointer < len(diffs) {
		if diffs[pointer].Kind == Insert {
			pointer = shiftDiffUp(&diffs, pointer)
			pointer = shiftDiffDown(&diffs, pointer)
		}
		pointer++
	}

	return diffs
}

// editLen returns the single side-length of a Delete or Insert segment.
func editLen[T comparable](d DiffRange[T]) int {
	return d.OldLen() + d.NewLen()
}

func insertAt[T comparable](diffs *[]DiffRange[T], at int, d DiffRange[T]) {
	d2 := append((*diffs)[:at:at], append([]DiffRange[T]{d}, (*diffs)[at:]...)...)
	*diffs = d2
}

func removeAt[T comparable](diffs *[]DiffRange[T], at int) {
	*diffs = append((*diffs)[:at], (*diffs)[at+1:]...)
}

// shiftDiffUp attempts to shift the Insert or Delete at pointer as far
// upwards (towards index 0) as possible, returning its new index.
func shiftDiffUp[T comparable](diffs *[]DiffRange[T], pointer int) int {
	for pointer > 0 {
		d := *diffs
		this, prev := d[pointer], d[pointer-1]

		switch {
		case this.Kind == Insert && prev.Kind == Equal:
			suffixLen := this.New.CommonSuffixLen(prev.Old)
			if suffixLen != 0 {
				if pointer+1 < len(d) && d[pointer+1].Kind == Equal {
					d[pointer+1] = d[pointer+1].growUp(suffixLen)
				} else {
					eq := newEqual(prev.Old.SliceFrom(prev.Old.Len()-suffixLen), this.New.SliceFrom(this.New.Len()-suffixLen))
					insertAt(diffs, pointer+1, eq)
					d = *diffs
				}
				d[pointer] = d[pointer].shiftUp(suffixLen)
				d[pointer-1] = d[pointer-1].shrinkBack(suffixLen)
				if d[pointer-1].IsEmpty() {
					removeAt(diffs, pointer-1)
					pointer--
				}
			} else if prev.IsEmpty() {
				removeAt(diffs, pointer-1)
				pointer--
			} else {
				return pointer
			}

		case this.Kind == Delete && prev.Kind == Equal:
			suffixLen := this.Old.CommonSuffixLen(prev.New)
			if suffixLen != 0 {
				if pointer+1 < len(d) && d[pointer+1].Kind == Equal {
					d[pointer+1] = d[pointer+1].growUp(suffixLen)
				} else {
					eq := newEqual(this.Old.SliceFrom(this.Old.Len()-suffixLen), prev.New.SliceFrom(prev.New.Len()-suffixLen))
					insertAt(diffs, pointer+1, eq)
					d = *diffs
				}
				d[pointer] = d[pointer].shiftUp(suffixLen)
				d[pointer-1] = d[pointer-1].shrinkBack(suffixLen)
				if d[pointer-1].IsEmpty() {
					removeAt(diffs, pointer-1)
					pointer--
				}
			} else if prev.IsEmpty() {
				removeAt(diffs, pointer-1)
				pointer--
			} else {
				return pointer
			}

		case (this.Kind == Insert && prev.Kind == Delete) || (this.Kind == Delete && prev.Kind == Insert):
			d[pointer-1], d[pointer] = d[pointer], d[pointer-1]
			pointer--

		case (this.Kind == Insert && prev.Kind == Insert) || (this.Kind == Delete && prev.Kind == Delete):
			d[pointer-1] = d[pointer-1].growDown(editLen(this))
			removeAt(diffs, pointer)
			pointer--

		default:
			panic("diferenco: range to shift must be either Insert or Delete")
		}
	}
	return pointer
}

// shiftDiffDown attempts to shift the Insert or Delete at pointer as far
// downwards (towards the end) as possible, returning its new index.
func shiftDiffDown[T comparable](diffs *[]DiffRange[T], pointer int) int {
	for pointer+1 < len(*diffs) {
		d := *diffs
		this, next := d[pointer], d[pointer+1]

		switch {
		case this.Kind == Insert && next.Kind == Equal:
			prefixLen := this.New.CommonPrefixLen(next.Old)
			if prefixLen != 0 {
				if pointer > 0 && d[pointer-1].Kind == Equal {
					d[pointer-1] = d[pointer-1].growDown(prefixLen)
				} else {
					eq := newEqual(next.Old.SliceTo(prefixLen), this.New.SliceTo(prefixLen))
					insertAt(diffs, pointer, eq)
					pointer++
					d = *diffs
				}
				d[pointer] = d[pointer].shiftDown(prefixLen)
				d[pointer+1] = d[pointer+1].shrinkFront(prefixLen)
				if d[pointer+1].IsEmpty() {
					removeAt(diffs, pointer+1)
				}
			} else if next.IsEmpty() {
				removeAt(diffs, pointer+1)
			} else {
				return pointer
			}

		case this.Kind == Delete && next.Kind == Equal:
			prefixLen := this.Old.CommonPrefixLen(next.New)
			if prefixLen != 0 {
				if pointer > 0 && d[pointer-1].Kind == Equal {
					d[pointer-1] = d[pointer-1].growDown(prefixLen)
				} else {
					eq := newEqual(this.Old.SliceTo(prefixLen), next.New.SliceTo(prefixLen))
					insertAt(diffs, pointer, eq)
					pointer++
					d = *diffs
				}
				d[pointer] = d[pointer].shiftDown(prefixLen)
				d[pointer+1] = d[pointer+1].shrinkFront(prefixLen)
				if d[pointer+1].IsEmpty() {
					removeAt(diffs, pointer+1)
				}
			} else if next.IsEmpty() {
				removeAt(diffs, pointer+1)
			} else {
				return pointer
			}

		case (this.Kind == Insert && next.Kind == Delete) || (this.Kind == Delete && next.Kind == Insert):
			d[pointer], d[pointer+1] = d[pointer+1], d[pointer]
			pointer++

		case (this.Kind == Insert && next.Kind == Insert) || (this.Kind == Delete && next.Kind == Delete):
			d[pointer] = d[pointer].growDown(editLen(next))
			removeAt(diffs, pointer+1)

		default:
			panic("diferenco: range to shift must be either Insert or Delete")
		}
	}
	return pointer
}
