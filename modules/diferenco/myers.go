package diferenco

// vArray is a furthest-reaching-path endpoint table indexed by a signed
// diagonal k. It is a flat array plus a fixed offset so that k in
// [-offset, +offset] maps onto [0, 2*offset]; per the spec's design note,
// diagonal indices are never looked up through a hash map.
type vArray struct {
	offset int
	v      []int
}

func newVArray(maxD int) vArray {
	offset := maxD + 1
	return vArray{offset: offset, v: make([]int, 2*offset+1)}
}

func (va vArray) get(k int) int { return va.v[va.offset+k] }
func (va vArray) set(k, x int)  { va.v[va.offset+k] = x }

// snake describes a maximal diagonal run discovered inside the overlap of
// the forward and backward Myers searches.
type snake struct {
	xStart, yStart int
	xEnd, yEnd     int
}

// myers computes the Myers edit script between old and new using the
// linear-space divide-and-conquer algorithm (find_middle_snake + conquer),
// appending DiffRange segments to out in order.
type myers[T comparable] struct {
	old, new_ Range[T]
}

func diffSlices[T comparable](old, new_ Range[T]) []DiffRange[T] {
	m := &myers[T]{old: old, new_: new_}
	var out []DiffRange[T]
	m.conquer(old, new_, &out)
	return out
}

// conquer is the recursive divide-and-conquer driver (spec 4.3.3).
func (m *myers[T]) conquer(old, new_ Range[T], out *[]DiffRange[T]) {
	// 1. Strip common prefix; emit one Equal for its length.
	commonPrefix := old.CommonPrefixLen(new_)
	if commonPrefix > 0 {
		oldPre, oldRest := old.SplitAt(commonPrefix)
		newPre, newRest := new_.SplitAt(commonPrefix)
		*out = append(*out, newEqual(oldPre, newPre))
		old, new_ = oldRest, newRest
	}

	// 2. Strip common suffix; remember it as a trailing Equal.
	commonSuffix := old.CommonSuffixLen(new_)
	var trailingEqual DiffRange[T]
	hasTrailing := false
	if commonSuffix > 0 {
		oldRest, oldSuf := old.SplitAt(old.Len() - commonSuffix)
		newRest, newSuf := new_.SplitAt(new_.Len() - commonSuffix)
		trailingEqual = newEqual(oldSuf, newSuf)
		hasTrailing = true
		old, new_ = oldRest, newRest
	}

	switch {
	case old.IsEmpty() && new_.IsEmpty():
		// nothing left
	case new_.IsEmpty():
		*out = append(*out, newDelete(old))
	case old.IsEmpty():
		*out = append(*out, newInsert(new_))
	default:
		snk := m.findMiddleSnake(old, new_)
		oldLo := old.SliceTo(snk.xStart)
		newLo := new_.SliceTo(snk.yStart)
		m.conquer(oldLo, newLo, out)
		// The tail half pivots on x_start/y_start, not x_end/y_end: it
		// still contains the snake's matched run, which the tail's own
		// recursive common-prefix strip (step 1 above) rediscovers and
		// re-emits as an Equal segment.
		oldTail := old.Slice(snk.xStart, old.Len())
		newTail := new_.Slice(snk.yStart, new_.Len())
		m.conquer(oldTail, newTail, out)
	}

	if hasTrailing {
		*out = append(*out, trailingEqual)
	}
}

// findMiddleSnake runs the forward and backward Myers searches in lockstep
// until their furthest-reaching paths first overlap on a common diagonal,
// per spec 4.3.2.
func (m *myers[T]) findMiddleSnake(old, new_ Range[T]) snake {
	n, mm := old.Len(), new_.Len()
	delta := n - mm
	odd := delta&1 != 0
	maxD := (n + mm + 1) / 2 + 1

	vf := newVArray(maxD)
	vb := newVArray(maxD)
	vf.set(1, 0)
	vb.set(1, 0)

	for d := 0; d < maxD; d++ {
		// forward pass
		for k := d; k >= -d; k -= 2 {
			var x int
			if k == -d || (k != d && vf.get(k-1) < vf.get(k+1)) {
				x = vf.get(k + 1)
			} else {
				x = vf.get(k-1) + 1
			}
			y := x - k
			x0, y0 := x, y
			for x < n && y < mm && old.AsSlice()[x] == new_.AsSlice()[y] {
				x++
				y++
			}
			vf.set(k, x)
			if odd {
				kk := k - delta
				if kk >= -(d-1) && kk <= d-1 && vf.get(k)+vb.get(-kk) >= n {
					return snake{xStart: x0, yStart: y0, xEnd: x, yEnd: y}
				}
			}
		}
		// backward pass
		for k := d; k >= -d; k -= 2 {
			var x int
			if k == -d || (k != d && vb.get(k-1) < vb.get(k+1)) {
				x = vb.get(k + 1)
			} else {
				x = vb.get(k-1) + 1
			}
			y := x - k
			x0, y0 := x, y
			for x < n && y < mm && old.AsSlice()[n-x-1] == new_.AsSlice()[mm-y-1] {
				x++
				y++
			}
			vb.set(k, x)
			if !odd {
				kk := k - delta
				if kk >= -d && kk <= d && vb.get(k)+vf.get(-kk) >= n {
					return snake{xStart: n - x, yStart: mm - y, xEnd: n - x0, yEnd: mm - y0}
				}
			}
		}
	}
	// Unreachable for valid inputs: termination is guaranteed for d < maxD.
	panic("diferenco: find_middle_snake failed to terminate")
}
