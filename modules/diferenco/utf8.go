package diferenco

import "unicode/utf8"

// realignUTF8 fixes up a byte-level diff so that no emitted range splits a
// UTF-8 code point (spec 4.3.4). Byte-level Myers diffing has no notion of
// code points, so an Equal run can begin or end mid-rune; this pass shrinks
// such Equal runs inward to the nearest code point boundary and grows the
// neighboring Delete and Insert outward by the same amount, preserving the
// concatenation invariant. An Equal run is realigned on a side only when the
// two segments next to it on that side are one Delete and one Insert (in
// either order); otherwise that boundary is left where the byte-level diff
// put it, and the Equal run may still split a code point there.
//
// This is the one place in the module where the standard library is used
// directly instead of a pack dependency: rune-boundary detection is a
// narrow, self-contained concern (unicode/utf8.DecodeRune) for which no
// third-party alternative appears anywhere in the retrieval pack.
func realignUTF8(ranges []DiffRange[byte]) []DiffRange[byte] {
	out := make([]DiffRange[byte], len(ranges))
	copy(out, ranges)

	for i := range out {
		if out[i].Kind != Equal {
			continue
		}
		n := leadingContinuationBytes(out[i].Old.AsSlice())
		if n == 0 || i < 2 || out[i-1].Kind == Equal || out[i-2].Kind == Equal || out[i-1].Kind == out[i-2].Kind {
			continue
		}
		out[i] = out[i].shrinkFront(n)
		out[i-1] = out[i-1].growDown(n)
		out[i-2] = out[i-2].growDown(n)
	}

	for i := range out {
		if out[i].Kind != Equal {
			continue
		}
		n := trailingIncompleteBytes(out[i].Old.AsSlice())
		if n == 0 || i+2 >= len(out) || out[i+1].Kind == Equal || out[i+2].Kind == Equal || out[i+1].Kind == out[i+2].Kind {
			continue
		}
		out[i] = out[i].shrinkBack(n)
		out[i+1] = out[i+1].growUp(n)
		out[i+2] = out[i+2].growUp(n)
	}

	filtered := out[:0]
	for _, s := range out {
		if s.Kind == Equal && s.IsEmpty() {
			continue
		}
		filtered = append(filtered, s)
	}
	return filtered
}

// leadingContinuationBytes counts the bytes at the start of b that are UTF-8
// continuation bytes (10xxxxxx) and therefore cannot begin a code point.
func leadingContinuationBytes(b []byte) int {
	n := 0
	for n < len(b) && b[n]&0xC0 == 0x80 {
		n++
	}
	return n
}

// trailingIncompleteBytes returns the length of the trailing byte run that
// does not form a complete, valid code point.
func trailingIncompleteBytes(b []byte) int {
	valid := 0
	for valid < len(b) {
		r, size := utf8.DecodeRune(b[valid:])
		if r == utf8.RuneError && size <= 1 {
			break
		}
		valid += size
	}
	return len(b) - valid
}
