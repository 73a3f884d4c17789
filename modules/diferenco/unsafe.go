package diferenco

import "unsafe"

// bytesToStringView reinterprets b as a string without copying. The returned
// string must not outlive b, and b must not be mutated while the string is
// in use. Used internally to let byte-mode line classification share the
// string-keyed classifier table.
//
// Technique carried forward from the teacher's charset-detection I/O layer,
// which used the same unsafe.String/unsafe.SliceData pairing to avoid
// copying file contents when probing encodings.
func bytesToStringView(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// stringToBytesView reinterprets s as a []byte without copying. The caller
// must not mutate the returned slice.
func stringToBytesView(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
