package diferenco

import "strings"

const noNewlineMarker = "\\ No newline at end of file\n"

// Formatter is the uncolored counterpart of the teacher's
// PatchFormatter/UnifiedEncoder; colorized rendering is out of scope. It has
// no fields or methods: Patch.String and BytePatch.String do the rendering,
// and a hunk header's trailing text is written from Hunk.FunctionContext,
// which the parser fills from the header and AssembleHunks leaves empty.
type Formatter struct{}

// String renders p in unified diff format.
func (p *Patch) String() string {
	var b strings.Builder
	writePatchHeader(&b, p.OriginalName, p.ModifiedName)
	for _, h := range p.Hunks {
		writeHunk(&b, h)
	}
	return b.String()
}

// Bytes renders p as a []byte, sharing the string formatter via a zero-copy
// view (no allocation beyond the builder's own buffer).
func (p *Patch) Bytes() []byte {
	return stringToBytesView(p.String())
}

func (p *BytePatch) String() string {
	var b strings.Builder
	writePatchHeader(&b, p.OriginalName, p.ModifiedName)
	for _, h := range p.Hunks {
		writeHunk(&b, h)
	}
	return b.String()
}

func (p *BytePatch) Bytes() []byte {
	return stringToBytesView(p.String())
}

func writePatchHeader(b *strings.Builder, original, modified Filename) {
	if !original.Set && !modified.Set {
		return
	}
	b.WriteString("--- ")
	b.WriteString(original.String())
	b.WriteByte('\n')
	b.WriteString("+++ ")
	b.WriteString(modified.String())
	b.WriteByte('\n')
}

func writeHunk(b *strings.Builder, h *Hunk) {
	b.WriteString("@@ -")
	b.WriteString(h.OldRange.String())
	b.WriteString(" +")
	b.WriteString(h.NewRange.String())
	b.WriteString(" @@")
	if h.FunctionContext != "" {
		b.WriteByte(' ')
		b.WriteString(h.FunctionContext)
	}
	b.WriteByte('\n')
	for _, line := range h.Lines {
		writeLine(b, line)
	}
}

func writeLine(b *strings.Builder, l Line) {
	if l.Kind == Context && l.Content == "\n" {
		b.WriteByte('\n')
		return
	}
	switch l.Kind {
	case Delete:
		b.WriteByte('-')
	case Insert:
		b.WriteByte('+')
	default:
		b.WriteByte(' ')
	}
	if l.hasNewline() {
		b.WriteString(l.Content)
		return
	}
	b.WriteString(l.Content)
	b.WriteByte('\n')
	b.WriteString(noNewlineMarker)
}
