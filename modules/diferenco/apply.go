package diferenco

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// imageLine is one line of the working image, tagged per spec 3's
// ImageLine: a hunk may only match against a run of Unpatched lines, and
// once spliced in, the inserted lines become Patched and inert to further
// matching. This is what guarantees applier exclusivity (spec invariant 8).
type imageLine struct {
	content string
	patched bool
}

// ApplyOptions configures apply_all's best-effort behavior (spec 6).
type ApplyOptions struct {
	// MaxFuzzy bounds how many leading/trailing context lines a hunk may
	// mismatch and still be considered a match.
	MaxFuzzy int
}

// Apply applies p to base under the strict policy: the first hunk that
// fails to find a position aborts the whole operation.
func Apply(base string, p *Patch) (string, error) {
	image, _, err := applyHunks(splitLinesString(base), p.Hunks, 0, true)
	if err != nil {
		return "", err
	}
	return renderImage(image), nil
}

// ApplyAll applies p to base under the best-effort policy: failing hunks
// are skipped and their 1-based indices are returned alongside the result
// of applying every hunk that did match.
func ApplyAll(base string, p *Patch, opts ApplyOptions) (string, []int) {
	image, failed, _ := applyHunks(splitLinesString(base), p.Hunks, opts.MaxFuzzy, false)
	return renderImage(image), failed
}

// ApplyBytes is the []byte counterpart of Apply.
func ApplyBytes(base []byte, p *BytePatch) ([]byte, error) {
	image, _, err := applyHunks(splitLinesString(bytesToStringView(base)), p.Hunks, 0, true)
	if err != nil {
		return nil, err
	}
	return stringToBytesView(renderImage(image)), nil
}

// ApplyAllBytes is the []byte counterpart of ApplyAll.
func ApplyAllBytes(base []byte, p *BytePatch, opts ApplyOptions) ([]byte, []int) {
	image, failed, _ := applyHunks(splitLinesString(bytesToStringView(base)), p.Hunks, opts.MaxFuzzy, false)
	return stringToBytesView(renderImage(image)), failed
}

func renderImage(image []imageLine) string {
	var b strings.Builder
	for _, l := range image {
		b.WriteString(l.content)
	}
	return b.String()
}

func applyHunks(baseLines []string, hunks []*Hunk, maxFuzzy int, strict bool) ([]imageLine, []int, error) {
	image := make([]imageLine, len(baseLines))
	for i, l := range baseLines {
		image[i] = imageLine{content: l}
	}
	var failed []int
	for i, h := range hunks {
		pos, fuzzy, ok := findPosition(image, h, maxFuzzy)
		if !ok {
			if strict {
				return nil, nil, &ApplyError{Index: i + 1}
			}
			log.WithField("hunk", i+1).Warn("diferenco: hunk failed to apply, skipping")
			failed = append(failed, i+1)
			continue
		}
		if fuzzy > 0 {
			log.WithFields(logrus.Fields{"hunk": i + 1, "fuzzy": fuzzy}).Debug("diferenco: hunk applied with fuzzy context match")
		}
		image = applyHunkAt(image, h, pos, fuzzy)
	}
	return image, failed, nil
}

// findPosition locates hunk h in image, trying fuzzy values from 0 up to
// min(maxFuzzy, leading context, trailing context), and for each trying
// candidate positions in outward order starting from the hunk's recorded
// new-range start (spec 4.7).
func findPosition(image []imageLine, h *Hunk, maxFuzzy int) (pos, fuzzy int, ok bool) {
	preImg := preImageLines(h)
	leadCtx := leadingContextCount(h.Lines)
	trailCtx := trailingContextCount(h.Lines)
	maxFuzzyEffective := min(maxFuzzy, leadCtx, trailCtx)

	start := h.NewRange.Start - 1
	if start < 0 {
		start = 0
	}
	if start > len(image) {
		start = len(image)
	}

	for f := 0; f <= maxFuzzyEffective; f++ {
		want := skipFirstLast(preImg, f)
		ln := len(preImg) - f
		it := newInterleave(start, 0, len(image))
		for {
			p, more := it.next()
			if !more {
				break
			}
			begin := p + f
			end := p + ln
			if begin < 0 || end > len(image) || end < begin {
				continue
			}
			window := image[begin:end]
			if hasPatchedLine(window) {
				continue
			}
			if linesEqual(window, want) {
				return p, f, true
			}
		}
	}
	return 0, 0, false
}

func applyHunkAt(image []imageLine, h *Hunk, pos, fuzzy int) []imageLine {
	preImg := preImageLines(h)
	postImg := postImageLines(h)
	ln := len(preImg) - fuzzy
	begin := pos + fuzzy
	end := pos + ln

	want := skipFirstLast(postImg, fuzzy)
	replacement := make([]imageLine, len(want))
	for i, c := range want {
		replacement[i] = imageLine{content: c, patched: true}
	}
	out := make([]imageLine, 0, begin+len(replacement)+(len(image)-end))
	out = append(out, image[:begin]...)
	out = append(out, replacement...)
	out = append(out, image[end:]...)
	return out
}

func leadingContextCount(lines []Line) int {
	i := 0
	for i < len(lines) && lines[i].Kind == Context {
		i++
	}
	return i
}

func trailingContextCount(lines []Line) int {
	i := 0
	for i < len(lines) && lines[len(lines)-1-i].Kind == Context {
		i++
	}
	return i
}

func preImageLines(h *Hunk) []string {
	out := make([]string, 0, len(h.Lines))
	for _, l := range h.Lines {
		if l.Kind == Context || l.Kind == Delete {
			out = append(out, l.Content)
		}
	}
	return out
}

func postImageLines(h *Hunk) []string {
	out := make([]string, 0, len(h.Lines))
	for _, l := range h.Lines {
		if l.Kind == Context || l.Kind == Insert {
			out = append(out, l.Content)
		}
	}
	return out
}

func hasPatchedLine(window []imageLine) bool {
	for _, l := range window {
		if l.patched {
			return true
		}
	}
	return false
}

func linesEqual(window []imageLine, want []string) bool {
	if len(window) != len(want) {
		return false
	}
	for i, l := range window {
		if l.content != want[i] {
			return false
		}
	}
	return true
}
