package diferenco

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// classifier assigns a dense, 0-based identity to each distinct line in
// first-occurrence order. Two lines receive the same id iff they are
// byte-for-byte equal. A classifier is scoped to a single diff call; its ids
// are meaningless outside that call.
//
// The table is a linkedhashmap rather than a bare Go map so that
// first-occurrence order is an explicit structural property instead of an
// incidental side effect of a separate counter; this mirrors how the wider
// monorepo reaches for gods container types in place of hand-rolled maps.
type classifier struct {
	table  *linkedhashmap.Map
	nextID uint64
}

func newClassifier() *classifier {
	return &classifier{table: linkedhashmap.New()}
}

// classify returns the id for line, assigning a fresh one if it has not been
// seen before by this classifier.
func (c *classifier) classify(line string) uint64 {
	if v, ok := c.table.Get(line); ok {
		return v.(uint64)
	}
	id := c.nextID
	c.nextID++
	c.table.Put(line, id)
	return id
}

// classifyLines maps each line to its identity, returning the parallel id
// slice.
func (c *classifier) classifyLines(lines []string) []uint64 {
	ids := make([]uint64, len(lines))
	for i, l := range lines {
		ids[i] = c.classify(l)
	}
	return ids
}

// classifyBytesLines is the []byte counterpart of classifyLines, converting
// via an allocation-free string view since linkedhashmap keys must be
// comparable/hashable.
func (c *classifier) classifyBytesLines(lines [][]byte) []uint64 {
	ids := make([]uint64, len(lines))
	for i, l := range lines {
		ids[i] = c.classify(bytesToStringView(l))
	}
	return ids
}
