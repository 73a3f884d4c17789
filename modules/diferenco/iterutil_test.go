package diferenco

import "testing"

func TestInterleaveOutwardOrder(t *testing.T) {
	it := newInterleave(5, 0, 10)
	var got []int
	for {
		p, ok := it.next()
		if !ok {
			break
		}
		got = append(got, p)
	}
	want := []int{5, 4, 6, 3, 7, 2, 8, 1, 9, 0, 10}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestInterleaveClampedAtBounds(t *testing.T) {
	it := newInterleave(0, 0, 2)
	var got []int
	for {
		p, ok := it.next()
		if !ok {
			break
		}
		got = append(got, p)
	}
	want := []int{0, 1, 2}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestSkipFirstLast(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}
	got := skipFirstLast(items, 1)
	if len(got) != 3 || got[0] != "b" || got[2] != "d" {
		t.Fatalf("skipFirstLast(items,1) = %v", got)
	}
	if skipFirstLast(items, 0)[0] != "a" {
		t.Fatal("skipFirstLast(items,0) should return items unchanged")
	}
	if skipFirstLast(items, 3) != nil {
		t.Fatal("skipFirstLast should return nil when trimming exceeds length")
	}
}
