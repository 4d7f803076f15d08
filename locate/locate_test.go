package locate

import (
	"testing"

	"github.com/ausocean/colorcheck/geom"
)

func quad(x, y, w, h float64) geom.Quad {
	return geom.Quad{
		{X: x, Y: y},
		{X: x + w, Y: y},
		{X: x + w, Y: y + h},
		{X: x, Y: y + h},
	}
}

func TestDedupRemovesNearDuplicates(t *testing.T) {
	a := quad(100, 100, 200, 150)
	b := quad(105, 98, 200, 150) // a few pixels off a
	c := quad(500, 500, 200, 150)

	got := Dedup([]geom.Quad{a, b, c}, 40.0)
	if len(got) != 2 {
		t.Fatalf("Dedup: got %d quads, want 2", len(got))
	}
	if got[0] != a {
		t.Fatalf("Dedup: expected first-seen quad to win, got %v", got[0])
	}
}

func TestDedupKeepsDistinctQuads(t *testing.T) {
	a := quad(0, 0, 100, 100)
	b := quad(1000, 1000, 100, 100)
	got := Dedup([]geom.Quad{a, b}, 40.0)
	if len(got) != 2 {
		t.Fatalf("Dedup: got %d quads, want 2", len(got))
	}
}

func TestSortByAreaDescending(t *testing.T) {
	small := quad(0, 0, 10, 10)
	big := quad(0, 0, 500, 300)
	mid := quad(0, 0, 100, 100)

	got := SortByAreaDescending([]geom.Quad{small, big, mid})
	if got[0] != big || got[1] != mid || got[2] != small {
		t.Fatalf("SortByAreaDescending: got %v", got)
	}
}

func TestSortByAreaDescendingStableOnTies(t *testing.T) {
	a := quad(0, 0, 100, 100)
	b := quad(500, 500, 100, 100)
	got := SortByAreaDescending([]geom.Quad{a, b})
	if got[0] != a || got[1] != b {
		t.Fatalf("SortByAreaDescending: ties should preserve input order, got %v", got)
	}
}
