package grid

import "testing"

func TestDimProjections(t *testing.T) {
	ps := dimProjections(5, 2)
	expect := []struct {
		ix       int
		chunk    string
		selected string
	}{
		{0, "0:2", "0:2"},
		{1, "0:2", "2:4"},
		{2, "0:1", "4:5"},
	}
	if len(ps) != len(expect) {
		t.Fatalf("expected %d projections, got %d", len(expect), len(ps))
	}
	for i, e := range expect {
		p := ps[i]
		if p.DimChunkIX != e.ix || p.DimChunkSel.String() != e.chunk || p.DimOutSel.String() != e.selected {
			t.Errorf("projection %d: got (%d, %s, %s), want (%d, %s, %s)", i,
				p.DimChunkIX, p.DimChunkSel, p.DimOutSel, e.ix, e.chunk, e.selected)
		}
	}

	if ps := dimProjections(0, 3); len(ps) != 0 {
		t.Errorf("empty dimension should have no chunks, got %d", len(ps))
	}
}

func TestChunkProjections(t *testing.T) {
	ps := chunkProjections([]int{3, 4}, []int{2, 3})
	expect := []struct {
		coords   []int
		chunk    string
		selected string
	}{
		{[]int{0, 0}, "0:2,0:3", "0:2,0:3"},
		{[]int{0, 1}, "0:2,0:1", "0:2,3:4"},
		{[]int{1, 0}, "0:1,0:3", "2:3,0:3"},
		{[]int{1, 1}, "0:1,0:1", "2:3,3:4"},
	}
	if len(ps) != len(expect) {
		t.Fatalf("expected %d projections, got %d", len(expect), len(ps))
	}
	for i, e := range expect {
		p := ps[i]
		if !equalInts(p.ChunkCoords, e.coords) {
			t.Errorf("projection %d: coords %v, want %v", i, p.ChunkCoords, e.coords)
		}
		if got := FormatIndex(p.ChunkSelection); got != e.chunk {
			t.Errorf("projection %d: chunk selection %s, want %s", i, got, e.chunk)
		}
		if got := FormatIndex(p.OutSelection); got != e.selected {
			t.Errorf("projection %d: out selection %s, want %s", i, got, e.selected)
		}
	}

	if ps := chunkProjections(nil, nil); len(ps) != 1 || len(ps[0].ChunkCoords) != 0 {
		t.Errorf("zero-dimensional array should have one chunk, got %v", ps)
	}
	if ps := chunkProjections([]int{2, 0}, []int{1, 1}); len(ps) != 0 {
		t.Errorf("array with an empty dimension should have no chunks, got %d", len(ps))
	}
}
