package traversal

import "testing"

func TestCursorLoopsWithoutVisitedSet(t *testing.T) {
	g, f := cycleGraph(t, 3, "AACG")
	c := NewCursor[Right](g, f.MustEncode("AAC"), nil)
	if got := walk(c, 12); len(got) != 12 {
		t.Fatalf("plain cursor on a cycle produced %d bases, want 12 (limit)", len(got))
	}
}

func TestNonLoopingStopsOnCycle(t *testing.T) {
	g, f := cycleGraph(t, 3, "AACG")
	visited := NewVisitedSet()
	c := NewNonLoopingCursor[Right](g, f.MustEncode("AAC"), nil, visited)

	if got := walk(c, 100); got != "GAA" {
		t.Fatalf("walk = %q, want GAA", got)
	}
	if visited.Len() != 4 {
		t.Errorf("visited %d k-mers, want 4", visited.Len())
	}
	if pos := f.Decode(c.Position()); pos != "GAA" {
		t.Errorf("stopped at %s, want GAA", pos)
	}
}

func TestNonLoopingMarksDeadEnd(t *testing.T) {
	g, f := strandGraph(t, 5, straight)
	end := f.MustEncode("CATTG")
	visited := NewVisitedSet()
	c := NewNonLoopingCursor[Right](g, end, nil, visited)

	if _, ok := c.Step(); ok {
		t.Fatal("Step at dead end should stop")
	}
	if !visited.Contains(end) || visited.Len() != 1 {
		t.Errorf("dead-end position not recorded: len=%d", visited.Len())
	}
}

func TestNonLoopingSharedVisited(t *testing.T) {
	g, f := strandGraph(t, 5, straight)
	seed := f.MustEncode("GGTCA")
	visited := NewVisitedSet()
	right := NewNonLoopingCursor[Right](g, seed, nil, visited)
	left := NewNonLoopingCursor[Left](g, seed, nil, visited)

	if got := walk(right, 100); got != "TTG" {
		t.Fatalf("right walk = %q, want TTG", got)
	}
	if visited.Len() != 4 {
		t.Fatalf("after right walk visited = %d, want 4", visited.Len())
	}
	if got := walk(left, 100); got != "CA" {
		t.Fatalf("left walk = %q, want CA", got)
	}
	if visited.Len() != 6 {
		t.Errorf("after both walks visited = %d, want 6", visited.Len())
	}
}

func TestNonLoopingHalvesDoNotCross(t *testing.T) {
	g, f := cycleGraph(t, 3, "AACG")
	seed := f.MustEncode("AAC")
	visited := NewVisitedSet()
	right := NewNonLoopingCursor[Right](g, seed, nil, visited)
	left := NewNonLoopingCursor[Left](g, seed, nil, visited)

	walk(right, 100)
	if got := walk(left, 100); got != "" {
		t.Fatalf("left walk re-entered the right walk's k-mers: %q", got)
	}
}

func TestNonLoopingVisitedFilterIsPushed(t *testing.T) {
	g, f := strandGraph(t, 5, straight)
	visited := NewVisitedSet()
	c := NewNonLoopingCursor[Right](g, f.MustEncode("ACGGT"), FilterChain{MinCount(g, 1)}, visited)
	if c.Filters() != 2 {
		t.Fatalf("filters = %d, want 2", c.Filters())
	}
	if c.Visited() != visited {
		t.Fatal("Visited() does not return the shared set")
	}
	// popping the visited filter lets the cursor re-enter visited k-mers
	visited.Add(f.MustEncode("CGGTC"))
	if _, ok := c.Step(); ok {
		t.Fatal("Step into visited k-mer should stop")
	}
	if _, err := c.PopFilter(); err != nil {
		t.Fatalf("PopFilter: %v", err)
	}
	if b, ok := c.Step(); !ok || b != 'C' {
		t.Fatalf("Step without visited filter = %c,%v want C,true", b, ok)
	}
}

func TestVisitedSetCanonical(t *testing.T) {
	_, f := strandGraph(t, 5)
	v := NewVisitedSet()
	v.Add(f.MustEncode("AACCG"))
	if !v.Contains(f.MustEncode("CGGTT")) {
		t.Error("reverse complement should count as visited")
	}
	if got := v.Hashes(); len(got) != 1 || got[0] != f.MustEncode("AACCG").Canonical() {
		t.Errorf("Hashes = %v", got)
	}
}
