package engine

import "testing"

func TestTransTableBoundedByCapacity(t *testing.T) {
	tt := newTransTable(8)
	for k := uint64(1); k <= 100; k++ {
		tt.Store(k, ttEntry{Depth: 1, Score: int(k)})
		if tt.Len() > 8 {
			t.Fatalf("table exceeded capacity after %d inserts: len=%d", k, tt.Len())
		}
	}
	if tt.Len() != 8 {
		t.Fatalf("len: got=%d want=8", tt.Len())
	}
}

func TestTransTableFIFOEviction(t *testing.T) {
	tt := newTransTable(4)
	for k := uint64(1); k <= 5; k++ {
		tt.Store(k, ttEntry{Depth: 1, Score: int(k)})
	}
	// 最早插入的 key=1 被顶掉，其余还在
	if _, ok := tt.Lookup(1); ok {
		t.Fatal("oldest entry should have been evicted")
	}
	for k := uint64(2); k <= 5; k++ {
		if _, ok := tt.Lookup(k); !ok {
			t.Fatalf("entry %d missing", k)
		}
	}
}

func TestTransTableOverwriteKeepsSlot(t *testing.T) {
	tt := newTransTable(4)
	tt.Store(1, ttEntry{Depth: 2, Score: 10, Col: 3, Flag: ttExact})
	tt.Store(1, ttEntry{Depth: 4, Score: 20, Col: 5, Flag: ttLower})

	e, ok := tt.Lookup(1)
	if !ok {
		t.Fatal("entry missing after overwrite")
	}
	if e.Depth != 4 || e.Score != 20 || e.Col != 5 || e.Flag != ttLower {
		t.Fatalf("overwrite not applied: %+v", e)
	}
	if tt.Len() != 1 {
		t.Fatalf("overwrite grew table: len=%d", tt.Len())
	}
}

func TestTransTableClear(t *testing.T) {
	tt := newTransTable(16)
	for k := uint64(1); k <= 10; k++ {
		tt.Store(k, ttEntry{Depth: 1})
	}
	tt.Clear()
	if tt.Len() != 0 {
		t.Fatalf("clear left %d entries", tt.Len())
	}
	if _, ok := tt.Lookup(3); ok {
		t.Fatal("lookup hit after clear")
	}
	// 清空后还能正常写
	tt.Store(99, ttEntry{Depth: 2, Score: 7})
	if e, ok := tt.Lookup(99); !ok || e.Score != 7 {
		t.Fatalf("store after clear broken: %+v ok=%v", e, ok)
	}
}
