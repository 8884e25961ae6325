package tagging

import (
	"cmp"
	"math/rand"
	"testing"
)

type keyed struct {
	key int
	val string
}

func byKey(a, b keyed) int { return cmp.Compare(a.key, b.key) }

func TestBSetInsertKeepsOrder(t *testing.T) {
	s := NewBSet(byKey)
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		s.Insert(keyed{key: r.Intn(50)})
	}
	if s.Len() != 200 {
		t.Fatalf("Len = %d", s.Len())
	}
	if !s.IsSorted() {
		t.Fatal("items not sorted after Insert")
	}
	items := s.Items()
	for i := 1; i < len(items); i++ {
		if items[i-1].key > items[i].key {
			t.Fatalf("items[%d]=%d > items[%d]=%d", i-1, items[i-1].key, i, items[i].key)
		}
	}
}

func TestBSetSearch(t *testing.T) {
	s := NewBSet(byKey)
	for _, k := range []int{10, 20, 30, 40} {
		s.Insert(keyed{key: k})
	}
	tests := []struct {
		key   int
		pos   int
		found bool
	}{
		{10, 0, true},
		{30, 2, true},
		{40, 3, true},
		{5, 0, false},
		{25, 2, false},
		{99, 4, false},
	}
	for _, tc := range tests {
		pos, found := s.Search(keyed{key: tc.key})
		if pos != tc.pos || found != tc.found {
			t.Errorf("Search(%d) = %d,%v want %d,%v", tc.key, pos, found, tc.pos, tc.found)
		}
	}
}

func TestBSetSetVersusInsert(t *testing.T) {
	s := NewBSet(byKey)
	if s.Set(keyed{1, "a"}) {
		t.Fatal("first Set reported a replacement")
	}
	if !s.Set(keyed{1, "b"}) {
		t.Fatal("second Set did not replace")
	}
	if s.Len() != 1 || s.Items()[0].val != "b" {
		t.Fatalf("Set did not keep last write: %+v", s.Items())
	}

	s.Insert(keyed{1, "c"})
	s.Insert(keyed{0, "z"})
	got := s.Items()
	want := []string{"z", "b", "c"}
	for i, w := range want {
		if got[i].val != w {
			t.Fatalf("Items = %+v, want vals %v", got, want)
		}
	}
	if v, ok := s.Find(keyed{key: 1}); !ok || v.val != "b" {
		t.Fatalf("Find returned %+v,%v; want the first equal element", v, ok)
	}
}

func TestBSetCallerManagedMutation(t *testing.T) {
	s := NewBSet(byKey)
	s.InsertAt(0, keyed{key: 2})
	s.InsertAt(0, keyed{key: 1})
	s.InsertAt(2, keyed{key: 3})
	if !s.IsSorted() {
		t.Fatal("expected sorted set")
	}
	s.ReplaceAt(0, keyed{key: 9})
	if s.IsSorted() {
		t.Fatal("BSet must not re-sort on its own")
	}
	s.RemoveAt(0)
	if s.Len() != 2 || !s.IsSorted() {
		t.Fatalf("after RemoveAt: %+v", s.Items())
	}
}

func TestBSetItemsAndClone(t *testing.T) {
	s := NewBSet(byKey)
	s.Insert(keyed{key: 1})
	s.Insert(keyed{key: 2})

	view := s.Items()
	_ = append(view, keyed{key: 0})
	if s.Len() != 2 || s.Items()[1].key != 2 {
		t.Fatal("appending to the view changed the set")
	}

	c := s.Clone()
	c.Set(keyed{1, "changed"})
	if v, _ := s.Find(keyed{key: 1}); v.val == "changed" {
		t.Fatal("clone shares storage with the original")
	}

	n := 0
	for i, v := range s.All() {
		if i != n || v.key != n+1 {
			t.Fatalf("All yielded %d,%+v", i, v)
		}
		n++
	}
	if n != 2 {
		t.Fatalf("All yielded %d items", n)
	}
}
