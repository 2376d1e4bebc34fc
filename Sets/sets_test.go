package Sets

import (
	"errors"
	"math/rand"
	"testing"
)

var rg = *rand.New(rand.NewSource(0))

func TestDisjointSet_TwoGroups(t *testing.T) {
	s := MakeDisjointSet(10)
	if s.Len() != 10 || s.Groups() != 10 {
		t.Fatalf("fresh set has %d keys in %d groups, want 10 in 10", s.Len(), s.Groups())
	}
	for i := uint(0); i < 8; i += 2 {
		if e := s.Union(i, i+2); e != nil {
			t.Fatalf("failed to union %d and %d: %v", i, i+2, e)
		}
	}
	for i := uint(1); i < 9; i += 2 {
		if e := s.Union(i, i+2); e != nil {
			t.Fatalf("failed to union %d and %d: %v", i, i+2, e)
		}
	}
	if s.Groups() != 2 {
		t.Fatalf("partition has %d groups, want 2", s.Groups())
	}
	for i := uint(0); i < 10; i++ {
		for j := uint(0); j < 10; j++ {
			c, e := s.Connected(i, j)
			if e != nil {
				t.Fatalf("failed to check %d and %d: %v", i, j, e)
			}
			if c != (i%2 == j%2) {
				t.Errorf("connected(%d, %d) = %v", i, j, c)
			}
		}
	}
	for i := uint(0); i < 10; i++ {
		if sz, _ := s.GroupSize(i); sz != 5 {
			t.Errorf("group of %d has size %d, want 5", i, sz)
		}
	}
}

func TestDisjointSet_SelfUnion(t *testing.T) {
	s := MakeDisjointSet(4)
	s.Union(0, 1)
	before := s.Groups()
	if e := s.Union(0, 1); e != nil {
		t.Fatalf("failed to re-union: %v", e)
	}
	if s.Groups() != before {
		t.Errorf("re-union changed the group count from %d to %d", before, s.Groups())
	}
	if sz, _ := s.GroupSize(1); sz != 2 {
		t.Errorf("group size is %d after re-union, want 2", sz)
	}
}

func TestDisjointSet_OutOfRange(t *testing.T) {
	s := MakeDisjointSet(3)
	if _, e := s.Find(3); !errors.As(e, new(*KeyNotFoundError)) {
		t.Errorf("find of out of range key gave %v", e)
	}
	if e := s.Union(0, 5); !errors.As(e, new(*KeyNotFoundError)) {
		t.Errorf("union with out of range key gave %v", e)
	}
	if _, e := s.Connected(5, 0); !errors.As(e, new(*KeyNotFoundError)) {
		t.Errorf("connected with out of range key gave %v", e)
	}
	if _, e := s.GroupSize(3); !errors.As(e, new(*KeyNotFoundError)) {
		t.Errorf("group size of out of range key gave %v", e)
	}
}

func TestDisjointSet_MakeSet(t *testing.T) {
	s := MakeDisjointSet(0)
	a, b := s.MakeSet(), s.MakeSet()
	if a != 0 || b != 1 {
		t.Fatalf("new keys are %d, %d, want 0, 1", a, b)
	}
	if s.Groups() != 2 {
		t.Fatalf("partition has %d groups, want 2", s.Groups())
	}
	s.Union(a, b)
	if c, _ := s.Connected(a, b); !c {
		t.Error("new keys not connected after union")
	}
	if sz, _ := s.GroupSize(s.MakeSet()); sz != 1 {
		t.Errorf("fresh key's group has size %d, want 1", sz)
	}
}

// Random unions against an oracle of explicit group labels; Find must stay
// consistent with the oracle under heavy path compression.
func TestDisjointSet_Random(t *testing.T) {
	const n = 512
	s := MakeDisjointSet(n)
	labels := make([]uint, n)
	for i := range labels {
		labels[i] = uint(i)
	}
	relabel := func(from, to uint) {
		for i := range labels {
			if labels[i] == from {
				labels[i] = to
			}
		}
	}
	for range n * 4 {
		a, b := uint(rg.Intn(n)), uint(rg.Intn(n))
		if e := s.Union(a, b); e != nil {
			t.Fatalf("failed to union %d and %d: %v", a, b, e)
		}
		relabel(labels[a], labels[b])
	}
	groups := make(map[uint]uint, n)
	for i := uint(0); i < n; i++ {
		groups[labels[i]]++
	}
	if s.Groups() != uint(len(groups)) {
		t.Fatalf("partition has %d groups, want %d", s.Groups(), len(groups))
	}
	for i := uint(0); i < n; i++ {
		for j := uint(0); j < n; j += 17 {
			c, _ := s.Connected(i, j)
			if c != (labels[i] == labels[j]) {
				t.Fatalf("connected(%d, %d) = %v, oracle disagrees", i, j, c)
			}
		}
	}
	for i := uint(0); i < n; i++ {
		if sz, _ := s.GroupSize(i); sz != groups[labels[i]] {
			t.Errorf("group of %d has size %d, want %d", i, sz, groups[labels[i]])
		}
	}
}
