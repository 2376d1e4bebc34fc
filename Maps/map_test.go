package Maps

import (
	"errors"
	"math/rand"
	"testing"
)

var rg = *rand.New(rand.NewSource(0))

const (
	mN        = 4000
	mKeyRange = 8000
)

func variants() map[string]Map[int, int] {
	return map[string]Map[int, int]{
		"open addressing":   MakeOAMap[int, int](0, nil),
		"separate chaining": MakeSCMap[int, int](0, nil),
	}
}

func TestMap_StoreLoad(t *testing.T) {
	for name, m := range variants() {
		t.Run(name, func(t *testing.T) {
			oracle := make(map[int]int, mN)
			for range mN {
				k, v := rg.Intn(mKeyRange), rg.Int()
				m.Store(k, v)
				oracle[k] = v
			}
			if int(m.Size()) != len(oracle) {
				t.Fatalf("map size is %d, want %d", m.Size(), len(oracle))
			}
			for k, want := range oracle {
				got, e := m.Load(k)
				if e != nil {
					t.Fatalf("failed to load %d: %v", k, e)
				}
				if got != want {
					t.Errorf("loaded %d for key %d, want %d", got, k, want)
				}
			}
			if m.Has(mKeyRange + 1) {
				t.Error("has a key that was never stored")
			}
			if _, e := m.Load(mKeyRange + 1); !errors.As(e, new(*KeyNotFoundError)) {
				t.Errorf("load of absent key gave %v", e)
			}
		})
	}
}

func TestMap_StoreReplaces(t *testing.T) {
	for name, m := range variants() {
		t.Run(name, func(t *testing.T) {
			m.Store(1, 10)
			m.Store(1, 20)
			if m.Size() != 1 {
				t.Fatalf("map size is %d after replacing store, want 1", m.Size())
			}
			if v, _ := m.Load(1); v != 20 {
				t.Errorf("loaded %d, want the replacing value 20", v)
			}
		})
	}
}

func TestMap_Delete(t *testing.T) {
	for name, m := range variants() {
		t.Run(name, func(t *testing.T) {
			oracle := make(map[int]int, mN)
			for range mN {
				k, v := rg.Intn(mKeyRange), rg.Int()
				m.Store(k, v)
				oracle[k] = v
			}
			for k, want := range oracle {
				got, e := m.Delete(k)
				if e != nil {
					t.Fatalf("failed to delete %d: %v", k, e)
				}
				if got != want {
					t.Errorf("delete of %d gave %d, want %d", k, got, want)
				}
				if m.Has(k) {
					t.Fatalf("still has %d after deleting it", k)
				}
				if _, e = m.Delete(k); !errors.As(e, new(*KeyNotFoundError)) {
					t.Fatalf("second delete of %d gave %v", k, e)
				}
			}
			if m.Size() != 0 {
				t.Errorf("map size is %d after draining, want 0", m.Size())
			}
		})
	}
}

// Mixed stores and deletes churn tombstones in the open addressing table
// and force both growth and shrink in the chaining one.
func TestMap_Churn(t *testing.T) {
	for name, m := range variants() {
		t.Run(name, func(t *testing.T) {
			oracle := make(map[int]int)
			for range mN * 4 {
				k := rg.Intn(mKeyRange / 4)
				if rg.Intn(2) == 0 {
					v := rg.Int()
					m.Store(k, v)
					oracle[k] = v
				} else {
					_, want := oracle[k]
					_, e := m.Delete(k)
					if want != (e == nil) {
						t.Fatalf("delete of %d gave %v, key present: %v", k, e, want)
					}
					delete(oracle, k)
				}
			}
			if int(m.Size()) != len(oracle) {
				t.Fatalf("map size is %d after churn, want %d", m.Size(), len(oracle))
			}
			for k, want := range oracle {
				if got, e := m.Load(k); e != nil || got != want {
					t.Fatalf("loaded %d, %v for key %d, want %d", got, e, k, want)
				}
			}
		})
	}
}

func TestMap_Range(t *testing.T) {
	for name, m := range variants() {
		t.Run(name, func(t *testing.T) {
			for i := range 100 {
				m.Store(i, i*2)
			}
			seen := make(map[int]bool, 100)
			m.Range(func(k, v int) bool {
				if seen[k] {
					t.Fatalf("ranged over %d twice", k)
				}
				if v != k*2 {
					t.Fatalf("ranged over %d: %d, want %d", k, v, k*2)
				}
				seen[k] = true
				return true
			})
			if len(seen) != 100 {
				t.Fatalf("ranged over %d keys, want 100", len(seen))
			}
			count := 0
			m.Range(func(int, int) bool {
				count++
				return count < 10
			})
			if count != 10 {
				t.Errorf("range visited %d keys after an early stop, want 10", count)
			}
		})
	}
}

// A constant hash funnels every key through one probe sequence (or chain),
// exercising collision handling and tombstone reuse in isolation.
func TestMap_Collisions(t *testing.T) {
	allOnes := func(int) uint { return 1 }
	for name, m := range map[string]Map[int, int]{
		"open addressing":   MakeOAMap[int, int](0, allOnes),
		"separate chaining": MakeSCMap[int, int](0, allOnes),
	} {
		t.Run(name, func(t *testing.T) {
			for i := range 64 {
				m.Store(i, -i)
			}
			for i := 0; i < 64; i += 2 {
				if _, e := m.Delete(i); e != nil {
					t.Fatalf("failed to delete %d: %v", i, e)
				}
			}
			for i := range 64 {
				got, e := m.Load(i)
				if present := i%2 == 1; present != (e == nil) {
					t.Fatalf("load of %d gave %v, key present: %v", i, e, present)
				} else if present && got != -i {
					t.Fatalf("loaded %d for key %d, want %d", got, i, -i)
				}
			}
			for i := 0; i < 64; i += 2 {
				m.Store(i, i)
			}
			if m.Size() != 64 {
				t.Fatalf("map size is %d after refilling, want 64", m.Size())
			}
		})
	}
}

func TestMap_TypedHash(t *testing.T) {
	h := MakeHasher()
	m := MakeOAMap[string, int](16, func(s string) uint { return h.HashString(s) })
	m.Store("alpha", 1)
	m.Store("beta", 2)
	if v, e := m.Load("beta"); e != nil || v != 2 {
		t.Errorf("loaded %d, %v for beta, want 2", v, e)
	}
	if m.Has("gamma") {
		t.Error("has a key that was never stored")
	}
}
