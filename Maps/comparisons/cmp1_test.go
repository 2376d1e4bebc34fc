package comparisons

import (
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/go-dsa/collections/Maps"
)

const benchmarkItemCount = 1024

func hashUintptr(x uintptr) uint {
	return uint(x)
}

// compares with https://github.com/cornelk/hashmap using https://github.com/cornelk/hashmap/blob/main/benchmarks/benchmark_test.go.
// compares with https://github.com/alphadose/haxmap using the above benchmarks.
// Both of these are concurrent maps, so the single threaded tables here have
// an inherent edge; the comparison is still useful as a sanity bound.
func setupHashMap(b *testing.B) *hashmap.Map[uintptr, uintptr] {
	b.Helper()

	m := hashmap.New[uintptr, uintptr]()
	for i := uintptr(0); i < benchmarkItemCount; i++ {
		m.Set(i, i)
	}
	return m
}

func setupHaxMap(b *testing.B) *haxmap.Map[uintptr, uintptr] {
	b.Helper()

	m := haxmap.New[uintptr, uintptr]()
	for i := uintptr(0); i < benchmarkItemCount; i++ {
		m.Set(i, i)
	}
	return m
}

func setupOAMap(b *testing.B) *Maps.OAMap[uintptr, uintptr] {
	b.Helper()

	m := Maps.MakeOAMap[uintptr, uintptr](benchmarkItemCount, hashUintptr)
	for i := uintptr(0); i < benchmarkItemCount; i++ {
		m.Store(i, i)
	}
	return m
}

func setupSCMap(b *testing.B) *Maps.SCMap[uintptr, uintptr] {
	b.Helper()

	m := Maps.MakeSCMap[uintptr, uintptr](benchmarkItemCount, hashUintptr)
	for i := uintptr(0); i < benchmarkItemCount; i++ {
		m.Store(i, i)
	}
	return m
}

func Benchmark1ReadHashMapUint(b *testing.B) {
	m := setupHashMap(b)
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		for i := uintptr(0); i < benchmarkItemCount; i++ {
			j, _ := m.Get(i)
			if j != i {
				b.Fail()
			}
		}
	}
}

func Benchmark1ReadHaxMapUint(b *testing.B) {
	m := setupHaxMap(b)
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		for i := uintptr(0); i < benchmarkItemCount; i++ {
			j, _ := m.Get(i)
			if j != i {
				b.Fail()
			}
		}
	}
}

func Benchmark1ReadOAMapUint(b *testing.B) {
	m := setupOAMap(b)
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		for i := uintptr(0); i < benchmarkItemCount; i++ {
			j, _ := m.Load(i)
			if j != i {
				b.Fail()
			}
		}
	}
}

func Benchmark1ReadSCMapUint(b *testing.B) {
	m := setupSCMap(b)
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		for i := uintptr(0); i < benchmarkItemCount; i++ {
			j, _ := m.Load(i)
			if j != i {
				b.Fail()
			}
		}
	}
}

func Benchmark1WriteHashMapUint(b *testing.B) {
	m := hashmap.New[uintptr, uintptr]()
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		for i := uintptr(0); i < benchmarkItemCount; i++ {
			m.Set(i, i)
		}
	}
}

func Benchmark1WriteHaxMapUint(b *testing.B) {
	m := haxmap.New[uintptr, uintptr]()
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		for i := uintptr(0); i < benchmarkItemCount; i++ {
			m.Set(i, i)
		}
	}
}

func Benchmark1WriteOAMapUint(b *testing.B) {
	m := Maps.MakeOAMap[uintptr, uintptr](benchmarkItemCount, hashUintptr)
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		for i := uintptr(0); i < benchmarkItemCount; i++ {
			m.Store(i, i)
		}
	}
}

func Benchmark1WriteSCMapUint(b *testing.B) {
	m := Maps.MakeSCMap[uintptr, uintptr](benchmarkItemCount, hashUintptr)
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		for i := uintptr(0); i < benchmarkItemCount; i++ {
			m.Store(i, i)
		}
	}
}
