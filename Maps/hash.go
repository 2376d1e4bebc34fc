package Maps

import (
	_ "runtime"
	"unsafe"
)

//go:linkname cheapRandN runtime.cheaprandn
//go:nosplit
func cheapRandN(n uint32) uint32

//go:linkname rtHash runtime.memhash
//go:noescape
func rtHash(ptr unsafe.Pointer, seed uint, len uintptr) uint

//go:linkname rtHash64 runtime.memhash64
//go:noescape
func rtHash64(ptr unsafe.Pointer, seed uint) uint

//go:linkname rtHash32 runtime.memhash32
//go:noescape
func rtHash32(ptr unsafe.Pointer, seed uint) uint

//go:linkname rtStrHash runtime.strhash
//go:noescape
func rtStrHash(ptr unsafe.Pointer, seed uint) uint

type hold struct {
	rtype *uintptr
	ptr   unsafe.Pointer
}

// Hasher is a seed for the runtime's memory hash functions; it backs the
// default hash of the map constructors. Create it with MakeHasher. It's
// recommended to pass your own hash function to the constructors whenever
// possible instead of relying on HashAny.
type Hasher uint

// MakeHasher returns a Hasher with a per-process random seed.
func MakeHasher() Hasher {
	return Hasher(uint(cheapRandN(1<<31))<<32 | uint(cheapRandN(1<<31)))
}

// HashAny hashes an interface value based on the memory content of v. It
// relies on the internal struct's memory layout, which is unsafe practice.
// Avoid using it when a typed hash is available.
func (u Hasher) HashAny(v any) uint {
	h := (*hold)(unsafe.Pointer(&v))
	return u.HashMem(h.ptr, *h.rtype)
}

// HashMem hashes the memory contents in the range [addr, addr+size) as bytes.
func (u Hasher) HashMem(addr unsafe.Pointer, size uintptr) uint {
	if size == 4 {
		return rtHash32(addr, uint(u))
	} else if size == 8 {
		return rtHash64(addr, uint(u))
	}
	return rtHash(addr, uint(u), size)
}

// HashInt hashes v.
func (u Hasher) HashInt(v int) uint {
	if unsafe.Sizeof(v) == 4 {
		return rtHash32(unsafe.Pointer(&v), uint(u))
	}
	return rtHash64(unsafe.Pointer(&v), uint(u))
}

// HashUint hashes v.
func (u Hasher) HashUint(v uint) uint {
	if unsafe.Sizeof(v) == 4 {
		return rtHash32(unsafe.Pointer(&v), uint(u))
	}
	return rtHash64(unsafe.Pointer(&v), uint(u))
}

// HashString directly hashes a string, it's faster than HashAny(string).
func (u Hasher) HashString(v string) uint {
	return rtStrHash(unsafe.Pointer(&v), uint(u))
}

// defaultHash is the hash the constructors fall back to when given a nil
// hash function.
func defaultHash[K comparable]() func(K) uint {
	h := MakeHasher()
	return func(k K) uint {
		return h.HashAny(k)
	}
}
