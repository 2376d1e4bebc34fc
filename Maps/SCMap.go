package Maps

// scNode is one entry in a bucket's singly linked chain.
type scNode[K comparable, V any] struct {
	hash  uint
	key   K
	value V
	next  *scNode[K, V]
}

// SCMap is a separate chaining hashtable: each bucket heads a singly
// linked list of the entries hashing to it. The table doubles once the
// average chain length reaches scMaxLoad and halves when it drops below a
// quarter of that, so a burst of deletions gives the memory back.
// SCMap shouldn't be created directly using struct literal.
type SCMap[K comparable, V any] struct {
	table []*scNode[K, V]
	sz    uint
	hashF func(K) uint
}

const (
	scMinCap  uint = 8
	scMaxLoad      = 1.0
)

// MakeSCMap with room for about initCap entries before the first rebuild.
// hashF may be nil, in which case a seeded runtime hash of the whole key is
// used; supply a typed hash whenever possible, see Hasher.
func MakeSCMap[K comparable, V any](initCap uint, hashF func(K) uint) *SCMap[K, V] {
	if hashF == nil {
		hashF = defaultHash[K]()
	}
	c := scMinCap
	for float64(initCap) >= scMaxLoad*float64(c) {
		c <<= 1
	}
	return &SCMap[K, V]{make([]*scNode[K, V], c), 0, hashF}
}

func (u *SCMap[K, V]) Size() uint {
	return u.sz
}

func (u *SCMap[K, V]) bucket(h uint) uint {
	return h & (uint(len(u.table)) - 1)
}

// Store [Map.Store]
// Time: amortized O(1)
func (u *SCMap[K, V]) Store(k K, v V) {
	if float64(u.sz+1) >= scMaxLoad*float64(len(u.table)) {
		u.rebuild(uint(len(u.table)) << 1)
	}
	h := u.hashF(k)
	i := u.bucket(h)
	for n := u.table[i]; n != nil; n = n.next {
		if n.hash == h && n.key == k {
			n.value = v
			return
		}
	}
	u.table[i] = &scNode[K, V]{h, k, v, u.table[i]}
	u.sz++
}

// Load [Map.Load]
// Time: O(1) expected
func (u *SCMap[K, V]) Load(k K) (V, error) {
	h := u.hashF(k)
	for n := u.table[u.bucket(h)]; n != nil; n = n.next {
		if n.hash == h && n.key == k {
			return n.value, nil
		}
	}
	return *new(V), &KeyNotFoundError{}
}

// Has [Map.Has]
func (u *SCMap[K, V]) Has(k K) bool {
	h := u.hashF(k)
	for n := u.table[u.bucket(h)]; n != nil; n = n.next {
		if n.hash == h && n.key == k {
			return true
		}
	}
	return false
}

// Delete [Map.Delete]
// Time: O(1) expected
func (u *SCMap[K, V]) Delete(k K) (V, error) {
	h := u.hashF(k)
	i := u.bucket(h)
	for p := &u.table[i]; *p != nil; p = &(*p).next {
		if n := *p; n.hash == h && n.key == k {
			*p = n.next
			u.sz--
			if c := uint(len(u.table)); c > scMinCap && float64(u.sz) < scMaxLoad*float64(c)/4 {
				u.rebuild(c >> 1)
			}
			return n.value, nil
		}
	}
	return *new(V), &KeyNotFoundError{}
}

// Range [Map.Range]
// Time: O(n + capacity)
func (u *SCMap[K, V]) Range(f func(K, V) bool) {
	for _, head := range u.table {
		for n := head; n != nil; n = n.next {
			if !f(n.key, n.value) {
				return
			}
		}
	}
}

// rebuild relinks every node into a table of capacity c; the stored hashes
// make this a pointer shuffle with no rehashing.
func (u *SCMap[K, V]) rebuild(c uint) {
	old := u.table
	u.table = make([]*scNode[K, V], c)
	for _, head := range old {
		for n := head; n != nil; {
			next := n.next
			i := u.bucket(n.hash)
			n.next = u.table[i]
			u.table[i] = n
			n = next
		}
	}
}
