package Maps

// entry slot states: free (never used), live, or a tombstone left by
// Delete. Tombstones keep probe sequences intact and are reclaimed when
// the table rebuilds.
type oaEntry[K comparable, V any] struct {
	hash    uint
	key     K
	value   V
	live    bool
	deleted bool
}

// OAMap is an open addressing hashtable probing with triangular numbers,
// (hash + (t*t+t)/2) mod capacity, which visits every slot of a power of
// two table exactly once. The table rebuilds at double the capacity once
// the load factor (live entries plus tombstones) passes oaMaxLoad.
// OAMap shouldn't be created directly using struct literal.
type OAMap[K comparable, V any] struct {
	table []oaEntry[K, V]
	sz    uint //live entries
	used  uint //live entries + tombstones
	hashF func(K) uint
}

const (
	oaMinCap  uint = 8
	oaMaxLoad      = 0.75
)

// MakeOAMap with room for about initCap entries before the first rebuild.
// hashF may be nil, in which case a seeded runtime hash of the whole key is
// used; supply a typed hash whenever possible, see Hasher.
func MakeOAMap[K comparable, V any](initCap uint, hashF func(K) uint) *OAMap[K, V] {
	if hashF == nil {
		hashF = defaultHash[K]()
	}
	c := oaMinCap
	for float64(initCap) >= oaMaxLoad*float64(c) {
		c <<= 1
	}
	return &OAMap[K, V]{make([]oaEntry[K, V], c), 0, 0, hashF}
}

func (u *OAMap[K, V]) Size() uint {
	return u.sz
}

// find probes for k. at is the slot holding k, or -1 if k is absent;
// insert is the first reusable slot (free or tombstone) seen on the way,
// where a new entry for k belongs.
func (u *OAMap[K, V]) find(h uint, k K) (insert uint, at int) {
	mask := uint(len(u.table)) - 1
	insert = ^uint(0)
	for t := uint(0); t < uint(len(u.table)); t++ {
		i := (h + (t*t+t)/2) & mask
		e := &u.table[i]
		if !e.live {
			if insert == ^uint(0) {
				insert = i
			}
			if !e.deleted {
				return insert, -1
			}
			continue
		}
		if e.hash == h && e.key == k {
			return i, int(i)
		}
	}
	return insert, -1
}

// Store [Map.Store]
// Time: amortized O(1)
func (u *OAMap[K, V]) Store(k K, v V) {
	if float64(u.used+1) >= oaMaxLoad*float64(len(u.table)) {
		u.rebuild()
	}
	h := u.hashF(k)
	insert, at := u.find(h, k)
	if at >= 0 {
		u.table[at].value = v
		return
	}
	if !u.table[insert].deleted {
		u.used++ //fresh slot; reusing a tombstone doesn't raise the load
	}
	u.table[insert] = oaEntry[K, V]{h, k, v, true, false}
	u.sz++
}

// Load [Map.Load]
// Time: O(1) expected
func (u *OAMap[K, V]) Load(k K) (V, error) {
	if _, at := u.find(u.hashF(k), k); at >= 0 {
		return u.table[at].value, nil
	}
	return *new(V), &KeyNotFoundError{}
}

// Has [Map.Has]
func (u *OAMap[K, V]) Has(k K) bool {
	_, at := u.find(u.hashF(k), k)
	return at >= 0
}

// Delete [Map.Delete]
// The slot becomes a tombstone; the key and value are zeroed so they don't
// pin memory until the next rebuild.
// Time: O(1) expected
func (u *OAMap[K, V]) Delete(k K) (V, error) {
	_, at := u.find(u.hashF(k), k)
	if at < 0 {
		return *new(V), &KeyNotFoundError{}
	}
	v := u.table[at].value
	u.table[at] = oaEntry[K, V]{deleted: true}
	u.sz--
	return v, nil
}

// Range [Map.Range]
// Time: O(capacity)
func (u *OAMap[K, V]) Range(f func(K, V) bool) {
	for i := range u.table {
		if u.table[i].live && !f(u.table[i].key, u.table[i].value) {
			return
		}
	}
}

// rebuild doubles the capacity (or keeps it, when tombstones alone pushed
// the load over the threshold) and reinserts every live entry, dropping
// all tombstones.
func (u *OAMap[K, V]) rebuild() {
	old := u.table
	c := uint(len(old))
	if float64(u.sz+1) >= oaMaxLoad*float64(c)/2 {
		c <<= 1
	}
	u.table = make([]oaEntry[K, V], c)
	u.sz, u.used = 0, 0
	for i := range old {
		if old[i].live {
			insert, _ := u.find(old[i].hash, old[i].key)
			u.table[insert] = old[i]
			u.sz++
			u.used++
		}
	}
}
