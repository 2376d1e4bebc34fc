package Sets

// DisjointSet tracks a partition of the dense integer keys 0..Len()-1 into
// disjoint groups, supporting near O(1) Find and Union through path
// compression and union by rank. Keys are handed out sequentially by
// MakeSet; out of range keys fail with KeyNotFoundError.
// DisjointSet shouldn't be created directly using struct literal.
type DisjointSet struct {
	parents []uint
	ranks   []byte
	sizes   []uint
	groups  uint
}

type KeyNotFoundError struct {
}

func (e *KeyNotFoundError) Error() string {
	return "DisjointSet: key out of range."
}

// MakeDisjointSet with keys 0..size-1, each in its own group.
func MakeDisjointSet(size uint) *DisjointSet {
	u := &DisjointSet{
		parents: make([]uint, size),
		ranks:   make([]byte, size),
		sizes:   make([]uint, size),
		groups:  size,
	}
	for i := range u.parents {
		u.parents[i] = uint(i)
		u.sizes[i] = 1
	}
	return u
}

// Len is the total number of keys.
func (u *DisjointSet) Len() uint {
	return uint(len(u.parents))
}

// Groups is the current number of disjoint groups.
func (u *DisjointSet) Groups() uint {
	return u.groups
}

// MakeSet adds a new key in its own group and returns it.
func (u *DisjointSet) MakeSet() uint {
	k := uint(len(u.parents))
	u.parents = append(u.parents, k)
	u.ranks = append(u.ranks, 0)
	u.sizes = append(u.sizes, 1)
	u.groups++
	return k
}

// Find the representative of key's group. Every node on the walked path is
// relinked directly to the root (path compression).
// Time: near O(1) amortized
func (u *DisjointSet) Find(key uint) (uint, error) {
	if key >= uint(len(u.parents)) {
		return 0, &KeyNotFoundError{}
	}
	root := key
	for root != u.parents[root] {
		root = u.parents[root]
	}
	for key != u.parents[key] {
		key, u.parents[key] = u.parents[key], root
	}
	return root, nil
}

// Union merges the groups of a and b; the root with the larger rank wins,
// keeping the forest shallow. Merging a group with itself is a no-op.
// Time: near O(1) amortized
func (u *DisjointSet) Union(a, b uint) error {
	ra, e := u.Find(a)
	if e != nil {
		return e
	}
	rb, e := u.Find(b)
	if e != nil {
		return e
	}
	if ra == rb {
		return nil
	}
	if u.ranks[ra] < u.ranks[rb] {
		ra, rb = rb, ra
	}
	u.parents[rb] = ra
	if u.ranks[ra] == u.ranks[rb] {
		u.ranks[ra]++
	}
	u.sizes[ra] += u.sizes[rb]
	u.groups--
	return nil
}

// Connected reports whether a and b are in the same group.
func (u *DisjointSet) Connected(a, b uint) (bool, error) {
	ra, e := u.Find(a)
	if e != nil {
		return false, e
	}
	rb, e := u.Find(b)
	if e != nil {
		return false, e
	}
	return ra == rb, nil
}

// GroupSize of the group containing key.
func (u *DisjointSet) GroupSize(key uint) (uint, error) {
	r, e := u.Find(key)
	if e != nil {
		return 0, e
	}
	return u.sizes[r], nil
}
