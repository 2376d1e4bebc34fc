package Trees

import "golang.org/x/exp/constraints"

type color bool

const (
	red   color = true
	black color = false
)

// A node in a binary search tree.
// The zero value is meaningless; nodes are created by Put and released by
// Take, and are never handed out to callers. p is a non-owning back
// reference used only for walking toward the root. h is balancing metadata
// for AVLTree and c for RBTree; BSTree ignores both.
type node[K constraints.Ordered, V any] struct {
	k       K
	v       V
	p, l, r *node[K, V]
	h       int
	c       color
}

// incomparable reports whether k fails comparison against itself. Such a
// key (float NaN) can't be placed in or searched for in a tree.
func incomparable[K constraints.Ordered](k K) bool {
	return k != k
}
