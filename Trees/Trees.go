package Trees

// OrderedMap represents an ordered key-value mapping implemented using
// binary search tree nodes. All implementations in this package share the
// behaviors defined here; anything special is noted on the specific
// implementation.
// Receivers that return an error use the error types below to report the
// exact failure; a nil error means the returned values are defined.
// A failed Put or Take leaves the tree exactly as it was before the call.
// D denotes the height of the tree: O(log n) by construction for AVLTree
// and RBTree, O(log n) average but O(n) worst case for BSTree (sorted
// insertion order degrades it to a list).
type OrderedMap[K, V any] interface {
	//Put inserts key with value. If key is already present, only its value
	//is replaced and the structure is untouched. Fails with InvalidKeyError
	//if key can't be compared.
	Put(key K, value V) error
	//Take removes key and returns the value it held. Fails with
	//KeyNotFoundError if key is absent.
	Take(key K) (V, error)
	//Get the value associated with key. Fails with KeyNotFoundError if key
	//is absent.
	Get(key K) (V, error)
	//Has reports whether key is present. Use this instead of Get when only
	//existence matters.
	Has(key K) bool
	//Minimum key and its value. Fails with EmptyTreeError on an empty tree.
	Minimum() (K, V, error)
	//Maximum key and its value. Fails with EmptyTreeError on an empty tree.
	Maximum() (K, V, error)
	//Predecessor returns the greatest entry less than key. key itself must
	//be present(KeyNotFoundError otherwise); fails with NotFoundError when
	//key is the minimum.
	Predecessor(key K) (K, V, error)
	//Successor returns the smallest entry greater than key. key itself must
	//be present(KeyNotFoundError otherwise); fails with NotFoundError when
	//key is the maximum.
	Successor(key K) (K, V, error)
	//Size of the tree.
	Size() uint
	//Traverse returns a closure function f acting like an iterator. f gives
	//entries in the given order; calling f is like calling "Next()" of
	//iterators: k, v, valid=f(). k and v are meaningful only if valid is
	//true; valid can't turn true after it first became false. Each call to
	//Traverse restarts from the beginning. The tree must not be modified
	//during the iteration of f.
	Traverse(o Order) func() (K, V, bool)
	//Corrupt returns whether the tree has corrupt structures, when the
	//links, ordering, or balancing metadata at some node violate the
	//properties of that specific implementation.
	Corrupt() bool
}

// Order selects the sequence Traverse yields entries in.
type Order byte

const (
	PreOrder Order = iota
	InOrder        //yields strictly increasing keys.
	PostOrder
	BreadthOrder
)

type KeyNotFoundError struct {
}

func (e *KeyNotFoundError) Error() string {
	return "Tree: key not found."
}

type EmptyTreeError struct {
}

func (e *EmptyTreeError) Error() string {
	return "Tree is empty: no Minimum or Maximum."
}

// NotFoundError reports a Predecessor or Successor call on a key that has
// no qualifying neighbor.
type NotFoundError struct {
}

func (e *NotFoundError) Error() string {
	return "Tree: key has no such neighbor."
}

// InvalidKeyError reports a key on which comparison fails. For Ordered key
// types the only such values are the ones not ordered against themselves,
// i.e. floating point NaN.
type InvalidKeyError struct {
}

func (e *InvalidKeyError) Error() string {
	return "Tree: key is incomparable."
}
