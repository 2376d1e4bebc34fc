package Maps

// Map is the single-threaded hashtable contract shared by OAMap and SCMap.
// Unlike the tree package there is no ordering requirement on keys, only
// comparability and a hash function; iteration order is unspecified.
// Load and Delete report a missing key with KeyNotFoundError.
type Map[K comparable, V any] interface {
	//Store inserts key with value, replacing the value if key is present.
	Store(key K, value V)
	//Load the value associated with key.
	Load(key K) (V, error)
	//Has reports whether key is present.
	Has(key K) bool
	//Delete removes key and returns the value it held.
	Delete(key K) (V, error)
	//Size of the map.
	Size() uint
	//Range calls f on every entry until f returns false. The map must not
	//be modified during the iteration.
	Range(f func(K, V) bool)
}

type KeyNotFoundError struct {
}

func (e *KeyNotFoundError) Error() string {
	return "Map: key not found."
}
