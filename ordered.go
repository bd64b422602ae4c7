package wavl

import "golang.org/x/exp/constraints"

//
// A generic ordered map layered over the intrusive tree.  The map is a
// client of the core: it owns its entries, each of which embeds a Node,
// and supplies comparators specialized to the key type.  Callers that
// want to control allocation themselves use Tree directly.
//

func compareOrdered[T constraints.Ordered](a, b T) int {
	if a < b {
		return -1
	}

	if a > b {
		return 1
	}

	return 0
}

type mapEntry[K constraints.Ordered, V any] struct {
	node  Node
	key   K
	value V
}

// Map is an ordered key/value container with O(log n) insertion, lookup
// and deletion.  Like the underlying tree it is not safe for concurrent
// use.
type Map[K constraints.Ordered, V any] struct {
	tree Tree
	len  int
}

// NewMap returns an empty ordered map.
func NewMap[K constraints.Ordered, V any]() *Map[K, V] {
	m := &Map[K, V]{}

	nodeCmp := func(a, b any) (int, error) {
		return compareOrdered(a.(*mapEntry[K, V]).key, b.(*mapEntry[K, V]).key), nil
	}
	keyCmp := func(key, owner any) (int, error) {
		return compareOrdered(key.(K), owner.(*mapEntry[K, V]).key), nil
	}

	// Both comparators are present, so Init cannot fail
	_ = m.tree.Init(nodeCmp, keyCmp)

	return m
}

// Put inserts a key/value pair, replacing the value if the key is
// already present.
func (m *Map[K, V]) Put(key K, val V) {
	if n, err := m.tree.Find(key); err == nil {
		n.Owner().(*mapEntry[K, V]).value = val

		return
	}

	e := &mapEntry[K, V]{key: key, value: val}

	// The key was just probed, so the insert cannot hit a duplicate
	_ = m.tree.Insert(key, &e.node, e)
	m.len++
}

// Get returns the value stored for key, and whether the key is present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	n, err := m.tree.Find(key)
	if err != nil {
		var zero V

		return zero, false
	}

	return n.Owner().(*mapEntry[K, V]).value, true
}

// Delete removes key from the map, reporting whether it was present.
func (m *Map[K, V]) Delete(key K) bool {
	n, err := m.tree.Find(key)
	if err != nil {
		return false
	}

	_ = m.tree.Remove(n)
	m.len--

	return true
}

// Len returns the number of entries in the map
func (m *Map[K, V]) Len() int {
	return m.len
}

// Clear drops every entry.  The map owns its entries, so releasing the
// root releases the whole graph.
func (m *Map[K, V]) Clear() {
	m.tree.root = nil
	m.len = 0
}

// Keys returns every key in ascending order.
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.len)

	for n := m.tree.First(); n != nil; n = n.Next() {
		keys = append(keys, n.Owner().(*mapEntry[K, V]).key)
	}

	return keys
}

// Min returns the least key and its value, or false for an empty map.
func (m *Map[K, V]) Min() (K, V, bool) {
	return m.edge(m.tree.First())
}

// Max returns the greatest key and its value, or false for an empty map.
func (m *Map[K, V]) Max() (K, V, bool) {
	return m.edge(m.tree.Last())
}

func (m *Map[K, V]) edge(n *Node) (K, V, bool) {
	if n == nil {
		var zeroK K
		var zeroV V

		return zeroK, zeroV, false
	}

	e := n.Owner().(*mapEntry[K, V])

	return e.key, e.value, true
}
