package tam

// ordered.go implements a minimal ordered map from Addr to int, used to
// track the heap's allocated and free blocks (§4.D). Iteration always
// visits keys in ascending address order, which is what first-fit
// allocation requires.
//
// No ordered-map library appears anywhere in the example corpus this
// repository was grounded on, so this is a small hand-rolled structure with
// an inline binary search rather than an imported dependency;
// see DESIGN.md for the complete justification.
type orderedMap struct {
	keys []Addr
	vals map[Addr]int
}

func newOrderedMap() *orderedMap {
	return &orderedMap{vals: make(map[Addr]int)}
}

func (m *orderedMap) search(key Addr) int {
	lo, hi := 0, len(m.keys)
	for lo < hi {
		mid := (lo + hi) / 2
		if m.keys[mid] < key {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	return lo
}

// Get returns the value for key and whether it was present.
func (m *orderedMap) Get(key Addr) (int, bool) {
	v, ok := m.vals[key]
	return v, ok
}

// Set inserts or overwrites the value for key.
func (m *orderedMap) Set(key Addr, val int) {
	if _, ok := m.vals[key]; !ok {
		i := m.search(key)
		m.keys = append(m.keys, 0)
		copy(m.keys[i+1:], m.keys[i:])
		m.keys[i] = key
	}

	m.vals[key] = val
}

// Delete removes key, if present.
func (m *orderedMap) Delete(key Addr) {
	if _, ok := m.vals[key]; !ok {
		return
	}

	i := m.search(key)
	m.keys = append(m.keys[:i], m.keys[i+1:]...)
	delete(m.vals, key)
}

// Len returns the number of entries.
func (m *orderedMap) Len() int {
	return len(m.keys)
}

// Range calls fn for every entry in ascending key order, stopping early if
// fn returns false.
func (m *orderedMap) Range(fn func(key Addr, val int) bool) {
	for _, k := range m.keys {
		if !fn(k, m.vals[k]) {
			return
		}
	}
}
