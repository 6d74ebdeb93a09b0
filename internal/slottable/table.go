// Package slottable emulates the slot storage of the decommissioned
// generator's associative container: an open-addressing table with the
// legacy probe sequence and the legacy growth policy. Only the parts the
// order emulation observes are implemented: insertion of distinct string
// keys and read-out of the final physical slot layout. There are no
// deletions, no values, and no tombstones.
package slottable

// minCapacity is the capacity every table starts with. The emulated
// container never allocated a smaller slot array and never shrank.
const minCapacity = 8

// largeTableThreshold is where the emulated container switched from 4x to
// 2x over-allocation when growing. Vocabulary-sized inputs never reach it;
// the branch is kept for fidelity with the original growth formula.
const largeTableThreshold = 50000

type slot struct {
	key      string
	hash     uint64 // unsigned bit pattern of the active width, zero-extended
	occupied bool
}

// HashFunc maps a key to the unsigned bit pattern of its legacy hash,
// zero-extended to 64 bits. Probe arithmetic is invariant under zero
// extension, so one code path serves both historical word widths.
type HashFunc func(string) uint64

// Table mimics the legacy container's slot array. The zero value is not
// usable; create instances with New.
type Table struct {
	slots []slot
	mask  uint64
	fill  int // occupied slots
	used  int // non-empty, non-tombstone slots; equals fill absent deletions
	hash  HashFunc
}

// New returns an empty table with the legacy initial capacity of 8.
func New(hash HashFunc) *Table {
	return &Table{
		slots: make([]slot, minCapacity),
		mask:  minCapacity - 1,
		hash:  hash,
	}
}

// Len returns the number of keys stored.
func (t *Table) Len() int { return t.used }

// Cap returns the current slot-array capacity.
func (t *Table) Cap() int { return len(t.slots) }

// Insert adds key to the table using the legacy probe sequence.
// Re-inserting a key already present is a no-op. After a new key lands,
// the table grows if occupancy reached two thirds of capacity, the same
// trigger the emulated container used.
func (t *Table) Insert(key string) {
	h := t.hash(key)
	i := t.probe(key, h)
	if t.slots[i].occupied {
		return // equal key already stored
	}
	t.slots[i] = slot{key: key, hash: h, occupied: true}
	t.fill++
	t.used++
	if t.fill*3 >= len(t.slots)*2 {
		t.grow()
	}
}

// probe walks the legacy probe sequence for (key, h) and returns the index
// of either the slot already holding key or the first empty slot.
func (t *Table) probe(key string, h uint64) uint64 {
	i := h & t.mask
	perturb := h
	for t.slots[i].occupied && t.slots[i].key != key {
		i = (i*5 + perturb + 1) & t.mask
		perturb >>= 5
	}
	return i
}

// grow reallocates the slot array per the legacy growth formula and
// replays the surviving slots into it.
//
// Two details matter for fidelity. The target is the smallest power of two
// strictly greater than 4x (2x past the large-table threshold) the used
// count, floor 8. And the replay walks the old array in ascending physical
// index order (not original insertion order) because that is how the
// emulated container rehashed.
func (t *Table) grow() {
	newCap := targetCapacity(t.used)

	old := t.slots
	t.slots = make([]slot, newCap)
	t.mask = uint64(newCap - 1)
	t.fill = 0
	t.used = 0

	for _, s := range old {
		if !s.occupied {
			continue
		}
		// Keys are distinct here, so the probe lands on an empty slot.
		i := s.hash & t.mask
		perturb := s.hash
		for t.slots[i].occupied {
			i = (i*5 + perturb + 1) & t.mask
			perturb >>= 5
		}
		t.slots[i] = s
		t.fill++
		t.used++
	}
}

// targetCapacity computes the post-growth capacity for a table holding
// used keys: the smallest power of two strictly greater than the legacy
// over-allocation target, never below the initial capacity.
func targetCapacity(used int) int {
	minused := 4 * used
	if used > largeTableThreshold {
		minused = 2 * used
	}
	newCap := minCapacity
	for newCap <= minused {
		newCap <<= 1
	}
	return newCap
}

// Keys returns the stored keys in ascending physical slot order. This is
// the emulated "iteration order" the legacy generator leaked into its
// output.
func (t *Table) Keys() []string {
	keys := make([]string, 0, t.used)
	for _, s := range t.slots {
		if s.occupied {
			keys = append(keys, s.key)
		}
	}
	return keys
}

// SlotIndexes returns, for testing, the physical index of every occupied
// slot in ascending order, aligned with Keys.
func (t *Table) SlotIndexes() []int {
	idx := make([]int, 0, t.used)
	for i, s := range t.slots {
		if s.occupied {
			idx = append(idx, i)
		}
	}
	return idx
}
