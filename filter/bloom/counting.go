package bloom

import (
	"github.com/yankun1992/fastbloom/filter"
)

// CountingBloomFilter replaces each bit of a Bloom filter with a 4-bit
// saturating counter, trading 4x the space for the ability to remove
// elements. Counters are shared between elements that hash to the same
// index, so removing one element may spuriously clear a counter shared
// with a still-present colliding element. That aliasing is structural
// to counting filters and is preserved here.
//
// Like BloomFilter, the structure performs no internal locking.
type CountingBloomFilter struct {
	config      FilterBuilder
	countingVec *CountingVec
}

// NewCountingBloomFilter builds a counting filter from a completed
// builder.
func NewCountingBloomFilter(config *FilterBuilder) *CountingBloomFilter {
	config.complete()
	countingVec := NewCountingVec((config.Size + counterSuffix) / countersPerWord)
	countingVec.Counters = config.Size
	return &CountingBloomFilter{
		config:      *config,
		countingVec: countingVec,
	}
}

// CountingFromBytes rebuilds a counting filter from the nibble-packed
// export of GetBytes. The counter count is the byte length times 2; the
// hash count and repeat-insert policy travel out-of-band.
func CountingFromBytes(array []byte, hashes uint32, enableRepeatInsert bool) (*CountingBloomFilter, error) {
	config, err := FromSizeAndHashes(uint64(len(array))*2, hashes)
	if err != nil {
		return nil, err
	}
	config.EnableRepeatInsert(enableRepeatInsert)
	return &CountingBloomFilter{
		config:      *config,
		countingVec: countingVecFromBytes(array),
	}, nil
}

// CountingFromIntArray rebuilds a counting filter from the word export
// of GetIntArray. The counter count is the word length times 8.
func CountingFromIntArray(array []uint32, hashes uint32, enableRepeatInsert bool) (*CountingBloomFilter, error) {
	config, err := FromSizeAndHashes(uint64(len(array))*8, hashes)
	if err != nil {
		return nil, err
	}
	config.EnableRepeatInsert(enableRepeatInsert)
	return &CountingBloomFilter{
		config:      *config,
		countingVec: countingVecFromUint32s(array),
	}, nil
}

// Add inserts an encoded element, incrementing each of its counters with
// saturation at 15. When repeat insertion is disabled and the element is
// already contained, Add is a no-op so repeated inserts stay idempotent.
func (cbf *CountingBloomFilter) Add(element []byte) {
	m := cbf.config.Size
	h1, h2 := filter.BaseHashes(element, m)

	if !cbf.config.RepeatInsert && cbf.containsHashes(h1, h2) {
		return
	}

	for i := uint64(1); i < uint64(cbf.config.Hashes); i++ {
		cbf.countingVec.Increment((h1 + i*h2) % m)
	}
	cbf.countingVec.Increment(h1)
}

// Remove decrements each of an encoded element's counters, flooring at
// 0. Removing an element that is not contained leaves the filter
// unchanged.
func (cbf *CountingBloomFilter) Remove(element []byte) {
	m := cbf.config.Size
	h1, h2 := filter.BaseHashes(element, m)

	if !cbf.containsHashes(h1, h2) {
		return
	}

	for i := uint64(1); i < uint64(cbf.config.Hashes); i++ {
		cbf.countingVec.Decrement((h1 + i*h2) % m)
	}
	cbf.countingVec.Decrement(h1)
}

// Contains reports whether an encoded element is present: all of its
// counters are nonzero.
func (cbf *CountingBloomFilter) Contains(element []byte) bool {
	h1, h2 := filter.BaseHashes(element, cbf.config.Size)
	return cbf.containsHashes(h1, h2)
}

func (cbf *CountingBloomFilter) containsHashes(h1, h2 uint64) bool {
	m := cbf.config.Size
	if cbf.countingVec.Get(h1) == 0 {
		return false
	}
	for i := uint64(1); i < uint64(cbf.config.Hashes); i++ {
		if cbf.countingVec.Get((h1+i*h2)%m) == 0 {
			return false
		}
	}
	return true
}

// AddBatch inserts a sequence of encoded elements, equivalent to calling
// Add for each in order.
func (cbf *CountingBloomFilter) AddBatch(elements [][]byte) {
	for _, element := range elements {
		cbf.Add(element)
	}
}

// AddInt32 inserts the 4-byte encoding of v.
func (cbf *CountingBloomFilter) AddInt32(v int32) {
	cbf.Add(filter.Int32Bytes(v))
}

// AddInt64 inserts the 8-byte encoding of v.
func (cbf *CountingBloomFilter) AddInt64(v int64) {
	cbf.Add(filter.Int64Bytes(v))
}

// AddText inserts the UTF-8 encoding of s.
func (cbf *CountingBloomFilter) AddText(s string) {
	cbf.Add(filter.TextBytes(s))
}

// RemoveInt32 removes the 4-byte encoding of v.
func (cbf *CountingBloomFilter) RemoveInt32(v int32) {
	cbf.Remove(filter.Int32Bytes(v))
}

// RemoveInt64 removes the 8-byte encoding of v.
func (cbf *CountingBloomFilter) RemoveInt64(v int64) {
	cbf.Remove(filter.Int64Bytes(v))
}

// RemoveText removes the UTF-8 encoding of s.
func (cbf *CountingBloomFilter) RemoveText(s string) {
	cbf.Remove(filter.TextBytes(s))
}

// ContainsBatch tests a sequence of encoded elements and returns one
// result per element in the given order.
func (cbf *CountingBloomFilter) ContainsBatch(elements [][]byte) []bool {
	res := make([]bool, len(elements))
	for i, element := range elements {
		res[i] = cbf.Contains(element)
	}
	return res
}

// ContainsInt32 tests the 4-byte encoding of v.
func (cbf *CountingBloomFilter) ContainsInt32(v int32) bool {
	return cbf.Contains(filter.Int32Bytes(v))
}

// ContainsInt64 tests the 8-byte encoding of v.
func (cbf *CountingBloomFilter) ContainsInt64(v int64) bool {
	return cbf.Contains(filter.Int64Bytes(v))
}

// ContainsText tests the UTF-8 encoding of s.
func (cbf *CountingBloomFilter) ContainsText(s string) bool {
	return cbf.Contains(filter.TextBytes(s))
}

// GetHashIndices returns the counter indices an encoded element maps to.
func (cbf *CountingBloomFilter) GetHashIndices(element []byte) []uint64 {
	return filter.DoubleHash(element, cbf.config.Size, cbf.config.Hashes)
}

// ContainsHashIndices tests previously derived indices directly.
func (cbf *CountingBloomFilter) ContainsHashIndices(indices []uint64) bool {
	for _, index := range indices {
		if cbf.countingVec.Get(index) == 0 {
			return false
		}
	}
	return true
}

// EstimateCount estimates how many times an encoded element was added:
// the minimum of its counters, 0 when any counter is zero. Aliasing can
// inflate the estimate, saturation can cap it.
func (cbf *CountingBloomFilter) EstimateCount(element []byte) uint64 {
	m := cbf.config.Size
	h1, h2 := filter.BaseHashes(element, m)

	res := cbf.countingVec.Get(h1)
	if res == 0 {
		return 0
	}
	for i := uint64(1); i < uint64(cbf.config.Hashes); i++ {
		count := cbf.countingVec.Get((h1 + i*h2) % m)
		if count == 0 {
			return 0
		}
		res = min(res, count)
	}
	return res
}

// CounterAt returns the raw counter value at index.
func (cbf *CountingBloomFilter) CounterAt(index uint64) uint64 {
	return cbf.countingVec.Get(index)
}

// Clear resets all counters to zero.
func (cbf *CountingBloomFilter) Clear() {
	cbf.countingVec.Clear()
}

// IsEmpty reports whether every counter is zero.
func (cbf *CountingBloomFilter) IsEmpty() bool {
	return cbf.countingVec.IsEmpty()
}

// EnableRepeatInsert toggles whether Add increments counters for an
// element already contained. It affects only Add, never Remove or
// Contains.
func (cbf *CountingBloomFilter) EnableRepeatInsert(enable bool) {
	cbf.config.RepeatInsert = enable
}

// GetBytes exports the nibble-packed counters, two per byte, byte length
// ceil(size/2). The even counter of a pair is the low nibble.
func (cbf *CountingBloomFilter) GetBytes() []byte {
	return cbf.countingVec.Bytes()
}

// GetIntArray exports the counters as little-endian uint32 words.
func (cbf *CountingBloomFilter) GetIntArray() []uint32 {
	return cbf.countingVec.Uint32s()
}

// Config returns a copy of the filter's configuration.
func (cbf *CountingBloomFilter) Config() FilterBuilder {
	return cbf.config
}

// Hashes returns the number of hash indices derived per operation.
func (cbf *CountingBloomFilter) Hashes() uint32 {
	return cbf.config.Hashes
}

// Size returns the number of counters.
func (cbf *CountingBloomFilter) Size() uint64 {
	return cbf.config.Size
}
