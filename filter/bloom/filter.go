package bloom

import (
	"github.com/yankun1992/fastbloom/filter"
)

// BloomFilter is a space-efficient probabilistic membership structure:
// lookups never produce false negatives, and false positives are bounded
// by the rate the filter was built for.
//
// The structure performs no internal locking. Concurrent mutation from
// multiple goroutines is undefined; callers needing sharing wrap the
// filter with their own mutex or channel discipline.
type BloomFilter struct {
	config FilterBuilder
	bitSet *BloomBitVec
}

// NewBloomFilter builds a filter from a completed builder.
func NewBloomFilter(config *FilterBuilder) *BloomFilter {
	config.complete()
	bitSet := NewBloomBitVec((config.Size + wordSuffix) / wordBits)
	bitSet.NBits = config.Size
	return &BloomFilter{
		config: *config,
		bitSet: bitSet,
	}
}

// FromBytes rebuilds a filter from the raw bit vector exported by
// GetBytes. The bit size is the byte length times 8; the hash count is
// not part of the byte stream and must be supplied out-of-band.
func FromBytes(array []byte, hashes uint32) (*BloomFilter, error) {
	config, err := FromSizeAndHashes(uint64(len(array))*8, hashes)
	if err != nil {
		return nil, err
	}
	return &BloomFilter{
		config: *config,
		bitSet: bitVecFromBytes(array),
	}, nil
}

// FromIntArray rebuilds a filter from the word export of GetIntArray.
// The bit size is the word length times 32.
func FromIntArray(array []uint32, hashes uint32) (*BloomFilter, error) {
	config, err := FromSizeAndHashes(uint64(len(array))*32, hashes)
	if err != nil {
		return nil, err
	}
	return &BloomFilter{
		config: *config,
		bitSet: bitVecFromUint32s(array),
	}, nil
}

// Add inserts an encoded element.
func (bf *BloomFilter) Add(element []byte) {
	m := bf.config.Size
	h1, h2 := filter.BaseHashes(element, m)
	for i := uint64(1); i < uint64(bf.config.Hashes); i++ {
		bf.bitSet.Set((h1 + i*h2) % m)
	}
	bf.bitSet.Set(h1)
}

// AddIfNotContains inserts an encoded element and reports whether it was
// absent beforehand.
func (bf *BloomFilter) AddIfNotContains(element []byte) bool {
	if bf.Contains(element) {
		return false
	}
	bf.Add(element)
	return true
}

// AddBatch inserts a sequence of encoded elements, equivalent to calling
// Add for each in order.
func (bf *BloomFilter) AddBatch(elements [][]byte) {
	for _, element := range elements {
		bf.Add(element)
	}
}

// AddInt32 inserts the 4-byte encoding of v.
func (bf *BloomFilter) AddInt32(v int32) {
	bf.Add(filter.Int32Bytes(v))
}

// AddInt64 inserts the 8-byte encoding of v.
func (bf *BloomFilter) AddInt64(v int64) {
	bf.Add(filter.Int64Bytes(v))
}

// AddText inserts the UTF-8 encoding of s.
func (bf *BloomFilter) AddText(s string) {
	bf.Add(filter.TextBytes(s))
}

// Contains reports whether an encoded element is present, subject to the
// configured false positive rate. Elements that were added are always
// reported present.
func (bf *BloomFilter) Contains(element []byte) bool {
	m := bf.config.Size
	h1, h2 := filter.BaseHashes(element, m)
	if !bf.bitSet.Get(h1) {
		return false
	}
	for i := uint64(1); i < uint64(bf.config.Hashes); i++ {
		if !bf.bitSet.Get((h1 + i*h2) % m) {
			return false
		}
	}
	return true
}

// ContainsBatch tests a sequence of encoded elements and returns one
// result per element in the given order.
func (bf *BloomFilter) ContainsBatch(elements [][]byte) []bool {
	res := make([]bool, len(elements))
	for i, element := range elements {
		res[i] = bf.Contains(element)
	}
	return res
}

// ContainsInt32 tests the 4-byte encoding of v.
func (bf *BloomFilter) ContainsInt32(v int32) bool {
	return bf.Contains(filter.Int32Bytes(v))
}

// ContainsInt64 tests the 8-byte encoding of v.
func (bf *BloomFilter) ContainsInt64(v int64) bool {
	return bf.Contains(filter.Int64Bytes(v))
}

// ContainsText tests the UTF-8 encoding of s.
func (bf *BloomFilter) ContainsText(s string) bool {
	return bf.Contains(filter.TextBytes(s))
}

// GetHashIndices returns the bit indices an encoded element maps to.
func (bf *BloomFilter) GetHashIndices(element []byte) []uint64 {
	return filter.DoubleHash(element, bf.config.Size, bf.config.Hashes)
}

// ContainsHashIndices tests previously derived indices directly.
func (bf *BloomFilter) ContainsHashIndices(indices []uint64) bool {
	for _, index := range indices {
		if !bf.bitSet.Get(index) {
			return false
		}
	}
	return true
}

// Clear resets all bits to zero.
func (bf *BloomFilter) Clear() {
	bf.bitSet.Clear()
}

// IsEmpty reports whether the filter contains no elements, i.e. every
// bit is zero.
func (bf *BloomFilter) IsEmpty() bool {
	return bf.bitSet.IsEmpty()
}

// Union ORs other into this filter in place. Both filters must have been
// built with equal bit size and hash count; on mismatch nothing is
// modified and the result is false. The operation is lossless: the
// result is the same filter that direct insertion of both element sets
// would have produced.
func (bf *BloomFilter) Union(other *BloomFilter) bool {
	if !bf.Compatible(other) {
		return false
	}
	return bf.bitSet.Or(other.bitSet)
}

// Intersect ANDs other into this filter in place, under the same
// compatibility requirement as Union. No false negatives are introduced
// for elements present in both inputs, and the nominal false positive
// rate of the result is at most the smaller of the two inputs'.
func (bf *BloomFilter) Intersect(other *BloomFilter) bool {
	if !bf.Compatible(other) {
		return false
	}
	return bf.bitSet.And(other.bitSet)
}

// Compatible reports whether other has equal bit size and hash count.
func (bf *BloomFilter) Compatible(other *BloomFilter) bool {
	return bf.config.IsCompatibleTo(&other.config)
}

// GetBytes exports the raw bit vector, bit i at byte i/8, bit position
// i%8. The hash count is not embedded and travels out-of-band.
func (bf *BloomFilter) GetBytes() []byte {
	return bf.bitSet.Bytes()
}

// GetIntArray exports the bit vector as little-endian uint32 words, for
// callers marshaling words more cheaply than bytes.
func (bf *BloomFilter) GetIntArray() []uint32 {
	return bf.bitSet.Uint32s()
}

// Config returns a copy of the filter's configuration.
func (bf *BloomFilter) Config() FilterBuilder {
	return bf.config
}

// Hashes returns the number of hash indices derived per operation.
func (bf *BloomFilter) Hashes() uint32 {
	return bf.config.Hashes
}

// Size returns the filter size in bits.
func (bf *BloomFilter) Size() uint64 {
	return bf.config.Size
}
