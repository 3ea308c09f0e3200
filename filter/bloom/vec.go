package bloom

import (
	"bytes"

	"github.com/yankun1992/fastbloom/filter"
)

// BloomBitVec is the packed bit storage of a Bloom filter. Bit i lives
// at word i>>6, bit position i&63, which under little-endian word
// serialization places bit i at byte i/8, bit i%8.
type BloomBitVec struct {
	Storage []uint64
	NBits   uint64
}

// NewBloomBitVec allocates a zeroed bit vector of slots 64-bit words.
func NewBloomBitVec(slots uint64) *BloomBitVec {
	return &BloomBitVec{
		Storage: make([]uint64, slots),
		NBits:   slots * wordBits,
	}
}

// bitVecFromBytes rebuilds a bit vector from its little-endian byte
// serialization. The bit count is the byte length times 8.
func bitVecFromBytes(array []byte) *BloomBitVec {
	nbits := uint64(len(array)) * 8
	vec := NewBloomBitVec((nbits + wordSuffix) / wordBits)
	vec.NBits = nbits
	for i, b := range array {
		vec.Storage[i/8] |= uint64(b) << ((i % 8) * 8)
	}
	return vec
}

// bitVecFromUint32s rebuilds a bit vector from its little-endian uint32
// word serialization. The bit count is the word length times 32.
func bitVecFromUint32s(array []uint32) *BloomBitVec {
	nbits := uint64(len(array)) * 32
	vec := NewBloomBitVec((nbits + wordSuffix) / wordBits)
	vec.NBits = nbits
	for i, w := range array {
		vec.Storage[i/2] |= uint64(w) << ((i % 2) * 32)
	}
	return vec
}

func (v *BloomBitVec) Set(index uint64) {
	v.Storage[index>>6] |= 1 << (index & wordSuffix)
}

func (v *BloomBitVec) Get(index uint64) bool {
	return v.Storage[index>>6]&(1<<(index&wordSuffix)) != 0
}

// Or unions other into v. Returns false and leaves v untouched when the
// lengths differ.
func (v *BloomBitVec) Or(other *BloomBitVec) bool {
	if v.NBits != other.NBits {
		return false
	}
	for i, o := range other.Storage {
		v.Storage[i] |= o
	}
	return true
}

// And intersects other into v. Returns false and leaves v untouched when
// the lengths differ.
func (v *BloomBitVec) And(other *BloomBitVec) bool {
	if v.NBits != other.NBits {
		return false
	}
	for i, o := range other.Storage {
		v.Storage[i] &= o
	}
	return true
}

// Clear resets every bit to zero.
func (v *BloomBitVec) Clear() {
	for i := range v.Storage {
		v.Storage[i] = 0
	}
}

// IsEmpty reports whether every bit is zero.
func (v *BloomBitVec) IsEmpty() bool {
	for _, w := range v.Storage {
		if w != 0 {
			return false
		}
	}
	return true
}

// Bytes serializes the bit vector as ceil(NBits/8) little-endian bytes.
func (v *BloomBitVec) Bytes() []byte {
	size := (v.NBits + 7) / 8
	buf := bytes.NewBuffer(make([]byte, 0, size))
	for _, w := range v.Storage {
		filter.SerializeUint(buf, w, 8)
	}
	return buf.Bytes()[:size]
}

// Uint32s serializes the bit vector as ceil(NBits/32) little-endian
// uint32 words.
func (v *BloomBitVec) Uint32s() []uint32 {
	size := (v.NBits + 31) / 32
	words := make([]uint32, size)
	for i := range words {
		words[i] = uint32(v.Storage[i/2] >> ((i % 2) * 32))
	}
	return words
}

// countersPerWord counters pack into each storage word, 4 bits apiece.
const (
	counterBits     = 4
	counterMax      = 15
	countersPerWord = wordBits / counterBits
	counterSuffix   = countersPerWord - 1
)

// CountingVec is the 4-bit saturating counter storage of a counting
// Bloom filter. Counter i lives at word i>>4, shift (i&15)*4, which
// under little-endian byte serialization makes the even counter of a
// pair the low nibble of its byte.
type CountingVec struct {
	Storage  []uint64
	Counters uint64
}

// NewCountingVec allocates a zeroed counter vector of slots 64-bit words.
func NewCountingVec(slots uint64) *CountingVec {
	return &CountingVec{
		Storage:  make([]uint64, slots),
		Counters: slots * countersPerWord,
	}
}

// countingVecFromBytes rebuilds a counter vector from its nibble-packed
// byte serialization. The counter count is the byte length times 2.
func countingVecFromBytes(array []byte) *CountingVec {
	counters := uint64(len(array)) * 2
	vec := NewCountingVec((counters + counterSuffix) / countersPerWord)
	vec.Counters = counters
	for i, b := range array {
		vec.Storage[i/8] |= uint64(b) << ((i % 8) * 8)
	}
	return vec
}

// countingVecFromUint32s rebuilds a counter vector from its little-endian
// uint32 word serialization. The counter count is the word length times 8.
func countingVecFromUint32s(array []uint32) *CountingVec {
	counters := uint64(len(array)) * 8
	vec := NewCountingVec((counters + counterSuffix) / countersPerWord)
	vec.Counters = counters
	for i, w := range array {
		vec.Storage[i/2] |= uint64(w) << ((i % 2) * 32)
	}
	return vec
}

// Get returns the counter value at index, in [0, 15].
func (v *CountingVec) Get(index uint64) uint64 {
	shift := (index & counterSuffix) * counterBits
	return (v.Storage[index>>4] >> shift) & counterMax
}

// Increment bumps the counter at index, saturating at 15. Saturated
// counters never wrap.
func (v *CountingVec) Increment(index uint64) {
	shift := (index & counterSuffix) * counterBits
	word := index >> 4
	if (v.Storage[word]>>shift)&counterMax < counterMax {
		v.Storage[word] += 1 << shift
	}
}

// Decrement lowers the counter at index, flooring at 0. Zero counters
// never underflow.
func (v *CountingVec) Decrement(index uint64) {
	shift := (index & counterSuffix) * counterBits
	word := index >> 4
	if (v.Storage[word]>>shift)&counterMax > 0 {
		v.Storage[word] -= 1 << shift
	}
}

// Clear resets every counter to zero.
func (v *CountingVec) Clear() {
	for i := range v.Storage {
		v.Storage[i] = 0
	}
}

// IsEmpty reports whether every counter is zero.
func (v *CountingVec) IsEmpty() bool {
	for _, w := range v.Storage {
		if w != 0 {
			return false
		}
	}
	return true
}

// Bytes serializes the counter vector as ceil(Counters/2) nibble-packed
// little-endian bytes.
func (v *CountingVec) Bytes() []byte {
	size := (v.Counters + 1) / 2
	buf := bytes.NewBuffer(make([]byte, 0, size))
	for _, w := range v.Storage {
		filter.SerializeUint(buf, w, 8)
	}
	return buf.Bytes()[:size]
}

// Uint32s serializes the counter vector as ceil(Counters/8) little-endian
// uint32 words.
func (v *CountingVec) Uint32s() []uint32 {
	size := (v.Counters + 7) / 8
	words := make([]uint32, size)
	for i := range words {
		words[i] = uint32(v.Storage[i/2] >> ((i % 2) * 32))
	}
	return words
}
