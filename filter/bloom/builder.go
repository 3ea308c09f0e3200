package bloom

import (
	"errors"
	"math"
)

// ErrInvalidConfiguration reports construction parameters outside their
// documented domain. Inputs are never silently clamped.
var ErrInvalidConfiguration = errors.New("bloom: invalid filter configuration")

const (
	wordBits   = 64
	wordSuffix = wordBits - 1
)

// FilterBuilder holds the parameters a BloomFilter or CountingBloomFilter
// is constructed from. Size and Hashes are either derived from
// ExpectedElements and FalsePositiveProbability or pinned directly with
// FromSizeAndHashes. Once complete() has run the pair is immutable.
type FilterBuilder struct {
	ExpectedElements         uint64
	FalsePositiveProbability float64
	Size                     uint64 // bit count, always a multiple of 64
	Hashes                   uint32
	RepeatInsert             bool // counting filters only, default true

	done bool
}

// optimalM calculates the optimal size m of the filter in bits given n
// (expected number of elements) and p (tolerable false positive rate),
// rounded up to the next multiple of 64 so the bit vector packs exactly
// into words and bytes.
func optimalM(n uint64, p float64) uint64 {
	m := uint64(math.Ceil(-float64(n) * math.Log(p) / (math.Ln2 * math.Ln2)))
	if m&wordSuffix != 0 {
		m = (m &^ uint64(wordSuffix)) + wordBits
	}
	return m
}

// optimalK calculates the optimal number of hash functions given n and
// the filter size m in bits. Never less than 1.
func optimalK(n uint64, m uint64) uint32 {
	k := uint32(math.Round(float64(m) / float64(n) * math.Ln2))
	return max(k, 1)
}

// optimalN calculates the element count for which a filter of size m
// with k hashes is optimal.
func optimalN(k uint32, m uint64) uint64 {
	return uint64(math.Ceil(math.Ln2 * float64(m) / float64(k)))
}

// optimalP calculates the best-case false positive probability of a
// filter of size m with k hashes holding n elements.
func optimalP(k uint32, m uint64, n uint64) float64 {
	return math.Pow(1.0-math.Exp(-float64(k)*float64(n)/float64(m)), float64(k))
}

// NewFilterBuilder constructs a builder from the expected element count
// and the tolerable false positive probability. The bit size and hash
// count are derived when a filter is built.
func NewFilterBuilder(expectedElements uint64, falsePositiveProbability float64) (*FilterBuilder, error) {
	if expectedElements == 0 {
		return nil, ErrInvalidConfiguration
	}
	if falsePositiveProbability <= 0.0 || falsePositiveProbability >= 1.0 {
		return nil, ErrInvalidConfiguration
	}
	return &FilterBuilder{
		ExpectedElements:         expectedElements,
		FalsePositiveProbability: falsePositiveProbability,
		RepeatInsert:             true,
	}, nil
}

// FromSizeAndHashes constructs a builder by pinning the bit size and hash
// count directly, typically to match an existing filter for union or
// intersect compatibility. The expected element count and false positive
// probability are back-derived for reporting.
func FromSizeAndHashes(size uint64, hashes uint32) (*FilterBuilder, error) {
	if size == 0 || hashes == 0 {
		return nil, ErrInvalidConfiguration
	}
	n := optimalN(hashes, size)
	p := optimalP(hashes, size, n)
	return &FilterBuilder{
		ExpectedElements:         n,
		FalsePositiveProbability: p,
		Size:                     size,
		Hashes:                   hashes,
		RepeatInsert:             true,
		done:                     true,
	}, nil
}

// EnableRepeatInsert controls whether a counting filter built from this
// builder increments counters for an element it already contains. It has
// no effect on plain Bloom filters.
func (b *FilterBuilder) EnableRepeatInsert(enable bool) {
	b.RepeatInsert = enable
}

// complete derives Size and Hashes from the expected element count and
// false positive probability unless they were pinned directly.
func (b *FilterBuilder) complete() {
	if !b.done {
		if b.Size == 0 {
			b.Size = optimalM(b.ExpectedElements, b.FalsePositiveProbability)
			b.Hashes = optimalK(b.ExpectedElements, b.Size)
		}
		b.done = true
	}
}

// IsCompatibleTo reports whether two configurations can union or
// intersect: bit size and hash count both equal.
func (b *FilterBuilder) IsCompatibleTo(other *FilterBuilder) bool {
	return b.Size == other.Size && b.Hashes == other.Hashes
}

// BuildBloomFilter constructs a Bloom filter from this builder, deriving
// any missing parameters.
func (b *FilterBuilder) BuildBloomFilter() *BloomFilter {
	b.complete()
	return NewBloomFilter(b)
}

// BuildCountingBloomFilter constructs a counting Bloom filter from this
// builder, deriving any missing parameters.
func (b *FilterBuilder) BuildCountingBloomFilter() *CountingBloomFilter {
	b.complete()
	return NewCountingBloomFilter(b)
}
