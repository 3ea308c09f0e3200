package filter_test

import (
	"fmt"
	"testing"

	"github.com/yankun1992/fastbloom/filter"
)

func TestDoubleHashDeterminism(t *testing.T) {
	m := uint64(958_528)
	k := uint32(7)
	testData := [][]byte{
		[]byte("hello"),
		[]byte("New value 1"),
		[]byte("New value 2 but very new"),
		[]byte(""),
		{0x00},
		{0x00, 0x00, 0x00, 0x00},
	}

	for _, data := range testData {
		h1 := filter.DoubleHash(data, m, k)
		h2 := filter.DoubleHash(data, m, k)

		if len(h1) != int(k) {
			t.Errorf("expected length %d, got %d", k, len(h1))
		}
		for i := range h1 {
			if h1[i] != h2[i] {
				t.Errorf("expected equality between hashes got h1: %d, h2: %d", h1[i], h2[i])
			}
		}
	}
}

func TestDoubleHashRange(t *testing.T) {
	for _, m := range []uint64{64, 100, 958_528, 1 << 30} {
		for i := 0; i < 1000; i++ {
			data := []byte(fmt.Sprintf("item_%d", i))
			for _, idx := range filter.DoubleHash(data, m, 11) {
				if idx >= m {
					t.Fatalf("index %d out of range [0, %d)", idx, m)
				}
			}
		}
	}
}

func TestDoubleHashFirstIndexIsH1(t *testing.T) {
	m := uint64(10_048)
	data := []byte("hello")

	h1, _ := filter.BaseHashes(data, m)
	indices := filter.DoubleHash(data, m, 7)
	if indices[0] != h1 {
		t.Errorf("expected index 0 to be h1=%d, got %d", h1, indices[0])
	}
}

// The 4-byte and 8-byte integer encodings are distinct wire encodings:
// the same numeric value must hash to different index sets.
func TestIntegerWidthsAreDistinct(t *testing.T) {
	m := uint64(958_528)
	k := uint32(7)

	for _, v := range []int64{0, 1, 87, -1, 1 << 20} {
		narrow := filter.DoubleHash(filter.Int32Bytes(int32(v)), m, k)
		wide := filter.DoubleHash(filter.Int64Bytes(v), m, k)

		same := true
		for i := range narrow {
			if narrow[i] != wide[i] {
				same = false
				break
			}
		}
		if same {
			t.Errorf("int32 and int64 encodings of %d hash to identical indices", v)
		}
	}
}
