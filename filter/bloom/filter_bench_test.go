package bloom_test

import (
	"fmt"
	"testing"

	"github.com/yankun1992/fastbloom/filter/bloom"
)

func BenchmarkBloomFilter(b *testing.B) {
	builder, err := bloom.NewFilterBuilder(1_000_000, 0.01)
	if err != nil {
		b.Fatal(err)
	}
	bf := builder.BuildBloomFilter()
	testData := []byte("performance test data")
	bf.Add(testData)

	b.Run("Add", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			bf.Add(testData)
		}
	})

	b.Run("Contains", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			bf.Contains(testData)
		}
	})

	b.Run("ContainsAbsent", func(b *testing.B) {
		absent := []byte("never inserted data")
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			bf.Contains(absent)
		}
	})

	b.Run("AddInt64", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			bf.AddInt64(int64(i))
		}
	})
}

func BenchmarkCountingBloomFilter(b *testing.B) {
	builder, err := bloom.NewFilterBuilder(1_000_000, 0.01)
	if err != nil {
		b.Fatal(err)
	}
	cbf := builder.BuildCountingBloomFilter()
	testData := []byte("performance test data")
	cbf.Add(testData)

	b.Run("Add", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			cbf.Add(testData)
		}
	})

	b.Run("Contains", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			cbf.Contains(testData)
		}
	})

	b.Run("Remove", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			cbf.Remove(testData)
		}
	})
}

func BenchmarkSerialization(b *testing.B) {
	builder, err := bloom.NewFilterBuilder(1_000_000, 0.01)
	if err != nil {
		b.Fatal(err)
	}
	bf := builder.BuildBloomFilter()
	for i := 0; i < 10_000; i++ {
		bf.AddText(fmt.Sprintf("element_%d", i))
	}
	data := bf.GetBytes()

	b.Run("GetBytes", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			bf.GetBytes()
		}
	})

	b.Run("FromBytes", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			if _, err := bloom.FromBytes(data, bf.Hashes()); err != nil {
				b.Fatal(err)
			}
		}
	})
}
