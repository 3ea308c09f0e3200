package filter_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/dgryski/go-metro"
	"github.com/spaolacci/murmur3"
	"github.com/zeebo/xxh3"
	"github.com/zhenjl/cityhash"
)

// The interchange contract pins XXH3-64 as the index-derivation hash.
// This harness compares it against the other candidates the decision
// weighed, on throughput and on uniformity of the derived indices.

const (
	comparisonN = 200_000
	bucketCount = 64
)

type hashCandidate struct {
	name string
	fn   func([]byte) uint64
}

func candidates() []hashCandidate {
	return []hashCandidate{
		{"xxh3", func(data []byte) uint64 { return xxh3.HashSeed(data, 0) }},
		{"metro", func(data []byte) uint64 { return metro.Hash64(data, 0) }},
		{"cityhash", func(data []byte) uint64 { return cityhash.CityHash64(data, uint32(len(data))) }},
		{"murmur3", func(data []byte) uint64 { return murmur3.Sum64(data) }},
	}
}

func generateData(n int) [][]byte {
	data := make([][]byte, n)
	for i := 0; i < n; i++ {
		data[i] = []byte(fmt.Sprintf("testdata%d", i))
	}
	return data
}

func TestHashCandidateComparison(t *testing.T) {
	data := generateData(comparisonN)

	fmt.Println("\n--- Hash Candidate Comparison ---")
	fmt.Println("| Hash     | Time (ms)   | Bucket skew |")
	fmt.Println("|----------|-------------|-------------|")

	for _, candidate := range candidates() {
		buckets := make([]int, bucketCount)

		startTime := time.Now()
		for _, item := range data {
			buckets[candidate.fn(item)%bucketCount]++
		}
		elapsed := time.Since(startTime)

		// Bucket skew: max over min of the per-bucket counts. A uniform
		// hash over this many items stays well under 1.5.
		minCount, maxCount := buckets[0], buckets[0]
		for _, c := range buckets[1:] {
			minCount = min(minCount, c)
			maxCount = max(maxCount, c)
		}
		if minCount == 0 {
			t.Errorf("%s left a bucket empty over %d items", candidate.name, comparisonN)
			continue
		}
		skew := float64(maxCount) / float64(minCount)
		if skew > 1.5 {
			t.Errorf("%s bucket skew %.3f exceeds 1.5", candidate.name, skew)
		}

		fmt.Printf("| %-8s | %-11.2f | %-11.3f |\n",
			candidate.name, float64(elapsed.Microseconds())/1000.0, skew)
	}
}

func BenchmarkHashCandidates(b *testing.B) {
	testData := []byte("performance test data for hash candidate benchmarking")

	for _, candidate := range candidates() {
		b.Run(candidate.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				candidate.fn(testData)
			}
		})
	}
}
