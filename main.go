package main

import (
	"fmt"
	"log"

	"github.com/yankun1992/fastbloom/filter/bloom"
)

func main() {
	builder, err := bloom.NewFilterBuilder(100_000, 0.01)
	if err != nil {
		log.Fatal(err)
	}

	bf := builder.BuildBloomFilter()
	fmt.Printf("bloom filter: %d bits, %d hashes\n", bf.Size(), bf.Hashes())

	bf.AddText("hello")
	bf.AddInt64(87)
	for _, v := range []int64{1, 2, 3, 4, 5} {
		bf.AddInt64(v)
	}

	fmt.Println("contains \"hello\":", bf.ContainsText("hello"))
	fmt.Println("contains int64(87):", bf.ContainsInt64(87))
	fmt.Println("contains int32(87):", bf.ContainsInt32(87)) // distinct encoding
	fmt.Println("contains \"world\":", bf.ContainsText("world"))

	// Round trip through the raw byte export; the hash count travels
	// out-of-band.
	copied, err := bloom.FromBytes(bf.GetBytes(), bf.Hashes())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("copy contains \"hello\":", copied.ContainsText("hello"))

	cbuilder, err := bloom.NewFilterBuilder(10_000, 0.01)
	if err != nil {
		log.Fatal(err)
	}
	cbf := cbuilder.BuildCountingBloomFilter()

	cbf.AddText("hello")
	fmt.Println("counting contains \"hello\":", cbf.ContainsText("hello"))
	cbf.RemoveText("hello")
	fmt.Println("counting contains \"hello\" after remove:", cbf.ContainsText("hello"))
}
