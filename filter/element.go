package filter

import "encoding/binary"

// Element encodings are part of the interchange contract: a filter built
// against one encoding of a value is only queryable with that same encoding.
// Integers are little-endian two's complement, and the 32-bit and 64-bit
// widths are distinct encodings (4 bytes vs 8 bytes hash to different
// indices). Width is never inferred from value magnitude.

// Int32Bytes encodes v as its 4-byte little-endian representation.
func Int32Bytes(v int32) []byte {
	data := make([]byte, 4)
	binary.LittleEndian.PutUint32(data, uint32(v))
	return data
}

// Int64Bytes encodes v as its 8-byte little-endian representation.
func Int64Bytes(v int64) []byte {
	data := make([]byte, 8)
	binary.LittleEndian.PutUint64(data, uint64(v))
	return data
}

// TextBytes encodes s as its raw UTF-8 byte sequence.
func TextBytes(s string) []byte {
	return []byte(s)
}
