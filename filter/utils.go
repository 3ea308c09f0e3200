package filter

import "bytes"

// SerializeUint appends the low size bytes of value to buf in
// little-endian order.
func SerializeUint(buf *bytes.Buffer, value uint64, size int) {
	byteData := make([]byte, size)
	for i := 0; i < size; i++ {
		byteData[i] = byte(value >> (i * 8))
	}
	buf.Write(byteData)
}

// DeserializeUint reads size little-endian bytes from buf.
func DeserializeUint[T uint64 | uint32](buf *bytes.Buffer, size int) T {
	byteData := make([]byte, size)
	buf.Read(byteData)
	value := uint64(0)
	for i := 0; i < size; i++ {
		value |= uint64(byteData[i]) << (i * 8)
	}
	return T(value)
}
