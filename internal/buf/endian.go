package buf

// UintLE decodes the first n bytes of b (n in [0,8]) as a little-endian
// unsigned integer. Used for disk pointers, which are narrower than any
// fixed-width encoding/binary helper (5 bytes).
func UintLE(b []byte, n int) uint64 {
	var v uint64
	for i := n - 1; i >= 0; i-- {
		v = v<<8 | uint64(b[i])
	}
	return v
}

// PutUintLE encodes the low n bytes (n in [0,8]) of v into b as little-endian.
func PutUintLE(b []byte, v uint64, n int) {
	for i := 0; i < n; i++ {
		b[i] = byte(v)
		v >>= 8
	}
}
