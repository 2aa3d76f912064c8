// Package hextab holds the constant byte-to-hex rendering table.
package hextab

const digits = "0123456789abcdef"

// Table maps a byte value to its two-character lowercase hex rendering.
var Table [256]string

func init() {
	var pair [2]byte
	for i := 0; i < 256; i++ {
		pair[0] = digits[i>>4]
		pair[1] = digits[i&0x0f]
		Table[i] = string(pair[:])
	}
}
