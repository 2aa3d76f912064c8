package buf

import (
	"errors"
	"fmt"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// StringUTF16LE decodes the current window as UTF-16LE. A trailing NUL
// code unit is trimmed, matching how native strings usually arrive from a
// host runtime. An odd-length window is an error.
func (b *Buffer) StringUTF16LE() (string, error) {
	data := b.view
	if len(data) == 0 {
		return "", nil
	}
	if len(data)%2 != 0 {
		return "", errors.New("buf: utf16 window has odd length")
	}
	if data[len(data)-2] == 0 && data[len(data)-1] == 0 {
		data = data[:len(data)-2]
	}
	dec := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
	out, err := dec.Bytes(data)
	if err != nil {
		return "", fmt.Errorf("buf: decode utf16le: %w", err)
	}
	return string(out), nil
}

// StringWindows1252 decodes the current window as Windows-1252 (Latin-1
// superset).
func (b *Buffer) StringWindows1252() (string, error) {
	data := b.view
	// Fast path: ASCII is identical in Windows-1252 and UTF-8.
	if isASCII(data) {
		return string(data), nil
	}
	out, err := charmap.Windows1252.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("buf: decode windows-1252: %w", err)
	}
	return string(out), nil
}

func isASCII(data []byte) bool {
	for _, c := range data {
		if c >= 0x80 {
			return false
		}
	}
	return true
}
