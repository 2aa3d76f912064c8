package buf

import (
	"strings"

	"github.com/joshuapare/bufkit/internal/hextab"
)

// Hex renders the current window as lowercase hex, two characters per
// byte, no separators.
func (b *Buffer) Hex() string {
	var sb strings.Builder
	sb.Grow(len(b.view) * 2)
	for _, v := range b.view {
		sb.WriteString(hextab.Table[v])
	}
	return sb.String()
}
