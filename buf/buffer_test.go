package buf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// -----------------------------------------------------------------------------
// construction
// -----------------------------------------------------------------------------

func TestNewZeroFilled(t *testing.T) {
	b := New(5)
	require.Equal(t, 5, b.Len())
	require.True(t, b.Owning())
	require.True(t, b.Unique())
	for i := 0; i < 5; i++ {
		v, err := b.At(i)
		require.NoError(t, err)
		require.Equal(t, byte(0), v)
	}
}

func TestNewFill(t *testing.T) {
	b := NewFill(3, 0xab)
	require.Equal(t, []byte{0xab, 0xab, 0xab}, b.Bytes())
}

func TestNewCopyDoesNotAlias(t *testing.T) {
	src := []byte{1, 2, 3}
	b := NewCopy(src)
	src[0] = 0xff
	require.Equal(t, []byte{1, 2, 3}, b.Bytes())
	require.True(t, b.Owning())
}

func TestWrapAliases(t *testing.T) {
	src := []byte{1, 2, 3}
	b := Wrap(src)
	require.False(t, b.Owning())
	require.False(t, b.Unique())

	require.NoError(t, b.SetAt(1, 0x7f))
	require.Equal(t, byte(0x7f), src[1])
}

func TestWrapString(t *testing.T) {
	b := WrapString("abc")
	require.False(t, b.Owning())
	require.Equal(t, "abc", b.String())
	require.Equal(t, 3, b.Len())

	require.Equal(t, 0, WrapString("").Len())
}

func TestZeroValueIsEmptyBorrowing(t *testing.T) {
	var b Buffer
	require.Equal(t, 0, b.Len())
	require.False(t, b.Owning())
	require.ErrorIs(t, b.Reset(), ErrBorrowed)
	_, err := b.Detach()
	require.ErrorIs(t, err, ErrBorrowed)
}

// -----------------------------------------------------------------------------
// sharing
// -----------------------------------------------------------------------------

func TestCloneSharesAllocation(t *testing.T) {
	b := NewFill(4, 0x11)
	require.True(t, b.Unique())

	c := b.Clone()
	require.False(t, b.Unique())
	require.False(t, c.Unique())

	// A write through one view is visible through the other.
	require.NoError(t, c.SetAt(2, 0xee))
	v, err := b.At(2)
	require.NoError(t, err)
	require.Equal(t, byte(0xee), v)

	c.Release()
	require.True(t, b.Unique())
}

func TestViewIsSlicedClone(t *testing.T) {
	b := NewCopy([]byte{0, 1, 2, 3, 4})
	v := b.View(1, 3)
	require.Equal(t, []byte{1, 2, 3}, v.Bytes())
	require.False(t, b.Unique())
	require.Equal(t, 5, b.Len()) // original window untouched
}

func TestAssignSharesAndReleases(t *testing.T) {
	a := NewFill(2, 0x01)
	b := NewFill(2, 0x02)
	require.True(t, b.Unique())

	b.Assign(a)
	require.Equal(t, []byte{0x01, 0x01}, b.Bytes())
	require.False(t, a.Unique())

	// Self-assignment keeps the reference alive.
	a.Assign(a)
	require.Equal(t, []byte{0x01, 0x01}, a.Bytes())

	b.Release()
	require.True(t, a.Unique())
}

func TestAssignFromBorrowing(t *testing.T) {
	owning := NewFill(2, 0x05)
	borrowed := Wrap([]byte{9, 9})

	owning.Assign(borrowed)
	require.False(t, owning.Owning())
	require.Equal(t, []byte{9, 9}, owning.Bytes())
}

func TestReleaseEmptiesWindow(t *testing.T) {
	b := New(4)
	b.Release()
	require.Equal(t, 0, b.Len())
	require.False(t, b.Owning())
}

// -----------------------------------------------------------------------------
// slicing and reset
// -----------------------------------------------------------------------------

func TestSliceClamping(t *testing.T) {
	base := []byte{0, 1, 2, 3, 4}

	cases := []struct {
		name string
		off  int
		n    int
		want []byte
	}{
		{"in range", 1, 3, []byte{1, 2, 3}},
		{"negative offset behaves as zero", -3, 2, []byte{0, 1}},
		{"offset past end yields empty", 10, 1, []byte{}},
		{"length past end truncates", 2, 100, []byte{2, 3, 4}},
		{"negative length yields empty", 1, -1, []byte{}},
		{"zero length", 2, 0, []byte{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := NewCopy(base)
			b.Slice(tc.off, tc.n)
			require.Equal(t, tc.want, b.Bytes())
		})
	}
}

func TestSliceComposes(t *testing.T) {
	b := NewCopy([]byte{0, 1, 2, 3, 4})
	b.Slice(1, 4) // [1 2 3 4]
	b.Slice(2, 9) // clamps to [3 4]
	require.Equal(t, []byte{3, 4}, b.Bytes())
}

func TestResetRestoresFullExtent(t *testing.T) {
	b := NewCopy([]byte{0, 1, 2, 3, 4})
	b.Slice(2, 2)
	require.Equal(t, []byte{2, 3}, b.Bytes())

	require.NoError(t, b.Reset())
	require.Equal(t, []byte{0, 1, 2, 3, 4}, b.Bytes())
}

func TestResetOnBorrowing(t *testing.T) {
	b := Wrap([]byte{1})
	require.ErrorIs(t, b.Reset(), ErrBorrowed)
}

// -----------------------------------------------------------------------------
// element access
// -----------------------------------------------------------------------------

func TestAtOutOfRange(t *testing.T) {
	b := New(2)
	_, err := b.At(2)
	require.ErrorIs(t, err, ErrOutOfRange)
	_, err = b.At(-1)
	require.ErrorIs(t, err, ErrOutOfRange)
	require.ErrorIs(t, b.SetAt(2, 0), ErrOutOfRange)
	require.ErrorIs(t, b.SetAt(-1, 0), ErrOutOfRange)
}

// -----------------------------------------------------------------------------
// comparison
// -----------------------------------------------------------------------------

func TestSame(t *testing.T) {
	a := NewCopy([]byte{1, 2, 3})
	b := NewCopy([]byte{1, 2, 3})
	require.True(t, a.Same(a)) // reflexive
	require.True(t, a.Same(b))
	require.True(t, b.Same(a)) // symmetric

	differsByByte := NewCopy([]byte{1, 2, 4})
	require.False(t, a.Same(differsByByte))

	differsByLength := NewCopy([]byte{1, 2})
	require.False(t, a.Same(differsByLength))

	require.True(t, New(0).Same(Wrap(nil)))
}
