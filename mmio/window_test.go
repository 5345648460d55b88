package mmio

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSliceWindowRead32(t *testing.T) {
	b := make([]byte, 16)
	binary.LittleEndian.PutUint32(b[0:], 0xDEADBEEF)
	binary.LittleEndian.PutUint32(b[8:], 0x00282201)
	w := SliceWindow(b)

	got, err := w.Read32(0)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xDEADBEEF), got)

	got, err = w.Read32(8)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x00282201), got)

	got, err = w.Read32(4)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), got)
}

func TestSliceWindowFaults(t *testing.T) {
	w := SliceWindow(make([]byte, 16))

	tests := []struct {
		name string
		off  uint32
	}{
		{"past end", 16},
		{"straddling end", 14},
		{"way out", 0x1000},
		{"unaligned", 2},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := w.Read32(test.off)
			assert.ErrorIs(t, err, ErrIOFault)
		})
	}
}

func TestDevMemWindowUnmapped(t *testing.T) {
	// A closed (or never-mapped) window must fault, not crash.
	w := &DevMemWindow{}
	_, err := w.Read32(0)
	assert.ErrorIs(t, err, ErrIOFault)
	assert.NoError(t, w.Close())
}
