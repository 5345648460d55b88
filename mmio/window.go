// Package mmio provides read-only access to a block of memory-mapped
// 32-bit hardware registers, addressed by byte offset from the start of
// the block.
package mmio

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrIOFault is returned when a register read can't be satisfied: the
// offset lies outside the mapped block, isn't 32-bit aligned, or the
// mapping is gone.
var ErrIOFault = errors.New("mmio: I/O fault")

// Window is a read-only view of a contiguous register block. Offsets are
// in bytes from the start of the block and must be multiples of 4. There
// are deliberately no write methods: the hardware this models is
// configured once by firmware before we ever see it.
type Window interface {
	Read32(off uint32) (uint32, error)
}

// SliceWindow is a Window over an in-memory register image, stored
// little-endian as the hardware lays it out. It's used for register dumps
// taken from a live system and for tests.
type SliceWindow []byte

func (w SliceWindow) Read32(off uint32) (uint32, error) {
	if off%4 != 0 {
		return 0, fmt.Errorf("%w: unaligned offset 0x%02X", ErrIOFault, off)
	}
	if int(off)+4 > len(w) {
		return 0, fmt.Errorf("%w: offset 0x%02X outside %d-byte window", ErrIOFault, off, len(w))
	}
	return binary.LittleEndian.Uint32(w[off:]), nil
}
