package mmio

import (
	"fmt"
	"os"
	"sync/atomic"
	"unsafe"

	mmap "github.com/edsrzf/mmap-go"
	"github.com/golang/glog"
)

const memFile = "/dev/mem"

// DevMemWindow is a Window over a physical register block mapped through
// /dev/mem. Reads are single aligned 32-bit loads, so they're atomic with
// respect to other readers of the same region.
type DevMemWindow struct {
	buf  mmap.MMap
	offs uintptr
	size int
}

// Map maps size bytes of physical address space starting at base,
// read-only. Since the mapping has to start at a page boundary, base is
// rounded down to the nearest page and the difference is kept as an
// internal offset.
func Map(base uintptr, size int) (*DevMemWindow, error) {
	f, err := os.OpenFile(memFile, os.O_RDONLY|os.O_SYNC, os.ModePerm)
	if err != nil {
		return nil, fmt.Errorf("couldn't open %s: %v", memFile, err)
	}
	defer f.Close()

	pagemask := ^uintptr(os.Getpagesize() - 1)
	mapAddr := base & pagemask
	mapSize := size + int(base-mapAddr)
	glog.V(1).Infof("MapRegion(f, %d, RDONLY, 0, %08X), base %08X", mapSize, int64(mapAddr), base)
	mm, err := mmap.MapRegion(f, mapSize, mmap.RDONLY, 0, int64(mapAddr))
	if err != nil {
		return nil, fmt.Errorf("couldn't map region (%08X, %v): %v", base, size, err)
	}
	return &DevMemWindow{buf: mm, offs: base - mapAddr, size: size}, nil
}

func (w *DevMemWindow) Read32(off uint32) (uint32, error) {
	if w.buf == nil {
		return 0, fmt.Errorf("%w: window is not mapped", ErrIOFault)
	}
	if off%4 != 0 {
		return 0, fmt.Errorf("%w: unaligned offset 0x%02X", ErrIOFault, off)
	}
	if int(off)+4 > w.size {
		return 0, fmt.Errorf("%w: offset 0x%02X outside %d-byte window", ErrIOFault, off, w.size)
	}
	return atomic.LoadUint32((*uint32)(unsafe.Pointer(&w.buf[w.offs+uintptr(off)]))), nil
}

// Close unmaps the window. Reads after Close fail with ErrIOFault.
func (w *DevMemWindow) Close() error {
	if w.buf == nil {
		return nil
	}
	err := w.buf.Unmap()
	w.buf = nil
	return err
}
