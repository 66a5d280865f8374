package blockenv

import (
	"sync"
	"unsafe"
)

const (
	bufferAlign = 256
	bufferPad   = 64
)

// AlignedBuffer is an owned scratch region aligned to a 256-byte
// boundary, as required by the vectorised access patterns of block
// transforms. The region is zero-filled on acquisition. Buffers are
// recycled through a pool and must be returned with Release once the
// surrounding transform call has completed, on every exit path.
type AlignedBuffer struct {
	raw []byte // backing allocation
	mem []byte // aligned, zeroed view
}

// NewAlignedBuffer acquires a zeroed buffer of at least size bytes,
// padded and rounded up to a multiple of 256.
func NewAlignedBuffer(size int) *AlignedBuffer {
	need := roundUp256(size + bufferPad)
	raw := fetchAligned(need + bufferAlign)

	off := 0
	if rem := int(uintptr(unsafe.Pointer(&raw[0])) & (bufferAlign - 1)); rem != 0 {
		off = bufferAlign - rem
	}
	mem := raw[off : off+need]
	for i := range mem {
		mem[i] = 0
	}

	return &AlignedBuffer{raw: raw, mem: mem}
}

// Bytes exposes the aligned region. The slice must not be retained
// beyond Release.
func (b *AlignedBuffer) Bytes() []byte { return b.mem }

// Len returns the size of the aligned region.
func (b *AlignedBuffer) Len() int { return len(b.mem) }

// Release returns the buffer to the pool. Calling it more than once
// is a no-op.
func (b *AlignedBuffer) Release() {
	if b.raw != nil {
		alignedPool.Put(b.raw)
		b.raw, b.mem = nil, nil
	}
}

func roundUp256(n int) int { return (n + 255) &^ 255 }

// --------------------------------------------------------------------

var alignedPool sync.Pool

func fetchAligned(sz int) []byte {
	if v := alignedPool.Get(); v != nil {
		if p := v.([]byte); sz <= cap(p) {
			return p[:sz]
		}
	}
	return make([]byte, sz)
}
