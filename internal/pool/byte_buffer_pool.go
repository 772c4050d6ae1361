// Package pool provides pooled byte buffers for wire encoding and vault I/O.
package pool

import (
	"io"
	"sync"
)

const (
	// SeedBufferDefaultSize is the initial capacity of pooled seed buffers.
	// Serialized seeds are small (a header plus a bounded ring table), so the
	// default stays modest.
	SeedBufferDefaultSize = 1024 // 1KiB

	// SeedBufferMaxThreshold is the largest buffer returned to the pool.
	// Oversized buffers are dropped to avoid pinning memory after encoding
	// an unusually deep ring table.
	SeedBufferMaxThreshold = 1024 * 64 // 64KiB
)

// ByteBuffer is a reusable append-only byte buffer.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified initial capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset resets the buffer to be empty, but retains the allocated memory for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// MustWrite appends data to the buffer, growing it if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// WriteByte appends a single byte. Always returns nil; the signature matches
// io.ByteWriter.
func (bb *ByteBuffer) WriteByte(c byte) error {
	bb.B = append(bb.B, c)
	return nil
}

// Grow ensures the buffer can hold requiredBytes more bytes without
// reallocating. If the buffer already has sufficient spare capacity, Grow
// does nothing.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := SeedBufferDefaultSize
	if cap(bb.B) > 4*SeedBufferDefaultSize {
		// For larger buffers, grow by 25% to balance memory and reallocation cost.
		growBy = cap(bb.B) / 4
	}
	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// ReadFrom reads from r until EOF, appending to the buffer.
func (bb *ByteBuffer) ReadFrom(r io.Reader) (int64, error) {
	var total int64
	for {
		bb.Grow(SeedBufferDefaultSize)
		start := len(bb.B)
		n, err := r.Read(bb.B[start:cap(bb.B)])
		bb.B = bb.B[:start+n]
		total += int64(n)
		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}

var seedBufferPool = sync.Pool{
	New: func() any {
		return NewByteBuffer(SeedBufferDefaultSize)
	},
}

// GetSeedBuffer returns a reset ByteBuffer from the pool.
func GetSeedBuffer() *ByteBuffer {
	bb := seedBufferPool.Get().(*ByteBuffer)
	bb.Reset()

	return bb
}

// PutSeedBuffer returns a ByteBuffer to the pool. Buffers that grew past
// SeedBufferMaxThreshold are dropped instead of pooled.
func PutSeedBuffer(bb *ByteBuffer) {
	if bb == nil || cap(bb.B) > SeedBufferMaxThreshold {
		return
	}
	seedBufferPool.Put(bb)
}
