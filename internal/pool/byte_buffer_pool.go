package pool

import "sync"

const (
	FrameBufferDefaultSize  = 1024 * 4    // 4KiB
	FrameBufferMaxThreshold = 1024 * 1024 // 1MiB
)

// ByteBuffer is a growable scratch buffer used to assemble and unpack envelope frames.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new empty ByteBuffer with the given capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer and keeps its memory.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// MustWrite appends data, growing the buffer if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// Extend lengthens the buffer by n bytes if the capacity allows it.
func (bb *ByteBuffer) Extend(n int) bool {
	curLen := len(bb.B)
	if cap(bb.B)-curLen < n {
		return false
	}

	bb.B = bb.B[:curLen+n]

	return true
}

// ExtendOrGrow lengthens the buffer by n bytes and returns the new n-byte tail.
// The tail content is unspecified; callers overwrite it.
func (bb *ByteBuffer) ExtendOrGrow(n int) []byte {
	start := len(bb.B)
	if !bb.Extend(n) {
		bb.Grow(n)
		bb.B = bb.B[:start+n]
	}

	return bb.B[start:]
}

// Grow makes room for requiredBytes more bytes without changing the length.
//
// Small buffers grow by FrameBufferDefaultSize, larger ones by 25% of their capacity,
// and never by less than requiredBytes.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	if cap(bb.B)-len(bb.B) >= requiredBytes {
		return
	}

	growBy := FrameBufferDefaultSize
	if cap(bb.B) > 4*FrameBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}

	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// ByteBufferPool is a sync.Pool of ByteBuffers.
//
// Buffers that grew beyond maxThreshold are dropped on Put instead of being retained.
// A zero maxThreshold keeps every buffer.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool whose fresh buffers have defaultSize capacity.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves an empty ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put resets bb and returns it to the pool.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && bb.Cap() > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var frameDefaultPool = NewByteBufferPool(FrameBufferDefaultSize, FrameBufferMaxThreshold)

// GetFrameBuffer retrieves a ByteBuffer from the default frame pool.
func GetFrameBuffer() *ByteBuffer {
	return frameDefaultPool.Get()
}

// PutFrameBuffer returns a ByteBuffer to the default frame pool.
func PutFrameBuffer(bb *ByteBuffer) {
	frameDefaultPool.Put(bb)
}
