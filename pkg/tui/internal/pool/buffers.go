// ABOUTME: sync.Pool wrapper for the bytes.Buffer each render encodes into
// ABOUTME: Oversized buffers are dropped instead of pooled so one full repaint does not pin memory

package pool

import (
	"bytes"
	"sync"
)

// maxPooledCap bounds the capacity of buffers returned to the pool.
const maxPooledCap = 64 << 10

var bytesBufferPool = sync.Pool{
	New: func() any {
		return new(bytes.Buffer)
	},
}

// GetBytesBuffer returns an empty bytes.Buffer from the pool.
func GetBytesBuffer() *bytes.Buffer {
	buf := bytesBufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

// PutBytesBuffer returns buf to the pool.
func PutBytesBuffer(buf *bytes.Buffer) {
	if buf == nil || buf.Cap() > maxPooledCap {
		return
	}
	buf.Reset()
	bytesBufferPool.Put(buf)
}
