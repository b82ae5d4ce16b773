package handler

import (
	"bytes"
	"sync"
)

const (
	initialBufferSize = 512
	// Recipe pages with many ingredients can grow a buffer well past the
	// usual response size; such buffers are dropped instead of pooled.
	maxPooledBufferSize = 64 << 10
)

var bufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, initialBufferSize))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledBufferSize {
		return
	}
	buf.Reset()
	bufferPool.Put(buf)
}
