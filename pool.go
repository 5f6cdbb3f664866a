package attrtext

import (
	"bytes"
	"sync"
)

// encodePool recycles the scratch buffers Encode renders into before the
// result is copied out
var encodePool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, 256))
	},
}

// Buffers which grew past this are dropped instead of recycled, so one
// large document does not keep its memory alive
const maxPooledBuffer = 64 << 10

func getBuffer() *bytes.Buffer {
	return encodePool.Get().(*bytes.Buffer)
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledBuffer {
		return
	}
	buf.Reset()
	encodePool.Put(buf)
}
