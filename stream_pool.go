package lz4

import "sync"

// streamPool recycles compression contexts for the one-shot entry points.
var streamPool = sync.Pool{
	New: func() any {
		return &Stream{acceleration: accelerationDefault}
	},
}

// acquireStream acquires a compression context from the pool. The hash table
// is revalidated by prepare, not cleared, so acquisition stays cheap.
func acquireStream() *Stream {
	return streamPool.Get().(*Stream)
}

// releaseStream returns a context to the pool, dropping references to caller
// buffers so they can be collected.
func releaseStream(s *Stream) {
	if s == nil {
		return
	}

	s.dict = nil
	s.dictCtx = nil
	s.dirty = false
	streamPool.Put(s)
}
