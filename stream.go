// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package lz4

// Stream is a compression context that links consecutive blocks: matches in
// each block may reference the previous block or a dictionary, up to 64KB
// back. The zero value is ready to use. Not safe for concurrent use.
type Stream struct {
	// table holds the cumulative index of the most recent occurrence of each
	// hash. currentOffset is the index just past all data seen so far.
	table         [htSize]uint32
	currentOffset uint32
	tableMode     tableMode
	acceleration  int

	// dict is the reachable history behind the next block; dictCtx is an
	// attached dictionary stream, consumed by the next CompressContinue.
	dict    []byte
	dictCtx *Stream

	// dirty is set after a failed block; only Reset clears it.
	dirty bool
}

// NewStream returns a compression context for linked blocks. opts may be nil
// (uses the default acceleration).
func NewStream(opts *CompressOptions) *Stream {
	a := 0
	if opts != nil {
		a = opts.Acceleration
	}
	return &Stream{acceleration: normalizeAcceleration(a)}
}

// Reset returns the stream to its initial state. The table is aged rather
// than cleared when its entries can simply fall out of reach, so resets stay
// cheap on reused streams.
func (s *Stream) Reset() {
	s.prepare(0, tableByU32)
	s.dirty = false
}

// LoadDict seeds the stream history with a dictionary, replacing any previous
// state. Only the last 64KB are kept, and dict must stay unmodified while the
// stream uses it. Returns the number of dictionary bytes retained;
// dictionaries shorter than 8 bytes load as empty.
func (s *Stream) LoadDict(dict []byte) int {
	clear(s.table[:])
	s.currentOffset = 65536
	s.tableMode = tableCleared
	s.dict = nil
	s.dictCtx = nil
	s.dirty = false

	if len(dict) < 8 {
		return 0
	}

	if len(dict) > 65536 {
		dict = dict[len(dict)-65536:]
	}
	s.dict = dict
	s.tableMode = tableByU32

	// Insert every third position; later inserts win, favoring the
	// dictionary tail.
	base := s.currentOffset - uint32(len(dict))
	for i := 0; i+8 <= len(dict); i += 3 {
		s.table[hashPosition(dict, i, tableByU32)] = base + uint32(i)
	}

	return len(dict)
}

// SaveDict copies the live history tail into buf and repoints the stream at
// it, detaching the stream from caller-owned source buffers. The copy is
// overlap-safe. Returns the number of bytes saved (at most 64KB and at most
// len(buf)).
func (s *Stream) SaveDict(buf []byte) int {
	n := min(len(buf), 65536, len(s.dict))

	if n > 0 {
		copy(buf, s.dict[len(s.dict)-n:])
		s.dict = buf[:n]
	} else {
		s.dict = nil
	}

	return n
}

// AttachDict resets the stream and attaches dict as a read-only dictionary
// for the next CompressContinue call; after that call the stream chains its
// own blocks as usual. dict should have been prepared with LoadDict and must
// not be mutated or reset while attached. Passing nil just resets.
func (s *Stream) AttachDict(dict *Stream) {
	s.Reset()

	if dict != nil {
		// A zero offset leaves no table value that can signal a miss, so the
		// dictionary would never be probed. Bump past the window.
		if s.currentOffset == 0 {
			s.currentOffset = 65536
		}
		if len(dict.dict) == 0 {
			dict = nil
		}
	}

	s.dictCtx = dict
}

// CompressContinue compresses src as the next block of the stream and returns
// the compressed size. Matches may reach into the previous block or the
// dictionary, so blocks must be decompressed in order with the same history.
// The previous block's bytes must stay unmodified in memory until the next
// call; SaveDict detaches the stream from buffers the caller wants back.
//
// After an error the stream refuses further blocks until Reset.
func (s *Stream) CompressContinue(src, dst []byte) (int, error) {
	if s.dirty {
		return 0, ErrStreamInvalid
	}
	if len(src) > MaxInputSize {
		return 0, ErrInputTooLarge
	}

	s.renorm(len(src))
	accel := normalizeAcceleration(s.acceleration)

	// A history too short to hash can only cost probes; drop it.
	if len(s.dict) < minMatch && len(src) > 0 && s.dictCtx == nil {
		s.dict = nil
	}
	// Beyond 64KB every position is past distanceMax anyway.
	if len(s.dict) > 65536 {
		s.dict = s.dict[len(s.dict)-65536:]
	}

	dictCtx := s.dictCtx
	s.dictCtx = nil

	if dictCtx != nil && len(src) > attachCopyThreshold {
		// Large block: adopting the dictionary table outright beats probing
		// two tables per position.
		s.table = dictCtx.table
		s.currentOffset = dictCtx.currentOffset
		s.tableMode = dictCtx.tableMode
		s.dict = dictCtx.dict
		dictCtx = nil
	}

	n, _, err := s.encodeBlock(src, dst, dictCtx, tableByU32, accel, false)
	if err != nil {
		s.dirty = true
		return 0, err
	}

	s.dict = src
	return n, nil
}
