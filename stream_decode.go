// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package lz4

// StreamDecoder decodes blocks produced by a Stream, resolving matches that
// reach into previously decoded output. The zero value is ready to use. Not
// safe for concurrent use.
//
// The decoder keeps references into earlier destination buffers instead of
// copying them, so the last 64KB of decoded output must stay unmodified in
// memory between calls. Ring buffers sized with DecoderRingBufferSize satisfy
// this by construction.
type StreamDecoder struct {
	// older and newer are the history regions still in reach: newer directly
	// precedes the next block's output, older directly precedes newer.
	older []byte
	newer []byte

	// merge is owned scratch for collapsing two regions into one when a
	// third would come into reach.
	merge []byte

	// dirty is set after a failed block; only Reset clears it.
	dirty bool
}

// NewStreamDecoder returns a decoding context with no history.
func NewStreamDecoder() *StreamDecoder {
	return &StreamDecoder{}
}

// Reset drops all history so the next block decodes independently. The merge
// scratch is kept for reuse.
func (d *StreamDecoder) Reset() {
	d.older = nil
	d.newer = nil
	d.dirty = false
}

// SetDict replaces the decoder history with a dictionary, matching a
// compressor that used LoadDict. Only the last 64KB matter; dict must stay
// unmodified while the decoder uses it.
func (d *StreamDecoder) SetDict(dict []byte) {
	d.Reset()

	if len(dict) > distanceMax {
		dict = dict[len(dict)-distanceMax:]
	}
	d.newer = dict
}

// DecompressContinue decodes src as the next block of the stream into dst and
// returns the decoded size. Blocks must arrive in the order they were
// compressed.
//
// After an error the decoder refuses further blocks until Reset.
func (d *StreamDecoder) DecompressContinue(src, dst []byte) (int, error) {
	if d.dirty {
		return 0, ErrStreamInvalid
	}

	n, err := decompressBlock(src, dst, historyView{older: d.older, newer: d.newer}, len(dst), false)
	if err != nil {
		d.dirty = true
		return 0, err
	}

	d.roll(dst[:n])
	return n, nil
}

// roll folds the block just decoded into the history window.
func (d *StreamDecoder) roll(out []byte) {
	if len(out) >= distanceMax {
		d.older = nil
		d.newer = out[len(out)-distanceMax:]
		return
	}

	need := distanceMax - len(out)
	switch {
	case len(d.newer) >= need:
		d.older = d.newer[len(d.newer)-need:]
	case len(d.older) > 0:
		// A third region would come into reach; collapse the two old ones
		// into owned scratch so the view stays two-sided.
		if d.merge == nil {
			d.merge = make([]byte, 0, distanceMax)
		}
		fromOlder := min(need-len(d.newer), len(d.older))
		m := append(d.merge[:0], d.older[len(d.older)-fromOlder:]...)
		m = append(m, d.newer...)
		d.merge = m
		d.older = m
	default:
		d.older = d.newer
	}
	d.newer = out
}
