// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package lz4

// copyBackRef copies length bytes from dst[outputPos-dist:outputPos-dist+length] to dst[outputPos:outputPos+length].
// If distance < length, source and destination overlap; copy must be byte-by-byte so that
// repeated bytes (RLE) are correct. The built-in copy does not handle overlapping regions
// where src precedes dst.
func copyBackRef(dst []byte, outputPos, dist, length int) error {
	mPos := outputPos - dist
	if mPos < 0 {
		return ErrLookBehindUnderrun
	}

	if outputPos+length > len(dst) {
		return ErrOutputOverrun
	}

	if dist >= length {
		copy(dst[outputPos:outputPos+length], dst[mPos:mPos+length])
		return nil
	}

	for i := 0; i < length; i++ {
		dst[outputPos+i] = dst[mPos+i]
	}

	return nil
}

// historyView is decoded output preceding the current destination buffer:
// newer directly precedes dst[0], older directly precedes newer. Streaming
// decoders keep at most two regions; one-shot dictionary decoding uses newer
// alone.
type historyView struct {
	older []byte
	newer []byte
}

func (h historyView) size() int {
	return len(h.older) + len(h.newer)
}

// copyTail copies bytes out of the history starting reach bytes before its
// end. The builtin copy truncates at len(out), so out controls how much is
// taken.
func (h historyView) copyTail(out []byte, reach int) {
	if reach <= len(h.newer) {
		copy(out, h.newer[len(h.newer)-reach:])
		return
	}

	fromOlder := reach - len(h.newer)
	n := copy(out, h.older[len(h.older)-fromOlder:])
	copy(out[n:], h.newer)
}

// copyExternalRef copies a back-reference that starts reach bytes before
// dst[0], inside the history. When length exceeds reach the copy continues
// byte-by-byte over the output produced so far, as with copyBackRef.
func copyExternalRef(dst []byte, outputPos int, hist historyView, reach, length int) error {
	if reach > hist.size() {
		return ErrLookBehindUnderrun
	}

	if outputPos+length > len(dst) {
		return ErrOutputOverrun
	}

	n := min(length, reach)
	hist.copyTail(dst[outputPos:outputPos+n], reach)

	for i := n; i < length; i++ {
		dst[outputPos+i] = dst[i-reach]
	}

	return nil
}
