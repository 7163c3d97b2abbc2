// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package lz4

import (
	"encoding/binary"
)

// Decompress decompresses one LZ4 block from src into a buffer of length
// opts.OutLen. Returns ErrOptionsRequired if opts is nil or OutLen is
// negative; ErrEmptyInput if src is empty. On success returns the decoded
// slice (length may be less than OutLen when the block decodes shorter).
func Decompress(src []byte, opts *DecompressOptions) ([]byte, error) {
	if opts == nil {
		return nil, ErrOptionsRequired
	}

	if len(src) == 0 {
		return nil, ErrEmptyInput
	}

	outLen := opts.OutLen
	if outLen < 0 {
		return nil, ErrOptionsRequired
	}

	dst := make([]byte, outLen)
	n, err := decompressBlock(src, dst, historyView{}, outLen, false)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// DecompressInto decompresses one block into dst without allocating and
// returns the decoded prefix of dst. A dst too small for the block fails with
// ErrOutputOverrun.
func DecompressInto(src, dst []byte) ([]byte, error) {
	if len(src) == 0 {
		return nil, ErrEmptyInput
	}

	n, err := decompressBlock(src, dst, historyView{}, len(dst), false)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// DecompressPartial decodes at most targetLen bytes of the block into dst and
// stops once the target is reached. The block must still be well formed; only
// the output is allowed to stop short. Useful for peeking at headers without
// decoding whole blocks.
func DecompressPartial(src, dst []byte, targetLen int) ([]byte, error) {
	if len(src) == 0 {
		return nil, ErrEmptyInput
	}

	target := min(max(targetLen, 0), len(dst))
	n, err := decompressBlock(src, dst, historyView{}, target, true)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// DecompressUsingDict decompresses one block whose matches may reach into
// dict, as produced by a compressor seeded with LoadDict. Only the last 64KB
// of dict are in reach.
func DecompressUsingDict(src, dst, dict []byte) ([]byte, error) {
	if len(src) == 0 {
		return nil, ErrEmptyInput
	}

	if len(dict) > distanceMax {
		dict = dict[len(dict)-distanceMax:]
	}

	n, err := decompressBlock(src, dst, historyView{newer: dict}, len(dst), false)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// decompressBlock decodes one block of sequences from src into dst, resolving
// external back-references against hist. It writes starting at dst[0] and
// returns the number of bytes written. A block ends exactly at the end of src
// on a literal-only sequence; anything else is ErrInputOverrun.
//
// limit caps the output in partial mode: decoding returns successfully the
// moment limit bytes are produced. Without partial, limit equals len(dst).
func decompressBlock(src, dst []byte, hist historyView, limit int, partial bool) (int, error) {
	var si, di int

	for {
		if si >= len(src) {
			return 0, ErrInputOverrun
		}

		token := src[si]
		si++

		// Literal run.
		litLen := int(token >> tokenLiteralShift)
		if litLen == tokenNibbleMax {
			ext, err := readLengthExtension(src, &si)
			if err != nil {
				return 0, err
			}
			litLen += ext
		}

		if litLen > len(src)-si {
			return 0, ErrInputOverrun
		}
		if partial && di+litLen >= limit {
			copy(dst[di:limit], src[si:])
			return limit, nil
		}
		if litLen > len(dst)-di {
			return 0, ErrOutputOverrun
		}

		copy(dst[di:], src[si:si+litLen])
		si += litLen
		di += litLen

		// The closing sequence carries literals only and lands exactly on the
		// end of the input.
		if si == len(src) {
			return di, nil
		}

		// Offset.
		if len(src)-si < 2 {
			return 0, ErrInputOverrun
		}
		offset := int(binary.LittleEndian.Uint16(src[si:]))
		si += 2
		if offset == 0 {
			return 0, ErrZeroOffset
		}

		// Match length.
		matchLen := int(token&tokenNibbleMax) + minMatch
		if matchLen == tokenNibbleMax+minMatch {
			ext, err := readLengthExtension(src, &si)
			if err != nil {
				return 0, err
			}
			matchLen += ext
		}

		if offset > di+hist.size() {
			return 0, ErrLookBehindUnderrun
		}
		if partial && di+matchLen > limit {
			matchLen = limit - di
		}

		var err error
		if offset <= di {
			err = copyBackRef(dst, di, offset, matchLen)
		} else {
			err = copyExternalRef(dst, di, hist, offset-di, matchLen)
		}
		if err != nil {
			return 0, err
		}
		di += matchLen

		if partial && di >= limit {
			return limit, nil
		}
	}
}
