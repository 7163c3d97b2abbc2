// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package lz4

// tokenByte packs the literal-run nibble and the match-length nibble into a
// sequence token.
func tokenByte(litCode, matchCode byte) byte {
	return litCode<<tokenLiteralShift | matchCode
}

// putLengthExtension writes the extension chain for a length whose nibble hit
// 15: v is the remainder. Each 255 byte continues the chain, the final smaller
// byte ends it. Returns the position after the last byte written; callers
// check capacity beforehand.
func putLengthExtension(dst []byte, pos, v int) int {
	for v >= extensionContinue {
		dst[pos] = extensionContinue
		pos++
		v -= extensionContinue
	}
	dst[pos] = byte(v)
	return pos + 1
}

// readLengthExtension reads an extension chain at *pos and advances past it,
// returning the accumulated remainder. Totals beyond MaxInputSize are rejected
// so a hostile chain cannot overflow the running length.
func readLengthExtension(src []byte, pos *int) (int, error) {
	total := 0
	for {
		if *pos >= len(src) {
			return 0, ErrInputOverrun
		}
		b := src[*pos]
		*pos++
		total += int(b)
		if total > MaxInputSize {
			return 0, ErrInputOverrun
		}
		if b != extensionContinue {
			return total, nil
		}
	}
}
