// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package lz4

import (
	"encoding/binary"
	"math/bits"
)

// countEqual returns the length of the common prefix of a and b. It compares
// 8 bytes at a time and locates the first differing byte with a trailing-zero
// count on the XOR of the two words.
func countEqual(a, b []byte) int {
	n := min(len(a), len(b))

	i := 0
	for i+8 <= n {
		x := binary.LittleEndian.Uint64(a[i:]) ^ binary.LittleEndian.Uint64(b[i:])
		if x != 0 {
			return i + bits.TrailingZeros64(x)>>3
		}
		i += 8
	}
	for i < n && a[i] == b[i] {
		i++
	}

	return i
}
