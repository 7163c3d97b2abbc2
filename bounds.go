// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package lz4

// CompressBound returns the worst-case compressed size for an input of n
// bytes. Returns 0 when n is negative or exceeds MaxInputSize. A destination
// of at least this size makes compression failure impossible.
func CompressBound(n int) int {
	if n < 0 || n > MaxInputSize {
		return 0
	}
	return n + n/255 + 16
}

// DecoderRingBufferSize returns the byte size a ring buffer must have so a
// streaming decoder can decode blocks of up to maxBlockSize bytes into it
// without overwriting history still in reach. Returns 0 when maxBlockSize is
// negative or exceeds MaxInputSize.
func DecoderRingBufferSize(maxBlockSize int) int {
	if maxBlockSize < 0 || maxBlockSize > MaxInputSize {
		return 0
	}
	return 65536 + 14 + max(maxBlockSize, 16)
}

// DecompressInPlaceMargin returns the extra bytes a buffer needs past the
// decompressed data so a block loaded at the tail of the buffer can be decoded
// over its own compressed bytes.
func DecompressInPlaceMargin(compressedSize int) int {
	if compressedSize < 0 {
		return 0
	}
	return compressedSize>>8 + 32
}

// DecompressInPlaceBufferSize returns the buffer size needed to decompress a
// block in place, with the compressed block positioned at the buffer tail.
func DecompressInPlaceBufferSize(decompressedSize int) int {
	if decompressedSize < 0 {
		return 0
	}
	return decompressedSize + DecompressInPlaceMargin(decompressedSize)
}

// CompressInPlaceBufferSize returns the buffer size needed to compress a block
// in place, with the source positioned at the buffer tail and the compressed
// output written from the front.
func CompressInPlaceBufferSize(maxCompressedSize int) int {
	if maxCompressedSize < 0 {
		return 0
	}
	return maxCompressedSize + distanceMax + 32
}
