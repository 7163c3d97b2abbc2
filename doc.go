// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

/*
Package lz4 implements LZ4 block compression and decompression
(LZ4_decompress_safe-compatible).

A block is a series of sequences: a token carrying two length nibbles, a
literal run, and a 2-byte little-endian match offset of at most 64KB. Blocks
end on a literal-only sequence at the exact end of the input; there is no
terminator and no trailing data. Suitable for storage formats and protocols
that frame LZ4 blocks themselves.

Main implementation reference: lz4/lz4 (BSD 2-Clause) block API.

# Decompress

OutLen is required (use DecompressOptions). From a byte slice:

	out, err := lz4.Decompress(compressed, lz4.DefaultDecompressOptions(expectedLen))

To reuse caller-managed output memory (no per-call output allocation):

	dst := make([]byte, expectedLen)
	out, err := lz4.DecompressInto(compressed, dst)

To decode only the first part of a block, or against a dictionary:

	out, err := lz4.DecompressPartial(compressed, dst, 128)
	out, err := lz4.DecompressUsingDict(compressed, dst, dict)

From an io.Reader (e.g. stream with known decompressed size):

	out, err := lz4.DecompressFromReader(r, lz4.DefaultDecompressOptions(expectedLen))

# Compress

Options may be nil (default acceleration). Higher acceleration is faster and
compresses less:

	out, err := lz4.Compress(data, nil)
	out, err := lz4.Compress(data, &lz4.CompressOptions{Acceleration: 8})

CompressInto writes into a caller buffer; CompressBound gives the size that
always suffices. CompressFill inverts the contract and fits as much input as
possible into a fixed buffer:

	buf := make([]byte, lz4.CompressBound(len(data)))
	n, err := lz4.CompressInto(data, buf, nil)
	written, consumed, err := lz4.CompressFill(data, small)

# Streaming

Stream links consecutive blocks so matches reach up to 64KB into earlier
blocks; StreamDecoder replays them in order. Both support dictionaries:

	s := lz4.NewStream(nil)
	s.LoadDict(dict)
	n, err := s.CompressContinue(chunk, buf)

	d := lz4.NewStreamDecoder()
	d.SetDict(dict)
	n, err := d.DecompressContinue(block, out)
*/
package lz4
