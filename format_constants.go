// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package lz4

// LZ4 block format constants: token layout, sequence bounds, end-of-block
// margins, and hash table parameters.

// Token layout. The high nibble carries the literal-run length, the low nibble
// carries matchLength-4. A nibble value of 15 switches to extension bytes:
// each 255 byte continues the chain, any smaller byte ends it.
const (
	tokenLiteralShift = 4
	tokenNibbleMax    = 15
	extensionContinue = 255
)

// Match and window bounds. The offset is a 2-byte little-endian value; zero is
// always invalid.
const (
	minMatch    = 4
	distanceMax = 65535
)

// End-of-block margins. Every block ends with a literal-only sequence: the last
// lastLiterals bytes are never matched and no match may start within the last
// mfLimit bytes. Inputs shorter than minBlockLength encode as one literal run.
const (
	lastLiterals   = 5
	mfLimit        = 12
	minBlockLength = mfLimit + 1
)

// MaxInputSize is the largest input length the compressor accepts for a single
// block (0x7E000000 bytes). Larger inputs must be split by the caller.
const MaxInputSize = 0x7E000000

// smallInputLimit separates the 16-bit table addressing mode (independent
// blocks whose positions fit uint16) from the 32-bit cumulative mode.
const smallInputLimit = 65536 + (mfLimit - 1)

// Acceleration bounds for the fast match finder.
const (
	accelerationDefault = 1
	accelerationMax     = 65537
	skipTrigger         = 6 // shift controlling how quickly the search step grows on misses
)

// Hash parameters. One table of htSize uint32 slots serves both addressing
// modes: the 16-bit mode hashes 4 bytes into hashLogU16 bits, the 32-bit mode
// hashes 5 bytes into hashLog bits.
const (
	hashLog     = 12
	hashLogU16  = hashLog + 1
	htSize      = 1 << hashLogU16
	prime4bytes = 2654435761
	prime5bytes = 889523592379
)
