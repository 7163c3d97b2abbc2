// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package lz4

import "encoding/binary"

// tableMode selects how hash table entries address the input.
type tableMode uint8

const (
	// tableCleared marks a zeroed table usable by any mode.
	tableCleared tableMode = iota
	// tableByU16 stores in-block positions of independent small blocks.
	tableByU16
	// tableByU32 stores cumulative stream positions.
	tableByU32
)

const (
	// renormThreshold is the cumulative offset beyond which table entries are
	// rescaled before the next block.
	renormThreshold = 0x80000000
	// reuseLimitByU32 caps how far a 32-bit table may age before reuse
	// requires a clear.
	reuseLimitByU32 = 1 << 30
	// clearInputFloor is the input size from which a block always starts on a
	// cleared table.
	clearInputFloor = 4096
	// attachCopyThreshold is the input size from which a block adopts an
	// attached dictionary's whole table instead of consulting it per probe.
	attachCopyThreshold = 4096
)

// hash4 maps a 4-byte little-endian load to a table index of hashLogU16 bits.
func hash4(v uint32) uint32 {
	return (v * prime4bytes) >> (32 - hashLogU16)
}

// hash5 maps the low 5 bytes of an 8-byte little-endian load to a table index
// of hashLog bits.
func hash5(v uint64) uint32 {
	return uint32(((v << 24) * prime5bytes) >> (64 - hashLog))
}

// hashPosition hashes the bytes at src[i:] for the given addressing mode.
// Loads are explicitly little-endian so block output is identical on every
// platform.
func hashPosition(src []byte, i int, mode tableMode) uint32 {
	if mode == tableByU16 {
		return hash4(binary.LittleEndian.Uint32(src[i:]))
	}
	return hash5(binary.LittleEndian.Uint64(src[i:]))
}

// prepare readies the table for a block that starts with no usable history.
// A table already in the requested mode is kept when its entries stay valid
// for the new block; otherwise it is cleared. currentOffset zero is the
// fastest path, so a cleared table is not aged.
func (s *Stream) prepare(inputLen int, mode tableMode) {
	if s.tableMode != tableCleared {
		if s.tableMode != mode ||
			(mode == tableByU16 && int(s.currentOffset)+inputLen >= 0xFFFF) ||
			(mode == tableByU32 && s.currentOffset > reuseLimitByU32) ||
			inputLen >= clearInputFloor {
			clear(s.table[:])
			s.currentOffset = 0
			s.tableMode = tableCleared
		}
	}

	// A 64KB gap puts every stale entry beyond distanceMax, which is cheaper
	// than clearing the table.
	if s.currentOffset != 0 && mode == tableByU32 {
		s.currentOffset += 65536
	}

	s.dict = nil
	s.dictCtx = nil
}

// renorm rescales table entries when the cumulative offset would overflow on
// the next block, sliding everything down so the dictionary tail sits at
// offset 65536 again. Entries older than the kept window drop to zero, where
// the floor check rejects them.
func (s *Stream) renorm(nextLen int) {
	if int64(s.currentOffset)+int64(nextLen) <= renormThreshold {
		return
	}

	delta := s.currentOffset - 65536
	for i, v := range s.table {
		if v < delta {
			s.table[i] = 0
		} else {
			s.table[i] = v - delta
		}
	}
	s.currentOffset = 65536

	if len(s.dict) > 65536 {
		s.dict = s.dict[len(s.dict)-65536:]
	}
}
