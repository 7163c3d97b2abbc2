// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package lz4

import "encoding/binary"

// matchEnv fixes the index geometry of one encodeBlock call: where the block
// starts in the cumulative index space and which external regions candidates
// may fall into.
type matchEnv struct {
	src        []byte
	startIndex uint32
	lowLimit   uint32
	ownDict    []byte
	dictCtx    *Stream
	extFloor   uint32
	extDelta   uint32
}

// findCandidate resolves the table entry at slot h against the bytes at
// src[pos] and records pos in the slot. ok is false when the entry is empty,
// stale, too far back, or the first 4 bytes differ. On a miss of our own table
// an attached dictCtx is probed instead, its indexes shifted by extDelta into
// our space.
func (s *Stream) findCandidate(e *matchEnv, pos int, h uint32) (region []byte, regionPos, offset int, ext, ok bool) {
	cur := e.startIndex + uint32(pos)
	matchIndex := s.table[h]

	var idx uint32
	switch {
	case matchIndex >= e.startIndex:
		region = e.src
		regionPos = int(matchIndex - e.startIndex)
		idx = matchIndex

	case e.dictCtx != nil:
		dIdx := e.dictCtx.table[h]
		if dIdx < e.extFloor {
			s.table[h] = cur
			return nil, 0, 0, false, false
		}
		region = e.dictCtx.dict
		regionPos = int(dIdx - e.extFloor)
		idx = dIdx + e.extDelta
		ext = true

	default:
		if matchIndex < e.lowLimit {
			s.table[h] = cur
			return nil, 0, 0, false, false
		}
		region = e.ownDict
		regionPos = int(matchIndex - e.lowLimit)
		idx = matchIndex
		ext = true
	}

	s.table[h] = cur

	// Unsigned subtraction turns any entry ahead of cur into a huge distance,
	// so stale table contents fail this check rather than being read.
	if cur-idx > distanceMax {
		return nil, 0, 0, false, false
	}
	if binary.LittleEndian.Uint32(region[regionPos:]) != binary.LittleEndian.Uint32(e.src[pos:]) {
		return nil, 0, 0, false, false
	}

	return region, regionPos, int(cur - idx), ext, true
}

// encodeBlock runs the greedy hash parse over src and writes sequences into
// dst. Match candidates come from the block itself, from s.dict (the previous
// block or a loaded dictionary), and from an attached dictCtx. In fill mode a
// full dst ends the parse early and consumed reports how much input made it
// in; otherwise a full dst is an error.
func (s *Stream) encodeBlock(src, dst []byte, dictCtx *Stream, mode tableMode, accel int, fill bool) (written, consumed int, err error) {
	inputLen := len(src)
	dstLen := len(dst)

	startIndex := s.currentOffset
	env := matchEnv{
		src:        src,
		startIndex: startIndex,
		lowLimit:   startIndex - uint32(len(s.dict)),
		ownDict:    s.dict,
		dictCtx:    dictCtx,
	}
	if dictCtx != nil {
		env.extFloor = dictCtx.currentOffset - uint32(len(dictCtx.dict))
		env.extDelta = startIndex - dictCtx.currentOffset
	}

	s.tableMode = mode
	s.currentOffset += uint32(inputLen)

	inputLimit := inputLen - mfLimit + 1
	matchLimit := inputLen - lastLiterals

	var (
		literalStart int
		outPos       int
	)

	if inputLen >= minBlockLength {
		s.table[hashPosition(src, 0, mode)] = startIndex
		inputPos := 1
		forwardH := hashPosition(src, 1, mode)

	sequences:
		for {
			var (
				region    []byte
				regionPos int
				off       int
				ext       bool
			)

			// Search: repeated misses grow the step so incompressible data is
			// skipped over quickly.
			{
				forwardPos := inputPos
				step := 1
				searchMatchNb := accel << skipTrigger
				for {
					h := forwardH
					inputPos = forwardPos
					forwardPos += step
					step = searchMatchNb >> skipTrigger
					searchMatchNb++

					if forwardPos > inputLimit {
						break sequences
					}
					forwardH = hashPosition(src, forwardPos, mode)

					var ok bool
					region, regionPos, off, ext, ok = s.findCandidate(&env, inputPos, h)
					if ok {
						break
					}
				}
			}
			filledPos := inputPos

			// Catch up: extend the match backward over bytes that equal the
			// tail of the pending literal run.
			for inputPos > literalStart && regionPos > 0 && src[inputPos-1] == region[regionPos-1] {
				inputPos--
				regionPos--
			}

			litLen := inputPos - literalStart
			tokenPos := outPos
			outPos++
			if !fill {
				if outPos+litLen+litLen/255+(2+1+lastLiterals) > dstLen {
					return 0, 0, ErrDestinationTooSmall
				}
			} else if outPos+(litLen+240)/255+litLen+2+1+(mfLimit-minMatch) > dstLen {
				outPos--
				break sequences
			}

			if litLen >= tokenNibbleMax {
				dst[tokenPos] = tokenByte(tokenNibbleMax, 0)
				outPos = putLengthExtension(dst, outPos, litLen-tokenNibbleMax)
			} else {
				dst[tokenPos] = tokenByte(byte(litLen), 0) //nolint:gosec // G115: below tokenNibbleMax
			}
			copy(dst[outPos:], src[literalStart:inputPos])
			outPos += litLen

			for {
				// A match this close to the end of dst cannot leave room for
				// the closing literal run; drop the pending sequence.
				if fill && outPos+2+1+(mfLimit-minMatch) > dstLen {
					outPos = tokenPos
					break sequences
				}

				binary.LittleEndian.PutUint16(dst[outPos:], uint16(off)) //nolint:gosec // G115: offset bounded by distanceMax
				outPos += 2

				matchCode := countEqual(src[inputPos+minMatch:matchLimit], region[regionPos+minMatch:])
				if ext && regionPos+minMatch+matchCode == len(region) {
					// The match ran off the end of the external region and
					// may continue at the start of the block.
					matchCode += countEqual(src[inputPos+minMatch+matchCode:matchLimit], src)
				}
				inputPos += minMatch + matchCode

				if outPos+1+lastLiterals+(matchCode+240)/255 > dstLen {
					if !fill {
						return 0, 0, ErrDestinationTooSmall
					}
					// Trim the match so its length bytes still fit, and drop
					// table entries for positions we are giving back.
					newCode := tokenNibbleMax - 1 + (dstLen-outPos-1-lastLiterals)*255
					inputPos -= matchCode - newCode
					matchCode = newCode
					if inputPos <= filledPos {
						for p := inputPos; p <= filledPos; p++ {
							s.table[hashPosition(src, p, mode)] = 0
						}
					}
				}

				if matchCode >= tokenNibbleMax {
					dst[tokenPos] |= tokenNibbleMax
					outPos = putLengthExtension(dst, outPos, matchCode-tokenNibbleMax)
				} else {
					dst[tokenPos] |= byte(matchCode) //nolint:gosec // G115: below tokenNibbleMax
				}

				literalStart = inputPos
				if inputPos >= inputLimit {
					break sequences
				}

				s.table[hashPosition(src, inputPos-2, mode)] = startIndex + uint32(inputPos-2) //nolint:gosec // G115: position fits uint32

				h := hashPosition(src, inputPos, mode)
				var ok bool
				region, regionPos, off, ext, ok = s.findCandidate(&env, inputPos, h)
				if !ok {
					inputPos++
					forwardH = hashPosition(src, inputPos, mode)
					break
				}

				// Immediate next match: empty literal run, token written now.
				tokenPos = outPos
				dst[outPos] = 0
				outPos++
			}
		}
	}

	// Closing literal run.
	lastRun := inputLen - literalStart
	if outPos+lastRun+1+(lastRun+255-tokenNibbleMax)/255 > dstLen {
		if !fill {
			return 0, 0, ErrDestinationTooSmall
		}
		lastRun = dstLen - outPos - 1
		lastRun -= (lastRun + 256 - tokenNibbleMax) / 256
	}

	if lastRun >= tokenNibbleMax {
		dst[outPos] = tokenByte(tokenNibbleMax, 0)
		outPos++
		outPos = putLengthExtension(dst, outPos, lastRun-tokenNibbleMax)
	} else {
		dst[outPos] = tokenByte(byte(lastRun), 0) //nolint:gosec // G115: below tokenNibbleMax
		outPos++
	}
	copy(dst[outPos:], src[literalStart:literalStart+lastRun])
	outPos += lastRun

	return outPos, literalStart + lastRun, nil
}
