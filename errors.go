// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package lz4

import "errors"

// Sentinel errors for decompression, compression, and streaming.
var (
	// ErrEmptyInput is returned when the input slice or stream is empty.
	ErrEmptyInput = errors.New("empty input")
	// ErrInputOverrun is returned when the decoder reads past the end of input.
	ErrInputOverrun = errors.New("input overrun")
	// ErrOutputOverrun is returned when the decoder would write past the output buffer.
	ErrOutputOverrun = errors.New("output overrun")
	// ErrLookBehindUnderrun is returned when a back-reference points before the start of the window.
	ErrLookBehindUnderrun = errors.New("lookbehind underrun")
	// ErrZeroOffset is returned when a sequence carries a zero match offset.
	ErrZeroOffset = errors.New("zero match offset")
	// ErrOptionsRequired is returned when Decompress is called with nil options (OutLen is required).
	ErrOptionsRequired = errors.New("options required: OutLen must be set")
	// ErrInputTooLarge is returned when the input exceeds MaxInputSize.
	ErrInputTooLarge = errors.New("input exceeds MaxInputSize")
	// ErrDestinationTooSmall is returned when the destination buffer cannot hold the compressed block.
	ErrDestinationTooSmall = errors.New("destination too small")
	// ErrStreamInvalid is returned when a streaming context is used after an error without a Reset.
	ErrStreamInvalid = errors.New("stream state invalid: reset required")
)
