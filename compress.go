// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package lz4

// Compress compresses src as a single LZ4 block. opts may be nil (uses the
// default acceleration). The result is freshly allocated and sized to the
// compressed length.
func Compress(src []byte, opts *CompressOptions) ([]byte, error) {
	bound := CompressBound(len(src))
	if bound == 0 {
		return nil, ErrInputTooLarge
	}

	dst := make([]byte, bound)
	n, err := CompressInto(src, dst, opts)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// CompressInto compresses src into dst and returns the compressed size.
// A dst of at least CompressBound(len(src)) bytes never fails; with a smaller
// dst the block may not fit and ErrDestinationTooSmall is returned.
func CompressInto(src, dst []byte, opts *CompressOptions) (int, error) {
	if len(src) > MaxInputSize {
		return 0, ErrInputTooLarge
	}

	accel := accelerationDefault
	if opts != nil {
		accel = normalizeAcceleration(opts.Acceleration)
	}

	s := acquireStream()
	defer releaseStream(s)

	mode := tableByU32
	if len(src) < smallInputLimit {
		mode = tableByU16
	}
	s.prepare(len(src), mode)

	n, _, err := s.encodeBlock(src, dst, nil, mode, accel, false)
	return n, err
}

// CompressFill compresses as much of src as fits into dst. It returns the
// compressed size and how many source bytes were consumed; the output
// decompresses to exactly that prefix of src. dst must not be empty.
func CompressFill(src, dst []byte) (written, consumed int, err error) {
	if len(src) > MaxInputSize {
		return 0, 0, ErrInputTooLarge
	}
	if len(dst) == 0 {
		return 0, 0, ErrDestinationTooSmall
	}

	s := acquireStream()
	defer releaseStream(s)

	mode := tableByU32
	if len(src) < smallInputLimit {
		mode = tableByU16
	}
	s.prepare(len(src), mode)

	// A dst at or past the bound cannot overflow, so the plain parse both
	// runs faster and consumes all of src.
	if len(dst) >= CompressBound(len(src)) {
		n, _, err := s.encodeBlock(src, dst, nil, mode, accelerationDefault, false)
		return n, len(src), err
	}

	return s.encodeBlock(src, dst, nil, mode, accelerationDefault, true)
}
