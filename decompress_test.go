package lz4

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestDecompress_OptionsRequired(t *testing.T) {
	_, err := Decompress([]byte{0x00}, nil)
	if !errors.Is(err, ErrOptionsRequired) {
		t.Fatalf("expected ErrOptionsRequired, got %v", err)
	}

	_, err = Decompress([]byte{0x00}, &DecompressOptions{OutLen: -1})
	if !errors.Is(err, ErrOptionsRequired) {
		t.Fatalf("expected ErrOptionsRequired for negative OutLen, got %v", err)
	}

	_, err = DecompressFromReader(strings.NewReader("\x00"), nil)
	if !errors.Is(err, ErrOptionsRequired) {
		t.Fatalf("expected ErrOptionsRequired (reader), got %v", err)
	}
}

func TestDecompress_EmptyInput(t *testing.T) {
	_, err := Decompress(nil, DefaultDecompressOptions(0))
	if !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}

	_, err = DecompressFromReader(bytes.NewReader(nil), DefaultDecompressOptions(0))
	if !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput (reader), got %v", err)
	}
}

func TestDecompress_TruncatedInputAlwaysFails(t *testing.T) {
	// Incompressible input encodes as one literal run, so every truncation
	// leaves the run reaching past the end of input.
	data := noise(512, 7)
	cmp, err := Compress(data, nil)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}
	// Token, two extension bytes, then the literals.
	if len(cmp) != len(data)+3 {
		t.Fatalf("expected a literal-only block, got %d bytes for %d", len(cmp), len(data))
	}

	for cut := 1; cut < len(cmp); cut++ {
		_, decErr := Decompress(cmp[:cut], DefaultDecompressOptions(len(data)))
		if !errors.Is(decErr, ErrInputOverrun) {
			t.Fatalf("expected ErrInputOverrun at cut=%d, got %v", cut, decErr)
		}
	}
}

func TestDecompress_OutLenTooSmall(t *testing.T) {
	data := bytes.Repeat([]byte("AABBCCDDEEFF"), 512)
	cmp, err := Compress(data, nil)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	for _, outLen := range []int{0, 1, len(data) / 2, len(data) - 1} {
		_, err = Decompress(cmp, DefaultDecompressOptions(outLen))
		if !errors.Is(err, ErrOutputOverrun) {
			t.Fatalf("expected ErrOutputOverrun with OutLen=%d, got %v", outLen, err)
		}
	}
}

func TestDecompressFromReader_MaxInputSize(t *testing.T) {
	data := bytes.Repeat([]byte("xyz"), 200)
	cmp, err := Compress(data, nil)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	opts := DefaultDecompressOptions(len(data))
	opts.MaxInputSize = len(cmp) - 1
	_, err = DecompressFromReader(bytes.NewReader(cmp), opts)
	if !errors.Is(err, ErrInputTooLarge) {
		t.Fatalf("expected ErrInputTooLarge, got %v", err)
	}

	opts.MaxInputSize = len(cmp)
	out, err := DecompressFromReader(bytes.NewReader(cmp), opts)
	if err != nil {
		t.Fatalf("DecompressFromReader at the limit failed: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Fatal("round-trip mismatch at the input limit")
	}
}

func TestDecompressInto_ReusesCallerBuffer(t *testing.T) {
	data := bytes.Repeat([]byte("decode-into"), 256)
	cmp, err := Compress(data, nil)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	dst := make([]byte, len(data))
	out, err := DecompressInto(cmp, dst)
	if err != nil {
		t.Fatalf("DecompressInto failed: %v", err)
	}

	if len(out) != len(data) {
		t.Fatalf("decoded length mismatch: got=%d want=%d", len(out), len(data))
	}
	if !bytes.Equal(out, data) {
		t.Fatal("decoded output mismatch")
	}
	if len(out) > 0 && &out[0] != &dst[0] {
		t.Fatal("DecompressInto should return a slice over the provided destination buffer")
	}
}

func TestDecompressInto_BufferTooSmall(t *testing.T) {
	data := bytes.Repeat([]byte("small-buffer"), 128)
	cmp, err := Compress(data, nil)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	_, err = DecompressInto(cmp, make([]byte, len(data)-1))
	if !errors.Is(err, ErrOutputOverrun) {
		t.Fatalf("expected ErrOutputOverrun, got %v", err)
	}
}

func TestDecompress_MalformedSequences(t *testing.T) {
	cases := []struct {
		name string
		src  []byte
		want error
	}{
		{name: "zero-offset", src: []byte{0x10, 'x', 0x00, 0x00}, want: ErrZeroOffset},
		{name: "lookbehind-underrun", src: []byte{0x10, 'x', 0x05, 0x00}, want: ErrLookBehindUnderrun},
		{name: "literal-run-past-input", src: []byte{0x50, 'a', 'b'}, want: ErrInputOverrun},
		{name: "truncated-offset", src: []byte{0x10, 'a', 0x01}, want: ErrInputOverrun},
		{name: "unterminated-extension", src: []byte{0xF0, 0xFF, 0xFF}, want: ErrInputOverrun},
		{name: "block-ends-on-match", src: []byte{0x12, 'x', 0x01, 0x00}, want: ErrInputOverrun},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decompress(tc.src, DefaultDecompressOptions(64))
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestDecompressPartial(t *testing.T) {
	data := bytes.Repeat([]byte{'a'}, 32)
	cmp, err := Compress(data, nil)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	t.Run("prefix", func(t *testing.T) {
		out, err := DecompressPartial(cmp, make([]byte, 32), 10)
		if err != nil {
			t.Fatalf("DecompressPartial failed: %v", err)
		}
		if !bytes.Equal(out, data[:10]) {
			t.Fatalf("prefix mismatch: got=%d bytes", len(out))
		}
	})

	t.Run("zero-target", func(t *testing.T) {
		out, err := DecompressPartial(cmp, make([]byte, 32), 0)
		if err != nil {
			t.Fatalf("DecompressPartial failed: %v", err)
		}
		if len(out) != 0 {
			t.Fatalf("decoded %d bytes, want 0", len(out))
		}
	})

	t.Run("full-block", func(t *testing.T) {
		out, err := DecompressPartial(cmp, make([]byte, 32), 32)
		if err != nil {
			t.Fatalf("DecompressPartial failed: %v", err)
		}
		if !bytes.Equal(out, data) {
			t.Fatal("full decode mismatch")
		}
	})

	t.Run("target-beyond-block", func(t *testing.T) {
		out, err := DecompressPartial(cmp, make([]byte, 100), 100)
		if err != nil {
			t.Fatalf("DecompressPartial failed: %v", err)
		}
		if !bytes.Equal(out, data) {
			t.Fatalf("expected the whole block, got %d bytes", len(out))
		}
	})

	t.Run("destination-caps-target", func(t *testing.T) {
		out, err := DecompressPartial(cmp, make([]byte, 5), 10)
		if err != nil {
			t.Fatalf("DecompressPartial failed: %v", err)
		}
		if !bytes.Equal(out, data[:5]) {
			t.Fatalf("expected 5 bytes, got %d", len(out))
		}
	})

	t.Run("malformed-input-still-fails", func(t *testing.T) {
		// The target is reached early but the block itself must stay well
		// formed to the end.
		_, err := DecompressPartial(cmp[:len(cmp)-1], make([]byte, 32), 32)
		if !errors.Is(err, ErrInputOverrun) {
			t.Fatalf("expected ErrInputOverrun, got %v", err)
		}
	})
}

func TestDecompressUsingDict(t *testing.T) {
	t.Run("dict-unused", func(t *testing.T) {
		data := bytes.Repeat([]byte{'a'}, 32)
		cmp, err := Compress(data, nil)
		if err != nil {
			t.Fatalf("Compress failed: %v", err)
		}

		out, err := DecompressUsingDict(cmp, make([]byte, 32), []byte("unrelated dictionary content"))
		if err != nil {
			t.Fatalf("DecompressUsingDict failed: %v", err)
		}
		if !bytes.Equal(out, data) {
			t.Fatal("round-trip mismatch")
		}
	})

	t.Run("dict-tail-match", func(t *testing.T) {
		// Zero literals, then a four-byte match at offset four: the last four
		// dictionary bytes. The trailing zero token ends the block.
		src := []byte{0x00, 0x04, 0x00, 0x00}
		out, err := DecompressUsingDict(src, make([]byte, 4), []byte("ABCDEFGH"))
		if err != nil {
			t.Fatalf("DecompressUsingDict failed: %v", err)
		}
		if string(out) != "EFGH" {
			t.Fatalf("got %q, want %q", out, "EFGH")
		}
	})

	t.Run("match-continues-into-output", func(t *testing.T) {
		src := []byte{0x00, 0x02, 0x00, 0x00}
		out, err := DecompressUsingDict(src, make([]byte, 4), []byte("ABCDEFGH"))
		if err != nil {
			t.Fatalf("DecompressUsingDict failed: %v", err)
		}
		if string(out) != "GHGH" {
			t.Fatalf("got %q, want %q", out, "GHGH")
		}
	})

	t.Run("offset-beyond-dict", func(t *testing.T) {
		src := []byte{0x00, 0x20, 0x00, 0x00}
		_, err := DecompressUsingDict(src, make([]byte, 4), []byte("ABCDEFGH"))
		if !errors.Is(err, ErrLookBehindUnderrun) {
			t.Fatalf("expected ErrLookBehindUnderrun, got %v", err)
		}
	})

	t.Run("oversized-dict-trimmed", func(t *testing.T) {
		dict := noise(70000, 8)
		copy(dict[len(dict)-8:], "ABCDEFGH")

		src := []byte{0x00, 0x04, 0x00, 0x00}
		out, err := DecompressUsingDict(src, make([]byte, 4), dict)
		if err != nil {
			t.Fatalf("DecompressUsingDict failed: %v", err)
		}
		if string(out) != "EFGH" {
			t.Fatalf("got %q, want %q", out, "EFGH")
		}
	})
}

func TestDecompress_ByteFlipsNeverPanic(t *testing.T) {
	data := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog. "), 40)
	cmp, err := Compress(data, nil)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	for i := range cmp {
		mut := bytes.Clone(cmp)
		mut[i] ^= 0xFF

		out, err := Decompress(mut, DefaultDecompressOptions(len(data)))
		if err == nil && len(out) > len(data) {
			t.Fatalf("flip at %d decoded %d bytes past OutLen", i, len(out))
		}
	}
}

func TestCopyBackRef(t *testing.T) {
	t.Run("non-overlapping", func(t *testing.T) {
		dst := []byte("abcdefghXXXXXXXX")
		if err := copyBackRef(dst, 8, 8, 4); err != nil {
			t.Fatalf("copyBackRef failed: %v", err)
		}
		if got, want := string(dst), "abcdefghabcdXXXX"; got != want {
			t.Fatalf("unexpected dst: got %q want %q", got, want)
		}
	})

	t.Run("overlapping", func(t *testing.T) {
		dst := []byte{'A', 'B', 'C', 0, 0, 0, 0, 0}
		if err := copyBackRef(dst, 3, 3, 5); err != nil {
			t.Fatalf("copyBackRef failed: %v", err)
		}
		if got, want := string(dst), "ABCABCAB"; got != want {
			t.Fatalf("unexpected dst: got %q want %q", got, want)
		}
	})

	t.Run("lookbehind-underrun", func(t *testing.T) {
		dst := make([]byte, 8)
		err := copyBackRef(dst, 2, 3, 2)
		if !errors.Is(err, ErrLookBehindUnderrun) {
			t.Fatalf("expected ErrLookBehindUnderrun, got %v", err)
		}
	})

	t.Run("output-overrun", func(t *testing.T) {
		dst := make([]byte, 8)
		err := copyBackRef(dst, 7, 1, 2)
		if !errors.Is(err, ErrOutputOverrun) {
			t.Fatalf("expected ErrOutputOverrun, got %v", err)
		}
	})
}

func TestCopyExternalRef(t *testing.T) {
	t.Run("external-only", func(t *testing.T) {
		dst := make([]byte, 4)
		hist := historyView{newer: []byte("ABCDEFGH")}
		if err := copyExternalRef(dst, 0, hist, 4, 4); err != nil {
			t.Fatalf("copyExternalRef failed: %v", err)
		}
		if got, want := string(dst), "EFGH"; got != want {
			t.Fatalf("unexpected dst: got %q want %q", got, want)
		}
	})

	t.Run("continues-into-output", func(t *testing.T) {
		dst := make([]byte, 4)
		hist := historyView{newer: []byte("ABCDEFGH")}
		if err := copyExternalRef(dst, 0, hist, 2, 4); err != nil {
			t.Fatalf("copyExternalRef failed: %v", err)
		}
		if got, want := string(dst), "GHGH"; got != want {
			t.Fatalf("unexpected dst: got %q want %q", got, want)
		}
	})

	t.Run("split-history", func(t *testing.T) {
		dst := make([]byte, 4)
		hist := historyView{older: []byte("ABCD"), newer: []byte("EF")}
		if err := copyExternalRef(dst, 0, hist, 4, 4); err != nil {
			t.Fatalf("copyExternalRef failed: %v", err)
		}
		if got, want := string(dst), "CDEF"; got != want {
			t.Fatalf("unexpected dst: got %q want %q", got, want)
		}
	})

	t.Run("lookbehind-underrun", func(t *testing.T) {
		dst := make([]byte, 4)
		hist := historyView{newer: []byte("ABCDEF")}
		err := copyExternalRef(dst, 0, hist, 10, 4)
		if !errors.Is(err, ErrLookBehindUnderrun) {
			t.Fatalf("expected ErrLookBehindUnderrun, got %v", err)
		}
	})

	t.Run("output-overrun", func(t *testing.T) {
		dst := make([]byte, 3)
		hist := historyView{newer: []byte("ABCDEFGH")}
		err := copyExternalRef(dst, 0, hist, 4, 4)
		if !errors.Is(err, ErrOutputOverrun) {
			t.Fatalf("expected ErrOutputOverrun, got %v", err)
		}
	})
}

func FuzzDecompressArbitraryInput(f *testing.F) {
	cmp, err := Compress(bytes.Repeat([]byte("seed data "), 50), nil)
	if err != nil {
		f.Fatalf("Compress failed: %v", err)
	}
	f.Add(cmp)
	f.Add([]byte{0x00})
	f.Add([]byte{0xF0, 0xFF, 0xFF, 0x00})
	f.Add([]byte{0x10, 'x', 0x01, 0x00, 0x00})

	f.Fuzz(func(t *testing.T, data []byte) {
		out, err := Decompress(data, DefaultDecompressOptions(1024))
		if err == nil && len(out) > 1024 {
			t.Fatalf("decoded %d bytes past OutLen", len(out))
		}

		pout, err := DecompressPartial(data, make([]byte, 256), 128)
		if err == nil && len(pout) > 128 {
			t.Fatalf("partial decode produced %d bytes past the target", len(pout))
		}
	})
}
