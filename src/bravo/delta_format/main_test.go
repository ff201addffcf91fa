package delta_format

import (
	"bytes"
	"testing"
)

func TestBase128KnownEncodings(t *testing.T) {
	cases := []struct {
		value    uint64
		expected []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{127, []byte{0x7F}},
		{128, []byte{0x80, 0x01}},
		{300, []byte{0xAC, 0x02}},
		{0x10000, []byte{0x80, 0x80, 0x04}},
	}

	for _, c := range cases {
		encoded := AppendBase128(nil, c.value)
		if !bytes.Equal(encoded, c.expected) {
			t.Errorf(
				"encoding %d: expected % x, got % x",
				c.value,
				c.expected,
				encoded,
			)
		}

		decoded, rest, err := DecodeBase128(encoded)
		if err != nil {
			t.Fatalf("decoding %d: %v", c.value, err)
		}

		if decoded != c.value {
			t.Errorf("round trip of %d yielded %d", c.value, decoded)
		}

		if len(rest) != 0 {
			t.Errorf("decoding %d left %d bytes", c.value, len(rest))
		}
	}
}

func TestBase128HeaderSequence(t *testing.T) {
	// The stream header is two varints back to back; decoding threads the
	// rest slice through both calls.
	header := AppendBase128(nil, 10)
	header = AppendBase128(header, 14)
	header = append(header, 0xFE) // first op byte, not part of the header

	sourceSize, rest, err := DecodeBase128(header)
	if err != nil {
		t.Fatalf("decoding source size: %v", err)
	}

	targetSize, rest, err := DecodeBase128(rest)
	if err != nil {
		t.Fatalf("decoding target size: %v", err)
	}

	if sourceSize != 10 || targetSize != 14 {
		t.Errorf("expected sizes 10/14, got %d/%d", sourceSize, targetSize)
	}

	if len(rest) != 1 || rest[0] != 0xFE {
		t.Errorf("expected op byte to remain, got % x", rest)
	}
}

func TestBase128Truncated(t *testing.T) {
	for _, buf := range [][]byte{
		{},
		{0x80},
		{0xFF, 0xFF},
	} {
		if _, _, err := DecodeBase128(buf); !IsMalformed(err) {
			t.Errorf("decoding % x: expected malformed error, got %v", buf, err)
		}
	}
}

func TestBase128Overflow(t *testing.T) {
	var buf []byte
	for i := 0; i < 10; i++ {
		buf = append(buf, 0xFF)
	}
	buf = append(buf, 0x01)

	if _, _, err := DecodeBase128(buf); !IsMalformed(err) {
		t.Errorf("expected overflow to be malformed, got %v", err)
	}

	// The largest valid 64-bit value still decodes.
	encoded := AppendBase128(nil, ^uint64(0))
	decoded, _, err := DecodeBase128(encoded)
	if err != nil {
		t.Fatalf("decoding max uint64: %v", err)
	}

	if decoded != ^uint64(0) {
		t.Errorf("expected max uint64, got %d", decoded)
	}
}

func TestAppendCopyKnownEncodings(t *testing.T) {
	cases := []struct {
		offset   uint64
		length   uint64
		expected []byte
	}{
		// Offset zero contributes no offset bytes at all.
		{0, 10, []byte{0x90, 0x0A}},
		// Two offset bytes, one length byte.
		{0xABCD, 0x100, []byte{0xA3, 0xCD, 0xAB, 0x01}},
		// A hole in the offset: byte two absent, decodes as zero.
		{0xAB00CD, 1, []byte{0x95, 0xCD, 0xAB, 0x01}},
		// The maximum length is carried by the all-zero special case.
		{5, MaxCopyLength, []byte{0x81, 0x05}},
		{0, MaxCopyLength, []byte{0x80}},
	}

	for _, c := range cases {
		encoded := AppendCopy(nil, c.offset, c.length)
		if !bytes.Equal(encoded, c.expected) {
			t.Errorf(
				"copy(%d, %d): expected % x, got % x",
				c.offset,
				c.length,
				c.expected,
				encoded,
			)
		}

		offset, length, rest, err := ParseCopy(encoded)
		if err != nil {
			t.Fatalf("parsing copy(%d, %d): %v", c.offset, c.length, err)
		}

		if offset != c.offset || length != c.length {
			t.Errorf(
				"copy round trip: expected (%d, %d), got (%d, %d)",
				c.offset,
				c.length,
				offset,
				length,
			)
		}

		if len(rest) != 0 {
			t.Errorf("parsing copy left %d bytes", len(rest))
		}
	}
}

func TestParseCopyThirdLengthByte(t *testing.T) {
	// AppendCopy never writes the third length byte, but decoders accept it.
	offset, length, rest, err := ParseCopy([]byte{0xD0, 0x34, 0x01})
	if err != nil {
		t.Fatalf("ParseCopy: %v", err)
	}

	if offset != 0 || length != 0x10034 {
		t.Errorf("expected (0, 0x10034), got (%d, %#x)", offset, length)
	}

	if len(rest) != 0 {
		t.Errorf("expected no trailing bytes, got % x", rest)
	}
}

func TestParseCopyTruncated(t *testing.T) {
	for _, buf := range [][]byte{
		{0x83, 0x01},
		{0x90},
		{0xFF, 0x01, 0x02, 0x03},
	} {
		if _, _, _, err := ParseCopy(buf); !IsMalformed(err) {
			t.Errorf("parsing % x: expected malformed error, got %v", buf, err)
		}
	}
}

func TestAppendInsertChunking(t *testing.T) {
	literals := bytes.Repeat([]byte{0xAA}, 300)

	encoded := AppendInsert(nil, literals)

	expectedLen := 300 + 3 // three op bytes: 127 + 127 + 46
	if len(encoded) != expectedLen {
		t.Fatalf("expected %d bytes, got %d", expectedLen, len(encoded))
	}

	if encoded[0] != 127 || encoded[128] != 127 || encoded[256] != 46 {
		t.Errorf(
			"unexpected chunk headers: %d %d %d",
			encoded[0],
			encoded[128],
			encoded[256],
		)
	}

	if AppendInsert(nil, nil) != nil {
		t.Error("inserting no literals should emit nothing")
	}
}
