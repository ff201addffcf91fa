package delta_format

import (
	"code.linenisgreat.com/spackle/go/src/alfa/errors"
)

// AppendCopy appends one copy op reproducing length source bytes starting at
// offset. length must be in [1, MaxCopyLength] and offset must not exceed
// MaxCopyOffset; the builder enforces both before emitting.
//
// Only the two low length bytes are ever written: a length of exactly
// MaxCopyLength has both low bytes zero and is carried by the all-zero
// special case, matching the reference encoders.
func AppendCopy(dst []byte, offset, length uint64) []byte {
	var packed [7]byte
	var n int

	op := OpCopyFlag

	for i := 0; i < 4; i++ {
		if b := byte(offset >> (8 * i)); b != 0 {
			op |= 1 << i
			packed[n] = b
			n++
		}
	}

	for i := 0; i < 2; i++ {
		if b := byte(length >> (8 * i)); b != 0 {
			op |= 0x10 << i
			packed[n] = b
			n++
		}
	}

	dst = append(dst, op)
	return append(dst, packed[:n]...)
}

// AppendInsert appends literals as one or more insert ops of at most
// MaxInsertLength bytes each.
func AppendInsert(dst []byte, literals []byte) []byte {
	for len(literals) > MaxInsertLength {
		dst = append(dst, MaxInsertLength)
		dst = append(dst, literals[:MaxInsertLength]...)
		literals = literals[MaxInsertLength:]
	}

	if len(literals) > 0 {
		dst = append(dst, byte(len(literals)))
		dst = append(dst, literals...)
	}

	return dst
}

// ParseCopy decodes the copy op at the front of buf, whose first byte must
// have OpCopyFlag set. It accepts the full three-length-byte form even though
// AppendCopy never produces the third byte.
func ParseCopy(buf []byte) (offset, length uint64, rest []byte, err error) {
	op := buf[0]
	rest = buf[1:]

	take := func() (b byte, err error) {
		if len(rest) == 0 {
			err = errors.Wrapf(ErrMalformed, "truncated copy op")
			return 0, err
		}

		b = rest[0]
		rest = rest[1:]
		return b, nil
	}

	for i := 0; i < 4; i++ {
		if op&(1<<i) == 0 {
			continue
		}

		var b byte
		if b, err = take(); err != nil {
			return 0, 0, nil, err
		}

		offset |= uint64(b) << (8 * i)
	}

	for i := 0; i < 3; i++ {
		if op&(0x10<<i) == 0 {
			continue
		}

		var b byte
		if b, err = take(); err != nil {
			return 0, 0, nil, err
		}

		length |= uint64(b) << (8 * i)
	}

	if length == 0 {
		length = MaxCopyLength
	}

	return offset, length, rest, nil
}
