package delta_format

import (
	"code.linenisgreat.com/spackle/go/src/alfa/errors"
)

// AppendBase128 appends value to dst as a base-128 varint: seven value bits
// per byte, least-significant group first, high bit set on every byte except
// the last.
func AppendBase128(dst []byte, value uint64) []byte {
	for value >= 0x80 {
		dst = append(dst, byte(value)|0x80)
		value >>= 7
	}

	return append(dst, byte(value))
}

// DecodeBase128 reads one varint from the front of buf and returns the value
// together with the remaining bytes. The header holds two varints, so the
// caller invokes this twice, threading the returned rest through.
//
// Decoding fails on a truncated varint (continuation bit set on the last
// available byte) and on values that do not fit in 64 bits.
func DecodeBase128(buf []byte) (value uint64, rest []byte, err error) {
	var shift uint

	for i, b := range buf {
		if shift > 63 || (shift == 63 && b&0x7F > 1) {
			err = errors.Wrapf(ErrMalformed, "varint overflows 64 bits")
			return 0, nil, err
		}

		value |= uint64(b&0x7F) << shift
		shift += 7

		if b&0x80 == 0 {
			return value, buf[i+1:], nil
		}
	}

	err = errors.Wrapf(ErrMalformed, "truncated varint")
	return 0, nil, err
}
