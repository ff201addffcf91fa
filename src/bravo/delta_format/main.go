// Package delta_format implements the wire primitives of the delta stream: a
// base-128 varint codec for the two header sizes, and the packed copy/insert
// operation encoding.
//
// The stream layout is:
//
//	stream := header op*
//	header := varint(source_size) varint(target_size)
//	op     := copy_op | insert_op
//
// A copy op's first byte has the high bit set; its low seven bits are a
// presence bitmask selecting which of four little-endian offset bytes (bits
// 0-3) and three little-endian length bytes (bits 4-6) follow. Absent bytes
// decode as zero, and an all-zero length field decodes as 0x10000. An insert
// op's first byte is the literal count (1..127); the literals follow inline.
// The first byte 0x00 is reserved and invalid.
package delta_format

import (
	"code.linenisgreat.com/spackle/go/src/alfa/errors"
)

const (
	// OpCopyFlag distinguishes copy ops from insert ops in the first byte.
	OpCopyFlag byte = 0x80

	// MaxInsertLength is the most literal bytes one insert op can carry.
	MaxInsertLength = 0x7F

	// MaxCopyLength is the most source bytes one copy op can reproduce.
	// Longer spans are split across multiple ops by the builder.
	MaxCopyLength = 0x10000

	// MaxCopyOffset bounds encodable source offsets: four little-endian
	// offset bytes.
	MaxCopyOffset = 1<<32 - 1
)

type malformedDisamb struct{}

// ErrMalformed is wrapped into every decode-side failure: truncated streams,
// overlong varints, reserved opcodes, and out-of-range copy spans.
var ErrMalformed, IsMalformed = errors.MakeTypedSentinel[malformedDisamb](
	"malformed delta stream",
)

// WrapMalformed classifies a foreign decode failure so callers can branch
// with IsMalformed regardless of which delta algorithm produced it.
func WrapMalformed(err error) error {
	return errors.WrapWithType[malformedDisamb](err)
}
