package delta_codec

import (
	"code.linenisgreat.com/spackle/go/src/alfa/errors"
	"code.linenisgreat.com/spackle/go/src/bravo/delta_format"
)

// maxPreallocate bounds how much Apply trusts the declared target size when
// sizing its output buffer. Streams declaring more grow by append instead,
// so a tiny forged header cannot force a huge allocation.
const maxPreallocate = 64 << 20

// Apply reconstructs a target buffer from source and the delta stream that
// BuildDelta (or any producer of the same format) encoded against it. Every
// failure wraps delta_format.ErrMalformed: size mismatches, truncated ops,
// copies outside the source, and streams whose ops do not add up to the
// declared target size.
func Apply(source, delta []byte) (target []byte, err error) {
	sourceSize, rest, err := delta_format.DecodeBase128(delta)
	if err != nil {
		err = errors.Wrapf(err, "decoding source size")
		return nil, err
	}

	if sourceSize != uint64(len(source)) {
		err = errors.Wrapf(
			delta_format.ErrMalformed,
			"header source size %d does not match source length %d",
			sourceSize,
			len(source),
		)
		return nil, err
	}

	targetSize, rest, err := delta_format.DecodeBase128(rest)
	if err != nil {
		err = errors.Wrapf(err, "decoding target size")
		return nil, err
	}

	if targetSize <= maxPreallocate {
		target = make([]byte, 0, targetSize)
	}

	for len(rest) > 0 {
		op := rest[0]

		switch {
		case op&delta_format.OpCopyFlag != 0:
			var offset, length uint64

			if offset, length, rest, err = delta_format.ParseCopy(rest); err != nil {
				err = errors.Wrap(err)
				return nil, err
			}

			if offset+length > uint64(len(source)) {
				err = errors.Wrapf(
					delta_format.ErrMalformed,
					"copy of %d bytes at offset %d exceeds source size %d",
					length,
					offset,
					len(source),
				)
				return nil, err
			}

			if uint64(len(target))+length > targetSize {
				err = errors.Wrapf(
					delta_format.ErrMalformed,
					"copy overruns declared target size %d",
					targetSize,
				)
				return nil, err
			}

			target = append(target, source[offset:offset+length]...)

		case op != 0:
			count := uint64(op)

			if uint64(len(rest)-1) < count {
				err = errors.Wrapf(
					delta_format.ErrMalformed,
					"truncated insert op: %d literals declared, %d available",
					count,
					len(rest)-1,
				)
				return nil, err
			}

			if uint64(len(target))+count > targetSize {
				err = errors.Wrapf(
					delta_format.ErrMalformed,
					"insert overruns declared target size %d",
					targetSize,
				)
				return nil, err
			}

			target = append(target, rest[1:1+count]...)
			rest = rest[1+count:]

		default:
			err = errors.Wrapf(delta_format.ErrMalformed, "reserved op byte 0x00")
			return nil, err
		}
	}

	if uint64(len(target)) != targetSize {
		err = errors.Wrapf(
			delta_format.ErrMalformed,
			"ops produced %d bytes, header declared %d",
			len(target),
			targetSize,
		)
		return nil, err
	}

	return target, nil
}
