package delta_codec

import (
	"bytes"

	"code.linenisgreat.com/spackle/go/src/alfa/errors"
	"code.linenisgreat.com/spackle/go/src/bravo/delta_format"
	"code.linenisgreat.com/spackle/go/src/charlie/delta_index"
)

// BuildDelta encodes target as a delta stream against the aggregate source
// behind index. maxSize, when positive, is a hard cap on the encoded stream
// length: the build aborts with ErrSizeExceeded as soon as the stream grows
// past it, returning no partial buffer. A maxSize of zero means unbounded.
//
// The index is only read; many BuildDelta calls may share one index
// concurrently. Output is deterministic for identical inputs: candidate
// chains are walked in registration order and only a strictly longer match
// displaces the current best.
func BuildDelta(
	index *delta_index.Index,
	target []byte,
	maxSize int,
) (stream []byte, err error) {
	stream = delta_format.AppendBase128(nil, index.SourceSize())
	stream = delta_format.AppendBase128(stream, uint64(len(target)))

	if maxSize > 0 && len(stream) > maxSize {
		err = errors.Wrap(ErrSizeExceeded)
		return nil, err
	}

	cursor := 0
	runStart := 0

	for cursor+delta_index.BlockSize <= len(target) {
		window := target[cursor : cursor+delta_index.BlockSize]

		matchStart, matchOffset, matchLength := findMatch(
			index,
			target,
			cursor,
			runStart,
			window,
		)

		if matchLength < MinMatch {
			cursor++
			continue
		}

		// Flush the pending literal run up to the (backward-extended)
		// match start, then emit the copy, split at the per-op limit.
		stream = delta_format.AppendInsert(stream, target[runStart:matchStart])

		if maxSize > 0 && len(stream) > maxSize {
			err = errors.Wrap(ErrSizeExceeded)
			return nil, err
		}

		remaining := uint64(matchLength)
		offset := matchOffset
		emitted := 0

		// A long match may carry its later split ops past the highest
		// encodable offset; emission stops there and the rest of the
		// span is rescanned.
		for remaining > 0 && offset <= delta_format.MaxCopyOffset {
			length := remaining
			if length > delta_format.MaxCopyLength {
				length = delta_format.MaxCopyLength
			}

			stream = delta_format.AppendCopy(stream, offset, length)

			if maxSize > 0 && len(stream) > maxSize {
				err = errors.Wrap(ErrSizeExceeded)
				return nil, err
			}

			emitted += int(length)
			offset += length
			remaining -= length
		}

		cursor = matchStart + emitted
		runStart = cursor
	}

	stream = delta_format.AppendInsert(stream, target[runStart:])

	if maxSize > 0 && len(stream) > maxSize {
		err = errors.Wrap(ErrSizeExceeded)
		return nil, err
	}

	return stream, nil
}

// findMatch verifies and extends every candidate for the window starting at
// cursor, returning the target position at which the best match begins (it
// may precede cursor after backward extension into the pending literal run),
// the aggregate source offset of the match, and its total length. A zero
// length means no usable candidate.
func findMatch(
	index *delta_index.Index,
	target []byte,
	cursor int,
	runStart int,
	window []byte,
) (matchStart int, matchOffset uint64, matchLength int) {
	for _, candidate := range index.Candidates(delta_index.BlockHash(window)) {
		if candidate > delta_format.MaxCopyOffset {
			continue
		}

		data, pos, ok := index.Resolve(candidate)
		if !ok || len(data)-pos < len(window) {
			continue
		}

		// Hashes collide; only byte equality makes a candidate real.
		if !bytes.Equal(data[pos:pos+len(window)], window) {
			continue
		}

		forward := len(window)
		for pos+forward < len(data) &&
			cursor+forward < len(target) &&
			data[pos+forward] == target[cursor+forward] {
			forward++
		}

		backward := 0
		for pos-backward > 0 &&
			cursor-backward > runStart &&
			data[pos-backward-1] == target[cursor-backward-1] {
			backward++
		}

		if length := backward + forward; length > matchLength {
			matchLength = length
			matchStart = cursor - backward
			matchOffset = candidate - uint64(backward)
		}
	}

	return matchStart, matchOffset, matchLength
}
