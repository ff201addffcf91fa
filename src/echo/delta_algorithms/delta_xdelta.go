package delta_algorithms

import (
	"io"

	"code.linenisgreat.com/spackle/go/src/_/interfaces"
	"code.linenisgreat.com/spackle/go/src/alfa/errors"
	"code.linenisgreat.com/spackle/go/src/alfa/pool"
	"code.linenisgreat.com/spackle/go/src/charlie/delta_index"
	"code.linenisgreat.com/spackle/go/src/delta/delta_codec"
)

func init() {
	RegisterDeltaAlgorithm(&Xdelta{})
}

// Xdelta implements DeltaAlgorithm using the native copy/insert delta
// codec. Streams it produces carry the base and target sizes in their
// header and can be validated without the algorithm registry.
type Xdelta struct{}

var _ DeltaAlgorithm = &Xdelta{}

func (x *Xdelta) Id() byte {
	return DeltaAlgorithmByteXdelta
}

func (x *Xdelta) Compute(
	base interfaces.BlobReader,
	baseSize int64,
	target io.Reader,
	delta io.Writer,
) error {
	// The match index needs the whole base in memory. When BlobReader
	// gains full ReadAtSeeker support through compression/encryption,
	// indexing can work over a window instead.
	baseBuffer, repoolBase := pool.GetByteBuffer()
	defer repoolBase()

	baseBuffer.Grow(int(baseSize))

	if _, err := io.Copy(baseBuffer, base); err != nil {
		return errors.Wrap(err)
	}

	targetBuffer, repoolTarget := pool.GetByteBuffer()
	defer repoolTarget()

	if _, err := io.Copy(targetBuffer, target); err != nil {
		return errors.Wrap(err)
	}

	index, err := delta_index.Build(
		delta_index.Source{Data: baseBuffer.Bytes()},
		nil,
	)
	if err != nil {
		return errors.Wrap(err)
	}

	stream, err := delta_codec.BuildDelta(index, targetBuffer.Bytes(), 0)
	if err != nil {
		return errors.Wrap(err)
	}

	bufferedDelta, repoolWriter := pool.GetBufferedWriter(delta)
	defer repoolWriter()

	if _, err := bufferedDelta.Write(stream); err != nil {
		return errors.Wrap(err)
	}

	if err := bufferedDelta.Flush(); err != nil {
		return errors.Wrap(err)
	}

	return nil
}

func (x *Xdelta) Apply(
	base interfaces.BlobReader,
	baseSize int64,
	delta io.Reader,
	target io.Writer,
) error {
	baseBuffer, repoolBase := pool.GetByteBuffer()
	defer repoolBase()

	baseBuffer.Grow(int(baseSize))

	if _, err := io.Copy(baseBuffer, base); err != nil {
		return errors.Wrap(err)
	}

	deltaBuffer, repoolDelta := pool.GetByteBuffer()
	defer repoolDelta()

	if _, err := io.Copy(deltaBuffer, delta); err != nil {
		return errors.Wrap(err)
	}

	reconstructed, err := delta_codec.Apply(
		baseBuffer.Bytes(),
		deltaBuffer.Bytes(),
	)
	if err != nil {
		return errors.Wrap(err)
	}

	if _, err := target.Write(reconstructed); err != nil {
		return errors.Wrap(err)
	}

	return nil
}
