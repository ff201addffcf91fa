package delta_algorithms

import (
	"fmt"
	"io"

	"code.linenisgreat.com/spackle/go/src/_/interfaces"
	"code.linenisgreat.com/spackle/go/src/alfa/errors"
)

// DeltaAlgorithm computes and applies binary deltas between blobs.
type DeltaAlgorithm interface {
	// Id returns the byte identifier written to data file delta entries.
	Id() byte

	// Compute produces a delta that transforms base into target.
	// The delta is written to the delta writer. base is a BlobReader
	// because current compression/encryption does not support seeking;
	// when BlobReader gains full ReadAtSeeker support, delta algorithms
	// can use random access for better performance.
	Compute(
		base interfaces.BlobReader,
		baseSize int64,
		target io.Reader,
		delta io.Writer,
	) error

	// Apply reconstructs the original blob from a base and a delta.
	Apply(
		base interfaces.BlobReader,
		baseSize int64,
		delta io.Reader,
		target io.Writer,
	) error
}

const (
	DeltaAlgorithmByteXdelta byte = 0
	DeltaAlgorithmByteBsdiff byte = 1
)

var deltaAlgorithms = map[byte]DeltaAlgorithm{}

var deltaAlgorithmNames = map[string]byte{
	"xdelta": DeltaAlgorithmByteXdelta,
	"bsdiff": DeltaAlgorithmByteBsdiff,
}

// RegisterDeltaAlgorithm adds a DeltaAlgorithm to the registry.
func RegisterDeltaAlgorithm(alg DeltaAlgorithm) {
	deltaAlgorithms[alg.Id()] = alg
}

func DeltaAlgorithmForByte(b byte) (DeltaAlgorithm, error) {
	alg, ok := deltaAlgorithms[b]
	if !ok {
		return nil, errors.MakeErrNotFoundString(
			fmt.Sprintf("delta algorithm byte %d", b),
		)
	}

	return alg, nil
}

func DeltaAlgorithmByteForName(name string) (byte, error) {
	b, ok := deltaAlgorithmNames[name]
	if !ok {
		return 0, errors.MakeErrNotFoundString(
			fmt.Sprintf("delta algorithm %s", name),
		)
	}

	return b, nil
}
