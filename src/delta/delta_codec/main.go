// Package delta_codec turns a target buffer into a compact delta stream
// against an indexed source, and reconstructs targets from such streams.
//
// BuildDelta walks the target once: at each position it hashes a
// BlockSize-wide window, verifies the index's candidate offsets byte for
// byte, extends the best candidate backward into the pending literal run and
// forward as far as source and target agree, and emits copy ops for matches
// and insert ops for everything else. The result is a good greedy
// approximation, not a globally minimal delta.
package delta_codec

import (
	"code.linenisgreat.com/spackle/go/src/alfa/errors"
)

// MinMatch is the shortest extended match worth a copy op. Anything shorter
// costs at least as much to encode as the literal bytes themselves, matching
// the reference implementation's minimum delta size of four bytes.
const MinMatch = 4

type sizeExceededDisamb struct{}

// ErrSizeExceeded reports that a delta stream would have grown past the
// caller's budget. It is an expected outcome: packers probe candidate bases
// with a budget and fall back to storing the blob in full.
var ErrSizeExceeded, IsSizeExceeded = errors.MakeTypedSentinel[sizeExceededDisamb](
	"delta size exceeded",
)
