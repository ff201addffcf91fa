package interfaces

import "io"

// BlobId identifies a blob to the packing layer. The codec never inspects
// ids; it only carries them between the packer and its base-selection
// strategy.
type BlobId interface {
	Stringer
}

// BlobReader provides streaming access to a stored blob. Implementations may
// decompress or decrypt on the fly, so readers are not seekable.
type BlobReader interface {
	io.ReadCloser
}
