// Package delta_index builds the queryable content index a delta builder
// matches target bytes against. A source buffer is cut into consecutive
// BlockSize-stride blocks; each block's hash maps to the aggregate offsets at
// which a block with that hash occurs. Hash equality never implies byte
// equality: consumers verify bytes before trusting a candidate.
//
// An Index is immutable once built and safe for any number of concurrent
// readers. The caller must not mutate a source buffer while an index built
// from it is in use.
package delta_index

import (
	"github.com/cespare/xxhash/v2"

	"code.linenisgreat.com/spackle/go/src/alfa/errors"
)

// BlockSize is the index stride and the minimum window the builder verifies
// before extending a match. It balances index size against match granularity:
// one table entry per 8 source bytes, while still letting short text blobs
// (down to 8 bytes plus change) find their common prefixes.
const BlockSize = 8

// maxChainLength caps the candidate offsets kept per block hash. A
// degenerate source (one byte repeated for kilobytes) would otherwise hash
// every block into a single chain and make each builder lookup walk all of
// it. Earliest offsets are kept: the builder breaks ties toward them
// anyway, and for identical block content later occurrences add no new
// match coverage.
const maxChainLength = 64

// Source is a read-only view over one contiguous buffer contributing to an
// aggregate source. AggOffset records where Data logically begins within the
// virtual concatenation of all chained sources.
type Source struct {
	Data      []byte
	AggOffset uint64
}

// Index maps block hashes to the aggregate-source offsets where blocks with
// that hash occur. Within a chain, offsets appear in registration order:
// entries inherited from a prior index precede entries of the newly indexed
// source, which makes the builder's earliest-offset tie-break deterministic.
type Index struct {
	table   map[uint64][]uint64
	sources []Source
	srcSize uint64
}

// Build indexes source, logically appending it to the aggregate source of
// prior when prior is non-nil. Prior entries are copied, not referenced, so
// the new index does not keep prior alive and prior offsets keep their
// coordinate space. A zero-length source is legal and yields an index that
// simply produces no matches.
func Build(source Source, prior *Index) (index *Index, err error) {
	blockCount := len(source.Data) / BlockSize
	if len(source.Data)%BlockSize != 0 {
		blockCount++
	}

	index = &Index{
		srcSize: source.AggOffset + uint64(len(source.Data)),
	}

	if prior == nil {
		index.table = make(map[uint64][]uint64, blockCount)
		index.sources = []Source{source}
	} else {
		if source.AggOffset < prior.srcSize {
			err = errors.Errorf(
				"source at aggregate offset %d overlaps prior aggregate size %d",
				source.AggOffset,
				prior.srcSize,
			)
			return nil, err
		}

		index.table = make(map[uint64][]uint64, len(prior.table)+blockCount)
		for hash, chain := range prior.table {
			copied := make([]uint64, len(chain), len(chain)+1)
			copy(copied, chain)
			index.table[hash] = copied
		}

		index.sources = make([]Source, 0, len(prior.sources)+1)
		index.sources = append(index.sources, prior.sources...)
		index.sources = append(index.sources, source)

		if prior.srcSize > index.srcSize {
			index.srcSize = prior.srcSize
		}
	}

	for i := 0; i < len(source.Data); i += BlockSize {
		end := i + BlockSize
		if end > len(source.Data) {
			end = len(source.Data)
		}

		hash := BlockHash(source.Data[i:end])

		chain := index.table[hash]
		if len(chain) >= maxChainLength {
			continue
		}

		index.table[hash] = append(chain, source.AggOffset+uint64(i))
	}

	return index, nil
}

// BlockHash is the content hash shared by index construction and the
// builder's lookups.
func BlockHash(block []byte) uint64 {
	return xxhash.Sum64(block)
}

// Candidates returns the aggregate offsets of every indexed block with the
// given hash, earliest-registered first. The returned slice is shared with
// the index and must not be mutated.
func (index *Index) Candidates(hash uint64) []uint64 {
	return index.table[hash]
}

// SourceSize returns the length of the aggregate source, encoded into every
// delta stream header built against this index.
func (index *Index) SourceSize() uint64 {
	return index.srcSize
}

// Resolve maps an aggregate offset to the source buffer containing it,
// returning the buffer and the offset's position within it. Matches never
// span source buffers, so extension loops are bounded by the returned
// buffer's ends.
func (index *Index) Resolve(aggOffset uint64) (data []byte, pos int, ok bool) {
	for i := range index.sources {
		source := &index.sources[i]

		if aggOffset < source.AggOffset {
			continue
		}

		rel := aggOffset - source.AggOffset
		if rel < uint64(len(source.Data)) {
			return source.Data, int(rel), true
		}
	}

	return nil, 0, false
}

// Per-entry cost estimates for MemoryFootprint. Offsets are 8 bytes; a chain
// carries a slice header; the map costs roughly a bucket share per entry.
const (
	footprintPerOffset = 8
	footprintPerChain  = 24 + 16
	footprintFixed     = 96
)

// MemoryFootprint estimates the resident size of the index in bytes,
// excluding the borrowed source buffers. Packers use this to bound how many
// base indexes they keep alive during a repack.
func (index *Index) MemoryFootprint() (total uint64) {
	total = footprintFixed
	total += uint64(len(index.sources)) * 32

	for _, chain := range index.table {
		total += footprintPerChain
		total += footprintPerOffset * uint64(len(chain))
	}

	return total
}
