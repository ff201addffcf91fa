//go:build test && debug

package delta_algorithms

import (
	"bytes"
	"io"
	"testing"

	"code.linenisgreat.com/spackle/go/src/alfa/errors"
)

type testBlobReader struct {
	*bytes.Reader
}

func makeTestBlobReader(data []byte) *testBlobReader {
	return &testBlobReader{Reader: bytes.NewReader(data)}
}

func (r *testBlobReader) Close() error { return nil }

func (r *testBlobReader) WriteTo(w io.Writer) (int64, error) {
	return io.Copy(w, r.Reader)
}

func TestDeltaAlgorithmRegistryUnknown(t *testing.T) {
	_, err := DeltaAlgorithmForByte(0xFF)
	if !errors.IsErrNotFound(err) {
		t.Fatalf("expected not-found error for unknown algorithm byte, got %v", err)
	}
}

func TestDeltaAlgorithmNameLookup(t *testing.T) {
	cases := []struct {
		name     string
		expected byte
	}{
		{"xdelta", DeltaAlgorithmByteXdelta},
		{"bsdiff", DeltaAlgorithmByteBsdiff},
	}

	for _, c := range cases {
		b, err := DeltaAlgorithmByteForName(c.name)
		if err != nil {
			t.Fatalf("expected %s byte, got error: %v", c.name, err)
		}

		if b != c.expected {
			t.Errorf("%s: expected byte %d, got %d", c.name, c.expected, b)
		}
	}
}

func TestDeltaAlgorithmNameUnknown(t *testing.T) {
	_, err := DeltaAlgorithmByteForName("unknown")
	if !errors.IsErrNotFound(err) {
		t.Fatalf("expected not-found error for unknown algorithm name, got %v", err)
	}
}

func TestDeltaAlgorithmRegistered(t *testing.T) {
	for _, id := range []byte{
		DeltaAlgorithmByteXdelta,
		DeltaAlgorithmByteBsdiff,
	} {
		alg, err := DeltaAlgorithmForByte(id)
		if err != nil {
			t.Fatalf("algorithm %d should be registered: %v", id, err)
		}

		if alg.Id() != id {
			t.Errorf("expected id %d, got %d", id, alg.Id())
		}
	}
}
