package pool

import (
	"bytes"
	"testing"
)

func TestGetByteBufferRepool(t *testing.T) {
	buffer, repool := GetByteBuffer()

	if buffer.Len() != 0 {
		t.Fatalf("expected empty buffer, got %d bytes", buffer.Len())
	}

	buffer.WriteString("scratch data")
	repool()

	// A buffer obtained after repooling must always come back reset,
	// whether or not the pool hands the same allocation out again.
	buffer, repool = GetByteBuffer()
	defer repool()

	if buffer.Len() != 0 {
		t.Errorf("expected reset buffer, got %d bytes", buffer.Len())
	}
}

func TestGetBufferedWriter(t *testing.T) {
	var sink bytes.Buffer

	writer, repool := GetBufferedWriter(&sink)
	defer repool()

	if _, err := writer.WriteString("hello"); err != nil {
		t.Fatalf("WriteString: %v", err)
	}

	if err := writer.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	if sink.String() != "hello" {
		t.Errorf("expected %q, got %q", "hello", sink.String())
	}
}

func TestGetBufferedReader(t *testing.T) {
	reader, repool := GetBufferedReader(bytes.NewReader([]byte("payload")))
	defer repool()

	buffer := make([]byte, 7)
	if _, err := reader.Read(buffer); err != nil {
		t.Fatalf("Read: %v", err)
	}

	if string(buffer) != "payload" {
		t.Errorf("expected %q, got %q", "payload", string(buffer))
	}
}
