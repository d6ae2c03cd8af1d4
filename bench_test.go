package wpressarc

import (
	"bytes"
	"io"
	"testing"
)

func BenchmarkWriteHeader(b *testing.B) {
	h := EntryHeader{
		Path:    "wp-content/uploads/2023/11",
		Name:    "image.jpg",
		Size:    1 << 20,
		ModTime: 1700000000,
	}
	b.SetBytes(HeaderSize)
	for i := 0; i < b.N; i++ {
		if err := h.WriteHeader(io.Discard); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkReadHeader(b *testing.B) {
	var buf bytes.Buffer
	h := EntryHeader{
		Path:    "wp-content/uploads/2023/11",
		Name:    "image.jpg",
		Size:    1 << 20,
		ModTime: 1700000000,
	}
	if err := h.WriteHeader(&buf); err != nil {
		b.Fatal(err)
	}
	rec := buf.Bytes()
	r := bytes.NewReader(rec)

	b.SetBytes(HeaderSize)
	for i := 0; i < b.N; i++ {
		r.Reset(rec)
		if _, err := ReadHeader(r); err != nil {
			b.Fatal(err)
		}
	}
}
