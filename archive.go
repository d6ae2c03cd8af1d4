package wpressarc

import (
	"errors"
	"fmt"
	"io"
)

// Archive drives the container protocol over a single byte stream. It owns
// no entries and keeps no state of its own; the only cursor is the one in
// the underlying stream.
//
// An archive is used in two independent phases: a writing phase of zero or
// more Write calls closed by exactly one Finalize, and a reading phase of
// NextEntry calls until one yields no entry. A single instance is not
// required to support interleaving the two phases over the same pass.
type Archive struct {
	r io.Reader
	w io.Writer
}

// New returns an archive over rw, capable of both the writing and the
// reading phase.
func New(rw io.ReadWriter) *Archive {
	return &Archive{r: rw, w: rw}
}

// NewReader returns an archive restricted to the reading phase.
func NewReader(r io.Reader) *Archive {
	return &Archive{r: r}
}

// NewWriter returns an archive restricted to the writing phase.
func NewWriter(w io.Writer) *Archive {
	return &Archive{w: w}
}

// Write encodes h at the current stream position and copies all bytes from
// content immediately after it. The caller is responsible for content
// actually carrying h.Size bytes; the container adds no framing of its own
// and does not verify the copied length at write time.
func (a *Archive) Write(h *EntryHeader, content io.Reader) error {
	if a.w == nil {
		return errors.New("wpressarc: archive is not writable")
	}
	if err := h.WriteHeader(a.w); err != nil {
		return err
	}
	if _, err := io.Copy(a.w, content); err != nil {
		return fmt.Errorf("copy content of %q: %w", h.Name, err)
	}
	return nil
}

// NextEntry decodes one header at the current stream position.
//
// It returns (nil, nil) when the record is the all-zero sentinel or when
// the stream ends cleanly at a record boundary; a record torn mid-way
// yields ErrTruncatedHeader. NextEntry never consumes content bytes: after
// a successful call the cursor sits on the first content byte, and the
// caller must drain exactly Size bytes (see ContentReader) before calling
// NextEntry again, or header decoding will desynchronize.
func (a *Archive) NextEntry() (*EntryHeader, error) {
	if a.r == nil {
		return nil, errors.New("wpressarc: archive is not readable")
	}
	h, err := ReadHeader(a.r)
	if err != nil && errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, nil
	}
	return h, err
}

// ContentReader returns a reader over the content bytes of h, which must
// be the entry most recently returned by NextEntry. Draining the returned
// reader leaves the cursor on the next header record.
func (a *Archive) ContentReader(h *EntryHeader) io.Reader {
	return io.LimitReader(a.r, h.Size)
}

// Finalize writes the all-zero sentinel record that marks the logical end
// of the archive. It must be called exactly once, after the last entry's
// content has been written.
func (a *Archive) Finalize() error {
	if a.w == nil {
		return errors.New("wpressarc: archive is not writable")
	}
	_, err := a.w.Write(make([]byte, HeaderSize))
	return err
}
