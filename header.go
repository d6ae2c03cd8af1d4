package wpressarc

import (
	"errors"
	"fmt"
	"io"

	"github.com/kugland/wpressarc/internal/field"
)

// Header record layout. Field widths and the NUL padding byte are part of
// the on-disk compatibility contract and must not change.
const (
	nameWidth  = 255
	sizeWidth  = 14
	mtimeWidth = 12
	pathWidth  = 4096

	sizeOffset  = nameWidth
	mtimeOffset = sizeOffset + sizeWidth
	pathOffset  = mtimeOffset + mtimeWidth

	// HeaderSize is the fixed size in bytes of one encoded header record.
	HeaderSize = nameWidth + sizeWidth + mtimeWidth + pathWidth
)

// EntryHeader describes one archived file. Directories are never archived
// individually; they are implied by the Path of the files beneath them.
type EntryHeader struct {
	// Path is the directory portion of the entry's location, without a
	// trailing separator. "." places the entry at the archive root.
	Path string

	// Name is the base file name. A decoded header always has a non-empty
	// Name; the all-zero sentinel record is not a valid entry.
	Name string

	// Size is the byte length of the content that follows the header.
	Size int64

	// ModTime is the modification time in seconds since the Unix epoch.
	ModTime int64
}

// WriteHeader encodes h into the fixed 4377-byte record layout and writes
// it to w in a single contiguous block.
//
// Returns ErrFieldOverflow when Name or Path exceed their field widths or
// when Size or ModTime are negative or too large for their decimal fields;
// no field is ever silently truncated.
func (h *EntryHeader) WriteHeader(w io.Writer) error {
	var rec [HeaderSize]byte
	if err := field.PutText(rec[:nameWidth], h.Name); err != nil {
		return fmt.Errorf("encode name %q: %w", h.Name, err)
	}
	if err := field.PutDecimal(rec[sizeOffset:mtimeOffset], h.Size); err != nil {
		return fmt.Errorf("encode size %d: %w", h.Size, err)
	}
	if err := field.PutDecimal(rec[mtimeOffset:pathOffset], h.ModTime); err != nil {
		return fmt.Errorf("encode mtime %d: %w", h.ModTime, err)
	}
	if err := field.PutText(rec[pathOffset:], h.Path); err != nil {
		return fmt.Errorf("encode path %q: %w", h.Path, err)
	}
	_, err := w.Write(rec[:])
	return err
}

// ReadHeader reads and decodes one header record from r.
//
// A decoded record with an empty name field is the end-of-archive sentinel
// and yields (nil, nil); this is an expected outcome, not an error. A
// stream that ends before a full record could be read yields
// ErrTruncatedHeader, and a numeric field containing non-digit bytes
// yields ErrMalformedNumber. An empty numeric field decodes as 0.
func ReadHeader(r io.Reader) (*EntryHeader, error) {
	var rec [HeaderSize]byte
	if _, err := io.ReadFull(r, rec[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: %w", ErrTruncatedHeader, err)
		}
		return nil, err
	}

	name := field.Text(rec[:nameWidth])
	if name == "" {
		return nil, nil
	}

	size, err := field.Decimal(rec[sizeOffset:mtimeOffset])
	if err != nil {
		return nil, fmt.Errorf("decode size of %q: %w", name, err)
	}
	mtime, err := field.Decimal(rec[mtimeOffset:pathOffset])
	if err != nil {
		return nil, fmt.Errorf("decode mtime of %q: %w", name, err)
	}

	return &EntryHeader{
		Path:    field.Text(rec[pathOffset:]),
		Name:    name,
		Size:    size,
		ModTime: mtime,
	}, nil
}
