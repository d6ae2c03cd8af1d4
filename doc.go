// Package wpressarc reads and writes the wpress sequential archive
// container produced by WordPress site migration tools.
//
// A container is a flat byte stream of (header, content) pairs followed by
// a terminating all-zero sentinel header. Each header is a fixed 4377-byte
// record holding the entry's base name, content size, modification time and
// directory path as NUL-padded text; content bytes follow the header with
// no framing of their own.
//
// The format has no magic number, no index and no checksums: it is read
// and written strictly front to back. NextEntry deliberately does not
// consume an entry's content, so a reader must drain exactly Size bytes
// (see Archive.ContentReader) before decoding the next header.
package wpressarc
