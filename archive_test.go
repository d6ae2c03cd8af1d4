package wpressarc

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArchiveRoundTrip(t *testing.T) {
	t.Parallel()

	var stream bytes.Buffer
	arc := New(&stream)

	entry := EntryHeader{Path: "path", Name: "name", Size: 7, ModTime: 456}
	require.NoError(t, arc.Write(&entry, strings.NewReader("content")))
	require.NoError(t, arc.Finalize())

	assert.Equal(t, 2*HeaderSize+7, stream.Len(), "container length")

	got, err := arc.NextEntry()
	require.NoError(t, err)
	require.NotNil(t, got, "expected first entry")
	assert.Equal(t, entry, *got)

	content, err := io.ReadAll(arc.ContentReader(got))
	require.NoError(t, err)
	assert.Equal(t, []byte("content"), content)

	got, err = arc.NextEntry()
	require.NoError(t, err)
	assert.Nil(t, got, "expected no entry after sentinel")
}

func TestArchiveMultipleEntries(t *testing.T) {
	t.Parallel()

	entries := []struct {
		header  EntryHeader
		content string
	}{
		{EntryHeader{Path: ".", Name: "index.php", Size: 5, ModTime: 100}, "<?php"},
		{EntryHeader{Path: "wp-content", Name: "empty.txt", Size: 0, ModTime: 200}, ""},
		{EntryHeader{Path: "wp-content/uploads", Name: "a.bin", Size: 3, ModTime: 300}, "abc"},
	}

	var stream bytes.Buffer
	arc := New(&stream)
	for _, e := range entries {
		require.NoError(t, arc.Write(&e.header, strings.NewReader(e.content)))
	}
	require.NoError(t, arc.Finalize())

	for _, e := range entries {
		got, err := arc.NextEntry()
		require.NoError(t, err)
		require.NotNil(t, got, "expected entry %q", e.header.Name)
		assert.Equal(t, e.header, *got)

		content, err := io.ReadAll(arc.ContentReader(got))
		require.NoError(t, err)
		assert.Equal(t, e.content, string(content))
	}

	got, err := arc.NextEntry()
	require.NoError(t, err)
	assert.Nil(t, got, "expected no entry at end of archive")
}

func TestArchiveEmpty(t *testing.T) {
	t.Parallel()

	var stream bytes.Buffer
	arc := New(&stream)
	require.NoError(t, arc.Finalize())

	got, err := arc.NextEntry()
	require.NoError(t, err)
	assert.Nil(t, got, "sentinel-only archive has no entries")
}

func TestArchiveEndsWithoutSentinel(t *testing.T) {
	t.Parallel()

	// A stream that simply stops at a record boundary reads as ended,
	// not as corrupt.
	var stream bytes.Buffer
	arc := New(&stream)
	entry := EntryHeader{Path: "path", Name: "name", Size: 4, ModTime: 1}
	require.NoError(t, arc.Write(&entry, strings.NewReader("data")))

	got, err := arc.NextEntry()
	require.NoError(t, err)
	require.NotNil(t, got)
	_, err = io.Copy(io.Discard, arc.ContentReader(got))
	require.NoError(t, err)

	got, err = arc.NextEntry()
	require.NoError(t, err)
	assert.Nil(t, got, "clean EOF at a record boundary is end of archive")
}

func TestArchiveTornHeader(t *testing.T) {
	t.Parallel()

	// A stream that stops mid-record is corrupt, not ended.
	var stream bytes.Buffer
	require.NoError(t, (&EntryHeader{Path: "p", Name: "n", Size: 0}).WriteHeader(&stream))
	stream.Truncate(HeaderSize / 2)

	arc := New(&stream)
	_, err := arc.NextEntry()
	assert.ErrorIs(t, err, ErrTruncatedHeader)
}

func TestArchiveContentNotConsumed(t *testing.T) {
	t.Parallel()

	// NextEntry leaves the cursor on the first content byte; the content
	// is read out-of-band.
	var stream bytes.Buffer
	arc := New(&stream)
	entry := EntryHeader{Path: ".", Name: "f", Size: 11, ModTime: 1}
	require.NoError(t, arc.Write(&entry, strings.NewReader("hello world")))
	require.NoError(t, arc.Finalize())

	got, err := arc.NextEntry()
	require.NoError(t, err)
	require.NotNil(t, got)

	head := make([]byte, 5)
	_, err = io.ReadFull(&stream, head)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(head))
}

func TestArchivePhaseRestrictions(t *testing.T) {
	t.Parallel()

	t.Run("read-only archive rejects writes", func(t *testing.T) {
		t.Parallel()
		arc := NewReader(bytes.NewReader(nil))
		assert.Error(t, arc.Write(&EntryHeader{Name: "n"}, strings.NewReader("")))
		assert.Error(t, arc.Finalize())
	})

	t.Run("write-only archive rejects reads", func(t *testing.T) {
		t.Parallel()
		arc := NewWriter(io.Discard)
		_, err := arc.NextEntry()
		assert.Error(t, err)
	})
}

func TestArchiveWritePropagatesEncodeErrors(t *testing.T) {
	t.Parallel()

	var stream bytes.Buffer
	arc := New(&stream)
	bad := EntryHeader{Path: ".", Name: strings.Repeat("n", 256), Size: 0}
	err := arc.Write(&bad, strings.NewReader(""))
	assert.ErrorIs(t, err, ErrFieldOverflow)
	assert.Zero(t, stream.Len(), "nothing may be written for a rejected header")
}
