package main

import (
	"archive/tar"
	"errors"
	"fmt"
	"io"
	"path"
	"strconv"
	"time"

	"github.com/docker/go-units"

	"github.com/kugland/wpressarc"
)

// fromTar copies every regular entry of the tar stream r into a wpress
// container on w, skipping directories, and terminates it with the
// sentinel record.
func fromTar(r io.Reader, w io.Writer) error {
	tr := tar.NewReader(r)
	arc := wpressarc.NewWriter(w)

	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("read tar: %w", err)
		}

		h, ok := wpressarc.FromTarHeader(hdr)
		if !ok {
			continue
		}
		if err := arc.Write(h, tr); err != nil {
			return fmt.Errorf("write %s: %w", hdr.Name, err)
		}
	}

	return arc.Finalize()
}

// toTar copies every entry of the wpress container r into a tar stream on
// w, applying the supplied permission and ownership options to each
// produced header.
func toTar(r io.Reader, w io.Writer, opts ...wpressarc.TarOption) error {
	arc := wpressarc.NewReader(r)
	tw := tar.NewWriter(w)

	for {
		h, err := arc.NextEntry()
		if err != nil {
			return err
		}
		if h == nil {
			break
		}

		if err := tw.WriteHeader(h.ToTarHeader(opts...)); err != nil {
			return fmt.Errorf("write tar header for %s: %w", h.Name, err)
		}
		if _, err := io.Copy(tw, arc.ContentReader(h)); err != nil {
			return fmt.Errorf("copy content of %s: %w", h.Name, err)
		}
	}

	return tw.Close()
}

// list prints one line per entry without extracting anything, skipping
// over each entry's content by its declared size.
func list(r io.Reader, w io.Writer) error {
	arc := wpressarc.NewReader(r)

	for {
		h, err := arc.NextEntry()
		if err != nil {
			return err
		}
		if h == nil {
			return nil
		}

		mtime := time.Unix(h.ModTime, 0).UTC().Format(time.DateTime)
		if _, err := fmt.Fprintf(w, "%10s  %s  %s\n",
			units.HumanSize(float64(h.Size)), mtime, path.Join(h.Path, h.Name)); err != nil {
			return err
		}
		if _, err := io.Copy(io.Discard, arc.ContentReader(h)); err != nil {
			return fmt.Errorf("skip content of %s: %w", h.Name, err)
		}
	}
}

// tarAttrs holds the permission and ownership flags of the to-tar command.
type tarAttrs struct {
	mode  string
	uid   int
	gid   int
	owner string
	group string
}

// options parses the flag values into conversion options. The mode flag is
// octal, matching tar convention.
func (a tarAttrs) options() ([]wpressarc.TarOption, error) {
	mode, err := strconv.ParseInt(a.mode, 8, 64)
	if err != nil || mode < 0 {
		return nil, fmt.Errorf("invalid octal mode %q", a.mode)
	}
	return []wpressarc.TarOption{
		wpressarc.WithMode(mode),
		wpressarc.WithUID(a.uid),
		wpressarc.WithGID(a.gid),
		wpressarc.WithOwner(a.owner),
		wpressarc.WithGroup(a.group),
	}, nil
}
