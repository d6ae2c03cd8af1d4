package wpressarc

import (
	"archive/tar"
	"path"
	"strings"
	"time"
)

// FromTarHeader converts a tar header to a wpress entry header.
//
// Directory entries have no wpress representation (directories are implied
// by the paths of the files beneath them) and yield ok == false. For other
// entries the combined tar name is split into its directory and base
// components; a name with no directory component places the entry at the
// archive root with Path ".".
func FromTarHeader(hdr *tar.Header) (h *EntryHeader, ok bool) {
	if hdr.Typeflag == tar.TypeDir {
		return nil, false
	}
	name := strings.TrimSuffix(hdr.Name, "/")
	return &EntryHeader{
		Path:    path.Dir(name),
		Name:    path.Base(name),
		Size:    hdr.Size,
		ModTime: hdr.ModTime.Unix(),
	}, true
}

// ToTarHeader converts h to a regular-file tar header.
//
// The tar name is the literal Path + "/" + Name join, with no
// special-casing of a "." path. Permission and ownership are not recorded
// in the wpress format at all, so they come from the caller-supplied
// options; see TarOption for the recognized settings and their defaults.
func (h *EntryHeader) ToTarHeader(opts ...TarOption) *tar.Header {
	cfg := defaultTarConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return &tar.Header{
		Typeflag: tar.TypeReg,
		Name:     h.Path + "/" + h.Name,
		Size:     h.Size,
		ModTime:  time.Unix(h.ModTime, 0),
		Mode:     cfg.mode,
		Uid:      cfg.uid,
		Gid:      cfg.gid,
		Uname:    cfg.owner,
		Gname:    cfg.group,
	}
}
