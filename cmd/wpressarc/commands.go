package main

import (
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/spf13/cobra"
)

func newFromTarCmd() *cobra.Command {
	var (
		output string
		gunzip bool
	)

	cmd := &cobra.Command{
		Use:   "from-tar [archive.tar]",
		Short: "Convert a tar stream to a wpress archive",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := openInput(args)
			if err != nil {
				return err
			}
			defer in.Close()

			var r io.Reader = in
			if gunzip {
				zr, err := gzip.NewReader(in)
				if err != nil {
					return fmt.Errorf("open gzip input: %w", err)
				}
				defer zr.Close()
				r = zr
			}

			out, err := openOutput(output)
			if err != nil {
				return err
			}
			defer out.Close()

			if err := fromTar(r, out); err != nil {
				return err
			}
			return out.Close()
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVarP(&gunzip, "gzip", "z", false, "decompress gzipped input")
	return cmd
}

func newToTarCmd() *cobra.Command {
	var (
		output string
		gz     bool
		attrs  = tarAttrs{mode: "644"}
	)

	cmd := &cobra.Command{
		Use:   "to-tar [archive.wpress]",
		Short: "Convert a wpress archive to a tar stream",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := attrs.options()
			if err != nil {
				return err
			}

			in, err := openInput(args)
			if err != nil {
				return err
			}
			defer in.Close()

			out, err := openOutput(output)
			if err != nil {
				return err
			}
			defer out.Close()

			var w io.Writer = out
			var zw *gzip.Writer
			if gz {
				zw = gzip.NewWriter(out)
				w = zw
			}

			if err := toTar(in, w, opts...); err != nil {
				return err
			}
			if zw != nil {
				if err := zw.Close(); err != nil {
					return err
				}
			}
			return out.Close()
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVarP(&gz, "gzip", "z", false, "compress output with gzip")
	cmd.Flags().StringVar(&attrs.mode, "mode", "644", "octal permission bits for produced tar entries")
	cmd.Flags().IntVar(&attrs.uid, "uid", 0, "numeric owner id for produced tar entries")
	cmd.Flags().IntVar(&attrs.gid, "gid", 0, "numeric group id for produced tar entries")
	cmd.Flags().StringVar(&attrs.owner, "owner", "", "owner name for produced tar entries")
	cmd.Flags().StringVar(&attrs.group, "group", "", "group name for produced tar entries")
	return cmd
}

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [archive.wpress]",
		Short: "List the entries of a wpress archive",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := openInput(args)
			if err != nil {
				return err
			}
			defer in.Close()
			return list(in, cmd.OutOrStdout())
		},
	}
	return cmd
}

// openInput opens the optional file argument, defaulting to stdin. "-"
// also selects stdin.
func openInput(args []string) (io.ReadCloser, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(args[0])
}

// openOutput opens the --output target, defaulting to stdout. "-" also
// selects stdout.
func openOutput(name string) (io.WriteCloser, error) {
	if name == "" || name == "-" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(name)
}

// nopCloser keeps stdout open across the double Close in the command
// bodies (explicit Close to surface write errors, deferred Close for the
// error paths).
type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
