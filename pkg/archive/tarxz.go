package archive

import (
	"archive/tar"
	"fmt"
	"io"

	"github.com/ulikunitz/xz"

	"github.com/arc-language/tkpair/pkg/tree"
)

// WriteTarXZ streams entries into w as an xz-compressed tar, in entry order
func WriteTarXZ(w io.Writer, entries []tree.Entry) error {
	xzWriter, err := xz.NewWriter(w)
	if err != nil {
		return fmt.Errorf("creating xz writer: %w", err)
	}

	tw := tar.NewWriter(xzWriter)
	for _, e := range entries {
		if err := addTarFile(tw, e); err != nil {
			return err
		}
	}

	if err := tw.Close(); err != nil {
		return fmt.Errorf("closing tar: %w", err)
	}
	if err := xzWriter.Close(); err != nil {
		return fmt.Errorf("closing xz: %w", err)
	}
	return nil
}

func addTarFile(tw *tar.Writer, e tree.Entry) error {
	f, info, err := openSource(e.Source)
	if err != nil {
		return err
	}
	defer f.Close()

	hdr := &tar.Header{
		Typeflag: tar.TypeReg,
		Name:     e.Dest,
		Mode:     int64(fileMode(info)),
		Size:     info.Size(),
		ModTime:  info.ModTime(),
	}
	if err := tw.WriteHeader(hdr); err != nil {
		return fmt.Errorf("writing header for %s: %w", e.Dest, err)
	}
	if _, err := io.Copy(tw, f); err != nil {
		return fmt.Errorf("writing %s: %w", e.Dest, err)
	}
	return nil
}
