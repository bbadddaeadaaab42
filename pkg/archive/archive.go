// Package archive writes collected bundle entries into a single file, either
// an xz-compressed tarball or a Nix archive (NAR).
package archive

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arc-language/tkpair/pkg/tree"
)

// Format selects the archive encoding
type Format string

const (
	FormatTarXZ Format = "txz"
	FormatNAR   Format = "nar"
)

var (
	// ErrUnknownFormat is returned for unsupported archive formats
	ErrUnknownFormat = errors.New("unknown archive format")
	// ErrNotRegular is returned when an entry's source is not a regular file
	ErrNotRegular    = errors.New("not a regular file")
)

// ParseFormat accepts a format name or a file extension
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "txz", "tar.xz", "xz":
		return FormatTarXZ, nil
	case "nar":
		return FormatNAR, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// FormatFor guesses the format from the file name
func FormatFor(path string) (Format, error) {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".tar.xz"), strings.HasSuffix(lower, ".txz"):
		return FormatTarXZ, nil
	case strings.HasSuffix(lower, ".nar"):
		return FormatNAR, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// Write creates the archive at path. An empty format is guessed from path.
func Write(path string, format Format, entries []tree.Entry) error {
	if format == "" {
		f, err := FormatFor(path)
		if err != nil {
			return err
		}
		format = f
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating archive directory: %w", err)
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating archive: %w", err)
	}

	switch format {
	case FormatTarXZ:
		err = WriteTarXZ(out, entries)
	case FormatNAR:
		err = WriteNAR(out, entries)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	if cerr := out.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("closing archive: %w", cerr)
	}
	if err != nil {
		os.Remove(path)
		return err
	}
	return nil
}

// fileMode returns the permission bits the archive should record for a file
// openSource opens an entry's source file, following links
func openSource(source string) (*os.File, os.FileInfo, error) {
	f, err := os.Open(source)
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s: %w", source, err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("stat %s: %w", source, err)
	}
	if !info.Mode().IsRegular() {
		f.Close()
		return nil, nil, fmt.Errorf("%s: %w", source, ErrNotRegular)
	}
	return f, info, nil
}

func fileMode(info os.FileInfo) os.FileMode {
	if info.Mode()&0111 != 0 {
		return 0755
	}
	return 0644
}
