package archive

import (
	"archive/tar"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/xz"
	"zombiezen.com/go/nix/nar"

	"github.com/arc-language/tkpair/pkg/tree"
)

// fixture writes files under a temp dir and returns matching entries
func fixture(t *testing.T, files map[string]string) []tree.Entry {
	t.Helper()
	root := t.TempDir()
	var entries []tree.Entry
	for dest, content := range files {
		src := filepath.Join(root, filepath.FromSlash(dest))
		require.NoError(t, os.MkdirAll(filepath.Dir(src), 0755))
		require.NoError(t, os.WriteFile(src, []byte(content), 0644))
		entries = append(entries, tree.Entry{Source: src, Dest: dest})
	}
	return entries
}

var files = map[string]string{
	"_MEI/tcl/init.tcl":    "# init",
	"_MEI/tcl/msgs/de.msg": "de",
	"_MEI/tcl-extra/x.tcl": "x",
	"_MEI/tk/images/a.gif": "GIF89a",
	"_MEI/tk/tk.tcl":       "# tk",
}

func TestWriteTarXZ(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTarXZ(&buf, fixture(t, files)))

	xr, err := xz.NewReader(&buf)
	require.NoError(t, err)
	tr := tar.NewReader(xr)

	got := map[string]string{}
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		data, err := io.ReadAll(tr)
		require.NoError(t, err)
		got[hdr.Name] = string(data)
		assert.Equal(t, int64(0644), hdr.Mode)
	}
	assert.Equal(t, files, got)
}

func TestWriteNAR(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteNAR(&buf, fixture(t, files)))

	nr := nar.NewReader(&buf)
	got := map[string]string{}
	var order []string
	for {
		hdr, err := nr.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		if !hdr.Mode.IsRegular() {
			continue
		}
		data, err := io.ReadAll(nr)
		require.NoError(t, err)
		got[hdr.Path] = string(data)
		order = append(order, hdr.Path)
	}

	assert.Equal(t, files, got)
	// tcl/ sorts before tcl-extra/ by component even though '-' < '/'
	assert.Equal(t, []string{
		"_MEI/tcl/init.tcl",
		"_MEI/tcl/msgs/de.msg",
		"_MEI/tcl-extra/x.tcl",
		"_MEI/tk/images/a.gif",
		"_MEI/tk/tk.tcl",
	}, order)
}

func TestWriteNAR_Conflicts(t *testing.T) {
	entries := fixture(t, map[string]string{"a/b": "file"})
	entries = append(entries, tree.Entry{Source: entries[0].Source, Dest: "a/b/c"})

	err := WriteNAR(io.Discard, entries)
	assert.ErrorContains(t, err, "conflicting archive path")

	err = WriteNAR(io.Discard, []tree.Entry{{Source: "/x", Dest: "../escape"}})
	assert.ErrorContains(t, err, "invalid archive path")
}

func TestWrite_PicksFormatFromName(t *testing.T) {
	entries := fixture(t, files)
	dir := t.TempDir()

	txz := filepath.Join(dir, "out", "bundle.tar.xz")
	require.NoError(t, Write(txz, "", entries))
	data, err := os.ReadFile(txz)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte{0xFD, '7', 'z', 'X', 'Z', 0x00}), "xz magic")

	narPath := filepath.Join(dir, "bundle.nar")
	require.NoError(t, Write(narPath, "", entries))
	data, err = os.ReadFile(narPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "nix-archive-1")
}

func TestWrite_Errors(t *testing.T) {
	dir := t.TempDir()

	err := Write(filepath.Join(dir, "bundle.zip"), "", nil)
	assert.ErrorIs(t, err, ErrUnknownFormat)

	missing := []tree.Entry{{Source: filepath.Join(dir, "nope"), Dest: "x"}}
	out := filepath.Join(dir, "bundle.txz")
	err = Write(out, FormatTarXZ, missing)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.NoFileExists(t, out)
}

func TestWriters_RejectDirectorySource(t *testing.T) {
	dir := t.TempDir()
	entries := []tree.Entry{{Source: dir, Dest: "_MEI/tcl/msgs"}}

	err := WriteTarXZ(io.Discard, entries)
	assert.ErrorIs(t, err, ErrNotRegular)

	err = WriteNAR(io.Discard, entries)
	assert.ErrorIs(t, err, ErrNotRegular)
}

func TestWriteTarXZ_CollectedSymlinkedDirectory(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "share", "msgs"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "tcl8.6"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "share", "msgs", "de.msg"), []byte("de"), 0644))
	if err := os.Symlink(filepath.Join("..", "share", "msgs"), filepath.Join(root, "tcl8.6", "msgs")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	entries, err := tree.Collect(filepath.Join(root, "tcl8.6"), "_MEI/tcl", nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteTarXZ(&buf, entries))

	xr, err := xz.NewReader(&buf)
	require.NoError(t, err)
	hdr, err := tar.NewReader(xr).Next()
	require.NoError(t, err)
	assert.Equal(t, "_MEI/tcl/msgs/de.msg", hdr.Name)
	assert.Equal(t, int64(2), hdr.Size)
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"txz": FormatTarXZ, ".tar.xz": FormatTarXZ, "NAR": FormatNAR} {
		got, err := ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseFormat("zip")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
