package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arc-language/tkpair/pkg/locate"
	"github.com/arc-language/tkpair/pkg/platform"
)

func touch(t *testing.T, dir string, names ...string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0755))
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		kind     platform.Kind
		file     string
		wantName string
		wantKind locate.Kind
		wantOK   bool
	}{
		{"unix versioned", platform.Unix, "libtcl8.6.so", "libtcl8.6.so", locate.KindShared, true},
		{"unix soname", platform.Unix, "libtcl.so.0", "libtcl.so.0", locate.KindShared, true},
		{"unix tagged module", platform.Unix, "_tkinter.cpython-312-x86_64-linux-gnu.so", "_tkinter", locate.KindExtension, true},
		{"unix py2 module", platform.Unix, "_tkintermodule.so", "_tkinter", locate.KindExtension, true},
		{"unix static", platform.Unix, "libtcl8.6.a", "", locate.KindOther, false},
		{"unix script", platform.Unix, "init.tcl", "", locate.KindOther, false},
		{"darwin dylib", platform.MacOS, "libtcl8.6.dylib", "libtcl8.6.dylib", locate.KindShared, true},
		{"darwin module", platform.MacOS, "_tkinter.cpython-311-darwin.so", "_tkinter", locate.KindExtension, true},
		{"windows dll", platform.Windows, "tcl86t.dll", "tcl86t.dll", locate.KindShared, true},
		{"windows pyd", platform.Windows, "_tkinter.pyd", "_tkinter", locate.KindExtension, true},
		{"windows import lib", platform.Windows, "tcl86.lib", "", locate.KindOther, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Scanner{Platform: tt.kind}
			rec, ok := s.Classify(filepath.Join("/lib", tt.file))
			assert.Equal(t, tt.wantOK, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.wantName, rec.Name)
			assert.Equal(t, tt.wantKind, rec.Kind)
			assert.Equal(t, filepath.Join("/lib", tt.file), rec.Path)
		})
	}
}

func TestScan_OrderAndDedup(t *testing.T) {
	root := t.TempDir()
	libDir := filepath.Join(root, "lib")
	dynload := filepath.Join(root, "lib-dynload")
	touch(t, libDir, "libtk8.6.so", "libtcl8.6.so", "README")
	touch(t, dynload, "_tkinter.cpython-312-x86_64-linux-gnu.so")
	require.NoError(t, os.MkdirAll(filepath.Join(libDir, "tcl8.6"), 0755))

	s := NewScanner(platform.Unix, []string{libDir, dynload, libDir, filepath.Join(root, "missing")})
	records := s.Scan()

	assert.Equal(t, []locate.LibraryRecord{
		{Name: "libtcl8.6.so", Path: filepath.Join(libDir, "libtcl8.6.so"), Kind: locate.KindShared},
		{Name: "libtk8.6.so", Path: filepath.Join(libDir, "libtk8.6.so"), Kind: locate.KindShared},
		{Name: "_tkinter", Path: filepath.Join(dynload, "_tkinter.cpython-312-x86_64-linux-gnu.so"), Kind: locate.KindExtension},
	}, records)
}

func TestScan_FeedsLocator(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "libtcl.so.0")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "tcl8.6"), 0755))

	records := NewScanner(platform.Unix, []string{root}).Scan()
	pair, err := locate.Locate(records, platform.Unix)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "tk8.6"), pair.ToolkitRoot)
}

func TestSearchPaths(t *testing.T) {
	prefix := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(prefix, "lib"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(prefix, "lib", "python3.12", "lib-dynload"), 0755))

	dirs := SearchPaths(platform.Unix, []string{prefix, prefix})
	assert.Equal(t, []string{
		filepath.Join(prefix, "lib"),
		filepath.Join(prefix, "lib", "python3.12", "lib-dynload"),
	}, dirs)
}

func TestDefaultPrefixes_Unknown(t *testing.T) {
	assert.Nil(t, DefaultPrefixes(platform.Unknown))
}
