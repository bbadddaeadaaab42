package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the CLI with an isolated config file
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cfg := filepath.Join(t.TempDir(), "config.yaml")

	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", cfg}, args...))

	err := cmd.Execute()
	return out.String(), err
}

// install creates a Unix style Tcl/Tk layout and a records manifest for it
func install(t *testing.T) (root, records string) {
	t.Helper()
	root = t.TempDir()
	for _, f := range []string{"libtcl.so.0", "tcl8.6/init.tcl", "tcl8.6/encoding/cp1252.enc", "tk8.6/tk.tcl"} {
		p := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte(f), 0644))
	}

	records = filepath.Join(t.TempDir(), "records.yaml")
	doc := "records:\n  - name: libtcl.so.0\n    path: " + filepath.Join(root, "libtcl.so.0") + "\n    kind: shared\n"
	require.NoError(t, os.WriteFile(records, []byte(doc), 0644))
	return root, records
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "tkpair version "+Version)
}

func TestLocateCommand(t *testing.T) {
	root, records := install(t)

	out, err := run(t, "--platform", "unix", "locate", "--records", records)
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(root, "tcl8.6"))
	assert.Contains(t, out, filepath.Join(root, "tk8.6"))
	assert.Contains(t, out, "8.6")
}

func TestLocateCommand_NotFound(t *testing.T) {
	_, records := install(t)

	_, err := run(t, "--platform", "windows", "locate", "--records", records)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tcl/tk not found")
}

func TestLocateCommand_BadPlatform(t *testing.T) {
	_, err := run(t, "--platform", "beos", "locate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown platform")
}

func TestCollectCommand(t *testing.T) {
	root, records := install(t)
	outDir := t.TempDir()
	report := filepath.Join(outDir, "report.json")
	archive := filepath.Join(outDir, "tk.tar.xz")

	out, err := run(t, "--platform", "unix", "collect", "--records", records, "--out", report, "--archive", archive)
	require.NoError(t, err)

	assert.Contains(t, out, filepath.Join(root, "tcl8.6", "init.tcl"))
	assert.Contains(t, out, "_MEI/tk/tk.tcl")
	assert.NotContains(t, out, "cp1252.enc")
	assert.FileExists(t, report)
	assert.FileExists(t, archive)
}

func TestCollectCommand_NotFoundDegrades(t *testing.T) {
	_, records := install(t)
	report := filepath.Join(t.TempDir(), "report.yaml")

	out, err := run(t, "--platform", "darwin", "collect", "--records", records, "--out", report)
	require.NoError(t, err)
	assert.Contains(t, out, "Tcl/Tk not found")

	data, err := os.ReadFile(report)
	require.NoError(t, err)
	assert.Contains(t, string(data), "platform: darwin")
	assert.NotContains(t, string(data), "pair:")
}

func TestUnsupportedPlatformSkips(t *testing.T) {
	out, err := run(t, "--platform", "plan9", "locate")
	require.NoError(t, err)
	assert.Contains(t, out, "not supported on unknown")

	report := filepath.Join(t.TempDir(), "report.yaml")
	out, err = run(t, "--platform", "plan9", "collect", "--out", report)
	require.NoError(t, err)
	assert.Contains(t, out, "not supported on unknown")

	data, err := os.ReadFile(report)
	require.NoError(t, err)
	assert.Contains(t, string(data), "skipped: true")
}

func TestScanCommand(t *testing.T) {
	root, _ := install(t)
	records := filepath.Join(t.TempDir(), "scanned.toml")

	out, err := run(t, "--platform", "unix", "scan", root)
	require.NoError(t, err)
	assert.Contains(t, out, "libtcl.so.0")
	assert.Contains(t, out, "shared")

	_, err = run(t, "--platform", "unix", "scan", root, "--out", records)
	require.NoError(t, err)
	data, err := os.ReadFile(records)
	require.NoError(t, err)
	assert.Contains(t, string(data), `name = "libtcl.so.0"`)
}

func TestConfigInit(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "tkpair", "config.yaml")

	cmd := NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", cfg, "config", "init"})
	require.NoError(t, cmd.Execute())
	assert.FileExists(t, cfg)

	cmd = NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", cfg, "config", "init"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	var out bytes.Buffer
	cmd = NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--config", cfg, "--platform", "windows", "config", "show"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "windows")
	assert.Contains(t, out.String(), "_MEI")
}
