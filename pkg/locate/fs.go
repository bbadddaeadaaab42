package locate

import "os"

// FS is the filesystem view the locator probes.
// Only existence checks and flat directory listings are needed.
type FS interface {
	// Exists reports whether path exists (file or directory)
	Exists(path string) bool

	// ReadDir returns the entry names of dir in listing order
	ReadDir(dir string) ([]string, error)
}

// OSFS is an FS backed by the host filesystem
type OSFS struct{}

// Exists reports whether path exists on disk
func (OSFS) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ReadDir lists dir, sorted by file name
func (OSFS) ReadDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names, nil
}
