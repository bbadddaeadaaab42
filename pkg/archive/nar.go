package archive

import (
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"

	"zombiezen.com/go/nix/nar"

	"github.com/arc-language/tkpair/pkg/tree"
)

// narNode is a directory or file in the tree being serialized
type narNode struct {
	children map[string]*narNode
	source   string // set for files
}

func (n *narNode) isDir() bool {
	return n.children != nil
}

// WriteNAR serializes entries as a NAR rooted at a directory.
// NAR requires a canonical order, so entries are re-sorted by path component.
func WriteNAR(w io.Writer, entries []tree.Entry) error {
	root, err := buildNARTree(entries)
	if err != nil {
		return err
	}

	nw := nar.NewWriter(w)
	if err := writeNARNode(nw, "", root); err != nil {
		return err
	}
	if err := nw.Close(); err != nil {
		return fmt.Errorf("closing nar: %w", err)
	}
	return nil
}

func buildNARTree(entries []tree.Entry) (*narNode, error) {
	root := &narNode{children: make(map[string]*narNode)}

	for _, e := range entries {
		clean := path.Clean(strings.TrimPrefix(e.Dest, "/"))
		if clean == "." || strings.HasPrefix(clean, "../") || clean == ".." {
			return nil, fmt.Errorf("invalid archive path: %q", e.Dest)
		}

		parts := strings.Split(clean, "/")
		node := root
		for i, part := range parts {
			child, ok := node.children[part]
			last := i == len(parts)-1
			switch {
			case !ok && last:
				child = &narNode{source: e.Source}
			case !ok:
				child = &narNode{children: make(map[string]*narNode)}
			case last || !child.isDir():
				return nil, fmt.Errorf("conflicting archive path: %q", e.Dest)
			}
			node.children[part] = child
			node = child
		}
	}

	return root, nil
}

func writeNARNode(nw *nar.Writer, p string, node *narNode) error {
	if node.isDir() {
		if err := nw.WriteHeader(&nar.Header{Path: p, Mode: fs.ModeDir | 0755}); err != nil {
			return fmt.Errorf("writing nar directory %q: %w", p, err)
		}

		names := make([]string, 0, len(node.children))
		for name := range node.children {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			if err := writeNARNode(nw, path.Join(p, name), node.children[name]); err != nil {
				return err
			}
		}
		return nil
	}

	f, info, err := openSource(node.source)
	if err != nil {
		return err
	}
	defer f.Close()

	hdr := &nar.Header{
		Path: p,
		Mode: fileMode(info),
		Size: info.Size(),
	}
	if err := nw.WriteHeader(hdr); err != nil {
		return fmt.Errorf("writing nar header for %q: %w", p, err)
	}
	if _, err := io.Copy(nw, f); err != nil {
		return fmt.Errorf("writing %s: %w", p, err)
	}
	return nil
}
