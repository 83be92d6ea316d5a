package convert

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Walk enumerates every convertible regular file under root, in walk
// order. A missing or unreadable root is a fatal error; unreadable
// subtrees below it are skipped and the scan continues.
func Walk(root string) ([]SourceFile, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, Fatal(fmt.Errorf("input root %q: %w", root, err))
	}
	if !info.IsDir() {
		return nil, Fatal(fmt.Errorf("input root %q is not a directory", root))
	}

	w := &walker{root: root}
	if err := filepath.WalkDir(root, w.visit); err != nil {
		return nil, Fatal(fmt.Errorf("scan %q: %w", root, err))
	}
	return w.files, nil
}

type walker struct {
	root  string
	files []SourceFile
}

// visit is the fs.WalkDirFunc for one entry. Errors on the root
// propagate; anything else unreadable is dropped from the scan.
func (w *walker) visit(path string, d fs.DirEntry, err error) error {
	if err != nil {
		if path == w.root {
			return err
		}
		if d != nil && d.IsDir() {
			return fs.SkipDir
		}
		return nil
	}
	if !d.Type().IsRegular() {
		return nil
	}
	format := DetectFormat(path)
	if format == FormatUnknown {
		return nil
	}
	rel, err := filepath.Rel(w.root, path)
	if err != nil {
		return err
	}
	fi, err := d.Info()
	if err != nil {
		// entry vanished between ReadDir and stat
		return nil
	}
	w.files = append(w.files, SourceFile{Path: path, Rel: rel, Format: format, Size: fi.Size()})
	return nil
}
