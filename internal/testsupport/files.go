package testsupport

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"takeout/internal/jsonvalue"
)

// ListFiles returns every regular file below root as slash-separated paths
// relative to root, sorted.
func ListFiles(t testing.TB, root string) []string {
	t.Helper()

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		t.Fatalf("walk %s: %v", root, err)
	}
	sort.Strings(files)
	return files
}

// ReadJSON parses the JSON document stored at path.
func ReadJSON(t testing.TB, path string) jsonvalue.Value {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	v, err := jsonvalue.Parse(data)
	if err != nil {
		t.Fatalf("parse %s: %v", path, err)
	}
	return v
}
