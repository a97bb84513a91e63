package layout

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// YearSummary describes one placement directory of an existing export.
type YearSummary struct {
	Label       string
	HasAverages bool
	Subjects    []string
	ExamGrades  []string
}

// Scan inventories the export rooted at root. Directories without any of the
// expected files are skipped. Results are sorted by label.
func Scan(root string) ([]YearSummary, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read export directory: %w", err)
	}

	l := New(root)
	var summaries []YearSummary
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		summary := YearSummary{Label: entry.Name()}
		dir := l.YearDir(entry.Name())

		if info, err := os.Stat(l.AveragesPath(entry.Name())); err == nil && !info.IsDir() {
			summary.HasAverages = true
		}
		if summary.Subjects, err = listSlugs(filepath.Join(dir, SubjectsDir)); err != nil {
			return nil, err
		}
		if summary.ExamGrades, err = listSlugs(filepath.Join(dir, ExamGradesDir)); err != nil {
			return nil, err
		}
		if !summary.HasAverages && len(summary.Subjects) == 0 && len(summary.ExamGrades) == 0 {
			continue
		}
		summaries = append(summaries, summary)
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Label < summaries[j].Label
	})
	return summaries, nil
}

func listSlugs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}
	var slugs []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, gradesSuffix) {
			continue
		}
		slugs = append(slugs, strings.TrimSuffix(name, gradesSuffix))
	}
	sort.Strings(slugs)
	return slugs, nil
}
