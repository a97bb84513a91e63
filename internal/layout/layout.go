package layout

import (
	"fmt"
	"path/filepath"
	"strings"

	"takeout/internal/textutil"
)

const (
	AveragesFile   = "averages.json"
	SubjectsDir    = "subjects"
	ExamGradesDir  = "exam_grades"
	gradesSuffix   = "_grades.json"
	schoolYearMark = "/"
)

// YearLabel builds the directory name of a placement:
// {program}-{gradeYear}-{group}-{schoolYear} with every "/" removed from the
// school year, so "2023/2024" becomes "20232024".
func YearLabel(program, gradeYear, group, schoolYear string) string {
	return fmt.Sprintf("%s-%s-%s-%s", program, gradeYear, group, strings.ReplaceAll(schoolYear, schoolYearMark, ""))
}

// SubjectSlug returns the file name stem of a subject.
func SubjectSlug(name string) string {
	return textutil.Slug(name)
}

// Layout resolves export paths below Root.
type Layout struct {
	Root string
}

// New returns a Layout rooted at root.
func New(root string) Layout {
	return Layout{Root: root}
}

// YearDir is the directory holding everything exported for one placement.
func (l Layout) YearDir(label string) string {
	return filepath.Join(l.Root, label)
}

// AveragesPath is <root>/<label>/averages.json.
func (l Layout) AveragesPath(label string) string {
	return filepath.Join(l.YearDir(label), AveragesFile)
}

// GradesPath is <root>/<label>/subjects/<slug>_grades.json.
func (l Layout) GradesPath(label, slug string) string {
	return filepath.Join(l.YearDir(label), SubjectsDir, slug+gradesSuffix)
}

// ExamGradesPath is <root>/<label>/exam_grades/<slug>_grades.json.
func (l Layout) ExamGradesPath(label, slug string) string {
	return filepath.Join(l.YearDir(label), ExamGradesDir, slug+gradesSuffix)
}
