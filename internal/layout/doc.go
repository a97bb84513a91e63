// Package layout derives the on-disk structure of an export.
//
// Every placement gets a directory named by its year label; inside it the
// averages document sits at the top while per-subject grade files live in
// "subjects" and "exam_grades". Names come straight from Somtoday text with
// only slashes and spaces rewritten, so characters that are unsafe on some
// filesystems (":" or "?" for example) pass through unchanged.
package layout
