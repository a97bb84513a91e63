package main

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"takeout/internal/config"
	"takeout/internal/layout"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	var output string
	var listSubjects bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Summarize an existing export",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			root := cfg.Output.Dir
			if cmd.Flags().Changed("output") {
				expanded, err := config.ExpandPath(strings.TrimSpace(output))
				if err != nil {
					return fmt.Errorf("resolve output dir: %w", err)
				}
				root = expanded
			}

			years, err := layout.Scan(root)
			if err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					return fmt.Errorf("no export found at %s", root)
				}
				return err
			}

			out := cmd.OutOrStdout()
			if len(years) == 0 {
				fmt.Fprintf(out, "No exported years in %s\n", root)
				return nil
			}
			fmt.Fprintln(out, renderExportTable(root, years, listSubjects, shouldColorize(out)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Export directory to inspect")
	cmd.Flags().BoolVarP(&listSubjects, "subjects", "s", false, "List subject slugs per year")
	return cmd
}

func renderExportTable(root string, years []layout.YearSummary, listSubjects bool, colorize bool) string {
	headers := []string{"Year", "Averages", "Subjects", "Exam grades"}
	aligns := []columnAlignment{alignLeft, alignLeft, alignRight, alignRight}
	if listSubjects {
		headers = append(headers, "Subject files")
		aligns = append(aligns, alignLeft)
	}

	rows := make([][]string, 0, len(years))
	for _, year := range years {
		row := []string{
			year.Label,
			yesNo(year.HasAverages),
			strconv.Itoa(len(year.Subjects)),
			strconv.Itoa(len(year.ExamGrades)),
		}
		if listSubjects {
			row = append(row, strings.Join(year.Subjects, ", "))
		}
		rows = append(rows, row)
	}
	return renderTable(root, headers, rows, aligns, colorize)
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
