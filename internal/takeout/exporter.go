package takeout

import (
	"context"
	"log/slog"
	"time"

	"takeout/internal/jsonvalue"
	"takeout/internal/layout"
	"takeout/internal/logging"
	"takeout/internal/sanitize"
	"takeout/internal/services"
	"takeout/internal/services/somtoday"
)

// Fetcher is the subset of the Somtoday client the exporter drives.
type Fetcher interface {
	Students(ctx context.Context) (jsonvalue.Value, error)
	Placements(ctx context.Context, studentID string) (jsonvalue.Value, error)
	SubjectAverages(ctx context.Context, placementUUID string) (jsonvalue.Value, error)
	Grades(ctx context.Context, ref somtoday.ResultRef) (jsonvalue.Value, error)
	ExamGrades(ctx context.Context, ref somtoday.ResultRef) (jsonvalue.Value, error)
}

// Result counts what a run wrote.
type Result struct {
	Placements int
	Subjects   int
	Files      int
}

// Exporter writes one student's records below an output root.
type Exporter struct {
	fetcher Fetcher
	layout  layout.Layout
	logger  *slog.Logger
}

// NewExporter wires an exporter. A nil logger discards output.
func NewExporter(fetcher Fetcher, outputDir string, logger *slog.Logger) *Exporter {
	return &Exporter{
		fetcher: fetcher,
		layout:  layout.New(outputDir),
		logger:  logging.NewComponentLogger(logger, "exporter"),
	}
}

// Run performs the export. It stops at the first error.
func (e *Exporter) Run(ctx context.Context) (Result, error) {
	var result Result
	started := time.Now()
	logger := logging.WithContext(ctx, e.logger)
	logger.Info("export started",
		logging.String(logging.FieldEventType, "export_start"),
		logging.String("output_dir", e.layout.Root),
	)

	logger.Info("fetching student id")
	students, err := e.fetcher.Students(ctx)
	if err != nil {
		return result, err
	}
	studentID, err := somtoday.StudentID(students)
	if err != nil {
		return result, err
	}

	logger.Info("fetching placements")
	listing, err := e.fetcher.Placements(ctx, studentID)
	if err != nil {
		return result, err
	}
	placements, err := somtoday.PlacementItems(sanitize.Strip(listing))
	if err != nil {
		return result, err
	}
	logger.Debug("placements listed", logging.Int("count", len(placements)))

	for _, item := range placements {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		placement, err := somtoday.DecodePlacement(item)
		if err != nil {
			return result, err
		}
		if err := e.exportPlacement(ctx, studentID, placement, &result); err != nil {
			return result, err
		}
		result.Placements++
	}

	logger.Info("export complete",
		logging.String(logging.FieldEventType, "export_complete"),
		logging.Int("placements", result.Placements),
		logging.Int("subjects", result.Subjects),
		logging.Int("files", result.Files),
		logging.Duration("elapsed", time.Since(started)),
	)
	return result, nil
}

func (e *Exporter) exportPlacement(ctx context.Context, studentID string, placement somtoday.Placement, result *Result) error {
	logging.WithContext(ctx, e.logger).Info("processing placement", logging.String("placement_uuid", placement.UUID.String()))

	raw, err := e.fetcher.SubjectAverages(ctx, placement.UUID.String())
	if err != nil {
		return err
	}
	averages := sanitize.Strip(raw)

	label := placement.YearLabel()
	ctx = services.WithPlacement(ctx, label)
	if err := e.write(ctx, e.layout.AveragesPath(label), averages, result); err != nil {
		return err
	}

	entries, err := somtoday.AverageEntries(averages)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		avg, err := somtoday.DecodeSubjectAverage(entry)
		if err != nil {
			return err
		}
		if err := e.exportSubject(ctx, studentID, placement, label, avg, result); err != nil {
			return err
		}
		result.Subjects++
	}
	return nil
}

func (e *Exporter) exportSubject(ctx context.Context, studentID string, placement somtoday.Placement, label string, avg somtoday.SubjectAverage, result *Result) error {
	slug := avg.Choice.Subject.Slug()
	ctx = services.WithSubject(ctx, slug)
	logging.WithContext(ctx, e.logger).Info("fetching grades")

	ref := avg.Ref(studentID, placement)
	grades, err := e.fetcher.Grades(ctx, ref)
	if err != nil {
		return err
	}
	if err := e.write(ctx, e.layout.GradesPath(label, slug), UnwrapItems(sanitize.Strip(grades)), result); err != nil {
		return err
	}

	exams, err := e.fetcher.ExamGrades(ctx, ref)
	if err != nil {
		return err
	}
	return e.write(ctx, e.layout.ExamGradesPath(label, slug), UnwrapItems(sanitize.Strip(exams)), result)
}

func (e *Exporter) write(ctx context.Context, path string, v jsonvalue.Value, result *Result) error {
	logging.WithContext(ctx, e.logger).Info("saving json", logging.String("path", path))
	if err := WriteJSON(path, v); err != nil {
		return err
	}
	result.Files++
	return nil
}
