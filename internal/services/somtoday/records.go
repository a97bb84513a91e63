package somtoday

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"takeout/internal/jsonvalue"
	"takeout/internal/layout"
	"takeout/internal/services"
)

// Scalar is a record field that must be present in the object but may hold
// any string, number or boolean, including "" and null. The API is not
// consistent about quoting identifiers and grade years. Null reads as empty
// text.
type Scalar struct {
	text    string
	present bool
}

// Text builds a present Scalar.
func Text(s string) Scalar { return Scalar{text: s, present: true} }

// String returns the text of the field.
func (s Scalar) String() string { return s.text }

// Present reports whether the key appeared in the decoded object.
func (s Scalar) Present() bool { return s.present }

func (s *Scalar) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*s = Text("")
	case bytes.Equal(data, []byte("true")), bytes.Equal(data, []byte("false")):
		*s = Text(string(data))
	case len(data) > 0 && data[0] == '"':
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		*s = Text(text)
	default:
		var number json.Number
		if err := json.Unmarshal(data, &number); err != nil {
			return fmt.Errorf("expected string or number, got %s", data)
		}
		*s = Text(number.String())
	}
	return nil
}

// SchoolYear names the school year of a placement, e.g. "2023/2024".
type SchoolYear struct {
	Name Scalar `json:"naam" validate:"required"`
}

// Placement is one enrollment period of the student.
type Placement struct {
	UUID        Scalar     `json:"UUID" validate:"required"`
	ProgramName Scalar     `json:"opleidingsnaam" validate:"required"`
	GradeYear   Scalar     `json:"leerjaar" validate:"required"`
	GroupName   Scalar     `json:"stamgroepnaam" validate:"required"`
	SchoolYear  SchoolYear `json:"schooljaar"`
}

// YearLabel is the directory name of the placement.
func (p Placement) YearLabel() string {
	return layout.YearLabel(p.ProgramName.String(), p.GradeYear.String(), p.GroupName.String(), p.SchoolYear.Name.String())
}

// Subject is the vak referenced by a subject choice.
type Subject struct {
	UUID Scalar `json:"UUID" validate:"required"`
	Name Scalar `json:"naam" validate:"required"`
}

// Slug is the file name stem used for the subject's grade files.
func (s Subject) Slug() string {
	return layout.SubjectSlug(s.Name.String())
}

// Cohort is the lichting a subject choice belongs to.
type Cohort struct {
	UUID Scalar `json:"UUID" validate:"required"`
}

// SubjectChoice is the vakkeuze of an average entry.
type SubjectChoice struct {
	Subject Subject `json:"vak"`
	Cohort  Cohort  `json:"lichting"`
}

// SubjectAverage is one entry of a placement's gemiddelden list.
type SubjectAverage struct {
	Choice SubjectChoice `json:"vakkeuze"`
}

// Ref returns the grade list reference of the entry within placement.
func (a SubjectAverage) Ref(studentID string, placement Placement) ResultRef {
	return ResultRef{
		StudentID:     studentID,
		SubjectUUID:   a.Choice.Subject.UUID.String(),
		CohortUUID:    a.Choice.Cohort.UUID.String(),
		PlacementUUID: placement.UUID.String(),
	}
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
	translator   ut.Translator
)

func recordValidator() (*validator.Validate, ut.Translator) {
	validateOnce.Do(func() {
		validate = validator.New()
		english := en.New()
		translator, _ = ut.New(english, english).GetTranslator("en")
		_ = en_translations.RegisterDefaultTranslations(validate, translator)
		// Only an absent key is missing; "" and null are accepted values.
		validate.RegisterCustomTypeFunc(func(field reflect.Value) any {
			return field.Interface().(Scalar).present
		}, Scalar{})
		// Report API field names instead of Go field names.
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate, translator
}

// StudentID reads items[0].links[0].id from the raw student listing. The
// lookup must happen before metadata is stripped because the identifier only
// lives in the links block.
func StudentID(raw jsonvalue.Value) (string, error) {
	items, ok := raw.Get("items")
	if !ok {
		return "", shapeError("student", "missing items", nil)
	}
	first, ok := items.Index(0)
	if !ok {
		return "", shapeError("student", "no students visible to token", nil)
	}
	links, ok := first.Get("links")
	if !ok {
		return "", shapeError("student", "missing links on first student", nil)
	}
	link, ok := links.Index(0)
	if !ok {
		return "", shapeError("student", "empty links on first student", nil)
	}
	id, ok := link.Get("id")
	if !ok {
		return "", shapeError("student", "missing id on first link", nil)
	}
	text, ok := id.Text()
	if !ok || strings.TrimSpace(text) == "" {
		return "", shapeError("student", "student id is not a string or number", nil)
	}
	return text, nil
}

// PlacementItems returns the raw items of a placement listing in API order.
// A listing without items has no placements. Entries are decoded one at a
// time with DecodePlacement so that a malformed entry only fails the run when
// the export reaches it.
func PlacementItems(listing jsonvalue.Value) ([]jsonvalue.Value, error) {
	return listEntries(listing, "items", "placements")
}

// DecodePlacement decodes and validates a single placement object.
func DecodePlacement(v jsonvalue.Value) (Placement, error) {
	var placement Placement
	if err := decodeRecord("placement", v, &placement); err != nil {
		return Placement{}, err
	}
	return placement, nil
}

// AverageEntries returns the gemiddelden entries of an averages response.
// A response without gemiddelden has no subjects.
func AverageEntries(averages jsonvalue.Value) ([]jsonvalue.Value, error) {
	return listEntries(averages, "gemiddelden", "averages")
}

// DecodeSubjectAverage decodes and validates one gemiddelden entry.
func DecodeSubjectAverage(v jsonvalue.Value) (SubjectAverage, error) {
	var avg SubjectAverage
	if err := decodeRecord("subject average", v, &avg); err != nil {
		return SubjectAverage{}, err
	}
	return avg, nil
}

func listEntries(doc jsonvalue.Value, key, operation string) ([]jsonvalue.Value, error) {
	if doc.Kind() != jsonvalue.KindObject {
		return nil, shapeError(operation, fmt.Sprintf("expected object, got %s", doc.Kind()), nil)
	}
	entries, ok := doc.Get(key)
	if !ok {
		return nil, nil
	}
	if entries.Kind() != jsonvalue.KindArray {
		return nil, shapeError(operation, key+" is not an array", nil)
	}
	return entries.Elements(), nil
}

func decodeRecord(operation string, v jsonvalue.Value, target any) error {
	if v.Kind() != jsonvalue.KindObject {
		return shapeError(operation, fmt.Sprintf("expected object, got %s", v.Kind()), nil)
	}
	if err := v.As(target); err != nil {
		return shapeError(operation, "decode", err)
	}
	checker, trans := recordValidator()
	if err := checker.Struct(target); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return shapeError(operation, strings.Join(describeFields(verrs, trans), "; "), nil)
		}
		return shapeError(operation, "validate", err)
	}
	return nil
}

// describeFields renders each failure as "path: message", with the path
// relative to the record, e.g. "schooljaar.naam: naam is a required field".
func describeFields(verrs validator.ValidationErrors, trans ut.Translator) []string {
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		ns := fe.Namespace()
		if idx := strings.Index(ns, "."); idx >= 0 {
			ns = ns[idx+1:]
		}
		fields = append(fields, ns+": "+fe.Translate(trans))
	}
	return fields
}

func shapeError(operation, message string, err error) error {
	return services.Wrap(services.ErrShape, "decode", operation, message, err)
}
