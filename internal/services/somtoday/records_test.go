package somtoday_test

import (
	"errors"
	"strings"
	"testing"

	"takeout/internal/jsonvalue"
	"takeout/internal/services"
	"takeout/internal/services/somtoday"
)

func TestStudentIDReadsFirstLink(t *testing.T) {
	raw := jsonvalue.MustParse(`{"items":[{"links":[{"id":"abc-1","rel":"self"},{"id":"other"}]},{"links":[{"id":"second"}]}]}`)
	id, err := somtoday.StudentID(raw)
	if err != nil {
		t.Fatalf("StudentID returned error: %v", err)
	}
	if id != "abc-1" {
		t.Fatalf("unexpected id: %q", id)
	}
}

func TestStudentIDShapeErrors(t *testing.T) {
	cases := map[string]string{
		"no items":    `{}`,
		"empty items": `{"items":[]}`,
		"no links":    `{"items":[{"roepnaam":"Sam"}]}`,
		"empty links": `{"items":[{"links":[]}]}`,
		"no id":       `{"items":[{"links":[{"rel":"self"}]}]}`,
		"object id":   `{"items":[{"links":[{"id":{}}]}]}`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := somtoday.StudentID(jsonvalue.MustParse(doc)); !errors.Is(err, services.ErrShape) {
				t.Fatalf("expected shape error, got %v", err)
			}
		})
	}
}

func TestDecodePlacementBuildsYearLabel(t *testing.T) {
	v := jsonvalue.MustParse(`{"UUID":"p-1","opleidingsnaam":"HAVO","leerjaar":4,"stamgroepnaam":"H4A","schooljaar":{"naam":"2023/2024"}}`)
	placement, err := somtoday.DecodePlacement(v)
	if err != nil {
		t.Fatalf("DecodePlacement returned error: %v", err)
	}
	if got := placement.YearLabel(); got != "HAVO-4-H4A-20232024" {
		t.Fatalf("unexpected year label: %q", got)
	}

	quoted := jsonvalue.MustParse(`{"UUID":"p-2","opleidingsnaam":"VWO","leerjaar":"5","stamgroepnaam":"V5B","schooljaar":{"naam":"2022/2023"}}`)
	placement, err = somtoday.DecodePlacement(quoted)
	if err != nil {
		t.Fatalf("DecodePlacement returned error: %v", err)
	}
	if got := placement.YearLabel(); got != "VWO-5-V5B-20222023" {
		t.Fatalf("unexpected year label: %q", got)
	}
}

func TestDecodePlacementAcceptsEmptyAndNullValues(t *testing.T) {
	v := jsonvalue.MustParse(`{"UUID":"p-1","opleidingsnaam":"VWO","leerjaar":5,"stamgroepnaam":"","schooljaar":{"naam":"2022/2023"}}`)
	placement, err := somtoday.DecodePlacement(v)
	if err != nil {
		t.Fatalf("DecodePlacement returned error: %v", err)
	}
	if got := placement.YearLabel(); got != "VWO-5--20222023" {
		t.Fatalf("unexpected year label: %q", got)
	}

	v = jsonvalue.MustParse(`{"UUID":"p-2","opleidingsnaam":"HAVO","leerjaar":null,"stamgroepnaam":"H4A","schooljaar":{"naam":"2023/2024"}}`)
	placement, err = somtoday.DecodePlacement(v)
	if err != nil {
		t.Fatalf("DecodePlacement returned error for null leerjaar: %v", err)
	}
	if !placement.GradeYear.Present() || placement.GradeYear.String() != "" {
		t.Fatalf("expected present empty grade year, got %+v", placement.GradeYear)
	}
	if got := placement.YearLabel(); got != "HAVO--H4A-20232024" {
		t.Fatalf("unexpected year label: %q", got)
	}
}

func TestDecodePlacementRejectsMissingFields(t *testing.T) {
	v := jsonvalue.MustParse(`{"UUID":"p-1","opleidingsnaam":"HAVO","leerjaar":4,"schooljaar":{}}`)
	_, err := somtoday.DecodePlacement(v)
	if !errors.Is(err, services.ErrShape) {
		t.Fatalf("expected shape error, got %v", err)
	}
	msg := err.Error()
	if !strings.Contains(msg, "stamgroepnaam") || !strings.Contains(msg, "schooljaar.naam") {
		t.Fatalf("expected api field names in error, got %q", msg)
	}

	if _, err := somtoday.DecodePlacement(jsonvalue.MustParse(`[1]`)); !errors.Is(err, services.ErrShape) {
		t.Fatalf("expected shape error for non-object, got %v", err)
	}
}

func TestPlacementItems(t *testing.T) {
	items, err := somtoday.PlacementItems(jsonvalue.MustParse(`{"items":[{"UUID":"a"},{"UUID":"b"}]}`))
	if err != nil {
		t.Fatalf("PlacementItems returned error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected two items, got %d", len(items))
	}
	first, _ := items[0].Get("UUID")
	if s, _ := first.Text(); s != "a" {
		t.Fatalf("order not preserved: %q", s)
	}

	items, err = somtoday.PlacementItems(jsonvalue.MustParse(`{"totaal":0}`))
	if err != nil || len(items) != 0 {
		t.Fatalf("expected no placements, got %d (%v)", len(items), err)
	}
	if _, err := somtoday.PlacementItems(jsonvalue.MustParse(`{"items":{}}`)); !errors.Is(err, services.ErrShape) {
		t.Fatalf("expected shape error, got %v", err)
	}
}

func TestDecodeSubjectAverage(t *testing.T) {
	entries, err := somtoday.AverageEntries(jsonvalue.MustParse(`{"gemiddelden":[{"vakkeuze":{"vak":{"UUID":"vak-1","naam":"Wiskunde B"},"lichting":{"UUID":"l-1"}},"gemiddelde":7.5}]}`))
	if err != nil || len(entries) != 1 {
		t.Fatalf("unexpected entries %d (%v)", len(entries), err)
	}
	avg, err := somtoday.DecodeSubjectAverage(entries[0])
	if err != nil {
		t.Fatalf("DecodeSubjectAverage returned error: %v", err)
	}
	if avg.Choice.Subject.Slug() != "wiskunde-b" {
		t.Fatalf("unexpected slug: %q", avg.Choice.Subject.Slug())
	}
	ref := avg.Ref("1234", somtoday.Placement{UUID: somtoday.Text("p-1")})
	want := somtoday.ResultRef{StudentID: "1234", SubjectUUID: "vak-1", CohortUUID: "l-1", PlacementUUID: "p-1"}
	if ref != want {
		t.Fatalf("unexpected ref: %+v", ref)
	}

	_, err = somtoday.DecodeSubjectAverage(jsonvalue.MustParse(`{"vakkeuze":{"vak":{"naam":"Frans"}}}`))
	if !errors.Is(err, services.ErrShape) {
		t.Fatalf("expected shape error, got %v", err)
	}
	if !strings.Contains(err.Error(), "vakkeuze.vak.UUID") {
		t.Fatalf("expected field path in error, got %q", err)
	}
}
