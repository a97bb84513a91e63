package testsupport

import (
	"fmt"
	"strings"

	"takeout/internal/services/somtoday"
)

// SubjectFixture describes one subject choice and its grade listings. Grades
// and ExamGrades are raw response bodies; empty means an empty items list.
type SubjectFixture struct {
	UUID       string
	Name       string
	CohortUUID string
	Grades     string
	ExamGrades string
}

// PlacementFixture describes one placement and its subject averages.
type PlacementFixture struct {
	UUID       string
	Program    string
	GradeYear  int
	Group      string
	SchoolYear string
	Subjects   []SubjectFixture
}

// SeedStudent registers the student listing, placements, averages and grade
// listings for studentID. Every generated object carries links, permissions
// and $type metadata the way the live API does.
func (a *FakeAPI) SeedStudent(studentID string, placements ...PlacementFixture) {
	e := a.Endpoints()
	a.Respond(e.Students(), fmt.Sprintf(
		`{"items":[{"$type":"leerling.RLeerling","links":[{"id":%q,"rel":"self","type":"leerling.RLeerling"}],"permissions":[],"roepnaam":"Sam"}]}`,
		studentID,
	))

	items := make([]string, 0, len(placements))
	for _, p := range placements {
		items = append(items, fmt.Sprintf(
			`{"$type":"plaatsing.RPlaatsing","links":[{"id":1}],"permissions":[{"full":"x"}],"UUID":%q,"opleidingsnaam":%q,"leerjaar":%d,"stamgroepnaam":%q,"schooljaar":{"$type":"jaar.RSchooljaar","naam":%q}}`,
			p.UUID, p.Program, p.GradeYear, p.Group, p.SchoolYear,
		))
		a.seedPlacement(studentID, p)
	}
	a.Respond(e.Placements(studentID), `{"items":[`+strings.Join(items, ",")+`]}`)
}

func (a *FakeAPI) seedPlacement(studentID string, p PlacementFixture) {
	e := a.Endpoints()
	entries := make([]string, 0, len(p.Subjects))
	for _, s := range p.Subjects {
		entries = append(entries, fmt.Sprintf(
			`{"$type":"vakkeuzes.RVakGemiddelde","links":[],"vakkeuze":{"links":[{"id":9}],"vak":{"UUID":%q,"naam":%q},"lichting":{"UUID":%q}},"gemiddelde":7.50}`,
			s.UUID, s.Name, s.CohortUUID,
		))
		ref := somtoday.ResultRef{StudentID: studentID, SubjectUUID: s.UUID, CohortUUID: s.CohortUUID, PlacementUUID: p.UUID}
		a.Respond(e.Grades(ref), orEmptyItems(s.Grades))
		a.Respond(e.ExamGrades(ref), orEmptyItems(s.ExamGrades))
	}
	a.Respond(e.SubjectAverages(p.UUID), `{"gemiddelden":[`+strings.Join(entries, ",")+`],"permissions":[]}`)
}

func orEmptyItems(body string) string {
	if strings.TrimSpace(body) == "" {
		return `{"items":[]}`
	}
	return body
}
