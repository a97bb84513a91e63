package somtoday

import (
	"fmt"
	"net/url"
	"strings"
)

// DefaultBaseURL is the production REST root.
const DefaultBaseURL = "https://api.somtoday.nl/rest/v1"

// ResultQuery selects the result columns and ordering for the grade endpoints.
// The server only returns the full set of columns with exactly these
// parameters, so the string is kept verbatim.
const ResultQuery = "?additional=vaknaam&additional=resultaatkolom&additional=heeftalternatiefniveau" +
	"&additional=naamalternatiefniveau&additional=naamstandaardniveau&additional=leerjaar" +
	"&additional=periodeAfkorting&type=Toetskolom&type=SamengesteldeToetsKolom&type=Werkstukcijferkolom" +
	"&type=Advieskolom&type=PeriodeGemiddeldeKolom&type=RapportGemiddeldeKolom&type=RapportCijferKolom" +
	"&type=RapportToetskolom&type=SEGemiddeldeKolom&type=ToetssoortGemiddeldeKolom" +
	"&sort=desc-geldendResultaatCijferInvoer"

// ResultRef identifies the grade list of one subject within one placement.
type ResultRef struct {
	StudentID     string
	SubjectUUID   string
	CohortUUID    string
	PlacementUUID string
}

// Endpoints builds request URLs below a REST root.
type Endpoints struct {
	base string
}

// NewEndpoints returns URL builders for base; an empty base selects DefaultBaseURL.
func NewEndpoints(base string) Endpoints {
	base = strings.TrimRight(strings.TrimSpace(base), "/")
	if base == "" {
		base = DefaultBaseURL
	}
	return Endpoints{base: base}
}

// Students lists the students visible to the token.
func (e Endpoints) Students() string {
	return e.base + "/leerlingen"
}

// Placements lists the placements of a student.
func (e Endpoints) Placements(studentID string) string {
	return e.base + "/plaatsingen?leerling=" + url.QueryEscape(studentID)
}

// SubjectAverages lists the subject averages of a placement.
func (e Endpoints) SubjectAverages(placementUUID string) string {
	return fmt.Sprintf("%s/vakkeuzes/plaatsing/%s/vakgemiddelden", e.base, url.PathEscape(placementUUID))
}

// Grades lists the in-progress results of a subject.
func (e Endpoints) Grades(ref ResultRef) string {
	return e.results("geldendvoortgangsdossierresultaten", ref)
}

// ExamGrades lists the exam-file results of a subject.
func (e Endpoints) ExamGrades(ref ResultRef) string {
	return e.results("geldendexamendossierresultaten", ref)
}

func (e Endpoints) results(collection string, ref ResultRef) string {
	return fmt.Sprintf("%s/%s/vakresultaten/%s/vak/%s/lichting/%s%s&plaatsingUuid=%s",
		e.base,
		collection,
		url.PathEscape(ref.StudentID),
		url.PathEscape(ref.SubjectUUID),
		url.PathEscape(ref.CohortUUID),
		ResultQuery,
		url.QueryEscape(ref.PlacementUUID),
	)
}
