package main

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"takeout/internal/runlock"
	"takeout/internal/services"
	"takeout/internal/testsupport"
)

func seedSingleSubject(api *testsupport.FakeAPI) {
	api.SeedStudent("1234", testsupport.PlacementFixture{
		UUID:       "plaatsing-1",
		Program:    "VWO",
		GradeYear:  5,
		Group:      "V5B",
		SchoolYear: "2022/2023",
		Subjects: []testsupport.SubjectFixture{{
			UUID:       "vak-wisb",
			Name:       "Wiskunde B",
			CohortUUID: "lichting-1",
			Grades:     `{"items":[{"links":[],"resultaat":7.5}]}`,
			ExamGrades: `{"items":[{"$type":"x","resultaat":6.8}]}`,
		}},
	})
}

func TestExportCommandWritesExport(t *testing.T) {
	api := testsupport.NewFakeAPI(t)
	seedSingleSubject(api)
	cfg := testsupport.NewConfig(t,
		testsupport.WithBaseURL(api.BaseURL()),
		testsupport.WithLogFile("takeout.log"),
	)
	env := setupCLITestEnv(t, cfg)

	if _, _, err := runCLI(t, []string{"token-abc"}, env.configPath); err != nil {
		t.Fatalf("export: %v", err)
	}

	files := testsupport.ListFiles(t, cfg.Output.Dir)
	want := []string{
		"VWO-5-V5B-20222023/averages.json",
		"VWO-5-V5B-20222023/exam_grades/wiskunde-b_grades.json",
		"VWO-5-V5B-20222023/subjects/wiskunde-b_grades.json",
	}
	if strings.Join(files, "\n") != strings.Join(want, "\n") {
		t.Fatalf("unexpected files:\n%s", strings.Join(files, "\n"))
	}
	for _, token := range api.Tokens() {
		if token != "Bearer token-abc" {
			t.Fatalf("unexpected authorization header %q", token)
		}
	}

	logData, err := os.ReadFile(cfg.Logging.File)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	requireContains(t, string(logData), "export complete")
	if strings.Contains(string(logData), "token-abc") {
		t.Fatal("token leaked into log file")
	}
}

func TestExportCommandOutputFlagOverridesConfig(t *testing.T) {
	api := testsupport.NewFakeAPI(t)
	seedSingleSubject(api)
	cfg := testsupport.NewConfig(t, testsupport.WithBaseURL(api.BaseURL()))
	env := setupCLITestEnv(t, cfg)
	override := filepath.Join(t.TempDir(), "elsewhere")

	if _, _, err := runCLI(t, []string{"token", "--output", override, "--timeout", "5s"}, env.configPath); err != nil {
		t.Fatalf("export: %v", err)
	}
	if got := testsupport.ListFiles(t, override); len(got) != 3 {
		t.Fatalf("expected three files in override dir, got %v", got)
	}
}

func TestExportCommandPropagatesHTTPFailure(t *testing.T) {
	api := testsupport.NewFakeAPI(t)
	api.RespondStatus(api.Endpoints().Students(), http.StatusUnauthorized, `{"error":"invalid_token"}`)
	cfg := testsupport.NewConfig(t, testsupport.WithBaseURL(api.BaseURL()))
	env := setupCLITestEnv(t, cfg)

	_, _, err := runCLI(t, []string{"expired"}, env.configPath)
	if !errors.Is(err, services.ErrTransport) {
		t.Fatalf("expected transport error, got %v", err)
	}
	requireContains(t, err.Error(), "401")
}

func TestExportCommandRequiresToken(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	env := setupCLITestEnv(t, cfg)

	if _, _, err := runCLI(t, nil, env.configPath); err == nil {
		t.Fatal("expected error without token argument")
	}
	if _, _, err := runCLI(t, []string{"   "}, env.configPath); !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("expected configuration error for blank token, got %v", err)
	}
}

func TestExportCommandRejectsBadFlags(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	env := setupCLITestEnv(t, cfg)

	if _, _, err := runCLI(t, []string{"token", "--log-level", "loud"}, env.configPath); !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("expected configuration error for log level, got %v", err)
	}
	if _, _, err := runCLI(t, []string{"token", "--timeout=-1s"}, env.configPath); !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("expected configuration error for timeout, got %v", err)
	}
}

func TestExportCommandRefusesConcurrentRun(t *testing.T) {
	api := testsupport.NewFakeAPI(t)
	seedSingleSubject(api)
	cfg := testsupport.NewConfig(t, testsupport.WithBaseURL(api.BaseURL()))
	env := setupCLITestEnv(t, cfg)

	held, err := runlock.Acquire(cfg.Paths.StateDir, cfg.Output.Dir)
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	defer held.Release()

	_, _, err = runCLI(t, []string{"token"}, env.configPath)
	if !errors.Is(err, runlock.ErrBusy) {
		t.Fatalf("expected ErrBusy, got %v", err)
	}
	if len(api.Requests()) != 0 {
		t.Fatalf("no requests expected while locked, got %v", api.Requests())
	}
}
