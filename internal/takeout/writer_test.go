package takeout_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"takeout/internal/jsonvalue"
	"takeout/internal/services"
	"takeout/internal/takeout"
)

func TestWriteJSONCreatesParentsAndIndents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "averages.json")
	v := jsonvalue.MustParse(`{"gemiddelden":[{"cijfer":7.50}],"naam":"Frans & Duits"}`)
	if err := takeout.WriteJSON(path, v); err != nil {
		t.Fatalf("WriteJSON returned error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	want := "{\n  \"gemiddelden\": [\n    {\n      \"cijfer\": 7.50\n    }\n  ],\n  \"naam\": \"Frans & Duits\"\n}"
	if string(data) != want {
		t.Fatalf("unexpected output:\n%s", data)
	}
}

func TestWriteJSONOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grades.json")
	if err := os.WriteFile(path, []byte(`[1,2,3,4,5,6,7,8,9,10,11,12]`), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := takeout.WriteJSON(path, jsonvalue.MustParse(`[]`)); err != nil {
		t.Fatalf("WriteJSON returned error: %v", err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "[]" {
		t.Fatalf("expected truncated file, got %q", data)
	}
}

func TestWriteJSONFilesystemError(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	err := takeout.WriteJSON(filepath.Join(blocker, "child.json"), jsonvalue.Null())
	if !errors.Is(err, services.ErrFilesystem) {
		t.Fatalf("expected filesystem error, got %v", err)
	}
}

func TestUnwrapItems(t *testing.T) {
	got := takeout.UnwrapItems(jsonvalue.MustParse(`{"items":[1,2,3],"totaal":3}`))
	if !jsonvalue.Equal(got, jsonvalue.MustParse(`[1,2,3]`)) {
		t.Fatal("expected items to be unwrapped")
	}
	averages := jsonvalue.MustParse(`{"gemiddelden":[1]}`)
	if !jsonvalue.Equal(takeout.UnwrapItems(averages), averages) {
		t.Fatal("expected object without items to pass through")
	}
	list := jsonvalue.MustParse(`[{"items":1}]`)
	if !jsonvalue.Equal(takeout.UnwrapItems(list), list) {
		t.Fatal("expected array to pass through")
	}
}
