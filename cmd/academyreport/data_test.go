package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "academy.json")
	data := `{
		"players": [{"id": 7, "name": "Ahmad", "age": 12}],
		"groups": [{"id": 3, "name": "U12-B", "players": [{"id": 7, "name": "Ahmad"}]}],
		"evaluations": [{"playerId": 7, "evaluatedAt": "2025-05-20T10:00:00Z", "scores": {"Passing": 5}}]
	}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	ds, err := loadDataset(path)
	if err != nil {
		t.Fatalf("loadDataset: %v", err)
	}

	p, err := ds.player(7)
	if err != nil {
		t.Fatal(err)
	}
	if p.Name != "Ahmad" || p.Age != 12 {
		t.Errorf("player = %+v", p)
	}

	g, err := ds.group(3)
	if err != nil {
		t.Fatal(err)
	}
	if g.Name != "U12-B" || len(g.Players) != 1 {
		t.Errorf("group = %+v", g)
	}

	if _, err := ds.player(99); err == nil {
		t.Error("expected an error for an unknown player id")
	}
	if len(ds.Evaluations) != 1 || ds.Evaluations[0].Scores["Passing"] != 5 {
		t.Errorf("evaluations = %+v", ds.Evaluations)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "academyreport.toml")
	data := `
[fonts]
dir = "fonts"

[branding]
logo = "assets/logo.png"
letterhead = "assets/letterhead.pdf"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Fonts.Dir != "fonts" {
		t.Errorf("fonts.dir = %q", cfg.Fonts.Dir)
	}
	if cfg.Branding.Logo != "assets/logo.png" || cfg.Branding.Letterhead != "assets/letterhead.pdf" {
		t.Errorf("branding = %+v", cfg.Branding)
	}
}

func TestLoadConfigMissingExplicitPath(t *testing.T) {
	if _, err := loadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("an explicit config path must exist")
	}
}
