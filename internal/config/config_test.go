package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"tilesystem/internal/pixel"
)

const sampleConfig = `
log_level: debug
jobs:
  - name: grass
    source: art/grass.png
    layout: extended
    tile_width: 32
    inner_joins: true
    border: 2
    color_key: "#FF00FF"
  - name: water
    source: art/water.png
    tile_width: 16
    tile_height: 16
    output: out/water_atlas.png
server:
  addr: ":2300"
  map: maps
  jobs: [water]
`

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(sampleConfig))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Level() != slog.LevelDebug {
		t.Errorf("Level = %v, want debug", cfg.Level())
	}
	if len(cfg.Jobs) != 2 {
		t.Fatalf("got %d jobs, want 2", len(cfg.Jobs))
	}

	grass := cfg.Jobs[0]
	if grass.TileHeight != 32 {
		t.Errorf("grass tile_height defaulted to %d, want 32", grass.TileHeight)
	}
	if grass.Output != "grass.png" {
		t.Errorf("grass output = %q, want grass.png", grass.Output)
	}
	key, err := grass.Key()
	if err != nil || key == nil || *key != pixel.Magenta {
		t.Errorf("grass key = %v, %v; want magenta", key, err)
	}
	opts := grass.Options()
	if !opts.InnerJoins || opts.BorderSize != 2 || opts.TileWidth != 32 {
		t.Errorf("grass options = %+v", opts)
	}

	water := cfg.Jobs[1]
	if water.Layout != "basic" {
		t.Errorf("water layout defaulted to %q, want basic", water.Layout)
	}
	if k, _ := water.Key(); k != nil {
		t.Errorf("water key = %v, want nil", k)
	}

	if cfg.Server.Addr != ":2300" || cfg.Server.HostKey != defaultHostKey {
		t.Errorf("server = %+v", cfg.Server)
	}
	jobs := cfg.ServerJobs()
	if len(jobs) != 1 || jobs[0].Name != "water" {
		t.Errorf("ServerJobs = %+v, want [water]", jobs)
	}
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse([]byte("{}"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.LogLevel != "info" || cfg.Server.Addr != defaultAddr || cfg.Server.HostKey != defaultHostKey {
		t.Errorf("defaults not applied: %+v", cfg)
	}
	if d := Default(); d.Server.Addr != cfg.Server.Addr {
		t.Errorf("Default addr = %q, want %q", d.Server.Addr, cfg.Server.Addr)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		yaml  string
		field string
	}{
		{"bad log level", "log_level: loud", "log_level"},
		{"missing name", "jobs: [{source: a.png, tile_width: 8}]", "jobs[0].name"},
		{"missing source", "jobs: [{name: a, tile_width: 8}]", "jobs[0].source"},
		{"bad layout", "jobs: [{name: a, source: a.png, tile_width: 8, layout: hex}]", "jobs[0].layout"},
		{"odd tile", "jobs: [{name: a, source: a.png, tile_width: 7}]", "jobs[0].tile_width"},
		{"zero tile", "jobs: [{name: a, source: a.png}]", "jobs[0].tile_width"},
		{"bad key", "jobs: [{name: a, source: a.png, tile_width: 8, color_key: pink}]", "jobs[0].color_key"},
		{"duplicate", "jobs: [{name: a, source: a.png, tile_width: 8}, {name: a, source: b.png, tile_width: 8}]", "jobs[1].name"},
		{"unknown server job", "server: {jobs: [nope]}", "server.jobs[0]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			var fe *FieldError
			if !errors.As(err, &fe) {
				t.Fatalf("err = %v, want *FieldError", err)
			}
			if fe.Field != tt.field {
				t.Errorf("field = %q, want %q", fe.Field, tt.field)
			}
		})
	}
}

func TestParseMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("jobs: [oops"))
	if err == nil {
		t.Fatal("expected error")
	}
	var fe *FieldError
	if errors.As(err, &fe) {
		t.Errorf("syntax error reported as field error: %v", err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultPath)
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, ok := cfg.Job("grass"); !ok {
		t.Error("job grass not found")
	}
	if _, err := Load(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file err = %v, want ErrNotExist", err)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    pixel.Color
		wantErr bool
	}{
		{"#FF00FF", pixel.Magenta, false},
		{"00ff00", pixel.RGB(0, 255, 0), false},
		{"#12345", pixel.Color{}, true},
		{"#GG0000", pixel.Color{}, true},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseColor(%q) err = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
