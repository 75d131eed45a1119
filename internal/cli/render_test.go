package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/boxorbit/pkg/errors"
	"github.com/matzehuels/boxorbit/pkg/pipeline"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty defaults to svg", "", []string{"svg"}},
		{"single format", "png", []string{"png"}},
		{"multiple formats", "json,svg,webp", []string{"json", "svg", "webp"}},
		{"spaces and case", " JSON , Png", []string{"json", "png"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, parseFormats(tt.input)); diff != "" {
				t.Errorf("parseFormats(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		output, source, want string
	}{
		{"", "data/films.csv", "films"},
		{"", "-", "orbit"},
		{"", "https://example.com/films.csv", "orbit"},
		{"out/scene.png", "films.csv", "out/scene"},
		{"out/scene.json", "films.csv", "out/scene"},
		{"out/scene", "films.csv", "out/scene"},
		{"out/scene.v2", "films.csv", "out/scene.v2"},
	}

	for _, tt := range tests {
		if got := basePath(tt.output, tt.source); got != tt.want {
			t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.source, got, tt.want)
		}
	}
}

func TestOutputPaths(t *testing.T) {
	tests := []struct {
		name    string
		formats []string
		output  string
		want    map[string]string
	}{
		{
			name:    "single format uses output verbatim",
			formats: []string{"png"},
			output:  "poster.image",
			want:    map[string]string{"png": "poster.image"},
		},
		{
			name:    "single format without output",
			formats: []string{"svg"},
			want:    map[string]string{"svg": "films.svg"},
		},
		{
			name:    "multiple formats share a base",
			formats: []string{"json", "webp"},
			output:  "out/orbit.json",
			want:    map[string]string{"json": "out/orbit.json", "webp": "out/orbit.webp"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := outputPaths(tt.formats, tt.output, "films.csv")
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("outputPaths mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWriteArtifacts(t *testing.T) {
	dir := t.TempDir()
	artifacts := map[string][]byte{
		pipeline.FormatJSON: []byte(`{}`),
		pipeline.FormatSVG:  []byte(`<svg/>`),
	}
	base := filepath.Join(dir, "nested", "orbit")

	paths, err := writeArtifacts(artifacts, []string{"json", "svg"}, base, "films.csv")
	if err != nil {
		t.Fatalf("writeArtifacts: %v", err)
	}
	want := []string{base + ".json", base + ".svg"}
	if diff := cmp.Diff(want, paths); diff != "" {
		t.Errorf("paths mismatch (-want +got):\n%s", diff)
	}
	data, err := os.ReadFile(base + ".svg")
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "<svg/>" {
		t.Errorf("svg content = %q", data)
	}
}

func TestWriteArtifactsRejectsDirectory(t *testing.T) {
	_, err := writeArtifacts(map[string][]byte{"svg": nil}, []string{"svg"}, "out/", "films.csv")
	if !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("err = %v, want INVALID_PATH", err)
	}
}
