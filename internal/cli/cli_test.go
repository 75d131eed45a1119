package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/boxorbit/pkg/config"
	"github.com/matzehuels/boxorbit/pkg/layout"
)

func execute(t *testing.T, c *CLI, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := c.RootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := New(&bytes.Buffer{}, log.InfoLevel).RootCommand()
	want := []string{"render", "view", "serve", "inspect", "legend", "config", "cache", "completion", "version"}
	for _, name := range want {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestConfigCommandPrintsLoadableTOML(t *testing.T) {
	out, err := execute(t, New(&bytes.Buffer{}, log.InfoLevel), "config")
	if err != nil {
		t.Fatal(err)
	}
	var cfg config.Config
	if _, err := toml.Decode(out, &cfg); err != nil {
		t.Fatalf("output is not TOML: %v\n%s", err, out)
	}
	if cfg.Geometry.HubRadius != config.Default().Geometry.HubRadius {
		t.Errorf("hub radius = %v", cfg.Geometry.HubRadius)
	}
}

func TestConfigFlagOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	if err := os.WriteFile(path, []byte("[geometry]\nmax_radius = 600\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := execute(t, New(&bytes.Buffer{}, log.InfoLevel), "config", "--config", path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "max_radius = 600") {
		t.Errorf("overlay missing from output:\n%s", out)
	}
}

func TestConfigFlagMissingFile(t *testing.T) {
	_, err := execute(t, New(&bytes.Buffer{}, log.InfoLevel), "config", "--config", "/nonexistent/boxorbit.toml")
	if err == nil {
		t.Fatal("expected error for missing config")
	}
}

func TestRenderLegend(t *testing.T) {
	pal, err := layout.NewPalette(config.Default().Palette)
	if err != nil {
		t.Fatal(err)
	}
	entries := layout.Legend(pal)
	out := renderLegend(entries)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != len(entries) {
		t.Fatalf("%d lines, want %d", len(lines), len(entries))
	}
	if !strings.Contains(lines[0], layout.FranchiseLegend) {
		t.Errorf("first line = %q, want franchise entry", lines[0])
	}
}

func TestRenderCommandRejectsFormat(t *testing.T) {
	_, err := execute(t, New(&bytes.Buffer{}, log.InfoLevel), "render", "films.csv", "-f", "pdf", "--no-cache")
	if err == nil || !strings.Contains(err.Error(), "pdf") {
		t.Errorf("err = %v, want invalid format", err)
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, New(&bytes.Buffer{}, log.InfoLevel), "version")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"version:", "commit:", "go:"} {
		if !strings.Contains(out, want) {
			t.Errorf("version output missing %q:\n%s", want, out)
		}
	}
}
