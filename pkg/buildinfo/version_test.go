package buildinfo

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	old := Version
	Version = "v9.9.9"
	t.Cleanup(func() { Version = old })

	s := String()
	for _, want := range []string{"version: v9.9.9", "commit: ", "go: go"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q:\n%s", want, s)
		}
	}
	if !strings.Contains(Template(), "v9.9.9") {
		t.Errorf("Template() = %q", Template())
	}
}
