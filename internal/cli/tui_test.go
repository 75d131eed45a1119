package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/boxorbit/pkg/dataset"
	"github.com/matzehuels/boxorbit/pkg/layout"
)

func testPlacements() []layout.Placement {
	films := []dataset.FilmRecord{
		{Title: "Alpha", Year: 2012, ImdbRating: 7.1, WorldwideGross: 9e8, MainGenre: "Action"},
		{Title: "Beta", Year: 2009, ImdbRating: 8.4, WorldwideGross: 2.8e9, MainGenre: "Sci-Fi", IsFranchise: true},
		{Title: "Gamma", Year: 2019, ImdbRating: 6.2, WorldwideGross: 4e8, MainGenre: "Comedy"},
	}
	out := make([]layout.Placement, len(films))
	for i, f := range films {
		out[i] = layout.Placement{Film: f, Genre: f.MainGenre, Ring: f.IsFranchise}
	}
	return out
}

func key(s string) tea.KeyMsg {
	switch s {
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestSortedOrder(t *testing.T) {
	ps := testPlacements()
	tests := []struct {
		by   placementSort
		want []int
	}{
		{sortDataset, []int{0, 1, 2}},
		{sortYear, []int{1, 0, 2}},
		{sortRating, []int{1, 0, 2}},
		{sortGross, []int{1, 0, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.by.String(), func(t *testing.T) {
			if diff := cmp.Diff(tt.want, sortedOrder(ps, tt.by)); diff != "" {
				t.Errorf("order mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPlacementListNavigation(t *testing.T) {
	var m tea.Model = NewPlacementListModel(testPlacements())

	m, _ = m.Update(key("down"))
	m, _ = m.Update(key("down"))
	m, _ = m.Update(key("down")) // clamped at the last row
	if got := m.(PlacementListModel).Cursor; got != 2 {
		t.Errorf("cursor = %d, want 2", got)
	}

	m, _ = m.Update(key("up"))
	if got := m.(PlacementListModel).Cursor; got != 1 {
		t.Errorf("cursor = %d, want 1", got)
	}

	m, _ = m.Update(key("s"))
	pl := m.(PlacementListModel)
	if pl.Sort != sortYear || pl.Cursor != 0 {
		t.Errorf("after sort: sort=%s cursor=%d, want year/0", pl.Sort, pl.Cursor)
	}

	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Error("q should quit")
	}
}

func TestPlacementListScrolls(t *testing.T) {
	var m tea.Model = NewPlacementListModel(testPlacements())
	m, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 1})
	pl := m.(PlacementListModel)
	if pl.Height != 5 {
		t.Errorf("height = %d, want minimum 5", pl.Height)
	}
}

func TestPlacementListView(t *testing.T) {
	view := NewPlacementListModel(testPlacements()).View()
	for _, want := range []string{"Film Placements", "Alpha", "Beta", "$2.80B", "[1/3]"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestFormatGross(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{2.8e9, "$2.80B"},
		{410.3e6, "$410.3M"},
		{52e3, "$52K"},
		{0, "$0"},
	}
	for _, tt := range tests {
		if got := formatGross(tt.v); got != tt.want {
			t.Errorf("formatGross(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}
