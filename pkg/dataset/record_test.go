package dataset

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"100", 100},
		{"$1,234,567", 1234567},
		{"8.1", 8.1},
		{" 7.5 ", 7.5},
		{"-3", -3},
		{"", 0},
		{"n/a", 0},
		{"-", 0},
		{"1.2.3", 0},
		{"2.1B", 2.1},
	}

	for _, tt := range tests {
		if got := ParseNumber(tt.in); got != tt.want {
			t.Errorf("ParseNumber(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseYear(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"2019", 2019},
		{" 1997 ", 1997},
		{"2019 (US)", 2019},
		{"", DefaultYear},
		{"unknown", DefaultYear},
	}

	for _, tt := range tests {
		if got := ParseYear(tt.in); got != tt.want {
			t.Errorf("ParseYear(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseBool(t *testing.T) {
	for _, s := range []string{"1", "y", "Y", "yes", "YES", "true", "True", "t", " T "} {
		if !ParseBool(s) {
			t.Errorf("ParseBool(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"", "0", "no", "false", "f", "franchise", "2"} {
		if ParseBool(s) {
			t.Errorf("ParseBool(%q) = true, want false", s)
		}
	}
}

func TestMainGenre(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Action/Adventure", "Action"},
		{"Drama", "Drama"},
		{" Sci-Fi / Action", "Sci-Fi"},
		{"/Comedy", DefaultGenre},
	}
	for _, tt := range tests {
		if got := MainGenre(tt.in); got != tt.want {
			t.Errorf("MainGenre(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFromRow(t *testing.T) {
	tests := []struct {
		name string
		row  Row
		want FilmRecord
	}{
		{
			name: "primary columns",
			row: Row{
				"Title": "Avatar", "Worldwide_Gross": "$2,923,706,026", "Main_Genre": "Action/Adventure",
				"IMDb_Rating": "7.9", "Year": "2009", "Franchise": "Avatar", "Is_Franchise": "yes",
			},
			want: FilmRecord{
				Title: "Avatar", WorldwideGross: 2923706026, MainGenre: "Action",
				ImdbRating: 7.9, Year: 2009, Franchise: "Avatar", IsFranchise: true,
			},
		},
		{
			name: "fallback columns",
			row:  Row{"title": "Frozen", "Gross": "1280000000", "Genre": "Animation", "rating": "7.4", "franchise": "Frozen", "IsSeries": "t"},
			want: FilmRecord{
				Title: "Frozen", WorldwideGross: 1280000000, MainGenre: "Animation",
				ImdbRating: 7.4, Year: DefaultYear, Franchise: "Frozen", IsFranchise: true,
			},
		},
		{
			name: "empty row takes defaults",
			row:  Row{},
			want: FilmRecord{Title: DefaultTitle, MainGenre: DefaultGenre, Year: DefaultYear, Franchise: DefaultFranchise},
		},
		{
			name: "malformed numbers degrade to zero",
			row:  Row{"Title": "Broken", "Worldwide_Gross": "unknown", "IMDb_Rating": "n/a", "Year": "soon"},
			want: FilmRecord{Title: "Broken", MainGenre: DefaultGenre, Year: DefaultYear, Franchise: DefaultFranchise},
		},
		{
			name: "negative gross is clamped",
			row:  Row{"Title": "Refund", "Worldwide_Gross": "-5"},
			want: FilmRecord{Title: "Refund", MainGenre: DefaultGenre, Year: DefaultYear, Franchise: DefaultFranchise},
		},
		{
			name: "empty primary falls back to alias",
			row:  Row{"Title": "", "title": "Lowercase"},
			want: FilmRecord{Title: "Lowercase", MainGenre: DefaultGenre, Year: DefaultYear, Franchise: DefaultFranchise},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, FromRow(tt.row)); diff != "" {
				t.Errorf("FromRow() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFranchiseFlagPriority(t *testing.T) {
	tests := []struct {
		name string
		row  Row
		want bool
	}{
		{"first alias wins over later", Row{"Is_Franchise": "no", "IsSeries": "yes"}, false},
		{"later alias used when earlier missing", Row{"franchise_flag": "1"}, true},
		{"empty earlier alias skipped", Row{"Is_Franchise": "", "Franchise_Flag": "TRUE"}, true},
		{"no alias present", Row{"Franchise": "Marvel"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromRow(tt.row).IsFranchise; got != tt.want {
				t.Errorf("IsFranchise = %v, want %v", got, tt.want)
			}
		})
	}
}
