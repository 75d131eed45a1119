package dataset

import (
	"strconv"
	"strings"
)

// Defaults applied when a field is missing or unparsable.
const (
	DefaultTitle     = "Untitled"
	DefaultGenre     = "Other"
	DefaultYear      = 2000
	DefaultFranchise = "Standalone"
)

// Column names and their fallbacks, consulted first to last.
var (
	titleKeys     = []string{"Title", "title"}
	grossKeys     = []string{"Worldwide_Gross", "Gross"}
	genreKeys     = []string{"Main_Genre", "Genre"}
	ratingKeys    = []string{"IMDb_Rating", "rating"}
	yearKeys      = []string{"Year"}
	franchiseKeys = []string{"Franchise", "franchise"}

	// FranchiseFlagKeys lists the boolean franchise columns in priority order.
	FranchiseFlagKeys = []string{"Is_Franchise", "is_franchise", "Franchise_Flag", "isFranchise", "franchise_flag", "IsSeries"}
)

// truthy is the token set accepted as true by franchise flags.
var truthy = map[string]bool{"1": true, "y": true, "yes": true, "true": true, "t": true}

// FilmRecord is one row of the dataset after coercion.
type FilmRecord struct {
	Title          string  `json:"title"`
	WorldwideGross float64 `json:"worldwide_gross"`
	MainGenre      string  `json:"main_genre"`
	ImdbRating     float64 `json:"imdb_rating"`
	Year           int     `json:"year"`
	Franchise      string  `json:"franchise"`
	IsFranchise    bool    `json:"is_franchise"`
}

// Row is a raw CSV row keyed by trimmed header name.
type Row map[string]string

// lookup returns the first non-empty value among keys.
func (r Row) lookup(keys []string) (string, bool) {
	for _, k := range keys {
		if v := r[k]; v != "" {
			return v, true
		}
	}
	return "", false
}

// FromRow coerces a raw row into a FilmRecord.
func FromRow(r Row) FilmRecord {
	f := FilmRecord{
		Title:     DefaultTitle,
		MainGenre: DefaultGenre,
		Year:      DefaultYear,
		Franchise: DefaultFranchise,
	}

	if v, ok := r.lookup(titleKeys); ok {
		f.Title = v
	}
	if v, ok := r.lookup(grossKeys); ok {
		f.WorldwideGross = max(ParseNumber(v), 0)
	}
	if v, ok := r.lookup(genreKeys); ok {
		f.MainGenre = MainGenre(v)
	}
	if v, ok := r.lookup(ratingKeys); ok {
		f.ImdbRating = ParseNumber(v)
	}
	if v, ok := r.lookup(yearKeys); ok {
		f.Year = ParseYear(v)
	}
	if v, ok := r.lookup(franchiseKeys); ok {
		f.Franchise = v
	}
	if v, ok := r.lookup(FranchiseFlagKeys); ok {
		f.IsFranchise = ParseBool(v)
	}
	return f
}

// ParseNumber strips every character except digits, '.' and '-' and parses
// the remainder. Anything unparsable, including the empty string, yields 0.
//
//	"$1,234,567" -> 1234567
//	"8.1/10"     -> 8.110 (the slash is dropped, not interpreted)
//	"n/a"        -> 0
func ParseNumber(s string) float64 {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return v
}

// ParseYear parses the leading integer of s ("2019 (US)" -> 2019).
// It returns DefaultYear when s has no leading integer.
func ParseYear(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	y, err := strconv.Atoi(s[:end])
	if err != nil {
		return DefaultYear
	}
	return y
}

// ParseBool reports whether s is one of the truthy tokens
// 1, y, yes, true, t (case-insensitive).
func ParseBool(s string) bool {
	return truthy[strings.ToLower(strings.TrimSpace(s))]
}

// MainGenre returns the text before the first "/" separator.
func MainGenre(s string) string {
	g, _, _ := strings.Cut(s, "/")
	if g = strings.TrimSpace(g); g == "" {
		return DefaultGenre
	}
	return g
}
