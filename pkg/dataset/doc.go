// Package dataset loads the box-office film table.
//
// A dataset is a CSV file with a header row. Columns are looked up by name
// with documented fallbacks, so partially conforming files still load:
//
//	Title            Title, title
//	Worldwide_Gross  Worldwide_Gross, Gross
//	Main_Genre       Main_Genre, Genre   (text before the first "/")
//	IMDb_Rating      IMDb_Rating, rating
//	Year             Year
//	Franchise        Franchise, franchise
//	IsFranchise      Is_Franchise, is_franchise, Franchise_Flag, isFranchise,
//	                 franchise_flag, IsSeries
//
// Numbers are coerced leniently (see [ParseNumber]) and missing fields fall
// back to defaults, so one malformed row never blocks the whole table. The
// only fatal conditions are an unreadable source, a non-success HTTP status
// and a CSV without a header.
//
// Records are immutable once loaded; a [Dataset] is the whole working set of
// one rendering pass.
package dataset
