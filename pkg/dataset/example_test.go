package dataset_test

import (
	"fmt"
	"strings"

	"github.com/matzehuels/boxorbit/pkg/dataset"
)

func ExampleParse() {
	csv := "Title,Gross,Genre,rating,Year,IsSeries\n" +
		"\"Movie, Inc.\",\"$100\",Comedy/Drama,6.5,2012,yes\n"

	films, err := dataset.Parse(strings.NewReader(csv))
	if err != nil {
		panic(err)
	}
	f := films[0]
	fmt.Println(f.Title, f.WorldwideGross, f.MainGenre, f.ImdbRating, f.Year, f.IsFranchise)
	// Output: Movie, Inc. 100 Comedy 6.5 2012 true
}
