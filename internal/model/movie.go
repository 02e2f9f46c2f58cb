package model

// Movie represents one ranked movie on the site.  This struct corresponds to
// a row in the `movies` table.  Rating and Ranking are stored as strings so
// that an empty value can mean "not set yet"; Ranking is cast to an integer
// when used as a sort key.
type Movie struct {
	ID          int64  // movies.id
	Title       string // movies.title, unique
	Year        int    // movies.year
	Description string // movies.description
	Rating      string // movies.rating
	Ranking     string // movies.ranking, listing sort key
	Review      string // movies.review
	ImgURL      string // movies.img_url
}
