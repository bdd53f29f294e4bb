package model

// Movie describes a film in the catalog.  Movies are either currently
// running (bookable through showtimes) or upcoming.  The rating is a
// running average maintained by the rating aggregator and is only
// meaningful when TotalRatings is greater than zero.
//
// Fields:
//  ID           – catalog identifier.
//  Title        – display title.
//  Genre        – comma separated genre list.
//  DurationMin  – runtime in minutes, always positive.
//  Rating       – average rating out of 5, one decimal place.
//  TotalRatings – number of ratings aggregated so far.
//  Language     – primary audio language.
//  Description  – short synopsis.
//  IsUpcoming   – true for movies without bookable showtimes.
//  ReleaseDate  – release date in YYYY-MM-DD form.
type Movie struct {
    ID           string  `json:"id"`
    Title        string  `json:"title"`
    Genre        string  `json:"genre"`
    DurationMin  uint32  `json:"duration"`
    Rating       float64 `json:"rating"`
    TotalRatings uint32  `json:"total_ratings"`
    Language     string  `json:"language"`
    Description  string  `json:"description"`
    IsUpcoming   bool    `json:"is_upcoming"`
    ReleaseDate  string  `json:"release_date"`
}
