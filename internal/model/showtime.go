package model

// Pricing is the per-showtime price table.  Every seat in a layout is
// priced from exactly one of these two amounts depending on its type;
// there is no other source of seat prices.
type Pricing struct {
    Regular uint32 `json:"regular"`
    Premium uint32 `json:"premium"`
}

// ShowTime is a scheduled screening of a movie on a specific screen.
//
// Fields:
//  ID             – showtime identifier.
//  MovieID        – owning movie.
//  Date           – screening date in YYYY-MM-DD form.
//  Time           – time of day in HH:MM form.
//  ScreenID       – auditorium identifier.
//  ScreenName     – auditorium display name.
//  AvailableSeats – seats still open; never exceeds TotalSeats.
//  TotalSeats     – capacity of the screen.
//  Pricing        – regular/premium price table for this showtime.
//
// A showtime with zero AvailableSeats is unbookable.
type ShowTime struct {
    ID             string  `json:"id"`
    MovieID        string  `json:"movie_id"`
    Date           string  `json:"date"`
    Time           string  `json:"time"`
    ScreenID       string  `json:"screen_id"`
    ScreenName     string  `json:"screen_name"`
    AvailableSeats uint32  `json:"available_seats"`
    TotalSeats     uint32  `json:"total_seats"`
    Pricing        Pricing `json:"pricing"`
}

// Bookable reports whether seats can still be selected for this showtime.
func (s ShowTime) Bookable() bool {
    return s.AvailableSeats > 0
}
