// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingConfirmedEvent is published when a booking submission is
// confirmed.  It carries enough for downstream consumers to log or
// notify without querying the catalog.
type BookingConfirmedEvent struct {
    BookingID   string   `json:"booking_id"`
    UserID      string   `json:"user_id"`
    MovieID     string   `json:"movie_id"`
    MovieTitle  string   `json:"movie_title,omitempty"`
    ShowTimeID  string   `json:"showtime_id"`
    ScreenName  string   `json:"screen_name,omitempty"`
    Date        string   `json:"date,omitempty"`
    Time        string   `json:"time,omitempty"`
    SeatLabels  []string `json:"seats"`
    TotalAmount uint32   `json:"total_amount"`
    ConfirmedAt string   `json:"confirmed_at"`
}
