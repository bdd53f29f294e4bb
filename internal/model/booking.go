package model

// BookingDetails are the finalized contents of one booking session,
// computed by the caller from the workflow state at confirmation time.
// TotalAmount always equals the sum of the selected seat prices.
type BookingDetails struct {
    MovieID       string `json:"movie_id"`
    ShowTimeID    string `json:"showtime_id"`
    SelectedSeats []Seat `json:"selected_seats"`
    TotalAmount   uint32 `json:"total_amount"`
    UserRating    uint32 `json:"user_rating,omitempty"`
}

// BookingResult is the outcome of submitting a booking to the payment
// gateway.  Timestamp is in RFC3339 form.
type BookingResult struct {
    BookingID string `json:"booking_id"`
    Status    string `json:"status"`
    Timestamp string `json:"timestamp"`
}
