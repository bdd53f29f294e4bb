package model

// SeatType distinguishes the two price classes of a seat.
type SeatType string

const (
    SeatRegular SeatType = "regular"
    SeatPremium SeatType = "premium"
)

// SeatStatus is the occupancy state of a seat within one layout
// snapshot.  "selected" is a client-local overlay meaning chosen in the
// current session but not yet confirmed; it is never persisted.  A
// "booked" seat can never become "selected".
type SeatStatus string

const (
    SeatAvailable SeatStatus = "available"
    SeatBooked    SeatStatus = "booked"
    SeatSelected  SeatStatus = "selected"
)

// Seat is one position in a screen layout.  The ID is derived from the
// row letter and column number (e.g. "A1") and is unique within a
// layout.  Price always matches the showtime pricing table for the
// seat's type.
type Seat struct {
    ID     string     `json:"id"`
    Row    string     `json:"row"`
    Number uint32     `json:"number"`
    Type   SeatType   `json:"type"`
    Status SeatStatus `json:"status"`
    Price  uint32     `json:"price"`
}
