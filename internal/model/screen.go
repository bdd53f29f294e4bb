package model

// Screen is one auditorium configuration: a rectangular seat matrix of
// Rows x SeatsPerRow.  Dimensions are fixed at generation time; a layout
// is an independent snapshot and carries no state across fetches.
type Screen struct {
    ID          string   `json:"id"`
    Name        string   `json:"name"`
    Rows        uint32   `json:"rows"`
    SeatsPerRow uint32   `json:"seats_per_row"`
    Seats       [][]Seat `json:"seats"`
}
