package catalog

import (
    "fmt"
    "math/rand"

    "github.com/iliyamo/movie-ticket-booking/internal/model"
)

// PremiumRows is how many front rows of every layout are premium.
const PremiumRows = 3

// DefaultBookedRate is the chance a seat starts out booked when
// occupancy is simulated rather than looked up.
const DefaultBookedRate = 0.15

const rowLabels = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Occupancy answers whether a seat starts out booked in a generated
// layout.  The random implementation is a simulation stand-in for a
// real occupancy source; a store-backed FixedOccupancy makes layouts
// deterministic across fetches.
type Occupancy interface {
    Booked(seatID string) bool
}

// RandomOccupancy marks each seat booked with probability Rate.
type RandomOccupancy struct {
    Rate float64
    Rand *rand.Rand
}

// Booked rolls once per seat.
func (o RandomOccupancy) Booked(string) bool {
    if o.Rand == nil {
        return rand.Float64() < o.Rate
    }
    return o.Rand.Float64() < o.Rate
}

// FixedOccupancy is an explicit booked-seat set.
type FixedOccupancy map[string]bool

// Booked reports membership in the set.
func (o FixedOccupancy) Booked(seatID string) bool {
    return o[seatID]
}

// GenerateLayout builds a rows x seatsPerRow seat matrix for a screen.
// Row labels run A, B, C, ... and columns 1..seatsPerRow; the first
// PremiumRows rows are premium and the rest regular.  Every seat is
// priced from the showtime pricing table for its type, and its initial
// status comes from the occupancy source.  rows is capped at the
// alphabet length.
func GenerateLayout(screenID, screenName string, rows, seatsPerRow int, pricing model.Pricing, occ Occupancy) model.Screen {
    if rows < 0 {
        rows = 0
    }
    if rows > len(rowLabels) {
        rows = len(rowLabels)
    }
    if seatsPerRow < 0 {
        seatsPerRow = 0
    }
    seats := make([][]model.Seat, 0, rows)
    for i := 0; i < rows; i++ {
        label := string(rowLabels[i])
        row := make([]model.Seat, 0, seatsPerRow)
        for n := 1; n <= seatsPerRow; n++ {
            seatType := model.SeatRegular
            price := pricing.Regular
            if i < PremiumRows {
                seatType = model.SeatPremium
                price = pricing.Premium
            }
            id := fmt.Sprintf("%s%d", label, n)
            status := model.SeatAvailable
            if occ != nil && occ.Booked(id) {
                status = model.SeatBooked
            }
            row = append(row, model.Seat{
                ID:     id,
                Row:    label,
                Number: uint32(n),
                Type:   seatType,
                Status: status,
                Price:  price,
            })
        }
        seats = append(seats, row)
    }
    return model.Screen{
        ID:          screenID,
        Name:        screenName,
        Rows:        uint32(rows),
        SeatsPerRow: uint32(seatsPerRow),
        Seats:       seats,
    }
}
