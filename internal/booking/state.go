// Package booking holds the ticket-reservation workflow core: the
// aggregate state, the pure reducer over it, and the single-writer
// session that owns one aggregate for the duration of a booking.
package booking

import "github.com/iliyamo/movie-ticket-booking/internal/model"

// Step is the current stage of the booking workflow.  Steps advance in
// a fixed forward order; seats and summary may be re-entered when the
// user navigates back.
type Step string

const (
    StepMovies       Step = "movies"
    StepShowTimes    Step = "showtimes"
    StepSeats        Step = "seats"
    StepSummary      Step = "summary"
    StepConfirmation Step = "confirmation"
)

// ValidStep reports whether s names one of the workflow steps.
func ValidStep(s Step) bool {
    switch s {
    case StepMovies, StepShowTimes, StepSeats, StepSummary, StepConfirmation:
        return true
    }
    return false
}

// MaxSelectedSeats caps how many seats one session may select.
const MaxSelectedSeats = 10

// State is the booking aggregate: the only mutable entity in the core.
// It is owned exclusively by a Session and lives for one booking
// session; an explicit ResetBooking action returns it to the initial
// value.
//
// Fields:
//  SelectedMovie    – movie chosen on the movies step, nil before that.
//  SelectedShowTime – showtime chosen for the movie, nil before that.
//  SelectedSeats    – ordered seat set, unique by ID, at most
//                     MaxSelectedSeats entries.
//  Details          – finalized booking, set by ConfirmBooking.
//  Step             – current workflow stage.
type State struct {
    SelectedMovie    *model.Movie          `json:"selected_movie"`
    SelectedShowTime *model.ShowTime       `json:"selected_showtime"`
    SelectedSeats    []model.Seat          `json:"selected_seats"`
    Details          *model.BookingDetails `json:"booking_details"`
    Step             Step                  `json:"step"`
}

// NewState returns the initial aggregate: nothing selected, step movies.
func NewState() State {
    return State{Step: StepMovies}
}

// TotalAmount is the derived price of the current selection: the sum of
// seat prices.  It is never stored; recomputing keeps it from going
// stale.  An empty selection totals zero, and the sum does not depend
// on selection order.
func (s State) TotalAmount() uint32 {
    var total uint32
    for _, seat := range s.SelectedSeats {
        total += seat.Price
    }
    return total
}

// HasSeat reports whether a seat with the given ID is in the selection.
func (s State) HasSeat(id string) bool {
    for _, seat := range s.SelectedSeats {
        if seat.ID == id {
            return true
        }
    }
    return false
}

// ReadyFor reports whether the aggregate carries enough upstream state
// to legally be on the given step.  The machine itself never enforces
// this; presentation guards call it and render a session-expired
// recovery path when it fails.
func (s State) ReadyFor(step Step) bool {
    switch step {
    case StepMovies:
        return true
    case StepShowTimes:
        return s.SelectedMovie != nil
    case StepSeats:
        return s.SelectedMovie != nil && s.SelectedShowTime != nil
    case StepSummary:
        return s.SelectedMovie != nil && s.SelectedShowTime != nil && len(s.SelectedSeats) > 0
    case StepConfirmation:
        return s.Details != nil
    }
    return false
}

// clone returns a deep copy so that snapshots handed to subscribers and
// callers cannot alias the aggregate's seat slices.
func (s State) clone() State {
    out := s
    if s.SelectedMovie != nil {
        m := *s.SelectedMovie
        out.SelectedMovie = &m
    }
    if s.SelectedShowTime != nil {
        st := *s.SelectedShowTime
        out.SelectedShowTime = &st
    }
    if s.SelectedSeats != nil {
        out.SelectedSeats = append([]model.Seat(nil), s.SelectedSeats...)
    }
    if s.Details != nil {
        d := *s.Details
        d.SelectedSeats = append([]model.Seat(nil), s.Details.SelectedSeats...)
        out.Details = &d
    }
    return out
}

// equal compares the parts of two states that actions can change.  It
// is how a Session decides whether a dispatch was applied or silently
// declined.
func equal(a, b State) bool {
    if a.Step != b.Step {
        return false
    }
    if (a.SelectedMovie == nil) != (b.SelectedMovie == nil) {
        return false
    }
    if a.SelectedMovie != nil && a.SelectedMovie.ID != b.SelectedMovie.ID {
        return false
    }
    if (a.SelectedShowTime == nil) != (b.SelectedShowTime == nil) {
        return false
    }
    if a.SelectedShowTime != nil && a.SelectedShowTime.ID != b.SelectedShowTime.ID {
        return false
    }
    if (a.Details == nil) != (b.Details == nil) {
        return false
    }
    if a.Details != nil {
        if a.Details.MovieID != b.Details.MovieID ||
            a.Details.ShowTimeID != b.Details.ShowTimeID ||
            a.Details.TotalAmount != b.Details.TotalAmount {
            return false
        }
    }
    if len(a.SelectedSeats) != len(b.SelectedSeats) {
        return false
    }
    for i := range a.SelectedSeats {
        if a.SelectedSeats[i].ID != b.SelectedSeats[i].ID {
            return false
        }
    }
    return true
}
