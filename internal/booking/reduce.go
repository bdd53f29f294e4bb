package booking

import "github.com/iliyamo/movie-ticket-booking/internal/model"

// Action is one workflow input.  The concrete types below are the only
// legal ways to change a State.
type Action interface {
    isAction()
}

// SelectMovie sets the movie and invalidates everything downstream:
// switching movies discards the showtime and seat selections because
// both depend on the movie.  Advances to the showtimes step.
type SelectMovie struct{ Movie model.Movie }

// SelectShowTime sets the showtime and discards the seat selection;
// seat layout and pricing differ per show.  Advances to the seats step.
// Whether the showtime belongs to the selected movie and still has open
// seats is the caller's precondition, not the reducer's.
type SelectShowTime struct{ ShowTime model.ShowTime }

// SelectSeat appends a seat to the selection.  Declined without any
// state change when the seat is already selected, already booked, or
// the selection is at MaxSelectedSeats.
type SelectSeat struct{ Seat model.Seat }

// DeselectSeat removes the seat with the given ID; no-op if absent.
type DeselectSeat struct{ SeatID string }

// ClearSeats empties the selection without changing the step.
type ClearSeats struct{}

// SetStep overrides the step directly.  Used for re-entry when
// navigating back; the reducer performs no legality check (guards are
// the caller's job, see State.ReadyFor).
type SetStep struct{ Step Step }

// ConfirmBooking stores the finalized details and advances to the
// confirmation step.  That movie, showtime and at least one seat are
// already selected is a caller precondition.
type ConfirmBooking struct{ Details model.BookingDetails }

// ResetBooking returns the aggregate to its initial empty state.
type ResetBooking struct{}

func (SelectMovie) isAction()    {}
func (SelectShowTime) isAction() {}
func (SelectSeat) isAction()     {}
func (DeselectSeat) isAction()   {}
func (ClearSeats) isAction()     {}
func (SetStep) isAction()        {}
func (ConfirmBooking) isAction() {}
func (ResetBooking) isAction()   {}

// Reduce is the workflow transition function: a pure (state, action) ->
// state mapping with no side effects, which makes every transition
// testable in isolation.  Unknown actions leave the state untouched.
func Reduce(s State, a Action) State {
    switch a := a.(type) {
    case SelectMovie:
        m := a.Movie
        s.SelectedMovie = &m
        s.SelectedShowTime = nil
        s.SelectedSeats = nil
        s.Step = StepShowTimes
        return s

    case SelectShowTime:
        st := a.ShowTime
        s.SelectedShowTime = &st
        s.SelectedSeats = nil
        s.Step = StepSeats
        return s

    case SelectSeat:
        if len(s.SelectedSeats) >= MaxSelectedSeats {
            return s
        }
        if a.Seat.Status == model.SeatBooked {
            return s
        }
        if s.HasSeat(a.Seat.ID) {
            return s
        }
        seats := append([]model.Seat(nil), s.SelectedSeats...)
        s.SelectedSeats = append(seats, a.Seat)
        return s

    case DeselectSeat:
        if !s.HasSeat(a.SeatID) {
            return s
        }
        seats := make([]model.Seat, 0, len(s.SelectedSeats)-1)
        for _, seat := range s.SelectedSeats {
            if seat.ID != a.SeatID {
                seats = append(seats, seat)
            }
        }
        s.SelectedSeats = seats
        return s

    case ClearSeats:
        s.SelectedSeats = nil
        return s

    case SetStep:
        s.Step = a.Step
        return s

    case ConfirmBooking:
        d := a.Details
        s.Details = &d
        s.Step = StepConfirmation
        return s

    case ResetBooking:
        return NewState()
    }
    return s
}
