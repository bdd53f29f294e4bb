package booking

import (
    "sync"

    "github.com/iliyamo/movie-ticket-booking/internal/model"
)

// Session owns one booking aggregate and serializes all access to it.
// The aggregate is single-writer by construction: every dispatch runs
// the reducer under the session mutex, so no two actions ever
// interleave.  Observers receive state snapshots through Subscribe
// rather than reading ambient shared state.
type Session struct {
    mu    sync.Mutex
    state State
    subs  map[int]chan State
    next  int
}

// NewSession returns a session holding the initial aggregate.
func NewSession() *Session {
    return &Session{
        state: NewState(),
        subs:  make(map[int]chan State),
    }
}

// Dispatch applies one action through the reducer.  It returns the
// resulting snapshot and whether the action changed the state; a
// declined seat selection (limit reached, seat booked) comes back
// unchanged with applied=false so callers can surface a user-visible
// message.
func (s *Session) Dispatch(a Action) (State, bool) {
    s.mu.Lock()
    defer s.mu.Unlock()
    prev := s.state
    s.state = Reduce(s.state, a)
    applied := !equal(prev, s.state)
    snap := s.state.clone()
    if applied {
        // Delivery stays under the lock so a concurrent Unsubscribe
        // cannot close a channel mid-send.  The sends never block: a
        // slow subscriber drops the update instead of stalling the
        // writer.
        for _, ch := range s.subs {
            select {
            case ch <- snap:
            default:
            }
        }
    }
    return snap, applied
}

// ToggleSeat implements the idempotent toggle the seat map requires:
// it branches on membership so a seat already in the selection is
// removed and any other seat is added.  The add path keeps the
// reducer's decline rules.
func (s *Session) ToggleSeat(seat model.Seat) (State, bool) {
    s.mu.Lock()
    selected := s.state.HasSeat(seat.ID)
    s.mu.Unlock()
    if selected {
        return s.Dispatch(DeselectSeat{SeatID: seat.ID})
    }
    return s.Dispatch(SelectSeat{Seat: seat})
}

// Snapshot returns a deep copy of the current aggregate.
func (s *Session) Snapshot() State {
    s.mu.Lock()
    defer s.mu.Unlock()
    return s.state.clone()
}

// Subscribe registers an observer and returns its id and a buffered
// channel of state snapshots.  Updates that would block are dropped.
func (s *Session) Subscribe() (int, <-chan State) {
    s.mu.Lock()
    defer s.mu.Unlock()
    id := s.next
    s.next++
    ch := make(chan State, 8)
    s.subs[id] = ch
    return id, ch
}

// Unsubscribe removes an observer and closes its channel.
func (s *Session) Unsubscribe(id int) {
    s.mu.Lock()
    defer s.mu.Unlock()
    if ch, ok := s.subs[id]; ok {
        delete(s.subs, id)
        close(ch)
    }
}

// Registry hands out one Session per user.  The system models a single
// logical booking session per identity; the session survives step
// navigation and is only reset by an explicit ResetBooking.
type Registry struct {
    mu       sync.Mutex
    sessions map[string]*Session
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
    return &Registry{sessions: make(map[string]*Session)}
}

// Get returns the session for a user, creating it on first use.
func (r *Registry) Get(userID string) *Session {
    r.mu.Lock()
    defer r.mu.Unlock()
    sess, ok := r.sessions[userID]
    if !ok {
        sess = NewSession()
        r.sessions[userID] = sess
    }
    return sess
}
