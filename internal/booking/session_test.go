package booking

import (
    "fmt"
    "sync"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/iliyamo/movie-ticket-booking/internal/model"
)

func seededSession() *Session {
    sess := NewSession()
    sess.Dispatch(SelectMovie{Movie: testMovie("1")})
    sess.Dispatch(SelectShowTime{ShowTime: testShowTime("st1", "1")})
    return sess
}

func TestToggleSeatAddsThenRemoves(t *testing.T) {
    sess := seededSession()

    state, applied := sess.ToggleSeat(premiumSeat("A1"))
    require.True(t, applied)
    assert.True(t, state.HasSeat("A1"))

    state, applied = sess.ToggleSeat(premiumSeat("A1"))
    require.True(t, applied)
    assert.False(t, state.HasSeat("A1"))
}

func TestToggleSeatDeclines(t *testing.T) {
    sess := seededSession()

    booked := regularSeat("F1")
    booked.Status = "booked"
    _, applied := sess.ToggleSeat(booked)
    assert.False(t, applied)

    for i := 0; i < MaxSelectedSeats; i++ {
        _, applied := sess.ToggleSeat(regularSeat(fmt.Sprintf("G%d", i+1)))
        require.True(t, applied)
    }
    _, applied = sess.ToggleSeat(regularSeat("H1"))
    assert.False(t, applied)
}

func TestDispatchReportsUnchangedState(t *testing.T) {
    sess := seededSession()
    _, applied := sess.Dispatch(DeselectSeat{SeatID: "absent"})
    assert.False(t, applied)
}

func TestSubscribeReceivesSnapshots(t *testing.T) {
    sess := seededSession()
    id, ch := sess.Subscribe()
    defer sess.Unsubscribe(id)

    sess.ToggleSeat(premiumSeat("A1"))

    select {
    case snap := <-ch:
        assert.True(t, snap.HasSeat("A1"))
    case <-time.After(time.Second):
        t.Fatal("no snapshot delivered")
    }

    // Declined dispatches do not notify.
    booked := regularSeat("F9")
    booked.Status = "booked"
    sess.ToggleSeat(booked)
    select {
    case snap := <-ch:
        t.Fatalf("unexpected snapshot: %+v", snap)
    case <-time.After(50 * time.Millisecond):
    }
}

func TestSnapshotDoesNotAliasAggregate(t *testing.T) {
    sess := seededSession()
    sess.ToggleSeat(premiumSeat("A1"))

    snap := sess.Snapshot()
    snap.SelectedSeats[0].ID = "mutated"

    assert.True(t, sess.Snapshot().HasSeat("A1"))
}

func TestConcurrentTogglesStayConsistent(t *testing.T) {
    sess := seededSession()

    var wg sync.WaitGroup
    for i := 0; i < 25; i++ {
        wg.Add(1)
        go func(n int) {
            defer wg.Done()
            sess.ToggleSeat(regularSeat(fmt.Sprintf("E%d", n+1)))
        }(i)
    }
    wg.Wait()

    state := sess.Snapshot()
    assert.LessOrEqual(t, len(state.SelectedSeats), MaxSelectedSeats)
    seen := make(map[string]bool)
    for _, seat := range state.SelectedSeats {
        assert.False(t, seen[seat.ID])
        seen[seat.ID] = true
    }
}

func TestUnsubscribeDuringDispatch(t *testing.T) {
    sess := seededSession()

    var wg sync.WaitGroup
    for i := 0; i < 8; i++ {
        wg.Add(1)
        go func() {
            defer wg.Done()
            for j := 0; j < 50; j++ {
                id, ch := sess.Subscribe()
                go func() {
                    for range ch {
                    }
                }()
                sess.Unsubscribe(id)
            }
        }()
    }
    for i := 0; i < 8; i++ {
        wg.Add(1)
        go func(n int) {
            defer wg.Done()
            for j := 0; j < 50; j++ {
                sess.ToggleSeat(regularSeat(fmt.Sprintf("E%d", n+1)))
            }
        }(i)
    }
    wg.Wait()
}

func TestDispatchReportsReplacedDetails(t *testing.T) {
    sess := seededSession()
    sess.ToggleSeat(premiumSeat("A1"))

    first := model.BookingDetails{MovieID: "1", ShowTimeID: "st1", TotalAmount: 250}
    _, applied := sess.Dispatch(ConfirmBooking{Details: first})
    require.True(t, applied)

    second := model.BookingDetails{MovieID: "1", ShowTimeID: "st1", TotalAmount: 500}
    state, applied := sess.Dispatch(ConfirmBooking{Details: second})
    assert.True(t, applied)
    assert.EqualValues(t, 500, state.Details.TotalAmount)
}

func TestRegistryReturnsSameSessionPerUser(t *testing.T) {
    reg := NewRegistry()
    a := reg.Get("u1")
    b := reg.Get("u1")
    c := reg.Get("u2")
    assert.Same(t, a, b)
    assert.NotSame(t, a, c)
}
