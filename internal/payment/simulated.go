package payment

import (
    "context"
    "log"
    "strings"
    "time"

    "github.com/google/uuid"

    "github.com/iliyamo/movie-ticket-booking/internal/catalog"
    "github.com/iliyamo/movie-ticket-booking/internal/model"
    "github.com/iliyamo/movie-ticket-booking/internal/queue"
)

// SimulatedGateway is the fixed-latency stand-in for a real payment and
// booking backend.  It re-checks seat occupancy at submission time,
// marks seats booked through the catalog store on success, and notifies
// the sink.  No automatic retry: a failure surfaces once.
type SimulatedGateway struct {
    Store     catalog.Store
    Keys      KeyStore
    Publisher Publisher // optional; nil skips notification
    Latency   time.Duration
}

// NewSimulatedGateway constructs the gateway.  Store and Keys must be
// non-nil.
func NewSimulatedGateway(store catalog.Store, keys KeyStore, pub Publisher, latency time.Duration) *SimulatedGateway {
    if store == nil || keys == nil {
        panic("nil dependency passed to NewSimulatedGateway")
    }
    return &SimulatedGateway{Store: store, Keys: keys, Publisher: pub, Latency: latency}
}

// Submit processes one booking.  An empty key gets a generated one, so
// every submission is tracked; a repeated key returns the original
// result without booking or publishing a second time.
func (g *SimulatedGateway) Submit(ctx context.Context, key, userID string, details model.BookingDetails) (model.BookingResult, error) {
    if key == "" {
        key = uuid.NewString()
    }
    ok, err := g.Keys.Begin(ctx, key)
    if err != nil {
        return model.BookingResult{}, err
    }
    if !ok {
        if prev, found, err := g.Keys.Result(ctx, key); err != nil {
            return model.BookingResult{}, err
        } else if found {
            return prev, nil
        }
        return model.BookingResult{}, ErrDuplicateSubmission
    }

    result, err := g.process(ctx, userID, details)
    if err != nil {
        // Free the key so the caller can retry the same submission.
        if relErr := g.Keys.Release(ctx, key); relErr != nil {
            log.Printf("payment: release idempotency key failed: %v", relErr)
        }
        return model.BookingResult{}, err
    }
    if err := g.Keys.Complete(ctx, key, result); err != nil {
        log.Printf("payment: store idempotency result failed: %v", err)
    }
    return result, nil
}

func (g *SimulatedGateway) process(ctx context.Context, userID string, details model.BookingDetails) (model.BookingResult, error) {
    if err := g.wait(ctx); err != nil {
        return model.BookingResult{}, err
    }

    // The layout the user selected from may be stale: re-check every
    // seat against the occupancy source before confirming.
    occupied, err := g.Store.OccupiedSeats(ctx, details.ShowTimeID)
    if err != nil {
        return model.BookingResult{}, err
    }
    seatIDs := make([]string, 0, len(details.SelectedSeats))
    for _, seat := range details.SelectedSeats {
        if occupied[seat.ID] {
            return model.BookingResult{}, ErrSeatsUnavailable
        }
        seatIDs = append(seatIDs, seat.ID)
    }

    if err := g.Store.MarkBooked(ctx, details.ShowTimeID, seatIDs); err != nil {
        return model.BookingResult{}, err
    }

    result := model.BookingResult{
        BookingID: newBookingID(),
        Status:    "confirmed",
        Timestamp: time.Now().UTC().Format(time.RFC3339),
    }

    if g.Publisher != nil {
        event := queue.BookingConfirmedEvent{
            BookingID:   result.BookingID,
            UserID:      userID,
            MovieID:     details.MovieID,
            ShowTimeID:  details.ShowTimeID,
            SeatLabels:  seatIDs,
            TotalAmount: details.TotalAmount,
            ConfirmedAt: result.Timestamp,
        }
        // Display fields are best effort; the booking is already
        // confirmed and a catalog failure here must not undo it.
        if movie, err := g.Store.GetMovie(ctx, details.MovieID); err == nil {
            event.MovieTitle = movie.Title
        }
        if show, err := g.Store.GetShowTime(ctx, details.ShowTimeID); err == nil {
            event.ScreenName = show.ScreenName
            event.Date = show.Date
            event.Time = show.Time
        }
        if err := g.Publisher.PublishBookingConfirmed(ctx, event); err != nil {
            log.Printf("payment: publish booking event failed: %v", err)
        }
    }
    return result, nil
}

// wait simulates the payment round trip and aborts on cancellation.
func (g *SimulatedGateway) wait(ctx context.Context) error {
    if g.Latency <= 0 {
        return ctx.Err()
    }
    t := time.NewTimer(g.Latency)
    defer t.Stop()
    select {
    case <-ctx.Done():
        return ctx.Err()
    case <-t.C:
        return nil
    }
}

// newBookingID produces the BK-prefixed confirmation code shown on the
// ticket.
func newBookingID() string {
    raw := strings.ReplaceAll(uuid.NewString(), "-", "")
    return "BK" + strings.ToUpper(raw[:12])
}
