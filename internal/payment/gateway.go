// Package payment simulates the booking submission endpoint: fixed
// latency, idempotency-key deduplication, and one modeled failure mode
// (seats taken between selection and submission).  Real payment
// processing is out of scope; the gateway always "charges" successfully
// once the seats check out.
package payment

import (
    "context"
    "errors"

    "github.com/iliyamo/movie-ticket-booking/internal/model"
    "github.com/iliyamo/movie-ticket-booking/internal/queue"
)

var (
    // ErrSeatsUnavailable means at least one selected seat was booked
    // by the time the submission ran.  The caller's aggregate is left
    // unchanged.
    ErrSeatsUnavailable = errors.New("seats no longer available")
    // ErrDuplicateSubmission means the idempotency key is currently in
    // flight on another submission.
    ErrDuplicateSubmission = errors.New("submission already in progress")
)

// Gateway accepts finalized booking details and returns the
// confirmation.  Submitting twice with the same idempotency key
// returns the first result without processing again.
type Gateway interface {
    Submit(ctx context.Context, key, userID string, details model.BookingDetails) (model.BookingResult, error)
}

// Publisher delivers the confirmed-booking event to the notification
// sink.  Publish failures never fail the booking.
type Publisher interface {
    PublishBookingConfirmed(ctx context.Context, event queue.BookingConfirmedEvent) error
}

// KeyStore tracks idempotency keys across submissions.
type KeyStore interface {
    // Begin marks a key as in flight.  ok is false when the key was
    // already used (in flight or completed).
    Begin(ctx context.Context, key string) (ok bool, err error)
    // Complete stores the final result for a key.
    Complete(ctx context.Context, key string, r model.BookingResult) error
    // Result returns the stored result for a completed key.
    Result(ctx context.Context, key string) (model.BookingResult, bool, error)
    // Release frees a key after a failed submission so the caller may
    // retry with the same key.
    Release(ctx context.Context, key string) error
}
