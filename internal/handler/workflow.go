package handler

import (
    "errors"
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/movie-ticket-booking/internal/booking"
    "github.com/iliyamo/movie-ticket-booking/internal/catalog"
    "github.com/iliyamo/movie-ticket-booking/internal/identity"
    "github.com/iliyamo/movie-ticket-booking/internal/model"
    "github.com/iliyamo/movie-ticket-booking/internal/payment"
)

// WorkflowHandler drives the booking state machine from HTTP.  Each
// authenticated user owns one session in the registry; every endpoint
// dispatches an action into it and returns the resulting snapshot.
//
// The machine itself tolerates any sequence of actions; this layer is
// the strict caller.  Endpoints that need upstream state check
// State.ReadyFor first and answer 409 "session expired" when it is
// missing, which is the recovery path the client renders.
type WorkflowHandler struct {
    Sessions *booking.Registry
    Store    catalog.Store
    Gateway  payment.Gateway
    Identity *identity.Service
}

// NewWorkflowHandler constructs a WorkflowHandler.  All dependencies
// except Identity must be non-nil.
func NewWorkflowHandler(sessions *booking.Registry, store catalog.Store, gateway payment.Gateway, id *identity.Service) *WorkflowHandler {
    if sessions == nil || store == nil || gateway == nil {
        panic("nil dependency passed to NewWorkflowHandler")
    }
    return &WorkflowHandler{Sessions: sessions, Store: store, Gateway: gateway, Identity: id}
}

// session resolves the caller's booking session from the JWT subject.
func (h *WorkflowHandler) session(c echo.Context) (*booking.Session, string, error) {
    userID, err := getUserID(c)
    if err != nil {
        return nil, "", err
    }
    return h.Sessions.Get(userID), userID, nil
}

// stateBody is the snapshot shape every workflow endpoint responds with.
func stateBody(s booking.State) echo.Map {
    return echo.Map{
        "state": s,
        "total": s.TotalAmount(),
    }
}

// sessionExpired is the guard failure response: the aggregate lacks the
// upstream state the requested step needs, so the client should offer a
// path back to the start.
func sessionExpired(c echo.Context) error {
    return c.JSON(http.StatusConflict, echo.Map{"error": "session expired"})
}

// GetState handles GET /v1/booking.
func (h *WorkflowHandler) GetState(c echo.Context) error {
    sess, _, err := h.session(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    return c.JSON(http.StatusOK, stateBody(sess.Snapshot()))
}

// SelectMovie handles POST /v1/booking/movie with body {"movie_id"}.
// Selecting a movie always succeeds and invalidates any downstream
// showtime and seat selections.
func (h *WorkflowHandler) SelectMovie(c echo.Context) error {
    sess, _, err := h.session(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    var body struct {
        MovieID string `json:"movie_id"`
    }
    if err := c.Bind(&body); err != nil || body.MovieID == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "movie_id is required"})
    }
    movie, err := h.Store.GetMovie(c.Request().Context(), body.MovieID)
    if errors.Is(err, catalog.ErrMovieNotFound) {
        return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
    }
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load movie"})
    }
    state, _ := sess.Dispatch(booking.SelectMovie{Movie: movie})
    return c.JSON(http.StatusOK, stateBody(state))
}

// SelectShowTime handles POST /v1/booking/showtime with body
// {"showtime_id"}.  The machine does not validate ownership or
// availability, so this caller does: the showtime must belong to the
// selected movie and still have open seats.
func (h *WorkflowHandler) SelectShowTime(c echo.Context) error {
    sess, _, err := h.session(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    var body struct {
        ShowTimeID string `json:"showtime_id"`
    }
    if err := c.Bind(&body); err != nil || body.ShowTimeID == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "showtime_id is required"})
    }
    snap := sess.Snapshot()
    if !snap.ReadyFor(booking.StepShowTimes) {
        return sessionExpired(c)
    }
    show, err := h.Store.GetShowTime(c.Request().Context(), body.ShowTimeID)
    if errors.Is(err, catalog.ErrShowTimeNotFound) {
        return c.JSON(http.StatusNotFound, echo.Map{"error": "showtime not found"})
    }
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load showtime"})
    }
    if show.MovieID != snap.SelectedMovie.ID {
        return c.JSON(http.StatusConflict, echo.Map{"error": "showtime does not belong to selected movie"})
    }
    if !show.Bookable() {
        return c.JSON(http.StatusConflict, echo.Map{"error": "showtime is sold out"})
    }
    state, _ := sess.Dispatch(booking.SelectShowTime{ShowTime: show})
    return c.JSON(http.StatusOK, stateBody(state))
}

// ToggleSeat handles POST /v1/booking/seats/toggle.  The body is the
// seat as rendered in the layout snapshot the client fetched.  A seat
// already in the selection is removed; otherwise it is added, subject
// to the selection cap and the booked-seat rule.  The seat price must
// match the showtime's price table for its type — the layout is the
// only pricing source and a mismatch means a stale or tampered payload.
func (h *WorkflowHandler) ToggleSeat(c echo.Context) error {
    sess, _, err := h.session(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    var seat model.Seat
    if err := c.Bind(&seat); err != nil || seat.ID == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid seat"})
    }
    snap := sess.Snapshot()
    if !snap.ReadyFor(booking.StepSeats) {
        return sessionExpired(c)
    }
    expected := snap.SelectedShowTime.Pricing.Regular
    if seat.Type == model.SeatPremium {
        expected = snap.SelectedShowTime.Pricing.Premium
    }
    if seat.Price != expected {
        return c.JSON(http.StatusConflict, echo.Map{"error": "seat price does not match showtime pricing"})
    }
    state, applied := sess.ToggleSeat(seat)
    if !applied {
        if seat.Status == model.SeatBooked {
            return c.JSON(http.StatusConflict, echo.Map{"error": "seat already booked"})
        }
        return c.JSON(http.StatusConflict, echo.Map{"error": "seat limit reached"})
    }
    return c.JSON(http.StatusOK, stateBody(state))
}

// ClearSeats handles POST /v1/booking/seats/clear.
func (h *WorkflowHandler) ClearSeats(c echo.Context) error {
    sess, _, err := h.session(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    state, _ := sess.Dispatch(booking.ClearSeats{})
    return c.JSON(http.StatusOK, stateBody(state))
}

// SetStep handles POST /v1/booking/step with body {"step"}.  Used for
// re-entry when navigating back; already-selected seats survive.  The
// guard rejects steps the aggregate has no state for.
func (h *WorkflowHandler) SetStep(c echo.Context) error {
    sess, _, err := h.session(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    var body struct {
        Step booking.Step `json:"step"`
    }
    if err := c.Bind(&body); err != nil || !booking.ValidStep(body.Step) {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid step"})
    }
    if !sess.Snapshot().ReadyFor(body.Step) {
        return sessionExpired(c)
    }
    state, _ := sess.Dispatch(booking.SetStep{Step: body.Step})
    return c.JSON(http.StatusOK, stateBody(state))
}

// Summary handles GET /v1/booking/summary.  It moves the session to
// the summary step and returns everything the review screen shows,
// including the identity for display.
func (h *WorkflowHandler) Summary(c echo.Context) error {
    sess, userID, err := h.session(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    snap := sess.Snapshot()
    if !snap.ReadyFor(booking.StepSummary) {
        return sessionExpired(c)
    }
    state, _ := sess.Dispatch(booking.SetStep{Step: booking.StepSummary})
    body := echo.Map{
        "movie":    state.SelectedMovie,
        "showtime": state.SelectedShowTime,
        "seats":    state.SelectedSeats,
        "total":    state.TotalAmount(),
        "step":     state.Step,
    }
    if h.Identity != nil {
        if user, err := h.Identity.Current(c.Request().Context(), userID); err == nil {
            body["user"] = user
        }
    }
    return c.JSON(http.StatusOK, body)
}

// Pay handles POST /v1/booking/pay with optional body
// {"idempotency_key"}.  It finalizes the details from the current
// aggregate, runs the simulated gateway, and on success dispatches
// ConfirmBooking.  On any failure the aggregate is left unchanged so
// the user can retry.
func (h *WorkflowHandler) Pay(c echo.Context) error {
    sess, userID, err := h.session(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    var body struct {
        IdempotencyKey string `json:"idempotency_key"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    snap := sess.Snapshot()
    if !snap.ReadyFor(booking.StepSummary) {
        return sessionExpired(c)
    }
    details := model.BookingDetails{
        MovieID:       snap.SelectedMovie.ID,
        ShowTimeID:    snap.SelectedShowTime.ID,
        SelectedSeats: snap.SelectedSeats,
        TotalAmount:   snap.TotalAmount(),
    }
    result, err := h.Gateway.Submit(c.Request().Context(), body.IdempotencyKey, userID, details)
    if errors.Is(err, payment.ErrSeatsUnavailable) {
        return c.JSON(http.StatusConflict, echo.Map{"error": "seats no longer available"})
    }
    if errors.Is(err, payment.ErrDuplicateSubmission) {
        return c.JSON(http.StatusConflict, echo.Map{"error": "payment already in progress"})
    }
    if err != nil {
        return c.JSON(http.StatusBadGateway, echo.Map{"error": "payment failed"})
    }
    state, _ := sess.Dispatch(booking.ConfirmBooking{Details: details})
    return c.JSON(http.StatusCreated, echo.Map{
        "booking": result,
        "state":   state,
        "total":   details.TotalAmount,
    })
}

// Reset handles POST /v1/booking/reset, returning the aggregate to its
// initial state after a completed or abandoned booking.
func (h *WorkflowHandler) Reset(c echo.Context) error {
    sess, _, err := h.session(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    state, _ := sess.Dispatch(booking.ResetBooking{})
    return c.JSON(http.StatusOK, stateBody(state))
}
