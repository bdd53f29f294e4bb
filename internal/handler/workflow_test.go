package handler

import (
    "context"
    "encoding/json"
    "fmt"
    "net/http"
    "net/http/httptest"
    "strings"
    "testing"

    "github.com/labstack/echo/v4"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/iliyamo/movie-ticket-booking/internal/booking"
    "github.com/iliyamo/movie-ticket-booking/internal/catalog"
    "github.com/iliyamo/movie-ticket-booking/internal/payment"
)

func newTestWorkflow() *WorkflowHandler {
    store := catalog.NewMemoryStore(catalog.MemoryConfig{})
    gw := payment.NewSimulatedGateway(store, payment.NewMemoryKeyStore(), nil, 0)
    return NewWorkflowHandler(booking.NewRegistry(), store, gw, nil)
}

// call runs one handler with an authenticated context and returns the
// recorder plus the decoded JSON body.
func call(t *testing.T, h func(echo.Context) error, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
    t.Helper()
    e := echo.New()
    var req *http.Request
    if body == "" {
        req = httptest.NewRequest(method, path, nil)
    } else {
        req = httptest.NewRequest(method, path, strings.NewReader(body))
        req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
    }
    rec := httptest.NewRecorder()
    c := e.NewContext(req, rec)
    c.Set("user_id", "u1")
    require.NoError(t, h(c))
    var decoded map[string]any
    require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
    return rec, decoded
}

func TestGetStateStartsAtMovies(t *testing.T) {
    h := newTestWorkflow()
    rec, body := call(t, h.GetState, http.MethodGet, "/v1/booking", "")
    assert.Equal(t, http.StatusOK, rec.Code)
    state := body["state"].(map[string]any)
    assert.Equal(t, "movies", state["step"])
    assert.EqualValues(t, 0, body["total"])
}

func TestSelectMovieUnknownID(t *testing.T) {
    h := newTestWorkflow()
    rec, body := call(t, h.SelectMovie, http.MethodPost, "/v1/booking/movie", `{"movie_id":"999"}`)
    assert.Equal(t, http.StatusNotFound, rec.Code)
    assert.Equal(t, "movie not found", body["error"])
}

func TestGuardRejectsSkippingAhead(t *testing.T) {
    h := newTestWorkflow()

    rec, body := call(t, h.SetStep, http.MethodPost, "/v1/booking/step", `{"step":"seats"}`)
    assert.Equal(t, http.StatusConflict, rec.Code)
    assert.Equal(t, "session expired", body["error"])

    rec, body = call(t, h.Summary, http.MethodGet, "/v1/booking/summary", "")
    assert.Equal(t, http.StatusConflict, rec.Code)
    assert.Equal(t, "session expired", body["error"])

    rec, body = call(t, h.Pay, http.MethodPost, "/v1/booking/pay", `{}`)
    assert.Equal(t, http.StatusConflict, rec.Code)
    assert.Equal(t, "session expired", body["error"])
}

func TestSetStepRejectsUnknownStep(t *testing.T) {
    h := newTestWorkflow()
    rec, body := call(t, h.SetStep, http.MethodPost, "/v1/booking/step", `{"step":"checkout"}`)
    assert.Equal(t, http.StatusBadRequest, rec.Code)
    assert.Equal(t, "invalid step", body["error"])
}

func TestShowTimeMustBelongToSelectedMovie(t *testing.T) {
    h := newTestWorkflow()
    rec, _ := call(t, h.SelectMovie, http.MethodPost, "/v1/booking/movie", `{"movie_id":"1"}`)
    require.Equal(t, http.StatusOK, rec.Code)

    // st3 belongs to movie 2
    rec, body := call(t, h.SelectShowTime, http.MethodPost, "/v1/booking/showtime", `{"showtime_id":"st3"}`)
    assert.Equal(t, http.StatusConflict, rec.Code)
    assert.Equal(t, "showtime does not belong to selected movie", body["error"])
}

func TestToggleSeatRejectsPriceMismatch(t *testing.T) {
    h := newTestWorkflow()
    call(t, h.SelectMovie, http.MethodPost, "/v1/booking/movie", `{"movie_id":"1"}`)
    call(t, h.SelectShowTime, http.MethodPost, "/v1/booking/showtime", `{"showtime_id":"st1"}`)

    seat := `{"id":"A1","row":"A","number":1,"type":"premium","status":"available","price":200}`
    rec, body := call(t, h.ToggleSeat, http.MethodPost, "/v1/booking/seats/toggle", seat)
    assert.Equal(t, http.StatusConflict, rec.Code)
    assert.Equal(t, "seat price does not match showtime pricing", body["error"])
}

func TestToggleSeatRejectsBookedSeat(t *testing.T) {
    h := newTestWorkflow()
    call(t, h.SelectMovie, http.MethodPost, "/v1/booking/movie", `{"movie_id":"1"}`)
    call(t, h.SelectShowTime, http.MethodPost, "/v1/booking/showtime", `{"showtime_id":"st1"}`)

    seat := `{"id":"A1","row":"A","number":1,"type":"premium","status":"booked","price":250}`
    rec, body := call(t, h.ToggleSeat, http.MethodPost, "/v1/booking/seats/toggle", seat)
    assert.Equal(t, http.StatusConflict, rec.Code)
    assert.Equal(t, "seat already booked", body["error"])
}

func TestFullBookingFlow(t *testing.T) {
    h := newTestWorkflow()

    rec, body := call(t, h.SelectMovie, http.MethodPost, "/v1/booking/movie", `{"movie_id":"1"}`)
    require.Equal(t, http.StatusOK, rec.Code)
    state := body["state"].(map[string]any)
    assert.Equal(t, "showtimes", state["step"])

    rec, body = call(t, h.SelectShowTime, http.MethodPost, "/v1/booking/showtime", `{"showtime_id":"st1"}`)
    require.Equal(t, http.StatusOK, rec.Code)
    state = body["state"].(map[string]any)
    assert.Equal(t, "seats", state["step"])

    premium := `{"id":"A1","row":"A","number":1,"type":"premium","status":"available","price":250}`
    regular := `{"id":"D4","row":"D","number":4,"type":"regular","status":"available","price":200}`
    rec, body = call(t, h.ToggleSeat, http.MethodPost, "/v1/booking/seats/toggle", premium)
    require.Equal(t, http.StatusOK, rec.Code)
    rec, body = call(t, h.ToggleSeat, http.MethodPost, "/v1/booking/seats/toggle", regular)
    require.Equal(t, http.StatusOK, rec.Code)
    assert.EqualValues(t, 450, body["total"])

    rec, body = call(t, h.Summary, http.MethodGet, "/v1/booking/summary", "")
    require.Equal(t, http.StatusOK, rec.Code)
    assert.Equal(t, "summary", body["step"])
    assert.EqualValues(t, 450, body["total"])
    assert.Len(t, body["seats"], 2)

    rec, body = call(t, h.Pay, http.MethodPost, "/v1/booking/pay", `{"idempotency_key":"k1"}`)
    require.Equal(t, http.StatusCreated, rec.Code)
    result := body["booking"].(map[string]any)
    assert.True(t, strings.HasPrefix(result["booking_id"].(string), "BK"))
    assert.Equal(t, "confirmed", result["status"])
    state = body["state"].(map[string]any)
    assert.Equal(t, "confirmation", state["step"])

    rec, body = call(t, h.Reset, http.MethodPost, "/v1/booking/reset", "")
    require.Equal(t, http.StatusOK, rec.Code)
    state = body["state"].(map[string]any)
    assert.Equal(t, "movies", state["step"])
    assert.EqualValues(t, 0, body["total"])
}

func TestPayConflictsWhenSeatTaken(t *testing.T) {
    store := catalog.NewMemoryStore(catalog.MemoryConfig{})
    gw := payment.NewSimulatedGateway(store, payment.NewMemoryKeyStore(), nil, 0)
    h := NewWorkflowHandler(booking.NewRegistry(), store, gw, nil)

    call(t, h.SelectMovie, http.MethodPost, "/v1/booking/movie", `{"movie_id":"1"}`)
    call(t, h.SelectShowTime, http.MethodPost, "/v1/booking/showtime", `{"showtime_id":"st1"}`)
    seat := `{"id":"A1","row":"A","number":1,"type":"premium","status":"available","price":250}`
    call(t, h.ToggleSeat, http.MethodPost, "/v1/booking/seats/toggle", seat)

    // another booking grabs A1 before this user pays
    require.NoError(t, store.MarkBooked(context.Background(), "st1", []string{"A1"}))

    rec, body := call(t, h.Pay, http.MethodPost, "/v1/booking/pay", `{}`)
    assert.Equal(t, http.StatusConflict, rec.Code)
    assert.Equal(t, "seats no longer available", body["error"])
}

func TestSeatSelectionCapOverHTTP(t *testing.T) {
    h := newTestWorkflow()
    call(t, h.SelectMovie, http.MethodPost, "/v1/booking/movie", `{"movie_id":"1"}`)
    call(t, h.SelectShowTime, http.MethodPost, "/v1/booking/showtime", `{"showtime_id":"st1"}`)

    for i := 1; i <= booking.MaxSelectedSeats; i++ {
        seat := fmt.Sprintf(`{"id":"D%d","row":"D","number":%d,"type":"regular","status":"available","price":200}`, i, i)
        rec, _ := call(t, h.ToggleSeat, http.MethodPost, "/v1/booking/seats/toggle", seat)
        require.Equal(t, http.StatusOK, rec.Code)
    }
    extra := `{"id":"E1","row":"E","number":1,"type":"regular","status":"available","price":200}`
    rec, body := call(t, h.ToggleSeat, http.MethodPost, "/v1/booking/seats/toggle", extra)
    assert.Equal(t, http.StatusConflict, rec.Code)
    assert.Equal(t, "seat limit reached", body["error"])
}
