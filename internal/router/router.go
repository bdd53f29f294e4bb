package router // registers the booking API's HTTP routes

import (
    "github.com/labstack/echo/v4" // Echo web framework

    "github.com/iliyamo/movie-ticket-booking/internal/handler"    // request handlers
    "github.com/iliyamo/movie-ticket-booking/internal/middleware" // JWT middleware
)

// RegisterRoutes registers routes that do not require authentication.
// Currently that is only the health check, used by load balancers and
// monitoring to verify the service is up.
func RegisterRoutes(e *echo.Echo) {
    e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the identity endpoints.  Register, login and
// logout live under /v1/auth and need no token; /v1/me sits behind the
// JWT middleware so the summary and payment views can show the
// authenticated identity.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
    g := e.Group("/v1/auth")
    g.POST("/register", a.Register)
    g.POST("/login", a.Login)
    g.POST("/logout", a.Logout)

    auth := e.Group("/v1")
    auth.Use(middleware.JWTAuth(jwtSecret))
    auth.GET("/me", a.Me)
}

// RegisterBrowse registers the unauthenticated catalog endpoints:
// movies, a movie's showtimes and a showtime's seat layout snapshot,
// plus rating submission.  Guests can browse before logging in; only
// the booking workflow itself is gated.
func RegisterBrowse(e *echo.Echo, b *handler.BrowseHandler, r *handler.RatingHandler) {
    e.GET("/v1/movies", b.GetMovies)
    e.GET("/v1/movies/:id", b.GetMovie)
    e.GET("/v1/movies/:id/showtimes", b.GetShowTimes)
    e.GET("/v1/showtimes/:id/seats", b.GetSeatLayout)
    e.POST("/v1/movies/:id/rating", r.SubmitRating)
}

// RegisterWorkflow registers the protected booking-workflow endpoints.
// Every route dispatches into the caller's booking session; the JWT
// middleware supplies the user id that keys the session registry.
func RegisterWorkflow(e *echo.Echo, w *handler.WorkflowHandler, jwtSecret string) {
    g := e.Group("/v1/booking")
    g.Use(middleware.JWTAuth(jwtSecret))
    g.GET("", w.GetState)
    g.POST("/movie", w.SelectMovie)
    g.POST("/showtime", w.SelectShowTime)
    g.POST("/seats/toggle", w.ToggleSeat)
    g.POST("/seats/clear", w.ClearSeats)
    g.POST("/step", w.SetStep)
    g.GET("/summary", w.Summary)
    g.POST("/pay", w.Pay)
    g.POST("/reset", w.Reset)
}
