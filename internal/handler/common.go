package handler

import (
    "errors"

    "github.com/labstack/echo/v4"
)

var errNoUser = errors.New("no user in context")

// getUserID extracts the authenticated user id the JWT middleware put
// in the context.  Handlers map a failure to 401.
func getUserID(c echo.Context) (string, error) {
    id, ok := c.Get("user_id").(string)
    if !ok || id == "" {
        return "", errNoUser
    }
    return id, nil
}
