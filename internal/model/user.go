package model

// User is the identity record shown on the summary and payment views.
// The booking workflow itself never gates on identity; route middleware
// does.  PasswordHash is a bcrypt hash and never leaves the server.
type User struct {
    ID           string `json:"id"`
    Email        string `json:"email"`
    Name         string `json:"name"`
    Mobile       string `json:"mobile"`
    PasswordHash string `json:"-"`
}
