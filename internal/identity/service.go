package identity

import (
    "context"
    "errors"

    "github.com/google/uuid"

    "github.com/iliyamo/movie-ticket-booking/internal/model"
    "github.com/iliyamo/movie-ticket-booking/internal/utils"
)

var (
    // ErrEmailTaken is returned when signing up with a known email.
    ErrEmailTaken = errors.New("email already registered")
    // ErrInvalidCredentials is returned for a bad email/password pair.
    ErrInvalidCredentials = errors.New("invalid credentials")
)

// Service implements the identity operations over a UserStore.
type Service struct {
    users      UserStore
    jwtSecret  string
    accessTTL  int // minutes
    bcryptCost int
}

// NewService constructs a Service.  The store must be non-nil.
func NewService(users UserStore, jwtSecret string, accessTTLMin, bcryptCost int) *Service {
    if users == nil {
        panic("nil user store passed to identity.NewService")
    }
    return &Service{users: users, jwtSecret: jwtSecret, accessTTL: accessTTLMin, bcryptCost: bcryptCost}
}

// Signup registers a new user, persists it as the current identity and
// returns the user with a signed access token.
func (s *Service) Signup(ctx context.Context, name, email, mobile, password string) (model.User, utils.AccessToken, error) {
    if _, err := s.users.GetByEmail(ctx, email); err == nil {
        return model.User{}, utils.AccessToken{}, ErrEmailTaken
    } else if !errors.Is(err, ErrUserNotFound) {
        return model.User{}, utils.AccessToken{}, err
    }
    hash, err := utils.HashPassword(password, s.bcryptCost)
    if err != nil {
        return model.User{}, utils.AccessToken{}, err
    }
    u := model.User{
        ID:           uuid.NewString(),
        Email:        email,
        Name:         name,
        Mobile:       mobile,
        PasswordHash: hash,
    }
    if err := s.users.Create(ctx, u); err != nil {
        return model.User{}, utils.AccessToken{}, err
    }
    if err := s.users.SetSession(ctx, u); err != nil {
        return model.User{}, utils.AccessToken{}, err
    }
    tok, err := utils.NewAccessToken(s.jwtSecret, u.ID, "CUSTOMER", s.accessTTL)
    if err != nil {
        return model.User{}, utils.AccessToken{}, err
    }
    return u, tok, nil
}

// Login verifies credentials, persists the identity under the session
// key and returns the user with a signed access token.
func (s *Service) Login(ctx context.Context, email, password string) (model.User, utils.AccessToken, error) {
    u, err := s.users.GetByEmail(ctx, email)
    if errors.Is(err, ErrUserNotFound) {
        return model.User{}, utils.AccessToken{}, ErrInvalidCredentials
    }
    if err != nil {
        return model.User{}, utils.AccessToken{}, err
    }
    if !utils.VerifyPassword(u.PasswordHash, password) {
        return model.User{}, utils.AccessToken{}, ErrInvalidCredentials
    }
    if err := s.users.SetSession(ctx, u); err != nil {
        return model.User{}, utils.AccessToken{}, err
    }
    tok, err := utils.NewAccessToken(s.jwtSecret, u.ID, "CUSTOMER", s.accessTTL)
    if err != nil {
        return model.User{}, utils.AccessToken{}, err
    }
    return u, tok, nil
}

// Logout clears the persisted identity.  Issued tokens simply expire.
func (s *Service) Logout(ctx context.Context) error {
    return s.users.ClearSession(ctx)
}

// Current returns the identity for a user id.
func (s *Service) Current(ctx context.Context, userID string) (model.User, error) {
    return s.users.GetByID(ctx, userID)
}
