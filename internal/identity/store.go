// Package identity is the user-identity collaborator: signup, login,
// logout and the current-user lookup the summary and payment views
// display.  It deliberately offers no real security guarantees beyond
// hashed passwords; the booking core never gates on it.
package identity

import (
    "context"
    "encoding/json"
    "errors"
    "sync"

    "github.com/redis/go-redis/v9"

    "github.com/iliyamo/movie-ticket-booking/internal/model"
)

// ErrUserNotFound is returned when no user matches a lookup.
var ErrUserNotFound = errors.New("user not found")

// sessionKey is the fixed key under which the most recent logged-in
// identity is persisted.  The service models a single current identity,
// not a multi-session account system.
const sessionKey = "session:user"

// UserStore persists identity records.  The Redis implementation is
// the production one; the memory implementation backs tests and runs
// without Redis.
type UserStore interface {
    Create(ctx context.Context, u model.User) error
    GetByEmail(ctx context.Context, email string) (model.User, error)
    GetByID(ctx context.Context, id string) (model.User, error)
    // SetSession persists u as the current identity under the fixed
    // session key; ClearSession removes it.
    SetSession(ctx context.Context, u model.User) error
    ClearSession(ctx context.Context) error
}

// RedisUserStore keeps users as JSON documents: user:<email> for the
// record, userid:<id> for the email index, and the fixed session key.
type RedisUserStore struct {
    Client *redis.Client
}

// NewRedisUserStore constructs a RedisUserStore.  The client must be
// non-nil.
func NewRedisUserStore(client *redis.Client) *RedisUserStore {
    if client == nil {
        panic("nil redis client passed to NewRedisUserStore")
    }
    return &RedisUserStore{Client: client}
}

func emailKey(email string) string { return "user:" + email }
func idKey(id string) string       { return "userid:" + id }

// Create stores a new user record and its id index.
func (s *RedisUserStore) Create(ctx context.Context, u model.User) error {
    body, err := json.Marshal(u)
    if err != nil {
        return err
    }
    if err := s.Client.Set(ctx, emailKey(u.Email), body, 0).Err(); err != nil {
        return err
    }
    return s.Client.Set(ctx, idKey(u.ID), u.Email, 0).Err()
}

// GetByEmail loads a user record.
func (s *RedisUserStore) GetByEmail(ctx context.Context, email string) (model.User, error) {
    val, err := s.Client.Get(ctx, emailKey(email)).Result()
    if err == redis.Nil {
        return model.User{}, ErrUserNotFound
    }
    if err != nil {
        return model.User{}, err
    }
    var u model.User
    if err := json.Unmarshal([]byte(val), &u); err != nil {
        return model.User{}, err
    }
    return u, nil
}

// GetByID resolves the id index, then loads the record.
func (s *RedisUserStore) GetByID(ctx context.Context, id string) (model.User, error) {
    email, err := s.Client.Get(ctx, idKey(id)).Result()
    if err == redis.Nil {
        return model.User{}, ErrUserNotFound
    }
    if err != nil {
        return model.User{}, err
    }
    return s.GetByEmail(ctx, email)
}

// SetSession persists the current identity under the fixed key.
func (s *RedisUserStore) SetSession(ctx context.Context, u model.User) error {
    body, err := json.Marshal(u)
    if err != nil {
        return err
    }
    return s.Client.Set(ctx, sessionKey, body, 0).Err()
}

// ClearSession removes the persisted identity.
func (s *RedisUserStore) ClearSession(ctx context.Context) error {
    return s.Client.Del(ctx, sessionKey).Err()
}

// MemoryUserStore is the map-backed fallback.
type MemoryUserStore struct {
    mu      sync.RWMutex
    byEmail map[string]model.User
    byID    map[string]string
}

// NewMemoryUserStore returns an empty in-memory user store.
func NewMemoryUserStore() *MemoryUserStore {
    return &MemoryUserStore{
        byEmail: make(map[string]model.User),
        byID:    make(map[string]string),
    }
}

// Create stores a new user record.
func (s *MemoryUserStore) Create(_ context.Context, u model.User) error {
    s.mu.Lock()
    defer s.mu.Unlock()
    s.byEmail[u.Email] = u
    s.byID[u.ID] = u.Email
    return nil
}

// GetByEmail loads a user record.
func (s *MemoryUserStore) GetByEmail(_ context.Context, email string) (model.User, error) {
    s.mu.RLock()
    defer s.mu.RUnlock()
    u, ok := s.byEmail[email]
    if !ok {
        return model.User{}, ErrUserNotFound
    }
    return u, nil
}

// GetByID loads a user record by id.
func (s *MemoryUserStore) GetByID(_ context.Context, id string) (model.User, error) {
    s.mu.RLock()
    defer s.mu.RUnlock()
    email, ok := s.byID[id]
    if !ok {
        return model.User{}, ErrUserNotFound
    }
    u, ok := s.byEmail[email]
    if !ok {
        return model.User{}, ErrUserNotFound
    }
    return u, nil
}

// SetSession is a no-op aside from interface completeness in memory.
func (s *MemoryUserStore) SetSession(context.Context, model.User) error { return nil }

// ClearSession is a no-op in memory.
func (s *MemoryUserStore) ClearSession(context.Context) error { return nil }
