package payment

import (
    "context"
    "encoding/json"
    "sync"
    "time"

    "github.com/redis/go-redis/v9"

    "github.com/iliyamo/movie-ticket-booking/internal/model"
)

// pendingMarker is stored under a key while its submission is in
// flight; completed keys hold the JSON-encoded result instead.
const pendingMarker = "pending"

// RedisKeyStore keeps idempotency keys in Redis so a restart or a
// second instance still sees them.  Keys expire after TTL.
type RedisKeyStore struct {
    Client *redis.Client
    Prefix string
    TTL    time.Duration
}

// NewRedisKeyStore constructs a RedisKeyStore with sane defaults.
func NewRedisKeyStore(client *redis.Client) *RedisKeyStore {
    return &RedisKeyStore{Client: client, Prefix: "booking:key", TTL: 24 * time.Hour}
}

func (s *RedisKeyStore) key(k string) string {
    return s.Prefix + ":" + k
}

// Begin claims a key with SETNX; a second claim of the same key fails.
func (s *RedisKeyStore) Begin(ctx context.Context, key string) (bool, error) {
    return s.Client.SetNX(ctx, s.key(key), pendingMarker, s.TTL).Result()
}

// Complete overwrites the pending marker with the encoded result.
func (s *RedisKeyStore) Complete(ctx context.Context, key string, r model.BookingResult) error {
    body, err := json.Marshal(r)
    if err != nil {
        return err
    }
    return s.Client.Set(ctx, s.key(key), body, s.TTL).Err()
}

// Result decodes the stored result; a pending or absent key reports
// found=false.
func (s *RedisKeyStore) Result(ctx context.Context, key string) (model.BookingResult, bool, error) {
    val, err := s.Client.Get(ctx, s.key(key)).Result()
    if err == redis.Nil {
        return model.BookingResult{}, false, nil
    }
    if err != nil {
        return model.BookingResult{}, false, err
    }
    if val == pendingMarker {
        return model.BookingResult{}, false, nil
    }
    var r model.BookingResult
    if err := json.Unmarshal([]byte(val), &r); err != nil {
        return model.BookingResult{}, false, err
    }
    return r, true, nil
}

// Release deletes a key after a failed submission.
func (s *RedisKeyStore) Release(ctx context.Context, key string) error {
    return s.Client.Del(ctx, s.key(key)).Err()
}

// MemoryKeyStore is the in-process fallback used in tests and when no
// Redis is configured.
type MemoryKeyStore struct {
    mu      sync.Mutex
    entries map[string]memoryKeyEntry
}

type memoryKeyEntry struct {
    done   bool
    result model.BookingResult
}

// NewMemoryKeyStore returns an empty in-memory key store.
func NewMemoryKeyStore() *MemoryKeyStore {
    return &MemoryKeyStore{entries: make(map[string]memoryKeyEntry)}
}

// Begin claims a key.
func (s *MemoryKeyStore) Begin(_ context.Context, key string) (bool, error) {
    s.mu.Lock()
    defer s.mu.Unlock()
    if _, ok := s.entries[key]; ok {
        return false, nil
    }
    s.entries[key] = memoryKeyEntry{}
    return true, nil
}

// Complete stores the result for a key.
func (s *MemoryKeyStore) Complete(_ context.Context, key string, r model.BookingResult) error {
    s.mu.Lock()
    defer s.mu.Unlock()
    s.entries[key] = memoryKeyEntry{done: true, result: r}
    return nil
}

// Result returns the stored result, if completed.
func (s *MemoryKeyStore) Result(_ context.Context, key string) (model.BookingResult, bool, error) {
    s.mu.Lock()
    defer s.mu.Unlock()
    e, ok := s.entries[key]
    if !ok || !e.done {
        return model.BookingResult{}, false, nil
    }
    return e.result, true, nil
}

// Release frees a key.
func (s *MemoryKeyStore) Release(_ context.Context, key string) error {
    s.mu.Lock()
    defer s.mu.Unlock()
    delete(s.entries, key)
    return nil
}
