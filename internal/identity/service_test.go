package identity

import (
    "context"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

// low bcrypt cost keeps the tests fast
func newTestService() *Service {
    return NewService(NewMemoryUserStore(), "test-secret", 15, 4)
}

func TestSignupAndLogin(t *testing.T) {
    svc := newTestService()
    ctx := context.Background()

    user, tok, err := svc.Signup(ctx, "Jane Doe", "jane@example.com", "+1234567890", "s3cret")
    require.NoError(t, err)
    assert.NotEmpty(t, user.ID)
    assert.Equal(t, "jane@example.com", user.Email)
    assert.NotEmpty(t, tok.Token)
    assert.NotEqual(t, "s3cret", user.PasswordHash, "password must not be stored in plain text")

    got, tok2, err := svc.Login(ctx, "jane@example.com", "s3cret")
    require.NoError(t, err)
    assert.Equal(t, user.ID, got.ID)
    assert.NotEmpty(t, tok2.Token)
}

func TestSignupDuplicateEmail(t *testing.T) {
    svc := newTestService()
    ctx := context.Background()

    _, _, err := svc.Signup(ctx, "Jane", "jane@example.com", "+1", "pw")
    require.NoError(t, err)
    _, _, err = svc.Signup(ctx, "Other", "jane@example.com", "+2", "pw2")
    assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
    svc := newTestService()
    ctx := context.Background()

    _, _, err := svc.Signup(ctx, "Jane", "jane@example.com", "+1", "pw")
    require.NoError(t, err)

    _, _, err = svc.Login(ctx, "jane@example.com", "wrong")
    assert.ErrorIs(t, err, ErrInvalidCredentials)
    _, _, err = svc.Login(ctx, "nobody@example.com", "pw")
    assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestCurrent(t *testing.T) {
    svc := newTestService()
    ctx := context.Background()

    user, _, err := svc.Signup(ctx, "Jane", "jane@example.com", "+1", "pw")
    require.NoError(t, err)

    got, err := svc.Current(ctx, user.ID)
    require.NoError(t, err)
    assert.Equal(t, "Jane", got.Name)

    _, err = svc.Current(ctx, "missing")
    assert.ErrorIs(t, err, ErrUserNotFound)
}
