package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"blogger/internal/config"
	"blogger/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticToken(t *testing.T) {
	v := NewStaticToken("dummy-token")
	ctx := context.Background()

	tok, err := v.Issue(ctx, &models.User{ID: 1})
	require.NoError(t, err)
	assert.Equal(t, "dummy-token", tok)

	_, err = v.Verify(ctx, "dummy-token")
	assert.NoError(t, err)

	_, err = v.Verify(ctx, "other")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestStaticToken_EmptyNeverMatches(t *testing.T) {
	_, err := NewStaticToken("").Verify(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWT_IssueVerify(t *testing.T) {
	v := NewJWT("secret", time.Hour)
	ctx := context.Background()

	tok, err := v.Issue(ctx, &models.User{ID: 42, Role: "admin"})
	require.NoError(t, err)

	p, err := v.Verify(ctx, tok)
	require.NoError(t, err)
	assert.Equal(t, &Principal{UserID: 42, Role: "admin"}, p)
}

func TestJWT_Expired(t *testing.T) {
	v := NewJWT("secret", time.Minute)
	v.now = func() time.Time { return time.Now().Add(-time.Hour) }
	tok, err := v.Issue(context.Background(), &models.User{ID: 1, Role: "admin"})
	require.NoError(t, err)

	v.now = time.Now
	_, err = v.Verify(context.Background(), tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWT_WrongSecretAndAlg(t *testing.T) {
	ctx := context.Background()
	tok, err := NewJWT("a", time.Hour).Issue(ctx, &models.User{ID: 1, Role: "admin"})
	require.NoError(t, err)

	_, err = NewJWT("b", time.Hour).Verify(ctx, tok)
	assert.True(t, errors.Is(err, ErrInvalidToken))

	none := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"user_id": 1, "role": "admin", "exp": time.Now().Add(time.Hour).Unix(),
	})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = NewJWT("a", time.Hour).Verify(ctx, unsigned)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewVerifier(t *testing.T) {
	assert.IsType(t, &StaticToken{}, NewVerifier(&config.Config{AuthMode: config.AuthModeStatic, AuthToken: "x"}))
	assert.IsType(t, &JWT{}, NewVerifier(&config.Config{AuthMode: config.AuthModeJWT, JWTSecret: "s", AccessTokenTTL: time.Hour}))
}
