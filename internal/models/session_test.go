package models

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionClaims_UserUUID(t *testing.T) {
	id := uuid.New()

	parsed, err := (&SessionClaims{UserID: id.String()}).UserUUID()
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	_, err = (&SessionClaims{}).UserUUID()
	assert.ErrorIs(t, err, ErrMissingSubject)

	_, err = (&SessionClaims{UserID: "not-a-uuid"}).UserUUID()
	assert.Error(t, err)
}

func TestSessionClaims_Expiry(t *testing.T) {
	exp := time.Date(2024, time.May, 1, 12, 0, 0, 0, time.UTC)
	claims := SessionClaims{RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(exp)}}

	assert.True(t, claims.Expiry().Equal(exp))
	assert.True(t, (&SessionClaims{}).Expiry().IsZero())
}

func TestRefreshToken_UsableAt(t *testing.T) {
	now := time.Date(2024, time.March, 10, 8, 0, 0, 0, time.UTC)
	revoked := now.Add(-time.Minute)

	tests := []struct {
		name   string
		token  RefreshToken
		usable bool
	}{
		{"fresh", RefreshToken{ExpiresAt: now.Add(time.Hour)}, true},
		{"expired", RefreshToken{ExpiresAt: now.Add(-time.Hour)}, false},
		{"expires exactly now", RefreshToken{ExpiresAt: now}, false},
		{"revoked", RefreshToken{ExpiresAt: now.Add(time.Hour), RevokedAt: &revoked}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.usable, tt.token.UsableAt(now))
		})
	}
}

func TestRefreshToken_RevokeAtKeepsFirstTime(t *testing.T) {
	first := time.Date(2024, time.March, 10, 8, 0, 0, 0, time.UTC)
	token := RefreshToken{ExpiresAt: first.Add(time.Hour)}

	token.RevokeAt(first)
	token.RevokeAt(first.Add(time.Minute))

	require.NotNil(t, token.RevokedAt)
	assert.True(t, token.RevokedAt.Equal(first))
	assert.False(t, token.UsableAt(first))
}

func TestRefreshToken_WasRotated(t *testing.T) {
	now := time.Now()
	next := uuid.New()

	assert.False(t, (&RefreshToken{}).WasRotated())
	assert.False(t, (&RefreshToken{RevokedAt: &now}).WasRotated(), "logout revocation is not a rotation")
	assert.True(t, (&RefreshToken{RevokedAt: &now, ReplacedByID: &next}).WasRotated())
}

func TestBlacklistedToken_ExpiredAt(t *testing.T) {
	now := time.Date(2024, time.March, 10, 8, 0, 0, 0, time.UTC)

	assert.False(t, (&BlacklistedToken{ExpiresAt: now.Add(time.Second)}).ExpiredAt(now))
	assert.True(t, (&BlacklistedToken{ExpiresAt: now}).ExpiredAt(now))
	assert.True(t, (&BlacklistedToken{ExpiresAt: now.Add(-time.Hour)}).ExpiredAt(now))
}
