package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rms/internal/model"
)

func restaurantOwner() *model.User {
	restaurantID := uuid.New()
	return &model.User{
		ID:           uuid.New(),
		Email:        "owner@bistro.test",
		Name:         "Bistro",
		Type:         model.UserTypeRestaurant,
		RestaurantID: &restaurantID,
	}
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret")
	user := restaurantOwner()

	token, err := svc.GenerateAccessToken(user)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, model.UserTypeRestaurant, claims.Type)
	assert.Equal(t, user.RestaurantID.String(), claims.RestaurantID)
	assert.NotEmpty(t, claims.ID)
	assert.Equal(t, 24*time.Hour, claims.ExpiresAt.Time.Sub(claims.IssuedAt.Time))
}

func TestJWTService_DinerHasNoRestaurant(t *testing.T) {
	svc := NewJWTService("test-secret")

	token, err := svc.GenerateAccessToken(&model.User{ID: uuid.New(), Email: "diner@test", Type: model.UserTypeUser})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Empty(t, claims.RestaurantID)
}

func TestJWTService_Expiry(t *testing.T) {
	tests := []struct {
		name     string
		issuedAt time.Duration
		wantErr  bool
	}{
		{name: "accepted one hour after issue", issuedAt: -1 * time.Hour},
		{name: "accepted just before expiry", issuedAt: -23 * time.Hour},
		{name: "rejected 25 hours after issue", issuedAt: -25 * time.Hour, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issued := time.Now().Add(tt.issuedAt)
			svc := NewJWTService("test-secret", WithClock(func() time.Time { return issued }))

			token, err := svc.GenerateAccessToken(restaurantOwner())
			require.NoError(t, err)

			_, err = svc.ValidateToken(token)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidToken)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestJWTService_RejectsForeignTokens(t *testing.T) {
	svc := NewJWTService("test-secret")
	other := NewJWTService("other-secret")

	foreign, err := other.GenerateAccessToken(restaurantOwner())
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{Email: "x@y.z"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	for name, token := range map[string]string{
		"empty":        "",
		"garbage":      "not.a.jwt",
		"wrong secret": foreign,
		"alg none":     unsigned,
	} {
		t.Run(name, func(t *testing.T) {
			claims, err := svc.ValidateToken(token)
			assert.ErrorIs(t, err, ErrInvalidToken)
			assert.Nil(t, claims)
		})
	}
}

func TestWithExpiry(t *testing.T) {
	svc := NewJWTService("s", WithExpiry(time.Hour))
	assert.Equal(t, time.Hour, svc.Expiry())

	svc = NewJWTService("s", WithExpiry(0))
	assert.Equal(t, DefaultTokenExpiry, svc.Expiry())
}

func TestClaims_TTL(t *testing.T) {
	now := time.Now()
	claims := &Claims{RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour))}}

	assert.InDelta(t, time.Hour.Seconds(), claims.TTL(now).Seconds(), 1)
	assert.Zero(t, claims.TTL(now.Add(2*time.Hour)))
	assert.Zero(t, (&Claims{}).TTL(now))
}

func TestIsOwner(t *testing.T) {
	restaurantID := uuid.New().String()
	owner := &Claims{Type: model.UserTypeRestaurant, RestaurantID: restaurantID}

	tests := []struct {
		name         string
		claims       *Claims
		restaurantID string
		want         bool
	}{
		{"owner of the restaurant", owner, restaurantID, true},
		{"owner of another restaurant", owner, uuid.New().String(), false},
		{"diner claiming the id", &Claims{Type: model.UserTypeUser, RestaurantID: restaurantID}, restaurantID, false},
		{"no claims", nil, restaurantID, false},
		{"empty route id", &Claims{Type: model.UserTypeRestaurant}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsOwner(tt.claims, tt.restaurantID))
		})
	}
}
