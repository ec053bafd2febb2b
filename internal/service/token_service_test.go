package service

import (
	"testing"
	"time"

	"settlement-ledger/internal/core/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test-jwt-secret-key-for-unit-tests"

func TestJWTTokenService_GenerateAndValidate(t *testing.T) {
	svc := NewJWTTokenService(testJWTSecret, 24*time.Hour, "farm-marketplace")
	actor := domain.Actor{UserID: uuid.New(), Role: domain.RoleFarmer}

	tokenStr, expiresAt, err := svc.Generate(actor)
	require.NoError(t, err)
	assert.NotEmpty(t, tokenStr)
	assert.True(t, expiresAt.After(time.Now()))

	claims, err := svc.Validate(tokenStr)
	require.NoError(t, err)
	assert.Equal(t, actor, claims.Actor())
}

func TestJWTTokenService_ExpiredToken(t *testing.T) {
	// Token with -1 hour expiry = already expired
	svc := NewJWTTokenService(testJWTSecret, -1*time.Hour, "farm-marketplace")

	tokenStr, _, err := svc.Generate(domain.Actor{UserID: uuid.New(), Role: domain.RoleBuyer})
	require.NoError(t, err)

	_, err = svc.Validate(tokenStr)
	assert.Error(t, err, "expired token should fail validation")
}

func TestJWTTokenService_InvalidSignature(t *testing.T) {
	svc1 := NewJWTTokenService("secret-1", 24*time.Hour, "issuer")
	svc2 := NewJWTTokenService("secret-2", 24*time.Hour, "issuer")

	tokenStr, _, err := svc1.Generate(domain.Actor{UserID: uuid.New(), Role: domain.RoleBuyer})
	require.NoError(t, err)

	_, err = svc2.Validate(tokenStr)
	assert.Error(t, err, "token signed with different secret should fail")
}

func TestJWTTokenService_WrongIssuer(t *testing.T) {
	issuer := NewJWTTokenService(testJWTSecret, time.Hour, "someone-else")
	svc := NewJWTTokenService(testJWTSecret, time.Hour, "farm-marketplace")

	tokenStr, _, err := issuer.Generate(domain.Actor{UserID: uuid.New(), Role: domain.RoleAdmin})
	require.NoError(t, err)

	_, err = svc.Validate(tokenStr)
	assert.Error(t, err)
}

func TestJWTTokenService_RejectsBadClaims(t *testing.T) {
	svc := NewJWTTokenService(testJWTSecret, time.Hour, "farm-marketplace")
	exp := time.Now().Add(time.Hour).Unix()

	tests := []struct {
		name   string
		claims jwt.MapClaims
	}{
		{"unknown role", jwt.MapClaims{"sub": uuid.NewString(), "role": "superuser", "iss": "farm-marketplace", "exp": exp}},
		{"missing role", jwt.MapClaims{"sub": uuid.NewString(), "iss": "farm-marketplace", "exp": exp}},
		{"subject not a uuid", jwt.MapClaims{"sub": "user-7", "role": "buyer", "iss": "farm-marketplace", "exp": exp}},
		{"no expiry", jwt.MapClaims{"sub": uuid.NewString(), "role": "buyer", "iss": "farm-marketplace"}},
		{"missing subject", jwt.MapClaims{"role": "buyer", "iss": "farm-marketplace", "exp": exp}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenStr, err := jwt.NewWithClaims(jwt.SigningMethodHS256, tt.claims).SignedString([]byte(testJWTSecret))
			require.NoError(t, err)

			_, err = svc.Validate(tokenStr)
			assert.Error(t, err)
		})
	}
}

func TestJWTTokenService_RejectsOtherAlgorithms(t *testing.T) {
	svc := NewJWTTokenService(testJWTSecret, time.Hour, "farm-marketplace")
	claims := jwt.MapClaims{
		"sub":  uuid.NewString(),
		"role": "admin",
		"iss":  "farm-marketplace",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}

	tokenStr, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	_, err = svc.Validate(tokenStr)
	assert.Error(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = svc.Validate(unsigned)
	assert.Error(t, err)
}

func TestJWTTokenService_ToleratesClockSkew(t *testing.T) {
	svc := NewJWTTokenService(testJWTSecret, time.Hour, "farm-marketplace")
	actor := domain.Actor{UserID: uuid.New(), Role: domain.RoleBuyer}
	claims := jwt.MapClaims{
		"sub":  actor.UserID.String(),
		"role": "buyer",
		"iss":  "farm-marketplace",
		"exp":  time.Now().Add(-10 * time.Second).Unix(),
	}

	tokenStr, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	require.NoError(t, err)

	got, err := svc.Validate(tokenStr)
	require.NoError(t, err)
	assert.Equal(t, actor, got.Actor())
}

func TestJWTTokenService_InvalidTokenString(t *testing.T) {
	svc := NewJWTTokenService(testJWTSecret, 24*time.Hour, "issuer")

	_, err := svc.Validate("not.a.valid.jwt")
	assert.Error(t, err)

	_, err = svc.Validate("")
	assert.Error(t, err)
}
