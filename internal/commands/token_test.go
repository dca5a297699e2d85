package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workforce/backend/internal/auth"
)

func TestGenTokenRoundTrip(t *testing.T) {
	access, refresh, err := GenToken(TokenData{ID: 42, Role: auth.RoleLead}, "secret")
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)

	accessClaims, refreshClaims, err := VerifyTokens(access, refresh, "secret")
	require.NoError(t, err)

	assert.Equal(t, 42, accessClaims.UserId)
	assert.Equal(t, auth.RoleLead, accessClaims.Role)
	assert.Equal(t, "access", accessClaims.Type)
	assert.Equal(t, 42, refreshClaims.UserId)
	assert.Equal(t, "refresh", refreshClaims.Type)
}

func TestVerifyTokensWrongSecret(t *testing.T) {
	access, refresh, err := GenToken(TokenData{ID: 1, Role: auth.RoleMember}, "secret")
	require.NoError(t, err)

	_, _, err = VerifyTokens(access, refresh, "other")
	assert.Error(t, err)
}

func TestVerifyTokensSwappedPair(t *testing.T) {
	access, refresh, err := GenToken(TokenData{ID: 1, Role: auth.RoleMember}, "secret")
	require.NoError(t, err)

	// access token passed where the refresh token belongs
	_, _, err = VerifyTokens(refresh, access, "secret")
	assert.Error(t, err)
}

func TestVerifyTokensPairMismatch(t *testing.T) {
	access, _, err := GenToken(TokenData{ID: 1, Role: auth.RoleMember}, "secret")
	require.NoError(t, err)
	_, refresh, err := GenToken(TokenData{ID: 2, Role: auth.RoleMember}, "secret")
	require.NoError(t, err)

	_, _, err = VerifyTokens(access, refresh, "secret")
	assert.Error(t, err)
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	access, _, err := GenToken(TokenData{ID: 7, Role: auth.RoleAdmin}, "secret")
	require.NoError(t, err)

	a := auth.NewAuth("secret")
	claims, err := a.ValidateToken(access)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserId)

	_, err = a.ValidateToken(access + "x")
	assert.Error(t, err)
}
