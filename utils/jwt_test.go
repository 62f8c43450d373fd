package utils

import (
	"testing"
	"time"

	"occlusa/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("user-1", models.RoleFrontdesk, "", time.Hour)
	require.NoError(t, err)

	userCtx, err := ParseUserContext(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userCtx.UserID)
	assert.Equal(t, models.RoleFrontdesk, userCtx.Role)
	assert.Empty(t, userCtx.ProviderID)
}

func TestTokenCarriesProviderLink(t *testing.T) {
	token, err := GenerateToken("user-2", models.RoleDentist, "prov-1", time.Hour)
	require.NoError(t, err)

	userCtx, err := ParseUserContext(token)
	require.NoError(t, err)
	assert.Equal(t, models.RoleDentist, userCtx.Role)
	assert.Equal(t, "prov-1", userCtx.ProviderID)
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := GenerateToken("user-1", models.RoleAdmin, "", -time.Minute)
	require.NoError(t, err)

	_, err = ParseUserContext(token)
	assert.Error(t, err)
}

func TestGarbageTokenRejected(t *testing.T) {
	_, err := ParseUserContext("not-a-token")
	assert.Error(t, err)
}
