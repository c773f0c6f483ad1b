package auth

import (
	"testing"
	"time"

	"github.com/lusotech/storefront/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser() *model.User {
	return &model.User{
		BaseModel: model.BaseModel{ID: "u-1"},
		Name:      "Admin",
		Email:     "admin@example.test",
		Role:      model.RoleSuperadmin,
	}
}

func TestMintAndVerify(t *testing.T) {
	token, err := MintToken(testUser(), "secret", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := VerifyToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "admin@example.test", claims.Email)
	assert.Equal(t, model.RoleSuperadmin, claims.Role)
}

func TestVerify_WrongSecret(t *testing.T) {
	token, err := MintToken(testUser(), "secret", time.Hour)
	require.NoError(t, err)

	_, err = VerifyToken(token, "other-secret")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Expired(t *testing.T) {
	token, err := MintToken(testUser(), "secret", -time.Minute)
	require.NoError(t, err)

	_, err = VerifyToken(token, "secret")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Garbage(t *testing.T) {
	_, err := VerifyToken("not-a-token", "secret")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestClaimsContextRoundTrip(t *testing.T) {
	claims := &Claims{UserID: "u-1", Role: model.RoleAdmin}

	ctx := WithClaims(t.Context(), claims)

	assert.Equal(t, "u-1", GetUserID(ctx))
	assert.Equal(t, model.RoleAdmin, GetRole(ctx))
	assert.Same(t, claims, ClaimsFrom(ctx))
}

func TestClaimsContext_Empty(t *testing.T) {
	assert.Equal(t, "", GetUserID(t.Context()))
	assert.Equal(t, "", GetRole(t.Context()))
	assert.Nil(t, ClaimsFrom(t.Context()))
}
