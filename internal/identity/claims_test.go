package identity

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClaimsSource_Identify(t *testing.T) {
	token := unsignedToken(t, jwt.MapClaims{
		"sub":         "auth0|42",
		"name":        "Ada Lovelace",
		"given_name":  "Ada",
		"family_name": "Lovelace",
		"email":       "ada@example.com",
		"exp":         1, // срок действия проверяет middleware, не источник
	})

	got, err := NewClaimsSource().Identify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, Identity{ID: "auth0|42", Name: "Ada Lovelace", GivenName: "Ada", FamilyName: "Lovelace", Email: "ada@example.com"}, got)
}

func TestClaimsSource_Failures(t *testing.T) {
	src := NewClaimsSource()

	_, err := src.Identify(context.Background(), "garbage")
	var rerr *ResolutionError
	assert.ErrorAs(t, err, &rerr)

	_, err = src.Identify(context.Background(), unsignedToken(t, jwt.MapClaims{"name": "nobody"}))
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, "token has no sub claim", err.Error())
}

func TestCredentialContext(t *testing.T) {
	_, ok := CredentialFromContext(context.Background())
	assert.False(t, ok)

	_, ok = CredentialFromContext(WithCredential(context.Background(), ""))
	assert.False(t, ok)

	c, ok := CredentialFromContext(WithCredential(context.Background(), "tok"))
	assert.True(t, ok)
	assert.Equal(t, "tok", c)
}
