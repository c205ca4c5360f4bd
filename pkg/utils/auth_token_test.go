package utils

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestAuthToken_RoundTrip(t *testing.T) {

	uid := bson.NewObjectID()
	authToken := CreateNewAuthToken(uid)

	signed, err := authToken.Sign()
	require.NoError(t, err)
	require.True(t, len(signed) > len("Bearer "))

	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("Authorization", signed)

	parsed, err := ValidateAuthToken(r)
	require.NoError(t, err)

	gotUid, err := parsed.GetUidObjectId()
	require.NoError(t, err)
	assert.Equal(t, uid, gotUid)
}

func TestValidateAuthToken_MissingHeader(t *testing.T) {

	r := httptest.NewRequest("GET", "/", nil)
	_, err := ValidateAuthToken(r)
	require.Error(t, err)
}

func TestValidateAuthToken_MalformedHeader(t *testing.T) {

	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("Authorization", "garbage")
	_, err := ValidateAuthToken(r)
	require.Error(t, err)
}

func TestValidateAuthToken_Expired(t *testing.T) {

	uid := bson.NewObjectID()
	authToken := CreateNewAuthToken(uid)
	past := time.Now().UTC().Add(-time.Hour)
	authToken.ExpiresAt = jwt.NewNumericDate(past)
	authToken.IssuedAt = jwt.NewNumericDate(past.Add(-time.Hour))

	signed, err := authToken.Sign()
	require.NoError(t, err)

	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("Authorization", signed)

	_, err = ValidateAuthToken(r)
	require.Error(t, err)
}

func TestAuthToken_RefreshExtendsExpiry(t *testing.T) {

	uid := bson.NewObjectID()
	authToken := CreateNewAuthToken(uid)

	// force into the refresh window
	soon := time.Now().UTC().Add(time.Hour)
	authToken.ExpiresAt = jwt.NewNumericDate(soon)

	authToken.Refresh()
	assert.True(t, authToken.ExpiresAt.Time.After(soon.Add(24*time.Hour)))
}

func TestAuthToken_RefreshNoOpFarFromExpiry(t *testing.T) {

	uid := bson.NewObjectID()
	authToken := CreateNewAuthToken(uid)
	expiry := authToken.ExpiresAt.Time

	authToken.Refresh()
	assert.Equal(t, expiry, authToken.ExpiresAt.Time)
}

func TestAuthToken_RefreshedTokenRevalidates(t *testing.T) {

	uid := bson.NewObjectID()
	authToken := CreateNewAuthToken(uid)
	authToken.ExpiresAt = jwt.NewNumericDate(time.Now().UTC().Add(time.Hour))

	// refresh and re-sign, the same path the profile endpoint uses to
	// re-issue a near-expiry token
	authToken.Refresh()
	signed, err := authToken.Sign()
	require.NoError(t, err)

	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("Authorization", signed)

	parsed, err := ValidateAuthToken(r)
	require.NoError(t, err)

	gotUid, err := parsed.GetUidObjectId()
	require.NoError(t, err)
	assert.Equal(t, uid, gotUid)
	assert.True(t, parsed.ExpiresAt.Time.After(time.Now().UTC().Add(30*24*time.Hour)))
}
