// Copyright (c) 2026 Shelfmark. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec_test

import (
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/shelfmark/internal/platform/sec"
)

func newKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return key
}

/*
TestTokenService_RoundTrip signs a token and verifies it with the same key pair.
*/
func TestTokenService_RoundTrip(t *testing.T) {
	key := newKey(t)
	service := sec.NewTokenService(key, &key.PublicKey, "shelfmark.test")

	token, err := service.GenerateAccessToken("reviewer-1", "ana", time.Minute)
	require.NoError(t, err)

	claims, err := service.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "reviewer-1", claims.UserID)
	assert.Equal(t, "ana", claims.Username)
}

/*
TestTokenService_Rejects covers tokens that must not verify.
*/
func TestTokenService_Rejects(t *testing.T) {
	key := newKey(t)
	other := newKey(t)

	signer := sec.NewTokenService(key, &key.PublicKey, "shelfmark.test")

	t.Run("expired", func(t *testing.T) {
		token, err := signer.GenerateAccessToken("u", "n", -time.Minute)
		require.NoError(t, err)
		_, err = signer.VerifyToken(token)
		assert.Error(t, err)
	})

	t.Run("wrong_key", func(t *testing.T) {
		token, err := signer.GenerateAccessToken("u", "n", time.Minute)
		require.NoError(t, err)
		verifier := sec.NewTokenService(nil, &other.PublicKey, "shelfmark.test")
		_, err = verifier.VerifyToken(token)
		assert.Error(t, err)
	})

	t.Run("wrong_issuer", func(t *testing.T) {
		token, err := signer.GenerateAccessToken("u", "n", time.Minute)
		require.NoError(t, err)
		verifier := sec.NewTokenService(nil, &key.PublicKey, "someone.else")
		_, err = verifier.VerifyToken(token)
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := signer.VerifyToken("not.a.token")
		assert.Error(t, err)
	})
}

/*
TestTokenService_VerifyOnly ensures a verifier without a private key cannot sign.
*/
func TestTokenService_VerifyOnly(t *testing.T) {
	key := newKey(t)
	verifier := sec.NewTokenService(nil, &key.PublicKey, "shelfmark.test")

	_, err := verifier.GenerateAccessToken("u", "n", time.Minute)
	assert.ErrorIs(t, err, sec.ErrSigningUnavailable)
}
