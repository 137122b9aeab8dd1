package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignInWithPassword(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/accounts:signInWithPassword", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "user@example.com", req["email"])
		assert.Equal(t, "secret123", req["password"])
		assert.Equal(t, true, req["returnSecureToken"])

		w.Write([]byte(`{
			"localId": "uid-1",
			"email": "user@example.com",
			"idToken": "id-token",
			"refreshToken": "refresh-token",
			"expiresIn": "3600"
		}`))
	}))
	defer server.Close()

	client := NewIdentityClient("test-key", server.URL)
	result, err := client.SignInWithPassword(context.Background(), "user@example.com", "secret123")
	require.NoError(t, err)

	assert.Equal(t, "uid-1", result.UID)
	assert.Equal(t, "user@example.com", result.Email)
	assert.Equal(t, "id-token", result.IDToken)
	assert.Equal(t, "refresh-token", result.RefreshToken)
	assert.Equal(t, "3600", result.ExpiresIn)
}

func TestSignInWithPassword_ErrorCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"EMAIL_NOT_FOUND"}}`))
	}))
	defer server.Close()

	client := NewIdentityClient("test-key", server.URL)
	_, err := client.SignInWithPassword(context.Background(), "nobody@example.com", "secret123")
	require.Error(t, err)

	var signInErr *SignInError
	require.ErrorAs(t, err, &signInErr)
	assert.Equal(t, http.StatusBadRequest, signInErr.StatusCode)
	assert.Equal(t, "EMAIL_NOT_FOUND", signInErr.Code)
}

func TestSignInWithPassword_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewIdentityClient("test-key", server.URL)
	_, err := client.SignInWithPassword(context.Background(), "user@example.com", "secret123")
	require.Error(t, err)

	// A dead endpoint is a transport error, not a credential rejection.
	var signInErr *SignInError
	assert.False(t, errors.As(err, &signInErr))
}
