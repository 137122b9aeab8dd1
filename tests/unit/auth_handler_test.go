package unit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meteomotto/go-weather-backend/internal/auth"
	authhttp "github.com/meteomotto/go-weather-backend/internal/auth/http"
)

// setupAuthRouter wires the credential endpoints with a nil Firebase
// auth client: any handler path that reaches it panics, so validation
// failures provably return before a network call.
func setupAuthRouter(identity *auth.IdentityClient) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	h := authhttp.NewHandler(nil, identity)
	h.Register(router.Group("/api/v1/auth"))
	h.RegisterProtected(router.Group("/api/v1/auth"))
	return router
}

// guardedIdentityClient points at a server that fails the test when hit.
func guardedIdentityClient(t *testing.T) *auth.IdentityClient {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("identity endpoint must not be called for invalid input")
	}))
	t.Cleanup(server.Close)
	return auth.NewIdentityClient("test-key", server.URL)
}

func TestRegister_ValidationBeforeNetwork(t *testing.T) {
	router := setupAuthRouter(guardedIdentityClient(t))

	cases := map[string]string{
		"empty body":          `{}`,
		"missing password":    `{"email":"user@example.com"}`,
		"missing email":       `{"password":"secret123"}`,
		"short password":      `{"email":"user@example.com","password":"abc"}`,
		"mismatched confirm":  `{"email":"user@example.com","password":"secret123","confirm_password":"secret124"}`,
		"whitespace email":    `{"email":"   ","password":"secret123"}`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			rr := doJSON(t, router, "POST", "/api/v1/auth/register", body)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}
}

func TestLogin_ValidationBeforeNetwork(t *testing.T) {
	router := setupAuthRouter(guardedIdentityClient(t))

	rr := doJSON(t, router, "POST", "/api/v1/auth/login", `{"email":"user@example.com"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = doJSON(t, router, "POST", "/api/v1/auth/login", `{"password":"secret123"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestLogin_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"localId": "uid-1",
			"email": "user@example.com",
			"idToken": "id-token",
			"refreshToken": "refresh-token",
			"expiresIn": "3600"
		}`))
	}))
	defer server.Close()

	router := setupAuthRouter(auth.NewIdentityClient("test-key", server.URL))

	rr := doJSON(t, router, "POST", "/api/v1/auth/login", `{"email":"user@example.com","password":"secret123"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"id_token":"id-token"`)
	assert.Contains(t, rr.Body.String(), `"uid":"uid-1"`)
}

func TestLogin_RejectedCredentialsReturn401(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"EMAIL_NOT_FOUND"}}`))
	}))
	defer server.Close()

	router := setupAuthRouter(auth.NewIdentityClient("test-key", server.URL))

	rr := doJSON(t, router, "POST", "/api/v1/auth/login", `{"email":"nobody@example.com","password":"secret123"}`)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "invalid email or password")
}

func TestLogin_TransportFailureReturns502(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	router := setupAuthRouter(auth.NewIdentityClient("test-key", server.URL))

	rr := doJSON(t, router, "POST", "/api/v1/auth/login", `{"email":"user@example.com","password":"secret123"}`)
	assert.Equal(t, http.StatusBadGateway, rr.Code)
}

func TestLogout_Unauthenticated(t *testing.T) {
	router := setupAuthRouter(guardedIdentityClient(t))

	rr := doJSON(t, router, "POST", "/api/v1/auth/logout", "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
