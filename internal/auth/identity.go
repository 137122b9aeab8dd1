package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const identityToolkitURL = "https://identitytoolkit.googleapis.com/v1"

// IdentityClient performs email/password sign-in against the Identity
// Toolkit REST API, the same endpoint the Firebase web SDK calls. The
// Admin SDK covers user creation and token revocation but not password
// sign-in, hence the direct call.
type IdentityClient struct {
	webAPIKey string
	baseURL   string
	httpc     *http.Client
}

func NewIdentityClient(webAPIKey, baseURL string) *IdentityClient {
	if baseURL == "" {
		baseURL = identityToolkitURL
	}
	return &IdentityClient{
		webAPIKey: webAPIKey,
		baseURL:   baseURL,
		httpc:     &http.Client{Timeout: 15 * time.Second},
	}
}

// SignInResult carries the tokens a successful password sign-in returns.
type SignInResult struct {
	UID          string `json:"localId"`
	Email        string `json:"email"`
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    string `json:"expiresIn"`
}

// SignInError is a failed sign-in with the provider's error code
// ("EMAIL_NOT_FOUND", "INVALID_PASSWORD", ...).
type SignInError struct {
	StatusCode int
	Code       string
}

func (e *SignInError) Error() string {
	return fmt.Sprintf("sign-in failed (status %d): %s", e.StatusCode, e.Code)
}

// SignInWithPassword exchanges email/password for ID and refresh tokens.
func (c *IdentityClient) SignInWithPassword(ctx context.Context, email, password string) (*SignInResult, error) {
	payload := map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}
	b, _ := json.Marshal(payload)

	endpoint := fmt.Sprintf("%s/accounts:signInWithPassword?key=%s", c.baseURL, c.webAPIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("sign-in request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sign-in: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errBody struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&errBody)
		return nil, &SignInError{StatusCode: resp.StatusCode, Code: errBody.Error.Message}
	}

	var result SignInResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("sign-in decode: %w", err)
	}
	return &result, nil
}
