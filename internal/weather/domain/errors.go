package domain

import "fmt"

// ProviderError carries the HTTP status returned by the weather provider
// so handlers can propagate it instead of flattening everything to 500.
type ProviderError struct {
	StatusCode int
	Body       string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("weather provider error (status %d): %s", e.StatusCode, e.Body)
}
