package domain

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrInvalidInput marks validation failures caught before any remote
// call; handlers map it to a 400.
var ErrInvalidInput = errors.New("invalid input")

// StoreError wraps a failed remote read or write with a human-readable
// message. Callers display it; nothing retries automatically.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("preferences %s failed: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

var timeRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// ValidateNotificationTime checks the 24h "HH:MM" format.
func ValidateNotificationTime(v string) error {
	if !timeRe.MatchString(v) {
		return fmt.Errorf("%w: notificationTime must be HH:MM, got %q", ErrInvalidInput, v)
	}
	return nil
}

// ValidateLanguage accepts the two supported UI languages.
func ValidateLanguage(v string) error {
	if v != "tr" && v != "en" {
		return fmt.Errorf("%w: language must be tr or en, got %q", ErrInvalidInput, v)
	}
	return nil
}

// ValidateTemperatureUnit accepts Celsius or Fahrenheit.
func ValidateTemperatureUnit(v string) error {
	if v != "C" && v != "F" {
		return fmt.Errorf("%w: temperatureUnit must be C or F, got %q", ErrInvalidInput, v)
	}
	return nil
}
