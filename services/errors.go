package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for the OAuth and reservation flows. Handlers map these to
// HTTP statuses at the boundary; none of them are retried automatically.
var (
	// ErrNotFound: no reservation exists for the given id.
	ErrNotFound = errors.New("reservation not found")

	// ErrAlreadyProcessed: the reservation is in a terminal state and refuses
	// further transitions.
	ErrAlreadyProcessed = errors.New("reservation already processed")

	// ErrAuthRequired: the stylist has no stored Google token.
	ErrAuthRequired = errors.New("google authorization required")

	// ErrReauthRequired: the stored access token expired and no refresh token
	// exists, so only a fresh consent flow can recover.
	ErrReauthRequired = errors.New("google re-authorization required")

	// ErrExchangeFailed: the authorization code was invalid, expired, or
	// already consumed.
	ErrExchangeFailed = errors.New("authorization code exchange failed")

	// ErrMissingEmailClaim: the ID token carries no email claim.
	ErrMissingEmailClaim = errors.New("id token has no email claim")
)

// ValidationError reports which reservation fields were missing or malformed.
type ValidationError struct {
	Details map[string]string
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Details))
	for f := range e.Details {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fmt.Sprintf("invalid reservation request: %s", strings.Join(fields, ", "))
}
