// Package common defines shared sentinel errors and small utilities used
// across the PromptVault client layers. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Session/flow errors.
	ErrNotLoggedIn           = errors.New("not logged in")
	ErrNoPendingRegistration = errors.New("no pending registration")

	// Client-side input validation, raised before any network call.
	ErrValidation = errors.New("validation error")
)
