package errs

import "errors"

// Common sentinel errors for cross-layer signaling.
var (
	ErrNotFound = errors.New("not_found")
	ErrInvalid  = errors.New("invalid")
	// ErrDuplicateCode indicates an account code collision in the chart of accounts.
	ErrDuplicateCode = errors.New("duplicate_code")
	// ErrUnbalancedEntry indicates a manual journal entry whose debits and
	// credits do not match, or that moves no value at all.
	ErrUnbalancedEntry = errors.New("unbalanced_entry")
	// ErrHeaderAccount indicates a posting aimed at a structural header account.
	ErrHeaderAccount = errors.New("header_account")
)
