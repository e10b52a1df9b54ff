package activity

import "errors"

// ErrInvalidInput indicates an invalid ledger entry.
var ErrInvalidInput = errors.New("invalid activity entry")
