package repository

import "errors"

// ErrPurchaseNotFound signals that no purchase with the given external id
// exists for the calling account. A purchase owned by another account yields
// the same error, so existence never leaks across accounts.
var ErrPurchaseNotFound = errors.New("purchase not found")
