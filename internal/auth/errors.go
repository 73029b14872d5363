package auth

import "errors"

// ErrInvalidToken is returned when the provided token is missing, malformed,
// carries a bad signature, or has expired.
var ErrInvalidToken = errors.New("invalid token")
