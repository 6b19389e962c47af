package crypto

import "errors"

// ErrInvalidHashCost is returned when the configured work factor is outside
// the range supported by bcrypt.
var ErrInvalidHashCost = errors.New("invalid password hash cost")
