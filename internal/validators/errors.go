package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrUsernameRequired   = errors.New("username is required")
	ErrPasswordRequired   = errors.New("password is required")
	ErrPasswordTooLong    = errors.New("password must not exceed 72 bytes")
	ErrInvalidRole        = errors.New("invalid role")
	ErrFirstNameRequired  = errors.New("first name is required")
	ErrLastNameRequired   = errors.New("last name is required")
	ErrPublisherNameEmpty = errors.New("publisher name is required")
	ErrTitleRequired      = errors.New("title is required")
	ErrPublisherIDInvalid = errors.New("publisher ID is required")
	ErrAuthorIDInvalid    = errors.New("author ID is required")
	ErrSearchTermRequired = errors.New("search term is required")
)
