package validators

import (
	"context"

	"github.com/MKhiriev/go-library-catalog/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldUsername    = "username"
	FieldPassword    = "password"
	FieldRole        = "role"
	FieldFirstName   = "first_name"
	FieldLastName    = "last_name"
	FieldName        = "name"
	FieldTitle       = "title"
	FieldPublisherID = "publisher_id"
	FieldAuthorID    = "author_id"
)

// maxPasswordBytes is the longest input bcrypt accepts.
const maxPasswordBytes = 72

// CatalogValidator validates the request payloads of the catalog API.
type CatalogValidator struct {
}

func NewCatalogValidator() Validator {
	return &CatalogValidator{}
}

func (v *CatalogValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SignupRequest:
		return v.validateCredentials(value.Username, value.Password, true, fields...)
	case *models.SignupRequest:
		return v.validateCredentials(value.Username, value.Password, true, fields...)

	case models.LoginRequest:
		return v.validateCredentials(value.Username, value.Password, false, fields...)
	case *models.LoginRequest:
		return v.validateCredentials(value.Username, value.Password, false, fields...)

	case models.SetRoleRequest:
		return v.validateSetRole(value, fields...)
	case *models.SetRoleRequest:
		return v.validateSetRole(*value, fields...)

	case models.CreateAuthorRequest:
		return v.validateAuthor(value, fields...)
	case *models.CreateAuthorRequest:
		return v.validateAuthor(*value, fields...)

	case models.CreatePublisherRequest:
		return v.validatePublisher(value, fields...)
	case *models.CreatePublisherRequest:
		return v.validatePublisher(*value, fields...)

	case models.CreateBookRequest:
		return v.validateBook(value, fields...)
	case *models.CreateBookRequest:
		return v.validateBook(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateCredentials checks presence of the credentials. The bcrypt length
// limit applies only to new passwords: an over-long login password simply
// fails verification.
func (v *CatalogValidator) validateCredentials(username, password string, newPassword bool, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if username == "" {
				return ErrUsernameRequired
			}
		case FieldPassword:
			if password == "" {
				return ErrPasswordRequired
			}
			if newPassword && len(password) > maxPasswordBytes {
				return ErrPasswordTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CatalogValidator) validateSetRole(request models.SetRoleRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldRole}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if request.Username == "" {
				return ErrUsernameRequired
			}
		case FieldRole:
			if !request.Role.IsValid() {
				return ErrInvalidRole
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CatalogValidator) validateAuthor(request models.CreateAuthorRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFirstName, FieldLastName}
	}

	for _, f := range fields {
		switch f {
		case FieldFirstName:
			if request.FirstName == "" {
				return ErrFirstNameRequired
			}
		case FieldLastName:
			if request.LastName == "" {
				return ErrLastNameRequired
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CatalogValidator) validatePublisher(request models.CreatePublisherRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if request.Name == "" {
				return ErrPublisherNameEmpty
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateBook only checks presence. Whether the referenced author and
// publisher exist is left to the store's foreign keys.
func (v *CatalogValidator) validateBook(request models.CreateBookRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldPublisherID, FieldAuthorID}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if request.Title == "" {
				return ErrTitleRequired
			}
		case FieldPublisherID:
			if request.PublisherID <= 0 {
				return ErrPublisherIDInvalid
			}
		case FieldAuthorID:
			if request.AuthorID <= 0 {
				return ErrAuthorIDInvalid
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
