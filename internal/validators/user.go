package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-user-list/models"
)

const (
	FieldID      = "id"
	FieldName    = "name"
	FieldAddress = "address"
	FieldUsers   = "users"
)

const (
	maxNameLength    = 255
	maxAddressLength = 1024
)

type UserValidator struct {
}

func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate accepts models.User and []models.User (values or pointers).
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		return v.validateUser(ctx, *value, fields...)

	case []models.User:
		return v.validateUsers(ctx, value, fields...)
	case *[]models.User:
		return v.validateUsers(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateUser(ctx context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldName, FieldAddress}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if strings.TrimSpace(user.ID) == "" {
				return ErrInvalidUserID
			}
		case FieldName:
			if strings.TrimSpace(user.Name) == "" {
				return ErrEmptyUserName
			}
			if utf8.RuneCountInString(user.Name) > maxNameLength {
				return ErrUserNameTooLong
			}
		case FieldAddress:
			if utf8.RuneCountInString(user.Address) > maxAddressLength {
				return ErrAddressTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateUsers checks every user with the requested fields and, when ids
// are checked, rejects duplicates. FieldUsers requires a non-empty list.
func (v *UserValidator) validateUsers(ctx context.Context, users []models.User, fields ...string) error {
	userFields := make([]string, 0, len(fields))
	requireNonEmpty := false
	for _, f := range fields {
		if f == FieldUsers {
			requireNonEmpty = true
			continue
		}
		userFields = append(userFields, f)
	}

	if requireNonEmpty && len(users) == 0 {
		return ErrEmptyUserList
	}

	checkIDs := len(userFields) == 0
	for _, f := range userFields {
		if f == FieldID {
			checkIDs = true
		}
	}

	seen := make(map[string]struct{}, len(users))
	for i, user := range users {
		if err := v.validateUser(ctx, user, userFields...); err != nil {
			return fmt.Errorf("validation error at index %d: %w", i, err)
		}
		if !checkIDs {
			continue
		}
		if _, dup := seen[user.ID]; dup {
			return fmt.Errorf("validation error at index %d: %w", i, ErrDuplicateUserID)
		}
		seen[user.ID] = struct{}{}
	}

	return nil
}
