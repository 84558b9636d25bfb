package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID   = errors.New("invalid user ID")
	ErrEmptyUserName   = errors.New("user name is required")
	ErrUserNameTooLong = errors.New("user name is too long")
	ErrAddressTooLong  = errors.New("user address is too long")
	ErrDuplicateUserID = errors.New("duplicate user ID")
	ErrEmptyUserList   = errors.New("user list cannot be empty")
)
