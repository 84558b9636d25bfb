package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-user-list/models"
)

func validUser() models.User {
	return models.User{ID: "1", Name: "Ada Lovelace", Address: "London"}
}

func TestNewUserValidator(t *testing.T) {
	require.NotNil(t, NewUserValidator())
}

func TestValidate_Dispatch(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()
	u := validUser()
	list := []models.User{u}

	assert.NoError(t, v.Validate(ctx, u))
	assert.NoError(t, v.Validate(ctx, &u))
	assert.NoError(t, v.Validate(ctx, list))
	assert.NoError(t, v.Validate(ctx, &list))
	assert.ErrorIs(t, v.Validate(ctx, "user"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, 42), ErrUnsupportedType)
}

func TestValidate_User(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(u *models.User)
		fields  []string
		wantErr error
	}{
		{name: "valid", mutate: func(*models.User) {}},
		{name: "empty id", mutate: func(u *models.User) { u.ID = "" }, wantErr: ErrInvalidUserID},
		{name: "blank id", mutate: func(u *models.User) { u.ID = "   " }, wantErr: ErrInvalidUserID},
		{name: "empty name", mutate: func(u *models.User) { u.Name = "" }, wantErr: ErrEmptyUserName},
		{name: "long name", mutate: func(u *models.User) { u.Name = strings.Repeat("a", maxNameLength+1) }, wantErr: ErrUserNameTooLong},
		{name: "name at limit", mutate: func(u *models.User) { u.Name = strings.Repeat("é", maxNameLength) }},
		{name: "empty address is fine", mutate: func(u *models.User) { u.Address = "" }},
		{name: "long address", mutate: func(u *models.User) { u.Address = strings.Repeat("x", maxAddressLength+1) }, wantErr: ErrAddressTooLong},
		{name: "only name checked", mutate: func(u *models.User) { u.ID = "" }, fields: []string{FieldName}},
		{name: "unknown field", mutate: func(*models.User) {}, fields: []string{"email"}, wantErr: ErrUnknownField},
	}

	v := NewUserValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := validUser()
			tt.mutate(&u)

			err := v.Validate(context.Background(), u, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_Users(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	t.Run("empty list allowed by default", func(t *testing.T) {
		assert.NoError(t, v.Validate(ctx, []models.User{}))
	})

	t.Run("empty list rejected with users field", func(t *testing.T) {
		assert.ErrorIs(t, v.Validate(ctx, []models.User{}, FieldUsers), ErrEmptyUserList)
	})

	t.Run("reports index of invalid user", func(t *testing.T) {
		users := []models.User{validUser(), {ID: "2"}}
		err := v.Validate(ctx, users)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrEmptyUserName)
		assert.Contains(t, err.Error(), "index 1")
	})

	t.Run("duplicate ids", func(t *testing.T) {
		users := []models.User{validUser(), {ID: "1", Name: "Grace Hopper"}}
		assert.ErrorIs(t, v.Validate(ctx, users), ErrDuplicateUserID)
	})

	t.Run("duplicates ignored when ids not checked", func(t *testing.T) {
		users := []models.User{{Name: "A"}, {Name: "B"}}
		assert.NoError(t, v.Validate(ctx, users, FieldName))
	})
}
