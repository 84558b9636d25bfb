package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-user-list/internal/logger"
	"github.com/MKhiriev/go-user-list/internal/mock"
	"github.com/MKhiriev/go-user-list/internal/validators"
	"github.com/MKhiriev/go-user-list/models"
)

type sequenceIDs struct{ n int }

func (s *sequenceIDs) Generate() string {
	s.n++
	return "generated-" + strconv.Itoa(s.n)
}

func writeSeed(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "users.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestSeedUsers_InsertsIntoEmptyTable(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)

	path := writeSeed(t, `
users:
  - id: "1"
    name: Ada Lovelace
    address: London
  - name: Grace Hopper
    address: Arlington
`)

	gomock.InOrder(
		repo.EXPECT().CountUsers(gomock.Any()).Return(0, nil),
		repo.EXPECT().CreateUsers(gomock.Any(),
			models.User{ID: "1", Name: "Ada Lovelace", Address: "London"},
			models.User{ID: "generated-1", Name: "Grace Hopper", Address: "Arlington"},
		).Return(nil),
	)

	n, err := SeedUsers(context.Background(), repo, path, &sequenceIDs{}, validators.NewUserValidator(), logger.Nop())

	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestSeedUsers_SkipsPopulatedTable(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)

	path := writeSeed(t, "users:\n  - id: \"1\"\n    name: Ada\n")
	repo.EXPECT().CountUsers(gomock.Any()).Return(5, nil)

	n, err := SeedUsers(context.Background(), repo, path, &sequenceIDs{}, validators.NewUserValidator(), logger.Nop())

	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSeedUsers_EmptyPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)

	n, err := SeedUsers(context.Background(), repo, "", &sequenceIDs{}, validators.NewUserValidator(), logger.Nop())

	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSeedUsers_MissingFileIsSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)

	n, err := SeedUsers(context.Background(), repo, filepath.Join(t.TempDir(), "none.yaml"), &sequenceIDs{}, validators.NewUserValidator(), logger.Nop())

	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSeedUsers_MalformedYAML(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)

	path := writeSeed(t, "users: [this is: not: yaml")

	_, err := SeedUsers(context.Background(), repo, path, &sequenceIDs{}, validators.NewUserValidator(), logger.Nop())

	assert.ErrorIs(t, err, ErrDecodingSeedFile)
}

func TestSeedUsers_CountError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)

	path := writeSeed(t, "users: []\n")
	repo.EXPECT().CountUsers(gomock.Any()).Return(0, ErrScanningRow)

	_, err := SeedUsers(context.Background(), repo, path, &sequenceIDs{}, validators.NewUserValidator(), logger.Nop())

	assert.ErrorIs(t, err, ErrScanningRow)
}

func TestSeedUsers_CreateError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)

	path := writeSeed(t, "users:\n  - id: \"1\"\n    name: Ada\n")
	repo.EXPECT().CountUsers(gomock.Any()).Return(0, nil)
	repo.EXPECT().CreateUsers(gomock.Any(), gomock.Any()).Return(ErrUserAlreadyExists)

	_, err := SeedUsers(context.Background(), repo, path, &sequenceIDs{}, validators.NewUserValidator(), logger.Nop())

	assert.True(t, errors.Is(err, ErrUserAlreadyExists))
}

func TestSeedUsers_InvalidUserAbortsSeed(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)

	path := writeSeed(t, "users:\n  - id: \"1\"\n    name: Ada\n  - id: \"2\"\n    address: nowhere\n")
	repo.EXPECT().CountUsers(gomock.Any()).Return(0, nil)

	_, err := SeedUsers(context.Background(), repo, path, &sequenceIDs{}, validators.NewUserValidator(), logger.Nop())

	assert.ErrorIs(t, err, ErrInvalidSeedUser)
	assert.ErrorIs(t, err, validators.ErrEmptyUserName)
}

func TestSeedUsers_DuplicateIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)

	path := writeSeed(t, "users:\n  - id: \"1\"\n    name: Ada\n  - id: \"1\"\n    name: Grace\n")
	repo.EXPECT().CountUsers(gomock.Any()).Return(0, nil)

	_, err := SeedUsers(context.Background(), repo, path, &sequenceIDs{}, validators.NewUserValidator(), logger.Nop())

	assert.ErrorIs(t, err, validators.ErrDuplicateUserID)
}
