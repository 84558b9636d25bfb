package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-user-list/internal/logger"
	"github.com/MKhiriev/go-user-list/internal/validators"
	"github.com/MKhiriev/go-user-list/models"
)

// IDGenerator issues ids for seeded users that have none.
type IDGenerator interface {
	Generate() string
}

type seedFile struct {
	Users []models.User `yaml:"users"`
}

// SeedUsers loads users from the YAML file at path into an empty users
// table. A populated table or an empty path is left untouched; a missing
// file is logged and skipped. Users are validated after missing ids are
// generated, so one bad entry aborts the whole seed.
//
// File format:
//
//	users:
//	  - id: "1"
//	    name: Ada Lovelace
//	    address: 12 St James's Square, London
func SeedUsers(ctx context.Context, repo UserRepository, path string, ids IDGenerator, validator validators.Validator, log *logger.Logger) (int, error) {
	if strings.TrimSpace(path) == "" {
		return 0, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Warn().Str("path", path).Msg("seed file not found, skipping")
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrReadingSeedFile, err)
	}

	var seed seedFile
	if err = yaml.Unmarshal(data, &seed); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrDecodingSeedFile, err)
	}

	count, err := repo.CountUsers(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		log.Info().Int("existing", count).Msg("users table already populated, skipping seed")
		return 0, nil
	}

	for i := range seed.Users {
		if seed.Users[i].ID == "" {
			seed.Users[i].ID = ids.Generate()
		}
	}

	if err = validator.Validate(ctx, seed.Users); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidSeedUser, err)
	}

	if err = repo.CreateUsers(ctx, seed.Users...); err != nil {
		return 0, err
	}

	log.Info().Int("seeded", len(seed.Users)).Str("path", path).Msg("users seeded")
	return len(seed.Users), nil
}
