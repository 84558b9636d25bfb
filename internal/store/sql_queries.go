package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-user-list/models"
)

const usersTable = "users"

var userColumns = []string{"id", "name", "address"}

// buildListUsersQuery orders by seq, the insertion sequence, so rows inserted
// by one statement keep their order.
func buildListUsersQuery(b sq.StatementBuilderType) (string, []any, error) {
	query, args, err := b.
		Select(userColumns...).
		From(usersTable).
		OrderBy("seq").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildCountUsersQuery(b sq.StatementBuilderType) (string, []any, error) {
	query, args, err := b.
		Select("COUNT(*)").
		From(usersTable).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildInsertUsersQuery(b sq.StatementBuilderType, users []models.User) (string, []any, error) {
	insert := b.Insert(usersTable).Columns(userColumns...)
	for _, user := range users {
		insert = insert.Values(user.ID, user.Name, user.Address)
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
