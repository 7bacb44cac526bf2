package postgres

import (
	"whatsorder/internal/domain/repository"
	"whatsorder/internal/infra/persistence/model"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const uniqueViolationCode = "23505"

// uniqueConstraintName returns the violated constraint for a unique violation.
func uniqueConstraintName(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return pgErr.ConstraintName, true
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return "", true
	}

	return "", false
}

// businessConflict maps a unique violation on businesses to the matching domain error.
func businessConflict(err error) error {
	name, ok := uniqueConstraintName(err)
	if !ok {
		return nil
	}

	switch name {
	case model.BusinessSlugKey:
		return repository.ErrSlugTaken
	default:
		return repository.ErrBusinessAlreadyExists
	}
}
