package gormrepo

import (
	"errors"
	"fmt"

	"credit-backoffice/internal/domain/apperr"

	mysqldrv "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	pgForeignKeyViolation    = "23503"
	mysqlForeignKeyViolation = 1452
)

// translate maps driver errors onto domain errors. notFound may be nil for
// writes, where ErrRecordNotFound cannot occur.
func translate(err, notFound error) error {
	switch {
	case err == nil:
		return nil
	case notFound != nil && errors.Is(err, gorm.ErrRecordNotFound):
		return notFound
	case isForeignKeyViolation(err):
		return fmt.Errorf("%w: %v", apperr.ErrInvalidReference, err)
	}
	return err
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgForeignKeyViolation
	}
	var myErr *mysqldrv.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlForeignKeyViolation
	}
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}
