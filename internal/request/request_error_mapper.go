package request

import (
	"errors"
	"strings"

	requesterrors "go-attendance/internal/request/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return requesterrors.ErrRequestNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_requests_employee_date_active" {
			return requesterrors.ErrDuplicateActiveRequest
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_requests_employee_date_active") {
		return requesterrors.ErrDuplicateActiveRequest
	}

	return err
}
