package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shenikar/stpaul_crime_api/internal/models"
)

// classifyError переводит ошибку драйвера в типизированную ошибку хранилища.
// Нарушение уникальности - ErrIncidentExists; ссылка на несуществующий код или район
// и выход числа за диапазон столбца - ValidationError; все остальное - ErrStorage.
func classifyError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return fmt.Errorf("%s: %w", op, models.ErrIncidentExists)
		case pgerrcode.ForeignKeyViolation:
			return fmt.Errorf("%s: %w", op, models.NewValidationError(constraintField(pgErr), "references an unknown value"))
		case pgerrcode.NumericValueOutOfRange:
			field := pgErr.ColumnName
			if field == "" {
				field = "incident"
			}
			return fmt.Errorf("%s: %w", op, models.NewValidationError(field, "is out of range"))
		}
	}
	return fmt.Errorf("%w: %s: %w", models.ErrStorage, op, err)
}

// constraintField достает имя столбца из имени внешнего ключа вида incidents_<column>_fkey
func constraintField(pgErr *pgconn.PgError) string {
	if pgErr.ColumnName != "" {
		return pgErr.ColumnName
	}
	name := strings.TrimSuffix(pgErr.ConstraintName, "_fkey")
	if column, ok := strings.CutPrefix(name, pgErr.TableName+"_"); ok && pgErr.TableName != "" && column != "" {
		return column
	}
	if column, ok := strings.CutPrefix(name, tableIncidents+"_"); ok && column != "" {
		return column
	}
	return "incident"
}
