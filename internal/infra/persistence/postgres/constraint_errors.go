package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Helper functions for PostgreSQL error checking. gorm.Config.TranslateError
// maps driver errors onto these sentinels.
func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}

func isNotNullConstraintViolation(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null") ||
		strings.Contains(errMsg, "23502") // PostgreSQL not_null_violation error code
}

// containsAny reports whether the message mentions any of the given fragments,
// case-insensitively. Used to attribute a constraint error to a column.
func containsAny(msg string, fragments ...string) bool {
	lowered := strings.ToLower(msg)
	for _, fragment := range fragments {
		if strings.Contains(lowered, fragment) {
			return true
		}
	}

	return false
}
