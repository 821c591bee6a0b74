package mysql

import (
	"errors"

	"gorm.io/gorm"

	"sacco-admin/internal/domain/errs"
)

// translate maps gorm errors into the application taxonomy. The driver
// error is kept as the cause so its text reaches the user unchanged.
func translate(db *gorm.DB, err error, key string) error {
	switch {
	case err == nil:
		return nil
	case isDuplicate(db, err):
		return &errs.DuplicateKeyError{Key: key, Cause: err}
	default:
		return errs.Storage(err)
	}
}

// isDuplicate asks the dialector whether err is a unique-key violation.
func isDuplicate(db *gorm.DB, err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	if db == nil {
		return false
	}
	t, ok := db.Dialector.(gorm.ErrorTranslator)
	return ok && errors.Is(t.Translate(err), gorm.ErrDuplicatedKey)
}
