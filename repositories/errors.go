package repositories

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ErrDuplicate is returned when a write hits a unique index
// (username, or the wishlist (user, plot) pair).
var ErrDuplicate = errors.New("duplicate key")

// IsNotFound checks GORM's "record not found" sentinel.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func IsDuplicate(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// translate maps driver-level unique violations onto ErrDuplicate. GORM's
// TranslateError covers the stock drivers; the message check covers
// connections opened without it.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	}
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate") {
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	}
	return err
}
