package db

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrCheckViolation = errors.New("check constraint violated")
	ErrForeignKey     = errors.New("referenced row does not exist")
	ErrDuplicate      = errors.New("duplicate row")
	ErrUnavailable    = errors.New("database unavailable")
)

// classifyWriteError maps driver failures onto the sentinels callers switch
// on. SQLite exposes the constraint class only through the message text.
func classifyWriteError(err error) error {
	if err == nil {
		return nil
	}

	message := err.Error()
	switch {
	case strings.Contains(message, "UNIQUE constraint failed"):
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	case strings.Contains(message, "CHECK constraint failed"):
		return fmt.Errorf("%w: %v", ErrCheckViolation, err)
	case strings.Contains(message, "FOREIGN KEY constraint failed"):
		return fmt.Errorf("%w: %v", ErrForeignKey, err)
	case errors.Is(err, sql.ErrConnDone),
		strings.Contains(message, "database is closed"),
		strings.Contains(message, "unable to open database"):
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return err
}
